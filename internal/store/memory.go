package store

import (
	"context"
	"sync"

	"moodlens/internal/model"
)

var _ RecordStore = (*MemoryStore)(nil)

// MemoryStore keeps records in process memory. Slices are kept newest first.
type MemoryStore struct {
	mu       sync.Mutex
	entries  []model.JournalEntry
	checkIns []model.CheckInEntry
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) AppendEntry(_ context.Context, e *model.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID, e.CreatedAt = stamp()
	s.entries = prepend(s.entries, *e)
	return nil
}

func (s *MemoryStore) ListEntries(context.Context) ([]model.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.JournalEntry(nil), s.entries...), nil
}

func (s *MemoryStore) GetEntry(_ context.Context, id string) (*model.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) DeleteEntry(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = without(s.entries, func(e model.JournalEntry) bool { return e.ID == id })
	return nil
}

func (s *MemoryStore) AppendCheckIn(_ context.Context, c *model.CheckInEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Type = model.CheckInType
	c.ID, c.CreatedAt = stamp()
	s.checkIns = prepend(s.checkIns, *c)
	return nil
}

func (s *MemoryStore) ListCheckIns(context.Context) ([]model.CheckInEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.CheckInEntry(nil), s.checkIns...), nil
}

func (s *MemoryStore) GetCheckIn(_ context.Context, id string) (*model.CheckInEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.checkIns {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) DeleteCheckIn(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkIns = without(s.checkIns, func(c model.CheckInEntry) bool { return c.ID == id })
	return nil
}

func prepend[T any](items []T, item T) []T {
	return append([]T{item}, items...)
}

func without[T any](items []T, match func(T) bool) []T {
	out := items[:0:0]
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}
