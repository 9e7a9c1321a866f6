package store

import (
	"context"
	"errors"
	"time"

	"moodlens/internal/model"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("record not found")

// RecordStore keeps journal entries and check-ins. Records are immutable:
// Append assigns the id and creation time, List returns newest first by
// insertion order, and Delete of an unknown id is a no-op.
type RecordStore interface {
	AppendEntry(ctx context.Context, e *model.JournalEntry) error
	ListEntries(ctx context.Context) ([]model.JournalEntry, error)
	GetEntry(ctx context.Context, id string) (*model.JournalEntry, error)
	DeleteEntry(ctx context.Context, id string) error

	AppendCheckIn(ctx context.Context, c *model.CheckInEntry) error
	ListCheckIns(ctx context.Context) ([]model.CheckInEntry, error)
	GetCheckIn(ctx context.Context, id string) (*model.CheckInEntry, error)
	DeleteCheckIn(ctx context.Context, id string) error
}

func stamp() (string, time.Time) {
	return uuid.NewString(), time.Now().UTC().Truncate(time.Millisecond)
}
