package store

import (
	"context"
	"errors"
	"fmt"

	"moodlens/internal/model"

	"gorm.io/gorm"
)

var _ RecordStore = (*GormStore)(nil)

// GormStore persists records in two tables, one per record kind.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&model.JournalEntry{}, &model.CheckInEntry{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *GormStore) AppendEntry(ctx context.Context, e *model.JournalEntry) error {
	e.Seq = 0
	e.ID, e.CreatedAt = stamp()
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

func (s *GormStore) ListEntries(ctx context.Context) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := s.db.WithContext(ctx).Order("seq DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (s *GormStore) GetEntry(ctx context.Context, id string) (*model.JournalEntry, error) {
	var e model.JournalEntry
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return &e, nil
}

func (s *GormStore) DeleteEntry(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.JournalEntry{}).Error; err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (s *GormStore) AppendCheckIn(ctx context.Context, c *model.CheckInEntry) error {
	c.Seq = 0
	c.Type = model.CheckInType
	c.ID, c.CreatedAt = stamp()
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("insert check-in: %w", err)
	}
	return nil
}

func (s *GormStore) ListCheckIns(ctx context.Context) ([]model.CheckInEntry, error) {
	var checkIns []model.CheckInEntry
	if err := s.db.WithContext(ctx).Order("seq DESC").Find(&checkIns).Error; err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	return checkIns, nil
}

func (s *GormStore) GetCheckIn(ctx context.Context, id string) (*model.CheckInEntry, error) {
	var c model.CheckInEntry
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get check-in: %w", err)
	}
	return &c, nil
}

func (s *GormStore) DeleteCheckIn(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CheckInEntry{}).Error; err != nil {
		return fmt.Errorf("delete check-in: %w", err)
	}
	return nil
}
