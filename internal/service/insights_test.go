package service

import (
	"context"
	"testing"
	"time"

	"moodlens/internal/model"
	"moodlens/internal/store"
)

func entryAt(at time.Time, dominant string, emotions ...model.EmotionScore) model.JournalEntry {
	e := model.NewJournalEntry("text", emotions, dominant, "")
	e.CreatedAt = at
	return *e
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	// newest first
	entries := []model.JournalEntry{
		entryAt(now.Add(-time.Hour), "sadness"),
		entryAt(now.Add(-26*time.Hour), "joy"),
		entryAt(now.Add(-30*time.Hour), "joy"),
		entryAt(now.Add(-50*time.Hour), "sadness"),
		entryAt(now.Add(-5*24*time.Hour), "fear"),
	}
	checkIns := []model.CheckInEntry{{MoodScore: 60}, {MoodScore: 75}, {MoodScore: 41}}

	stats := ComputeStats(entries, checkIns, now)
	if stats.TotalEntries != 5 || stats.TotalCheckIns != 3 {
		t.Errorf("unexpected totals %+v", stats)
	}
	// sadness and joy tie at 2; sadness was seen first in newest-first order
	if stats.TopMood != "sadness" || stats.TopMoodCount != 2 {
		t.Errorf("expected top mood sadness x2, got %s x%d", stats.TopMood, stats.TopMoodCount)
	}
	if stats.Streak != 3 {
		t.Errorf("expected streak 3, got %d", stats.Streak)
	}
	if stats.AverageMoodScore != 58.7 {
		t.Errorf("expected average 58.7, got %v", stats.AverageMoodScore)
	}
}

func TestComputeStatsNoEntryToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	entries := []model.JournalEntry{entryAt(now.Add(-24*time.Hour), "joy")}

	stats := ComputeStats(entries, nil, now)
	if stats.Streak != 0 {
		t.Errorf("expected streak 0 without an entry today, got %d", stats.Streak)
	}
	if stats.AverageMoodScore != 0 {
		t.Errorf("expected zero average without check-ins, got %v", stats.AverageMoodScore)
	}

	empty := ComputeStats(nil, nil, now)
	if empty.TopMood != "" || empty.Streak != 0 || empty.TotalEntries != 0 {
		t.Errorf("unexpected stats for no records %+v", empty)
	}
}

func TestComputeTrend(t *testing.T) {
	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)
	entries := []model.JournalEntry{
		entryAt(day2, "fear", model.EmotionScore{Label: "fear", Score: 0.9}),
		entryAt(day1.Add(3*time.Hour), "joy", model.EmotionScore{Label: "joy", Score: 0.5}, model.EmotionScore{Label: "fear", Score: 0.1}),
		entryAt(day1, "joy", model.EmotionScore{Label: "joy", Score: 0.8}),
	}

	points := ComputeTrend(entries, time.UTC)
	if len(points) != 2 {
		t.Fatalf("expected 2 days, got %d", len(points))
	}
	if points[0].Date != "2026-03-01" || points[1].Date != "2026-03-02" {
		t.Errorf("expected oldest first, got %s then %s", points[0].Date, points[1].Date)
	}
	if points[0].Emotions["joy"] != 65 || points[0].Emotions["fear"] != 10 {
		t.Errorf("unexpected day 1 averages %v", points[0].Emotions)
	}
	if points[1].Emotions["fear"] != 90 {
		t.Errorf("unexpected day 2 averages %v", points[1].Emotions)
	}
}

func TestInsightsServiceReadsStore(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	s.AppendEntry(ctx, model.NewJournalEntry("a", []model.EmotionScore{{Label: "joy", Score: 1}}, "joy", "a"))

	svc := NewInsightsService(s)
	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalEntries != 1 || stats.TopMood != "joy" || stats.Streak != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}

	points, err := svc.Trend(ctx)
	if err != nil {
		t.Fatalf("Trend failed: %v", err)
	}
	if len(points) != 1 || points[0].Emotions["joy"] != 100 {
		t.Errorf("unexpected trend %+v", points)
	}
}
