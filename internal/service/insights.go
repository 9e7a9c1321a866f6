package service

import (
	"context"
	"math"
	"time"

	"moodlens/internal/model"
	"moodlens/internal/store"
)

// maxStreakDays bounds how far back a streak is counted.
const maxStreakDays = 365

const dayLayout = "2006-01-02"

// InsightsService derives dashboard numbers and trend series from stored records.
type InsightsService struct {
	store store.RecordStore
	now   func() time.Time
}

func NewInsightsService(s store.RecordStore) *InsightsService {
	return &InsightsService{store: s, now: time.Now}
}

func (s *InsightsService) Stats(ctx context.Context) (*model.Stats, error) {
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	checkIns, err := s.store.ListCheckIns(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(entries, checkIns, s.now())
	return &stats, nil
}

func (s *InsightsService) Trend(ctx context.Context) ([]model.TrendPoint, error) {
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeTrend(entries, s.now().Location()), nil
}

// ComputeStats summarizes newest-first entries and check-ins. The top mood is
// the most frequent dominant emotion, ties going to the most recent one. The
// streak counts consecutive days with an entry, ending today in now's location.
func ComputeStats(entries []model.JournalEntry, checkIns []model.CheckInEntry, now time.Time) model.Stats {
	stats := model.Stats{TotalEntries: len(entries), TotalCheckIns: len(checkIns)}

	counts := map[string]int{}
	var order []string
	for _, e := range entries {
		if counts[e.DominantEmotion] == 0 {
			order = append(order, e.DominantEmotion)
		}
		counts[e.DominantEmotion]++
	}
	for _, label := range order {
		if counts[label] > stats.TopMoodCount {
			stats.TopMood, stats.TopMoodCount = label, counts[label]
		}
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.CreatedAt.In(now.Location()).Format(dayLayout)] = true
	}
	day := now
	for i := 0; i < maxStreakDays && days[day.Format(dayLayout)]; i++ {
		stats.Streak++
		day = day.AddDate(0, 0, -1)
	}

	if len(checkIns) > 0 {
		sum := 0
		for _, c := range checkIns {
			sum += c.MoodScore
		}
		stats.AverageMoodScore = math.Round(float64(sum)/float64(len(checkIns))*10) / 10
	}
	return stats
}

// ComputeTrend groups newest-first entries by calendar day in loc and
// averages each emotion's score per day on a 0-100 scale. Points are oldest first.
func ComputeTrend(entries []model.JournalEntry, loc *time.Location) []model.TrendPoint {
	type bucket struct {
		sums   map[string]float64
		counts map[string]int
	}
	buckets := map[string]*bucket{}
	var dates []string

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		date := e.CreatedAt.In(loc).Format(dayLayout)
		b, ok := buckets[date]
		if !ok {
			b = &bucket{sums: map[string]float64{}, counts: map[string]int{}}
			buckets[date] = b
			dates = append(dates, date)
		}
		for _, es := range e.Emotions.Data() {
			b.sums[es.Label] += es.Score
			b.counts[es.Label]++
		}
	}

	points := make([]model.TrendPoint, 0, len(dates))
	for _, date := range dates {
		b := buckets[date]
		p := model.TrendPoint{Date: date, Emotions: make(map[string]int, len(b.sums))}
		for label, sum := range b.sums {
			p.Emotions[label] = int(math.Round(sum / float64(b.counts[label]) * 100))
		}
		points = append(points, p)
	}
	return points
}
