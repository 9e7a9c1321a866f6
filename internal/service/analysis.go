package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moodlens/internal/logger"
	"moodlens/internal/model"
	"moodlens/internal/mood"

	"golang.org/x/sync/errgroup"
)

var (
	ErrTextRequired  = errors.New("text is required")
	ErrNotConfigured = errors.New("hugging face api key not configured")
	ErrUpstream      = errors.New("upstream call failed")
)

// Gateway is the remote emotion classification and summarization service.
type Gateway interface {
	Configured() bool
	Classify(ctx context.Context, text string) ([]model.EmotionScore, error)
	Summarize(ctx context.Context, text string) (string, error)
}

// AnalysisService runs the free-text and check-in analysis flows.
type AnalysisService struct {
	gw              Gateway
	summaryMinWords int
}

func NewAnalysisService(gw Gateway, summaryMinWords int) *AnalysisService {
	return &AnalysisService{gw: gw, summaryMinWords: summaryMinWords}
}

// AnalyzeText classifies and summarizes text concurrently. A classification
// failure fails the whole call; summarization falls back to truncation.
func (s *AnalysisService) AnalyzeText(ctx context.Context, text string) (*model.AnalyzeResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	if !s.gw.Configured() {
		return nil, ErrNotConfigured
	}

	var (
		emotions []model.EmotionScore
		summary  string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		e, err := s.classify(gctx, text)
		if err != nil {
			return err
		}
		emotions = e
		return nil
	})
	g.Go(func() error {
		summary = s.summarize(gctx, text)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.AnalyzeResult{
		Emotions:        emotions,
		DominantEmotion: DominantEmotion(emotions),
		Summary:         summary,
	}, nil
}

// AnalyzeCheckIn classifies the check-in narrative and derives advice from
// the mood score, the dominant emotion and the answers. When the request has
// no mood score it is computed from the answers.
func (s *AnalysisService) AnalyzeCheckIn(ctx context.Context, req model.CheckInRequest) (*model.CheckInResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrTextRequired
	}
	if !s.gw.Configured() {
		return nil, ErrNotConfigured
	}

	emotions, err := s.classify(ctx, req.Text)
	if err != nil {
		return nil, err
	}
	dominant := DominantEmotion(emotions)

	var score int
	if req.MoodScore != nil {
		score = mood.ClampScore(*req.MoodScore)
	} else {
		score = mood.ScoreFromDetails(req.Answers)
	}

	return &model.CheckInResult{
		Emotions:        emotions,
		DominantEmotion: dominant,
		Advice:          mood.GenerateAdvice(score, dominant, req.Answers),
		MoodScore:       score,
	}, nil
}

func (s *AnalysisService) classify(ctx context.Context, text string) ([]model.EmotionScore, error) {
	emotions, err := s.gw.Classify(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return SortEmotions(emotions), nil
}

// summarize never fails: short inputs skip the remote call and any remote
// failure degrades to Truncate.
func (s *AnalysisService) summarize(ctx context.Context, text string) string {
	if len(strings.Fields(text)) < s.summaryMinWords {
		return Truncate(text)
	}
	summary, err := s.gw.Summarize(ctx, text)
	if err != nil {
		logger.Warn("summarize fallback, using truncation", "err", err)
		return Truncate(text)
	}
	return summary
}
