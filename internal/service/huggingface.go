package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"moodlens/internal/config"
	"moodlens/internal/model"
)

// TruncateLimit is the number of characters kept by Truncate.
const TruncateLimit = 150

// HuggingFace talks to the Hugging Face inference router for emotion
// classification and summarization.
type HuggingFace struct {
	cfg    config.HuggingFaceConfig
	client *http.Client
}

func NewHuggingFace(cfg config.HuggingFaceConfig) *HuggingFace {
	return &HuggingFace{cfg: cfg, client: &http.Client{}}
}

func (h *HuggingFace) Configured() bool { return h.cfg.Configured() }

// Classify returns emotion scores for text, highest score first.
func (h *HuggingFace) Classify(ctx context.Context, text string) ([]model.EmotionScore, error) {
	data, err := h.post(ctx, h.cfg.EmotionModel, map[string]interface{}{"inputs": text})
	if err != nil {
		return nil, fmt.Errorf("emotion analysis: %w", err)
	}
	emotions, err := decodeEmotionScores(data)
	if err != nil {
		return nil, fmt.Errorf("emotion analysis: %w", err)
	}
	return emotions, nil
}

// Summarize asks the summary model for a shorter paraphrase of text.
func (h *HuggingFace) Summarize(ctx context.Context, text string) (string, error) {
	body := map[string]interface{}{
		"inputs": text,
		"parameters": map[string]int{
			"max_length": h.cfg.SummaryMaxLength,
			"min_length": h.cfg.SummaryMinLength,
		},
	}
	data, err := h.post(ctx, h.cfg.SummaryModel, body)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	var result []struct {
		SummaryText string `json:"summary_text"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode summary: %w", err)
	}
	if len(result) == 0 || strings.TrimSpace(result[0].SummaryText) == "" {
		return "", fmt.Errorf("empty summary")
	}
	return result[0].SummaryText, nil
}

func (h *HuggingFace) post(ctx context.Context, modelName string, body interface{}) ([]byte, error) {
	payload, _ := json.Marshal(body)

	url := strings.TrimRight(h.cfg.BaseURL, "/") + "/" + modelName
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.cfg.APIKey)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference call: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("inference status %d: %s", resp.StatusCode, data)
	}
	return data, nil
}

// decodeEmotionScores accepts both [[{label,score},...]] and
// [{label,score},...]; only the first inner list of the nested form is used.
func decodeEmotionScores(raw []byte) ([]model.EmotionScore, error) {
	var nested [][]model.EmotionScore
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) == 0 {
			return []model.EmotionScore{}, nil
		}
		return SortEmotions(nested[0]), nil
	}

	var flat []model.EmotionScore
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("decode emotions: %w", err)
	}
	return SortEmotions(flat), nil
}

// SortEmotions returns a copy of emotions ordered by descending score.
func SortEmotions(emotions []model.EmotionScore) []model.EmotionScore {
	out := make([]model.EmotionScore, len(emotions))
	copy(out, emotions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// DominantEmotion is the label of the first (highest) score, or neutral.
func DominantEmotion(emotions []model.EmotionScore) string {
	if len(emotions) == 0 || emotions[0].Label == "" {
		return model.NeutralEmotion
	}
	return emotions[0].Label
}

// Truncate keeps the first TruncateLimit characters of text and marks the
// cut with "...".
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= TruncateLimit {
		return text
	}
	return string(runes[:TruncateLimit]) + "..."
}
