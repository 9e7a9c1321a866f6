package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moodlens/internal/config"
)

func newTestHF(t *testing.T, handler http.HandlerFunc) *HuggingFace {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default().HuggingFace
	cfg.BaseURL = srv.URL + "/models/"
	cfg.APIKey = "hf_test"
	return NewHuggingFace(cfg)
}

func TestClassifyUnwrapsAndSorts(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}
	hf := newTestHF(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`[[{"label":"fear","score":0.1},{"label":"joy","score":0.7},{"label":"sadness","score":0.2}]]`))
	})

	emotions, err := hf.Classify(context.Background(), "what a day")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if gotPath != "/models/j-hartmann/emotion-english-distilroberta-base" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer hf_test" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
	if gotBody["inputs"] != "what a day" {
		t.Errorf("unexpected body %v", gotBody)
	}
	if len(emotions) != 3 || emotions[0].Label != "joy" || emotions[1].Label != "sadness" || emotions[2].Label != "fear" {
		t.Errorf("expected descending order, got %+v", emotions)
	}
}

func TestClassifyNon2xx(t *testing.T) {
	hf := newTestHF(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"model loading"}`))
	})
	_, err := hf.Classify(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error for 503")
	}
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "model loading") {
		t.Errorf("expected status and body in error, got %v", err)
	}
}

func TestDecodeEmotionScores(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		first string
		n     int
	}{
		{"nested", `[[{"label":"anger","score":0.3},{"label":"disgust","score":0.6}]]`, "disgust", 2},
		{"flat", `[{"label":"anger","score":0.3},{"label":"surprise","score":0.5}]`, "surprise", 2},
		{"nested uses first list only", `[[{"label":"joy","score":0.9}],[{"label":"fear","score":0.99}]]`, "joy", 1},
		{"empty", `[]`, "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeEmotionScores([]byte(tc.raw))
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if len(got) != tc.n {
				t.Fatalf("expected %d scores, got %d", tc.n, len(got))
			}
			if tc.n > 0 && got[0].Label != tc.first {
				t.Errorf("expected first %q, got %q", tc.first, got[0].Label)
			}
		})
	}

	if _, err := decodeEmotionScores([]byte(`{"error":"bad"}`)); err == nil {
		t.Errorf("expected error for object payload")
	}
}

func TestSummarize(t *testing.T) {
	var params map[string]interface{}
	hf := newTestHF(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/facebook/bart-large-cnn") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var body struct {
			Parameters map[string]interface{} `json:"parameters"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		params = body.Parameters
		w.Write([]byte(`[{"summary_text":"A short day."}]`))
	})

	got, err := hf.Summarize(context.Background(), "long text")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if got != "A short day." {
		t.Errorf("unexpected summary %q", got)
	}
	if params["max_length"] != float64(100) || params["min_length"] != float64(20) {
		t.Errorf("unexpected parameters %v", params)
	}
}

func TestSummarizeEmptyResult(t *testing.T) {
	hf := newTestHF(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	if _, err := hf.Summarize(context.Background(), "text"); err == nil {
		t.Errorf("expected error for empty summary")
	}
}

func TestTruncate(t *testing.T) {
	short := "a calm evening"
	if got := Truncate(short); got != short {
		t.Errorf("expected short text unchanged, got %q", got)
	}

	exact := strings.Repeat("x", TruncateLimit)
	if got := Truncate(exact); got != exact {
		t.Errorf("expected %d chars unchanged", TruncateLimit)
	}

	long := strings.Repeat("é", TruncateLimit+10)
	got := Truncate(long)
	if got != strings.Repeat("é", TruncateLimit)+"..." {
		t.Errorf("expected rune-safe cut with marker, got %q", got)
	}
}

func TestDominantEmotion(t *testing.T) {
	if got := DominantEmotion(nil); got != "neutral" {
		t.Errorf("expected neutral, got %q", got)
	}
}

func TestConfigured(t *testing.T) {
	cfg := config.Default().HuggingFace
	if NewHuggingFace(cfg).Configured() {
		t.Errorf("expected unconfigured without key")
	}
	cfg.APIKey = config.PlaceholderAPIKey
	if NewHuggingFace(cfg).Configured() {
		t.Errorf("expected placeholder key to count as unconfigured")
	}
}
