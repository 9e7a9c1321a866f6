package model

import "moodlens/internal/mood"

type AnalyzeRequest struct {
	Text string `json:"text"`
}

type AnalyzeResult struct {
	Emotions        []EmotionScore `json:"emotions"`
	DominantEmotion string         `json:"dominantEmotion"`
	Summary         string         `json:"summary"`
}

// CheckInRequest carries the synthesized check-in narrative plus the answers
// it was built from. MoodScore is computed from Answers when omitted.
type CheckInRequest struct {
	Text      string                       `json:"text"`
	MoodScore *int                         `json:"moodScore,omitempty"`
	Answers   map[string]mood.AnswerDetail `json:"answers"`
}

type CheckInResult struct {
	Emotions        []EmotionScore `json:"emotions"`
	DominantEmotion string         `json:"dominantEmotion"`
	Advice          string         `json:"advice"`
	MoodScore       int            `json:"moodScore"`
}

type CreateEntryRequest struct {
	Text            string         `json:"text" binding:"required"`
	Emotions        []EmotionScore `json:"emotions"`
	DominantEmotion string         `json:"dominantEmotion"`
	Summary         string         `json:"summary"`
}

type CreateCheckInRequest struct {
	MoodScore       int                          `json:"moodScore"`
	Answers         map[string]mood.AnswerDetail `json:"answers" binding:"required"`
	Emotions        []EmotionScore               `json:"emotions"`
	DominantEmotion string                       `json:"dominantEmotion"`
	Advice          string                       `json:"advice"`
}

type Stats struct {
	TotalEntries     int     `json:"totalEntries"`
	TotalCheckIns    int     `json:"totalCheckIns"`
	TopMood          string  `json:"topMood,omitempty"`
	TopMoodCount     int     `json:"topMoodCount"`
	Streak           int     `json:"streak"`
	AverageMoodScore float64 `json:"averageMoodScore"`
}

// TrendPoint is one day of averaged emotion scores on a 0-100 scale.
type TrendPoint struct {
	Date     string         `json:"date"`
	Emotions map[string]int `json:"emotions"`
}
