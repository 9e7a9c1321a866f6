package model

import (
	"time"

	"moodlens/internal/mood"

	"gorm.io/datatypes"
)

const (
	CheckInType    = "check-in"
	NeutralEmotion = "neutral"
)

type EmotionScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// JournalEntry is a free-text entry with its analysis. Seq records insertion
// order, which is what "newest first" means for listings.
type JournalEntry struct {
	Seq             uint64                             `gorm:"primaryKey;autoIncrement" json:"-"`
	ID              string                             `gorm:"type:varchar(36);uniqueIndex" json:"id"`
	Text            string                             `gorm:"type:text" json:"text"`
	Emotions        datatypes.JSONType[[]EmotionScore] `json:"emotions"`
	DominantEmotion string                             `gorm:"type:varchar(32)" json:"dominantEmotion"`
	Summary         string                             `gorm:"type:text" json:"summary"`
	CreatedAt       time.Time                          `json:"createdAt"`
}

type CheckInEntry struct {
	Seq             uint64                                           `gorm:"primaryKey;autoIncrement" json:"-"`
	ID              string                                           `gorm:"type:varchar(36);uniqueIndex" json:"id"`
	Type            string                                           `gorm:"type:varchar(16)" json:"type"`
	MoodScore       int                                              `json:"moodScore"`
	Answers         datatypes.JSONType[map[string]mood.AnswerDetail] `json:"answers"`
	Emotions        datatypes.JSONType[[]EmotionScore]               `json:"emotions"`
	DominantEmotion string                                           `gorm:"type:varchar(32)" json:"dominantEmotion"`
	Advice          string                                           `gorm:"type:text" json:"advice"`
	CreatedAt       time.Time                                        `json:"createdAt"`
}

func (JournalEntry) TableName() string { return "moodlens_entries" }
func (CheckInEntry) TableName() string { return "moodlens_checkins" }

func NewJournalEntry(text string, emotions []EmotionScore, dominant, summary string) *JournalEntry {
	return &JournalEntry{
		Text:            text,
		Emotions:        datatypes.NewJSONType(emotions),
		DominantEmotion: dominant,
		Summary:         summary,
	}
}

func NewCheckInEntry(score int, answers map[string]mood.AnswerDetail, emotions []EmotionScore, dominant, advice string) *CheckInEntry {
	return &CheckInEntry{
		Type:            CheckInType,
		MoodScore:       score,
		Answers:         datatypes.NewJSONType(answers),
		Emotions:        datatypes.NewJSONType(emotions),
		DominantEmotion: dominant,
		Advice:          advice,
	}
}
