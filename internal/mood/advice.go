package mood

import "strings"

// LowAnswerThreshold is the highest answer value that triggers a
// question-specific tip.
const LowAnswerThreshold = 2

const (
	tierTough    = "It sounds like you're going through a tough time. Remember, it's okay to not be okay. Consider reaching out to someone you trust."
	tierRough    = "Things seem a bit rough today. Small positive actions can shift your mood, even a short walk or a favorite song can help."
	tierAlright  = "You're doing alright! There's room to feel even better. Focus on what went well today and build on it."
	tierGreat    = "You're in a great headspace! Keep doing what you're doing. Consider journaling about what made today so good."
	adviceJoiner = "\n\n"
)

var emotionAdvice = map[string]string{
	"sadness":  "When sadness is present, be gentle with yourself. Acknowledge the feeling without judgment; it will pass.",
	"anger":    "Feeling angry is natural. Channel that energy into something physical like exercise, or write down what triggered it.",
	"fear":     "Anxiety and fear can be managed. Ground yourself: name 5 things you can see, 4 you can touch, 3 you can hear.",
	"joy":      "Joy is your dominant emotion, wonderful! Take a moment to savor it and remember what contributed to this feeling.",
	"surprise": "Something unexpected shaped your mood today. Take time to process and reflect on how it makes you feel.",
	"disgust":  "Something didn't sit right with you. Identifying the specific trigger can help you set boundaries for next time.",
	"neutral":  "You're in a balanced state. This is a good foundation. Consider what would make tomorrow even better.",
}

// TierAdvice returns the general paragraph for a mood score. Bands are
// 0-33, 34-55, 56-74 and 75-100.
func TierAdvice(score int) string {
	switch score = ClampScore(score); {
	case score <= 33:
		return tierTough
	case score <= 55:
		return tierRough
	case score <= 74:
		return tierAlright
	default:
		return tierGreat
	}
}

// QuestionTip returns the tip shown when question id was answered low.
func QuestionTip(id QuestionID) string {
	switch id {
	case Sleep:
		return "Your sleep needs attention. Try a consistent bedtime, limit screens 1 hour before bed, and keep your room cool and dark."
	case Energy:
		return "Low energy can affect everything. Stay hydrated, take a short walk outside, or try a 20-minute power nap if possible."
	case Stress:
		return "High stress detected. Try box breathing (4 seconds in, 4 hold, 4 out, 4 hold), or write down what's bothering you to get it out of your head."
	case Social:
		return "Social connection matters for wellbeing. Even a quick message to a friend or a short chat with a colleague can make a difference."
	case Satisfaction:
		return "Today didn't feel great overall. Tomorrow is a fresh start, so try setting one small, achievable goal to build momentum."
	}
	return ""
}

// EmotionAdvice returns the paragraph for a dominant emotion label, or false
// when the label has none.
func EmotionAdvice(label string) (string, bool) {
	s, ok := emotionAdvice[label]
	return s, ok
}

// GenerateAdvice builds the recommendation text for a check-in: the score
// tier paragraph, one tip per low-scored question (in question order) and at
// most one paragraph for the dominant emotion, separated by blank lines.
//
// Missing answers and unknown emotion labels are skipped.
func GenerateAdvice(score int, dominantEmotion string, answers map[string]AnswerDetail) string {
	tips := []string{TierAdvice(score)}

	for _, id := range QuestionIDs {
		a, ok := answers[string(id)]
		if !ok || a.Value > LowAnswerThreshold {
			continue
		}
		tips = append(tips, QuestionTip(id))
	}

	if s, ok := EmotionAdvice(dominantEmotion); ok {
		tips = append(tips, s)
	}
	return strings.Join(tips, adviceJoiner)
}
