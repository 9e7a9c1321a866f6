package mood

import (
	"fmt"
	"strings"
)

const narrativeHeader = "Mood check-in:"

// BuildAnalysisText renders answered questions as the sentence sent to the
// emotion classifier, one "<prompt> <answer>." per question in question order.
// Unanswered questions are left out.
func BuildAnalysisText(answers AnsweredQuiz) string {
	parts := []string{narrativeHeader}
	for _, q := range questions {
		a, ok := answers[q.ID]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s.", q.Question, a.Text))
	}
	return strings.Join(parts, " ")
}

// FormatAnswers converts answers to the serialized per-question form.
func FormatAnswers(answers AnsweredQuiz) map[string]AnswerDetail {
	out := make(map[string]AnswerDetail, len(answers))
	for _, q := range questions {
		a, ok := answers[q.ID]
		if !ok {
			continue
		}
		out[string(q.ID)] = AnswerDetail{Question: q.Question, Answer: a.Text, Value: a.Value}
	}
	return out
}

// AnswersFromValues picks the option matching each value. Values outside
// 1..5 are rejected.
func AnswersFromValues(values map[QuestionID]int) (AnsweredQuiz, error) {
	out := make(AnsweredQuiz, len(values))
	for id, v := range values {
		if !id.Valid() {
			return nil, fmt.Errorf("unknown question %q", id)
		}
		a, ok := AnswerFor(id, v)
		if !ok {
			return nil, fmt.Errorf("question %s: value %d out of range %d-%d", id, v, MinValue, MaxValue)
		}
		out[id] = a
	}
	return out, nil
}
