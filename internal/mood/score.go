package mood

// ComputeMoodScore turns a set of check-in answers into a 0-100 wellbeing
// score: the sum of the selected values over the best attainable sum.
//
// The denominator is 5 × the number of answers actually provided, so an
// incomplete quiz is scored on what was answered. Unknown question ids are
// ignored and values outside 1..5 are clamped.
func ComputeMoodScore(answers AnsweredQuiz) int {
	sum, n := 0, 0
	for id, a := range answers {
		if !id.Valid() {
			continue
		}
		sum += clampValue(a.Value)
		n++
	}
	return scorePercent(sum, n)
}

// ScoreFromDetails scores the serialized answer form with the same rules as
// ComputeMoodScore.
func ScoreFromDetails(answers map[string]AnswerDetail) int {
	sum, n := 0, 0
	for key, a := range answers {
		if !QuestionID(key).Valid() {
			continue
		}
		sum += clampValue(a.Value)
		n++
	}
	return scorePercent(sum, n)
}

func scorePercent(sum, n int) int {
	if n == 0 {
		return 0
	}
	max := MaxValue * n
	// round half up in integer arithmetic: floor((200*sum + max) / (2*max))
	return ClampScore((200*sum + max) / (2 * max))
}

// ClampScore bounds a mood score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func clampValue(v int) int {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}
