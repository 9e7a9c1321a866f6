package mood

import "testing"

func TestBuildAnalysisText(t *testing.T) {
	answers, err := AnswersFromValues(map[QuestionID]int{Sleep: 2, Energy: 4, Stress: 1, Social: 5, Satisfaction: 3})
	if err != nil {
		t.Fatalf("AnswersFromValues failed: %v", err)
	}

	want := "Mood check-in: How did you sleep last night? Poorly. " +
		"What's your energy level right now? Energetic. " +
		"How stressed are you feeling? Overwhelmed. " +
		"How were your social interactions today? Wonderful. " +
		"How satisfied are you with today overall? Neutral."
	if got := BuildAnalysisText(answers); got != want {
		t.Errorf("unexpected text:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatAnswers(t *testing.T) {
	answers, err := AnswersFromValues(map[QuestionID]int{Sleep: 1, Stress: 4})
	if err != nil {
		t.Fatalf("AnswersFromValues failed: %v", err)
	}
	got := FormatAnswers(answers)
	if len(got) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(got))
	}
	sleep := got["sleep"]
	if sleep.Question != "How did you sleep last night?" || sleep.Answer != "Terribly" || sleep.Value != 1 {
		t.Errorf("unexpected sleep detail: %+v", sleep)
	}
	if got["stress"].Answer != "Fairly calm" {
		t.Errorf("unexpected stress answer %q", got["stress"].Answer)
	}
}

func TestAnswersFromValuesRejectsBadInput(t *testing.T) {
	if _, err := AnswersFromValues(map[QuestionID]int{Sleep: 6}); err == nil {
		t.Errorf("expected error for value 6")
	}
	if _, err := AnswersFromValues(map[QuestionID]int{"mood": 3}); err == nil {
		t.Errorf("expected error for unknown question")
	}
}

func TestQuestionsFixedSet(t *testing.T) {
	qs := Questions()
	if len(qs) != len(QuestionIDs) {
		t.Fatalf("expected %d questions, got %d", len(QuestionIDs), len(qs))
	}
	for i, q := range qs {
		if q.ID != QuestionIDs[i] {
			t.Errorf("question %d: expected id %s, got %s", i, QuestionIDs[i], q.ID)
		}
		if len(q.Answers) != MaxValue {
			t.Errorf("%s: expected %d answers, got %d", q.ID, MaxValue, len(q.Answers))
		}
		seen := map[int]bool{}
		for _, a := range q.Answers {
			if a.Value < MinValue || a.Value > MaxValue || seen[a.Value] {
				t.Errorf("%s: bad or duplicate value %d", q.ID, a.Value)
			}
			seen[a.Value] = true
		}
	}

	qs[0].Answers[0].Text = "changed"
	if Questions()[0].Answers[0].Text == "changed" {
		t.Errorf("Questions must return a copy")
	}
}
