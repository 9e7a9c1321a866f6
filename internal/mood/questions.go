package mood

// QuestionID identifies one of the fixed check-in questions.
type QuestionID string

const (
	Sleep        QuestionID = "sleep"
	Energy       QuestionID = "energy"
	Stress       QuestionID = "stress"
	Social       QuestionID = "social"
	Satisfaction QuestionID = "satisfaction"
)

// QuestionIDs lists the check-in questions in the order they are asked.
var QuestionIDs = []QuestionID{Sleep, Energy, Stress, Social, Satisfaction}

const (
	MinValue = 1
	MaxValue = 5
)

// Valid reports whether id is one of the fixed check-in questions.
func (id QuestionID) Valid() bool {
	switch id {
	case Sleep, Energy, Stress, Social, Satisfaction:
		return true
	}
	return false
}

// QuizAnswer is one selectable option. Value 5 is the best outcome and 1 the
// worst for every question.
type QuizAnswer struct {
	Text  string `json:"text"`
	Emoji string `json:"emoji"`
	Value int    `json:"value"`
}

type QuizQuestion struct {
	ID       QuestionID   `json:"id"`
	Question string       `json:"question"`
	Answers  []QuizAnswer `json:"answers"`
}

// AnsweredQuiz maps each question to the option the user picked.
type AnsweredQuiz map[QuestionID]QuizAnswer

// AnswerDetail is the serialized form of a single answer, as sent by clients
// and stored on check-ins.
type AnswerDetail struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Value    int    `json:"value"`
}

var questions = []QuizQuestion{
	{
		ID:       Sleep,
		Question: "How did you sleep last night?",
		Answers: []QuizAnswer{
			{Text: "Terribly", Emoji: "😫", Value: 1},
			{Text: "Poorly", Emoji: "😴", Value: 2},
			{Text: "Okay", Emoji: "😐", Value: 3},
			{Text: "Well", Emoji: "😊", Value: 4},
			{Text: "Amazingly", Emoji: "🤩", Value: 5},
		},
	},
	{
		ID:       Energy,
		Question: "What's your energy level right now?",
		Answers: []QuizAnswer{
			{Text: "Exhausted", Emoji: "🪫", Value: 1},
			{Text: "Low", Emoji: "😪", Value: 2},
			{Text: "Moderate", Emoji: "🙂", Value: 3},
			{Text: "Energetic", Emoji: "💪", Value: 4},
			{Text: "Supercharged", Emoji: "⚡", Value: 5},
		},
	},
	{
		ID:       Stress,
		Question: "How stressed are you feeling?",
		Answers: []QuizAnswer{
			{Text: "Overwhelmed", Emoji: "🤯", Value: 1},
			{Text: "Very stressed", Emoji: "😰", Value: 2},
			{Text: "Somewhat", Emoji: "😕", Value: 3},
			{Text: "Fairly calm", Emoji: "😌", Value: 4},
			{Text: "Totally relaxed", Emoji: "🧘", Value: 5},
		},
	},
	{
		ID:       Social,
		Question: "How were your social interactions today?",
		Answers: []QuizAnswer{
			{Text: "Isolated", Emoji: "🏚️", Value: 1},
			{Text: "Disconnected", Emoji: "😶", Value: 2},
			{Text: "Neutral", Emoji: "🤝", Value: 3},
			{Text: "Pleasant", Emoji: "😄", Value: 4},
			{Text: "Wonderful", Emoji: "🥰", Value: 5},
		},
	},
	{
		ID:       Satisfaction,
		Question: "How satisfied are you with today overall?",
		Answers: []QuizAnswer{
			{Text: "Very unsatisfied", Emoji: "😞", Value: 1},
			{Text: "Unsatisfied", Emoji: "😒", Value: 2},
			{Text: "Neutral", Emoji: "😐", Value: 3},
			{Text: "Satisfied", Emoji: "😊", Value: 4},
			{Text: "Very satisfied", Emoji: "🌟", Value: 5},
		},
	},
}

// Questions returns a copy of the fixed check-in question set.
func Questions() []QuizQuestion {
	out := make([]QuizQuestion, len(questions))
	for i, q := range questions {
		q.Answers = append([]QuizAnswer(nil), q.Answers...)
		out[i] = q
	}
	return out
}

// Question looks up a question by id.
func Question(id QuestionID) (QuizQuestion, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return QuizQuestion{}, false
}

// AnswerFor returns the option of question id carrying the given value.
func AnswerFor(id QuestionID, value int) (QuizAnswer, bool) {
	q, ok := Question(id)
	if !ok {
		return QuizAnswer{}, false
	}
	for _, a := range q.Answers {
		if a.Value == value {
			return a, true
		}
	}
	return QuizAnswer{}, false
}
