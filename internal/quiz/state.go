package quiz

// SessionState is the persisted in-progress quiz document. It is created
// when a quiz starts, overwritten in full on every answer, and deleted on
// completion or confirmed restart.
type SessionState struct {
	Questions     []Question `json:"questions"`
	Answers       Ledger     `json:"answers"`
	QuestionIndex int        `json:"questionIndex"`
}

// Valid reports whether a loaded state is resumable. An empty question
// sequence or an index at or past the end means the record is stale or
// corrupt and must be discarded, not resumed.
func (s SessionState) Valid() bool {
	return len(s.Questions) > 0 &&
		s.QuestionIndex >= 0 &&
		s.QuestionIndex < len(s.Questions)
}

// Current returns the question at the state's index.
func (s SessionState) Current() Question {
	return s.Questions[s.QuestionIndex]
}

// Complete reports whether the index has advanced past the final question.
func (s SessionState) Complete() bool {
	return s.QuestionIndex >= len(s.Questions)
}
