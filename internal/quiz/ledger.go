package quiz

import "strings"

// Ledger accumulates one answer per question id. It behaves as a mapping
// from question id to value: re-answering a question replaces the prior
// entry in place, and entry order carries no meaning.
type Ledger []UserAnswer

// Record upserts an answer and returns the updated ledger.
func (l Ledger) Record(a UserAnswer) Ledger {
	for i := range l {
		if l[i].QuestionID == a.QuestionID {
			l[i] = a
			return l
		}
	}
	return append(l, a)
}

// Get returns the answer for a question id, if any.
func (l Ledger) Get(questionID int) (UserAnswer, bool) {
	for _, a := range l {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return UserAnswer{}, false
}

// IsAnswered reports whether the question has a usable answer. Text-input
// questions require a non-blank committed string; every other kind counts
// any recorded entry, including a slider at position 0.
func (l Ledger) IsAnswered(q Question) bool {
	a, ok := l.Get(q.ID)
	if !ok {
		return false
	}
	if q.Type == TypeTextInput {
		return a.Value.Kind == ValueText && strings.TrimSpace(a.Value.Text) != ""
	}
	return true
}
