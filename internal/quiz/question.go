// Package quiz implements the personality assessment engine: the static
// question bank, session assembly, answer bookkeeping, trait scoring,
// archetype resolution, and profile formatting.
package quiz

import (
	"encoding/json"
	"fmt"
)

// Dimension identifies one of the five personality axes.
type Dimension string

const (
	// DimMind measures Introvert (-) vs Extrovert (+).
	DimMind Dimension = "mind"
	// DimEnergy measures Observant (-) vs Intuitive (+).
	DimEnergy Dimension = "energy"
	// DimNature measures Thinking (-) vs Feeling (+).
	DimNature Dimension = "nature"
	// DimTactics measures Judging (-) vs Prospecting (+).
	DimTactics Dimension = "tactics"
	// DimIdentity measures Assertive (-) vs Turbulent (+). It is scored and
	// displayed but does not participate in archetype code selection.
	DimIdentity Dimension = "identity"
)

// AllDimensions lists the scored dimensions in canonical order.
var AllDimensions = [5]Dimension{DimMind, DimEnergy, DimNature, DimTactics, DimIdentity}

// TraitQualitative marks the free-text question that is excluded from all
// scoring arithmetic.
const TraitQualitative = "qualitative_fulfillment"

// QuestionType discriminates the question variants. The scoring engine
// switches over every case; ranking and rating exist in the model but the
// default bank does not use them and they never contribute to scores.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeSlider         QuestionType = "slider"
	TypeImageChoice    QuestionType = "image-choice"
	TypeTextInput      QuestionType = "text-input"
	TypeRanking        QuestionType = "ranking"
	TypeRating         QuestionType = "rating"
)

// AnswerOption is one selectable choice of a multiple-choice or image-choice
// question. Effects holds authored signed weights per dimension.
type AnswerOption struct {
	Text     string                `json:"text"`
	Effects  map[Dimension]float64 `json:"effects,omitempty"`
	ImageURL string                `json:"imageUrl,omitempty"`
}

// Question is one question of a quiz session. IDs are session-local: the
// builder renumbers questions 1..N after shuffling, so persisted answers
// always match against the session's own copy.
type Question struct {
	ID       int            `json:"id"`
	Text     string         `json:"text"`
	Type     QuestionType   `json:"type"`
	TraitKey string         `json:"traitKey"`
	Options  []AnswerOption `json:"options,omitempty"`
	Labels   []string       `json:"labels,omitempty"`
}

// scoredDimension reports the dimension a question is declared against, or
// false for the qualitative question.
func (q Question) scoredDimension() (Dimension, bool) {
	if q.TraitKey == TraitQualitative {
		return "", false
	}
	return Dimension(q.TraitKey), true
}

// ValueKind tags the variant stored in a Value.
type ValueKind int

const (
	// ValueText holds an option text or a committed free-text answer.
	ValueText ValueKind = iota
	// ValueNumber holds a slider position in [0, 100].
	ValueNumber
)

// Value is the tagged answer payload. It marshals to a bare JSON string or
// number so the persisted session document keeps the
// {"questionId": n, "value": ...} shape.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
}

// TextValue returns a text-valued answer payload.
func TextValue(s string) Value { return Value{Kind: ValueText, Text: s} }

// NumberValue returns a number-valued answer payload.
func NumberValue(n float64) Value { return Value{Kind: ValueNumber, Number: n} }

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueNumber:
		return json.Marshal(v.Number)
	default:
		return json.Marshal(v.Text)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Value{Kind: ValueNumber, Number: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Value{Kind: ValueText, Text: s}
		return nil
	}
	return fmt.Errorf("answer value must be a string or a number, got %s", data)
}

// UserAnswer is one committed answer, keyed by session-local question id.
type UserAnswer struct {
	QuestionID int   `json:"questionId"`
	Value      Value `json:"value"`
}

// Dimensions holds one signed score per personality axis. After
// normalization every field lies in [-100, 100]; negative values lean toward
// the first pole (Introvert/Observant/Thinking/Judging/Assertive).
type Dimensions struct {
	Mind     float64 `json:"mind"`
	Energy   float64 `json:"energy"`
	Nature   float64 `json:"nature"`
	Tactics  float64 `json:"tactics"`
	Identity float64 `json:"identity"`
}

// Get returns the score for a dimension.
func (d Dimensions) Get(dim Dimension) float64 {
	switch dim {
	case DimMind:
		return d.Mind
	case DimEnergy:
		return d.Energy
	case DimNature:
		return d.Nature
	case DimTactics:
		return d.Tactics
	case DimIdentity:
		return d.Identity
	}
	return 0
}

// add accumulates into the score for a dimension. Unknown keys are ignored,
// matching the accumulation-by-whatever-appears-in-effects rule.
func (d *Dimensions) add(dim Dimension, v float64) {
	switch dim {
	case DimMind:
		d.Mind += v
	case DimEnergy:
		d.Energy += v
	case DimNature:
		d.Nature += v
	case DimTactics:
		d.Tactics += v
	case DimIdentity:
		d.Identity += v
	}
}
