package quiz

import (
	"math/rand/v2"
	"testing"
)

func TestBuildSessionRenumbers(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	questions := BuildSession(DefaultBank(), rng)

	if len(questions) != 16 {
		t.Fatalf("expected 16 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID != i+1 {
			t.Errorf("question %d has id %d, want %d", i, q.ID, i+1)
		}
	}

	// Every bank question must appear exactly once, matched by text.
	seen := make(map[string]int)
	for _, q := range questions {
		seen[q.Text]++
	}
	for _, pillar := range DefaultBank() {
		for _, q := range pillar {
			if seen[q.Text] != 1 {
				t.Errorf("question %q appears %d times", q.Text, seen[q.Text])
			}
		}
	}
}

func TestBuildSessionSeededOrderIsReproducible(t *testing.T) {
	a := BuildSession(DefaultBank(), rand.New(rand.NewPCG(9, 9)))
	b := BuildSession(DefaultBank(), rand.New(rand.NewPCG(9, 9)))

	for i := range a {
		if a[i].Text != b[i].Text {
			t.Fatalf("order differs at %d: %q vs %q", i, a[i].Text, b[i].Text)
		}
	}
}

func TestBuildSessionDoesNotMutateBank(t *testing.T) {
	bank := DefaultBank()
	BuildSession(bank, rand.New(rand.NewPCG(3, 3)))

	for _, pillar := range bank {
		for _, q := range pillar {
			if q.ID < 1 || q.ID > 16 {
				t.Errorf("bank question id mutated: %d", q.ID)
			}
		}
	}
	if bank[string(DimMind)][0].ID != 1 {
		t.Errorf("first mind question id = %d, want 1", bank[string(DimMind)][0].ID)
	}
}

func TestQualitativeAnswer(t *testing.T) {
	questions := []Question{
		{ID: 1, Type: TypeSlider, TraitKey: string(DimMind)},
		{ID: 2, Type: TypeTextInput, TraitKey: TraitQualitative},
	}

	if _, ok := QualitativeAnswer(questions, nil); ok {
		t.Error("expected no qualitative answer for empty ledger")
	}

	ledger := Ledger{{QuestionID: 2, Value: TextValue("  helping people  ")}}
	got, ok := QualitativeAnswer(questions, ledger)
	if !ok {
		t.Fatal("expected qualitative answer")
	}
	if got != "  helping people  " {
		t.Errorf("got %q, want the committed value verbatim", got)
	}
}

func TestSessionStateValid(t *testing.T) {
	questions := []Question{{ID: 1}, {ID: 2}, {ID: 3}}

	tests := []struct {
		name  string
		state SessionState
		want  bool
	}{
		{"in progress", SessionState{Questions: questions, QuestionIndex: 1}, true},
		{"at start", SessionState{Questions: questions, QuestionIndex: 0}, true},
		{"index at length is stale", SessionState{Questions: questions, QuestionIndex: 3}, false},
		{"index past length", SessionState{Questions: questions, QuestionIndex: 7}, false},
		{"negative index", SessionState{Questions: questions, QuestionIndex: -1}, false},
		{"no questions", SessionState{QuestionIndex: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
