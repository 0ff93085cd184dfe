package quiz

import "testing"

func TestResolveArchetypeAllCombinations(t *testing.T) {
	signs := []struct {
		score  float64
		letter [4]string
	}{
		{-50, [4]string{"I", "S", "T", "J"}},
		{50, [4]string{"E", "N", "F", "P"}},
	}

	for _, m := range signs {
		for _, e := range signs {
			for _, n := range signs {
				for _, tc := range signs {
					want := m.letter[0] + e.letter[1] + n.letter[2] + tc.letter[3]
					t.Run(want, func(t *testing.T) {
						scores := Dimensions{Mind: m.score, Energy: e.score, Nature: n.score, Tactics: tc.score}
						got := ResolveArchetype(scores)
						if got.Type != want {
							t.Errorf("type = %s, want %s", got.Type, want)
						}
						if got.Name == "" || got.Description == "" {
							t.Errorf("archetype %s missing name or description", want)
						}

						// Deterministic lookup.
						if again := ResolveArchetype(scores); again != got {
							t.Error("resolving the same scores twice differed")
						}
					})
				}
			}
		}
	}
}

func TestResolveArchetypeZeroIsPositivePole(t *testing.T) {
	// A score of exactly 0 counts as the positive pole, per the < 0 tests.
	got := ResolveArchetype(Dimensions{})
	if got.Type != "ENFP" {
		t.Errorf("type = %s, want ENFP", got.Type)
	}
}

func TestResolveArchetypeIgnoresIdentity(t *testing.T) {
	base := Dimensions{Mind: -10, Energy: -10, Nature: -10, Tactics: -10}
	assertive := base
	assertive.Identity = -100
	turbulent := base
	turbulent.Identity = 100

	if ResolveArchetype(assertive) != ResolveArchetype(turbulent) {
		t.Error("identity must not affect archetype selection")
	}
}
