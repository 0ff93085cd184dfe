package quiz

import (
	"math/rand/v2"
	"sort"
)

// BuildSession assembles one quiz attempt from the bank: all pillars are
// flattened into a single sequence, shuffled with rng, and renumbered 1..N.
// Downstream answer matching uses these session-local ids, never the bank's
// original ids. Passing a seeded rng makes the order reproducible for tests.
func BuildSession(bank Bank, rng *rand.Rand) []Question {
	// Flatten in stable pillar order so the only nondeterminism is the
	// shuffle itself.
	pillars := make([]string, 0, len(bank))
	for p := range bank {
		pillars = append(pillars, p)
	}
	sort.Strings(pillars)

	var questions []Question
	for _, p := range pillars {
		questions = append(questions, bank[p]...)
	}

	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	for i := range questions {
		questions[i].ID = i + 1
	}
	return questions
}

// QualitativeAnswer finds the committed free-text answer for the session's
// qualitative question. Returns false when the question was never answered.
func QualitativeAnswer(questions []Question, ledger Ledger) (string, bool) {
	for _, q := range questions {
		if q.TraitKey != TraitQualitative {
			continue
		}
		if ans, ok := ledger.Get(q.ID); ok && ans.Value.Kind == ValueText {
			return ans.Value.Text, true
		}
	}
	return "", false
}
