package quiz

import (
	"strings"
	"testing"
)

func TestBuildChartData(t *testing.T) {
	scores := Dimensions{Mind: -100, Energy: -50, Nature: 0, Tactics: 50, Identity: 100}
	got := BuildChartData(scores)

	wantLabels := []string{"Extroversion", "Intuition", "Feeling", "Prospecting", "Turbulence"}
	for i, l := range wantLabels {
		if got.Labels[i] != l {
			t.Errorf("label %d = %q, want %q", i, got.Labels[i], l)
		}
	}
	wantValues := []float64{0, 25, 50, 75, 100}
	for i, v := range wantValues {
		if got.Values[i] != v {
			t.Errorf("value %d = %v, want %v", i, got.Values[i], v)
		}
	}
}

func TestBuildProfileTextExtremes(t *testing.T) {
	scores := Dimensions{Mind: -100, Energy: -100, Nature: -100, Tactics: -100, Identity: 100}
	archetype := ResolveArchetype(scores)
	text := BuildProfileText(scores, archetype, "")

	for _, want := range []string{
		"**Personality Archetype:** The Logistician (ISTJ)",
		"100% Introverted",
		"100% Observant",
		"100% Thinking",
		"100% Judging",
		"100% Turbulent",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("profile text missing %q:\n%s", want, text)
		}
	}
}

func TestBuildProfileTextRounding(t *testing.T) {
	// 50 maps to round(75) toward the positive pole; -50 maps to 75 toward
	// the negative pole.
	scores := Dimensions{Mind: 50, Energy: -50}
	text := BuildProfileText(scores, ResolveArchetype(scores), "")

	if !strings.Contains(text, "75% Extraverted") {
		t.Errorf("expected 75%% Extraverted in:\n%s", text)
	}
	if !strings.Contains(text, "75% Observant") {
		t.Errorf("expected 75%% Observant in:\n%s", text)
	}
}

func TestBuildProfileTextQualitative(t *testing.T) {
	scores := Dimensions{}
	archetype := ResolveArchetype(scores)

	t.Run("trimmed and quoted", func(t *testing.T) {
		text := BuildProfileText(scores, archetype, "  building things that last  ")
		if !strings.Contains(text, `"building things that last"`) {
			t.Errorf("qualitative answer missing or untrimmed:\n%s", text)
		}
	})

	t.Run("blank omitted", func(t *testing.T) {
		text := BuildProfileText(scores, archetype, "   ")
		if strings.Contains(text, "Fulfilling Career") {
			t.Errorf("blank qualitative answer must be omitted:\n%s", text)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := BuildProfileText(scores, archetype, "x")
		b := BuildProfileText(scores, archetype, "x")
		if a != b {
			t.Error("profile text must be deterministic")
		}
	})
}
