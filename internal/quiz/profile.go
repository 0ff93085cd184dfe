package quiz

import (
	"fmt"
	"math"
	"strings"
)

// ChartData is the radar chart series derived from normalized scores, with
// each dimension mapped linearly from [-100, 100] onto [0, 100].
type ChartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// chartLabels matches [mind, energy, nature, tactics, identity], each named
// after its positive pole.
var chartLabels = []string{"Extroversion", "Intuition", "Feeling", "Prospecting", "Turbulence"}

// BuildChartData converts scores into chart-ready series in fixed label order.
func BuildChartData(scores Dimensions) ChartData {
	toPercent := func(s float64) float64 { return (s + 100) / 2 }
	return ChartData{
		Labels: chartLabels,
		Values: []float64{
			toPercent(scores.Mind),
			toPercent(scores.Energy),
			toPercent(scores.Nature),
			toPercent(scores.Tactics),
			toPercent(scores.Identity),
		},
	}
}

// BuildProfileText renders scores and archetype into the structured text
// block handed to the analysis collaborator. The collaborator has no other
// context, so this must be deterministic and information-complete. The
// qualitative answer is appended verbatim (trimmed) when non-empty.
func BuildProfileText(scores Dimensions, archetype Archetype, qualitative string) string {
	toPercent := func(score float64, pos, neg string) string {
		val := roundHalfUp((score + 100) / 2)
		if score > 0 {
			return fmt.Sprintf("%d%% %s", val, pos)
		}
		return fmt.Sprintf("%d%% %s", 100-val, neg)
	}

	parts := []string{
		fmt.Sprintf("**Personality Archetype:** %s (%s)", archetype.Name, archetype.Type),
		fmt.Sprintf("**Archetype Description:** %s", archetype.Description),
		"\n**Core Trait Analysis:**",
		fmt.Sprintf("- **Mind:** %s", toPercent(scores.Mind, "Extraverted", "Introverted")),
		fmt.Sprintf("- **Energy:** %s", toPercent(scores.Energy, "Intuitive", "Observant")),
		fmt.Sprintf("- **Nature:** %s", toPercent(scores.Nature, "Feeling", "Thinking")),
		fmt.Sprintf("- **Tactics:** %s", toPercent(scores.Tactics, "Prospecting", "Judging")),
		fmt.Sprintf("- **Identity:** %s", toPercent(scores.Identity, "Turbulent", "Assertive")),
	}

	if trimmed := strings.TrimSpace(qualitative); trimmed != "" {
		parts = append(parts, fmt.Sprintf("\n**User's Definition of a Fulfilling Career:** %q", trimmed))
	}

	return strings.Join(parts, "\n")
}

// roundHalfUp rounds half away from zero for non-negative input, matching
// the rounding the chart percentages were authored against.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
