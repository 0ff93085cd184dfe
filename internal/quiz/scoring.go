package quiz

// ComputeScores reduces a session's questions and answer ledger into
// normalized per-dimension scores in [-100, 100]. It is pure: identical
// inputs always yield identical output.
//
// For each scored question both the earned score and the maximum achievable
// magnitude are accumulated; unanswered questions still grow the achievable
// side, so skipping a question dilutes the normalized result toward 0 rather
// than shrinking the denominator. For choice questions the achievable scan
// covers every dimension any option's effects touch, not only the question's
// declared trait.
func ComputeScores(questions []Question, answers Ledger) Dimensions {
	var scores, maxScores Dimensions

	for _, q := range questions {
		dim, scored := q.scoredDimension()
		if !scored {
			continue
		}

		answer, answered := answers.Get(q.ID)

		switch q.Type {
		case TypeMultipleChoice, TypeImageChoice:
			for _, d := range AllDimensions {
				maxEffect := 0.0
				for _, opt := range q.Options {
					if e, ok := opt.Effects[d]; ok {
						if abs := absFloat(e); abs > maxEffect {
							maxEffect = abs
						}
					}
				}
				maxScores.add(d, maxEffect)

				if !answered {
					continue
				}
				if opt, ok := selectedOption(q, answer); ok {
					if e, ok := opt.Effects[d]; ok {
						scores.add(d, e)
					}
				}
			}

		case TypeSlider:
			maxScores.add(dim, sliderMaxEffect)
			if answered && answer.Value.Kind == ValueNumber {
				v := answer.Value.Number
				scores.add(dim, ((v-sliderNeutral)/sliderNeutral)*sliderMaxEffect)
			}

		case TypeTextInput, TypeRanking, TypeRating:
			// No scoring contribution.
		}
	}

	for _, d := range AllDimensions {
		if maxScores.Get(d) > 0 {
			normalized := (scores.Get(d) / maxScores.Get(d)) * normalizationRange
			setScore(&scores, d, normalized)
		}
	}
	return scores
}

// selectedOption matches an answer back to the option it chose by text.
func selectedOption(q Question, a UserAnswer) (AnswerOption, bool) {
	if a.Value.Kind != ValueText {
		return AnswerOption{}, false
	}
	for _, opt := range q.Options {
		if opt.Text == a.Value.Text {
			return opt, true
		}
	}
	return AnswerOption{}, false
}

func setScore(d *Dimensions, dim Dimension, v float64) {
	switch dim {
	case DimMind:
		d.Mind = v
	case DimEnergy:
		d.Energy = v
	case DimNature:
		d.Nature = v
	case DimTactics:
		d.Tactics = v
	case DimIdentity:
		d.Identity = v
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
