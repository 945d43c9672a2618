package mastery

import "github.com/brightpath/tutor/internal/config"

// posterior applies Bayes' rule to the prior P(known) given one observed
// answer, using pGuess/pSlip as the observation model.
func posterior(prior float64, correct bool, p config.BKTParams) float64 {
	var num, denom float64
	if correct {
		num = prior * (1 - p.PSlip)
		denom = num + (1-prior)*p.PGuess
	} else {
		num = prior * p.PSlip
		denom = num + (1-prior)*(1-p.PGuess)
	}
	if denom == 0 {
		return prior
	}
	return num / denom
}

// UpdateProbability runs one full BKT step: the evidence posterior followed
// by the learning transition. The result stays within [0, 1].
func UpdateProbability(prior float64, correct bool, p config.BKTParams) float64 {
	post := posterior(prior, correct, p)
	updated := post + (1-post)*p.PLearn
	return clamp01(updated)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
