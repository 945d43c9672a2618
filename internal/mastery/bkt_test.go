package mastery

import (
	"math"
	"testing"

	"github.com/brightpath/tutor/internal/config"
)

func defaultParams() config.BKTParams {
	return config.BKTParams{PInit: 0.25, PLearn: 0.20, PGuess: 0.20, PSlip: 0.10}
}

func TestUpdateProbability_KnownValues(t *testing.T) {
	p := defaultParams()
	tests := []struct {
		name    string
		prior   float64
		correct bool
		want    float64
	}{
		// posterior(0.25, correct) = 0.225/0.375 = 0.6; +learn = 0.68
		{"correct from prior", 0.25, true, 0.68},
		// posterior(0.25, wrong) = 0.025/0.625 = 0.04; +learn = 0.232
		{"wrong from prior", 0.25, false, 0.232},
	}
	for _, tt := range tests {
		got := UpdateProbability(tt.prior, tt.correct, p)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestUpdateProbability_CorrectRaisesWrongLowers(t *testing.T) {
	p := defaultParams()
	prior := 0.5
	if up := UpdateProbability(prior, true, p); up <= prior {
		t.Errorf("correct answer should raise probability: %v -> %v", prior, up)
	}
	// One wrong answer must not go above the evidence-free transition.
	down := UpdateProbability(prior, false, p)
	noEvidence := prior + (1-prior)*p.PLearn
	if down >= noEvidence {
		t.Errorf("wrong answer should land below the no-evidence update: got %v, ceiling %v", down, noEvidence)
	}
}

func TestUpdateProbability_CorrectStreakConverges(t *testing.T) {
	p := defaultParams()
	prob := p.PInit
	for i := 0; i < 10; i++ {
		next := UpdateProbability(prob, true, p)
		if next < prob {
			t.Fatalf("answer %d: probability dropped %v -> %v", i+1, prob, next)
		}
		prob = next
	}
	if prob <= 0.95 {
		t.Errorf("10 correct answers should exceed 0.95, got %v", prob)
	}
}

func TestUpdateProbability_WrongStreakFallsBelowStruggle(t *testing.T) {
	p := defaultParams()
	prob := p.PInit
	for i := 0; i < 3; i++ {
		prob = UpdateProbability(prob, false, p)
	}
	if prob >= 0.25 {
		t.Errorf("3 wrong answers from the prior should fall below 0.25, got %v", prob)
	}
}

func TestUpdateProbability_Bounds(t *testing.T) {
	p := defaultParams()
	for _, prior := range []float64{0, 0.001, 0.5, 0.999, 1} {
		for _, correct := range []bool{true, false} {
			got := UpdateProbability(prior, correct, p)
			if got < 0 || got > 1 {
				t.Errorf("UpdateProbability(%v, %v) = %v out of [0, 1]", prior, correct, got)
			}
		}
	}
}

func TestPosterior_ZeroDenominatorKeepsPrior(t *testing.T) {
	// prior=0 and pGuess=0 on a correct answer makes the denominator zero.
	p := config.BKTParams{PInit: 0, PLearn: 0.2, PGuess: 0, PSlip: 0.1}
	if got := posterior(0, true, p); got != 0 {
		t.Errorf("got %v, want prior 0", got)
	}
}
