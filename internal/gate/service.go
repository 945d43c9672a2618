package gate

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/store"
)

// Service evaluates the multi-criteria "true mastery" gate. BKT alone is a
// smoothed running estimate; the gate checks four independent, falsifiable
// criteria against the raw answer log.
type Service struct {
	responses store.ResponseRepo
	records   store.MasteryRepo
	cfg       config.GateConfig
	log       *logging.Logger
}

// NewService creates a gate service.
func NewService(responses store.ResponseRepo, records store.MasteryRepo, cfg config.GateConfig, log *logging.Logger) *Service {
	return &Service{responses: responses, records: records, cfg: cfg, log: log}
}

// Evaluate computes the gate verdict for (studentID, conceptID).
//
// With fewer than the window size of responses the gate passes
// unconditionally: insufficient data must never block a student. As a side
// effect, the measured second-half mean response time is written back to
// the mastery record as speedTrendMs for future comparisons.
func (s *Service) Evaluate(ctx context.Context, studentID, conceptID string) (*Result, error) {
	window, err := s.responses.RecentByConcept(ctx, studentID, conceptID, s.cfg.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("load response window: %w", err)
	}

	if len(window) < s.cfg.WindowSize {
		return &Result{
			Passed:            true,
			Recommendation:    RecommendPractice,
			ResponsesInWindow: len(window),
			InsufficientData:  true,
			SpeedTrend:        TrendFlat,
		}, nil
	}

	// The repo returns most-recent-first; the criteria want chronological.
	chrono := make([]*store.QuestionResponse, len(window))
	for i, r := range window {
		chrono[len(window)-1-i] = r
	}

	rec, err := s.records.Get(ctx, studentID, conceptID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load mastery record: %w", err)
	}

	accuracy := s.accuracyCriterion(chrono)
	consistency := s.consistencyCriterion(chrono)
	retention := s.retentionCriterion(rec)
	speed, trend, secondHalfMean := s.speedCriterion(chrono)

	result := &Result{
		Criteria:          []Criterion{accuracy, consistency, retention, speed},
		ResponsesInWindow: len(chrono),
		SpeedTrend:        trend,
	}
	result.Passed = accuracy.Passed && consistency.Passed && retention.Passed && speed.Passed

	switch {
	case result.Passed:
		result.Recommendation = RecommendAdvance
	case accuracy.Passed && retention.Passed && !speed.Passed:
		result.Recommendation = RecommendFluencyDrill
	case accuracy.Passed && !retention.Passed:
		result.Recommendation = RecommendRetentionReview
	default:
		result.Recommendation = RecommendPractice
	}

	if rec != nil {
		s.persistSpeedTrend(ctx, rec, secondHalfMean)
	}

	return result, nil
}

func (s *Service) accuracyCriterion(window []*store.QuestionResponse) Criterion {
	correct := 0
	for _, r := range window {
		if r.IsCorrect {
			correct++
		}
	}
	acc := float64(correct) / float64(len(window))
	return Criterion{
		Name:   "accuracy",
		Passed: acc >= s.cfg.AccuracyThreshold,
		Value:  acc,
		Bound:  s.cfg.AccuracyThreshold,
		Detail: fmt.Sprintf("%d of %d correct", correct, len(window)),
	}
}

func (s *Service) consistencyCriterion(window []*store.QuestionResponse) Criterion {
	types := make(map[string]bool)
	for _, r := range window {
		if r.IsCorrect {
			types[r.QuestionType] = true
		}
	}
	return Criterion{
		Name:   "consistency",
		Passed: len(types) >= s.cfg.MinQuestionTypes,
		Value:  float64(len(types)),
		Bound:  float64(s.cfg.MinQuestionTypes),
		Detail: fmt.Sprintf("correct answers span %d question types", len(types)),
	}
}

// retentionCriterion defaults to pass when no probe has ever been taken:
// absence of data must not block a student who hasn't been probed yet.
func (s *Service) retentionCriterion(rec *store.MasteryRecord) Criterion {
	if rec == nil || rec.RetentionScore == nil {
		return Criterion{
			Name:   "retention",
			Passed: true,
			Bound:  s.cfg.RetentionThreshold,
			Detail: "no retention probe taken",
		}
	}
	score := *rec.RetentionScore
	return Criterion{
		Name:   "retention",
		Passed: score >= s.cfg.RetentionThreshold,
		Value:  score,
		Bound:  s.cfg.RetentionThreshold,
		Detail: fmt.Sprintf("retention probe scored %.2f", score),
	}
}

// speedCriterion splits the window chronologically in half and compares
// mean response times. It fails only when the trend is strictly slowing.
func (s *Service) speedCriterion(window []*store.QuestionResponse) (Criterion, SpeedTrend, int64) {
	half := len(window) / 2
	firstMean := meanResponseMs(window[:half])
	secondMean := meanResponseMs(window[half:])

	ratio := 1.0
	if firstMean > 0 {
		ratio = float64(secondMean) / float64(firstMean)
	}

	trend := TrendFlat
	switch {
	case ratio <= s.cfg.SpeedImprovingMax:
		trend = TrendImproving
	case ratio >= s.cfg.SpeedSlowingMin:
		trend = TrendSlowing
	}

	return Criterion{
		Name:   "speed",
		Passed: trend != TrendSlowing,
		Value:  ratio,
		Bound:  s.cfg.SpeedSlowingMin,
		Detail: fmt.Sprintf("second-half mean %dms vs first-half %dms", secondMean, firstMean),
	}, trend, secondMean
}

func meanResponseMs(responses []*store.QuestionResponse) int64 {
	if len(responses) == 0 {
		return 0
	}
	var sum int64
	for _, r := range responses {
		sum += r.ResponseTimeMs
	}
	return sum / int64(len(responses))
}

// persistSpeedTrend writes the measured second-half mean back to the
// mastery record. Best effort: an evaluation must not fail because the
// bookkeeping write lost a race.
func (s *Service) persistSpeedTrend(ctx context.Context, rec *store.MasteryRecord, ms int64) {
	rec.SpeedTrendMs = &ms
	if err := s.records.Update(ctx, rec); err != nil {
		s.log.Warn("persist speed trend failed",
			"studentId", rec.StudentID, "conceptId", rec.ConceptID, "err", err)
	}
}
