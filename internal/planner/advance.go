package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/store"
)

// Advancement reports what changed when a mastered concept moved a plan's
// cursor forward.
type Advancement struct {
	Plan          *Plan   `json:"plan"`
	ConceptID     string  `json:"conceptId"`
	ElapsedHours  float64 `json:"elapsedHours"`
	PlanCompleted bool    `json:"planCompleted"`
}

// AdvanceForConcept moves the cursor of every active plan whose current
// concept matches conceptID. Elapsed hours are taken from the student's
// actual time on the concept in the answer log, and the velocity is
// recomputed as a trailing average so the ETA adapts over time.
//
// Returns the advancements applied; an empty slice when no active plan was
// waiting on this concept (not an error: mastery can arrive outside any
// plan).
func (s *Service) AdvanceForConcept(ctx context.Context, studentID, conceptID string) ([]*Advancement, error) {
	active, err := s.plans.ActiveByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load active plans: %w", err)
	}

	totalMs, err := s.responses.TotalTimeMs(ctx, studentID, conceptID)
	if err != nil {
		return nil, fmt.Errorf("load concept time: %w", err)
	}
	elapsedHours := float64(totalMs) / float64(time.Hour/time.Millisecond)

	var out []*Advancement
	for _, rec := range active {
		if rec.CurrentConceptIndex >= len(rec.ConceptSequence) {
			continue
		}
		if rec.ConceptSequence[rec.CurrentConceptIndex] != conceptID {
			continue
		}

		rec.CurrentConceptIndex++
		rec.HoursCompleted += elapsedHours
		rec.AdvanceLog = append(rec.AdvanceLog, store.PlanAdvance{
			ConceptID: conceptID,
			Hours:     elapsedHours,
			At:        s.now(),
		})
		// Keep one entry beyond the window so the windowed span has an
		// anchor once the log is full.
		if keep := s.cfg.VelocityWindow + 1; s.cfg.VelocityWindow > 0 && len(rec.AdvanceLog) > keep {
			rec.AdvanceLog = rec.AdvanceLog[len(rec.AdvanceLog)-keep:]
		}
		rec.VelocityHoursPerWeek = s.trailingVelocity(rec)

		completed := rec.CurrentConceptIndex >= len(rec.ConceptSequence)
		if completed {
			rec.Status = store.PlanCompleted
			rec.ProjectedCompletionDate = s.now()
		} else {
			remaining := s.remainingHours(rec)
			rec.ProjectedCompletionDate = projectCompletion(s.now(), remaining, rec.VelocityHoursPerWeek)
		}

		if err := s.plans.Update(ctx, rec); err != nil {
			return nil, fmt.Errorf("advance plan %s: %w", rec.ID, err)
		}

		out = append(out, &Advancement{
			Plan:          fromRecord(rec),
			ConceptID:     conceptID,
			ElapsedHours:  elapsedHours,
			PlanCompleted: completed,
		})
	}
	return out, nil
}

// trailingVelocity blends the plan's configured pace with the pace
// measured over the last VelocityWindow advances. The span runs from the
// advance preceding the window (plan creation while the log is short) to
// now; under a week of history the configured pace stands alone.
func (s *Service) trailingVelocity(rec *store.PlanRecord) float64 {
	window := rec.AdvanceLog
	if w := s.cfg.VelocityWindow; w > 0 && len(window) > w {
		window = window[len(window)-w:]
	}
	if len(window) == 0 {
		return rec.VelocityHoursPerWeek
	}

	start := rec.CreatedAt
	if skipped := len(rec.AdvanceLog) - len(window); skipped > 0 {
		start = rec.AdvanceLog[skipped-1].At
	}
	weeks := s.now().Sub(start).Hours() / (24 * 7)
	if weeks < 1 {
		return rec.VelocityHoursPerWeek
	}

	var hours float64
	for _, a := range window {
		hours += a.Hours
	}
	measured := hours / weeks
	if measured <= 0 {
		return rec.VelocityHoursPerWeek
	}
	return (rec.VelocityHoursPerWeek + measured) / 2
}

// remainingHours sums the estimated hours of concepts past the cursor.
func (s *Service) remainingHours(rec *store.PlanRecord) float64 {
	var total float64
	for _, id := range rec.ConceptSequence[rec.CurrentConceptIndex:] {
		node, err := s.graph.Node(id)
		if err != nil {
			continue
		}
		total += s.EstimateHours(node.Difficulty)
	}
	return total
}

// Get returns a plan by id.
func (s *Service) Get(ctx context.Context, planID string) (*Plan, error) {
	rec, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

// Next returns the concept at the plan's cursor. The second return is
// false when the plan is finished.
func (s *Service) Next(ctx context.Context, planID string) (*NextConcept, bool, error) {
	rec, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, false, err
	}
	if rec.CurrentConceptIndex >= len(rec.ConceptSequence) {
		return nil, false, nil
	}
	id := rec.ConceptSequence[rec.CurrentConceptIndex]
	node, err := s.graph.Node(id)
	if err != nil {
		return nil, false, &curriculum.ErrIntegrity{
			Problems: []string{fmt.Sprintf("plan %s references unknown concept %q", planID, id)},
		}
	}
	return &NextConcept{
		Node:      node,
		Index:     rec.CurrentConceptIndex,
		Remaining: len(rec.ConceptSequence) - rec.CurrentConceptIndex,
	}, true, nil
}

// NextForStudent returns the cursor concept of the student's oldest active
// plan. The second return is false when the student has no active plan or
// every active plan is finished.
func (s *Service) NextForStudent(ctx context.Context, studentID string) (*NextConcept, bool, error) {
	active, err := s.plans.ActiveByStudent(ctx, studentID)
	if err != nil {
		return nil, false, fmt.Errorf("load active plans: %w", err)
	}
	for _, rec := range active {
		if rec.CurrentConceptIndex < len(rec.ConceptSequence) {
			next, ok, err := s.Next(ctx, rec.ID)
			if err != nil || !ok {
				if err != nil && !errors.Is(err, store.ErrNotFound) {
					return nil, false, err
				}
				continue
			}
			return next, true, nil
		}
	}
	return nil, false, nil
}

// Pause and Resume flip a plan between active and paused; every other
// status transition is one-directional.

func (s *Service) Pause(ctx context.Context, planID string) (*Plan, error) {
	return s.setStatus(ctx, planID, store.PlanActive, store.PlanPaused)
}

func (s *Service) Resume(ctx context.Context, planID string) (*Plan, error) {
	return s.setStatus(ctx, planID, store.PlanPaused, store.PlanActive)
}

// Abandon marks a plan abandoned from any non-terminal status.
func (s *Service) Abandon(ctx context.Context, planID string) (*Plan, error) {
	rec, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if rec.Status == store.PlanCompleted || rec.Status == store.PlanAbandoned {
		return nil, fmt.Errorf("plan %s is %s and cannot be abandoned", planID, rec.Status)
	}
	rec.Status = store.PlanAbandoned
	if err := s.plans.Update(ctx, rec); err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

func (s *Service) setStatus(ctx context.Context, planID, from, to string) (*Plan, error) {
	rec, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if rec.Status != from {
		return nil, fmt.Errorf("plan %s is %s, expected %s", planID, rec.Status, from)
	}
	rec.Status = to
	if err := s.plans.Update(ctx, rec); err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}
