// Package review surfaces the spaced-repetition queue derived from
// nextReviewAt on mastery records and feeds retention probe results back
// into them. The gate's retention criterion reads what RecordProbe writes.
package review

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/mastery"
	"github.com/brightpath/tutor/internal/store"
)

const maxProbeRetries = 3

// ErrInvalidScore is returned when a probe score falls outside [0, 1].
var ErrInvalidScore = errors.New("retention score must be in [0, 1]")

// Status classifies a concept against its review due date. A concept is
// overdue once it is past due by more than half its level's interval.
type Status string

const (
	StatusNotDue  Status = "not_due"
	StatusDue     Status = "due"
	StatusOverdue Status = "overdue"
)

// Item is one entry in a student's review queue.
type Item struct {
	ConceptID      string    `json:"conceptId"`
	ConceptName    string    `json:"conceptName,omitempty"`
	Level          string    `json:"level"`
	NextReviewAt   time.Time `json:"nextReviewAt"`
	Status         Status    `json:"status"`
	OverdueDays    float64   `json:"overdueDays"`
	RetentionScore *float64  `json:"retentionScore,omitempty"`
}

// Service computes review queues and applies retention probe outcomes.
type Service struct {
	records store.MasteryRepo
	graph   *curriculum.Graph
	cfg     *config.Config
	log     *logging.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates a review service.
func NewService(records store.MasteryRepo, graph *curriculum.Graph, cfg *config.Config, log *logging.Logger) *Service {
	return &Service{records: records, graph: graph, cfg: cfg, log: log, now: time.Now}
}

// DueForStudent returns the student's due and overdue concepts, most
// overdue first, concept id breaking ties. Concepts not yet due are
// excluded; an empty queue is a normal result.
func (s *Service) DueForStudent(ctx context.Context, studentID string) ([]Item, error) {
	recs, err := s.records.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load mastery records: %w", err)
	}

	now := s.now()
	items := make([]Item, 0, len(recs))
	for _, rec := range recs {
		if rec.NextReviewAt.IsZero() || now.Before(rec.NextReviewAt) {
			continue
		}
		items = append(items, s.item(rec, now))
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].OverdueDays != items[j].OverdueDays {
			return items[i].OverdueDays > items[j].OverdueDays
		}
		return items[i].ConceptID < items[j].ConceptID
	})
	return items, nil
}

func (s *Service) item(rec *store.MasteryRecord, now time.Time) Item {
	it := Item{
		ConceptID:      rec.ConceptID,
		Level:          rec.Level,
		NextReviewAt:   rec.NextReviewAt,
		OverdueDays:    now.Sub(rec.NextReviewAt).Hours() / 24,
		RetentionScore: rec.RetentionScore,
	}
	if node, err := s.graph.Node(rec.ConceptID); err == nil {
		it.ConceptName = node.Name
	}
	it.Status = StatusDue
	if it.OverdueDays > s.graceDays(mastery.Level(rec.Level)) {
		it.Status = StatusOverdue
	}
	return it
}

// graceDays is half the level's review interval: a concept that far past
// due has likely decayed and its review should jump the queue.
func (s *Service) graceDays(level mastery.Level) float64 {
	due := mastery.NextReviewAt(level, time.Time{}, s.cfg.Review)
	return due.Sub(time.Time{}).Hours() / 24 / 2
}

// RecordProbe stores a retention probe score on the mastery record and
// reschedules the next review: a passing probe restarts the level's full
// interval, a failing one brings the concept back on the shortest one.
// Version conflicts are re-read and re-applied a bounded number of times.
func (s *Service) RecordProbe(ctx context.Context, studentID, conceptID string, score float64) (*store.MasteryRecord, error) {
	if score < 0 || score > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidScore, score)
	}

	for attempt := 0; attempt < maxProbeRetries; attempt++ {
		rec, err := s.records.Get(ctx, studentID, conceptID)
		if err != nil {
			return nil, err
		}

		now := s.now()
		rec.RetentionScore = &score
		if score >= s.cfg.Gate.RetentionThreshold {
			rec.NextReviewAt = mastery.NextReviewAt(mastery.Level(rec.Level), now, s.cfg.Review)
		} else {
			rec.NextReviewAt = now.AddDate(0, 0, s.cfg.Review.NoviceDays)
		}

		if err := s.records.Update(ctx, rec); err != nil {
			if errors.Is(err, store.ErrConflict) {
				continue
			}
			return nil, fmt.Errorf("save retention probe: %w", err)
		}
		return rec, nil
	}

	s.log.Warn("retention probe contention",
		"studentId", studentID, "conceptId", conceptID)
	return nil, mastery.ErrUpdateContention
}
