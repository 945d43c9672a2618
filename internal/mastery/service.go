package mastery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/store"
)

// maxUpdateRetries bounds the re-read/re-apply loop on version conflicts.
const maxUpdateRetries = 3

// ErrUpdateContention is returned when an update still conflicts after the
// bounded retries. Callers treat it as a transient failure.
var ErrUpdateContention = errors.New("mastery update contention, retries exhausted")

// Service applies BKT updates to per-student mastery records.
//
// Updates to the same (student, concept) pair are serialized with a per-key
// lock; the store's version check catches writers from other processes, and
// conflicted writes are re-read and re-applied a bounded number of times.
type Service struct {
	records store.MasteryRepo
	cfg     *config.Config
	log     *logging.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a mastery service.
func NewService(records store.MasteryRepo, cfg *config.Config, log *logging.Logger) *Service {
	return &Service{
		records: records,
		cfg:     cfg,
		log:     log,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *Service) keyLock(studentID, conceptID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := studentID + "\x00" + conceptID
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// UpdateMastery runs one BKT observation for (studentID, conceptID) in the
// given curriculum domain and returns the updated record. The record is
// created lazily on the first answer; a missing record is not an error.
func (s *Service) UpdateMastery(ctx context.Context, studentID, conceptID, domain string, isCorrect bool) (*store.MasteryRecord, error) {
	l := s.keyLock(studentID, conceptID)
	l.Lock()
	defer l.Unlock()

	params := s.cfg.BKT.ForDomain(domain)

	var lastErr error
	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		rec, err := s.records.Get(ctx, studentID, conceptID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			rec = s.newRecord(studentID, conceptID, params)
			s.apply(rec, isCorrect, params)
			if err := s.records.Create(ctx, rec); err != nil {
				if errors.Is(err, store.ErrConflict) {
					// Another writer created the row first; re-read and apply.
					lastErr = err
					continue
				}
				return nil, fmt.Errorf("create mastery record: %w", err)
			}
			return rec, nil
		case err != nil:
			return nil, fmt.Errorf("load mastery record: %w", err)
		}

		s.apply(rec, isCorrect, params)
		if err := s.records.Update(ctx, rec); err != nil {
			if errors.Is(err, store.ErrConflict) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("save mastery record: %w", err)
		}
		return rec, nil
	}

	s.log.Warn("mastery update contention",
		"studentId", studentID, "conceptId", conceptID, "lastErr", lastErr)
	return nil, ErrUpdateContention
}

// Get returns the record for a pair, or ErrNotFound if the student has
// never practiced the concept.
func (s *Service) Get(ctx context.Context, studentID, conceptID string) (*store.MasteryRecord, error) {
	return s.records.Get(ctx, studentID, conceptID)
}

// MasteredSet returns the ids of concepts the student holds at the
// mastered level.
func (s *Service) MasteredSet(ctx context.Context, studentID string) (map[string]bool, error) {
	recs, err := s.records.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load mastery records: %w", err)
	}
	out := make(map[string]bool)
	for _, r := range recs {
		if Level(r.Level) == LevelMastered {
			out[r.ConceptID] = true
		}
	}
	return out, nil
}

// RecordsByStudent returns all of a student's mastery records.
func (s *Service) RecordsByStudent(ctx context.Context, studentID string) ([]*store.MasteryRecord, error) {
	return s.records.GetByStudent(ctx, studentID)
}

func (s *Service) newRecord(studentID, conceptID string, params config.BKTParams) *store.MasteryRecord {
	return &store.MasteryRecord{
		StudentID:      studentID,
		ConceptID:      conceptID,
		BKTProbability: params.PInit,
		Level:          string(LevelFor(params.PInit, s.cfg.Levels)),
	}
}

// apply mutates rec in place with one BKT step plus the derived fields.
func (s *Service) apply(rec *store.MasteryRecord, isCorrect bool, params config.BKTParams) {
	now := time.Now()

	rec.BKTProbability = UpdateProbability(rec.BKTProbability, isCorrect, params)
	rec.PracticeCount++
	if isCorrect {
		rec.CorrectCount++
	}

	level := LevelFor(rec.BKTProbability, s.cfg.Levels)
	rec.Level = string(level)
	rec.LastPracticedAt = now
	rec.NextReviewAt = NextReviewAt(level, now, s.cfg.Review)
}
