package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an optimistic update lost the race: the
// record's version changed between read and write. Callers re-read and
// re-apply a bounded number of times.
var ErrConflict = errors.New("version conflict")

// MasteryRepo provides read-modify-write access to mastery records.
type MasteryRepo interface {
	// Get returns the record for (studentID, conceptID) or ErrNotFound.
	Get(ctx context.Context, studentID, conceptID string) (*MasteryRecord, error)

	// GetByStudent returns all of a student's records.
	GetByStudent(ctx context.Context, studentID string) ([]*MasteryRecord, error)

	// Create inserts a new record with Version 1. Fails if the
	// (student, concept) pair already exists.
	Create(ctx context.Context, rec *MasteryRecord) error

	// Update writes the record if the stored version matches rec.Version,
	// bumping the version on success. Returns ErrConflict on a stale
	// version and ErrNotFound if the record vanished.
	Update(ctx context.Context, rec *MasteryRecord) error
}

// ResponseRepo provides append and window queries over the answer log.
type ResponseRepo interface {
	// Append records one answered question. The log is append-only.
	Append(ctx context.Context, resp *QuestionResponse) error

	// RecentByConcept returns up to lastN responses for the pair, most
	// recent first.
	RecentByConcept(ctx context.Context, studentID, conceptID string, lastN int) ([]*QuestionResponse, error)

	// TotalTimeMs returns the summed response time the student has spent
	// answering questions on the concept.
	TotalTimeMs(ctx context.Context, studentID, conceptID string) (int64, error)
}

// SessionRepo persists learning sessions.
type SessionRepo interface {
	Create(ctx context.Context, rec *SessionRecord) error
	Get(ctx context.Context, id string) (*SessionRecord, error)
	Update(ctx context.Context, rec *SessionRecord) error
}

// PlanRepo persists learning plans.
type PlanRepo interface {
	Create(ctx context.Context, rec *PlanRecord) error
	Get(ctx context.Context, id string) (*PlanRecord, error)

	// ActiveByStudent returns the student's active plans, oldest first.
	ActiveByStudent(ctx context.Context, studentID string) ([]*PlanRecord, error)

	Update(ctx context.Context, rec *PlanRecord) error
}
