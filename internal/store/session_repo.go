package store

import (
	"context"
	"fmt"

	"github.com/brightpath/tutor/ent"
	"github.com/brightpath/tutor/ent/learningsession"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, rec *SessionRecord) error {
	builder := r.client.LearningSession.Create().
		SetID(rec.ID).
		SetStudentID(rec.StudentID).
		SetState(rec.State).
		SetCurrentConceptID(rec.CurrentConceptID).
		SetQuestionsAnswered(rec.QuestionsAnswered).
		SetCorrectAnswers(rec.CorrectAnswers).
		SetHintsUsed(rec.HintsUsed)
	if rec.EmotionalStateStart != "" {
		builder = builder.SetEmotionalStateStart(rec.EmotionalStateStart)
	}
	if !rec.StartedAt.IsZero() {
		builder = builder.SetStartedAt(rec.StartedAt)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*SessionRecord, error) {
	row, err := r.client.LearningSession.Query().
		Where(learningsession.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) Update(ctx context.Context, rec *SessionRecord) error {
	builder := r.client.LearningSession.UpdateOneID(rec.ID).
		SetState(rec.State).
		SetCurrentConceptID(rec.CurrentConceptID).
		SetQuestionsAnswered(rec.QuestionsAnswered).
		SetCorrectAnswers(rec.CorrectAnswers).
		SetHintsUsed(rec.HintsUsed)
	if rec.EmotionalStateEnd != "" {
		builder = builder.SetEmotionalStateEnd(rec.EmotionalStateEnd)
	}
	if rec.EndedAt != nil {
		builder = builder.SetEndedAt(*rec.EndedAt)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func sessionFromRow(row *ent.LearningSession) *SessionRecord {
	return &SessionRecord{
		ID:                  row.ID,
		StudentID:           row.StudentID,
		State:               row.State,
		CurrentConceptID:    row.CurrentConceptID,
		QuestionsAnswered:   row.QuestionsAnswered,
		CorrectAnswers:      row.CorrectAnswers,
		HintsUsed:           row.HintsUsed,
		EmotionalStateStart: row.EmotionalStateStart,
		EmotionalStateEnd:   row.EmotionalStateEnd,
		StartedAt:           row.StartedAt,
		EndedAt:             row.EndedAt,
	}
}
