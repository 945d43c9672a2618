package store

import (
	"context"
	"fmt"

	"github.com/brightpath/tutor/ent"
	"github.com/brightpath/tutor/ent/masteryrecord"
)

type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, studentID, conceptID string) (*MasteryRecord, error) {
	row, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.StudentID(studentID),
			masteryrecord.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query mastery record: %w", err)
	}
	return masteryFromRow(row), nil
}

func (r *masteryRepo) GetByStudent(ctx context.Context, studentID string) ([]*MasteryRecord, error) {
	rows, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.StudentID(studentID)).
		Order(ent.Asc(masteryrecord.FieldConceptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery records: %w", err)
	}
	out := make([]*MasteryRecord, len(rows))
	for i, row := range rows {
		out[i] = masteryFromRow(row)
	}
	return out, nil
}

func (r *masteryRepo) Create(ctx context.Context, rec *MasteryRecord) error {
	builder := r.client.MasteryRecord.Create().
		SetStudentID(rec.StudentID).
		SetConceptID(rec.ConceptID).
		SetBktProbability(rec.BKTProbability).
		SetLevel(rec.Level).
		SetPracticeCount(rec.PracticeCount).
		SetCorrectCount(rec.CorrectCount).
		SetLastPracticedAt(rec.LastPracticedAt).
		SetNextReviewAt(rec.NextReviewAt).
		SetVersion(1)
	if rec.RetentionScore != nil {
		builder = builder.SetRetentionScore(*rec.RetentionScore)
	}
	if rec.SpeedTrendMs != nil {
		builder = builder.SetSpeedTrendMs(*rec.SpeedTrendMs)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrConflict
		}
		return fmt.Errorf("create mastery record: %w", err)
	}
	rec.Version = 1
	return nil
}

func (r *masteryRepo) Update(ctx context.Context, rec *MasteryRecord) error {
	builder := r.client.MasteryRecord.Update().
		Where(
			masteryrecord.StudentID(rec.StudentID),
			masteryrecord.ConceptID(rec.ConceptID),
			masteryrecord.Version(rec.Version),
		).
		SetBktProbability(rec.BKTProbability).
		SetLevel(rec.Level).
		SetPracticeCount(rec.PracticeCount).
		SetCorrectCount(rec.CorrectCount).
		SetLastPracticedAt(rec.LastPracticedAt).
		SetNextReviewAt(rec.NextReviewAt).
		SetVersion(rec.Version + 1)
	if rec.RetentionScore != nil {
		builder = builder.SetRetentionScore(*rec.RetentionScore)
	}
	if rec.SpeedTrendMs != nil {
		builder = builder.SetSpeedTrendMs(*rec.SpeedTrendMs)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("update mastery record: %w", err)
	}
	if n == 0 {
		// Either the row is gone or someone else won the version race.
		exists, err := r.client.MasteryRecord.Query().
			Where(
				masteryrecord.StudentID(rec.StudentID),
				masteryrecord.ConceptID(rec.ConceptID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check mastery record: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrConflict
	}
	rec.Version++
	return nil
}

func masteryFromRow(row *ent.MasteryRecord) *MasteryRecord {
	return &MasteryRecord{
		StudentID:       row.StudentID,
		ConceptID:       row.ConceptID,
		BKTProbability:  row.BktProbability,
		Level:           row.Level,
		PracticeCount:   row.PracticeCount,
		CorrectCount:    row.CorrectCount,
		LastPracticedAt: row.LastPracticedAt,
		NextReviewAt:    row.NextReviewAt,
		RetentionScore:  row.RetentionScore,
		SpeedTrendMs:    row.SpeedTrendMs,
		Version:         row.Version,
	}
}
