package store

import (
	"context"
	"fmt"

	"github.com/brightpath/tutor/ent"
	"github.com/brightpath/tutor/ent/questionresponse"
)

type responseRepo struct {
	client *ent.Client
}

func (r *responseRepo) Append(ctx context.Context, resp *QuestionResponse) error {
	builder := r.client.QuestionResponse.Create().
		SetStudentID(resp.StudentID).
		SetConceptID(resp.ConceptID).
		SetQuestionType(resp.QuestionType).
		SetIsCorrect(resp.IsCorrect).
		SetResponseTimeMs(resp.ResponseTimeMs)
	if resp.SessionID != "" {
		builder = builder.SetSessionID(resp.SessionID)
	}
	if !resp.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(resp.CreatedAt)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("append question response: %w", err)
	}
	return nil
}

func (r *responseRepo) RecentByConcept(ctx context.Context, studentID, conceptID string, lastN int) ([]*QuestionResponse, error) {
	rows, err := r.client.QuestionResponse.Query().
		Where(
			questionresponse.StudentID(studentID),
			questionresponse.ConceptID(conceptID),
		).
		Order(ent.Desc(questionresponse.FieldCreatedAt), ent.Desc(questionresponse.FieldID)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent responses: %w", err)
	}

	out := make([]*QuestionResponse, len(rows))
	for i, row := range rows {
		out[i] = &QuestionResponse{
			StudentID:      row.StudentID,
			ConceptID:      row.ConceptID,
			SessionID:      row.SessionID,
			QuestionType:   row.QuestionType,
			IsCorrect:      row.IsCorrect,
			ResponseTimeMs: row.ResponseTimeMs,
			CreatedAt:      row.CreatedAt,
		}
	}
	return out, nil
}

func (r *responseRepo) TotalTimeMs(ctx context.Context, studentID, conceptID string) (int64, error) {
	var v []struct {
		Sum int64 `json:"sum"`
	}
	err := r.client.QuestionResponse.Query().
		Where(
			questionresponse.StudentID(studentID),
			questionresponse.ConceptID(conceptID),
		).
		Aggregate(ent.Sum(questionresponse.FieldResponseTimeMs)).
		Scan(ctx, &v)
	if err != nil {
		return 0, fmt.Errorf("sum response time: %w", err)
	}
	if len(v) == 0 {
		return 0, nil
	}
	return v[0].Sum, nil
}
