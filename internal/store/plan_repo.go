package store

import (
	"context"
	"fmt"

	"github.com/brightpath/tutor/ent"
	"github.com/brightpath/tutor/ent/learningplan"
	entschema "github.com/brightpath/tutor/ent/schema"
)

type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Create(ctx context.Context, rec *PlanRecord) error {
	builder := r.client.LearningPlan.Create().
		SetID(rec.ID).
		SetStudentID(rec.StudentID).
		SetGoalID(rec.GoalID).
		SetStatus(rec.Status).
		SetConceptSequence(rec.ConceptSequence).
		SetCurrentConceptIndex(rec.CurrentConceptIndex).
		SetTotalEstimatedHours(rec.TotalEstimatedHours).
		SetHoursCompleted(rec.HoursCompleted).
		SetVelocityHoursPerWeek(rec.VelocityHoursPerWeek).
		SetMilestones(milestonesToSchema(rec.Milestones)).
		SetAdvanceLog(advancesToSchema(rec.AdvanceLog)).
		SetProjectedCompletionDate(rec.ProjectedCompletionDate)
	if rec.TargetCompletionDate != nil {
		builder = builder.SetTargetCompletionDate(*rec.TargetCompletionDate)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	return nil
}

func (r *planRepo) Get(ctx context.Context, id string) (*PlanRecord, error) {
	row, err := r.client.LearningPlan.Query().
		Where(learningplan.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query plan: %w", err)
	}
	return planFromRow(row), nil
}

func (r *planRepo) ActiveByStudent(ctx context.Context, studentID string) ([]*PlanRecord, error) {
	rows, err := r.client.LearningPlan.Query().
		Where(
			learningplan.StudentID(studentID),
			learningplan.Status(PlanActive),
		).
		Order(ent.Asc(learningplan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active plans: %w", err)
	}
	out := make([]*PlanRecord, len(rows))
	for i, row := range rows {
		out[i] = planFromRow(row)
	}
	return out, nil
}

func (r *planRepo) Update(ctx context.Context, rec *PlanRecord) error {
	builder := r.client.LearningPlan.UpdateOneID(rec.ID).
		SetStatus(rec.Status).
		SetConceptSequence(rec.ConceptSequence).
		SetCurrentConceptIndex(rec.CurrentConceptIndex).
		SetTotalEstimatedHours(rec.TotalEstimatedHours).
		SetHoursCompleted(rec.HoursCompleted).
		SetVelocityHoursPerWeek(rec.VelocityHoursPerWeek).
		SetMilestones(milestonesToSchema(rec.Milestones)).
		SetAdvanceLog(advancesToSchema(rec.AdvanceLog)).
		SetProjectedCompletionDate(rec.ProjectedCompletionDate)

	_, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

func planFromRow(row *ent.LearningPlan) *PlanRecord {
	return &PlanRecord{
		ID:                      row.ID,
		StudentID:               row.StudentID,
		GoalID:                  row.GoalID,
		Status:                  row.Status,
		ConceptSequence:         row.ConceptSequence,
		CurrentConceptIndex:     row.CurrentConceptIndex,
		TotalEstimatedHours:     row.TotalEstimatedHours,
		HoursCompleted:          row.HoursCompleted,
		VelocityHoursPerWeek:    row.VelocityHoursPerWeek,
		Milestones:              milestonesFromSchema(row.Milestones),
		AdvanceLog:              advancesFromSchema(row.AdvanceLog),
		TargetCompletionDate:    row.TargetCompletionDate,
		ProjectedCompletionDate: row.ProjectedCompletionDate,
		CreatedAt:               row.CreatedAt,
	}
}

func milestonesToSchema(in []PlanMilestone) []entschema.PlanMilestone {
	out := make([]entschema.PlanMilestone, len(in))
	for i, m := range in {
		out[i] = entschema.PlanMilestone{Week: m.Week, ConceptIDs: m.ConceptIDs, Hours: m.Hours}
	}
	return out
}

func milestonesFromSchema(in []entschema.PlanMilestone) []PlanMilestone {
	out := make([]PlanMilestone, len(in))
	for i, m := range in {
		out[i] = PlanMilestone{Week: m.Week, ConceptIDs: m.ConceptIDs, Hours: m.Hours}
	}
	return out
}

func advancesToSchema(in []PlanAdvance) []entschema.PlanAdvance {
	out := make([]entschema.PlanAdvance, len(in))
	for i, a := range in {
		out[i] = entschema.PlanAdvance{ConceptID: a.ConceptID, Hours: a.Hours, At: a.At}
	}
	return out
}

func advancesFromSchema(in []entschema.PlanAdvance) []PlanAdvance {
	out := make([]PlanAdvance, len(in))
	for i, a := range in {
		out[i] = PlanAdvance{ConceptID: a.ConceptID, Hours: a.Hours, At: a.At}
	}
	return out
}
