package planner

import (
	"time"

	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/store"
)

// Plan is the generated learning path returned to callers. It mirrors the
// persisted record plus derived schedule information.
type Plan struct {
	ID                      string                `json:"id"`
	StudentID               string                `json:"studentId"`
	GoalID                  string                `json:"goalId"`
	Status                  string                `json:"status"`
	ConceptSequence         []string              `json:"conceptSequence"`
	CurrentConceptIndex     int                   `json:"currentConceptIndex"`
	TotalEstimatedHours     float64               `json:"totalEstimatedHours"`
	HoursCompleted          float64               `json:"hoursCompleted"`
	VelocityHoursPerWeek    float64               `json:"velocityHoursPerWeek"`
	Milestones              []store.PlanMilestone `json:"milestones"`
	TargetCompletionDate    *time.Time            `json:"targetCompletionDate,omitempty"`
	ProjectedCompletionDate time.Time             `json:"projectedCompletionDate"`
	IsAheadOfSchedule       *bool                 `json:"isAheadOfSchedule,omitempty"`
}

// fromRecord builds the caller-facing Plan from a persisted record.
func fromRecord(rec *store.PlanRecord) *Plan {
	p := &Plan{
		ID:                      rec.ID,
		StudentID:               rec.StudentID,
		GoalID:                  rec.GoalID,
		Status:                  rec.Status,
		ConceptSequence:         rec.ConceptSequence,
		CurrentConceptIndex:     rec.CurrentConceptIndex,
		TotalEstimatedHours:     rec.TotalEstimatedHours,
		HoursCompleted:          rec.HoursCompleted,
		VelocityHoursPerWeek:    rec.VelocityHoursPerWeek,
		Milestones:              rec.Milestones,
		TargetCompletionDate:    rec.TargetCompletionDate,
		ProjectedCompletionDate: rec.ProjectedCompletionDate,
	}
	if rec.TargetCompletionDate != nil {
		ahead := !rec.ProjectedCompletionDate.After(*rec.TargetCompletionDate)
		p.IsAheadOfSchedule = &ahead
	}
	return p
}

// NextConcept describes the concept at the plan cursor.
type NextConcept struct {
	Node      curriculum.ConceptNode `json:"node"`
	Index     int                    `json:"index"`
	Remaining int                    `json:"remaining"`
}
