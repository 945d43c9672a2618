package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningPlan is a student-specific, ordered, time-estimated path through
// a goal's concepts. Status transitions are one-directional except
// paused <-> active.
type LearningPlan struct {
	ent.Schema
}

func (LearningPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Unique(),
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("goal_id").
			NotEmpty().
			Immutable(),
		field.String("status").
			NotEmpty().
			Comment("active, paused, completed, or abandoned"),
		field.Strings("concept_sequence").
			Comment("Prerequisite-respecting concept order"),
		field.Int("current_concept_index").
			Default(0),
		field.Float("total_estimated_hours"),
		field.Float("hours_completed").
			Default(0),
		field.Float("velocity_hours_per_week"),
		field.JSON("milestones", []PlanMilestone{}).
			Comment("Weekly milestone partition of the sequence"),
		field.JSON("advance_log", []PlanAdvance{}).
			Optional().
			Comment("Recent cursor advances feeding the trailing velocity window"),
		field.Time("target_completion_date").
			Optional().
			Nillable(),
		field.Time("projected_completion_date"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// PlanMilestone is one week's worth of concepts within a plan.
type PlanMilestone struct {
	Week       int      `json:"week"`
	ConceptIDs []string `json:"conceptIds"`
	Hours      float64  `json:"hours"`
}

// PlanAdvance records one cursor advance for velocity tracking.
type PlanAdvance struct {
	ConceptID string    `json:"conceptId"`
	Hours     float64   `json:"hours"`
	At        time.Time `json:"at"`
}

func (LearningPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "status"),
		index.Fields("student_id", "goal_id"),
	}
}
