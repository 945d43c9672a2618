package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningSession is one active tutoring interaction. It transitions
// through the session state machine; "completed" is terminal.
type LearningSession struct {
	ent.Schema
}

func (LearningSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Unique(),
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("state").
			NotEmpty().
			Comment("teaching, practice, hint_requested, struggling, celebrating, or completed"),
		field.String("current_concept_id").
			NotEmpty(),
		field.Int("questions_answered").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Int("hints_used").
			Default(0),
		field.String("emotional_state_start").
			Optional(),
		field.String("emotional_state_end").
			Optional(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearningSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "state"),
	}
}
