package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionResponse is the append-only answer log. It is the source of truth
// for the mastery gate's windowed analysis. Rows are never mutated.
type QuestionResponse struct {
	ent.Schema
}

func (QuestionResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("concept_id").
			NotEmpty().
			Immutable(),
		field.String("session_id").
			Optional().
			Immutable().
			Comment("Session this answer belongs to, when answered in one"),
		field.String("question_type").
			NotEmpty().
			Immutable().
			Comment("e.g. multiple_choice, numeric, word_problem, true_false"),
		field.Bool("is_correct").
			Immutable(),
		field.Int64("response_time_ms").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuestionResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "concept_id", "created_at"),
		index.Fields("session_id"),
	}
}
