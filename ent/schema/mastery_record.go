package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord tracks a student's Bayesian mastery estimate for one concept.
// One row per (student, concept); created lazily on first answer, mutated on
// every subsequent answer, never deleted.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("concept_id").
			NotEmpty().
			Immutable(),
		field.Float("bkt_probability").
			Comment("P(concept is known), 0..1"),
		field.String("level").
			NotEmpty().
			Comment("novice, developing, proficient, advanced, or mastered"),
		field.Int("practice_count").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Time("last_practiced_at"),
		field.Time("next_review_at").
			Comment("Spaced-repetition due date, consumed by the review scheduler"),
		field.Float("retention_score").
			Optional().
			Nillable().
			Comment("Set by a later retention probe; nil until one is taken"),
		field.Int64("speed_trend_ms").
			Optional().
			Nillable().
			Comment("Mean response time of the most recent window half"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic-concurrency version; bumped on every write"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "concept_id").Unique(),
		index.Fields("student_id", "next_review_at"),
	}
}
