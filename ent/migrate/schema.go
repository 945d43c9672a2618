// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LearningPlansColumns holds the columns for the "learning_plans" table.
	LearningPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "concept_sequence", Type: field.TypeJSON},
		{Name: "current_concept_index", Type: field.TypeInt, Default: 0},
		{Name: "total_estimated_hours", Type: field.TypeFloat64},
		{Name: "hours_completed", Type: field.TypeFloat64, Default: 0},
		{Name: "velocity_hours_per_week", Type: field.TypeFloat64},
		{Name: "milestones", Type: field.TypeJSON},
		{Name: "advance_log", Type: field.TypeJSON, Nullable: true},
		{Name: "target_completion_date", Type: field.TypeTime, Nullable: true},
		{Name: "projected_completion_date", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearningPlansTable holds the schema information for the "learning_plans" table.
	LearningPlansTable = &schema.Table{
		Name:       "learning_plans",
		Columns:    LearningPlansColumns,
		PrimaryKey: []*schema.Column{LearningPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningplan_student_id_status",
				Unique:  false,
				Columns: []*schema.Column{LearningPlansColumns[1], LearningPlansColumns[3]},
			},
			{
				Name:    "learningplan_student_id_goal_id",
				Unique:  false,
				Columns: []*schema.Column{LearningPlansColumns[1], LearningPlansColumns[2]},
			},
		},
	}
	// LearningSessionsColumns holds the columns for the "learning_sessions" table.
	LearningSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "state", Type: field.TypeString},
		{Name: "current_concept_id", Type: field.TypeString},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "emotional_state_start", Type: field.TypeString, Nullable: true},
		{Name: "emotional_state_end", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearningSessionsTable holds the schema information for the "learning_sessions" table.
	LearningSessionsTable = &schema.Table{
		Name:       "learning_sessions",
		Columns:    LearningSessionsColumns,
		PrimaryKey: []*schema.Column{LearningSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningsession_student_id_state",
				Unique:  false,
				Columns: []*schema.Column{LearningSessionsColumns[1], LearningSessionsColumns[2]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "bkt_probability", Type: field.TypeFloat64},
		{Name: "level", Type: field.TypeString},
		{Name: "practice_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced_at", Type: field.TypeTime},
		{Name: "next_review_at", Type: field.TypeTime},
		{Name: "retention_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "speed_trend_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_student_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
			{
				Name:    "masteryrecord_student_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[8]},
			},
		},
	}
	// QuestionResponsesColumns holds the columns for the "question_responses" table.
	QuestionResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "question_type", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "response_time_ms", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionResponsesTable holds the schema information for the "question_responses" table.
	QuestionResponsesTable = &schema.Table{
		Name:       "question_responses",
		Columns:    QuestionResponsesColumns,
		PrimaryKey: []*schema.Column{QuestionResponsesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionresponse_student_id_concept_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionResponsesColumns[1], QuestionResponsesColumns[2], QuestionResponsesColumns[7]},
			},
			{
				Name:    "questionresponse_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionResponsesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LearningPlansTable,
		LearningSessionsTable,
		MasteryRecordsTable,
		QuestionResponsesTable,
	}
)

func init() {
}
