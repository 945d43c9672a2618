// Code generated by ent, DO NOT EDIT.

package learningplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learningplan type in the database.
	Label = "learning_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConceptSequence holds the string denoting the concept_sequence field in the database.
	FieldConceptSequence = "concept_sequence"
	// FieldCurrentConceptIndex holds the string denoting the current_concept_index field in the database.
	FieldCurrentConceptIndex = "current_concept_index"
	// FieldTotalEstimatedHours holds the string denoting the total_estimated_hours field in the database.
	FieldTotalEstimatedHours = "total_estimated_hours"
	// FieldHoursCompleted holds the string denoting the hours_completed field in the database.
	FieldHoursCompleted = "hours_completed"
	// FieldVelocityHoursPerWeek holds the string denoting the velocity_hours_per_week field in the database.
	FieldVelocityHoursPerWeek = "velocity_hours_per_week"
	// FieldMilestones holds the string denoting the milestones field in the database.
	FieldMilestones = "milestones"
	// FieldAdvanceLog holds the string denoting the advance_log field in the database.
	FieldAdvanceLog = "advance_log"
	// FieldTargetCompletionDate holds the string denoting the target_completion_date field in the database.
	FieldTargetCompletionDate = "target_completion_date"
	// FieldProjectedCompletionDate holds the string denoting the projected_completion_date field in the database.
	FieldProjectedCompletionDate = "projected_completion_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learningplan in the database.
	Table = "learning_plans"
)

// Columns holds all SQL columns for learningplan fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldGoalID,
	FieldStatus,
	FieldConceptSequence,
	FieldCurrentConceptIndex,
	FieldTotalEstimatedHours,
	FieldHoursCompleted,
	FieldVelocityHoursPerWeek,
	FieldMilestones,
	FieldAdvanceLog,
	FieldTargetCompletionDate,
	FieldProjectedCompletionDate,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	GoalIDValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCurrentConceptIndex holds the default value on creation for the "current_concept_index" field.
	DefaultCurrentConceptIndex int
	// DefaultHoursCompleted holds the default value on creation for the "hours_completed" field.
	DefaultHoursCompleted float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the LearningPlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentConceptIndex orders the results by the current_concept_index field.
func ByCurrentConceptIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentConceptIndex, opts...).ToFunc()
}

// ByTotalEstimatedHours orders the results by the total_estimated_hours field.
func ByTotalEstimatedHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalEstimatedHours, opts...).ToFunc()
}

// ByHoursCompleted orders the results by the hours_completed field.
func ByHoursCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHoursCompleted, opts...).ToFunc()
}

// ByVelocityHoursPerWeek orders the results by the velocity_hours_per_week field.
func ByVelocityHoursPerWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVelocityHoursPerWeek, opts...).ToFunc()
}

// ByTargetCompletionDate orders the results by the target_completion_date field.
func ByTargetCompletionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetCompletionDate, opts...).ToFunc()
}

// ByProjectedCompletionDate orders the results by the projected_completion_date field.
func ByProjectedCompletionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectedCompletionDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
