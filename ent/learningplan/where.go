// Code generated by ent, DO NOT EDIT.

package learningplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/brightpath/tutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldStudentID, v))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldGoalID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldStatus, v))
}

// CurrentConceptIndex applies equality check predicate on the "current_concept_index" field. It's identical to CurrentConceptIndexEQ.
func CurrentConceptIndex(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldCurrentConceptIndex, v))
}

// TotalEstimatedHours applies equality check predicate on the "total_estimated_hours" field. It's identical to TotalEstimatedHoursEQ.
func TotalEstimatedHours(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldTotalEstimatedHours, v))
}

// HoursCompleted applies equality check predicate on the "hours_completed" field. It's identical to HoursCompletedEQ.
func HoursCompleted(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldHoursCompleted, v))
}

// VelocityHoursPerWeek applies equality check predicate on the "velocity_hours_per_week" field. It's identical to VelocityHoursPerWeekEQ.
func VelocityHoursPerWeek(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldVelocityHoursPerWeek, v))
}

// TargetCompletionDate applies equality check predicate on the "target_completion_date" field. It's identical to TargetCompletionDateEQ.
func TargetCompletionDate(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldTargetCompletionDate, v))
}

// ProjectedCompletionDate applies equality check predicate on the "projected_completion_date" field. It's identical to ProjectedCompletionDateEQ.
func ProjectedCompletionDate(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldProjectedCompletionDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldStudentID, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldGoalID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldContainsFold(FieldStatus, v))
}

// CurrentConceptIndexEQ applies the EQ predicate on the "current_concept_index" field.
func CurrentConceptIndexEQ(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldCurrentConceptIndex, v))
}

// CurrentConceptIndexNEQ applies the NEQ predicate on the "current_concept_index" field.
func CurrentConceptIndexNEQ(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldCurrentConceptIndex, v))
}

// CurrentConceptIndexIn applies the In predicate on the "current_concept_index" field.
func CurrentConceptIndexIn(vs ...int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldCurrentConceptIndex, vs...))
}

// CurrentConceptIndexNotIn applies the NotIn predicate on the "current_concept_index" field.
func CurrentConceptIndexNotIn(vs ...int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldCurrentConceptIndex, vs...))
}

// CurrentConceptIndexGT applies the GT predicate on the "current_concept_index" field.
func CurrentConceptIndexGT(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldCurrentConceptIndex, v))
}

// CurrentConceptIndexGTE applies the GTE predicate on the "current_concept_index" field.
func CurrentConceptIndexGTE(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldCurrentConceptIndex, v))
}

// CurrentConceptIndexLT applies the LT predicate on the "current_concept_index" field.
func CurrentConceptIndexLT(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldCurrentConceptIndex, v))
}

// CurrentConceptIndexLTE applies the LTE predicate on the "current_concept_index" field.
func CurrentConceptIndexLTE(v int) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldCurrentConceptIndex, v))
}

// TotalEstimatedHoursEQ applies the EQ predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursEQ(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldTotalEstimatedHours, v))
}

// TotalEstimatedHoursNEQ applies the NEQ predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursNEQ(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldTotalEstimatedHours, v))
}

// TotalEstimatedHoursIn applies the In predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursIn(vs ...float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldTotalEstimatedHours, vs...))
}

// TotalEstimatedHoursNotIn applies the NotIn predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursNotIn(vs ...float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldTotalEstimatedHours, vs...))
}

// TotalEstimatedHoursGT applies the GT predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursGT(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldTotalEstimatedHours, v))
}

// TotalEstimatedHoursGTE applies the GTE predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursGTE(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldTotalEstimatedHours, v))
}

// TotalEstimatedHoursLT applies the LT predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursLT(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldTotalEstimatedHours, v))
}

// TotalEstimatedHoursLTE applies the LTE predicate on the "total_estimated_hours" field.
func TotalEstimatedHoursLTE(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldTotalEstimatedHours, v))
}

// HoursCompletedEQ applies the EQ predicate on the "hours_completed" field.
func HoursCompletedEQ(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldHoursCompleted, v))
}

// HoursCompletedNEQ applies the NEQ predicate on the "hours_completed" field.
func HoursCompletedNEQ(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldHoursCompleted, v))
}

// HoursCompletedIn applies the In predicate on the "hours_completed" field.
func HoursCompletedIn(vs ...float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldHoursCompleted, vs...))
}

// HoursCompletedNotIn applies the NotIn predicate on the "hours_completed" field.
func HoursCompletedNotIn(vs ...float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldHoursCompleted, vs...))
}

// HoursCompletedGT applies the GT predicate on the "hours_completed" field.
func HoursCompletedGT(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldHoursCompleted, v))
}

// HoursCompletedGTE applies the GTE predicate on the "hours_completed" field.
func HoursCompletedGTE(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldHoursCompleted, v))
}

// HoursCompletedLT applies the LT predicate on the "hours_completed" field.
func HoursCompletedLT(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldHoursCompleted, v))
}

// HoursCompletedLTE applies the LTE predicate on the "hours_completed" field.
func HoursCompletedLTE(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldHoursCompleted, v))
}

// VelocityHoursPerWeekEQ applies the EQ predicate on the "velocity_hours_per_week" field.
func VelocityHoursPerWeekEQ(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldVelocityHoursPerWeek, v))
}

// VelocityHoursPerWeekNEQ applies the NEQ predicate on the "velocity_hours_per_week" field.
func VelocityHoursPerWeekNEQ(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldVelocityHoursPerWeek, v))
}

// VelocityHoursPerWeekIn applies the In predicate on the "velocity_hours_per_week" field.
func VelocityHoursPerWeekIn(vs ...float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldVelocityHoursPerWeek, vs...))
}

// VelocityHoursPerWeekNotIn applies the NotIn predicate on the "velocity_hours_per_week" field.
func VelocityHoursPerWeekNotIn(vs ...float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldVelocityHoursPerWeek, vs...))
}

// VelocityHoursPerWeekGT applies the GT predicate on the "velocity_hours_per_week" field.
func VelocityHoursPerWeekGT(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldVelocityHoursPerWeek, v))
}

// VelocityHoursPerWeekGTE applies the GTE predicate on the "velocity_hours_per_week" field.
func VelocityHoursPerWeekGTE(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldVelocityHoursPerWeek, v))
}

// VelocityHoursPerWeekLT applies the LT predicate on the "velocity_hours_per_week" field.
func VelocityHoursPerWeekLT(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldVelocityHoursPerWeek, v))
}

// VelocityHoursPerWeekLTE applies the LTE predicate on the "velocity_hours_per_week" field.
func VelocityHoursPerWeekLTE(v float64) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldVelocityHoursPerWeek, v))
}

// AdvanceLogIsNil applies the IsNil predicate on the "advance_log" field.
func AdvanceLogIsNil() predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIsNull(FieldAdvanceLog))
}

// AdvanceLogNotNil applies the NotNil predicate on the "advance_log" field.
func AdvanceLogNotNil() predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotNull(FieldAdvanceLog))
}

// TargetCompletionDateEQ applies the EQ predicate on the "target_completion_date" field.
func TargetCompletionDateEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldTargetCompletionDate, v))
}

// TargetCompletionDateNEQ applies the NEQ predicate on the "target_completion_date" field.
func TargetCompletionDateNEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldTargetCompletionDate, v))
}

// TargetCompletionDateIn applies the In predicate on the "target_completion_date" field.
func TargetCompletionDateIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldTargetCompletionDate, vs...))
}

// TargetCompletionDateNotIn applies the NotIn predicate on the "target_completion_date" field.
func TargetCompletionDateNotIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldTargetCompletionDate, vs...))
}

// TargetCompletionDateGT applies the GT predicate on the "target_completion_date" field.
func TargetCompletionDateGT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldTargetCompletionDate, v))
}

// TargetCompletionDateGTE applies the GTE predicate on the "target_completion_date" field.
func TargetCompletionDateGTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldTargetCompletionDate, v))
}

// TargetCompletionDateLT applies the LT predicate on the "target_completion_date" field.
func TargetCompletionDateLT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldTargetCompletionDate, v))
}

// TargetCompletionDateLTE applies the LTE predicate on the "target_completion_date" field.
func TargetCompletionDateLTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldTargetCompletionDate, v))
}

// TargetCompletionDateIsNil applies the IsNil predicate on the "target_completion_date" field.
func TargetCompletionDateIsNil() predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIsNull(FieldTargetCompletionDate))
}

// TargetCompletionDateNotNil applies the NotNil predicate on the "target_completion_date" field.
func TargetCompletionDateNotNil() predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotNull(FieldTargetCompletionDate))
}

// ProjectedCompletionDateEQ applies the EQ predicate on the "projected_completion_date" field.
func ProjectedCompletionDateEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldProjectedCompletionDate, v))
}

// ProjectedCompletionDateNEQ applies the NEQ predicate on the "projected_completion_date" field.
func ProjectedCompletionDateNEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldProjectedCompletionDate, v))
}

// ProjectedCompletionDateIn applies the In predicate on the "projected_completion_date" field.
func ProjectedCompletionDateIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldProjectedCompletionDate, vs...))
}

// ProjectedCompletionDateNotIn applies the NotIn predicate on the "projected_completion_date" field.
func ProjectedCompletionDateNotIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldProjectedCompletionDate, vs...))
}

// ProjectedCompletionDateGT applies the GT predicate on the "projected_completion_date" field.
func ProjectedCompletionDateGT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldProjectedCompletionDate, v))
}

// ProjectedCompletionDateGTE applies the GTE predicate on the "projected_completion_date" field.
func ProjectedCompletionDateGTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldProjectedCompletionDate, v))
}

// ProjectedCompletionDateLT applies the LT predicate on the "projected_completion_date" field.
func ProjectedCompletionDateLT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldProjectedCompletionDate, v))
}

// ProjectedCompletionDateLTE applies the LTE predicate on the "projected_completion_date" field.
func ProjectedCompletionDateLTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldProjectedCompletionDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearningPlan {
	return predicate.LearningPlan(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningPlan) predicate.LearningPlan {
	return predicate.LearningPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningPlan) predicate.LearningPlan {
	return predicate.LearningPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningPlan) predicate.LearningPlan {
	return predicate.LearningPlan(sql.NotPredicates(p))
}
