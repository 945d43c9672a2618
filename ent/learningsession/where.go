// Code generated by ent, DO NOT EDIT.

package learningsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/brightpath/tutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldStudentID, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldState, v))
}

// CurrentConceptID applies equality check predicate on the "current_concept_id" field. It's identical to CurrentConceptIDEQ.
func CurrentConceptID(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldCurrentConceptID, v))
}

// QuestionsAnswered applies equality check predicate on the "questions_answered" field. It's identical to QuestionsAnsweredEQ.
func QuestionsAnswered(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldCorrectAnswers, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldHintsUsed, v))
}

// EmotionalStateStart applies equality check predicate on the "emotional_state_start" field. It's identical to EmotionalStateStartEQ.
func EmotionalStateStart(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldEmotionalStateStart, v))
}

// EmotionalStateEnd applies equality check predicate on the "emotional_state_end" field. It's identical to EmotionalStateEndEQ.
func EmotionalStateEnd(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldEmotionalStateEnd, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldEndedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldStudentID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldState, v))
}

// CurrentConceptIDEQ applies the EQ predicate on the "current_concept_id" field.
func CurrentConceptIDEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldCurrentConceptID, v))
}

// CurrentConceptIDNEQ applies the NEQ predicate on the "current_concept_id" field.
func CurrentConceptIDNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldCurrentConceptID, v))
}

// CurrentConceptIDIn applies the In predicate on the "current_concept_id" field.
func CurrentConceptIDIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldCurrentConceptID, vs...))
}

// CurrentConceptIDNotIn applies the NotIn predicate on the "current_concept_id" field.
func CurrentConceptIDNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldCurrentConceptID, vs...))
}

// CurrentConceptIDGT applies the GT predicate on the "current_concept_id" field.
func CurrentConceptIDGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldCurrentConceptID, v))
}

// CurrentConceptIDGTE applies the GTE predicate on the "current_concept_id" field.
func CurrentConceptIDGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldCurrentConceptID, v))
}

// CurrentConceptIDLT applies the LT predicate on the "current_concept_id" field.
func CurrentConceptIDLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldCurrentConceptID, v))
}

// CurrentConceptIDLTE applies the LTE predicate on the "current_concept_id" field.
func CurrentConceptIDLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldCurrentConceptID, v))
}

// CurrentConceptIDContains applies the Contains predicate on the "current_concept_id" field.
func CurrentConceptIDContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldCurrentConceptID, v))
}

// CurrentConceptIDHasPrefix applies the HasPrefix predicate on the "current_concept_id" field.
func CurrentConceptIDHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldCurrentConceptID, v))
}

// CurrentConceptIDHasSuffix applies the HasSuffix predicate on the "current_concept_id" field.
func CurrentConceptIDHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldCurrentConceptID, v))
}

// CurrentConceptIDEqualFold applies the EqualFold predicate on the "current_concept_id" field.
func CurrentConceptIDEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldCurrentConceptID, v))
}

// CurrentConceptIDContainsFold applies the ContainsFold predicate on the "current_concept_id" field.
func CurrentConceptIDContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldCurrentConceptID, v))
}

// QuestionsAnsweredEQ applies the EQ predicate on the "questions_answered" field.
func QuestionsAnsweredEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredNEQ applies the NEQ predicate on the "questions_answered" field.
func QuestionsAnsweredNEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredIn applies the In predicate on the "questions_answered" field.
func QuestionsAnsweredIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredNotIn applies the NotIn predicate on the "questions_answered" field.
func QuestionsAnsweredNotIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredGT applies the GT predicate on the "questions_answered" field.
func QuestionsAnsweredGT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredGTE applies the GTE predicate on the "questions_answered" field.
func QuestionsAnsweredGTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLT applies the LT predicate on the "questions_answered" field.
func QuestionsAnsweredLT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLTE applies the LTE predicate on the "questions_answered" field.
func QuestionsAnsweredLTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldQuestionsAnswered, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldCorrectAnswers, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldHintsUsed, v))
}

// EmotionalStateStartEQ applies the EQ predicate on the "emotional_state_start" field.
func EmotionalStateStartEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldEmotionalStateStart, v))
}

// EmotionalStateStartNEQ applies the NEQ predicate on the "emotional_state_start" field.
func EmotionalStateStartNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldEmotionalStateStart, v))
}

// EmotionalStateStartIn applies the In predicate on the "emotional_state_start" field.
func EmotionalStateStartIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldEmotionalStateStart, vs...))
}

// EmotionalStateStartNotIn applies the NotIn predicate on the "emotional_state_start" field.
func EmotionalStateStartNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldEmotionalStateStart, vs...))
}

// EmotionalStateStartGT applies the GT predicate on the "emotional_state_start" field.
func EmotionalStateStartGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldEmotionalStateStart, v))
}

// EmotionalStateStartGTE applies the GTE predicate on the "emotional_state_start" field.
func EmotionalStateStartGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldEmotionalStateStart, v))
}

// EmotionalStateStartLT applies the LT predicate on the "emotional_state_start" field.
func EmotionalStateStartLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldEmotionalStateStart, v))
}

// EmotionalStateStartLTE applies the LTE predicate on the "emotional_state_start" field.
func EmotionalStateStartLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldEmotionalStateStart, v))
}

// EmotionalStateStartContains applies the Contains predicate on the "emotional_state_start" field.
func EmotionalStateStartContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldEmotionalStateStart, v))
}

// EmotionalStateStartHasPrefix applies the HasPrefix predicate on the "emotional_state_start" field.
func EmotionalStateStartHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldEmotionalStateStart, v))
}

// EmotionalStateStartHasSuffix applies the HasSuffix predicate on the "emotional_state_start" field.
func EmotionalStateStartHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldEmotionalStateStart, v))
}

// EmotionalStateStartIsNil applies the IsNil predicate on the "emotional_state_start" field.
func EmotionalStateStartIsNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIsNull(FieldEmotionalStateStart))
}

// EmotionalStateStartNotNil applies the NotNil predicate on the "emotional_state_start" field.
func EmotionalStateStartNotNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotNull(FieldEmotionalStateStart))
}

// EmotionalStateStartEqualFold applies the EqualFold predicate on the "emotional_state_start" field.
func EmotionalStateStartEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldEmotionalStateStart, v))
}

// EmotionalStateStartContainsFold applies the ContainsFold predicate on the "emotional_state_start" field.
func EmotionalStateStartContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldEmotionalStateStart, v))
}

// EmotionalStateEndEQ applies the EQ predicate on the "emotional_state_end" field.
func EmotionalStateEndEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldEmotionalStateEnd, v))
}

// EmotionalStateEndNEQ applies the NEQ predicate on the "emotional_state_end" field.
func EmotionalStateEndNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldEmotionalStateEnd, v))
}

// EmotionalStateEndIn applies the In predicate on the "emotional_state_end" field.
func EmotionalStateEndIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldEmotionalStateEnd, vs...))
}

// EmotionalStateEndNotIn applies the NotIn predicate on the "emotional_state_end" field.
func EmotionalStateEndNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldEmotionalStateEnd, vs...))
}

// EmotionalStateEndGT applies the GT predicate on the "emotional_state_end" field.
func EmotionalStateEndGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldEmotionalStateEnd, v))
}

// EmotionalStateEndGTE applies the GTE predicate on the "emotional_state_end" field.
func EmotionalStateEndGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldEmotionalStateEnd, v))
}

// EmotionalStateEndLT applies the LT predicate on the "emotional_state_end" field.
func EmotionalStateEndLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldEmotionalStateEnd, v))
}

// EmotionalStateEndLTE applies the LTE predicate on the "emotional_state_end" field.
func EmotionalStateEndLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldEmotionalStateEnd, v))
}

// EmotionalStateEndContains applies the Contains predicate on the "emotional_state_end" field.
func EmotionalStateEndContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldEmotionalStateEnd, v))
}

// EmotionalStateEndHasPrefix applies the HasPrefix predicate on the "emotional_state_end" field.
func EmotionalStateEndHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldEmotionalStateEnd, v))
}

// EmotionalStateEndHasSuffix applies the HasSuffix predicate on the "emotional_state_end" field.
func EmotionalStateEndHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldEmotionalStateEnd, v))
}

// EmotionalStateEndIsNil applies the IsNil predicate on the "emotional_state_end" field.
func EmotionalStateEndIsNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIsNull(FieldEmotionalStateEnd))
}

// EmotionalStateEndNotNil applies the NotNil predicate on the "emotional_state_end" field.
func EmotionalStateEndNotNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotNull(FieldEmotionalStateEnd))
}

// EmotionalStateEndEqualFold applies the EqualFold predicate on the "emotional_state_end" field.
func EmotionalStateEndEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldEmotionalStateEnd, v))
}

// EmotionalStateEndContainsFold applies the ContainsFold predicate on the "emotional_state_end" field.
func EmotionalStateEndContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldEmotionalStateEnd, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotNull(FieldEndedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningSession) predicate.LearningSession {
	return predicate.LearningSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningSession) predicate.LearningSession {
	return predicate.LearningSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningSession) predicate.LearningSession {
	return predicate.LearningSession(sql.NotPredicates(p))
}
