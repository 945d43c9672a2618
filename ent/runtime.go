// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/brightpath/tutor/ent/learningplan"
	"github.com/brightpath/tutor/ent/learningsession"
	"github.com/brightpath/tutor/ent/masteryrecord"
	"github.com/brightpath/tutor/ent/questionresponse"
	"github.com/brightpath/tutor/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	learningplanFields := schema.LearningPlan{}.Fields()
	_ = learningplanFields
	// learningplanDescStudentID is the schema descriptor for student_id field.
	learningplanDescStudentID := learningplanFields[1].Descriptor()
	// learningplan.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	learningplan.StudentIDValidator = learningplanDescStudentID.Validators[0].(func(string) error)
	// learningplanDescGoalID is the schema descriptor for goal_id field.
	learningplanDescGoalID := learningplanFields[2].Descriptor()
	// learningplan.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	learningplan.GoalIDValidator = learningplanDescGoalID.Validators[0].(func(string) error)
	// learningplanDescStatus is the schema descriptor for status field.
	learningplanDescStatus := learningplanFields[3].Descriptor()
	// learningplan.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	learningplan.StatusValidator = learningplanDescStatus.Validators[0].(func(string) error)
	// learningplanDescCurrentConceptIndex is the schema descriptor for current_concept_index field.
	learningplanDescCurrentConceptIndex := learningplanFields[5].Descriptor()
	// learningplan.DefaultCurrentConceptIndex holds the default value on creation for the current_concept_index field.
	learningplan.DefaultCurrentConceptIndex = learningplanDescCurrentConceptIndex.Default.(int)
	// learningplanDescHoursCompleted is the schema descriptor for hours_completed field.
	learningplanDescHoursCompleted := learningplanFields[7].Descriptor()
	// learningplan.DefaultHoursCompleted holds the default value on creation for the hours_completed field.
	learningplan.DefaultHoursCompleted = learningplanDescHoursCompleted.Default.(float64)
	// learningplanDescCreatedAt is the schema descriptor for created_at field.
	learningplanDescCreatedAt := learningplanFields[13].Descriptor()
	// learningplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningplan.DefaultCreatedAt = learningplanDescCreatedAt.Default.(func() time.Time)
	// learningplanDescUpdatedAt is the schema descriptor for updated_at field.
	learningplanDescUpdatedAt := learningplanFields[14].Descriptor()
	// learningplan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learningplan.DefaultUpdatedAt = learningplanDescUpdatedAt.Default.(func() time.Time)
	// learningplan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learningplan.UpdateDefaultUpdatedAt = learningplanDescUpdatedAt.UpdateDefault.(func() time.Time)
	// learningplanDescID is the schema descriptor for id field.
	learningplanDescID := learningplanFields[0].Descriptor()
	// learningplan.IDValidator is a validator for the "id" field. It is called by the builders before save.
	learningplan.IDValidator = learningplanDescID.Validators[0].(func(string) error)
	learningsessionFields := schema.LearningSession{}.Fields()
	_ = learningsessionFields
	// learningsessionDescStudentID is the schema descriptor for student_id field.
	learningsessionDescStudentID := learningsessionFields[1].Descriptor()
	// learningsession.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	learningsession.StudentIDValidator = learningsessionDescStudentID.Validators[0].(func(string) error)
	// learningsessionDescState is the schema descriptor for state field.
	learningsessionDescState := learningsessionFields[2].Descriptor()
	// learningsession.StateValidator is a validator for the "state" field. It is called by the builders before save.
	learningsession.StateValidator = learningsessionDescState.Validators[0].(func(string) error)
	// learningsessionDescCurrentConceptID is the schema descriptor for current_concept_id field.
	learningsessionDescCurrentConceptID := learningsessionFields[3].Descriptor()
	// learningsession.CurrentConceptIDValidator is a validator for the "current_concept_id" field. It is called by the builders before save.
	learningsession.CurrentConceptIDValidator = learningsessionDescCurrentConceptID.Validators[0].(func(string) error)
	// learningsessionDescQuestionsAnswered is the schema descriptor for questions_answered field.
	learningsessionDescQuestionsAnswered := learningsessionFields[4].Descriptor()
	// learningsession.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	learningsession.DefaultQuestionsAnswered = learningsessionDescQuestionsAnswered.Default.(int)
	// learningsessionDescCorrectAnswers is the schema descriptor for correct_answers field.
	learningsessionDescCorrectAnswers := learningsessionFields[5].Descriptor()
	// learningsession.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	learningsession.DefaultCorrectAnswers = learningsessionDescCorrectAnswers.Default.(int)
	// learningsessionDescHintsUsed is the schema descriptor for hints_used field.
	learningsessionDescHintsUsed := learningsessionFields[6].Descriptor()
	// learningsession.DefaultHintsUsed holds the default value on creation for the hints_used field.
	learningsession.DefaultHintsUsed = learningsessionDescHintsUsed.Default.(int)
	// learningsessionDescStartedAt is the schema descriptor for started_at field.
	learningsessionDescStartedAt := learningsessionFields[9].Descriptor()
	// learningsession.DefaultStartedAt holds the default value on creation for the started_at field.
	learningsession.DefaultStartedAt = learningsessionDescStartedAt.Default.(func() time.Time)
	// learningsessionDescUpdatedAt is the schema descriptor for updated_at field.
	learningsessionDescUpdatedAt := learningsessionFields[11].Descriptor()
	// learningsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learningsession.DefaultUpdatedAt = learningsessionDescUpdatedAt.Default.(func() time.Time)
	// learningsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learningsession.UpdateDefaultUpdatedAt = learningsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// learningsessionDescID is the schema descriptor for id field.
	learningsessionDescID := learningsessionFields[0].Descriptor()
	// learningsession.IDValidator is a validator for the "id" field. It is called by the builders before save.
	learningsession.IDValidator = learningsessionDescID.Validators[0].(func(string) error)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescStudentID is the schema descriptor for student_id field.
	masteryrecordDescStudentID := masteryrecordFields[0].Descriptor()
	// masteryrecord.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	masteryrecord.StudentIDValidator = masteryrecordDescStudentID.Validators[0].(func(string) error)
	// masteryrecordDescConceptID is the schema descriptor for concept_id field.
	masteryrecordDescConceptID := masteryrecordFields[1].Descriptor()
	// masteryrecord.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masteryrecord.ConceptIDValidator = masteryrecordDescConceptID.Validators[0].(func(string) error)
	// masteryrecordDescLevel is the schema descriptor for level field.
	masteryrecordDescLevel := masteryrecordFields[3].Descriptor()
	// masteryrecord.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	masteryrecord.LevelValidator = masteryrecordDescLevel.Validators[0].(func(string) error)
	// masteryrecordDescPracticeCount is the schema descriptor for practice_count field.
	masteryrecordDescPracticeCount := masteryrecordFields[4].Descriptor()
	// masteryrecord.DefaultPracticeCount holds the default value on creation for the practice_count field.
	masteryrecord.DefaultPracticeCount = masteryrecordDescPracticeCount.Default.(int)
	// masteryrecordDescCorrectCount is the schema descriptor for correct_count field.
	masteryrecordDescCorrectCount := masteryrecordFields[5].Descriptor()
	// masteryrecord.DefaultCorrectCount holds the default value on creation for the correct_count field.
	masteryrecord.DefaultCorrectCount = masteryrecordDescCorrectCount.Default.(int)
	// masteryrecordDescVersion is the schema descriptor for version field.
	masteryrecordDescVersion := masteryrecordFields[10].Descriptor()
	// masteryrecord.DefaultVersion holds the default value on creation for the version field.
	masteryrecord.DefaultVersion = masteryrecordDescVersion.Default.(int64)
	// masteryrecordDescCreatedAt is the schema descriptor for created_at field.
	masteryrecordDescCreatedAt := masteryrecordFields[11].Descriptor()
	// masteryrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	masteryrecord.DefaultCreatedAt = masteryrecordDescCreatedAt.Default.(func() time.Time)
	// masteryrecordDescUpdatedAt is the schema descriptor for updated_at field.
	masteryrecordDescUpdatedAt := masteryrecordFields[12].Descriptor()
	// masteryrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	masteryrecord.DefaultUpdatedAt = masteryrecordDescUpdatedAt.Default.(func() time.Time)
	// masteryrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	masteryrecord.UpdateDefaultUpdatedAt = masteryrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	questionresponseFields := schema.QuestionResponse{}.Fields()
	_ = questionresponseFields
	// questionresponseDescStudentID is the schema descriptor for student_id field.
	questionresponseDescStudentID := questionresponseFields[0].Descriptor()
	// questionresponse.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	questionresponse.StudentIDValidator = questionresponseDescStudentID.Validators[0].(func(string) error)
	// questionresponseDescConceptID is the schema descriptor for concept_id field.
	questionresponseDescConceptID := questionresponseFields[1].Descriptor()
	// questionresponse.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	questionresponse.ConceptIDValidator = questionresponseDescConceptID.Validators[0].(func(string) error)
	// questionresponseDescQuestionType is the schema descriptor for question_type field.
	questionresponseDescQuestionType := questionresponseFields[3].Descriptor()
	// questionresponse.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	questionresponse.QuestionTypeValidator = questionresponseDescQuestionType.Validators[0].(func(string) error)
	// questionresponseDescCreatedAt is the schema descriptor for created_at field.
	questionresponseDescCreatedAt := questionresponseFields[6].Descriptor()
	// questionresponse.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionresponse.DefaultCreatedAt = questionresponseDescCreatedAt.Default.(func() time.Time)
}
