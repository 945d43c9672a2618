// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brightpath/tutor/ent/learningplan"
	"github.com/brightpath/tutor/ent/learningsession"
	"github.com/brightpath/tutor/ent/masteryrecord"
	"github.com/brightpath/tutor/ent/predicate"
	"github.com/brightpath/tutor/ent/questionresponse"
	"github.com/brightpath/tutor/ent/schema"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLearningPlan     = "LearningPlan"
	TypeLearningSession  = "LearningSession"
	TypeMasteryRecord    = "MasteryRecord"
	TypeQuestionResponse = "QuestionResponse"
)

// LearningPlanMutation represents an operation that mutates the LearningPlan nodes in the graph.
type LearningPlanMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	student_id                 *string
	goal_id                    *string
	status                     *string
	concept_sequence           *[]string
	appendconcept_sequence     []string
	current_concept_index      *int
	addcurrent_concept_index   *int
	total_estimated_hours      *float64
	addtotal_estimated_hours   *float64
	hours_completed            *float64
	addhours_completed         *float64
	velocity_hours_per_week    *float64
	addvelocity_hours_per_week *float64
	milestones                 *[]schema.PlanMilestone
	appendmilestones           []schema.PlanMilestone
	advance_log                *[]schema.PlanAdvance
	appendadvance_log          []schema.PlanAdvance
	target_completion_date     *time.Time
	projected_completion_date  *time.Time
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*LearningPlan, error)
	predicates                 []predicate.LearningPlan
}

var _ ent.Mutation = (*LearningPlanMutation)(nil)

// learningplanOption allows management of the mutation configuration using functional options.
type learningplanOption func(*LearningPlanMutation)

// newLearningPlanMutation creates new mutation for the LearningPlan entity.
func newLearningPlanMutation(c config, op Op, opts ...learningplanOption) *LearningPlanMutation {
	m := &LearningPlanMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningPlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningPlanID sets the ID field of the mutation.
func withLearningPlanID(id string) learningplanOption {
	return func(m *LearningPlanMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningPlan
		)
		m.oldValue = func(ctx context.Context) (*LearningPlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningPlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningPlan sets the old LearningPlan of the mutation.
func withLearningPlan(node *LearningPlan) learningplanOption {
	return func(m *LearningPlanMutation) {
		m.oldValue = func(context.Context) (*LearningPlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningPlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningPlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LearningPlan entities.
func (m *LearningPlanMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningPlanMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningPlanMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningPlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *LearningPlanMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *LearningPlanMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *LearningPlanMutation) ResetStudentID() {
	m.student_id = nil
}

// SetGoalID sets the "goal_id" field.
func (m *LearningPlanMutation) SetGoalID(s string) {
	m.goal_id = &s
}

// GoalID returns the value of the "goal_id" field in the mutation.
func (m *LearningPlanMutation) GoalID() (r string, exists bool) {
	v := m.goal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalID returns the old "goal_id" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldGoalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalID: %w", err)
	}
	return oldValue.GoalID, nil
}

// ResetGoalID resets all changes to the "goal_id" field.
func (m *LearningPlanMutation) ResetGoalID() {
	m.goal_id = nil
}

// SetStatus sets the "status" field.
func (m *LearningPlanMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LearningPlanMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LearningPlanMutation) ResetStatus() {
	m.status = nil
}

// SetConceptSequence sets the "concept_sequence" field.
func (m *LearningPlanMutation) SetConceptSequence(s []string) {
	m.concept_sequence = &s
	m.appendconcept_sequence = nil
}

// ConceptSequence returns the value of the "concept_sequence" field in the mutation.
func (m *LearningPlanMutation) ConceptSequence() (r []string, exists bool) {
	v := m.concept_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptSequence returns the old "concept_sequence" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldConceptSequence(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptSequence: %w", err)
	}
	return oldValue.ConceptSequence, nil
}

// AppendConceptSequence adds s to the "concept_sequence" field.
func (m *LearningPlanMutation) AppendConceptSequence(s []string) {
	m.appendconcept_sequence = append(m.appendconcept_sequence, s...)
}

// AppendedConceptSequence returns the list of values that were appended to the "concept_sequence" field in this mutation.
func (m *LearningPlanMutation) AppendedConceptSequence() ([]string, bool) {
	if len(m.appendconcept_sequence) == 0 {
		return nil, false
	}
	return m.appendconcept_sequence, true
}

// ResetConceptSequence resets all changes to the "concept_sequence" field.
func (m *LearningPlanMutation) ResetConceptSequence() {
	m.concept_sequence = nil
	m.appendconcept_sequence = nil
}

// SetCurrentConceptIndex sets the "current_concept_index" field.
func (m *LearningPlanMutation) SetCurrentConceptIndex(i int) {
	m.current_concept_index = &i
	m.addcurrent_concept_index = nil
}

// CurrentConceptIndex returns the value of the "current_concept_index" field in the mutation.
func (m *LearningPlanMutation) CurrentConceptIndex() (r int, exists bool) {
	v := m.current_concept_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentConceptIndex returns the old "current_concept_index" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldCurrentConceptIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentConceptIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentConceptIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentConceptIndex: %w", err)
	}
	return oldValue.CurrentConceptIndex, nil
}

// AddCurrentConceptIndex adds i to the "current_concept_index" field.
func (m *LearningPlanMutation) AddCurrentConceptIndex(i int) {
	if m.addcurrent_concept_index != nil {
		*m.addcurrent_concept_index += i
	} else {
		m.addcurrent_concept_index = &i
	}
}

// AddedCurrentConceptIndex returns the value that was added to the "current_concept_index" field in this mutation.
func (m *LearningPlanMutation) AddedCurrentConceptIndex() (r int, exists bool) {
	v := m.addcurrent_concept_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentConceptIndex resets all changes to the "current_concept_index" field.
func (m *LearningPlanMutation) ResetCurrentConceptIndex() {
	m.current_concept_index = nil
	m.addcurrent_concept_index = nil
}

// SetTotalEstimatedHours sets the "total_estimated_hours" field.
func (m *LearningPlanMutation) SetTotalEstimatedHours(f float64) {
	m.total_estimated_hours = &f
	m.addtotal_estimated_hours = nil
}

// TotalEstimatedHours returns the value of the "total_estimated_hours" field in the mutation.
func (m *LearningPlanMutation) TotalEstimatedHours() (r float64, exists bool) {
	v := m.total_estimated_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalEstimatedHours returns the old "total_estimated_hours" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldTotalEstimatedHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalEstimatedHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalEstimatedHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalEstimatedHours: %w", err)
	}
	return oldValue.TotalEstimatedHours, nil
}

// AddTotalEstimatedHours adds f to the "total_estimated_hours" field.
func (m *LearningPlanMutation) AddTotalEstimatedHours(f float64) {
	if m.addtotal_estimated_hours != nil {
		*m.addtotal_estimated_hours += f
	} else {
		m.addtotal_estimated_hours = &f
	}
}

// AddedTotalEstimatedHours returns the value that was added to the "total_estimated_hours" field in this mutation.
func (m *LearningPlanMutation) AddedTotalEstimatedHours() (r float64, exists bool) {
	v := m.addtotal_estimated_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalEstimatedHours resets all changes to the "total_estimated_hours" field.
func (m *LearningPlanMutation) ResetTotalEstimatedHours() {
	m.total_estimated_hours = nil
	m.addtotal_estimated_hours = nil
}

// SetHoursCompleted sets the "hours_completed" field.
func (m *LearningPlanMutation) SetHoursCompleted(f float64) {
	m.hours_completed = &f
	m.addhours_completed = nil
}

// HoursCompleted returns the value of the "hours_completed" field in the mutation.
func (m *LearningPlanMutation) HoursCompleted() (r float64, exists bool) {
	v := m.hours_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldHoursCompleted returns the old "hours_completed" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldHoursCompleted(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHoursCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHoursCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHoursCompleted: %w", err)
	}
	return oldValue.HoursCompleted, nil
}

// AddHoursCompleted adds f to the "hours_completed" field.
func (m *LearningPlanMutation) AddHoursCompleted(f float64) {
	if m.addhours_completed != nil {
		*m.addhours_completed += f
	} else {
		m.addhours_completed = &f
	}
}

// AddedHoursCompleted returns the value that was added to the "hours_completed" field in this mutation.
func (m *LearningPlanMutation) AddedHoursCompleted() (r float64, exists bool) {
	v := m.addhours_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetHoursCompleted resets all changes to the "hours_completed" field.
func (m *LearningPlanMutation) ResetHoursCompleted() {
	m.hours_completed = nil
	m.addhours_completed = nil
}

// SetVelocityHoursPerWeek sets the "velocity_hours_per_week" field.
func (m *LearningPlanMutation) SetVelocityHoursPerWeek(f float64) {
	m.velocity_hours_per_week = &f
	m.addvelocity_hours_per_week = nil
}

// VelocityHoursPerWeek returns the value of the "velocity_hours_per_week" field in the mutation.
func (m *LearningPlanMutation) VelocityHoursPerWeek() (r float64, exists bool) {
	v := m.velocity_hours_per_week
	if v == nil {
		return
	}
	return *v, true
}

// OldVelocityHoursPerWeek returns the old "velocity_hours_per_week" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldVelocityHoursPerWeek(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVelocityHoursPerWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVelocityHoursPerWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVelocityHoursPerWeek: %w", err)
	}
	return oldValue.VelocityHoursPerWeek, nil
}

// AddVelocityHoursPerWeek adds f to the "velocity_hours_per_week" field.
func (m *LearningPlanMutation) AddVelocityHoursPerWeek(f float64) {
	if m.addvelocity_hours_per_week != nil {
		*m.addvelocity_hours_per_week += f
	} else {
		m.addvelocity_hours_per_week = &f
	}
}

// AddedVelocityHoursPerWeek returns the value that was added to the "velocity_hours_per_week" field in this mutation.
func (m *LearningPlanMutation) AddedVelocityHoursPerWeek() (r float64, exists bool) {
	v := m.addvelocity_hours_per_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetVelocityHoursPerWeek resets all changes to the "velocity_hours_per_week" field.
func (m *LearningPlanMutation) ResetVelocityHoursPerWeek() {
	m.velocity_hours_per_week = nil
	m.addvelocity_hours_per_week = nil
}

// SetMilestones sets the "milestones" field.
func (m *LearningPlanMutation) SetMilestones(sm []schema.PlanMilestone) {
	m.milestones = &sm
	m.appendmilestones = nil
}

// Milestones returns the value of the "milestones" field in the mutation.
func (m *LearningPlanMutation) Milestones() (r []schema.PlanMilestone, exists bool) {
	v := m.milestones
	if v == nil {
		return
	}
	return *v, true
}

// OldMilestones returns the old "milestones" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldMilestones(ctx context.Context) (v []schema.PlanMilestone, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMilestones is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMilestones requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMilestones: %w", err)
	}
	return oldValue.Milestones, nil
}

// AppendMilestones adds sm to the "milestones" field.
func (m *LearningPlanMutation) AppendMilestones(sm []schema.PlanMilestone) {
	m.appendmilestones = append(m.appendmilestones, sm...)
}

// AppendedMilestones returns the list of values that were appended to the "milestones" field in this mutation.
func (m *LearningPlanMutation) AppendedMilestones() ([]schema.PlanMilestone, bool) {
	if len(m.appendmilestones) == 0 {
		return nil, false
	}
	return m.appendmilestones, true
}

// ResetMilestones resets all changes to the "milestones" field.
func (m *LearningPlanMutation) ResetMilestones() {
	m.milestones = nil
	m.appendmilestones = nil
}

// SetAdvanceLog sets the "advance_log" field.
func (m *LearningPlanMutation) SetAdvanceLog(sa []schema.PlanAdvance) {
	m.advance_log = &sa
	m.appendadvance_log = nil
}

// AdvanceLog returns the value of the "advance_log" field in the mutation.
func (m *LearningPlanMutation) AdvanceLog() (r []schema.PlanAdvance, exists bool) {
	v := m.advance_log
	if v == nil {
		return
	}
	return *v, true
}

// OldAdvanceLog returns the old "advance_log" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldAdvanceLog(ctx context.Context) (v []schema.PlanAdvance, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdvanceLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdvanceLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdvanceLog: %w", err)
	}
	return oldValue.AdvanceLog, nil
}

// AppendAdvanceLog adds sa to the "advance_log" field.
func (m *LearningPlanMutation) AppendAdvanceLog(sa []schema.PlanAdvance) {
	m.appendadvance_log = append(m.appendadvance_log, sa...)
}

// AppendedAdvanceLog returns the list of values that were appended to the "advance_log" field in this mutation.
func (m *LearningPlanMutation) AppendedAdvanceLog() ([]schema.PlanAdvance, bool) {
	if len(m.appendadvance_log) == 0 {
		return nil, false
	}
	return m.appendadvance_log, true
}

// ClearAdvanceLog clears the value of the "advance_log" field.
func (m *LearningPlanMutation) ClearAdvanceLog() {
	m.advance_log = nil
	m.appendadvance_log = nil
	m.clearedFields[learningplan.FieldAdvanceLog] = struct{}{}
}

// AdvanceLogCleared returns if the "advance_log" field was cleared in this mutation.
func (m *LearningPlanMutation) AdvanceLogCleared() bool {
	_, ok := m.clearedFields[learningplan.FieldAdvanceLog]
	return ok
}

// ResetAdvanceLog resets all changes to the "advance_log" field.
func (m *LearningPlanMutation) ResetAdvanceLog() {
	m.advance_log = nil
	m.appendadvance_log = nil
	delete(m.clearedFields, learningplan.FieldAdvanceLog)
}

// SetTargetCompletionDate sets the "target_completion_date" field.
func (m *LearningPlanMutation) SetTargetCompletionDate(t time.Time) {
	m.target_completion_date = &t
}

// TargetCompletionDate returns the value of the "target_completion_date" field in the mutation.
func (m *LearningPlanMutation) TargetCompletionDate() (r time.Time, exists bool) {
	v := m.target_completion_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetCompletionDate returns the old "target_completion_date" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldTargetCompletionDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetCompletionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetCompletionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetCompletionDate: %w", err)
	}
	return oldValue.TargetCompletionDate, nil
}

// ClearTargetCompletionDate clears the value of the "target_completion_date" field.
func (m *LearningPlanMutation) ClearTargetCompletionDate() {
	m.target_completion_date = nil
	m.clearedFields[learningplan.FieldTargetCompletionDate] = struct{}{}
}

// TargetCompletionDateCleared returns if the "target_completion_date" field was cleared in this mutation.
func (m *LearningPlanMutation) TargetCompletionDateCleared() bool {
	_, ok := m.clearedFields[learningplan.FieldTargetCompletionDate]
	return ok
}

// ResetTargetCompletionDate resets all changes to the "target_completion_date" field.
func (m *LearningPlanMutation) ResetTargetCompletionDate() {
	m.target_completion_date = nil
	delete(m.clearedFields, learningplan.FieldTargetCompletionDate)
}

// SetProjectedCompletionDate sets the "projected_completion_date" field.
func (m *LearningPlanMutation) SetProjectedCompletionDate(t time.Time) {
	m.projected_completion_date = &t
}

// ProjectedCompletionDate returns the value of the "projected_completion_date" field in the mutation.
func (m *LearningPlanMutation) ProjectedCompletionDate() (r time.Time, exists bool) {
	v := m.projected_completion_date
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectedCompletionDate returns the old "projected_completion_date" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldProjectedCompletionDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectedCompletionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectedCompletionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectedCompletionDate: %w", err)
	}
	return oldValue.ProjectedCompletionDate, nil
}

// ResetProjectedCompletionDate resets all changes to the "projected_completion_date" field.
func (m *LearningPlanMutation) ResetProjectedCompletionDate() {
	m.projected_completion_date = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LearningPlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearningPlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearningPlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearningPlanMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearningPlanMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LearningPlan entity.
// If the LearningPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPlanMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearningPlanMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearningPlanMutation builder.
func (m *LearningPlanMutation) Where(ps ...predicate.LearningPlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningPlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningPlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningPlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningPlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningPlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningPlan).
func (m *LearningPlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningPlanMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.student_id != nil {
		fields = append(fields, learningplan.FieldStudentID)
	}
	if m.goal_id != nil {
		fields = append(fields, learningplan.FieldGoalID)
	}
	if m.status != nil {
		fields = append(fields, learningplan.FieldStatus)
	}
	if m.concept_sequence != nil {
		fields = append(fields, learningplan.FieldConceptSequence)
	}
	if m.current_concept_index != nil {
		fields = append(fields, learningplan.FieldCurrentConceptIndex)
	}
	if m.total_estimated_hours != nil {
		fields = append(fields, learningplan.FieldTotalEstimatedHours)
	}
	if m.hours_completed != nil {
		fields = append(fields, learningplan.FieldHoursCompleted)
	}
	if m.velocity_hours_per_week != nil {
		fields = append(fields, learningplan.FieldVelocityHoursPerWeek)
	}
	if m.milestones != nil {
		fields = append(fields, learningplan.FieldMilestones)
	}
	if m.advance_log != nil {
		fields = append(fields, learningplan.FieldAdvanceLog)
	}
	if m.target_completion_date != nil {
		fields = append(fields, learningplan.FieldTargetCompletionDate)
	}
	if m.projected_completion_date != nil {
		fields = append(fields, learningplan.FieldProjectedCompletionDate)
	}
	if m.created_at != nil {
		fields = append(fields, learningplan.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, learningplan.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningPlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningplan.FieldStudentID:
		return m.StudentID()
	case learningplan.FieldGoalID:
		return m.GoalID()
	case learningplan.FieldStatus:
		return m.Status()
	case learningplan.FieldConceptSequence:
		return m.ConceptSequence()
	case learningplan.FieldCurrentConceptIndex:
		return m.CurrentConceptIndex()
	case learningplan.FieldTotalEstimatedHours:
		return m.TotalEstimatedHours()
	case learningplan.FieldHoursCompleted:
		return m.HoursCompleted()
	case learningplan.FieldVelocityHoursPerWeek:
		return m.VelocityHoursPerWeek()
	case learningplan.FieldMilestones:
		return m.Milestones()
	case learningplan.FieldAdvanceLog:
		return m.AdvanceLog()
	case learningplan.FieldTargetCompletionDate:
		return m.TargetCompletionDate()
	case learningplan.FieldProjectedCompletionDate:
		return m.ProjectedCompletionDate()
	case learningplan.FieldCreatedAt:
		return m.CreatedAt()
	case learningplan.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningPlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningplan.FieldStudentID:
		return m.OldStudentID(ctx)
	case learningplan.FieldGoalID:
		return m.OldGoalID(ctx)
	case learningplan.FieldStatus:
		return m.OldStatus(ctx)
	case learningplan.FieldConceptSequence:
		return m.OldConceptSequence(ctx)
	case learningplan.FieldCurrentConceptIndex:
		return m.OldCurrentConceptIndex(ctx)
	case learningplan.FieldTotalEstimatedHours:
		return m.OldTotalEstimatedHours(ctx)
	case learningplan.FieldHoursCompleted:
		return m.OldHoursCompleted(ctx)
	case learningplan.FieldVelocityHoursPerWeek:
		return m.OldVelocityHoursPerWeek(ctx)
	case learningplan.FieldMilestones:
		return m.OldMilestones(ctx)
	case learningplan.FieldAdvanceLog:
		return m.OldAdvanceLog(ctx)
	case learningplan.FieldTargetCompletionDate:
		return m.OldTargetCompletionDate(ctx)
	case learningplan.FieldProjectedCompletionDate:
		return m.OldProjectedCompletionDate(ctx)
	case learningplan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case learningplan.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearningPlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningPlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningplan.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case learningplan.FieldGoalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalID(v)
		return nil
	case learningplan.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case learningplan.FieldConceptSequence:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptSequence(v)
		return nil
	case learningplan.FieldCurrentConceptIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentConceptIndex(v)
		return nil
	case learningplan.FieldTotalEstimatedHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalEstimatedHours(v)
		return nil
	case learningplan.FieldHoursCompleted:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHoursCompleted(v)
		return nil
	case learningplan.FieldVelocityHoursPerWeek:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVelocityHoursPerWeek(v)
		return nil
	case learningplan.FieldMilestones:
		v, ok := value.([]schema.PlanMilestone)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMilestones(v)
		return nil
	case learningplan.FieldAdvanceLog:
		v, ok := value.([]schema.PlanAdvance)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdvanceLog(v)
		return nil
	case learningplan.FieldTargetCompletionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetCompletionDate(v)
		return nil
	case learningplan.FieldProjectedCompletionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectedCompletionDate(v)
		return nil
	case learningplan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case learningplan.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearningPlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningPlanMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_concept_index != nil {
		fields = append(fields, learningplan.FieldCurrentConceptIndex)
	}
	if m.addtotal_estimated_hours != nil {
		fields = append(fields, learningplan.FieldTotalEstimatedHours)
	}
	if m.addhours_completed != nil {
		fields = append(fields, learningplan.FieldHoursCompleted)
	}
	if m.addvelocity_hours_per_week != nil {
		fields = append(fields, learningplan.FieldVelocityHoursPerWeek)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningPlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningplan.FieldCurrentConceptIndex:
		return m.AddedCurrentConceptIndex()
	case learningplan.FieldTotalEstimatedHours:
		return m.AddedTotalEstimatedHours()
	case learningplan.FieldHoursCompleted:
		return m.AddedHoursCompleted()
	case learningplan.FieldVelocityHoursPerWeek:
		return m.AddedVelocityHoursPerWeek()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningPlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningplan.FieldCurrentConceptIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentConceptIndex(v)
		return nil
	case learningplan.FieldTotalEstimatedHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalEstimatedHours(v)
		return nil
	case learningplan.FieldHoursCompleted:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHoursCompleted(v)
		return nil
	case learningplan.FieldVelocityHoursPerWeek:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVelocityHoursPerWeek(v)
		return nil
	}
	return fmt.Errorf("unknown LearningPlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningPlanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learningplan.FieldAdvanceLog) {
		fields = append(fields, learningplan.FieldAdvanceLog)
	}
	if m.FieldCleared(learningplan.FieldTargetCompletionDate) {
		fields = append(fields, learningplan.FieldTargetCompletionDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningPlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningPlanMutation) ClearField(name string) error {
	switch name {
	case learningplan.FieldAdvanceLog:
		m.ClearAdvanceLog()
		return nil
	case learningplan.FieldTargetCompletionDate:
		m.ClearTargetCompletionDate()
		return nil
	}
	return fmt.Errorf("unknown LearningPlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningPlanMutation) ResetField(name string) error {
	switch name {
	case learningplan.FieldStudentID:
		m.ResetStudentID()
		return nil
	case learningplan.FieldGoalID:
		m.ResetGoalID()
		return nil
	case learningplan.FieldStatus:
		m.ResetStatus()
		return nil
	case learningplan.FieldConceptSequence:
		m.ResetConceptSequence()
		return nil
	case learningplan.FieldCurrentConceptIndex:
		m.ResetCurrentConceptIndex()
		return nil
	case learningplan.FieldTotalEstimatedHours:
		m.ResetTotalEstimatedHours()
		return nil
	case learningplan.FieldHoursCompleted:
		m.ResetHoursCompleted()
		return nil
	case learningplan.FieldVelocityHoursPerWeek:
		m.ResetVelocityHoursPerWeek()
		return nil
	case learningplan.FieldMilestones:
		m.ResetMilestones()
		return nil
	case learningplan.FieldAdvanceLog:
		m.ResetAdvanceLog()
		return nil
	case learningplan.FieldTargetCompletionDate:
		m.ResetTargetCompletionDate()
		return nil
	case learningplan.FieldProjectedCompletionDate:
		m.ResetProjectedCompletionDate()
		return nil
	case learningplan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case learningplan.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearningPlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningPlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningPlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningPlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningPlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningPlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningPlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningPlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningPlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningPlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningPlan edge %s", name)
}

// LearningSessionMutation represents an operation that mutates the LearningSession nodes in the graph.
type LearningSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	student_id            *string
	state                 *string
	current_concept_id    *string
	questions_answered    *int
	addquestions_answered *int
	correct_answers       *int
	addcorrect_answers    *int
	hints_used            *int
	addhints_used         *int
	emotional_state_start *string
	emotional_state_end   *string
	started_at            *time.Time
	ended_at              *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*LearningSession, error)
	predicates            []predicate.LearningSession
}

var _ ent.Mutation = (*LearningSessionMutation)(nil)

// learningsessionOption allows management of the mutation configuration using functional options.
type learningsessionOption func(*LearningSessionMutation)

// newLearningSessionMutation creates new mutation for the LearningSession entity.
func newLearningSessionMutation(c config, op Op, opts ...learningsessionOption) *LearningSessionMutation {
	m := &LearningSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningSessionID sets the ID field of the mutation.
func withLearningSessionID(id string) learningsessionOption {
	return func(m *LearningSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningSession
		)
		m.oldValue = func(ctx context.Context) (*LearningSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningSession sets the old LearningSession of the mutation.
func withLearningSession(node *LearningSession) learningsessionOption {
	return func(m *LearningSessionMutation) {
		m.oldValue = func(context.Context) (*LearningSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LearningSession entities.
func (m *LearningSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *LearningSessionMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *LearningSessionMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *LearningSessionMutation) ResetStudentID() {
	m.student_id = nil
}

// SetState sets the "state" field.
func (m *LearningSessionMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *LearningSessionMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *LearningSessionMutation) ResetState() {
	m.state = nil
}

// SetCurrentConceptID sets the "current_concept_id" field.
func (m *LearningSessionMutation) SetCurrentConceptID(s string) {
	m.current_concept_id = &s
}

// CurrentConceptID returns the value of the "current_concept_id" field in the mutation.
func (m *LearningSessionMutation) CurrentConceptID() (r string, exists bool) {
	v := m.current_concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentConceptID returns the old "current_concept_id" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldCurrentConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentConceptID: %w", err)
	}
	return oldValue.CurrentConceptID, nil
}

// ResetCurrentConceptID resets all changes to the "current_concept_id" field.
func (m *LearningSessionMutation) ResetCurrentConceptID() {
	m.current_concept_id = nil
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (m *LearningSessionMutation) SetQuestionsAnswered(i int) {
	m.questions_answered = &i
	m.addquestions_answered = nil
}

// QuestionsAnswered returns the value of the "questions_answered" field in the mutation.
func (m *LearningSessionMutation) QuestionsAnswered() (r int, exists bool) {
	v := m.questions_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAnswered returns the old "questions_answered" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldQuestionsAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAnswered: %w", err)
	}
	return oldValue.QuestionsAnswered, nil
}

// AddQuestionsAnswered adds i to the "questions_answered" field.
func (m *LearningSessionMutation) AddQuestionsAnswered(i int) {
	if m.addquestions_answered != nil {
		*m.addquestions_answered += i
	} else {
		m.addquestions_answered = &i
	}
}

// AddedQuestionsAnswered returns the value that was added to the "questions_answered" field in this mutation.
func (m *LearningSessionMutation) AddedQuestionsAnswered() (r int, exists bool) {
	v := m.addquestions_answered
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAnswered resets all changes to the "questions_answered" field.
func (m *LearningSessionMutation) ResetQuestionsAnswered() {
	m.questions_answered = nil
	m.addquestions_answered = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *LearningSessionMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *LearningSessionMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *LearningSessionMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *LearningSessionMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *LearningSessionMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetHintsUsed sets the "hints_used" field.
func (m *LearningSessionMutation) SetHintsUsed(i int) {
	m.hints_used = &i
	m.addhints_used = nil
}

// HintsUsed returns the value of the "hints_used" field in the mutation.
func (m *LearningSessionMutation) HintsUsed() (r int, exists bool) {
	v := m.hints_used
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsUsed returns the old "hints_used" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldHintsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsUsed: %w", err)
	}
	return oldValue.HintsUsed, nil
}

// AddHintsUsed adds i to the "hints_used" field.
func (m *LearningSessionMutation) AddHintsUsed(i int) {
	if m.addhints_used != nil {
		*m.addhints_used += i
	} else {
		m.addhints_used = &i
	}
}

// AddedHintsUsed returns the value that was added to the "hints_used" field in this mutation.
func (m *LearningSessionMutation) AddedHintsUsed() (r int, exists bool) {
	v := m.addhints_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintsUsed resets all changes to the "hints_used" field.
func (m *LearningSessionMutation) ResetHintsUsed() {
	m.hints_used = nil
	m.addhints_used = nil
}

// SetEmotionalStateStart sets the "emotional_state_start" field.
func (m *LearningSessionMutation) SetEmotionalStateStart(s string) {
	m.emotional_state_start = &s
}

// EmotionalStateStart returns the value of the "emotional_state_start" field in the mutation.
func (m *LearningSessionMutation) EmotionalStateStart() (r string, exists bool) {
	v := m.emotional_state_start
	if v == nil {
		return
	}
	return *v, true
}

// OldEmotionalStateStart returns the old "emotional_state_start" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldEmotionalStateStart(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmotionalStateStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmotionalStateStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmotionalStateStart: %w", err)
	}
	return oldValue.EmotionalStateStart, nil
}

// ClearEmotionalStateStart clears the value of the "emotional_state_start" field.
func (m *LearningSessionMutation) ClearEmotionalStateStart() {
	m.emotional_state_start = nil
	m.clearedFields[learningsession.FieldEmotionalStateStart] = struct{}{}
}

// EmotionalStateStartCleared returns if the "emotional_state_start" field was cleared in this mutation.
func (m *LearningSessionMutation) EmotionalStateStartCleared() bool {
	_, ok := m.clearedFields[learningsession.FieldEmotionalStateStart]
	return ok
}

// ResetEmotionalStateStart resets all changes to the "emotional_state_start" field.
func (m *LearningSessionMutation) ResetEmotionalStateStart() {
	m.emotional_state_start = nil
	delete(m.clearedFields, learningsession.FieldEmotionalStateStart)
}

// SetEmotionalStateEnd sets the "emotional_state_end" field.
func (m *LearningSessionMutation) SetEmotionalStateEnd(s string) {
	m.emotional_state_end = &s
}

// EmotionalStateEnd returns the value of the "emotional_state_end" field in the mutation.
func (m *LearningSessionMutation) EmotionalStateEnd() (r string, exists bool) {
	v := m.emotional_state_end
	if v == nil {
		return
	}
	return *v, true
}

// OldEmotionalStateEnd returns the old "emotional_state_end" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldEmotionalStateEnd(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmotionalStateEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmotionalStateEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmotionalStateEnd: %w", err)
	}
	return oldValue.EmotionalStateEnd, nil
}

// ClearEmotionalStateEnd clears the value of the "emotional_state_end" field.
func (m *LearningSessionMutation) ClearEmotionalStateEnd() {
	m.emotional_state_end = nil
	m.clearedFields[learningsession.FieldEmotionalStateEnd] = struct{}{}
}

// EmotionalStateEndCleared returns if the "emotional_state_end" field was cleared in this mutation.
func (m *LearningSessionMutation) EmotionalStateEndCleared() bool {
	_, ok := m.clearedFields[learningsession.FieldEmotionalStateEnd]
	return ok
}

// ResetEmotionalStateEnd resets all changes to the "emotional_state_end" field.
func (m *LearningSessionMutation) ResetEmotionalStateEnd() {
	m.emotional_state_end = nil
	delete(m.clearedFields, learningsession.FieldEmotionalStateEnd)
}

// SetStartedAt sets the "started_at" field.
func (m *LearningSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *LearningSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *LearningSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *LearningSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *LearningSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *LearningSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[learningsession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *LearningSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[learningsession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *LearningSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, learningsession.FieldEndedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearningSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearningSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearningSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearningSessionMutation builder.
func (m *LearningSessionMutation) Where(ps ...predicate.LearningSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningSession).
func (m *LearningSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningSessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.student_id != nil {
		fields = append(fields, learningsession.FieldStudentID)
	}
	if m.state != nil {
		fields = append(fields, learningsession.FieldState)
	}
	if m.current_concept_id != nil {
		fields = append(fields, learningsession.FieldCurrentConceptID)
	}
	if m.questions_answered != nil {
		fields = append(fields, learningsession.FieldQuestionsAnswered)
	}
	if m.correct_answers != nil {
		fields = append(fields, learningsession.FieldCorrectAnswers)
	}
	if m.hints_used != nil {
		fields = append(fields, learningsession.FieldHintsUsed)
	}
	if m.emotional_state_start != nil {
		fields = append(fields, learningsession.FieldEmotionalStateStart)
	}
	if m.emotional_state_end != nil {
		fields = append(fields, learningsession.FieldEmotionalStateEnd)
	}
	if m.started_at != nil {
		fields = append(fields, learningsession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, learningsession.FieldEndedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, learningsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningsession.FieldStudentID:
		return m.StudentID()
	case learningsession.FieldState:
		return m.State()
	case learningsession.FieldCurrentConceptID:
		return m.CurrentConceptID()
	case learningsession.FieldQuestionsAnswered:
		return m.QuestionsAnswered()
	case learningsession.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case learningsession.FieldHintsUsed:
		return m.HintsUsed()
	case learningsession.FieldEmotionalStateStart:
		return m.EmotionalStateStart()
	case learningsession.FieldEmotionalStateEnd:
		return m.EmotionalStateEnd()
	case learningsession.FieldStartedAt:
		return m.StartedAt()
	case learningsession.FieldEndedAt:
		return m.EndedAt()
	case learningsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningsession.FieldStudentID:
		return m.OldStudentID(ctx)
	case learningsession.FieldState:
		return m.OldState(ctx)
	case learningsession.FieldCurrentConceptID:
		return m.OldCurrentConceptID(ctx)
	case learningsession.FieldQuestionsAnswered:
		return m.OldQuestionsAnswered(ctx)
	case learningsession.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case learningsession.FieldHintsUsed:
		return m.OldHintsUsed(ctx)
	case learningsession.FieldEmotionalStateStart:
		return m.OldEmotionalStateStart(ctx)
	case learningsession.FieldEmotionalStateEnd:
		return m.OldEmotionalStateEnd(ctx)
	case learningsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case learningsession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case learningsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearningSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningsession.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case learningsession.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case learningsession.FieldCurrentConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentConceptID(v)
		return nil
	case learningsession.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAnswered(v)
		return nil
	case learningsession.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case learningsession.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsUsed(v)
		return nil
	case learningsession.FieldEmotionalStateStart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmotionalStateStart(v)
		return nil
	case learningsession.FieldEmotionalStateEnd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmotionalStateEnd(v)
		return nil
	case learningsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case learningsession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case learningsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearningSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningSessionMutation) AddedFields() []string {
	var fields []string
	if m.addquestions_answered != nil {
		fields = append(fields, learningsession.FieldQuestionsAnswered)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, learningsession.FieldCorrectAnswers)
	}
	if m.addhints_used != nil {
		fields = append(fields, learningsession.FieldHintsUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningsession.FieldQuestionsAnswered:
		return m.AddedQuestionsAnswered()
	case learningsession.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	case learningsession.FieldHintsUsed:
		return m.AddedHintsUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningsession.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAnswered(v)
		return nil
	case learningsession.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	case learningsession.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown LearningSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learningsession.FieldEmotionalStateStart) {
		fields = append(fields, learningsession.FieldEmotionalStateStart)
	}
	if m.FieldCleared(learningsession.FieldEmotionalStateEnd) {
		fields = append(fields, learningsession.FieldEmotionalStateEnd)
	}
	if m.FieldCleared(learningsession.FieldEndedAt) {
		fields = append(fields, learningsession.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningSessionMutation) ClearField(name string) error {
	switch name {
	case learningsession.FieldEmotionalStateStart:
		m.ClearEmotionalStateStart()
		return nil
	case learningsession.FieldEmotionalStateEnd:
		m.ClearEmotionalStateEnd()
		return nil
	case learningsession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown LearningSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningSessionMutation) ResetField(name string) error {
	switch name {
	case learningsession.FieldStudentID:
		m.ResetStudentID()
		return nil
	case learningsession.FieldState:
		m.ResetState()
		return nil
	case learningsession.FieldCurrentConceptID:
		m.ResetCurrentConceptID()
		return nil
	case learningsession.FieldQuestionsAnswered:
		m.ResetQuestionsAnswered()
		return nil
	case learningsession.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case learningsession.FieldHintsUsed:
		m.ResetHintsUsed()
		return nil
	case learningsession.FieldEmotionalStateStart:
		m.ResetEmotionalStateStart()
		return nil
	case learningsession.FieldEmotionalStateEnd:
		m.ResetEmotionalStateEnd()
		return nil
	case learningsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case learningsession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case learningsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearningSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningSession edge %s", name)
}

// MasteryRecordMutation represents an operation that mutates the MasteryRecord nodes in the graph.
type MasteryRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	student_id         *string
	concept_id         *string
	bkt_probability    *float64
	addbkt_probability *float64
	level              *string
	practice_count     *int
	addpractice_count  *int
	correct_count      *int
	addcorrect_count   *int
	last_practiced_at  *time.Time
	next_review_at     *time.Time
	retention_score    *float64
	addretention_score *float64
	speed_trend_ms     *int64
	addspeed_trend_ms  *int64
	version            *int64
	addversion         *int64
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*MasteryRecord, error)
	predicates         []predicate.MasteryRecord
}

var _ ent.Mutation = (*MasteryRecordMutation)(nil)

// masteryrecordOption allows management of the mutation configuration using functional options.
type masteryrecordOption func(*MasteryRecordMutation)

// newMasteryRecordMutation creates new mutation for the MasteryRecord entity.
func newMasteryRecordMutation(c config, op Op, opts ...masteryrecordOption) *MasteryRecordMutation {
	m := &MasteryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryRecordID sets the ID field of the mutation.
func withMasteryRecordID(id int) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryRecord
		)
		m.oldValue = func(ctx context.Context) (*MasteryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryRecord sets the old MasteryRecord of the mutation.
func withMasteryRecord(node *MasteryRecord) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		m.oldValue = func(context.Context) (*MasteryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *MasteryRecordMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *MasteryRecordMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *MasteryRecordMutation) ResetStudentID() {
	m.student_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *MasteryRecordMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *MasteryRecordMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *MasteryRecordMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetBktProbability sets the "bkt_probability" field.
func (m *MasteryRecordMutation) SetBktProbability(f float64) {
	m.bkt_probability = &f
	m.addbkt_probability = nil
}

// BktProbability returns the value of the "bkt_probability" field in the mutation.
func (m *MasteryRecordMutation) BktProbability() (r float64, exists bool) {
	v := m.bkt_probability
	if v == nil {
		return
	}
	return *v, true
}

// OldBktProbability returns the old "bkt_probability" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldBktProbability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBktProbability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBktProbability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBktProbability: %w", err)
	}
	return oldValue.BktProbability, nil
}

// AddBktProbability adds f to the "bkt_probability" field.
func (m *MasteryRecordMutation) AddBktProbability(f float64) {
	if m.addbkt_probability != nil {
		*m.addbkt_probability += f
	} else {
		m.addbkt_probability = &f
	}
}

// AddedBktProbability returns the value that was added to the "bkt_probability" field in this mutation.
func (m *MasteryRecordMutation) AddedBktProbability() (r float64, exists bool) {
	v := m.addbkt_probability
	if v == nil {
		return
	}
	return *v, true
}

// ResetBktProbability resets all changes to the "bkt_probability" field.
func (m *MasteryRecordMutation) ResetBktProbability() {
	m.bkt_probability = nil
	m.addbkt_probability = nil
}

// SetLevel sets the "level" field.
func (m *MasteryRecordMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *MasteryRecordMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *MasteryRecordMutation) ResetLevel() {
	m.level = nil
}

// SetPracticeCount sets the "practice_count" field.
func (m *MasteryRecordMutation) SetPracticeCount(i int) {
	m.practice_count = &i
	m.addpractice_count = nil
}

// PracticeCount returns the value of the "practice_count" field in the mutation.
func (m *MasteryRecordMutation) PracticeCount() (r int, exists bool) {
	v := m.practice_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeCount returns the old "practice_count" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldPracticeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeCount: %w", err)
	}
	return oldValue.PracticeCount, nil
}

// AddPracticeCount adds i to the "practice_count" field.
func (m *MasteryRecordMutation) AddPracticeCount(i int) {
	if m.addpractice_count != nil {
		*m.addpractice_count += i
	} else {
		m.addpractice_count = &i
	}
}

// AddedPracticeCount returns the value that was added to the "practice_count" field in this mutation.
func (m *MasteryRecordMutation) AddedPracticeCount() (r int, exists bool) {
	v := m.addpractice_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPracticeCount resets all changes to the "practice_count" field.
func (m *MasteryRecordMutation) ResetPracticeCount() {
	m.practice_count = nil
	m.addpractice_count = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *MasteryRecordMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *MasteryRecordMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *MasteryRecordMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *MasteryRecordMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *MasteryRecordMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (m *MasteryRecordMutation) SetLastPracticedAt(t time.Time) {
	m.last_practiced_at = &t
}

// LastPracticedAt returns the value of the "last_practiced_at" field in the mutation.
func (m *MasteryRecordMutation) LastPracticedAt() (r time.Time, exists bool) {
	v := m.last_practiced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticedAt returns the old "last_practiced_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldLastPracticedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticedAt: %w", err)
	}
	return oldValue.LastPracticedAt, nil
}

// ResetLastPracticedAt resets all changes to the "last_practiced_at" field.
func (m *MasteryRecordMutation) ResetLastPracticedAt() {
	m.last_practiced_at = nil
}

// SetNextReviewAt sets the "next_review_at" field.
func (m *MasteryRecordMutation) SetNextReviewAt(t time.Time) {
	m.next_review_at = &t
}

// NextReviewAt returns the value of the "next_review_at" field in the mutation.
func (m *MasteryRecordMutation) NextReviewAt() (r time.Time, exists bool) {
	v := m.next_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewAt returns the old "next_review_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldNextReviewAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewAt: %w", err)
	}
	return oldValue.NextReviewAt, nil
}

// ResetNextReviewAt resets all changes to the "next_review_at" field.
func (m *MasteryRecordMutation) ResetNextReviewAt() {
	m.next_review_at = nil
}

// SetRetentionScore sets the "retention_score" field.
func (m *MasteryRecordMutation) SetRetentionScore(f float64) {
	m.retention_score = &f
	m.addretention_score = nil
}

// RetentionScore returns the value of the "retention_score" field in the mutation.
func (m *MasteryRecordMutation) RetentionScore() (r float64, exists bool) {
	v := m.retention_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRetentionScore returns the old "retention_score" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldRetentionScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetentionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetentionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetentionScore: %w", err)
	}
	return oldValue.RetentionScore, nil
}

// AddRetentionScore adds f to the "retention_score" field.
func (m *MasteryRecordMutation) AddRetentionScore(f float64) {
	if m.addretention_score != nil {
		*m.addretention_score += f
	} else {
		m.addretention_score = &f
	}
}

// AddedRetentionScore returns the value that was added to the "retention_score" field in this mutation.
func (m *MasteryRecordMutation) AddedRetentionScore() (r float64, exists bool) {
	v := m.addretention_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearRetentionScore clears the value of the "retention_score" field.
func (m *MasteryRecordMutation) ClearRetentionScore() {
	m.retention_score = nil
	m.addretention_score = nil
	m.clearedFields[masteryrecord.FieldRetentionScore] = struct{}{}
}

// RetentionScoreCleared returns if the "retention_score" field was cleared in this mutation.
func (m *MasteryRecordMutation) RetentionScoreCleared() bool {
	_, ok := m.clearedFields[masteryrecord.FieldRetentionScore]
	return ok
}

// ResetRetentionScore resets all changes to the "retention_score" field.
func (m *MasteryRecordMutation) ResetRetentionScore() {
	m.retention_score = nil
	m.addretention_score = nil
	delete(m.clearedFields, masteryrecord.FieldRetentionScore)
}

// SetSpeedTrendMs sets the "speed_trend_ms" field.
func (m *MasteryRecordMutation) SetSpeedTrendMs(i int64) {
	m.speed_trend_ms = &i
	m.addspeed_trend_ms = nil
}

// SpeedTrendMs returns the value of the "speed_trend_ms" field in the mutation.
func (m *MasteryRecordMutation) SpeedTrendMs() (r int64, exists bool) {
	v := m.speed_trend_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeedTrendMs returns the old "speed_trend_ms" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldSpeedTrendMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeedTrendMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeedTrendMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeedTrendMs: %w", err)
	}
	return oldValue.SpeedTrendMs, nil
}

// AddSpeedTrendMs adds i to the "speed_trend_ms" field.
func (m *MasteryRecordMutation) AddSpeedTrendMs(i int64) {
	if m.addspeed_trend_ms != nil {
		*m.addspeed_trend_ms += i
	} else {
		m.addspeed_trend_ms = &i
	}
}

// AddedSpeedTrendMs returns the value that was added to the "speed_trend_ms" field in this mutation.
func (m *MasteryRecordMutation) AddedSpeedTrendMs() (r int64, exists bool) {
	v := m.addspeed_trend_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearSpeedTrendMs clears the value of the "speed_trend_ms" field.
func (m *MasteryRecordMutation) ClearSpeedTrendMs() {
	m.speed_trend_ms = nil
	m.addspeed_trend_ms = nil
	m.clearedFields[masteryrecord.FieldSpeedTrendMs] = struct{}{}
}

// SpeedTrendMsCleared returns if the "speed_trend_ms" field was cleared in this mutation.
func (m *MasteryRecordMutation) SpeedTrendMsCleared() bool {
	_, ok := m.clearedFields[masteryrecord.FieldSpeedTrendMs]
	return ok
}

// ResetSpeedTrendMs resets all changes to the "speed_trend_ms" field.
func (m *MasteryRecordMutation) ResetSpeedTrendMs() {
	m.speed_trend_ms = nil
	m.addspeed_trend_ms = nil
	delete(m.clearedFields, masteryrecord.FieldSpeedTrendMs)
}

// SetVersion sets the "version" field.
func (m *MasteryRecordMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *MasteryRecordMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *MasteryRecordMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *MasteryRecordMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *MasteryRecordMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MasteryRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MasteryRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MasteryRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MasteryRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MasteryRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MasteryRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MasteryRecordMutation builder.
func (m *MasteryRecordMutation) Where(ps ...predicate.MasteryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryRecord).
func (m *MasteryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryRecordMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.student_id != nil {
		fields = append(fields, masteryrecord.FieldStudentID)
	}
	if m.concept_id != nil {
		fields = append(fields, masteryrecord.FieldConceptID)
	}
	if m.bkt_probability != nil {
		fields = append(fields, masteryrecord.FieldBktProbability)
	}
	if m.level != nil {
		fields = append(fields, masteryrecord.FieldLevel)
	}
	if m.practice_count != nil {
		fields = append(fields, masteryrecord.FieldPracticeCount)
	}
	if m.correct_count != nil {
		fields = append(fields, masteryrecord.FieldCorrectCount)
	}
	if m.last_practiced_at != nil {
		fields = append(fields, masteryrecord.FieldLastPracticedAt)
	}
	if m.next_review_at != nil {
		fields = append(fields, masteryrecord.FieldNextReviewAt)
	}
	if m.retention_score != nil {
		fields = append(fields, masteryrecord.FieldRetentionScore)
	}
	if m.speed_trend_ms != nil {
		fields = append(fields, masteryrecord.FieldSpeedTrendMs)
	}
	if m.version != nil {
		fields = append(fields, masteryrecord.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, masteryrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, masteryrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldStudentID:
		return m.StudentID()
	case masteryrecord.FieldConceptID:
		return m.ConceptID()
	case masteryrecord.FieldBktProbability:
		return m.BktProbability()
	case masteryrecord.FieldLevel:
		return m.Level()
	case masteryrecord.FieldPracticeCount:
		return m.PracticeCount()
	case masteryrecord.FieldCorrectCount:
		return m.CorrectCount()
	case masteryrecord.FieldLastPracticedAt:
		return m.LastPracticedAt()
	case masteryrecord.FieldNextReviewAt:
		return m.NextReviewAt()
	case masteryrecord.FieldRetentionScore:
		return m.RetentionScore()
	case masteryrecord.FieldSpeedTrendMs:
		return m.SpeedTrendMs()
	case masteryrecord.FieldVersion:
		return m.Version()
	case masteryrecord.FieldCreatedAt:
		return m.CreatedAt()
	case masteryrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masteryrecord.FieldStudentID:
		return m.OldStudentID(ctx)
	case masteryrecord.FieldConceptID:
		return m.OldConceptID(ctx)
	case masteryrecord.FieldBktProbability:
		return m.OldBktProbability(ctx)
	case masteryrecord.FieldLevel:
		return m.OldLevel(ctx)
	case masteryrecord.FieldPracticeCount:
		return m.OldPracticeCount(ctx)
	case masteryrecord.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case masteryrecord.FieldLastPracticedAt:
		return m.OldLastPracticedAt(ctx)
	case masteryrecord.FieldNextReviewAt:
		return m.OldNextReviewAt(ctx)
	case masteryrecord.FieldRetentionScore:
		return m.OldRetentionScore(ctx)
	case masteryrecord.FieldSpeedTrendMs:
		return m.OldSpeedTrendMs(ctx)
	case masteryrecord.FieldVersion:
		return m.OldVersion(ctx)
	case masteryrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case masteryrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case masteryrecord.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case masteryrecord.FieldBktProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBktProbability(v)
		return nil
	case masteryrecord.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case masteryrecord.FieldPracticeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeCount(v)
		return nil
	case masteryrecord.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case masteryrecord.FieldLastPracticedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticedAt(v)
		return nil
	case masteryrecord.FieldNextReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewAt(v)
		return nil
	case masteryrecord.FieldRetentionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetentionScore(v)
		return nil
	case masteryrecord.FieldSpeedTrendMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeedTrendMs(v)
		return nil
	case masteryrecord.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case masteryrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case masteryrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addbkt_probability != nil {
		fields = append(fields, masteryrecord.FieldBktProbability)
	}
	if m.addpractice_count != nil {
		fields = append(fields, masteryrecord.FieldPracticeCount)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, masteryrecord.FieldCorrectCount)
	}
	if m.addretention_score != nil {
		fields = append(fields, masteryrecord.FieldRetentionScore)
	}
	if m.addspeed_trend_ms != nil {
		fields = append(fields, masteryrecord.FieldSpeedTrendMs)
	}
	if m.addversion != nil {
		fields = append(fields, masteryrecord.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldBktProbability:
		return m.AddedBktProbability()
	case masteryrecord.FieldPracticeCount:
		return m.AddedPracticeCount()
	case masteryrecord.FieldCorrectCount:
		return m.AddedCorrectCount()
	case masteryrecord.FieldRetentionScore:
		return m.AddedRetentionScore()
	case masteryrecord.FieldSpeedTrendMs:
		return m.AddedSpeedTrendMs()
	case masteryrecord.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldBktProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBktProbability(v)
		return nil
	case masteryrecord.FieldPracticeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPracticeCount(v)
		return nil
	case masteryrecord.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case masteryrecord.FieldRetentionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetentionScore(v)
		return nil
	case masteryrecord.FieldSpeedTrendMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpeedTrendMs(v)
		return nil
	case masteryrecord.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(masteryrecord.FieldRetentionScore) {
		fields = append(fields, masteryrecord.FieldRetentionScore)
	}
	if m.FieldCleared(masteryrecord.FieldSpeedTrendMs) {
		fields = append(fields, masteryrecord.FieldSpeedTrendMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ClearField(name string) error {
	switch name {
	case masteryrecord.FieldRetentionScore:
		m.ClearRetentionScore()
		return nil
	case masteryrecord.FieldSpeedTrendMs:
		m.ClearSpeedTrendMs()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ResetField(name string) error {
	switch name {
	case masteryrecord.FieldStudentID:
		m.ResetStudentID()
		return nil
	case masteryrecord.FieldConceptID:
		m.ResetConceptID()
		return nil
	case masteryrecord.FieldBktProbability:
		m.ResetBktProbability()
		return nil
	case masteryrecord.FieldLevel:
		m.ResetLevel()
		return nil
	case masteryrecord.FieldPracticeCount:
		m.ResetPracticeCount()
		return nil
	case masteryrecord.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case masteryrecord.FieldLastPracticedAt:
		m.ResetLastPracticedAt()
		return nil
	case masteryrecord.FieldNextReviewAt:
		m.ResetNextReviewAt()
		return nil
	case masteryrecord.FieldRetentionScore:
		m.ResetRetentionScore()
		return nil
	case masteryrecord.FieldSpeedTrendMs:
		m.ResetSpeedTrendMs()
		return nil
	case masteryrecord.FieldVersion:
		m.ResetVersion()
		return nil
	case masteryrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case masteryrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord edge %s", name)
}

// QuestionResponseMutation represents an operation that mutates the QuestionResponse nodes in the graph.
type QuestionResponseMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	student_id          *string
	concept_id          *string
	session_id          *string
	question_type       *string
	is_correct          *bool
	response_time_ms    *int64
	addresponse_time_ms *int64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*QuestionResponse, error)
	predicates          []predicate.QuestionResponse
}

var _ ent.Mutation = (*QuestionResponseMutation)(nil)

// questionresponseOption allows management of the mutation configuration using functional options.
type questionresponseOption func(*QuestionResponseMutation)

// newQuestionResponseMutation creates new mutation for the QuestionResponse entity.
func newQuestionResponseMutation(c config, op Op, opts ...questionresponseOption) *QuestionResponseMutation {
	m := &QuestionResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionResponseID sets the ID field of the mutation.
func withQuestionResponseID(id int) questionresponseOption {
	return func(m *QuestionResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionResponse
		)
		m.oldValue = func(ctx context.Context) (*QuestionResponse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionResponse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionResponse sets the old QuestionResponse of the mutation.
func withQuestionResponse(node *QuestionResponse) questionresponseOption {
	return func(m *QuestionResponseMutation) {
		m.oldValue = func(context.Context) (*QuestionResponse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionResponseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionResponseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionResponse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *QuestionResponseMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *QuestionResponseMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the QuestionResponse entity.
// If the QuestionResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionResponseMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *QuestionResponseMutation) ResetStudentID() {
	m.student_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *QuestionResponseMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *QuestionResponseMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the QuestionResponse entity.
// If the QuestionResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionResponseMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *QuestionResponseMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *QuestionResponseMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuestionResponseMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QuestionResponse entity.
// If the QuestionResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionResponseMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *QuestionResponseMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[questionresponse.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *QuestionResponseMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[questionresponse.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QuestionResponseMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, questionresponse.FieldSessionID)
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionResponseMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionResponseMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the QuestionResponse entity.
// If the QuestionResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionResponseMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionResponseMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *QuestionResponseMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *QuestionResponseMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the QuestionResponse entity.
// If the QuestionResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionResponseMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *QuestionResponseMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *QuestionResponseMutation) SetResponseTimeMs(i int64) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *QuestionResponseMutation) ResponseTimeMs() (r int64, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the QuestionResponse entity.
// If the QuestionResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionResponseMutation) OldResponseTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *QuestionResponseMutation) AddResponseTimeMs(i int64) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *QuestionResponseMutation) AddedResponseTimeMs() (r int64, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *QuestionResponseMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionResponseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionResponseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuestionResponse entity.
// If the QuestionResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionResponseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionResponseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QuestionResponseMutation builder.
func (m *QuestionResponseMutation) Where(ps ...predicate.QuestionResponse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionResponse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionResponse).
func (m *QuestionResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionResponseMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.student_id != nil {
		fields = append(fields, questionresponse.FieldStudentID)
	}
	if m.concept_id != nil {
		fields = append(fields, questionresponse.FieldConceptID)
	}
	if m.session_id != nil {
		fields = append(fields, questionresponse.FieldSessionID)
	}
	if m.question_type != nil {
		fields = append(fields, questionresponse.FieldQuestionType)
	}
	if m.is_correct != nil {
		fields = append(fields, questionresponse.FieldIsCorrect)
	}
	if m.response_time_ms != nil {
		fields = append(fields, questionresponse.FieldResponseTimeMs)
	}
	if m.created_at != nil {
		fields = append(fields, questionresponse.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionresponse.FieldStudentID:
		return m.StudentID()
	case questionresponse.FieldConceptID:
		return m.ConceptID()
	case questionresponse.FieldSessionID:
		return m.SessionID()
	case questionresponse.FieldQuestionType:
		return m.QuestionType()
	case questionresponse.FieldIsCorrect:
		return m.IsCorrect()
	case questionresponse.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case questionresponse.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionresponse.FieldStudentID:
		return m.OldStudentID(ctx)
	case questionresponse.FieldConceptID:
		return m.OldConceptID(ctx)
	case questionresponse.FieldSessionID:
		return m.OldSessionID(ctx)
	case questionresponse.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case questionresponse.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case questionresponse.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case questionresponse.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionResponse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionresponse.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case questionresponse.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case questionresponse.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case questionresponse.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case questionresponse.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case questionresponse.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case questionresponse.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionResponse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionResponseMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_time_ms != nil {
		fields = append(fields, questionresponse.FieldResponseTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionresponse.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionresponse.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionResponse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionResponseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionresponse.FieldSessionID) {
		fields = append(fields, questionresponse.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionResponseMutation) ClearField(name string) error {
	switch name {
	case questionresponse.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown QuestionResponse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionResponseMutation) ResetField(name string) error {
	switch name {
	case questionresponse.FieldStudentID:
		m.ResetStudentID()
		return nil
	case questionresponse.FieldConceptID:
		m.ResetConceptID()
		return nil
	case questionresponse.FieldSessionID:
		m.ResetSessionID()
		return nil
	case questionresponse.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case questionresponse.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case questionresponse.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case questionresponse.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QuestionResponse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionResponseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionResponseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionResponseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestionResponse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionResponseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestionResponse edge %s", name)
}
