// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brightpath/tutor/ent/learningsession"
	"github.com/brightpath/tutor/ent/predicate"
)

// LearningSessionUpdate is the builder for updating LearningSession entities.
type LearningSessionUpdate struct {
	config
	hooks    []Hook
	mutation *LearningSessionMutation
}

// Where appends a list predicates to the LearningSessionUpdate builder.
func (_u *LearningSessionUpdate) Where(ps ...predicate.LearningSession) *LearningSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *LearningSessionUpdate) SetState(v string) *LearningSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableState(v *string) *LearningSessionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCurrentConceptID sets the "current_concept_id" field.
func (_u *LearningSessionUpdate) SetCurrentConceptID(v string) *LearningSessionUpdate {
	_u.mutation.SetCurrentConceptID(v)
	return _u
}

// SetNillableCurrentConceptID sets the "current_concept_id" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableCurrentConceptID(v *string) *LearningSessionUpdate {
	if v != nil {
		_u.SetCurrentConceptID(*v)
	}
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *LearningSessionUpdate) SetQuestionsAnswered(v int) *LearningSessionUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableQuestionsAnswered(v *int) *LearningSessionUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *LearningSessionUpdate) AddQuestionsAnswered(v int) *LearningSessionUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *LearningSessionUpdate) SetCorrectAnswers(v int) *LearningSessionUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableCorrectAnswers(v *int) *LearningSessionUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *LearningSessionUpdate) AddCorrectAnswers(v int) *LearningSessionUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *LearningSessionUpdate) SetHintsUsed(v int) *LearningSessionUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableHintsUsed(v *int) *LearningSessionUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *LearningSessionUpdate) AddHintsUsed(v int) *LearningSessionUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetEmotionalStateStart sets the "emotional_state_start" field.
func (_u *LearningSessionUpdate) SetEmotionalStateStart(v string) *LearningSessionUpdate {
	_u.mutation.SetEmotionalStateStart(v)
	return _u
}

// SetNillableEmotionalStateStart sets the "emotional_state_start" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableEmotionalStateStart(v *string) *LearningSessionUpdate {
	if v != nil {
		_u.SetEmotionalStateStart(*v)
	}
	return _u
}

// ClearEmotionalStateStart clears the value of the "emotional_state_start" field.
func (_u *LearningSessionUpdate) ClearEmotionalStateStart() *LearningSessionUpdate {
	_u.mutation.ClearEmotionalStateStart()
	return _u
}

// SetEmotionalStateEnd sets the "emotional_state_end" field.
func (_u *LearningSessionUpdate) SetEmotionalStateEnd(v string) *LearningSessionUpdate {
	_u.mutation.SetEmotionalStateEnd(v)
	return _u
}

// SetNillableEmotionalStateEnd sets the "emotional_state_end" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableEmotionalStateEnd(v *string) *LearningSessionUpdate {
	if v != nil {
		_u.SetEmotionalStateEnd(*v)
	}
	return _u
}

// ClearEmotionalStateEnd clears the value of the "emotional_state_end" field.
func (_u *LearningSessionUpdate) ClearEmotionalStateEnd() *LearningSessionUpdate {
	_u.mutation.ClearEmotionalStateEnd()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *LearningSessionUpdate) SetEndedAt(v time.Time) *LearningSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableEndedAt(v *time.Time) *LearningSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *LearningSessionUpdate) ClearEndedAt() *LearningSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningSessionUpdate) SetUpdatedAt(v time.Time) *LearningSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_u *LearningSessionUpdate) Mutation() *LearningSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningSessionUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := learningsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "LearningSession.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentConceptID(); ok {
		if err := learningsession.CurrentConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "current_concept_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.current_concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningsession.Table, learningsession.Columns, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(learningsession.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentConceptID(); ok {
		_spec.SetField(learningsession.FieldCurrentConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(learningsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(learningsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(learningsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(learningsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(learningsession.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(learningsession.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmotionalStateStart(); ok {
		_spec.SetField(learningsession.FieldEmotionalStateStart, field.TypeString, value)
	}
	if _u.mutation.EmotionalStateStartCleared() {
		_spec.ClearField(learningsession.FieldEmotionalStateStart, field.TypeString)
	}
	if value, ok := _u.mutation.EmotionalStateEnd(); ok {
		_spec.SetField(learningsession.FieldEmotionalStateEnd, field.TypeString, value)
	}
	if _u.mutation.EmotionalStateEndCleared() {
		_spec.ClearField(learningsession.FieldEmotionalStateEnd, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(learningsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(learningsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningSessionUpdateOne is the builder for updating a single LearningSession entity.
type LearningSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningSessionMutation
}

// SetState sets the "state" field.
func (_u *LearningSessionUpdateOne) SetState(v string) *LearningSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableState(v *string) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCurrentConceptID sets the "current_concept_id" field.
func (_u *LearningSessionUpdateOne) SetCurrentConceptID(v string) *LearningSessionUpdateOne {
	_u.mutation.SetCurrentConceptID(v)
	return _u
}

// SetNillableCurrentConceptID sets the "current_concept_id" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableCurrentConceptID(v *string) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetCurrentConceptID(*v)
	}
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *LearningSessionUpdateOne) SetQuestionsAnswered(v int) *LearningSessionUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableQuestionsAnswered(v *int) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *LearningSessionUpdateOne) AddQuestionsAnswered(v int) *LearningSessionUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *LearningSessionUpdateOne) SetCorrectAnswers(v int) *LearningSessionUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableCorrectAnswers(v *int) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *LearningSessionUpdateOne) AddCorrectAnswers(v int) *LearningSessionUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *LearningSessionUpdateOne) SetHintsUsed(v int) *LearningSessionUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableHintsUsed(v *int) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *LearningSessionUpdateOne) AddHintsUsed(v int) *LearningSessionUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetEmotionalStateStart sets the "emotional_state_start" field.
func (_u *LearningSessionUpdateOne) SetEmotionalStateStart(v string) *LearningSessionUpdateOne {
	_u.mutation.SetEmotionalStateStart(v)
	return _u
}

// SetNillableEmotionalStateStart sets the "emotional_state_start" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableEmotionalStateStart(v *string) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetEmotionalStateStart(*v)
	}
	return _u
}

// ClearEmotionalStateStart clears the value of the "emotional_state_start" field.
func (_u *LearningSessionUpdateOne) ClearEmotionalStateStart() *LearningSessionUpdateOne {
	_u.mutation.ClearEmotionalStateStart()
	return _u
}

// SetEmotionalStateEnd sets the "emotional_state_end" field.
func (_u *LearningSessionUpdateOne) SetEmotionalStateEnd(v string) *LearningSessionUpdateOne {
	_u.mutation.SetEmotionalStateEnd(v)
	return _u
}

// SetNillableEmotionalStateEnd sets the "emotional_state_end" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableEmotionalStateEnd(v *string) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetEmotionalStateEnd(*v)
	}
	return _u
}

// ClearEmotionalStateEnd clears the value of the "emotional_state_end" field.
func (_u *LearningSessionUpdateOne) ClearEmotionalStateEnd() *LearningSessionUpdateOne {
	_u.mutation.ClearEmotionalStateEnd()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *LearningSessionUpdateOne) SetEndedAt(v time.Time) *LearningSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableEndedAt(v *time.Time) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *LearningSessionUpdateOne) ClearEndedAt() *LearningSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningSessionUpdateOne) SetUpdatedAt(v time.Time) *LearningSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_u *LearningSessionUpdateOne) Mutation() *LearningSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningSessionUpdate builder.
func (_u *LearningSessionUpdateOne) Where(ps ...predicate.LearningSession) *LearningSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningSessionUpdateOne) Select(field string, fields ...string) *LearningSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningSession entity.
func (_u *LearningSessionUpdateOne) Save(ctx context.Context) (*LearningSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningSessionUpdateOne) SaveX(ctx context.Context) *LearningSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningSessionUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := learningsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "LearningSession.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentConceptID(); ok {
		if err := learningsession.CurrentConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "current_concept_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.current_concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningSessionUpdateOne) sqlSave(ctx context.Context) (_node *LearningSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningsession.Table, learningsession.Columns, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningsession.FieldID)
		for _, f := range fields {
			if !learningsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(learningsession.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentConceptID(); ok {
		_spec.SetField(learningsession.FieldCurrentConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(learningsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(learningsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(learningsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(learningsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(learningsession.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(learningsession.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmotionalStateStart(); ok {
		_spec.SetField(learningsession.FieldEmotionalStateStart, field.TypeString, value)
	}
	if _u.mutation.EmotionalStateStartCleared() {
		_spec.ClearField(learningsession.FieldEmotionalStateStart, field.TypeString)
	}
	if value, ok := _u.mutation.EmotionalStateEnd(); ok {
		_spec.SetField(learningsession.FieldEmotionalStateEnd, field.TypeString, value)
	}
	if _u.mutation.EmotionalStateEndCleared() {
		_spec.ClearField(learningsession.FieldEmotionalStateEnd, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(learningsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(learningsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningsession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearningSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
