// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brightpath/tutor/ent/learningsession"
)

// LearningSessionCreate is the builder for creating a LearningSession entity.
type LearningSessionCreate struct {
	config
	mutation *LearningSessionMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *LearningSessionCreate) SetStudentID(v string) *LearningSessionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *LearningSessionCreate) SetState(v string) *LearningSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetCurrentConceptID sets the "current_concept_id" field.
func (_c *LearningSessionCreate) SetCurrentConceptID(v string) *LearningSessionCreate {
	_c.mutation.SetCurrentConceptID(v)
	return _c
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_c *LearningSessionCreate) SetQuestionsAnswered(v int) *LearningSessionCreate {
	_c.mutation.SetQuestionsAnswered(v)
	return _c
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableQuestionsAnswered(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetQuestionsAnswered(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *LearningSessionCreate) SetCorrectAnswers(v int) *LearningSessionCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableCorrectAnswers(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *LearningSessionCreate) SetHintsUsed(v int) *LearningSessionCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableHintsUsed(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetEmotionalStateStart sets the "emotional_state_start" field.
func (_c *LearningSessionCreate) SetEmotionalStateStart(v string) *LearningSessionCreate {
	_c.mutation.SetEmotionalStateStart(v)
	return _c
}

// SetNillableEmotionalStateStart sets the "emotional_state_start" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableEmotionalStateStart(v *string) *LearningSessionCreate {
	if v != nil {
		_c.SetEmotionalStateStart(*v)
	}
	return _c
}

// SetEmotionalStateEnd sets the "emotional_state_end" field.
func (_c *LearningSessionCreate) SetEmotionalStateEnd(v string) *LearningSessionCreate {
	_c.mutation.SetEmotionalStateEnd(v)
	return _c
}

// SetNillableEmotionalStateEnd sets the "emotional_state_end" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableEmotionalStateEnd(v *string) *LearningSessionCreate {
	if v != nil {
		_c.SetEmotionalStateEnd(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *LearningSessionCreate) SetStartedAt(v time.Time) *LearningSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableStartedAt(v *time.Time) *LearningSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *LearningSessionCreate) SetEndedAt(v time.Time) *LearningSessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableEndedAt(v *time.Time) *LearningSessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearningSessionCreate) SetUpdatedAt(v time.Time) *LearningSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableUpdatedAt(v *time.Time) *LearningSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearningSessionCreate) SetID(v string) *LearningSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_c *LearningSessionCreate) Mutation() *LearningSessionMutation {
	return _c.mutation
}

// Save creates the LearningSession in the database.
func (_c *LearningSessionCreate) Save(ctx context.Context) (*LearningSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningSessionCreate) SaveX(ctx context.Context) *LearningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningSessionCreate) defaults() {
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		v := learningsession.DefaultQuestionsAnswered
		_c.mutation.SetQuestionsAnswered(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := learningsession.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := learningsession.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := learningsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learningsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningSessionCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "LearningSession.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := learningsession.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "LearningSession.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := learningsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "LearningSession.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentConceptID(); !ok {
		return &ValidationError{Name: "current_concept_id", err: errors.New(`ent: missing required field "LearningSession.current_concept_id"`)}
	}
	if v, ok := _c.mutation.CurrentConceptID(); ok {
		if err := learningsession.CurrentConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "current_concept_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.current_concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		return &ValidationError{Name: "questions_answered", err: errors.New(`ent: missing required field "LearningSession.questions_answered"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "LearningSession.correct_answers"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "LearningSession.hints_used"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "LearningSession.started_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearningSession.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := learningsession.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.id": %w`, err)}
		}
	}
	return nil
}

func (_c *LearningSessionCreate) sqlSave(ctx context.Context) (*LearningSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LearningSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningSessionCreate) createSpec() (*LearningSession, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningsession.Table, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(learningsession.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(learningsession.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CurrentConceptID(); ok {
		_spec.SetField(learningsession.FieldCurrentConceptID, field.TypeString, value)
		_node.CurrentConceptID = value
	}
	if value, ok := _c.mutation.QuestionsAnswered(); ok {
		_spec.SetField(learningsession.FieldQuestionsAnswered, field.TypeInt, value)
		_node.QuestionsAnswered = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(learningsession.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(learningsession.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.EmotionalStateStart(); ok {
		_spec.SetField(learningsession.FieldEmotionalStateStart, field.TypeString, value)
		_node.EmotionalStateStart = value
	}
	if value, ok := _c.mutation.EmotionalStateEnd(); ok {
		_spec.SetField(learningsession.FieldEmotionalStateEnd, field.TypeString, value)
		_node.EmotionalStateEnd = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(learningsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(learningsession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learningsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearningSessionCreateBulk is the builder for creating many LearningSession entities in bulk.
type LearningSessionCreateBulk struct {
	config
	err      error
	builders []*LearningSessionCreate
}

// Save creates the LearningSession entities in the database.
func (_c *LearningSessionCreateBulk) Save(ctx context.Context) ([]*LearningSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearningSessionCreateBulk) SaveX(ctx context.Context) []*LearningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
