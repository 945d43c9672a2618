// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brightpath/tutor/ent/questionresponse"
)

// QuestionResponseCreate is the builder for creating a QuestionResponse entity.
type QuestionResponseCreate struct {
	config
	mutation *QuestionResponseMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *QuestionResponseCreate) SetStudentID(v string) *QuestionResponseCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *QuestionResponseCreate) SetConceptID(v string) *QuestionResponseCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuestionResponseCreate) SetSessionID(v string) *QuestionResponseCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *QuestionResponseCreate) SetNillableSessionID(v *string) *QuestionResponseCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *QuestionResponseCreate) SetQuestionType(v string) *QuestionResponseCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *QuestionResponseCreate) SetIsCorrect(v bool) *QuestionResponseCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *QuestionResponseCreate) SetResponseTimeMs(v int64) *QuestionResponseCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionResponseCreate) SetCreatedAt(v time.Time) *QuestionResponseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionResponseCreate) SetNillableCreatedAt(v *time.Time) *QuestionResponseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QuestionResponseMutation object of the builder.
func (_c *QuestionResponseCreate) Mutation() *QuestionResponseMutation {
	return _c.mutation
}

// Save creates the QuestionResponse in the database.
func (_c *QuestionResponseCreate) Save(ctx context.Context) (*QuestionResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionResponseCreate) SaveX(ctx context.Context) *QuestionResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionResponseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionresponse.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionResponseCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "QuestionResponse.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := questionresponse.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "QuestionResponse.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "QuestionResponse.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := questionresponse.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "QuestionResponse.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "QuestionResponse.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := questionresponse.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "QuestionResponse.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "QuestionResponse.is_correct"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "QuestionResponse.response_time_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuestionResponse.created_at"`)}
	}
	return nil
}

func (_c *QuestionResponseCreate) sqlSave(ctx context.Context) (*QuestionResponse, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionResponseCreate) createSpec() (*QuestionResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionresponse.Table, sqlgraph.NewFieldSpec(questionresponse.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(questionresponse.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(questionresponse.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(questionresponse.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(questionresponse.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(questionresponse.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(questionresponse.FieldResponseTimeMs, field.TypeInt64, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionresponse.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuestionResponseCreateBulk is the builder for creating many QuestionResponse entities in bulk.
type QuestionResponseCreateBulk struct {
	config
	err      error
	builders []*QuestionResponseCreate
}

// Save creates the QuestionResponse entities in the database.
func (_c *QuestionResponseCreateBulk) Save(ctx context.Context) ([]*QuestionResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionResponseMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *QuestionResponseCreateBulk) SaveX(ctx context.Context) []*QuestionResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
