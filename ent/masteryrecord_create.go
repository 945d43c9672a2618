// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brightpath/tutor/ent/masteryrecord"
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *MasteryRecordCreate) SetStudentID(v string) *MasteryRecordCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *MasteryRecordCreate) SetConceptID(v string) *MasteryRecordCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetBktProbability sets the "bkt_probability" field.
func (_c *MasteryRecordCreate) SetBktProbability(v float64) *MasteryRecordCreate {
	_c.mutation.SetBktProbability(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *MasteryRecordCreate) SetLevel(v string) *MasteryRecordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetPracticeCount sets the "practice_count" field.
func (_c *MasteryRecordCreate) SetPracticeCount(v int) *MasteryRecordCreate {
	_c.mutation.SetPracticeCount(v)
	return _c
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillablePracticeCount(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetPracticeCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *MasteryRecordCreate) SetCorrectCount(v int) *MasteryRecordCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableCorrectCount(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *MasteryRecordCreate) SetLastPracticedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *MasteryRecordCreate) SetNextReviewAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetRetentionScore sets the "retention_score" field.
func (_c *MasteryRecordCreate) SetRetentionScore(v float64) *MasteryRecordCreate {
	_c.mutation.SetRetentionScore(v)
	return _c
}

// SetNillableRetentionScore sets the "retention_score" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableRetentionScore(v *float64) *MasteryRecordCreate {
	if v != nil {
		_c.SetRetentionScore(*v)
	}
	return _c
}

// SetSpeedTrendMs sets the "speed_trend_ms" field.
func (_c *MasteryRecordCreate) SetSpeedTrendMs(v int64) *MasteryRecordCreate {
	_c.mutation.SetSpeedTrendMs(v)
	return _c
}

// SetNillableSpeedTrendMs sets the "speed_trend_ms" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableSpeedTrendMs(v *int64) *MasteryRecordCreate {
	if v != nil {
		_c.SetSpeedTrendMs(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *MasteryRecordCreate) SetVersion(v int64) *MasteryRecordCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableVersion(v *int64) *MasteryRecordCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MasteryRecordCreate) SetCreatedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableCreatedAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MasteryRecordCreate) SetUpdatedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableUpdatedAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.PracticeCount(); !ok {
		v := masteryrecord.DefaultPracticeCount
		_c.mutation.SetPracticeCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := masteryrecord.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := masteryrecord.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := masteryrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := masteryrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "MasteryRecord.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := masteryrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "MasteryRecord.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := masteryrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BktProbability(); !ok {
		return &ValidationError{Name: "bkt_probability", err: errors.New(`ent: missing required field "MasteryRecord.bkt_probability"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "MasteryRecord.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := masteryrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		return &ValidationError{Name: "practice_count", err: errors.New(`ent: missing required field "MasteryRecord.practice_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "MasteryRecord.correct_count"`)}
	}
	if _, ok := _c.mutation.LastPracticedAt(); !ok {
		return &ValidationError{Name: "last_practiced_at", err: errors.New(`ent: missing required field "MasteryRecord.last_practiced_at"`)}
	}
	if _, ok := _c.mutation.NextReviewAt(); !ok {
		return &ValidationError{Name: "next_review_at", err: errors.New(`ent: missing required field "MasteryRecord.next_review_at"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "MasteryRecord.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MasteryRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MasteryRecord.updated_at"`)}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
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

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(masteryrecord.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(masteryrecord.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.BktProbability(); ok {
		_spec.SetField(masteryrecord.FieldBktProbability, field.TypeFloat64, value)
		_node.BktProbability = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.PracticeCount(); ok {
		_spec.SetField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
		_node.PracticeCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryrecord.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = value
	}
	if value, ok := _c.mutation.RetentionScore(); ok {
		_spec.SetField(masteryrecord.FieldRetentionScore, field.TypeFloat64, value)
		_node.RetentionScore = &value
	}
	if value, ok := _c.mutation.SpeedTrendMs(); ok {
		_spec.SetField(masteryrecord.FieldSpeedTrendMs, field.TypeInt64, value)
		_node.SpeedTrendMs = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(masteryrecord.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(masteryrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
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
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
