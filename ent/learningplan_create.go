// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brightpath/tutor/ent/learningplan"
	"github.com/brightpath/tutor/ent/schema"
)

// LearningPlanCreate is the builder for creating a LearningPlan entity.
type LearningPlanCreate struct {
	config
	mutation *LearningPlanMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *LearningPlanCreate) SetStudentID(v string) *LearningPlanCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *LearningPlanCreate) SetGoalID(v string) *LearningPlanCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LearningPlanCreate) SetStatus(v string) *LearningPlanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetConceptSequence sets the "concept_sequence" field.
func (_c *LearningPlanCreate) SetConceptSequence(v []string) *LearningPlanCreate {
	_c.mutation.SetConceptSequence(v)
	return _c
}

// SetCurrentConceptIndex sets the "current_concept_index" field.
func (_c *LearningPlanCreate) SetCurrentConceptIndex(v int) *LearningPlanCreate {
	_c.mutation.SetCurrentConceptIndex(v)
	return _c
}

// SetNillableCurrentConceptIndex sets the "current_concept_index" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableCurrentConceptIndex(v *int) *LearningPlanCreate {
	if v != nil {
		_c.SetCurrentConceptIndex(*v)
	}
	return _c
}

// SetTotalEstimatedHours sets the "total_estimated_hours" field.
func (_c *LearningPlanCreate) SetTotalEstimatedHours(v float64) *LearningPlanCreate {
	_c.mutation.SetTotalEstimatedHours(v)
	return _c
}

// SetHoursCompleted sets the "hours_completed" field.
func (_c *LearningPlanCreate) SetHoursCompleted(v float64) *LearningPlanCreate {
	_c.mutation.SetHoursCompleted(v)
	return _c
}

// SetNillableHoursCompleted sets the "hours_completed" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableHoursCompleted(v *float64) *LearningPlanCreate {
	if v != nil {
		_c.SetHoursCompleted(*v)
	}
	return _c
}

// SetVelocityHoursPerWeek sets the "velocity_hours_per_week" field.
func (_c *LearningPlanCreate) SetVelocityHoursPerWeek(v float64) *LearningPlanCreate {
	_c.mutation.SetVelocityHoursPerWeek(v)
	return _c
}

// SetMilestones sets the "milestones" field.
func (_c *LearningPlanCreate) SetMilestones(v []schema.PlanMilestone) *LearningPlanCreate {
	_c.mutation.SetMilestones(v)
	return _c
}

// SetAdvanceLog sets the "advance_log" field.
func (_c *LearningPlanCreate) SetAdvanceLog(v []schema.PlanAdvance) *LearningPlanCreate {
	_c.mutation.SetAdvanceLog(v)
	return _c
}

// SetTargetCompletionDate sets the "target_completion_date" field.
func (_c *LearningPlanCreate) SetTargetCompletionDate(v time.Time) *LearningPlanCreate {
	_c.mutation.SetTargetCompletionDate(v)
	return _c
}

// SetNillableTargetCompletionDate sets the "target_completion_date" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableTargetCompletionDate(v *time.Time) *LearningPlanCreate {
	if v != nil {
		_c.SetTargetCompletionDate(*v)
	}
	return _c
}

// SetProjectedCompletionDate sets the "projected_completion_date" field.
func (_c *LearningPlanCreate) SetProjectedCompletionDate(v time.Time) *LearningPlanCreate {
	_c.mutation.SetProjectedCompletionDate(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningPlanCreate) SetCreatedAt(v time.Time) *LearningPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableCreatedAt(v *time.Time) *LearningPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearningPlanCreate) SetUpdatedAt(v time.Time) *LearningPlanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableUpdatedAt(v *time.Time) *LearningPlanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearningPlanCreate) SetID(v string) *LearningPlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_c *LearningPlanCreate) Mutation() *LearningPlanMutation {
	return _c.mutation
}

// Save creates the LearningPlan in the database.
func (_c *LearningPlanCreate) Save(ctx context.Context) (*LearningPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPlanCreate) SaveX(ctx context.Context) *LearningPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningPlanCreate) defaults() {
	if _, ok := _c.mutation.CurrentConceptIndex(); !ok {
		v := learningplan.DefaultCurrentConceptIndex
		_c.mutation.SetCurrentConceptIndex(v)
	}
	if _, ok := _c.mutation.HoursCompleted(); !ok {
		v := learningplan.DefaultHoursCompleted
		_c.mutation.SetHoursCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learningplan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPlanCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "LearningPlan.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := learningplan.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "LearningPlan.goal_id"`)}
	}
	if v, ok := _c.mutation.GoalID(); ok {
		if err := learningplan.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.goal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LearningPlan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := learningplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptSequence(); !ok {
		return &ValidationError{Name: "concept_sequence", err: errors.New(`ent: missing required field "LearningPlan.concept_sequence"`)}
	}
	if _, ok := _c.mutation.CurrentConceptIndex(); !ok {
		return &ValidationError{Name: "current_concept_index", err: errors.New(`ent: missing required field "LearningPlan.current_concept_index"`)}
	}
	if _, ok := _c.mutation.TotalEstimatedHours(); !ok {
		return &ValidationError{Name: "total_estimated_hours", err: errors.New(`ent: missing required field "LearningPlan.total_estimated_hours"`)}
	}
	if _, ok := _c.mutation.HoursCompleted(); !ok {
		return &ValidationError{Name: "hours_completed", err: errors.New(`ent: missing required field "LearningPlan.hours_completed"`)}
	}
	if _, ok := _c.mutation.VelocityHoursPerWeek(); !ok {
		return &ValidationError{Name: "velocity_hours_per_week", err: errors.New(`ent: missing required field "LearningPlan.velocity_hours_per_week"`)}
	}
	if _, ok := _c.mutation.Milestones(); !ok {
		return &ValidationError{Name: "milestones", err: errors.New(`ent: missing required field "LearningPlan.milestones"`)}
	}
	if _, ok := _c.mutation.ProjectedCompletionDate(); !ok {
		return &ValidationError{Name: "projected_completion_date", err: errors.New(`ent: missing required field "LearningPlan.projected_completion_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningPlan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearningPlan.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := learningplan.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.id": %w`, err)}
		}
	}
	return nil
}

func (_c *LearningPlanCreate) sqlSave(ctx context.Context) (*LearningPlan, error) {
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
			return nil, fmt.Errorf("unexpected LearningPlan.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningPlanCreate) createSpec() (*LearningPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningplan.Table, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(learningplan.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(learningplan.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(learningplan.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConceptSequence(); ok {
		_spec.SetField(learningplan.FieldConceptSequence, field.TypeJSON, value)
		_node.ConceptSequence = value
	}
	if value, ok := _c.mutation.CurrentConceptIndex(); ok {
		_spec.SetField(learningplan.FieldCurrentConceptIndex, field.TypeInt, value)
		_node.CurrentConceptIndex = value
	}
	if value, ok := _c.mutation.TotalEstimatedHours(); ok {
		_spec.SetField(learningplan.FieldTotalEstimatedHours, field.TypeFloat64, value)
		_node.TotalEstimatedHours = value
	}
	if value, ok := _c.mutation.HoursCompleted(); ok {
		_spec.SetField(learningplan.FieldHoursCompleted, field.TypeFloat64, value)
		_node.HoursCompleted = value
	}
	if value, ok := _c.mutation.VelocityHoursPerWeek(); ok {
		_spec.SetField(learningplan.FieldVelocityHoursPerWeek, field.TypeFloat64, value)
		_node.VelocityHoursPerWeek = value
	}
	if value, ok := _c.mutation.Milestones(); ok {
		_spec.SetField(learningplan.FieldMilestones, field.TypeJSON, value)
		_node.Milestones = value
	}
	if value, ok := _c.mutation.AdvanceLog(); ok {
		_spec.SetField(learningplan.FieldAdvanceLog, field.TypeJSON, value)
		_node.AdvanceLog = value
	}
	if value, ok := _c.mutation.TargetCompletionDate(); ok {
		_spec.SetField(learningplan.FieldTargetCompletionDate, field.TypeTime, value)
		_node.TargetCompletionDate = &value
	}
	if value, ok := _c.mutation.ProjectedCompletionDate(); ok {
		_spec.SetField(learningplan.FieldProjectedCompletionDate, field.TypeTime, value)
		_node.ProjectedCompletionDate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learningplan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearningPlanCreateBulk is the builder for creating many LearningPlan entities in bulk.
type LearningPlanCreateBulk struct {
	config
	err      error
	builders []*LearningPlanCreate
}

// Save creates the LearningPlan entities in the database.
func (_c *LearningPlanCreateBulk) Save(ctx context.Context) ([]*LearningPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPlanMutation)
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
func (_c *LearningPlanCreateBulk) SaveX(ctx context.Context) []*LearningPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
