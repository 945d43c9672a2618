// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/brightpath/tutor/ent/learningplan"
	"github.com/brightpath/tutor/ent/predicate"
	"github.com/brightpath/tutor/ent/schema"
)

// LearningPlanUpdate is the builder for updating LearningPlan entities.
type LearningPlanUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPlanMutation
}

// Where appends a list predicates to the LearningPlanUpdate builder.
func (_u *LearningPlanUpdate) Where(ps ...predicate.LearningPlan) *LearningPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningPlanUpdate) SetStatus(v string) *LearningPlanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableStatus(v *string) *LearningPlanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConceptSequence sets the "concept_sequence" field.
func (_u *LearningPlanUpdate) SetConceptSequence(v []string) *LearningPlanUpdate {
	_u.mutation.SetConceptSequence(v)
	return _u
}

// AppendConceptSequence appends value to the "concept_sequence" field.
func (_u *LearningPlanUpdate) AppendConceptSequence(v []string) *LearningPlanUpdate {
	_u.mutation.AppendConceptSequence(v)
	return _u
}

// SetCurrentConceptIndex sets the "current_concept_index" field.
func (_u *LearningPlanUpdate) SetCurrentConceptIndex(v int) *LearningPlanUpdate {
	_u.mutation.ResetCurrentConceptIndex()
	_u.mutation.SetCurrentConceptIndex(v)
	return _u
}

// SetNillableCurrentConceptIndex sets the "current_concept_index" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableCurrentConceptIndex(v *int) *LearningPlanUpdate {
	if v != nil {
		_u.SetCurrentConceptIndex(*v)
	}
	return _u
}

// AddCurrentConceptIndex adds value to the "current_concept_index" field.
func (_u *LearningPlanUpdate) AddCurrentConceptIndex(v int) *LearningPlanUpdate {
	_u.mutation.AddCurrentConceptIndex(v)
	return _u
}

// SetTotalEstimatedHours sets the "total_estimated_hours" field.
func (_u *LearningPlanUpdate) SetTotalEstimatedHours(v float64) *LearningPlanUpdate {
	_u.mutation.ResetTotalEstimatedHours()
	_u.mutation.SetTotalEstimatedHours(v)
	return _u
}

// SetNillableTotalEstimatedHours sets the "total_estimated_hours" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableTotalEstimatedHours(v *float64) *LearningPlanUpdate {
	if v != nil {
		_u.SetTotalEstimatedHours(*v)
	}
	return _u
}

// AddTotalEstimatedHours adds value to the "total_estimated_hours" field.
func (_u *LearningPlanUpdate) AddTotalEstimatedHours(v float64) *LearningPlanUpdate {
	_u.mutation.AddTotalEstimatedHours(v)
	return _u
}

// SetHoursCompleted sets the "hours_completed" field.
func (_u *LearningPlanUpdate) SetHoursCompleted(v float64) *LearningPlanUpdate {
	_u.mutation.ResetHoursCompleted()
	_u.mutation.SetHoursCompleted(v)
	return _u
}

// SetNillableHoursCompleted sets the "hours_completed" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableHoursCompleted(v *float64) *LearningPlanUpdate {
	if v != nil {
		_u.SetHoursCompleted(*v)
	}
	return _u
}

// AddHoursCompleted adds value to the "hours_completed" field.
func (_u *LearningPlanUpdate) AddHoursCompleted(v float64) *LearningPlanUpdate {
	_u.mutation.AddHoursCompleted(v)
	return _u
}

// SetVelocityHoursPerWeek sets the "velocity_hours_per_week" field.
func (_u *LearningPlanUpdate) SetVelocityHoursPerWeek(v float64) *LearningPlanUpdate {
	_u.mutation.ResetVelocityHoursPerWeek()
	_u.mutation.SetVelocityHoursPerWeek(v)
	return _u
}

// SetNillableVelocityHoursPerWeek sets the "velocity_hours_per_week" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableVelocityHoursPerWeek(v *float64) *LearningPlanUpdate {
	if v != nil {
		_u.SetVelocityHoursPerWeek(*v)
	}
	return _u
}

// AddVelocityHoursPerWeek adds value to the "velocity_hours_per_week" field.
func (_u *LearningPlanUpdate) AddVelocityHoursPerWeek(v float64) *LearningPlanUpdate {
	_u.mutation.AddVelocityHoursPerWeek(v)
	return _u
}

// SetMilestones sets the "milestones" field.
func (_u *LearningPlanUpdate) SetMilestones(v []schema.PlanMilestone) *LearningPlanUpdate {
	_u.mutation.SetMilestones(v)
	return _u
}

// AppendMilestones appends value to the "milestones" field.
func (_u *LearningPlanUpdate) AppendMilestones(v []schema.PlanMilestone) *LearningPlanUpdate {
	_u.mutation.AppendMilestones(v)
	return _u
}

// SetAdvanceLog sets the "advance_log" field.
func (_u *LearningPlanUpdate) SetAdvanceLog(v []schema.PlanAdvance) *LearningPlanUpdate {
	_u.mutation.SetAdvanceLog(v)
	return _u
}

// AppendAdvanceLog appends value to the "advance_log" field.
func (_u *LearningPlanUpdate) AppendAdvanceLog(v []schema.PlanAdvance) *LearningPlanUpdate {
	_u.mutation.AppendAdvanceLog(v)
	return _u
}

// ClearAdvanceLog clears the value of the "advance_log" field.
func (_u *LearningPlanUpdate) ClearAdvanceLog() *LearningPlanUpdate {
	_u.mutation.ClearAdvanceLog()
	return _u
}

// SetTargetCompletionDate sets the "target_completion_date" field.
func (_u *LearningPlanUpdate) SetTargetCompletionDate(v time.Time) *LearningPlanUpdate {
	_u.mutation.SetTargetCompletionDate(v)
	return _u
}

// SetNillableTargetCompletionDate sets the "target_completion_date" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableTargetCompletionDate(v *time.Time) *LearningPlanUpdate {
	if v != nil {
		_u.SetTargetCompletionDate(*v)
	}
	return _u
}

// ClearTargetCompletionDate clears the value of the "target_completion_date" field.
func (_u *LearningPlanUpdate) ClearTargetCompletionDate() *LearningPlanUpdate {
	_u.mutation.ClearTargetCompletionDate()
	return _u
}

// SetProjectedCompletionDate sets the "projected_completion_date" field.
func (_u *LearningPlanUpdate) SetProjectedCompletionDate(v time.Time) *LearningPlanUpdate {
	_u.mutation.SetProjectedCompletionDate(v)
	return _u
}

// SetNillableProjectedCompletionDate sets the "projected_completion_date" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableProjectedCompletionDate(v *time.Time) *LearningPlanUpdate {
	if v != nil {
		_u.SetProjectedCompletionDate(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningPlanUpdate) SetUpdatedAt(v time.Time) *LearningPlanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_u *LearningPlanUpdate) Mutation() *LearningPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPlanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningPlanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningplan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPlanUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := learningplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningplan.Table, learningplan.Columns, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningplan.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptSequence(); ok {
		_spec.SetField(learningplan.FieldConceptSequence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptSequence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldConceptSequence, value)
		})
	}
	if value, ok := _u.mutation.CurrentConceptIndex(); ok {
		_spec.SetField(learningplan.FieldCurrentConceptIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentConceptIndex(); ok {
		_spec.AddField(learningplan.FieldCurrentConceptIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalEstimatedHours(); ok {
		_spec.SetField(learningplan.FieldTotalEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalEstimatedHours(); ok {
		_spec.AddField(learningplan.FieldTotalEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HoursCompleted(); ok {
		_spec.SetField(learningplan.FieldHoursCompleted, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHoursCompleted(); ok {
		_spec.AddField(learningplan.FieldHoursCompleted, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VelocityHoursPerWeek(); ok {
		_spec.SetField(learningplan.FieldVelocityHoursPerWeek, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVelocityHoursPerWeek(); ok {
		_spec.AddField(learningplan.FieldVelocityHoursPerWeek, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Milestones(); ok {
		_spec.SetField(learningplan.FieldMilestones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMilestones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldMilestones, value)
		})
	}
	if value, ok := _u.mutation.AdvanceLog(); ok {
		_spec.SetField(learningplan.FieldAdvanceLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAdvanceLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldAdvanceLog, value)
		})
	}
	if _u.mutation.AdvanceLogCleared() {
		_spec.ClearField(learningplan.FieldAdvanceLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetCompletionDate(); ok {
		_spec.SetField(learningplan.FieldTargetCompletionDate, field.TypeTime, value)
	}
	if _u.mutation.TargetCompletionDateCleared() {
		_spec.ClearField(learningplan.FieldTargetCompletionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ProjectedCompletionDate(); ok {
		_spec.SetField(learningplan.FieldProjectedCompletionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningplan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPlanUpdateOne is the builder for updating a single LearningPlan entity.
type LearningPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPlanMutation
}

// SetStatus sets the "status" field.
func (_u *LearningPlanUpdateOne) SetStatus(v string) *LearningPlanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableStatus(v *string) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConceptSequence sets the "concept_sequence" field.
func (_u *LearningPlanUpdateOne) SetConceptSequence(v []string) *LearningPlanUpdateOne {
	_u.mutation.SetConceptSequence(v)
	return _u
}

// AppendConceptSequence appends value to the "concept_sequence" field.
func (_u *LearningPlanUpdateOne) AppendConceptSequence(v []string) *LearningPlanUpdateOne {
	_u.mutation.AppendConceptSequence(v)
	return _u
}

// SetCurrentConceptIndex sets the "current_concept_index" field.
func (_u *LearningPlanUpdateOne) SetCurrentConceptIndex(v int) *LearningPlanUpdateOne {
	_u.mutation.ResetCurrentConceptIndex()
	_u.mutation.SetCurrentConceptIndex(v)
	return _u
}

// SetNillableCurrentConceptIndex sets the "current_concept_index" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableCurrentConceptIndex(v *int) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetCurrentConceptIndex(*v)
	}
	return _u
}

// AddCurrentConceptIndex adds value to the "current_concept_index" field.
func (_u *LearningPlanUpdateOne) AddCurrentConceptIndex(v int) *LearningPlanUpdateOne {
	_u.mutation.AddCurrentConceptIndex(v)
	return _u
}

// SetTotalEstimatedHours sets the "total_estimated_hours" field.
func (_u *LearningPlanUpdateOne) SetTotalEstimatedHours(v float64) *LearningPlanUpdateOne {
	_u.mutation.ResetTotalEstimatedHours()
	_u.mutation.SetTotalEstimatedHours(v)
	return _u
}

// SetNillableTotalEstimatedHours sets the "total_estimated_hours" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableTotalEstimatedHours(v *float64) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetTotalEstimatedHours(*v)
	}
	return _u
}

// AddTotalEstimatedHours adds value to the "total_estimated_hours" field.
func (_u *LearningPlanUpdateOne) AddTotalEstimatedHours(v float64) *LearningPlanUpdateOne {
	_u.mutation.AddTotalEstimatedHours(v)
	return _u
}

// SetHoursCompleted sets the "hours_completed" field.
func (_u *LearningPlanUpdateOne) SetHoursCompleted(v float64) *LearningPlanUpdateOne {
	_u.mutation.ResetHoursCompleted()
	_u.mutation.SetHoursCompleted(v)
	return _u
}

// SetNillableHoursCompleted sets the "hours_completed" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableHoursCompleted(v *float64) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetHoursCompleted(*v)
	}
	return _u
}

// AddHoursCompleted adds value to the "hours_completed" field.
func (_u *LearningPlanUpdateOne) AddHoursCompleted(v float64) *LearningPlanUpdateOne {
	_u.mutation.AddHoursCompleted(v)
	return _u
}

// SetVelocityHoursPerWeek sets the "velocity_hours_per_week" field.
func (_u *LearningPlanUpdateOne) SetVelocityHoursPerWeek(v float64) *LearningPlanUpdateOne {
	_u.mutation.ResetVelocityHoursPerWeek()
	_u.mutation.SetVelocityHoursPerWeek(v)
	return _u
}

// SetNillableVelocityHoursPerWeek sets the "velocity_hours_per_week" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableVelocityHoursPerWeek(v *float64) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetVelocityHoursPerWeek(*v)
	}
	return _u
}

// AddVelocityHoursPerWeek adds value to the "velocity_hours_per_week" field.
func (_u *LearningPlanUpdateOne) AddVelocityHoursPerWeek(v float64) *LearningPlanUpdateOne {
	_u.mutation.AddVelocityHoursPerWeek(v)
	return _u
}

// SetMilestones sets the "milestones" field.
func (_u *LearningPlanUpdateOne) SetMilestones(v []schema.PlanMilestone) *LearningPlanUpdateOne {
	_u.mutation.SetMilestones(v)
	return _u
}

// AppendMilestones appends value to the "milestones" field.
func (_u *LearningPlanUpdateOne) AppendMilestones(v []schema.PlanMilestone) *LearningPlanUpdateOne {
	_u.mutation.AppendMilestones(v)
	return _u
}

// SetAdvanceLog sets the "advance_log" field.
func (_u *LearningPlanUpdateOne) SetAdvanceLog(v []schema.PlanAdvance) *LearningPlanUpdateOne {
	_u.mutation.SetAdvanceLog(v)
	return _u
}

// AppendAdvanceLog appends value to the "advance_log" field.
func (_u *LearningPlanUpdateOne) AppendAdvanceLog(v []schema.PlanAdvance) *LearningPlanUpdateOne {
	_u.mutation.AppendAdvanceLog(v)
	return _u
}

// ClearAdvanceLog clears the value of the "advance_log" field.
func (_u *LearningPlanUpdateOne) ClearAdvanceLog() *LearningPlanUpdateOne {
	_u.mutation.ClearAdvanceLog()
	return _u
}

// SetTargetCompletionDate sets the "target_completion_date" field.
func (_u *LearningPlanUpdateOne) SetTargetCompletionDate(v time.Time) *LearningPlanUpdateOne {
	_u.mutation.SetTargetCompletionDate(v)
	return _u
}

// SetNillableTargetCompletionDate sets the "target_completion_date" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableTargetCompletionDate(v *time.Time) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetTargetCompletionDate(*v)
	}
	return _u
}

// ClearTargetCompletionDate clears the value of the "target_completion_date" field.
func (_u *LearningPlanUpdateOne) ClearTargetCompletionDate() *LearningPlanUpdateOne {
	_u.mutation.ClearTargetCompletionDate()
	return _u
}

// SetProjectedCompletionDate sets the "projected_completion_date" field.
func (_u *LearningPlanUpdateOne) SetProjectedCompletionDate(v time.Time) *LearningPlanUpdateOne {
	_u.mutation.SetProjectedCompletionDate(v)
	return _u
}

// SetNillableProjectedCompletionDate sets the "projected_completion_date" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableProjectedCompletionDate(v *time.Time) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetProjectedCompletionDate(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningPlanUpdateOne) SetUpdatedAt(v time.Time) *LearningPlanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_u *LearningPlanUpdateOne) Mutation() *LearningPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPlanUpdate builder.
func (_u *LearningPlanUpdateOne) Where(ps ...predicate.LearningPlan) *LearningPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPlanUpdateOne) Select(field string, fields ...string) *LearningPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPlan entity.
func (_u *LearningPlanUpdateOne) Save(ctx context.Context) (*LearningPlan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPlanUpdateOne) SaveX(ctx context.Context) *LearningPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningPlanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningplan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPlanUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := learningplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPlanUpdateOne) sqlSave(ctx context.Context) (_node *LearningPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningplan.Table, learningplan.Columns, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningplan.FieldID)
		for _, f := range fields {
			if !learningplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningplan.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningplan.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptSequence(); ok {
		_spec.SetField(learningplan.FieldConceptSequence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptSequence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldConceptSequence, value)
		})
	}
	if value, ok := _u.mutation.CurrentConceptIndex(); ok {
		_spec.SetField(learningplan.FieldCurrentConceptIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentConceptIndex(); ok {
		_spec.AddField(learningplan.FieldCurrentConceptIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalEstimatedHours(); ok {
		_spec.SetField(learningplan.FieldTotalEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalEstimatedHours(); ok {
		_spec.AddField(learningplan.FieldTotalEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HoursCompleted(); ok {
		_spec.SetField(learningplan.FieldHoursCompleted, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHoursCompleted(); ok {
		_spec.AddField(learningplan.FieldHoursCompleted, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VelocityHoursPerWeek(); ok {
		_spec.SetField(learningplan.FieldVelocityHoursPerWeek, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVelocityHoursPerWeek(); ok {
		_spec.AddField(learningplan.FieldVelocityHoursPerWeek, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Milestones(); ok {
		_spec.SetField(learningplan.FieldMilestones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMilestones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldMilestones, value)
		})
	}
	if value, ok := _u.mutation.AdvanceLog(); ok {
		_spec.SetField(learningplan.FieldAdvanceLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAdvanceLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldAdvanceLog, value)
		})
	}
	if _u.mutation.AdvanceLogCleared() {
		_spec.ClearField(learningplan.FieldAdvanceLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetCompletionDate(); ok {
		_spec.SetField(learningplan.FieldTargetCompletionDate, field.TypeTime, value)
	}
	if _u.mutation.TargetCompletionDateCleared() {
		_spec.ClearField(learningplan.FieldTargetCompletionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ProjectedCompletionDate(); ok {
		_spec.SetField(learningplan.FieldProjectedCompletionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningplan.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearningPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
