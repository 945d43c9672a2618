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
	"github.com/brightpath/tutor/ent/masteryrecord"
	"github.com/brightpath/tutor/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBktProbability sets the "bkt_probability" field.
func (_u *MasteryRecordUpdate) SetBktProbability(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetBktProbability()
	_u.mutation.SetBktProbability(v)
	return _u
}

// SetNillableBktProbability sets the "bkt_probability" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableBktProbability(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetBktProbability(*v)
	}
	return _u
}

// AddBktProbability adds value to the "bkt_probability" field.
func (_u *MasteryRecordUpdate) AddBktProbability(v float64) *MasteryRecordUpdate {
	_u.mutation.AddBktProbability(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdate) SetLevel(v string) *MasteryRecordUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLevel(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *MasteryRecordUpdate) SetPracticeCount(v int) *MasteryRecordUpdate {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillablePracticeCount(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *MasteryRecordUpdate) AddPracticeCount(v int) *MasteryRecordUpdate {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *MasteryRecordUpdate) SetCorrectCount(v int) *MasteryRecordUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableCorrectCount(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *MasteryRecordUpdate) AddCorrectCount(v int) *MasteryRecordUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *MasteryRecordUpdate) SetLastPracticedAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MasteryRecordUpdate) SetNextReviewAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableNextReviewAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetRetentionScore sets the "retention_score" field.
func (_u *MasteryRecordUpdate) SetRetentionScore(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetRetentionScore()
	_u.mutation.SetRetentionScore(v)
	return _u
}

// SetNillableRetentionScore sets the "retention_score" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableRetentionScore(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetRetentionScore(*v)
	}
	return _u
}

// AddRetentionScore adds value to the "retention_score" field.
func (_u *MasteryRecordUpdate) AddRetentionScore(v float64) *MasteryRecordUpdate {
	_u.mutation.AddRetentionScore(v)
	return _u
}

// ClearRetentionScore clears the value of the "retention_score" field.
func (_u *MasteryRecordUpdate) ClearRetentionScore() *MasteryRecordUpdate {
	_u.mutation.ClearRetentionScore()
	return _u
}

// SetSpeedTrendMs sets the "speed_trend_ms" field.
func (_u *MasteryRecordUpdate) SetSpeedTrendMs(v int64) *MasteryRecordUpdate {
	_u.mutation.ResetSpeedTrendMs()
	_u.mutation.SetSpeedTrendMs(v)
	return _u
}

// SetNillableSpeedTrendMs sets the "speed_trend_ms" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableSpeedTrendMs(v *int64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetSpeedTrendMs(*v)
	}
	return _u
}

// AddSpeedTrendMs adds value to the "speed_trend_ms" field.
func (_u *MasteryRecordUpdate) AddSpeedTrendMs(v int64) *MasteryRecordUpdate {
	_u.mutation.AddSpeedTrendMs(v)
	return _u
}

// ClearSpeedTrendMs clears the value of the "speed_trend_ms" field.
func (_u *MasteryRecordUpdate) ClearSpeedTrendMs() *MasteryRecordUpdate {
	_u.mutation.ClearSpeedTrendMs()
	return _u
}

// SetVersion sets the "version" field.
func (_u *MasteryRecordUpdate) SetVersion(v int64) *MasteryRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableVersion(v *int64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MasteryRecordUpdate) AddVersion(v int64) *MasteryRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryRecordUpdate) SetUpdatedAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := masteryrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := masteryrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.level": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BktProbability(); ok {
		_spec.SetField(masteryrecord.FieldBktProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBktProbability(); ok {
		_spec.AddField(masteryrecord.FieldBktProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryrecord.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RetentionScore(); ok {
		_spec.SetField(masteryrecord.FieldRetentionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRetentionScore(); ok {
		_spec.AddField(masteryrecord.FieldRetentionScore, field.TypeFloat64, value)
	}
	if _u.mutation.RetentionScoreCleared() {
		_spec.ClearField(masteryrecord.FieldRetentionScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SpeedTrendMs(); ok {
		_spec.SetField(masteryrecord.FieldSpeedTrendMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSpeedTrendMs(); ok {
		_spec.AddField(masteryrecord.FieldSpeedTrendMs, field.TypeInt64, value)
	}
	if _u.mutation.SpeedTrendMsCleared() {
		_spec.ClearField(masteryrecord.FieldSpeedTrendMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetBktProbability sets the "bkt_probability" field.
func (_u *MasteryRecordUpdateOne) SetBktProbability(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetBktProbability()
	_u.mutation.SetBktProbability(v)
	return _u
}

// SetNillableBktProbability sets the "bkt_probability" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableBktProbability(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetBktProbability(*v)
	}
	return _u
}

// AddBktProbability adds value to the "bkt_probability" field.
func (_u *MasteryRecordUpdateOne) AddBktProbability(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddBktProbability(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdateOne) SetLevel(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLevel(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *MasteryRecordUpdateOne) SetPracticeCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillablePracticeCount(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *MasteryRecordUpdateOne) AddPracticeCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *MasteryRecordUpdateOne) SetCorrectCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableCorrectCount(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *MasteryRecordUpdateOne) AddCorrectCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *MasteryRecordUpdateOne) SetLastPracticedAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MasteryRecordUpdateOne) SetNextReviewAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableNextReviewAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetRetentionScore sets the "retention_score" field.
func (_u *MasteryRecordUpdateOne) SetRetentionScore(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetRetentionScore()
	_u.mutation.SetRetentionScore(v)
	return _u
}

// SetNillableRetentionScore sets the "retention_score" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableRetentionScore(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetRetentionScore(*v)
	}
	return _u
}

// AddRetentionScore adds value to the "retention_score" field.
func (_u *MasteryRecordUpdateOne) AddRetentionScore(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddRetentionScore(v)
	return _u
}

// ClearRetentionScore clears the value of the "retention_score" field.
func (_u *MasteryRecordUpdateOne) ClearRetentionScore() *MasteryRecordUpdateOne {
	_u.mutation.ClearRetentionScore()
	return _u
}

// SetSpeedTrendMs sets the "speed_trend_ms" field.
func (_u *MasteryRecordUpdateOne) SetSpeedTrendMs(v int64) *MasteryRecordUpdateOne {
	_u.mutation.ResetSpeedTrendMs()
	_u.mutation.SetSpeedTrendMs(v)
	return _u
}

// SetNillableSpeedTrendMs sets the "speed_trend_ms" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableSpeedTrendMs(v *int64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetSpeedTrendMs(*v)
	}
	return _u
}

// AddSpeedTrendMs adds value to the "speed_trend_ms" field.
func (_u *MasteryRecordUpdateOne) AddSpeedTrendMs(v int64) *MasteryRecordUpdateOne {
	_u.mutation.AddSpeedTrendMs(v)
	return _u
}

// ClearSpeedTrendMs clears the value of the "speed_trend_ms" field.
func (_u *MasteryRecordUpdateOne) ClearSpeedTrendMs() *MasteryRecordUpdateOne {
	_u.mutation.ClearSpeedTrendMs()
	return _u
}

// SetVersion sets the "version" field.
func (_u *MasteryRecordUpdateOne) SetVersion(v int64) *MasteryRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableVersion(v *int64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MasteryRecordUpdateOne) AddVersion(v int64) *MasteryRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryRecordUpdateOne) SetUpdatedAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := masteryrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := masteryrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.level": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
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
	if value, ok := _u.mutation.BktProbability(); ok {
		_spec.SetField(masteryrecord.FieldBktProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBktProbability(); ok {
		_spec.AddField(masteryrecord.FieldBktProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(masteryrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(masteryrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryrecord.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RetentionScore(); ok {
		_spec.SetField(masteryrecord.FieldRetentionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRetentionScore(); ok {
		_spec.AddField(masteryrecord.FieldRetentionScore, field.TypeFloat64, value)
	}
	if _u.mutation.RetentionScoreCleared() {
		_spec.ClearField(masteryrecord.FieldRetentionScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SpeedTrendMs(); ok {
		_spec.SetField(masteryrecord.FieldSpeedTrendMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSpeedTrendMs(); ok {
		_spec.AddField(masteryrecord.FieldSpeedTrendMs, field.TypeInt64, value)
	}
	if _u.mutation.SpeedTrendMsCleared() {
		_spec.ClearField(masteryrecord.FieldSpeedTrendMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
