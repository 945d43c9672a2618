// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brightpath/tutor/ent/learningplan"
	"github.com/brightpath/tutor/ent/schema"
)

// LearningPlan is the model entity for the LearningPlan schema.
type LearningPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// GoalID holds the value of the "goal_id" field.
	GoalID string `json:"goal_id,omitempty"`
	// active, paused, completed, or abandoned
	Status string `json:"status,omitempty"`
	// Prerequisite-respecting concept order
	ConceptSequence []string `json:"concept_sequence,omitempty"`
	// CurrentConceptIndex holds the value of the "current_concept_index" field.
	CurrentConceptIndex int `json:"current_concept_index,omitempty"`
	// TotalEstimatedHours holds the value of the "total_estimated_hours" field.
	TotalEstimatedHours float64 `json:"total_estimated_hours,omitempty"`
	// HoursCompleted holds the value of the "hours_completed" field.
	HoursCompleted float64 `json:"hours_completed,omitempty"`
	// VelocityHoursPerWeek holds the value of the "velocity_hours_per_week" field.
	VelocityHoursPerWeek float64 `json:"velocity_hours_per_week,omitempty"`
	// Weekly milestone partition of the sequence
	Milestones []schema.PlanMilestone `json:"milestones,omitempty"`
	// Recent cursor advances feeding the trailing velocity window
	AdvanceLog []schema.PlanAdvance `json:"advance_log,omitempty"`
	// TargetCompletionDate holds the value of the "target_completion_date" field.
	TargetCompletionDate *time.Time `json:"target_completion_date,omitempty"`
	// ProjectedCompletionDate holds the value of the "projected_completion_date" field.
	ProjectedCompletionDate time.Time `json:"projected_completion_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningplan.FieldConceptSequence, learningplan.FieldMilestones, learningplan.FieldAdvanceLog:
			values[i] = new([]byte)
		case learningplan.FieldTotalEstimatedHours, learningplan.FieldHoursCompleted, learningplan.FieldVelocityHoursPerWeek:
			values[i] = new(sql.NullFloat64)
		case learningplan.FieldCurrentConceptIndex:
			values[i] = new(sql.NullInt64)
		case learningplan.FieldID, learningplan.FieldStudentID, learningplan.FieldGoalID, learningplan.FieldStatus:
			values[i] = new(sql.NullString)
		case learningplan.FieldTargetCompletionDate, learningplan.FieldProjectedCompletionDate, learningplan.FieldCreatedAt, learningplan.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningPlan fields.
func (_m *LearningPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningplan.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case learningplan.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case learningplan.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = value.String
			}
		case learningplan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case learningplan.FieldConceptSequence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concept_sequence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptSequence); err != nil {
					return fmt.Errorf("unmarshal field concept_sequence: %w", err)
				}
			}
		case learningplan.FieldCurrentConceptIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_concept_index", values[i])
			} else if value.Valid {
				_m.CurrentConceptIndex = int(value.Int64)
			}
		case learningplan.FieldTotalEstimatedHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_estimated_hours", values[i])
			} else if value.Valid {
				_m.TotalEstimatedHours = value.Float64
			}
		case learningplan.FieldHoursCompleted:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field hours_completed", values[i])
			} else if value.Valid {
				_m.HoursCompleted = value.Float64
			}
		case learningplan.FieldVelocityHoursPerWeek:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field velocity_hours_per_week", values[i])
			} else if value.Valid {
				_m.VelocityHoursPerWeek = value.Float64
			}
		case learningplan.FieldMilestones:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field milestones", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Milestones); err != nil {
					return fmt.Errorf("unmarshal field milestones: %w", err)
				}
			}
		case learningplan.FieldAdvanceLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field advance_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AdvanceLog); err != nil {
					return fmt.Errorf("unmarshal field advance_log: %w", err)
				}
			}
		case learningplan.FieldTargetCompletionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field target_completion_date", values[i])
			} else if value.Valid {
				_m.TargetCompletionDate = new(time.Time)
				*_m.TargetCompletionDate = value.Time
			}
		case learningplan.FieldProjectedCompletionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field projected_completion_date", values[i])
			} else if value.Valid {
				_m.ProjectedCompletionDate = value.Time
			}
		case learningplan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learningplan.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningPlan.
// This includes values selected through modifiers, order, etc.
func (_m *LearningPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningPlan.
// Note that you need to call LearningPlan.Unwrap() before calling this method if this LearningPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningPlan) Update() *LearningPlanUpdateOne {
	return NewLearningPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningPlan) Unwrap() *LearningPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningPlan) String() string {
	var builder strings.Builder
	builder.WriteString("LearningPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("goal_id=")
	builder.WriteString(_m.GoalID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("concept_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptSequence))
	builder.WriteString(", ")
	builder.WriteString("current_concept_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentConceptIndex))
	builder.WriteString(", ")
	builder.WriteString("total_estimated_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalEstimatedHours))
	builder.WriteString(", ")
	builder.WriteString("hours_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.HoursCompleted))
	builder.WriteString(", ")
	builder.WriteString("velocity_hours_per_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.VelocityHoursPerWeek))
	builder.WriteString(", ")
	builder.WriteString("milestones=")
	builder.WriteString(fmt.Sprintf("%v", _m.Milestones))
	builder.WriteString(", ")
	builder.WriteString("advance_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdvanceLog))
	builder.WriteString(", ")
	if v := _m.TargetCompletionDate; v != nil {
		builder.WriteString("target_completion_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("projected_completion_date=")
	builder.WriteString(_m.ProjectedCompletionDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningPlans is a parsable slice of LearningPlan.
type LearningPlans []*LearningPlan
