// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halvard/paperchase/ent/stepcompletion"
)

// StepCompletion is the model entity for the StepCompletion schema.
type StepCompletion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Ledger partition: test or live
	Track string `json:"track,omitempty"`
	// ChapterRunID holds the value of the "chapter_run_id" field.
	ChapterRunID string `json:"chapter_run_id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID string `json:"step_id,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepCompletion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepcompletion.FieldID:
			values[i] = new(sql.NullInt64)
		case stepcompletion.FieldTrack, stepcompletion.FieldChapterRunID, stepcompletion.FieldStepID:
			values[i] = new(sql.NullString)
		case stepcompletion.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepCompletion fields.
func (_m *StepCompletion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepcompletion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stepcompletion.FieldTrack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field track", values[i])
			} else if value.Valid {
				_m.Track = value.String
			}
		case stepcompletion.FieldChapterRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_run_id", values[i])
			} else if value.Valid {
				_m.ChapterRunID = value.String
			}
		case stepcompletion.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = value.String
			}
		case stepcompletion.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepCompletion.
// This includes values selected through modifiers, order, etc.
func (_m *StepCompletion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StepCompletion.
// Note that you need to call StepCompletion.Unwrap() before calling this method if this StepCompletion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepCompletion) Update() *StepCompletionUpdateOne {
	return NewStepCompletionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepCompletion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepCompletion) Unwrap() *StepCompletion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepCompletion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepCompletion) String() string {
	var builder strings.Builder
	builder.WriteString("StepCompletion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("track=")
	builder.WriteString(_m.Track)
	builder.WriteString(", ")
	builder.WriteString("chapter_run_id=")
	builder.WriteString(_m.ChapterRunID)
	builder.WriteString(", ")
	builder.WriteString("step_id=")
	builder.WriteString(_m.StepID)
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StepCompletions is a parsable slice of StepCompletion.
type StepCompletions []*StepCompletion
