// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halvard/paperchase/ent/hintreveal"
)

// HintReveal is the model entity for the HintReveal schema.
type HintReveal struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Ledger partition: test or live
	Track string `json:"track,omitempty"`
	// ChapterRunID holds the value of the "chapter_run_id" field.
	ChapterRunID string `json:"chapter_run_id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID string `json:"step_id,omitempty"`
	// Globally unique within the step, 1-based
	Tier int `json:"tier,omitempty"`
	// RevealedAt holds the value of the "revealed_at" field.
	RevealedAt   time.Time `json:"revealed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HintReveal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hintreveal.FieldID, hintreveal.FieldTier:
			values[i] = new(sql.NullInt64)
		case hintreveal.FieldTrack, hintreveal.FieldChapterRunID, hintreveal.FieldStepID:
			values[i] = new(sql.NullString)
		case hintreveal.FieldRevealedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HintReveal fields.
func (_m *HintReveal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hintreveal.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case hintreveal.FieldTrack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field track", values[i])
			} else if value.Valid {
				_m.Track = value.String
			}
		case hintreveal.FieldChapterRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_run_id", values[i])
			} else if value.Valid {
				_m.ChapterRunID = value.String
			}
		case hintreveal.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = value.String
			}
		case hintreveal.FieldTier:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = int(value.Int64)
			}
		case hintreveal.FieldRevealedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field revealed_at", values[i])
			} else if value.Valid {
				_m.RevealedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HintReveal.
// This includes values selected through modifiers, order, etc.
func (_m *HintReveal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HintReveal.
// Note that you need to call HintReveal.Unwrap() before calling this method if this HintReveal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HintReveal) Update() *HintRevealUpdateOne {
	return NewHintRevealClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HintReveal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HintReveal) Unwrap() *HintReveal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HintReveal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HintReveal) String() string {
	var builder strings.Builder
	builder.WriteString("HintReveal(")
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
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("revealed_at=")
	builder.WriteString(_m.RevealedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HintReveals is a parsable slice of HintReveal.
type HintReveals []*HintReveal
