// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halvard/paperchase/ent/chapterrun"
)

// ChapterRun is the model entity for the ChapterRun schema.
type ChapterRun struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned at activation
	ID string `json:"id,omitempty"`
	// Ledger partition: test or live
	Track string `json:"track,omitempty"`
	// Catalog chapter this run plays
	ChapterID string `json:"chapter_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// Null while the run is active
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChapterRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chapterrun.FieldID, chapterrun.FieldTrack, chapterrun.FieldChapterID:
			values[i] = new(sql.NullString)
		case chapterrun.FieldStartedAt, chapterrun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChapterRun fields.
func (_m *ChapterRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chapterrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chapterrun.FieldTrack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field track", values[i])
			} else if value.Valid {
				_m.Track = value.String
			}
		case chapterrun.FieldChapterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_id", values[i])
			} else if value.Valid {
				_m.ChapterID = value.String
			}
		case chapterrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case chapterrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChapterRun.
// This includes values selected through modifiers, order, etc.
func (_m *ChapterRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChapterRun.
// Note that you need to call ChapterRun.Unwrap() before calling this method if this ChapterRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChapterRun) Update() *ChapterRunUpdateOne {
	return NewChapterRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChapterRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChapterRun) Unwrap() *ChapterRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChapterRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChapterRun) String() string {
	var builder strings.Builder
	builder.WriteString("ChapterRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("track=")
	builder.WriteString(_m.Track)
	builder.WriteString(", ")
	builder.WriteString("chapter_id=")
	builder.WriteString(_m.ChapterID)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ChapterRuns is a parsable slice of ChapterRun.
type ChapterRuns []*ChapterRun
