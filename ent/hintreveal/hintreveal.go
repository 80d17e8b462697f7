// Code generated by ent, DO NOT EDIT.

package hintreveal

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the hintreveal type in the database.
	Label = "hint_reveal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTrack holds the string denoting the track field in the database.
	FieldTrack = "track"
	// FieldChapterRunID holds the string denoting the chapter_run_id field in the database.
	FieldChapterRunID = "chapter_run_id"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldRevealedAt holds the string denoting the revealed_at field in the database.
	FieldRevealedAt = "revealed_at"
	// Table holds the table name of the hintreveal in the database.
	Table = "hint_reveals"
)

// Columns holds all SQL columns for hintreveal fields.
var Columns = []string{
	FieldID,
	FieldTrack,
	FieldChapterRunID,
	FieldStepID,
	FieldTier,
	FieldRevealedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TrackValidator is a validator for the "track" field. It is called by the builders before save.
	TrackValidator func(string) error
	// ChapterRunIDValidator is a validator for the "chapter_run_id" field. It is called by the builders before save.
	ChapterRunIDValidator func(string) error
	// StepIDValidator is a validator for the "step_id" field. It is called by the builders before save.
	StepIDValidator func(string) error
	// TierValidator is a validator for the "tier" field. It is called by the builders before save.
	TierValidator func(int) error
	// DefaultRevealedAt holds the default value on creation for the "revealed_at" field.
	DefaultRevealedAt func() time.Time
)

// OrderOption defines the ordering options for the HintReveal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTrack orders the results by the track field.
func ByTrack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrack, opts...).ToFunc()
}

// ByChapterRunID orders the results by the chapter_run_id field.
func ByChapterRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterRunID, opts...).ToFunc()
}

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByRevealedAt orders the results by the revealed_at field.
func ByRevealedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevealedAt, opts...).ToFunc()
}
