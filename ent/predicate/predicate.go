// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChapterRun is the predicate function for chapterrun builders.
type ChapterRun func(*sql.Selector)

// HintReveal is the predicate function for hintreveal builders.
type HintReveal func(*sql.Selector)

// MessageAttempt is the predicate function for messageattempt builders.
type MessageAttempt func(*sql.Selector)

// QuizAnswer is the predicate function for quizanswer builders.
type QuizAnswer func(*sql.Selector)

// StepCompletion is the predicate function for stepcompletion builders.
type StepCompletion func(*sql.Selector)
