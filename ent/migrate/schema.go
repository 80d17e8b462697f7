// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChapterRunsColumns holds the columns for the "chapter_runs" table.
	ChapterRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "track", Type: field.TypeString},
		{Name: "chapter_id", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ChapterRunsTable holds the schema information for the "chapter_runs" table.
	ChapterRunsTable = &schema.Table{
		Name:       "chapter_runs",
		Columns:    ChapterRunsColumns,
		PrimaryKey: []*schema.Column{ChapterRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chapterrun_track",
				Unique:  false,
				Columns: []*schema.Column{ChapterRunsColumns[1]},
			},
			{
				Name:    "chapterrun_track_chapter_id",
				Unique:  false,
				Columns: []*schema.Column{ChapterRunsColumns[1], ChapterRunsColumns[2]},
			},
			{
				Name:    "chapterrun_track_completed_at",
				Unique:  false,
				Columns: []*schema.Column{ChapterRunsColumns[1], ChapterRunsColumns[4]},
			},
		},
	}
	// HintRevealsColumns holds the columns for the "hint_reveals" table.
	HintRevealsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "track", Type: field.TypeString},
		{Name: "chapter_run_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
		{Name: "tier", Type: field.TypeInt},
		{Name: "revealed_at", Type: field.TypeTime},
	}
	// HintRevealsTable holds the schema information for the "hint_reveals" table.
	HintRevealsTable = &schema.Table{
		Name:       "hint_reveals",
		Columns:    HintRevealsColumns,
		PrimaryKey: []*schema.Column{HintRevealsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintreveal_track",
				Unique:  false,
				Columns: []*schema.Column{HintRevealsColumns[1]},
			},
			{
				Name:    "hintreveal_chapter_run_id_step_id_tier",
				Unique:  true,
				Columns: []*schema.Column{HintRevealsColumns[2], HintRevealsColumns[3], HintRevealsColumns[4]},
			},
			{
				Name:    "hintreveal_chapter_run_id_step_id",
				Unique:  false,
				Columns: []*schema.Column{HintRevealsColumns[2], HintRevealsColumns[3]},
			},
		},
	}
	// MessageAttemptsColumns holds the columns for the "message_attempts" table.
	MessageAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "track", Type: field.TypeString},
		{Name: "chapter_run_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "recipient", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
	}
	// MessageAttemptsTable holds the schema information for the "message_attempts" table.
	MessageAttemptsTable = &schema.Table{
		Name:       "message_attempts",
		Columns:    MessageAttemptsColumns,
		PrimaryKey: []*schema.Column{MessageAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "messageattempt_track",
				Unique:  false,
				Columns: []*schema.Column{MessageAttemptsColumns[1]},
			},
			{
				Name:    "messageattempt_chapter_run_id_step_id_role",
				Unique:  false,
				Columns: []*schema.Column{MessageAttemptsColumns[2], MessageAttemptsColumns[3], MessageAttemptsColumns[4]},
			},
			{
				Name:    "messageattempt_chapter_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{MessageAttemptsColumns[2], MessageAttemptsColumns[7]},
			},
		},
	}
	// QuizAnswersColumns holds the columns for the "quiz_answers" table.
	QuizAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "track", Type: field.TypeString},
		{Name: "chapter_run_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "selected_option", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "answered_at", Type: field.TypeTime},
	}
	// QuizAnswersTable holds the schema information for the "quiz_answers" table.
	QuizAnswersTable = &schema.Table{
		Name:       "quiz_answers",
		Columns:    QuizAnswersColumns,
		PrimaryKey: []*schema.Column{QuizAnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizanswer_track",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswersColumns[1]},
			},
			{
				Name:    "quizanswer_chapter_run_id_step_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswersColumns[2], QuizAnswersColumns[3]},
			},
		},
	}
	// StepCompletionsColumns holds the columns for the "step_completions" table.
	StepCompletionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "track", Type: field.TypeString},
		{Name: "chapter_run_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// StepCompletionsTable holds the schema information for the "step_completions" table.
	StepCompletionsTable = &schema.Table{
		Name:       "step_completions",
		Columns:    StepCompletionsColumns,
		PrimaryKey: []*schema.Column{StepCompletionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stepcompletion_track",
				Unique:  false,
				Columns: []*schema.Column{StepCompletionsColumns[1]},
			},
			{
				Name:    "stepcompletion_chapter_run_id_step_id",
				Unique:  true,
				Columns: []*schema.Column{StepCompletionsColumns[2], StepCompletionsColumns[3]},
			},
			{
				Name:    "stepcompletion_chapter_run_id",
				Unique:  false,
				Columns: []*schema.Column{StepCompletionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChapterRunsTable,
		HintRevealsTable,
		MessageAttemptsTable,
		QuizAnswersTable,
		StepCompletionsTable,
	}
)

func init() {
}
