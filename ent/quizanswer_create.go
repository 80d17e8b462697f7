// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halvard/paperchase/ent/quizanswer"
)

// QuizAnswerCreate is the builder for creating a QuizAnswer entity.
type QuizAnswerCreate struct {
	config
	mutation *QuizAnswerMutation
	hooks    []Hook
}

// SetTrack sets the "track" field.
func (_c *QuizAnswerCreate) SetTrack(v string) *QuizAnswerCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetChapterRunID sets the "chapter_run_id" field.
func (_c *QuizAnswerCreate) SetChapterRunID(v string) *QuizAnswerCreate {
	_c.mutation.SetChapterRunID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *QuizAnswerCreate) SetStepID(v string) *QuizAnswerCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetQuestionIndex sets the "question_index" field.
func (_c *QuizAnswerCreate) SetQuestionIndex(v int) *QuizAnswerCreate {
	_c.mutation.SetQuestionIndex(v)
	return _c
}

// SetSelectedOption sets the "selected_option" field.
func (_c *QuizAnswerCreate) SetSelectedOption(v int) *QuizAnswerCreate {
	_c.mutation.SetSelectedOption(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *QuizAnswerCreate) SetCorrect(v bool) *QuizAnswerCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *QuizAnswerCreate) SetAnsweredAt(v time.Time) *QuizAnswerCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *QuizAnswerCreate) SetNillableAnsweredAt(v *time.Time) *QuizAnswerCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// Mutation returns the QuizAnswerMutation object of the builder.
func (_c *QuizAnswerCreate) Mutation() *QuizAnswerMutation {
	return _c.mutation
}

// Save creates the QuizAnswer in the database.
func (_c *QuizAnswerCreate) Save(ctx context.Context) (*QuizAnswer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAnswerCreate) SaveX(ctx context.Context) *QuizAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAnswerCreate) defaults() {
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		v := quizanswer.DefaultAnsweredAt()
		_c.mutation.SetAnsweredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAnswerCreate) check() error {
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "QuizAnswer.track"`)}
	}
	if v, ok := _c.mutation.Track(); ok {
		if err := quizanswer.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "QuizAnswer.track": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChapterRunID(); !ok {
		return &ValidationError{Name: "chapter_run_id", err: errors.New(`ent: missing required field "QuizAnswer.chapter_run_id"`)}
	}
	if v, ok := _c.mutation.ChapterRunID(); ok {
		if err := quizanswer.ChapterRunIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_run_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswer.chapter_run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "QuizAnswer.step_id"`)}
	}
	if v, ok := _c.mutation.StepID(); ok {
		if err := quizanswer.StepIDValidator(v); err != nil {
			return &ValidationError{Name: "step_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswer.step_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionIndex(); !ok {
		return &ValidationError{Name: "question_index", err: errors.New(`ent: missing required field "QuizAnswer.question_index"`)}
	}
	if v, ok := _c.mutation.QuestionIndex(); ok {
		if err := quizanswer.QuestionIndexValidator(v); err != nil {
			return &ValidationError{Name: "question_index", err: fmt.Errorf(`ent: validator failed for field "QuizAnswer.question_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SelectedOption(); !ok {
		return &ValidationError{Name: "selected_option", err: errors.New(`ent: missing required field "QuizAnswer.selected_option"`)}
	}
	if v, ok := _c.mutation.SelectedOption(); ok {
		if err := quizanswer.SelectedOptionValidator(v); err != nil {
			return &ValidationError{Name: "selected_option", err: fmt.Errorf(`ent: validator failed for field "QuizAnswer.selected_option": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "QuizAnswer.correct"`)}
	}
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		return &ValidationError{Name: "answered_at", err: errors.New(`ent: missing required field "QuizAnswer.answered_at"`)}
	}
	return nil
}

func (_c *QuizAnswerCreate) sqlSave(ctx context.Context) (*QuizAnswer, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizAnswerCreate) createSpec() (*QuizAnswer, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAnswer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizanswer.Table, sqlgraph.NewFieldSpec(quizanswer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(quizanswer.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.ChapterRunID(); ok {
		_spec.SetField(quizanswer.FieldChapterRunID, field.TypeString, value)
		_node.ChapterRunID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(quizanswer.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.QuestionIndex(); ok {
		_spec.SetField(quizanswer.FieldQuestionIndex, field.TypeInt, value)
		_node.QuestionIndex = value
	}
	if value, ok := _c.mutation.SelectedOption(); ok {
		_spec.SetField(quizanswer.FieldSelectedOption, field.TypeInt, value)
		_node.SelectedOption = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(quizanswer.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(quizanswer.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = value
	}
	return _node, _spec
}

// QuizAnswerCreateBulk is the builder for creating many QuizAnswer entities in bulk.
type QuizAnswerCreateBulk struct {
	config
	err      error
	builders []*QuizAnswerCreate
}

// Save creates the QuizAnswer entities in the database.
func (_c *QuizAnswerCreateBulk) Save(ctx context.Context) ([]*QuizAnswer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAnswer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAnswerMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *QuizAnswerCreateBulk) SaveX(ctx context.Context) []*QuizAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
