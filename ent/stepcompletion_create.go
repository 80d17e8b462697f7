// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halvard/paperchase/ent/stepcompletion"
)

// StepCompletionCreate is the builder for creating a StepCompletion entity.
type StepCompletionCreate struct {
	config
	mutation *StepCompletionMutation
	hooks    []Hook
}

// SetTrack sets the "track" field.
func (_c *StepCompletionCreate) SetTrack(v string) *StepCompletionCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetChapterRunID sets the "chapter_run_id" field.
func (_c *StepCompletionCreate) SetChapterRunID(v string) *StepCompletionCreate {
	_c.mutation.SetChapterRunID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *StepCompletionCreate) SetStepID(v string) *StepCompletionCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StepCompletionCreate) SetCompletedAt(v time.Time) *StepCompletionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StepCompletionCreate) SetNillableCompletedAt(v *time.Time) *StepCompletionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the StepCompletionMutation object of the builder.
func (_c *StepCompletionCreate) Mutation() *StepCompletionMutation {
	return _c.mutation
}

// Save creates the StepCompletion in the database.
func (_c *StepCompletionCreate) Save(ctx context.Context) (*StepCompletion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepCompletionCreate) SaveX(ctx context.Context) *StepCompletion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCompletionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCompletionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepCompletionCreate) defaults() {
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := stepcompletion.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepCompletionCreate) check() error {
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "StepCompletion.track"`)}
	}
	if v, ok := _c.mutation.Track(); ok {
		if err := stepcompletion.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "StepCompletion.track": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChapterRunID(); !ok {
		return &ValidationError{Name: "chapter_run_id", err: errors.New(`ent: missing required field "StepCompletion.chapter_run_id"`)}
	}
	if v, ok := _c.mutation.ChapterRunID(); ok {
		if err := stepcompletion.ChapterRunIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_run_id", err: fmt.Errorf(`ent: validator failed for field "StepCompletion.chapter_run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "StepCompletion.step_id"`)}
	}
	if v, ok := _c.mutation.StepID(); ok {
		if err := stepcompletion.StepIDValidator(v); err != nil {
			return &ValidationError{Name: "step_id", err: fmt.Errorf(`ent: validator failed for field "StepCompletion.step_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "StepCompletion.completed_at"`)}
	}
	return nil
}

func (_c *StepCompletionCreate) sqlSave(ctx context.Context) (*StepCompletion, error) {
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

func (_c *StepCompletionCreate) createSpec() (*StepCompletion, *sqlgraph.CreateSpec) {
	var (
		_node = &StepCompletion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepcompletion.Table, sqlgraph.NewFieldSpec(stepcompletion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(stepcompletion.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.ChapterRunID(); ok {
		_spec.SetField(stepcompletion.FieldChapterRunID, field.TypeString, value)
		_node.ChapterRunID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(stepcompletion.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(stepcompletion.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// StepCompletionCreateBulk is the builder for creating many StepCompletion entities in bulk.
type StepCompletionCreateBulk struct {
	config
	err      error
	builders []*StepCompletionCreate
}

// Save creates the StepCompletion entities in the database.
func (_c *StepCompletionCreateBulk) Save(ctx context.Context) ([]*StepCompletion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepCompletion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepCompletionMutation)
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
func (_c *StepCompletionCreateBulk) SaveX(ctx context.Context) []*StepCompletion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCompletionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCompletionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
