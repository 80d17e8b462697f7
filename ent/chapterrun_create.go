// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halvard/paperchase/ent/chapterrun"
)

// ChapterRunCreate is the builder for creating a ChapterRun entity.
type ChapterRunCreate struct {
	config
	mutation *ChapterRunMutation
	hooks    []Hook
}

// SetTrack sets the "track" field.
func (_c *ChapterRunCreate) SetTrack(v string) *ChapterRunCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetChapterID sets the "chapter_id" field.
func (_c *ChapterRunCreate) SetChapterID(v string) *ChapterRunCreate {
	_c.mutation.SetChapterID(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ChapterRunCreate) SetStartedAt(v time.Time) *ChapterRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ChapterRunCreate) SetNillableStartedAt(v *time.Time) *ChapterRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ChapterRunCreate) SetCompletedAt(v time.Time) *ChapterRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ChapterRunCreate) SetNillableCompletedAt(v *time.Time) *ChapterRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChapterRunCreate) SetID(v string) *ChapterRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChapterRunMutation object of the builder.
func (_c *ChapterRunCreate) Mutation() *ChapterRunMutation {
	return _c.mutation
}

// Save creates the ChapterRun in the database.
func (_c *ChapterRunCreate) Save(ctx context.Context) (*ChapterRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChapterRunCreate) SaveX(ctx context.Context) *ChapterRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChapterRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChapterRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChapterRunCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := chapterrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChapterRunCreate) check() error {
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "ChapterRun.track"`)}
	}
	if v, ok := _c.mutation.Track(); ok {
		if err := chapterrun.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "ChapterRun.track": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChapterID(); !ok {
		return &ValidationError{Name: "chapter_id", err: errors.New(`ent: missing required field "ChapterRun.chapter_id"`)}
	}
	if v, ok := _c.mutation.ChapterID(); ok {
		if err := chapterrun.ChapterIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_id", err: fmt.Errorf(`ent: validator failed for field "ChapterRun.chapter_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ChapterRun.started_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := chapterrun.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ChapterRun.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ChapterRunCreate) sqlSave(ctx context.Context) (*ChapterRun, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ChapterRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChapterRunCreate) createSpec() (*ChapterRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ChapterRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chapterrun.Table, sqlgraph.NewFieldSpec(chapterrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(chapterrun.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.ChapterID(); ok {
		_spec.SetField(chapterrun.FieldChapterID, field.TypeString, value)
		_node.ChapterID = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(chapterrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(chapterrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// ChapterRunCreateBulk is the builder for creating many ChapterRun entities in bulk.
type ChapterRunCreateBulk struct {
	config
	err      error
	builders []*ChapterRunCreate
}

// Save creates the ChapterRun entities in the database.
func (_c *ChapterRunCreateBulk) Save(ctx context.Context) ([]*ChapterRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChapterRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChapterRunMutation)
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
func (_c *ChapterRunCreateBulk) SaveX(ctx context.Context) []*ChapterRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChapterRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChapterRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
