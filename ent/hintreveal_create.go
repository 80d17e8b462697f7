// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halvard/paperchase/ent/hintreveal"
)

// HintRevealCreate is the builder for creating a HintReveal entity.
type HintRevealCreate struct {
	config
	mutation *HintRevealMutation
	hooks    []Hook
}

// SetTrack sets the "track" field.
func (_c *HintRevealCreate) SetTrack(v string) *HintRevealCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetChapterRunID sets the "chapter_run_id" field.
func (_c *HintRevealCreate) SetChapterRunID(v string) *HintRevealCreate {
	_c.mutation.SetChapterRunID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *HintRevealCreate) SetStepID(v string) *HintRevealCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *HintRevealCreate) SetTier(v int) *HintRevealCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetRevealedAt sets the "revealed_at" field.
func (_c *HintRevealCreate) SetRevealedAt(v time.Time) *HintRevealCreate {
	_c.mutation.SetRevealedAt(v)
	return _c
}

// SetNillableRevealedAt sets the "revealed_at" field if the given value is not nil.
func (_c *HintRevealCreate) SetNillableRevealedAt(v *time.Time) *HintRevealCreate {
	if v != nil {
		_c.SetRevealedAt(*v)
	}
	return _c
}

// Mutation returns the HintRevealMutation object of the builder.
func (_c *HintRevealCreate) Mutation() *HintRevealMutation {
	return _c.mutation
}

// Save creates the HintReveal in the database.
func (_c *HintRevealCreate) Save(ctx context.Context) (*HintReveal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HintRevealCreate) SaveX(ctx context.Context) *HintReveal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HintRevealCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HintRevealCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HintRevealCreate) defaults() {
	if _, ok := _c.mutation.RevealedAt(); !ok {
		v := hintreveal.DefaultRevealedAt()
		_c.mutation.SetRevealedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HintRevealCreate) check() error {
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "HintReveal.track"`)}
	}
	if v, ok := _c.mutation.Track(); ok {
		if err := hintreveal.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "HintReveal.track": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChapterRunID(); !ok {
		return &ValidationError{Name: "chapter_run_id", err: errors.New(`ent: missing required field "HintReveal.chapter_run_id"`)}
	}
	if v, ok := _c.mutation.ChapterRunID(); ok {
		if err := hintreveal.ChapterRunIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_run_id", err: fmt.Errorf(`ent: validator failed for field "HintReveal.chapter_run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "HintReveal.step_id"`)}
	}
	if v, ok := _c.mutation.StepID(); ok {
		if err := hintreveal.StepIDValidator(v); err != nil {
			return &ValidationError{Name: "step_id", err: fmt.Errorf(`ent: validator failed for field "HintReveal.step_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "HintReveal.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := hintreveal.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "HintReveal.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RevealedAt(); !ok {
		return &ValidationError{Name: "revealed_at", err: errors.New(`ent: missing required field "HintReveal.revealed_at"`)}
	}
	return nil
}

func (_c *HintRevealCreate) sqlSave(ctx context.Context) (*HintReveal, error) {
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

func (_c *HintRevealCreate) createSpec() (*HintReveal, *sqlgraph.CreateSpec) {
	var (
		_node = &HintReveal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hintreveal.Table, sqlgraph.NewFieldSpec(hintreveal.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(hintreveal.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.ChapterRunID(); ok {
		_spec.SetField(hintreveal.FieldChapterRunID, field.TypeString, value)
		_node.ChapterRunID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(hintreveal.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(hintreveal.FieldTier, field.TypeInt, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.RevealedAt(); ok {
		_spec.SetField(hintreveal.FieldRevealedAt, field.TypeTime, value)
		_node.RevealedAt = value
	}
	return _node, _spec
}

// HintRevealCreateBulk is the builder for creating many HintReveal entities in bulk.
type HintRevealCreateBulk struct {
	config
	err      error
	builders []*HintRevealCreate
}

// Save creates the HintReveal entities in the database.
func (_c *HintRevealCreateBulk) Save(ctx context.Context) ([]*HintReveal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HintReveal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HintRevealMutation)
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
func (_c *HintRevealCreateBulk) SaveX(ctx context.Context) []*HintReveal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HintRevealCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HintRevealCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
