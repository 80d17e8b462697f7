// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halvard/paperchase/ent/chapterrun"
	"github.com/halvard/paperchase/ent/predicate"
)

// ChapterRunUpdate is the builder for updating ChapterRun entities.
type ChapterRunUpdate struct {
	config
	hooks    []Hook
	mutation *ChapterRunMutation
}

// Where appends a list predicates to the ChapterRunUpdate builder.
func (_u *ChapterRunUpdate) Where(ps ...predicate.ChapterRun) *ChapterRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ChapterRunUpdate) SetCompletedAt(v time.Time) *ChapterRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ChapterRunUpdate) SetNillableCompletedAt(v *time.Time) *ChapterRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ChapterRunUpdate) ClearCompletedAt() *ChapterRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ChapterRunMutation object of the builder.
func (_u *ChapterRunUpdate) Mutation() *ChapterRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChapterRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChapterRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChapterRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChapterRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChapterRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(chapterrun.Table, chapterrun.Columns, sqlgraph.NewFieldSpec(chapterrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(chapterrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(chapterrun.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chapterrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChapterRunUpdateOne is the builder for updating a single ChapterRun entity.
type ChapterRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChapterRunMutation
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ChapterRunUpdateOne) SetCompletedAt(v time.Time) *ChapterRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ChapterRunUpdateOne) SetNillableCompletedAt(v *time.Time) *ChapterRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ChapterRunUpdateOne) ClearCompletedAt() *ChapterRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ChapterRunMutation object of the builder.
func (_u *ChapterRunUpdateOne) Mutation() *ChapterRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChapterRunUpdate builder.
func (_u *ChapterRunUpdateOne) Where(ps ...predicate.ChapterRun) *ChapterRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChapterRunUpdateOne) Select(field string, fields ...string) *ChapterRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChapterRun entity.
func (_u *ChapterRunUpdateOne) Save(ctx context.Context) (*ChapterRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChapterRunUpdateOne) SaveX(ctx context.Context) *ChapterRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChapterRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChapterRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChapterRunUpdateOne) sqlSave(ctx context.Context) (_node *ChapterRun, err error) {
	_spec := sqlgraph.NewUpdateSpec(chapterrun.Table, chapterrun.Columns, sqlgraph.NewFieldSpec(chapterrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChapterRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chapterrun.FieldID)
		for _, f := range fields {
			if !chapterrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chapterrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(chapterrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(chapterrun.FieldCompletedAt, field.TypeTime)
	}
	_node = &ChapterRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chapterrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
