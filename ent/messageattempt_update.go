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
	"github.com/halvard/paperchase/ent/messageattempt"
	"github.com/halvard/paperchase/ent/predicate"
)

// MessageAttemptUpdate is the builder for updating MessageAttempt entities.
type MessageAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *MessageAttemptMutation
}

// Where appends a list predicates to the MessageAttemptUpdate builder.
func (_u *MessageAttemptUpdate) Where(ps ...predicate.MessageAttempt) *MessageAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MessageAttemptUpdate) SetStatus(v string) *MessageAttemptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MessageAttemptUpdate) SetNillableStatus(v *string) *MessageAttemptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *MessageAttemptUpdate) SetScheduledAt(v time.Time) *MessageAttemptUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *MessageAttemptUpdate) SetNillableScheduledAt(v *time.Time) *MessageAttemptUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *MessageAttemptUpdate) ClearScheduledAt() *MessageAttemptUpdate {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *MessageAttemptUpdate) SetSentAt(v time.Time) *MessageAttemptUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *MessageAttemptUpdate) SetNillableSentAt(v *time.Time) *MessageAttemptUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *MessageAttemptUpdate) ClearSentAt() *MessageAttemptUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *MessageAttemptUpdate) SetDeliveredAt(v time.Time) *MessageAttemptUpdate {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *MessageAttemptUpdate) SetNillableDeliveredAt(v *time.Time) *MessageAttemptUpdate {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *MessageAttemptUpdate) ClearDeliveredAt() *MessageAttemptUpdate {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetError sets the "error" field.
func (_u *MessageAttemptUpdate) SetError(v string) *MessageAttemptUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *MessageAttemptUpdate) SetNillableError(v *string) *MessageAttemptUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *MessageAttemptUpdate) ClearError() *MessageAttemptUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the MessageAttemptMutation object of the builder.
func (_u *MessageAttemptUpdate) Mutation() *MessageAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageAttemptUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := messageattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MessageAttempt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageattempt.Table, messageattempt.Columns, sqlgraph.NewFieldSpec(messageattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(messageattempt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(messageattempt.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(messageattempt.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(messageattempt.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(messageattempt.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(messageattempt.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(messageattempt.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(messageattempt.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(messageattempt.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageAttemptUpdateOne is the builder for updating a single MessageAttempt entity.
type MessageAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageAttemptMutation
}

// SetStatus sets the "status" field.
func (_u *MessageAttemptUpdateOne) SetStatus(v string) *MessageAttemptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MessageAttemptUpdateOne) SetNillableStatus(v *string) *MessageAttemptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *MessageAttemptUpdateOne) SetScheduledAt(v time.Time) *MessageAttemptUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *MessageAttemptUpdateOne) SetNillableScheduledAt(v *time.Time) *MessageAttemptUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *MessageAttemptUpdateOne) ClearScheduledAt() *MessageAttemptUpdateOne {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *MessageAttemptUpdateOne) SetSentAt(v time.Time) *MessageAttemptUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *MessageAttemptUpdateOne) SetNillableSentAt(v *time.Time) *MessageAttemptUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *MessageAttemptUpdateOne) ClearSentAt() *MessageAttemptUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *MessageAttemptUpdateOne) SetDeliveredAt(v time.Time) *MessageAttemptUpdateOne {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *MessageAttemptUpdateOne) SetNillableDeliveredAt(v *time.Time) *MessageAttemptUpdateOne {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *MessageAttemptUpdateOne) ClearDeliveredAt() *MessageAttemptUpdateOne {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetError sets the "error" field.
func (_u *MessageAttemptUpdateOne) SetError(v string) *MessageAttemptUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *MessageAttemptUpdateOne) SetNillableError(v *string) *MessageAttemptUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *MessageAttemptUpdateOne) ClearError() *MessageAttemptUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the MessageAttemptMutation object of the builder.
func (_u *MessageAttemptUpdateOne) Mutation() *MessageAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageAttemptUpdate builder.
func (_u *MessageAttemptUpdateOne) Where(ps ...predicate.MessageAttempt) *MessageAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageAttemptUpdateOne) Select(field string, fields ...string) *MessageAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageAttempt entity.
func (_u *MessageAttemptUpdateOne) Save(ctx context.Context) (*MessageAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageAttemptUpdateOne) SaveX(ctx context.Context) *MessageAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := messageattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MessageAttempt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageAttemptUpdateOne) sqlSave(ctx context.Context) (_node *MessageAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageattempt.Table, messageattempt.Columns, sqlgraph.NewFieldSpec(messageattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messageattempt.FieldID)
		for _, f := range fields {
			if !messageattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messageattempt.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(messageattempt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(messageattempt.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(messageattempt.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(messageattempt.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(messageattempt.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(messageattempt.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(messageattempt.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(messageattempt.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(messageattempt.FieldError, field.TypeString)
	}
	_node = &MessageAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
