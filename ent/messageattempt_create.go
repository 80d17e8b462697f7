// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halvard/paperchase/ent/messageattempt"
)

// MessageAttemptCreate is the builder for creating a MessageAttempt entity.
type MessageAttemptCreate struct {
	config
	mutation *MessageAttemptMutation
	hooks    []Hook
}

// SetTrack sets the "track" field.
func (_c *MessageAttemptCreate) SetTrack(v string) *MessageAttemptCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetChapterRunID sets the "chapter_run_id" field.
func (_c *MessageAttemptCreate) SetChapterRunID(v string) *MessageAttemptCreate {
	_c.mutation.SetChapterRunID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *MessageAttemptCreate) SetStepID(v string) *MessageAttemptCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *MessageAttemptCreate) SetRole(v string) *MessageAttemptCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *MessageAttemptCreate) SetChannel(v string) *MessageAttemptCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetRecipient sets the "recipient" field.
func (_c *MessageAttemptCreate) SetRecipient(v string) *MessageAttemptCreate {
	_c.mutation.SetRecipient(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MessageAttemptCreate) SetStatus(v string) *MessageAttemptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageAttemptCreate) SetCreatedAt(v time.Time) *MessageAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageAttemptCreate) SetNillableCreatedAt(v *time.Time) *MessageAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *MessageAttemptCreate) SetScheduledAt(v time.Time) *MessageAttemptCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_c *MessageAttemptCreate) SetNillableScheduledAt(v *time.Time) *MessageAttemptCreate {
	if v != nil {
		_c.SetScheduledAt(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *MessageAttemptCreate) SetSentAt(v time.Time) *MessageAttemptCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *MessageAttemptCreate) SetNillableSentAt(v *time.Time) *MessageAttemptCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetDeliveredAt sets the "delivered_at" field.
func (_c *MessageAttemptCreate) SetDeliveredAt(v time.Time) *MessageAttemptCreate {
	_c.mutation.SetDeliveredAt(v)
	return _c
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_c *MessageAttemptCreate) SetNillableDeliveredAt(v *time.Time) *MessageAttemptCreate {
	if v != nil {
		_c.SetDeliveredAt(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *MessageAttemptCreate) SetError(v string) *MessageAttemptCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *MessageAttemptCreate) SetNillableError(v *string) *MessageAttemptCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageAttemptCreate) SetID(v string) *MessageAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MessageAttemptMutation object of the builder.
func (_c *MessageAttemptCreate) Mutation() *MessageAttemptMutation {
	return _c.mutation
}

// Save creates the MessageAttempt in the database.
func (_c *MessageAttemptCreate) Save(ctx context.Context) (*MessageAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageAttemptCreate) SaveX(ctx context.Context) *MessageAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := messageattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageAttemptCreate) check() error {
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "MessageAttempt.track"`)}
	}
	if v, ok := _c.mutation.Track(); ok {
		if err := messageattempt.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "MessageAttempt.track": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChapterRunID(); !ok {
		return &ValidationError{Name: "chapter_run_id", err: errors.New(`ent: missing required field "MessageAttempt.chapter_run_id"`)}
	}
	if v, ok := _c.mutation.ChapterRunID(); ok {
		if err := messageattempt.ChapterRunIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_run_id", err: fmt.Errorf(`ent: validator failed for field "MessageAttempt.chapter_run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "MessageAttempt.step_id"`)}
	}
	if v, ok := _c.mutation.StepID(); ok {
		if err := messageattempt.StepIDValidator(v); err != nil {
			return &ValidationError{Name: "step_id", err: fmt.Errorf(`ent: validator failed for field "MessageAttempt.step_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "MessageAttempt.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := messageattempt.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "MessageAttempt.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "MessageAttempt.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := messageattempt.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "MessageAttempt.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Recipient(); !ok {
		return &ValidationError{Name: "recipient", err: errors.New(`ent: missing required field "MessageAttempt.recipient"`)}
	}
	if v, ok := _c.mutation.Recipient(); ok {
		if err := messageattempt.RecipientValidator(v); err != nil {
			return &ValidationError{Name: "recipient", err: fmt.Errorf(`ent: validator failed for field "MessageAttempt.recipient": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MessageAttempt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := messageattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MessageAttempt.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MessageAttempt.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := messageattempt.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "MessageAttempt.id": %w`, err)}
		}
	}
	return nil
}

func (_c *MessageAttemptCreate) sqlSave(ctx context.Context) (*MessageAttempt, error) {
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
			return nil, fmt.Errorf("unexpected MessageAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageAttemptCreate) createSpec() (*MessageAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messageattempt.Table, sqlgraph.NewFieldSpec(messageattempt.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(messageattempt.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.ChapterRunID(); ok {
		_spec.SetField(messageattempt.FieldChapterRunID, field.TypeString, value)
		_node.ChapterRunID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(messageattempt.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(messageattempt.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(messageattempt.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Recipient(); ok {
		_spec.SetField(messageattempt.FieldRecipient, field.TypeString, value)
		_node.Recipient = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(messageattempt.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(messageattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(messageattempt.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(messageattempt.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.DeliveredAt(); ok {
		_spec.SetField(messageattempt.FieldDeliveredAt, field.TypeTime, value)
		_node.DeliveredAt = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(messageattempt.FieldError, field.TypeString, value)
		_node.Error = value
	}
	return _node, _spec
}

// MessageAttemptCreateBulk is the builder for creating many MessageAttempt entities in bulk.
type MessageAttemptCreateBulk struct {
	config
	err      error
	builders []*MessageAttemptCreate
}

// Save creates the MessageAttempt entities in the database.
func (_c *MessageAttemptCreateBulk) Save(ctx context.Context) ([]*MessageAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageAttemptMutation)
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
func (_c *MessageAttemptCreateBulk) SaveX(ctx context.Context) []*MessageAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
