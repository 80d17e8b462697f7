// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halvard/paperchase/ent/chapterrun"
	"github.com/halvard/paperchase/ent/hintreveal"
	"github.com/halvard/paperchase/ent/messageattempt"
	"github.com/halvard/paperchase/ent/predicate"
	"github.com/halvard/paperchase/ent/quizanswer"
	"github.com/halvard/paperchase/ent/stepcompletion"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChapterRun     = "ChapterRun"
	TypeHintReveal     = "HintReveal"
	TypeMessageAttempt = "MessageAttempt"
	TypeQuizAnswer     = "QuizAnswer"
	TypeStepCompletion = "StepCompletion"
)

// ChapterRunMutation represents an operation that mutates the ChapterRun nodes in the graph.
type ChapterRunMutation struct {
	config
	op            Op
	typ           string
	id            *string
	track         *string
	chapter_id    *string
	started_at    *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChapterRun, error)
	predicates    []predicate.ChapterRun
}

var _ ent.Mutation = (*ChapterRunMutation)(nil)

// chapterrunOption allows management of the mutation configuration using functional options.
type chapterrunOption func(*ChapterRunMutation)

// newChapterRunMutation creates new mutation for the ChapterRun entity.
func newChapterRunMutation(c config, op Op, opts ...chapterrunOption) *ChapterRunMutation {
	m := &ChapterRunMutation{
		config:        c,
		op:            op,
		typ:           TypeChapterRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChapterRunID sets the ID field of the mutation.
func withChapterRunID(id string) chapterrunOption {
	return func(m *ChapterRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ChapterRun
		)
		m.oldValue = func(ctx context.Context) (*ChapterRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChapterRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChapterRun sets the old ChapterRun of the mutation.
func withChapterRun(node *ChapterRun) chapterrunOption {
	return func(m *ChapterRunMutation) {
		m.oldValue = func(context.Context) (*ChapterRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChapterRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChapterRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChapterRun entities.
func (m *ChapterRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChapterRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChapterRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChapterRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTrack sets the "track" field.
func (m *ChapterRunMutation) SetTrack(s string) {
	m.track = &s
}

// Track returns the value of the "track" field in the mutation.
func (m *ChapterRunMutation) Track() (r string, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrack returns the old "track" field's value of the ChapterRun entity.
// If the ChapterRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterRunMutation) OldTrack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrack: %w", err)
	}
	return oldValue.Track, nil
}

// ResetTrack resets all changes to the "track" field.
func (m *ChapterRunMutation) ResetTrack() {
	m.track = nil
}

// SetChapterID sets the "chapter_id" field.
func (m *ChapterRunMutation) SetChapterID(s string) {
	m.chapter_id = &s
}

// ChapterID returns the value of the "chapter_id" field in the mutation.
func (m *ChapterRunMutation) ChapterID() (r string, exists bool) {
	v := m.chapter_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterID returns the old "chapter_id" field's value of the ChapterRun entity.
// If the ChapterRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterRunMutation) OldChapterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterID: %w", err)
	}
	return oldValue.ChapterID, nil
}

// ResetChapterID resets all changes to the "chapter_id" field.
func (m *ChapterRunMutation) ResetChapterID() {
	m.chapter_id = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ChapterRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ChapterRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ChapterRun entity.
// If the ChapterRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ChapterRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ChapterRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ChapterRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ChapterRun entity.
// If the ChapterRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ChapterRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[chapterrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ChapterRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[chapterrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ChapterRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, chapterrun.FieldCompletedAt)
}

// Where appends a list predicates to the ChapterRunMutation builder.
func (m *ChapterRunMutation) Where(ps ...predicate.ChapterRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChapterRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChapterRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChapterRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChapterRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChapterRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChapterRun).
func (m *ChapterRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChapterRunMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.track != nil {
		fields = append(fields, chapterrun.FieldTrack)
	}
	if m.chapter_id != nil {
		fields = append(fields, chapterrun.FieldChapterID)
	}
	if m.started_at != nil {
		fields = append(fields, chapterrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, chapterrun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChapterRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chapterrun.FieldTrack:
		return m.Track()
	case chapterrun.FieldChapterID:
		return m.ChapterID()
	case chapterrun.FieldStartedAt:
		return m.StartedAt()
	case chapterrun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChapterRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chapterrun.FieldTrack:
		return m.OldTrack(ctx)
	case chapterrun.FieldChapterID:
		return m.OldChapterID(ctx)
	case chapterrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case chapterrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChapterRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChapterRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chapterrun.FieldTrack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrack(v)
		return nil
	case chapterrun.FieldChapterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterID(v)
		return nil
	case chapterrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case chapterrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChapterRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChapterRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChapterRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChapterRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChapterRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChapterRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chapterrun.FieldCompletedAt) {
		fields = append(fields, chapterrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChapterRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChapterRunMutation) ClearField(name string) error {
	switch name {
	case chapterrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ChapterRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChapterRunMutation) ResetField(name string) error {
	switch name {
	case chapterrun.FieldTrack:
		m.ResetTrack()
		return nil
	case chapterrun.FieldChapterID:
		m.ResetChapterID()
		return nil
	case chapterrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case chapterrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ChapterRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChapterRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChapterRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChapterRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChapterRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChapterRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChapterRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChapterRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChapterRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChapterRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChapterRun edge %s", name)
}

// HintRevealMutation represents an operation that mutates the HintReveal nodes in the graph.
type HintRevealMutation struct {
	config
	op             Op
	typ            string
	id             *int
	track          *string
	chapter_run_id *string
	step_id        *string
	tier           *int
	addtier        *int
	revealed_at    *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*HintReveal, error)
	predicates     []predicate.HintReveal
}

var _ ent.Mutation = (*HintRevealMutation)(nil)

// hintrevealOption allows management of the mutation configuration using functional options.
type hintrevealOption func(*HintRevealMutation)

// newHintRevealMutation creates new mutation for the HintReveal entity.
func newHintRevealMutation(c config, op Op, opts ...hintrevealOption) *HintRevealMutation {
	m := &HintRevealMutation{
		config:        c,
		op:            op,
		typ:           TypeHintReveal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHintRevealID sets the ID field of the mutation.
func withHintRevealID(id int) hintrevealOption {
	return func(m *HintRevealMutation) {
		var (
			err   error
			once  sync.Once
			value *HintReveal
		)
		m.oldValue = func(ctx context.Context) (*HintReveal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HintReveal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHintReveal sets the old HintReveal of the mutation.
func withHintReveal(node *HintReveal) hintrevealOption {
	return func(m *HintRevealMutation) {
		m.oldValue = func(context.Context) (*HintReveal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HintRevealMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HintRevealMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HintRevealMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HintRevealMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HintReveal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTrack sets the "track" field.
func (m *HintRevealMutation) SetTrack(s string) {
	m.track = &s
}

// Track returns the value of the "track" field in the mutation.
func (m *HintRevealMutation) Track() (r string, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrack returns the old "track" field's value of the HintReveal entity.
// If the HintReveal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintRevealMutation) OldTrack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrack: %w", err)
	}
	return oldValue.Track, nil
}

// ResetTrack resets all changes to the "track" field.
func (m *HintRevealMutation) ResetTrack() {
	m.track = nil
}

// SetChapterRunID sets the "chapter_run_id" field.
func (m *HintRevealMutation) SetChapterRunID(s string) {
	m.chapter_run_id = &s
}

// ChapterRunID returns the value of the "chapter_run_id" field in the mutation.
func (m *HintRevealMutation) ChapterRunID() (r string, exists bool) {
	v := m.chapter_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterRunID returns the old "chapter_run_id" field's value of the HintReveal entity.
// If the HintReveal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintRevealMutation) OldChapterRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterRunID: %w", err)
	}
	return oldValue.ChapterRunID, nil
}

// ResetChapterRunID resets all changes to the "chapter_run_id" field.
func (m *HintRevealMutation) ResetChapterRunID() {
	m.chapter_run_id = nil
}

// SetStepID sets the "step_id" field.
func (m *HintRevealMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *HintRevealMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the HintReveal entity.
// If the HintReveal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintRevealMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *HintRevealMutation) ResetStepID() {
	m.step_id = nil
}

// SetTier sets the "tier" field.
func (m *HintRevealMutation) SetTier(i int) {
	m.tier = &i
	m.addtier = nil
}

// Tier returns the value of the "tier" field in the mutation.
func (m *HintRevealMutation) Tier() (r int, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the HintReveal entity.
// If the HintReveal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintRevealMutation) OldTier(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// AddTier adds i to the "tier" field.
func (m *HintRevealMutation) AddTier(i int) {
	if m.addtier != nil {
		*m.addtier += i
	} else {
		m.addtier = &i
	}
}

// AddedTier returns the value that was added to the "tier" field in this mutation.
func (m *HintRevealMutation) AddedTier() (r int, exists bool) {
	v := m.addtier
	if v == nil {
		return
	}
	return *v, true
}

// ResetTier resets all changes to the "tier" field.
func (m *HintRevealMutation) ResetTier() {
	m.tier = nil
	m.addtier = nil
}

// SetRevealedAt sets the "revealed_at" field.
func (m *HintRevealMutation) SetRevealedAt(t time.Time) {
	m.revealed_at = &t
}

// RevealedAt returns the value of the "revealed_at" field in the mutation.
func (m *HintRevealMutation) RevealedAt() (r time.Time, exists bool) {
	v := m.revealed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevealedAt returns the old "revealed_at" field's value of the HintReveal entity.
// If the HintReveal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HintRevealMutation) OldRevealedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevealedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevealedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevealedAt: %w", err)
	}
	return oldValue.RevealedAt, nil
}

// ResetRevealedAt resets all changes to the "revealed_at" field.
func (m *HintRevealMutation) ResetRevealedAt() {
	m.revealed_at = nil
}

// Where appends a list predicates to the HintRevealMutation builder.
func (m *HintRevealMutation) Where(ps ...predicate.HintReveal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HintRevealMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HintRevealMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HintReveal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HintRevealMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HintRevealMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HintReveal).
func (m *HintRevealMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HintRevealMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.track != nil {
		fields = append(fields, hintreveal.FieldTrack)
	}
	if m.chapter_run_id != nil {
		fields = append(fields, hintreveal.FieldChapterRunID)
	}
	if m.step_id != nil {
		fields = append(fields, hintreveal.FieldStepID)
	}
	if m.tier != nil {
		fields = append(fields, hintreveal.FieldTier)
	}
	if m.revealed_at != nil {
		fields = append(fields, hintreveal.FieldRevealedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HintRevealMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hintreveal.FieldTrack:
		return m.Track()
	case hintreveal.FieldChapterRunID:
		return m.ChapterRunID()
	case hintreveal.FieldStepID:
		return m.StepID()
	case hintreveal.FieldTier:
		return m.Tier()
	case hintreveal.FieldRevealedAt:
		return m.RevealedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HintRevealMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hintreveal.FieldTrack:
		return m.OldTrack(ctx)
	case hintreveal.FieldChapterRunID:
		return m.OldChapterRunID(ctx)
	case hintreveal.FieldStepID:
		return m.OldStepID(ctx)
	case hintreveal.FieldTier:
		return m.OldTier(ctx)
	case hintreveal.FieldRevealedAt:
		return m.OldRevealedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HintReveal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HintRevealMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hintreveal.FieldTrack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrack(v)
		return nil
	case hintreveal.FieldChapterRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterRunID(v)
		return nil
	case hintreveal.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case hintreveal.FieldTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case hintreveal.FieldRevealedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevealedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HintReveal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HintRevealMutation) AddedFields() []string {
	var fields []string
	if m.addtier != nil {
		fields = append(fields, hintreveal.FieldTier)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HintRevealMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hintreveal.FieldTier:
		return m.AddedTier()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HintRevealMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hintreveal.FieldTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTier(v)
		return nil
	}
	return fmt.Errorf("unknown HintReveal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HintRevealMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HintRevealMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HintRevealMutation) ClearField(name string) error {
	return fmt.Errorf("unknown HintReveal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HintRevealMutation) ResetField(name string) error {
	switch name {
	case hintreveal.FieldTrack:
		m.ResetTrack()
		return nil
	case hintreveal.FieldChapterRunID:
		m.ResetChapterRunID()
		return nil
	case hintreveal.FieldStepID:
		m.ResetStepID()
		return nil
	case hintreveal.FieldTier:
		m.ResetTier()
		return nil
	case hintreveal.FieldRevealedAt:
		m.ResetRevealedAt()
		return nil
	}
	return fmt.Errorf("unknown HintReveal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HintRevealMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HintRevealMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HintRevealMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HintRevealMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HintRevealMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HintRevealMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HintRevealMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown HintReveal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HintRevealMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown HintReveal edge %s", name)
}

// MessageAttemptMutation represents an operation that mutates the MessageAttempt nodes in the graph.
type MessageAttemptMutation struct {
	config
	op             Op
	typ            string
	id             *string
	track          *string
	chapter_run_id *string
	step_id        *string
	role           *string
	channel        *string
	recipient      *string
	status         *string
	created_at     *time.Time
	scheduled_at   *time.Time
	sent_at        *time.Time
	delivered_at   *time.Time
	error          *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*MessageAttempt, error)
	predicates     []predicate.MessageAttempt
}

var _ ent.Mutation = (*MessageAttemptMutation)(nil)

// messageattemptOption allows management of the mutation configuration using functional options.
type messageattemptOption func(*MessageAttemptMutation)

// newMessageAttemptMutation creates new mutation for the MessageAttempt entity.
func newMessageAttemptMutation(c config, op Op, opts ...messageattemptOption) *MessageAttemptMutation {
	m := &MessageAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageAttemptID sets the ID field of the mutation.
func withMessageAttemptID(id string) messageattemptOption {
	return func(m *MessageAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageAttempt
		)
		m.oldValue = func(ctx context.Context) (*MessageAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageAttempt sets the old MessageAttempt of the mutation.
func withMessageAttempt(node *MessageAttempt) messageattemptOption {
	return func(m *MessageAttemptMutation) {
		m.oldValue = func(context.Context) (*MessageAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MessageAttempt entities.
func (m *MessageAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTrack sets the "track" field.
func (m *MessageAttemptMutation) SetTrack(s string) {
	m.track = &s
}

// Track returns the value of the "track" field in the mutation.
func (m *MessageAttemptMutation) Track() (r string, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrack returns the old "track" field's value of the MessageAttempt entity.
// If the MessageAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageAttemptMutation) OldTrack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrack: %w", err)
	}
	return oldValue.Track, nil
}

// ResetTrack resets all changes to the "track" field.
func (m *MessageAttemptMutation) ResetTrack() {
	m.track = nil
}

// SetChapterRunID sets the "chapter_run_id" field.
func (m *MessageAttemptMutation) SetChapterRunID(s string) {
	m.chapter_run_id = &s
}

// ChapterRunID returns the value of the "chapter_run_id" field in the mutation.
func (m *MessageAttemptMutation) ChapterRunID() (r string, exists bool) {
	v := m.chapter_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterRunID returns the old "chapter_run_id" field's value of the MessageAttempt entity.
// If the MessageAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageAttemptMutation) OldChapterRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterRunID: %w", err)
	}
	return oldValue.ChapterRunID, nil
}

// ResetChapterRunID resets all changes to the "chapter_run_id" field.
func (m *MessageAttemptMutation) ResetChapterRunID() {
	m.chapter_run_id = nil
}

// SetStepID sets the "step_id" field.
func (m *MessageAttemptMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *MessageAttemptMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the MessageAttempt entity.
// If the MessageAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageAttemptMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *MessageAttemptMutation) ResetStepID() {
	m.step_id = nil
}

// SetRole sets the "role" field.
func (m *MessageAttemptMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageAttemptMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the MessageAttempt entity.
// If the MessageAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageAttemptMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageAttemptMutation) ResetRole() {
	m.role = nil
}

// SetChannel sets the "channel" field.
func (m *MessageAttemptMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *MessageAttemptMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the MessageAttempt entity.
// If the MessageAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageAttemptMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *MessageAttemptMutation) ResetChannel() {
	m.channel = nil
}

// SetRecipient sets the "recipient" field.
func (m *MessageAttemptMutation) SetRecipient(s string) {
	m.recipient = &s
}

// Recipient returns the value of the "recipient" field in the mutation.
func (m *MessageAttemptMutation) Recipient() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipient returns the old "recipient" field's value of the MessageAttempt entity.
// If the MessageAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageAttemptMutation) OldRecipient(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipient: %w", err)
	}
	return oldValue.Recipient, nil
}

// ResetRecipient resets all changes to the "recipient" field.
func (m *MessageAttemptMutation) ResetRecipient() {
	m.recipient = nil
}

// SetStatus sets the "status" field.
func (m *MessageAttemptMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *MessageAttemptMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MessageAttempt entity.
// If the MessageAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageAttemptMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MessageAttemptMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MessageAttempt entity.
// If the MessageAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *MessageAttemptMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *MessageAttemptMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the MessageAttempt entity.
// If the MessageAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageAttemptMutation) OldScheduledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (m *MessageAttemptMutation) ClearScheduledAt() {
	m.scheduled_at = nil
	m.clearedFields[messageattempt.FieldScheduledAt] = struct{}{}
}

// ScheduledAtCleared returns if the "scheduled_at" field was cleared in this mutation.
func (m *MessageAttemptMutation) ScheduledAtCleared() bool {
	_, ok := m.clearedFields[messageattempt.FieldScheduledAt]
	return ok
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *MessageAttemptMutation) ResetScheduledAt() {
	m.scheduled_at = nil
	delete(m.clearedFields, messageattempt.FieldScheduledAt)
}

// SetSentAt sets the "sent_at" field.
func (m *MessageAttemptMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *MessageAttemptMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the MessageAttempt entity.
// If the MessageAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageAttemptMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *MessageAttemptMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[messageattempt.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *MessageAttemptMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[messageattempt.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *MessageAttemptMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, messageattempt.FieldSentAt)
}

// SetDeliveredAt sets the "delivered_at" field.
func (m *MessageAttemptMutation) SetDeliveredAt(t time.Time) {
	m.delivered_at = &t
}

// DeliveredAt returns the value of the "delivered_at" field in the mutation.
func (m *MessageAttemptMutation) DeliveredAt() (r time.Time, exists bool) {
	v := m.delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredAt returns the old "delivered_at" field's value of the MessageAttempt entity.
// If the MessageAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageAttemptMutation) OldDeliveredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredAt: %w", err)
	}
	return oldValue.DeliveredAt, nil
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (m *MessageAttemptMutation) ClearDeliveredAt() {
	m.delivered_at = nil
	m.clearedFields[messageattempt.FieldDeliveredAt] = struct{}{}
}

// DeliveredAtCleared returns if the "delivered_at" field was cleared in this mutation.
func (m *MessageAttemptMutation) DeliveredAtCleared() bool {
	_, ok := m.clearedFields[messageattempt.FieldDeliveredAt]
	return ok
}

// ResetDeliveredAt resets all changes to the "delivered_at" field.
func (m *MessageAttemptMutation) ResetDeliveredAt() {
	m.delivered_at = nil
	delete(m.clearedFields, messageattempt.FieldDeliveredAt)
}

// SetError sets the "error" field.
func (m *MessageAttemptMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *MessageAttemptMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the MessageAttempt entity.
// If the MessageAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageAttemptMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *MessageAttemptMutation) ClearError() {
	m.error = nil
	m.clearedFields[messageattempt.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *MessageAttemptMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[messageattempt.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *MessageAttemptMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, messageattempt.FieldError)
}

// Where appends a list predicates to the MessageAttemptMutation builder.
func (m *MessageAttemptMutation) Where(ps ...predicate.MessageAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageAttempt).
func (m *MessageAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageAttemptMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.track != nil {
		fields = append(fields, messageattempt.FieldTrack)
	}
	if m.chapter_run_id != nil {
		fields = append(fields, messageattempt.FieldChapterRunID)
	}
	if m.step_id != nil {
		fields = append(fields, messageattempt.FieldStepID)
	}
	if m.role != nil {
		fields = append(fields, messageattempt.FieldRole)
	}
	if m.channel != nil {
		fields = append(fields, messageattempt.FieldChannel)
	}
	if m.recipient != nil {
		fields = append(fields, messageattempt.FieldRecipient)
	}
	if m.status != nil {
		fields = append(fields, messageattempt.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, messageattempt.FieldCreatedAt)
	}
	if m.scheduled_at != nil {
		fields = append(fields, messageattempt.FieldScheduledAt)
	}
	if m.sent_at != nil {
		fields = append(fields, messageattempt.FieldSentAt)
	}
	if m.delivered_at != nil {
		fields = append(fields, messageattempt.FieldDeliveredAt)
	}
	if m.error != nil {
		fields = append(fields, messageattempt.FieldError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messageattempt.FieldTrack:
		return m.Track()
	case messageattempt.FieldChapterRunID:
		return m.ChapterRunID()
	case messageattempt.FieldStepID:
		return m.StepID()
	case messageattempt.FieldRole:
		return m.Role()
	case messageattempt.FieldChannel:
		return m.Channel()
	case messageattempt.FieldRecipient:
		return m.Recipient()
	case messageattempt.FieldStatus:
		return m.Status()
	case messageattempt.FieldCreatedAt:
		return m.CreatedAt()
	case messageattempt.FieldScheduledAt:
		return m.ScheduledAt()
	case messageattempt.FieldSentAt:
		return m.SentAt()
	case messageattempt.FieldDeliveredAt:
		return m.DeliveredAt()
	case messageattempt.FieldError:
		return m.Error()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messageattempt.FieldTrack:
		return m.OldTrack(ctx)
	case messageattempt.FieldChapterRunID:
		return m.OldChapterRunID(ctx)
	case messageattempt.FieldStepID:
		return m.OldStepID(ctx)
	case messageattempt.FieldRole:
		return m.OldRole(ctx)
	case messageattempt.FieldChannel:
		return m.OldChannel(ctx)
	case messageattempt.FieldRecipient:
		return m.OldRecipient(ctx)
	case messageattempt.FieldStatus:
		return m.OldStatus(ctx)
	case messageattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case messageattempt.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case messageattempt.FieldSentAt:
		return m.OldSentAt(ctx)
	case messageattempt.FieldDeliveredAt:
		return m.OldDeliveredAt(ctx)
	case messageattempt.FieldError:
		return m.OldError(ctx)
	}
	return nil, fmt.Errorf("unknown MessageAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messageattempt.FieldTrack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrack(v)
		return nil
	case messageattempt.FieldChapterRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterRunID(v)
		return nil
	case messageattempt.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case messageattempt.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case messageattempt.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case messageattempt.FieldRecipient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipient(v)
		return nil
	case messageattempt.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case messageattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case messageattempt.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case messageattempt.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case messageattempt.FieldDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredAt(v)
		return nil
	case messageattempt.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	}
	return fmt.Errorf("unknown MessageAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageAttemptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageAttemptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MessageAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(messageattempt.FieldScheduledAt) {
		fields = append(fields, messageattempt.FieldScheduledAt)
	}
	if m.FieldCleared(messageattempt.FieldSentAt) {
		fields = append(fields, messageattempt.FieldSentAt)
	}
	if m.FieldCleared(messageattempt.FieldDeliveredAt) {
		fields = append(fields, messageattempt.FieldDeliveredAt)
	}
	if m.FieldCleared(messageattempt.FieldError) {
		fields = append(fields, messageattempt.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageAttemptMutation) ClearField(name string) error {
	switch name {
	case messageattempt.FieldScheduledAt:
		m.ClearScheduledAt()
		return nil
	case messageattempt.FieldSentAt:
		m.ClearSentAt()
		return nil
	case messageattempt.FieldDeliveredAt:
		m.ClearDeliveredAt()
		return nil
	case messageattempt.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown MessageAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageAttemptMutation) ResetField(name string) error {
	switch name {
	case messageattempt.FieldTrack:
		m.ResetTrack()
		return nil
	case messageattempt.FieldChapterRunID:
		m.ResetChapterRunID()
		return nil
	case messageattempt.FieldStepID:
		m.ResetStepID()
		return nil
	case messageattempt.FieldRole:
		m.ResetRole()
		return nil
	case messageattempt.FieldChannel:
		m.ResetChannel()
		return nil
	case messageattempt.FieldRecipient:
		m.ResetRecipient()
		return nil
	case messageattempt.FieldStatus:
		m.ResetStatus()
		return nil
	case messageattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case messageattempt.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case messageattempt.FieldSentAt:
		m.ResetSentAt()
		return nil
	case messageattempt.FieldDeliveredAt:
		m.ResetDeliveredAt()
		return nil
	case messageattempt.FieldError:
		m.ResetError()
		return nil
	}
	return fmt.Errorf("unknown MessageAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MessageAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MessageAttempt edge %s", name)
}

// QuizAnswerMutation represents an operation that mutates the QuizAnswer nodes in the graph.
type QuizAnswerMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	track              *string
	chapter_run_id     *string
	step_id            *string
	question_index     *int
	addquestion_index  *int
	selected_option    *int
	addselected_option *int
	correct            *bool
	answered_at        *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*QuizAnswer, error)
	predicates         []predicate.QuizAnswer
}

var _ ent.Mutation = (*QuizAnswerMutation)(nil)

// quizanswerOption allows management of the mutation configuration using functional options.
type quizanswerOption func(*QuizAnswerMutation)

// newQuizAnswerMutation creates new mutation for the QuizAnswer entity.
func newQuizAnswerMutation(c config, op Op, opts ...quizanswerOption) *QuizAnswerMutation {
	m := &QuizAnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizAnswerID sets the ID field of the mutation.
func withQuizAnswerID(id int) quizanswerOption {
	return func(m *QuizAnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizAnswer
		)
		m.oldValue = func(ctx context.Context) (*QuizAnswer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizAnswer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizAnswer sets the old QuizAnswer of the mutation.
func withQuizAnswer(node *QuizAnswer) quizanswerOption {
	return func(m *QuizAnswerMutation) {
		m.oldValue = func(context.Context) (*QuizAnswer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizAnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizAnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizAnswerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizAnswerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizAnswer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTrack sets the "track" field.
func (m *QuizAnswerMutation) SetTrack(s string) {
	m.track = &s
}

// Track returns the value of the "track" field in the mutation.
func (m *QuizAnswerMutation) Track() (r string, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrack returns the old "track" field's value of the QuizAnswer entity.
// If the QuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerMutation) OldTrack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrack: %w", err)
	}
	return oldValue.Track, nil
}

// ResetTrack resets all changes to the "track" field.
func (m *QuizAnswerMutation) ResetTrack() {
	m.track = nil
}

// SetChapterRunID sets the "chapter_run_id" field.
func (m *QuizAnswerMutation) SetChapterRunID(s string) {
	m.chapter_run_id = &s
}

// ChapterRunID returns the value of the "chapter_run_id" field in the mutation.
func (m *QuizAnswerMutation) ChapterRunID() (r string, exists bool) {
	v := m.chapter_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterRunID returns the old "chapter_run_id" field's value of the QuizAnswer entity.
// If the QuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerMutation) OldChapterRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterRunID: %w", err)
	}
	return oldValue.ChapterRunID, nil
}

// ResetChapterRunID resets all changes to the "chapter_run_id" field.
func (m *QuizAnswerMutation) ResetChapterRunID() {
	m.chapter_run_id = nil
}

// SetStepID sets the "step_id" field.
func (m *QuizAnswerMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *QuizAnswerMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the QuizAnswer entity.
// If the QuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *QuizAnswerMutation) ResetStepID() {
	m.step_id = nil
}

// SetQuestionIndex sets the "question_index" field.
func (m *QuizAnswerMutation) SetQuestionIndex(i int) {
	m.question_index = &i
	m.addquestion_index = nil
}

// QuestionIndex returns the value of the "question_index" field in the mutation.
func (m *QuizAnswerMutation) QuestionIndex() (r int, exists bool) {
	v := m.question_index
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionIndex returns the old "question_index" field's value of the QuizAnswer entity.
// If the QuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerMutation) OldQuestionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionIndex: %w", err)
	}
	return oldValue.QuestionIndex, nil
}

// AddQuestionIndex adds i to the "question_index" field.
func (m *QuizAnswerMutation) AddQuestionIndex(i int) {
	if m.addquestion_index != nil {
		*m.addquestion_index += i
	} else {
		m.addquestion_index = &i
	}
}

// AddedQuestionIndex returns the value that was added to the "question_index" field in this mutation.
func (m *QuizAnswerMutation) AddedQuestionIndex() (r int, exists bool) {
	v := m.addquestion_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionIndex resets all changes to the "question_index" field.
func (m *QuizAnswerMutation) ResetQuestionIndex() {
	m.question_index = nil
	m.addquestion_index = nil
}

// SetSelectedOption sets the "selected_option" field.
func (m *QuizAnswerMutation) SetSelectedOption(i int) {
	m.selected_option = &i
	m.addselected_option = nil
}

// SelectedOption returns the value of the "selected_option" field in the mutation.
func (m *QuizAnswerMutation) SelectedOption() (r int, exists bool) {
	v := m.selected_option
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedOption returns the old "selected_option" field's value of the QuizAnswer entity.
// If the QuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerMutation) OldSelectedOption(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedOption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedOption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedOption: %w", err)
	}
	return oldValue.SelectedOption, nil
}

// AddSelectedOption adds i to the "selected_option" field.
func (m *QuizAnswerMutation) AddSelectedOption(i int) {
	if m.addselected_option != nil {
		*m.addselected_option += i
	} else {
		m.addselected_option = &i
	}
}

// AddedSelectedOption returns the value that was added to the "selected_option" field in this mutation.
func (m *QuizAnswerMutation) AddedSelectedOption() (r int, exists bool) {
	v := m.addselected_option
	if v == nil {
		return
	}
	return *v, true
}

// ResetSelectedOption resets all changes to the "selected_option" field.
func (m *QuizAnswerMutation) ResetSelectedOption() {
	m.selected_option = nil
	m.addselected_option = nil
}

// SetCorrect sets the "correct" field.
func (m *QuizAnswerMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *QuizAnswerMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the QuizAnswer entity.
// If the QuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *QuizAnswerMutation) ResetCorrect() {
	m.correct = nil
}

// SetAnsweredAt sets the "answered_at" field.
func (m *QuizAnswerMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *QuizAnswerMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the QuizAnswer entity.
// If the QuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerMutation) OldAnsweredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *QuizAnswerMutation) ResetAnsweredAt() {
	m.answered_at = nil
}

// Where appends a list predicates to the QuizAnswerMutation builder.
func (m *QuizAnswerMutation) Where(ps ...predicate.QuizAnswer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizAnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizAnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizAnswer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizAnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizAnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizAnswer).
func (m *QuizAnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizAnswerMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.track != nil {
		fields = append(fields, quizanswer.FieldTrack)
	}
	if m.chapter_run_id != nil {
		fields = append(fields, quizanswer.FieldChapterRunID)
	}
	if m.step_id != nil {
		fields = append(fields, quizanswer.FieldStepID)
	}
	if m.question_index != nil {
		fields = append(fields, quizanswer.FieldQuestionIndex)
	}
	if m.selected_option != nil {
		fields = append(fields, quizanswer.FieldSelectedOption)
	}
	if m.correct != nil {
		fields = append(fields, quizanswer.FieldCorrect)
	}
	if m.answered_at != nil {
		fields = append(fields, quizanswer.FieldAnsweredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizAnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizanswer.FieldTrack:
		return m.Track()
	case quizanswer.FieldChapterRunID:
		return m.ChapterRunID()
	case quizanswer.FieldStepID:
		return m.StepID()
	case quizanswer.FieldQuestionIndex:
		return m.QuestionIndex()
	case quizanswer.FieldSelectedOption:
		return m.SelectedOption()
	case quizanswer.FieldCorrect:
		return m.Correct()
	case quizanswer.FieldAnsweredAt:
		return m.AnsweredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizAnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizanswer.FieldTrack:
		return m.OldTrack(ctx)
	case quizanswer.FieldChapterRunID:
		return m.OldChapterRunID(ctx)
	case quizanswer.FieldStepID:
		return m.OldStepID(ctx)
	case quizanswer.FieldQuestionIndex:
		return m.OldQuestionIndex(ctx)
	case quizanswer.FieldSelectedOption:
		return m.OldSelectedOption(ctx)
	case quizanswer.FieldCorrect:
		return m.OldCorrect(ctx)
	case quizanswer.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuizAnswer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizanswer.FieldTrack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrack(v)
		return nil
	case quizanswer.FieldChapterRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterRunID(v)
		return nil
	case quizanswer.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case quizanswer.FieldQuestionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionIndex(v)
		return nil
	case quizanswer.FieldSelectedOption:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedOption(v)
		return nil
	case quizanswer.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case quizanswer.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAnswer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizAnswerMutation) AddedFields() []string {
	var fields []string
	if m.addquestion_index != nil {
		fields = append(fields, quizanswer.FieldQuestionIndex)
	}
	if m.addselected_option != nil {
		fields = append(fields, quizanswer.FieldSelectedOption)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizAnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizanswer.FieldQuestionIndex:
		return m.AddedQuestionIndex()
	case quizanswer.FieldSelectedOption:
		return m.AddedSelectedOption()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizanswer.FieldQuestionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionIndex(v)
		return nil
	case quizanswer.FieldSelectedOption:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSelectedOption(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAnswer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizAnswerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizAnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizAnswerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuizAnswer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizAnswerMutation) ResetField(name string) error {
	switch name {
	case quizanswer.FieldTrack:
		m.ResetTrack()
		return nil
	case quizanswer.FieldChapterRunID:
		m.ResetChapterRunID()
		return nil
	case quizanswer.FieldStepID:
		m.ResetStepID()
		return nil
	case quizanswer.FieldQuestionIndex:
		m.ResetQuestionIndex()
		return nil
	case quizanswer.FieldSelectedOption:
		m.ResetSelectedOption()
		return nil
	case quizanswer.FieldCorrect:
		m.ResetCorrect()
		return nil
	case quizanswer.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	}
	return fmt.Errorf("unknown QuizAnswer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizAnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizAnswerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizAnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizAnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizAnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizAnswerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizAnswerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizAnswer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizAnswerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizAnswer edge %s", name)
}

// StepCompletionMutation represents an operation that mutates the StepCompletion nodes in the graph.
type StepCompletionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	track          *string
	chapter_run_id *string
	step_id        *string
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*StepCompletion, error)
	predicates     []predicate.StepCompletion
}

var _ ent.Mutation = (*StepCompletionMutation)(nil)

// stepcompletionOption allows management of the mutation configuration using functional options.
type stepcompletionOption func(*StepCompletionMutation)

// newStepCompletionMutation creates new mutation for the StepCompletion entity.
func newStepCompletionMutation(c config, op Op, opts ...stepcompletionOption) *StepCompletionMutation {
	m := &StepCompletionMutation{
		config:        c,
		op:            op,
		typ:           TypeStepCompletion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepCompletionID sets the ID field of the mutation.
func withStepCompletionID(id int) stepcompletionOption {
	return func(m *StepCompletionMutation) {
		var (
			err   error
			once  sync.Once
			value *StepCompletion
		)
		m.oldValue = func(ctx context.Context) (*StepCompletion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepCompletion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepCompletion sets the old StepCompletion of the mutation.
func withStepCompletion(node *StepCompletion) stepcompletionOption {
	return func(m *StepCompletionMutation) {
		m.oldValue = func(context.Context) (*StepCompletion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepCompletionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepCompletionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepCompletionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepCompletionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepCompletion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTrack sets the "track" field.
func (m *StepCompletionMutation) SetTrack(s string) {
	m.track = &s
}

// Track returns the value of the "track" field in the mutation.
func (m *StepCompletionMutation) Track() (r string, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrack returns the old "track" field's value of the StepCompletion entity.
// If the StepCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepCompletionMutation) OldTrack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrack: %w", err)
	}
	return oldValue.Track, nil
}

// ResetTrack resets all changes to the "track" field.
func (m *StepCompletionMutation) ResetTrack() {
	m.track = nil
}

// SetChapterRunID sets the "chapter_run_id" field.
func (m *StepCompletionMutation) SetChapterRunID(s string) {
	m.chapter_run_id = &s
}

// ChapterRunID returns the value of the "chapter_run_id" field in the mutation.
func (m *StepCompletionMutation) ChapterRunID() (r string, exists bool) {
	v := m.chapter_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterRunID returns the old "chapter_run_id" field's value of the StepCompletion entity.
// If the StepCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepCompletionMutation) OldChapterRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterRunID: %w", err)
	}
	return oldValue.ChapterRunID, nil
}

// ResetChapterRunID resets all changes to the "chapter_run_id" field.
func (m *StepCompletionMutation) ResetChapterRunID() {
	m.chapter_run_id = nil
}

// SetStepID sets the "step_id" field.
func (m *StepCompletionMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *StepCompletionMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the StepCompletion entity.
// If the StepCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepCompletionMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *StepCompletionMutation) ResetStepID() {
	m.step_id = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *StepCompletionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StepCompletionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StepCompletion entity.
// If the StepCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepCompletionMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StepCompletionMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// Where appends a list predicates to the StepCompletionMutation builder.
func (m *StepCompletionMutation) Where(ps ...predicate.StepCompletion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepCompletionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepCompletionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepCompletion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepCompletionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepCompletionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepCompletion).
func (m *StepCompletionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepCompletionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.track != nil {
		fields = append(fields, stepcompletion.FieldTrack)
	}
	if m.chapter_run_id != nil {
		fields = append(fields, stepcompletion.FieldChapterRunID)
	}
	if m.step_id != nil {
		fields = append(fields, stepcompletion.FieldStepID)
	}
	if m.completed_at != nil {
		fields = append(fields, stepcompletion.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepCompletionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepcompletion.FieldTrack:
		return m.Track()
	case stepcompletion.FieldChapterRunID:
		return m.ChapterRunID()
	case stepcompletion.FieldStepID:
		return m.StepID()
	case stepcompletion.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepCompletionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepcompletion.FieldTrack:
		return m.OldTrack(ctx)
	case stepcompletion.FieldChapterRunID:
		return m.OldChapterRunID(ctx)
	case stepcompletion.FieldStepID:
		return m.OldStepID(ctx)
	case stepcompletion.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StepCompletion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepCompletionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepcompletion.FieldTrack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrack(v)
		return nil
	case stepcompletion.FieldChapterRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterRunID(v)
		return nil
	case stepcompletion.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case stepcompletion.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StepCompletion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepCompletionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepCompletionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepCompletionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StepCompletion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepCompletionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepCompletionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepCompletionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StepCompletion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepCompletionMutation) ResetField(name string) error {
	switch name {
	case stepcompletion.FieldTrack:
		m.ResetTrack()
		return nil
	case stepcompletion.FieldChapterRunID:
		m.ResetChapterRunID()
		return nil
	case stepcompletion.FieldStepID:
		m.ResetStepID()
		return nil
	case stepcompletion.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown StepCompletion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepCompletionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepCompletionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepCompletionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepCompletionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepCompletionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepCompletionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepCompletionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StepCompletion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepCompletionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StepCompletion edge %s", name)
}
