// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/halvard/paperchase/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/halvard/paperchase/ent/chapterrun"
	"github.com/halvard/paperchase/ent/hintreveal"
	"github.com/halvard/paperchase/ent/messageattempt"
	"github.com/halvard/paperchase/ent/quizanswer"
	"github.com/halvard/paperchase/ent/stepcompletion"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChapterRun is the client for interacting with the ChapterRun builders.
	ChapterRun *ChapterRunClient
	// HintReveal is the client for interacting with the HintReveal builders.
	HintReveal *HintRevealClient
	// MessageAttempt is the client for interacting with the MessageAttempt builders.
	MessageAttempt *MessageAttemptClient
	// QuizAnswer is the client for interacting with the QuizAnswer builders.
	QuizAnswer *QuizAnswerClient
	// StepCompletion is the client for interacting with the StepCompletion builders.
	StepCompletion *StepCompletionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChapterRun = NewChapterRunClient(c.config)
	c.HintReveal = NewHintRevealClient(c.config)
	c.MessageAttempt = NewMessageAttemptClient(c.config)
	c.QuizAnswer = NewQuizAnswerClient(c.config)
	c.StepCompletion = NewStepCompletionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ChapterRun:     NewChapterRunClient(cfg),
		HintReveal:     NewHintRevealClient(cfg),
		MessageAttempt: NewMessageAttemptClient(cfg),
		QuizAnswer:     NewQuizAnswerClient(cfg),
		StepCompletion: NewStepCompletionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ChapterRun:     NewChapterRunClient(cfg),
		HintReveal:     NewHintRevealClient(cfg),
		MessageAttempt: NewMessageAttemptClient(cfg),
		QuizAnswer:     NewQuizAnswerClient(cfg),
		StepCompletion: NewStepCompletionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChapterRun.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ChapterRun.Use(hooks...)
	c.HintReveal.Use(hooks...)
	c.MessageAttempt.Use(hooks...)
	c.QuizAnswer.Use(hooks...)
	c.StepCompletion.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ChapterRun.Intercept(interceptors...)
	c.HintReveal.Intercept(interceptors...)
	c.MessageAttempt.Intercept(interceptors...)
	c.QuizAnswer.Intercept(interceptors...)
	c.StepCompletion.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChapterRunMutation:
		return c.ChapterRun.mutate(ctx, m)
	case *HintRevealMutation:
		return c.HintReveal.mutate(ctx, m)
	case *MessageAttemptMutation:
		return c.MessageAttempt.mutate(ctx, m)
	case *QuizAnswerMutation:
		return c.QuizAnswer.mutate(ctx, m)
	case *StepCompletionMutation:
		return c.StepCompletion.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChapterRunClient is a client for the ChapterRun schema.
type ChapterRunClient struct {
	config
}

// NewChapterRunClient returns a client for the ChapterRun from the given config.
func NewChapterRunClient(c config) *ChapterRunClient {
	return &ChapterRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chapterrun.Hooks(f(g(h())))`.
func (c *ChapterRunClient) Use(hooks ...Hook) {
	c.hooks.ChapterRun = append(c.hooks.ChapterRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chapterrun.Intercept(f(g(h())))`.
func (c *ChapterRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChapterRun = append(c.inters.ChapterRun, interceptors...)
}

// Create returns a builder for creating a ChapterRun entity.
func (c *ChapterRunClient) Create() *ChapterRunCreate {
	mutation := newChapterRunMutation(c.config, OpCreate)
	return &ChapterRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChapterRun entities.
func (c *ChapterRunClient) CreateBulk(builders ...*ChapterRunCreate) *ChapterRunCreateBulk {
	return &ChapterRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChapterRunClient) MapCreateBulk(slice any, setFunc func(*ChapterRunCreate, int)) *ChapterRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChapterRunCreateBulk{err: fmt.Errorf("calling to ChapterRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChapterRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChapterRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChapterRun.
func (c *ChapterRunClient) Update() *ChapterRunUpdate {
	mutation := newChapterRunMutation(c.config, OpUpdate)
	return &ChapterRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChapterRunClient) UpdateOne(_m *ChapterRun) *ChapterRunUpdateOne {
	mutation := newChapterRunMutation(c.config, OpUpdateOne, withChapterRun(_m))
	return &ChapterRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChapterRunClient) UpdateOneID(id string) *ChapterRunUpdateOne {
	mutation := newChapterRunMutation(c.config, OpUpdateOne, withChapterRunID(id))
	return &ChapterRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChapterRun.
func (c *ChapterRunClient) Delete() *ChapterRunDelete {
	mutation := newChapterRunMutation(c.config, OpDelete)
	return &ChapterRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChapterRunClient) DeleteOne(_m *ChapterRun) *ChapterRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChapterRunClient) DeleteOneID(id string) *ChapterRunDeleteOne {
	builder := c.Delete().Where(chapterrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChapterRunDeleteOne{builder}
}

// Query returns a query builder for ChapterRun.
func (c *ChapterRunClient) Query() *ChapterRunQuery {
	return &ChapterRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChapterRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ChapterRun entity by its id.
func (c *ChapterRunClient) Get(ctx context.Context, id string) (*ChapterRun, error) {
	return c.Query().Where(chapterrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChapterRunClient) GetX(ctx context.Context, id string) *ChapterRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChapterRunClient) Hooks() []Hook {
	return c.hooks.ChapterRun
}

// Interceptors returns the client interceptors.
func (c *ChapterRunClient) Interceptors() []Interceptor {
	return c.inters.ChapterRun
}

func (c *ChapterRunClient) mutate(ctx context.Context, m *ChapterRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChapterRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChapterRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChapterRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChapterRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChapterRun mutation op: %q", m.Op())
	}
}

// HintRevealClient is a client for the HintReveal schema.
type HintRevealClient struct {
	config
}

// NewHintRevealClient returns a client for the HintReveal from the given config.
func NewHintRevealClient(c config) *HintRevealClient {
	return &HintRevealClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hintreveal.Hooks(f(g(h())))`.
func (c *HintRevealClient) Use(hooks ...Hook) {
	c.hooks.HintReveal = append(c.hooks.HintReveal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hintreveal.Intercept(f(g(h())))`.
func (c *HintRevealClient) Intercept(interceptors ...Interceptor) {
	c.inters.HintReveal = append(c.inters.HintReveal, interceptors...)
}

// Create returns a builder for creating a HintReveal entity.
func (c *HintRevealClient) Create() *HintRevealCreate {
	mutation := newHintRevealMutation(c.config, OpCreate)
	return &HintRevealCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HintReveal entities.
func (c *HintRevealClient) CreateBulk(builders ...*HintRevealCreate) *HintRevealCreateBulk {
	return &HintRevealCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HintRevealClient) MapCreateBulk(slice any, setFunc func(*HintRevealCreate, int)) *HintRevealCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HintRevealCreateBulk{err: fmt.Errorf("calling to HintRevealClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HintRevealCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HintRevealCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HintReveal.
func (c *HintRevealClient) Update() *HintRevealUpdate {
	mutation := newHintRevealMutation(c.config, OpUpdate)
	return &HintRevealUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HintRevealClient) UpdateOne(_m *HintReveal) *HintRevealUpdateOne {
	mutation := newHintRevealMutation(c.config, OpUpdateOne, withHintReveal(_m))
	return &HintRevealUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HintRevealClient) UpdateOneID(id int) *HintRevealUpdateOne {
	mutation := newHintRevealMutation(c.config, OpUpdateOne, withHintRevealID(id))
	return &HintRevealUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HintReveal.
func (c *HintRevealClient) Delete() *HintRevealDelete {
	mutation := newHintRevealMutation(c.config, OpDelete)
	return &HintRevealDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HintRevealClient) DeleteOne(_m *HintReveal) *HintRevealDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HintRevealClient) DeleteOneID(id int) *HintRevealDeleteOne {
	builder := c.Delete().Where(hintreveal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HintRevealDeleteOne{builder}
}

// Query returns a query builder for HintReveal.
func (c *HintRevealClient) Query() *HintRevealQuery {
	return &HintRevealQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHintReveal},
		inters: c.Interceptors(),
	}
}

// Get returns a HintReveal entity by its id.
func (c *HintRevealClient) Get(ctx context.Context, id int) (*HintReveal, error) {
	return c.Query().Where(hintreveal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HintRevealClient) GetX(ctx context.Context, id int) *HintReveal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HintRevealClient) Hooks() []Hook {
	return c.hooks.HintReveal
}

// Interceptors returns the client interceptors.
func (c *HintRevealClient) Interceptors() []Interceptor {
	return c.inters.HintReveal
}

func (c *HintRevealClient) mutate(ctx context.Context, m *HintRevealMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HintRevealCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HintRevealUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HintRevealUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HintRevealDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HintReveal mutation op: %q", m.Op())
	}
}

// MessageAttemptClient is a client for the MessageAttempt schema.
type MessageAttemptClient struct {
	config
}

// NewMessageAttemptClient returns a client for the MessageAttempt from the given config.
func NewMessageAttemptClient(c config) *MessageAttemptClient {
	return &MessageAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messageattempt.Hooks(f(g(h())))`.
func (c *MessageAttemptClient) Use(hooks ...Hook) {
	c.hooks.MessageAttempt = append(c.hooks.MessageAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messageattempt.Intercept(f(g(h())))`.
func (c *MessageAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageAttempt = append(c.inters.MessageAttempt, interceptors...)
}

// Create returns a builder for creating a MessageAttempt entity.
func (c *MessageAttemptClient) Create() *MessageAttemptCreate {
	mutation := newMessageAttemptMutation(c.config, OpCreate)
	return &MessageAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageAttempt entities.
func (c *MessageAttemptClient) CreateBulk(builders ...*MessageAttemptCreate) *MessageAttemptCreateBulk {
	return &MessageAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageAttemptClient) MapCreateBulk(slice any, setFunc func(*MessageAttemptCreate, int)) *MessageAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageAttemptCreateBulk{err: fmt.Errorf("calling to MessageAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageAttempt.
func (c *MessageAttemptClient) Update() *MessageAttemptUpdate {
	mutation := newMessageAttemptMutation(c.config, OpUpdate)
	return &MessageAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageAttemptClient) UpdateOne(_m *MessageAttempt) *MessageAttemptUpdateOne {
	mutation := newMessageAttemptMutation(c.config, OpUpdateOne, withMessageAttempt(_m))
	return &MessageAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageAttemptClient) UpdateOneID(id string) *MessageAttemptUpdateOne {
	mutation := newMessageAttemptMutation(c.config, OpUpdateOne, withMessageAttemptID(id))
	return &MessageAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageAttempt.
func (c *MessageAttemptClient) Delete() *MessageAttemptDelete {
	mutation := newMessageAttemptMutation(c.config, OpDelete)
	return &MessageAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageAttemptClient) DeleteOne(_m *MessageAttempt) *MessageAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageAttemptClient) DeleteOneID(id string) *MessageAttemptDeleteOne {
	builder := c.Delete().Where(messageattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageAttemptDeleteOne{builder}
}

// Query returns a query builder for MessageAttempt.
func (c *MessageAttemptClient) Query() *MessageAttemptQuery {
	return &MessageAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageAttempt entity by its id.
func (c *MessageAttemptClient) Get(ctx context.Context, id string) (*MessageAttempt, error) {
	return c.Query().Where(messageattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageAttemptClient) GetX(ctx context.Context, id string) *MessageAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageAttemptClient) Hooks() []Hook {
	return c.hooks.MessageAttempt
}

// Interceptors returns the client interceptors.
func (c *MessageAttemptClient) Interceptors() []Interceptor {
	return c.inters.MessageAttempt
}

func (c *MessageAttemptClient) mutate(ctx context.Context, m *MessageAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageAttempt mutation op: %q", m.Op())
	}
}

// QuizAnswerClient is a client for the QuizAnswer schema.
type QuizAnswerClient struct {
	config
}

// NewQuizAnswerClient returns a client for the QuizAnswer from the given config.
func NewQuizAnswerClient(c config) *QuizAnswerClient {
	return &QuizAnswerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizanswer.Hooks(f(g(h())))`.
func (c *QuizAnswerClient) Use(hooks ...Hook) {
	c.hooks.QuizAnswer = append(c.hooks.QuizAnswer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizanswer.Intercept(f(g(h())))`.
func (c *QuizAnswerClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizAnswer = append(c.inters.QuizAnswer, interceptors...)
}

// Create returns a builder for creating a QuizAnswer entity.
func (c *QuizAnswerClient) Create() *QuizAnswerCreate {
	mutation := newQuizAnswerMutation(c.config, OpCreate)
	return &QuizAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizAnswer entities.
func (c *QuizAnswerClient) CreateBulk(builders ...*QuizAnswerCreate) *QuizAnswerCreateBulk {
	return &QuizAnswerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizAnswerClient) MapCreateBulk(slice any, setFunc func(*QuizAnswerCreate, int)) *QuizAnswerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizAnswerCreateBulk{err: fmt.Errorf("calling to QuizAnswerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizAnswerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizAnswerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizAnswer.
func (c *QuizAnswerClient) Update() *QuizAnswerUpdate {
	mutation := newQuizAnswerMutation(c.config, OpUpdate)
	return &QuizAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizAnswerClient) UpdateOne(_m *QuizAnswer) *QuizAnswerUpdateOne {
	mutation := newQuizAnswerMutation(c.config, OpUpdateOne, withQuizAnswer(_m))
	return &QuizAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizAnswerClient) UpdateOneID(id int) *QuizAnswerUpdateOne {
	mutation := newQuizAnswerMutation(c.config, OpUpdateOne, withQuizAnswerID(id))
	return &QuizAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizAnswer.
func (c *QuizAnswerClient) Delete() *QuizAnswerDelete {
	mutation := newQuizAnswerMutation(c.config, OpDelete)
	return &QuizAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizAnswerClient) DeleteOne(_m *QuizAnswer) *QuizAnswerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizAnswerClient) DeleteOneID(id int) *QuizAnswerDeleteOne {
	builder := c.Delete().Where(quizanswer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizAnswerDeleteOne{builder}
}

// Query returns a query builder for QuizAnswer.
func (c *QuizAnswerClient) Query() *QuizAnswerQuery {
	return &QuizAnswerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizAnswer},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizAnswer entity by its id.
func (c *QuizAnswerClient) Get(ctx context.Context, id int) (*QuizAnswer, error) {
	return c.Query().Where(quizanswer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizAnswerClient) GetX(ctx context.Context, id int) *QuizAnswer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizAnswerClient) Hooks() []Hook {
	return c.hooks.QuizAnswer
}

// Interceptors returns the client interceptors.
func (c *QuizAnswerClient) Interceptors() []Interceptor {
	return c.inters.QuizAnswer
}

func (c *QuizAnswerClient) mutate(ctx context.Context, m *QuizAnswerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizAnswer mutation op: %q", m.Op())
	}
}

// StepCompletionClient is a client for the StepCompletion schema.
type StepCompletionClient struct {
	config
}

// NewStepCompletionClient returns a client for the StepCompletion from the given config.
func NewStepCompletionClient(c config) *StepCompletionClient {
	return &StepCompletionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepcompletion.Hooks(f(g(h())))`.
func (c *StepCompletionClient) Use(hooks ...Hook) {
	c.hooks.StepCompletion = append(c.hooks.StepCompletion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepcompletion.Intercept(f(g(h())))`.
func (c *StepCompletionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepCompletion = append(c.inters.StepCompletion, interceptors...)
}

// Create returns a builder for creating a StepCompletion entity.
func (c *StepCompletionClient) Create() *StepCompletionCreate {
	mutation := newStepCompletionMutation(c.config, OpCreate)
	return &StepCompletionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepCompletion entities.
func (c *StepCompletionClient) CreateBulk(builders ...*StepCompletionCreate) *StepCompletionCreateBulk {
	return &StepCompletionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepCompletionClient) MapCreateBulk(slice any, setFunc func(*StepCompletionCreate, int)) *StepCompletionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepCompletionCreateBulk{err: fmt.Errorf("calling to StepCompletionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepCompletionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepCompletionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepCompletion.
func (c *StepCompletionClient) Update() *StepCompletionUpdate {
	mutation := newStepCompletionMutation(c.config, OpUpdate)
	return &StepCompletionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepCompletionClient) UpdateOne(_m *StepCompletion) *StepCompletionUpdateOne {
	mutation := newStepCompletionMutation(c.config, OpUpdateOne, withStepCompletion(_m))
	return &StepCompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepCompletionClient) UpdateOneID(id int) *StepCompletionUpdateOne {
	mutation := newStepCompletionMutation(c.config, OpUpdateOne, withStepCompletionID(id))
	return &StepCompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepCompletion.
func (c *StepCompletionClient) Delete() *StepCompletionDelete {
	mutation := newStepCompletionMutation(c.config, OpDelete)
	return &StepCompletionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepCompletionClient) DeleteOne(_m *StepCompletion) *StepCompletionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepCompletionClient) DeleteOneID(id int) *StepCompletionDeleteOne {
	builder := c.Delete().Where(stepcompletion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepCompletionDeleteOne{builder}
}

// Query returns a query builder for StepCompletion.
func (c *StepCompletionClient) Query() *StepCompletionQuery {
	return &StepCompletionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepCompletion},
		inters: c.Interceptors(),
	}
}

// Get returns a StepCompletion entity by its id.
func (c *StepCompletionClient) Get(ctx context.Context, id int) (*StepCompletion, error) {
	return c.Query().Where(stepcompletion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepCompletionClient) GetX(ctx context.Context, id int) *StepCompletion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StepCompletionClient) Hooks() []Hook {
	return c.hooks.StepCompletion
}

// Interceptors returns the client interceptors.
func (c *StepCompletionClient) Interceptors() []Interceptor {
	return c.inters.StepCompletion
}

func (c *StepCompletionClient) mutate(ctx context.Context, m *StepCompletionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepCompletionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepCompletionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepCompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepCompletionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepCompletion mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChapterRun, HintReveal, MessageAttempt, QuizAnswer, StepCompletion []ent.Hook
	}
	inters struct {
		ChapterRun, HintReveal, MessageAttempt, QuizAnswer,
		StepCompletion []ent.Interceptor
	}
)
