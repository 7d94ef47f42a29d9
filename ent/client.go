// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/forgeflow/forgeflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeflow/forgeflow/ent/queueentry"
	"github.com/forgeflow/forgeflow/ent/run"
	"github.com/forgeflow/forgeflow/ent/stageexecution"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/ent/validationrequest"
	"github.com/forgeflow/forgeflow/ent/validationresponse"
	"github.com/forgeflow/forgeflow/ent/webhookevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// QueueEntry is the client for interacting with the QueueEntry builders.
	QueueEntry *QueueEntryClient
	// Run is the client for interacting with the Run builders.
	Run *RunClient
	// StageExecution is the client for interacting with the StageExecution builders.
	StageExecution *StageExecutionClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// ValidationRequest is the client for interacting with the ValidationRequest builders.
	ValidationRequest *ValidationRequestClient
	// ValidationResponse is the client for interacting with the ValidationResponse builders.
	ValidationResponse *ValidationResponseClient
	// WebhookEvent is the client for interacting with the WebhookEvent builders.
	WebhookEvent *WebhookEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.QueueEntry = NewQueueEntryClient(c.config)
	c.Run = NewRunClient(c.config)
	c.StageExecution = NewStageExecutionClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.ValidationRequest = NewValidationRequestClient(c.config)
	c.ValidationResponse = NewValidationResponseClient(c.config)
	c.WebhookEvent = NewWebhookEventClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		QueueEntry:         NewQueueEntryClient(cfg),
		Run:                NewRunClient(cfg),
		StageExecution:     NewStageExecutionClient(cfg),
		Task:               NewTaskClient(cfg),
		ValidationRequest:  NewValidationRequestClient(cfg),
		ValidationResponse: NewValidationResponseClient(cfg),
		WebhookEvent:       NewWebhookEventClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		QueueEntry:         NewQueueEntryClient(cfg),
		Run:                NewRunClient(cfg),
		StageExecution:     NewStageExecutionClient(cfg),
		Task:               NewTaskClient(cfg),
		ValidationRequest:  NewValidationRequestClient(cfg),
		ValidationResponse: NewValidationResponseClient(cfg),
		WebhookEvent:       NewWebhookEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		QueueEntry.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.QueueEntry, c.Run, c.StageExecution, c.Task, c.ValidationRequest,
		c.ValidationResponse, c.WebhookEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.QueueEntry, c.Run, c.StageExecution, c.Task, c.ValidationRequest,
		c.ValidationResponse, c.WebhookEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *QueueEntryMutation:
		return c.QueueEntry.mutate(ctx, m)
	case *RunMutation:
		return c.Run.mutate(ctx, m)
	case *StageExecutionMutation:
		return c.StageExecution.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *ValidationRequestMutation:
		return c.ValidationRequest.mutate(ctx, m)
	case *ValidationResponseMutation:
		return c.ValidationResponse.mutate(ctx, m)
	case *WebhookEventMutation:
		return c.WebhookEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// QueueEntryClient is a client for the QueueEntry schema.
type QueueEntryClient struct {
	config
}

// NewQueueEntryClient returns a client for the QueueEntry from the given config.
func NewQueueEntryClient(c config) *QueueEntryClient {
	return &QueueEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queueentry.Hooks(f(g(h())))`.
func (c *QueueEntryClient) Use(hooks ...Hook) {
	c.hooks.QueueEntry = append(c.hooks.QueueEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queueentry.Intercept(f(g(h())))`.
func (c *QueueEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueEntry = append(c.inters.QueueEntry, interceptors...)
}

// Create returns a builder for creating a QueueEntry entity.
func (c *QueueEntryClient) Create() *QueueEntryCreate {
	mutation := newQueueEntryMutation(c.config, OpCreate)
	return &QueueEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueEntry entities.
func (c *QueueEntryClient) CreateBulk(builders ...*QueueEntryCreate) *QueueEntryCreateBulk {
	return &QueueEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueEntryClient) MapCreateBulk(slice any, setFunc func(*QueueEntryCreate, int)) *QueueEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueEntryCreateBulk{err: fmt.Errorf("calling to QueueEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueEntry.
func (c *QueueEntryClient) Update() *QueueEntryUpdate {
	mutation := newQueueEntryMutation(c.config, OpUpdate)
	return &QueueEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueEntryClient) UpdateOne(_m *QueueEntry) *QueueEntryUpdateOne {
	mutation := newQueueEntryMutation(c.config, OpUpdateOne, withQueueEntry(_m))
	return &QueueEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueEntryClient) UpdateOneID(id string) *QueueEntryUpdateOne {
	mutation := newQueueEntryMutation(c.config, OpUpdateOne, withQueueEntryID(id))
	return &QueueEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueEntry.
func (c *QueueEntryClient) Delete() *QueueEntryDelete {
	mutation := newQueueEntryMutation(c.config, OpDelete)
	return &QueueEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueEntryClient) DeleteOne(_m *QueueEntry) *QueueEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueEntryClient) DeleteOneID(id string) *QueueEntryDeleteOne {
	builder := c.Delete().Where(queueentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueEntryDeleteOne{builder}
}

// Query returns a query builder for QueueEntry.
func (c *QueueEntryClient) Query() *QueueEntryQuery {
	return &QueueEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueEntry entity by its id.
func (c *QueueEntryClient) Get(ctx context.Context, id string) (*QueueEntry, error) {
	return c.Query().Where(queueentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueEntryClient) GetX(ctx context.Context, id string) *QueueEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueueEntryClient) Hooks() []Hook {
	return c.hooks.QueueEntry
}

// Interceptors returns the client interceptors.
func (c *QueueEntryClient) Interceptors() []Interceptor {
	return c.inters.QueueEntry
}

func (c *QueueEntryClient) mutate(ctx context.Context, m *QueueEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueEntry mutation op: %q", m.Op())
	}
}

// RunClient is a client for the Run schema.
type RunClient struct {
	config
}

// NewRunClient returns a client for the Run from the given config.
func NewRunClient(c config) *RunClient {
	return &RunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `run.Hooks(f(g(h())))`.
func (c *RunClient) Use(hooks ...Hook) {
	c.hooks.Run = append(c.hooks.Run, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `run.Intercept(f(g(h())))`.
func (c *RunClient) Intercept(interceptors ...Interceptor) {
	c.inters.Run = append(c.inters.Run, interceptors...)
}

// Create returns a builder for creating a Run entity.
func (c *RunClient) Create() *RunCreate {
	mutation := newRunMutation(c.config, OpCreate)
	return &RunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Run entities.
func (c *RunClient) CreateBulk(builders ...*RunCreate) *RunCreateBulk {
	return &RunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunClient) MapCreateBulk(slice any, setFunc func(*RunCreate, int)) *RunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunCreateBulk{err: fmt.Errorf("calling to RunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Run.
func (c *RunClient) Update() *RunUpdate {
	mutation := newRunMutation(c.config, OpUpdate)
	return &RunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunClient) UpdateOne(_m *Run) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRun(_m))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunClient) UpdateOneID(id int64) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRunID(id))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Run.
func (c *RunClient) Delete() *RunDelete {
	mutation := newRunMutation(c.config, OpDelete)
	return &RunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunClient) DeleteOne(_m *Run) *RunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunClient) DeleteOneID(id int64) *RunDeleteOne {
	builder := c.Delete().Where(run.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunDeleteOne{builder}
}

// Query returns a query builder for Run.
func (c *RunClient) Query() *RunQuery {
	return &RunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRun},
		inters: c.Interceptors(),
	}
}

// Get returns a Run entity by its id.
func (c *RunClient) Get(ctx context.Context, id int64) (*Run, error) {
	return c.Query().Where(run.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunClient) GetX(ctx context.Context, id int64) *Run {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Run.
func (c *RunClient) QueryTask(_m *Run) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, run.TaskTable, run.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStageExecutions queries the stage_executions edge of a Run.
func (c *RunClient) QueryStageExecutions(_m *Run) *StageExecutionQuery {
	query := (&StageExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(stageexecution.Table, stageexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.StageExecutionsTable, run.StageExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryValidationRequests queries the validation_requests edge of a Run.
func (c *RunClient) QueryValidationRequests(_m *Run) *ValidationRequestQuery {
	query := (&ValidationRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(validationrequest.Table, validationrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.ValidationRequestsTable, run.ValidationRequestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunClient) Hooks() []Hook {
	return c.hooks.Run
}

// Interceptors returns the client interceptors.
func (c *RunClient) Interceptors() []Interceptor {
	return c.inters.Run
}

func (c *RunClient) mutate(ctx context.Context, m *RunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Run mutation op: %q", m.Op())
	}
}

// StageExecutionClient is a client for the StageExecution schema.
type StageExecutionClient struct {
	config
}

// NewStageExecutionClient returns a client for the StageExecution from the given config.
func NewStageExecutionClient(c config) *StageExecutionClient {
	return &StageExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stageexecution.Hooks(f(g(h())))`.
func (c *StageExecutionClient) Use(hooks ...Hook) {
	c.hooks.StageExecution = append(c.hooks.StageExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stageexecution.Intercept(f(g(h())))`.
func (c *StageExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageExecution = append(c.inters.StageExecution, interceptors...)
}

// Create returns a builder for creating a StageExecution entity.
func (c *StageExecutionClient) Create() *StageExecutionCreate {
	mutation := newStageExecutionMutation(c.config, OpCreate)
	return &StageExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageExecution entities.
func (c *StageExecutionClient) CreateBulk(builders ...*StageExecutionCreate) *StageExecutionCreateBulk {
	return &StageExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageExecutionClient) MapCreateBulk(slice any, setFunc func(*StageExecutionCreate, int)) *StageExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageExecutionCreateBulk{err: fmt.Errorf("calling to StageExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageExecution.
func (c *StageExecutionClient) Update() *StageExecutionUpdate {
	mutation := newStageExecutionMutation(c.config, OpUpdate)
	return &StageExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageExecutionClient) UpdateOne(_m *StageExecution) *StageExecutionUpdateOne {
	mutation := newStageExecutionMutation(c.config, OpUpdateOne, withStageExecution(_m))
	return &StageExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageExecutionClient) UpdateOneID(id int64) *StageExecutionUpdateOne {
	mutation := newStageExecutionMutation(c.config, OpUpdateOne, withStageExecutionID(id))
	return &StageExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageExecution.
func (c *StageExecutionClient) Delete() *StageExecutionDelete {
	mutation := newStageExecutionMutation(c.config, OpDelete)
	return &StageExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageExecutionClient) DeleteOne(_m *StageExecution) *StageExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageExecutionClient) DeleteOneID(id int64) *StageExecutionDeleteOne {
	builder := c.Delete().Where(stageexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageExecutionDeleteOne{builder}
}

// Query returns a query builder for StageExecution.
func (c *StageExecutionClient) Query() *StageExecutionQuery {
	return &StageExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a StageExecution entity by its id.
func (c *StageExecutionClient) Get(ctx context.Context, id int64) (*StageExecution, error) {
	return c.Query().Where(stageexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageExecutionClient) GetX(ctx context.Context, id int64) *StageExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a StageExecution.
func (c *StageExecutionClient) QueryRun(_m *StageExecution) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stageexecution.Table, stageexecution.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stageexecution.RunTable, stageexecution.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StageExecutionClient) Hooks() []Hook {
	return c.hooks.StageExecution
}

// Interceptors returns the client interceptors.
func (c *StageExecutionClient) Interceptors() []Interceptor {
	return c.inters.StageExecution
}

func (c *StageExecutionClient) mutate(ctx context.Context, m *StageExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageExecution mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id int64) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id int64) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id int64) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id int64) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRuns queries the runs edge of a Task.
func (c *TaskClient) QueryRuns(_m *Task) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.RunsTable, task.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// ValidationRequestClient is a client for the ValidationRequest schema.
type ValidationRequestClient struct {
	config
}

// NewValidationRequestClient returns a client for the ValidationRequest from the given config.
func NewValidationRequestClient(c config) *ValidationRequestClient {
	return &ValidationRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `validationrequest.Hooks(f(g(h())))`.
func (c *ValidationRequestClient) Use(hooks ...Hook) {
	c.hooks.ValidationRequest = append(c.hooks.ValidationRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `validationrequest.Intercept(f(g(h())))`.
func (c *ValidationRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ValidationRequest = append(c.inters.ValidationRequest, interceptors...)
}

// Create returns a builder for creating a ValidationRequest entity.
func (c *ValidationRequestClient) Create() *ValidationRequestCreate {
	mutation := newValidationRequestMutation(c.config, OpCreate)
	return &ValidationRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ValidationRequest entities.
func (c *ValidationRequestClient) CreateBulk(builders ...*ValidationRequestCreate) *ValidationRequestCreateBulk {
	return &ValidationRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ValidationRequestClient) MapCreateBulk(slice any, setFunc func(*ValidationRequestCreate, int)) *ValidationRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ValidationRequestCreateBulk{err: fmt.Errorf("calling to ValidationRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ValidationRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ValidationRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ValidationRequest.
func (c *ValidationRequestClient) Update() *ValidationRequestUpdate {
	mutation := newValidationRequestMutation(c.config, OpUpdate)
	return &ValidationRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ValidationRequestClient) UpdateOne(_m *ValidationRequest) *ValidationRequestUpdateOne {
	mutation := newValidationRequestMutation(c.config, OpUpdateOne, withValidationRequest(_m))
	return &ValidationRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ValidationRequestClient) UpdateOneID(id int64) *ValidationRequestUpdateOne {
	mutation := newValidationRequestMutation(c.config, OpUpdateOne, withValidationRequestID(id))
	return &ValidationRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ValidationRequest.
func (c *ValidationRequestClient) Delete() *ValidationRequestDelete {
	mutation := newValidationRequestMutation(c.config, OpDelete)
	return &ValidationRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ValidationRequestClient) DeleteOne(_m *ValidationRequest) *ValidationRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ValidationRequestClient) DeleteOneID(id int64) *ValidationRequestDeleteOne {
	builder := c.Delete().Where(validationrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ValidationRequestDeleteOne{builder}
}

// Query returns a query builder for ValidationRequest.
func (c *ValidationRequestClient) Query() *ValidationRequestQuery {
	return &ValidationRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeValidationRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a ValidationRequest entity by its id.
func (c *ValidationRequestClient) Get(ctx context.Context, id int64) (*ValidationRequest, error) {
	return c.Query().Where(validationrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ValidationRequestClient) GetX(ctx context.Context, id int64) *ValidationRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a ValidationRequest.
func (c *ValidationRequestClient) QueryRun(_m *ValidationRequest) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrequest.Table, validationrequest.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, validationrequest.RunTable, validationrequest.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResponse queries the response edge of a ValidationRequest.
func (c *ValidationRequestClient) QueryResponse(_m *ValidationRequest) *ValidationResponseQuery {
	query := (&ValidationResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrequest.Table, validationrequest.FieldID, id),
			sqlgraph.To(validationresponse.Table, validationresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, validationrequest.ResponseTable, validationrequest.ResponseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ValidationRequestClient) Hooks() []Hook {
	return c.hooks.ValidationRequest
}

// Interceptors returns the client interceptors.
func (c *ValidationRequestClient) Interceptors() []Interceptor {
	return c.inters.ValidationRequest
}

func (c *ValidationRequestClient) mutate(ctx context.Context, m *ValidationRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ValidationRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ValidationRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ValidationRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ValidationRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ValidationRequest mutation op: %q", m.Op())
	}
}

// ValidationResponseClient is a client for the ValidationResponse schema.
type ValidationResponseClient struct {
	config
}

// NewValidationResponseClient returns a client for the ValidationResponse from the given config.
func NewValidationResponseClient(c config) *ValidationResponseClient {
	return &ValidationResponseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `validationresponse.Hooks(f(g(h())))`.
func (c *ValidationResponseClient) Use(hooks ...Hook) {
	c.hooks.ValidationResponse = append(c.hooks.ValidationResponse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `validationresponse.Intercept(f(g(h())))`.
func (c *ValidationResponseClient) Intercept(interceptors ...Interceptor) {
	c.inters.ValidationResponse = append(c.inters.ValidationResponse, interceptors...)
}

// Create returns a builder for creating a ValidationResponse entity.
func (c *ValidationResponseClient) Create() *ValidationResponseCreate {
	mutation := newValidationResponseMutation(c.config, OpCreate)
	return &ValidationResponseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ValidationResponse entities.
func (c *ValidationResponseClient) CreateBulk(builders ...*ValidationResponseCreate) *ValidationResponseCreateBulk {
	return &ValidationResponseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ValidationResponseClient) MapCreateBulk(slice any, setFunc func(*ValidationResponseCreate, int)) *ValidationResponseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ValidationResponseCreateBulk{err: fmt.Errorf("calling to ValidationResponseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ValidationResponseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ValidationResponseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ValidationResponse.
func (c *ValidationResponseClient) Update() *ValidationResponseUpdate {
	mutation := newValidationResponseMutation(c.config, OpUpdate)
	return &ValidationResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ValidationResponseClient) UpdateOne(_m *ValidationResponse) *ValidationResponseUpdateOne {
	mutation := newValidationResponseMutation(c.config, OpUpdateOne, withValidationResponse(_m))
	return &ValidationResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ValidationResponseClient) UpdateOneID(id int64) *ValidationResponseUpdateOne {
	mutation := newValidationResponseMutation(c.config, OpUpdateOne, withValidationResponseID(id))
	return &ValidationResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ValidationResponse.
func (c *ValidationResponseClient) Delete() *ValidationResponseDelete {
	mutation := newValidationResponseMutation(c.config, OpDelete)
	return &ValidationResponseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ValidationResponseClient) DeleteOne(_m *ValidationResponse) *ValidationResponseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ValidationResponseClient) DeleteOneID(id int64) *ValidationResponseDeleteOne {
	builder := c.Delete().Where(validationresponse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ValidationResponseDeleteOne{builder}
}

// Query returns a query builder for ValidationResponse.
func (c *ValidationResponseClient) Query() *ValidationResponseQuery {
	return &ValidationResponseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeValidationResponse},
		inters: c.Interceptors(),
	}
}

// Get returns a ValidationResponse entity by its id.
func (c *ValidationResponseClient) Get(ctx context.Context, id int64) (*ValidationResponse, error) {
	return c.Query().Where(validationresponse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ValidationResponseClient) GetX(ctx context.Context, id int64) *ValidationResponse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a ValidationResponse.
func (c *ValidationResponseClient) QueryRequest(_m *ValidationResponse) *ValidationRequestQuery {
	query := (&ValidationRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationresponse.Table, validationresponse.FieldID, id),
			sqlgraph.To(validationrequest.Table, validationrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, validationresponse.RequestTable, validationresponse.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ValidationResponseClient) Hooks() []Hook {
	return c.hooks.ValidationResponse
}

// Interceptors returns the client interceptors.
func (c *ValidationResponseClient) Interceptors() []Interceptor {
	return c.inters.ValidationResponse
}

func (c *ValidationResponseClient) mutate(ctx context.Context, m *ValidationResponseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ValidationResponseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ValidationResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ValidationResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ValidationResponseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ValidationResponse mutation op: %q", m.Op())
	}
}

// WebhookEventClient is a client for the WebhookEvent schema.
type WebhookEventClient struct {
	config
}

// NewWebhookEventClient returns a client for the WebhookEvent from the given config.
func NewWebhookEventClient(c config) *WebhookEventClient {
	return &WebhookEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookevent.Hooks(f(g(h())))`.
func (c *WebhookEventClient) Use(hooks ...Hook) {
	c.hooks.WebhookEvent = append(c.hooks.WebhookEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookevent.Intercept(f(g(h())))`.
func (c *WebhookEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookEvent = append(c.inters.WebhookEvent, interceptors...)
}

// Create returns a builder for creating a WebhookEvent entity.
func (c *WebhookEventClient) Create() *WebhookEventCreate {
	mutation := newWebhookEventMutation(c.config, OpCreate)
	return &WebhookEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookEvent entities.
func (c *WebhookEventClient) CreateBulk(builders ...*WebhookEventCreate) *WebhookEventCreateBulk {
	return &WebhookEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookEventClient) MapCreateBulk(slice any, setFunc func(*WebhookEventCreate, int)) *WebhookEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookEventCreateBulk{err: fmt.Errorf("calling to WebhookEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookEvent.
func (c *WebhookEventClient) Update() *WebhookEventUpdate {
	mutation := newWebhookEventMutation(c.config, OpUpdate)
	return &WebhookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookEventClient) UpdateOne(_m *WebhookEvent) *WebhookEventUpdateOne {
	mutation := newWebhookEventMutation(c.config, OpUpdateOne, withWebhookEvent(_m))
	return &WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookEventClient) UpdateOneID(id int64) *WebhookEventUpdateOne {
	mutation := newWebhookEventMutation(c.config, OpUpdateOne, withWebhookEventID(id))
	return &WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookEvent.
func (c *WebhookEventClient) Delete() *WebhookEventDelete {
	mutation := newWebhookEventMutation(c.config, OpDelete)
	return &WebhookEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookEventClient) DeleteOne(_m *WebhookEvent) *WebhookEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookEventClient) DeleteOneID(id int64) *WebhookEventDeleteOne {
	builder := c.Delete().Where(webhookevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookEventDeleteOne{builder}
}

// Query returns a query builder for WebhookEvent.
func (c *WebhookEventClient) Query() *WebhookEventQuery {
	return &WebhookEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookEvent entity by its id.
func (c *WebhookEventClient) Get(ctx context.Context, id int64) (*WebhookEvent, error) {
	return c.Query().Where(webhookevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookEventClient) GetX(ctx context.Context, id int64) *WebhookEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WebhookEventClient) Hooks() []Hook {
	return c.hooks.WebhookEvent
}

// Interceptors returns the client interceptors.
func (c *WebhookEventClient) Interceptors() []Interceptor {
	return c.inters.WebhookEvent
}

func (c *WebhookEventClient) mutate(ctx context.Context, m *WebhookEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		QueueEntry, Run, StageExecution, Task, ValidationRequest, ValidationResponse,
		WebhookEvent []ent.Hook
	}
	inters struct {
		QueueEntry, Run, StageExecution, Task, ValidationRequest, ValidationResponse,
		WebhookEvent []ent.Interceptor
	}
)
