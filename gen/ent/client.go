// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/campushr/docparser/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/campushr/docparser/gen/ent/appraisal"
	"github.com/campushr/docparser/gen/ent/documentfile"
	"github.com/campushr/docparser/gen/ent/employee"
	"github.com/campushr/docparser/gen/ent/parsejob"
	"github.com/campushr/docparser/gen/ent/teachingportfolio"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Appraisal is the client for interacting with the Appraisal builders.
	Appraisal *AppraisalClient
	// DocumentFile is the client for interacting with the DocumentFile builders.
	DocumentFile *DocumentFileClient
	// Employee is the client for interacting with the Employee builders.
	Employee *EmployeeClient
	// ParseJob is the client for interacting with the ParseJob builders.
	ParseJob *ParseJobClient
	// TeachingPortfolio is the client for interacting with the TeachingPortfolio builders.
	TeachingPortfolio *TeachingPortfolioClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Appraisal = NewAppraisalClient(c.config)
	c.DocumentFile = NewDocumentFileClient(c.config)
	c.Employee = NewEmployeeClient(c.config)
	c.ParseJob = NewParseJobClient(c.config)
	c.TeachingPortfolio = NewTeachingPortfolioClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		Appraisal:         NewAppraisalClient(cfg),
		DocumentFile:      NewDocumentFileClient(cfg),
		Employee:          NewEmployeeClient(cfg),
		ParseJob:          NewParseJobClient(cfg),
		TeachingPortfolio: NewTeachingPortfolioClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		Appraisal:         NewAppraisalClient(cfg),
		DocumentFile:      NewDocumentFileClient(cfg),
		Employee:          NewEmployeeClient(cfg),
		ParseJob:          NewParseJobClient(cfg),
		TeachingPortfolio: NewTeachingPortfolioClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Appraisal.
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
	c.Appraisal.Use(hooks...)
	c.DocumentFile.Use(hooks...)
	c.Employee.Use(hooks...)
	c.ParseJob.Use(hooks...)
	c.TeachingPortfolio.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Appraisal.Intercept(interceptors...)
	c.DocumentFile.Intercept(interceptors...)
	c.Employee.Intercept(interceptors...)
	c.ParseJob.Intercept(interceptors...)
	c.TeachingPortfolio.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppraisalMutation:
		return c.Appraisal.mutate(ctx, m)
	case *DocumentFileMutation:
		return c.DocumentFile.mutate(ctx, m)
	case *EmployeeMutation:
		return c.Employee.mutate(ctx, m)
	case *ParseJobMutation:
		return c.ParseJob.mutate(ctx, m)
	case *TeachingPortfolioMutation:
		return c.TeachingPortfolio.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AppraisalClient is a client for the Appraisal schema.
type AppraisalClient struct {
	config
}

// NewAppraisalClient returns a client for the Appraisal from the given config.
func NewAppraisalClient(c config) *AppraisalClient {
	return &AppraisalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appraisal.Hooks(f(g(h())))`.
func (c *AppraisalClient) Use(hooks ...Hook) {
	c.hooks.Appraisal = append(c.hooks.Appraisal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appraisal.Intercept(f(g(h())))`.
func (c *AppraisalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appraisal = append(c.inters.Appraisal, interceptors...)
}

// Create returns a builder for creating a Appraisal entity.
func (c *AppraisalClient) Create() *AppraisalCreate {
	mutation := newAppraisalMutation(c.config, OpCreate)
	return &AppraisalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appraisal entities.
func (c *AppraisalClient) CreateBulk(builders ...*AppraisalCreate) *AppraisalCreateBulk {
	return &AppraisalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppraisalClient) MapCreateBulk(slice any, setFunc func(*AppraisalCreate, int)) *AppraisalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppraisalCreateBulk{err: fmt.Errorf("calling to AppraisalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppraisalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppraisalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appraisal.
func (c *AppraisalClient) Update() *AppraisalUpdate {
	mutation := newAppraisalMutation(c.config, OpUpdate)
	return &AppraisalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppraisalClient) UpdateOne(_m *Appraisal) *AppraisalUpdateOne {
	mutation := newAppraisalMutation(c.config, OpUpdateOne, withAppraisal(_m))
	return &AppraisalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppraisalClient) UpdateOneID(id uuid.UUID) *AppraisalUpdateOne {
	mutation := newAppraisalMutation(c.config, OpUpdateOne, withAppraisalID(id))
	return &AppraisalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appraisal.
func (c *AppraisalClient) Delete() *AppraisalDelete {
	mutation := newAppraisalMutation(c.config, OpDelete)
	return &AppraisalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppraisalClient) DeleteOne(_m *Appraisal) *AppraisalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppraisalClient) DeleteOneID(id uuid.UUID) *AppraisalDeleteOne {
	builder := c.Delete().Where(appraisal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppraisalDeleteOne{builder}
}

// Query returns a query builder for Appraisal.
func (c *AppraisalClient) Query() *AppraisalQuery {
	return &AppraisalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppraisal},
		inters: c.Interceptors(),
	}
}

// Get returns a Appraisal entity by its id.
func (c *AppraisalClient) Get(ctx context.Context, id uuid.UUID) (*Appraisal, error) {
	return c.Query().Where(appraisal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppraisalClient) GetX(ctx context.Context, id uuid.UUID) *Appraisal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmployee queries the employee edge of a Appraisal.
func (c *AppraisalClient) QueryEmployee(_m *Appraisal) *EmployeeQuery {
	query := (&EmployeeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appraisal.Table, appraisal.FieldID, id),
			sqlgraph.To(employee.Table, employee.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, appraisal.EmployeeTable, appraisal.EmployeeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Appraisal.
func (c *AppraisalClient) QueryJobs(_m *Appraisal) *ParseJobQuery {
	query := (&ParseJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appraisal.Table, appraisal.FieldID, id),
			sqlgraph.To(parsejob.Table, parsejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, appraisal.JobsTable, appraisal.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AppraisalClient) Hooks() []Hook {
	return c.hooks.Appraisal
}

// Interceptors returns the client interceptors.
func (c *AppraisalClient) Interceptors() []Interceptor {
	return c.inters.Appraisal
}

func (c *AppraisalClient) mutate(ctx context.Context, m *AppraisalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppraisalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppraisalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppraisalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppraisalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Appraisal mutation op: %q", m.Op())
	}
}

// DocumentFileClient is a client for the DocumentFile schema.
type DocumentFileClient struct {
	config
}

// NewDocumentFileClient returns a client for the DocumentFile from the given config.
func NewDocumentFileClient(c config) *DocumentFileClient {
	return &DocumentFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentfile.Hooks(f(g(h())))`.
func (c *DocumentFileClient) Use(hooks ...Hook) {
	c.hooks.DocumentFile = append(c.hooks.DocumentFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentfile.Intercept(f(g(h())))`.
func (c *DocumentFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentFile = append(c.inters.DocumentFile, interceptors...)
}

// Create returns a builder for creating a DocumentFile entity.
func (c *DocumentFileClient) Create() *DocumentFileCreate {
	mutation := newDocumentFileMutation(c.config, OpCreate)
	return &DocumentFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentFile entities.
func (c *DocumentFileClient) CreateBulk(builders ...*DocumentFileCreate) *DocumentFileCreateBulk {
	return &DocumentFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentFileClient) MapCreateBulk(slice any, setFunc func(*DocumentFileCreate, int)) *DocumentFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentFileCreateBulk{err: fmt.Errorf("calling to DocumentFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentFile.
func (c *DocumentFileClient) Update() *DocumentFileUpdate {
	mutation := newDocumentFileMutation(c.config, OpUpdate)
	return &DocumentFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentFileClient) UpdateOne(_m *DocumentFile) *DocumentFileUpdateOne {
	mutation := newDocumentFileMutation(c.config, OpUpdateOne, withDocumentFile(_m))
	return &DocumentFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentFileClient) UpdateOneID(id uuid.UUID) *DocumentFileUpdateOne {
	mutation := newDocumentFileMutation(c.config, OpUpdateOne, withDocumentFileID(id))
	return &DocumentFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentFile.
func (c *DocumentFileClient) Delete() *DocumentFileDelete {
	mutation := newDocumentFileMutation(c.config, OpDelete)
	return &DocumentFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentFileClient) DeleteOne(_m *DocumentFile) *DocumentFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentFileClient) DeleteOneID(id uuid.UUID) *DocumentFileDeleteOne {
	builder := c.Delete().Where(documentfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentFileDeleteOne{builder}
}

// Query returns a query builder for DocumentFile.
func (c *DocumentFileClient) Query() *DocumentFileQuery {
	return &DocumentFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentFile},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentFile entity by its id.
func (c *DocumentFileClient) Get(ctx context.Context, id uuid.UUID) (*DocumentFile, error) {
	return c.Query().Where(documentfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentFileClient) GetX(ctx context.Context, id uuid.UUID) *DocumentFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmployee queries the employee edge of a DocumentFile.
func (c *DocumentFileClient) QueryEmployee(_m *DocumentFile) *EmployeeQuery {
	query := (&EmployeeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentfile.Table, documentfile.FieldID, id),
			sqlgraph.To(employee.Table, employee.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentfile.EmployeeTable, documentfile.EmployeeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a DocumentFile.
func (c *DocumentFileClient) QueryJobs(_m *DocumentFile) *ParseJobQuery {
	query := (&ParseJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentfile.Table, documentfile.FieldID, id),
			sqlgraph.To(parsejob.Table, parsejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentfile.JobsTable, documentfile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentFileClient) Hooks() []Hook {
	return c.hooks.DocumentFile
}

// Interceptors returns the client interceptors.
func (c *DocumentFileClient) Interceptors() []Interceptor {
	return c.inters.DocumentFile
}

func (c *DocumentFileClient) mutate(ctx context.Context, m *DocumentFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentFile mutation op: %q", m.Op())
	}
}

// EmployeeClient is a client for the Employee schema.
type EmployeeClient struct {
	config
}

// NewEmployeeClient returns a client for the Employee from the given config.
func NewEmployeeClient(c config) *EmployeeClient {
	return &EmployeeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `employee.Hooks(f(g(h())))`.
func (c *EmployeeClient) Use(hooks ...Hook) {
	c.hooks.Employee = append(c.hooks.Employee, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `employee.Intercept(f(g(h())))`.
func (c *EmployeeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Employee = append(c.inters.Employee, interceptors...)
}

// Create returns a builder for creating a Employee entity.
func (c *EmployeeClient) Create() *EmployeeCreate {
	mutation := newEmployeeMutation(c.config, OpCreate)
	return &EmployeeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Employee entities.
func (c *EmployeeClient) CreateBulk(builders ...*EmployeeCreate) *EmployeeCreateBulk {
	return &EmployeeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmployeeClient) MapCreateBulk(slice any, setFunc func(*EmployeeCreate, int)) *EmployeeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmployeeCreateBulk{err: fmt.Errorf("calling to EmployeeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmployeeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmployeeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Employee.
func (c *EmployeeClient) Update() *EmployeeUpdate {
	mutation := newEmployeeMutation(c.config, OpUpdate)
	return &EmployeeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmployeeClient) UpdateOne(_m *Employee) *EmployeeUpdateOne {
	mutation := newEmployeeMutation(c.config, OpUpdateOne, withEmployee(_m))
	return &EmployeeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmployeeClient) UpdateOneID(id uuid.UUID) *EmployeeUpdateOne {
	mutation := newEmployeeMutation(c.config, OpUpdateOne, withEmployeeID(id))
	return &EmployeeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Employee.
func (c *EmployeeClient) Delete() *EmployeeDelete {
	mutation := newEmployeeMutation(c.config, OpDelete)
	return &EmployeeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmployeeClient) DeleteOne(_m *Employee) *EmployeeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmployeeClient) DeleteOneID(id uuid.UUID) *EmployeeDeleteOne {
	builder := c.Delete().Where(employee.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmployeeDeleteOne{builder}
}

// Query returns a query builder for Employee.
func (c *EmployeeClient) Query() *EmployeeQuery {
	return &EmployeeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmployee},
		inters: c.Interceptors(),
	}
}

// Get returns a Employee entity by its id.
func (c *EmployeeClient) Get(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return c.Query().Where(employee.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmployeeClient) GetX(ctx context.Context, id uuid.UUID) *Employee {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAppraisals queries the appraisals edge of a Employee.
func (c *EmployeeClient) QueryAppraisals(_m *Employee) *AppraisalQuery {
	query := (&AppraisalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(employee.Table, employee.FieldID, id),
			sqlgraph.To(appraisal.Table, appraisal.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, employee.AppraisalsTable, employee.AppraisalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPortfolios queries the portfolios edge of a Employee.
func (c *EmployeeClient) QueryPortfolios(_m *Employee) *TeachingPortfolioQuery {
	query := (&TeachingPortfolioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(employee.Table, employee.FieldID, id),
			sqlgraph.To(teachingportfolio.Table, teachingportfolio.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, employee.PortfoliosTable, employee.PortfoliosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a Employee.
func (c *EmployeeClient) QueryFiles(_m *Employee) *DocumentFileQuery {
	query := (&DocumentFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(employee.Table, employee.FieldID, id),
			sqlgraph.To(documentfile.Table, documentfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, employee.FilesTable, employee.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EmployeeClient) Hooks() []Hook {
	return c.hooks.Employee
}

// Interceptors returns the client interceptors.
func (c *EmployeeClient) Interceptors() []Interceptor {
	return c.inters.Employee
}

func (c *EmployeeClient) mutate(ctx context.Context, m *EmployeeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmployeeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmployeeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmployeeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmployeeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Employee mutation op: %q", m.Op())
	}
}

// ParseJobClient is a client for the ParseJob schema.
type ParseJobClient struct {
	config
}

// NewParseJobClient returns a client for the ParseJob from the given config.
func NewParseJobClient(c config) *ParseJobClient {
	return &ParseJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parsejob.Hooks(f(g(h())))`.
func (c *ParseJobClient) Use(hooks ...Hook) {
	c.hooks.ParseJob = append(c.hooks.ParseJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parsejob.Intercept(f(g(h())))`.
func (c *ParseJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParseJob = append(c.inters.ParseJob, interceptors...)
}

// Create returns a builder for creating a ParseJob entity.
func (c *ParseJobClient) Create() *ParseJobCreate {
	mutation := newParseJobMutation(c.config, OpCreate)
	return &ParseJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParseJob entities.
func (c *ParseJobClient) CreateBulk(builders ...*ParseJobCreate) *ParseJobCreateBulk {
	return &ParseJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParseJobClient) MapCreateBulk(slice any, setFunc func(*ParseJobCreate, int)) *ParseJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParseJobCreateBulk{err: fmt.Errorf("calling to ParseJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParseJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParseJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParseJob.
func (c *ParseJobClient) Update() *ParseJobUpdate {
	mutation := newParseJobMutation(c.config, OpUpdate)
	return &ParseJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParseJobClient) UpdateOne(_m *ParseJob) *ParseJobUpdateOne {
	mutation := newParseJobMutation(c.config, OpUpdateOne, withParseJob(_m))
	return &ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParseJobClient) UpdateOneID(id uuid.UUID) *ParseJobUpdateOne {
	mutation := newParseJobMutation(c.config, OpUpdateOne, withParseJobID(id))
	return &ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParseJob.
func (c *ParseJobClient) Delete() *ParseJobDelete {
	mutation := newParseJobMutation(c.config, OpDelete)
	return &ParseJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParseJobClient) DeleteOne(_m *ParseJob) *ParseJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParseJobClient) DeleteOneID(id uuid.UUID) *ParseJobDeleteOne {
	builder := c.Delete().Where(parsejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParseJobDeleteOne{builder}
}

// Query returns a query builder for ParseJob.
func (c *ParseJobClient) Query() *ParseJobQuery {
	return &ParseJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParseJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ParseJob entity by its id.
func (c *ParseJobClient) Get(ctx context.Context, id uuid.UUID) (*ParseJob, error) {
	return c.Query().Where(parsejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParseJobClient) GetX(ctx context.Context, id uuid.UUID) *ParseJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ParseJob.
func (c *ParseJobClient) QueryFile(_m *ParseJob) *DocumentFileQuery {
	query := (&DocumentFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parsejob.Table, parsejob.FieldID, id),
			sqlgraph.To(documentfile.Table, documentfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, parsejob.FileTable, parsejob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAppraisal queries the appraisal edge of a ParseJob.
func (c *ParseJobClient) QueryAppraisal(_m *ParseJob) *AppraisalQuery {
	query := (&AppraisalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parsejob.Table, parsejob.FieldID, id),
			sqlgraph.To(appraisal.Table, appraisal.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, parsejob.AppraisalTable, parsejob.AppraisalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParseJobClient) Hooks() []Hook {
	return c.hooks.ParseJob
}

// Interceptors returns the client interceptors.
func (c *ParseJobClient) Interceptors() []Interceptor {
	return c.inters.ParseJob
}

func (c *ParseJobClient) mutate(ctx context.Context, m *ParseJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParseJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParseJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParseJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParseJob mutation op: %q", m.Op())
	}
}

// TeachingPortfolioClient is a client for the TeachingPortfolio schema.
type TeachingPortfolioClient struct {
	config
}

// NewTeachingPortfolioClient returns a client for the TeachingPortfolio from the given config.
func NewTeachingPortfolioClient(c config) *TeachingPortfolioClient {
	return &TeachingPortfolioClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `teachingportfolio.Hooks(f(g(h())))`.
func (c *TeachingPortfolioClient) Use(hooks ...Hook) {
	c.hooks.TeachingPortfolio = append(c.hooks.TeachingPortfolio, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `teachingportfolio.Intercept(f(g(h())))`.
func (c *TeachingPortfolioClient) Intercept(interceptors ...Interceptor) {
	c.inters.TeachingPortfolio = append(c.inters.TeachingPortfolio, interceptors...)
}

// Create returns a builder for creating a TeachingPortfolio entity.
func (c *TeachingPortfolioClient) Create() *TeachingPortfolioCreate {
	mutation := newTeachingPortfolioMutation(c.config, OpCreate)
	return &TeachingPortfolioCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TeachingPortfolio entities.
func (c *TeachingPortfolioClient) CreateBulk(builders ...*TeachingPortfolioCreate) *TeachingPortfolioCreateBulk {
	return &TeachingPortfolioCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TeachingPortfolioClient) MapCreateBulk(slice any, setFunc func(*TeachingPortfolioCreate, int)) *TeachingPortfolioCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TeachingPortfolioCreateBulk{err: fmt.Errorf("calling to TeachingPortfolioClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TeachingPortfolioCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TeachingPortfolioCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TeachingPortfolio.
func (c *TeachingPortfolioClient) Update() *TeachingPortfolioUpdate {
	mutation := newTeachingPortfolioMutation(c.config, OpUpdate)
	return &TeachingPortfolioUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TeachingPortfolioClient) UpdateOne(_m *TeachingPortfolio) *TeachingPortfolioUpdateOne {
	mutation := newTeachingPortfolioMutation(c.config, OpUpdateOne, withTeachingPortfolio(_m))
	return &TeachingPortfolioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TeachingPortfolioClient) UpdateOneID(id uuid.UUID) *TeachingPortfolioUpdateOne {
	mutation := newTeachingPortfolioMutation(c.config, OpUpdateOne, withTeachingPortfolioID(id))
	return &TeachingPortfolioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TeachingPortfolio.
func (c *TeachingPortfolioClient) Delete() *TeachingPortfolioDelete {
	mutation := newTeachingPortfolioMutation(c.config, OpDelete)
	return &TeachingPortfolioDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TeachingPortfolioClient) DeleteOne(_m *TeachingPortfolio) *TeachingPortfolioDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TeachingPortfolioClient) DeleteOneID(id uuid.UUID) *TeachingPortfolioDeleteOne {
	builder := c.Delete().Where(teachingportfolio.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TeachingPortfolioDeleteOne{builder}
}

// Query returns a query builder for TeachingPortfolio.
func (c *TeachingPortfolioClient) Query() *TeachingPortfolioQuery {
	return &TeachingPortfolioQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTeachingPortfolio},
		inters: c.Interceptors(),
	}
}

// Get returns a TeachingPortfolio entity by its id.
func (c *TeachingPortfolioClient) Get(ctx context.Context, id uuid.UUID) (*TeachingPortfolio, error) {
	return c.Query().Where(teachingportfolio.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TeachingPortfolioClient) GetX(ctx context.Context, id uuid.UUID) *TeachingPortfolio {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmployee queries the employee edge of a TeachingPortfolio.
func (c *TeachingPortfolioClient) QueryEmployee(_m *TeachingPortfolio) *EmployeeQuery {
	query := (&EmployeeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(teachingportfolio.Table, teachingportfolio.FieldID, id),
			sqlgraph.To(employee.Table, employee.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, teachingportfolio.EmployeeTable, teachingportfolio.EmployeeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TeachingPortfolioClient) Hooks() []Hook {
	return c.hooks.TeachingPortfolio
}

// Interceptors returns the client interceptors.
func (c *TeachingPortfolioClient) Interceptors() []Interceptor {
	return c.inters.TeachingPortfolio
}

func (c *TeachingPortfolioClient) mutate(ctx context.Context, m *TeachingPortfolioMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TeachingPortfolioCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TeachingPortfolioUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TeachingPortfolioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TeachingPortfolioDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TeachingPortfolio mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Appraisal, DocumentFile, Employee, ParseJob, TeachingPortfolio []ent.Hook
	}
	inters struct {
		Appraisal, DocumentFile, Employee, ParseJob, TeachingPortfolio []ent.Interceptor
	}
)
