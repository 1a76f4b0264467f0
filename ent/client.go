// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/bumpwise/bumpquiz/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/bumpwise/bumpquiz/ent/answerattempt"
	"github.com/bumpwise/bumpquiz/ent/badgeevent"
	"github.com/bumpwise/bumpquiz/ent/contentitem"
	"github.com/bumpwise/bumpquiz/ent/generationevent"
	"github.com/bumpwise/bumpquiz/ent/llmrequestevent"
	"github.com/bumpwise/bumpquiz/ent/quizsession"
	"github.com/bumpwise/bumpquiz/ent/similarityrecord"
	"github.com/bumpwise/bumpquiz/ent/userlimit"
	"github.com/bumpwise/bumpquiz/ent/userprofile"
	"github.com/bumpwise/bumpquiz/ent/userstreak"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerAttempt is the client for interacting with the AnswerAttempt builders.
	AnswerAttempt *AnswerAttemptClient
	// BadgeEvent is the client for interacting with the BadgeEvent builders.
	BadgeEvent *BadgeEventClient
	// ContentItem is the client for interacting with the ContentItem builders.
	ContentItem *ContentItemClient
	// GenerationEvent is the client for interacting with the GenerationEvent builders.
	GenerationEvent *GenerationEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// QuizSession is the client for interacting with the QuizSession builders.
	QuizSession *QuizSessionClient
	// SimilarityRecord is the client for interacting with the SimilarityRecord builders.
	SimilarityRecord *SimilarityRecordClient
	// UserLimit is the client for interacting with the UserLimit builders.
	UserLimit *UserLimitClient
	// UserProfile is the client for interacting with the UserProfile builders.
	UserProfile *UserProfileClient
	// UserStreak is the client for interacting with the UserStreak builders.
	UserStreak *UserStreakClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerAttempt = NewAnswerAttemptClient(c.config)
	c.BadgeEvent = NewBadgeEventClient(c.config)
	c.ContentItem = NewContentItemClient(c.config)
	c.GenerationEvent = NewGenerationEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.QuizSession = NewQuizSessionClient(c.config)
	c.SimilarityRecord = NewSimilarityRecordClient(c.config)
	c.UserLimit = NewUserLimitClient(c.config)
	c.UserProfile = NewUserProfileClient(c.config)
	c.UserStreak = NewUserStreakClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AnswerAttempt:    NewAnswerAttemptClient(cfg),
		BadgeEvent:       NewBadgeEventClient(cfg),
		ContentItem:      NewContentItemClient(cfg),
		GenerationEvent:  NewGenerationEventClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		QuizSession:      NewQuizSessionClient(cfg),
		SimilarityRecord: NewSimilarityRecordClient(cfg),
		UserLimit:        NewUserLimitClient(cfg),
		UserProfile:      NewUserProfileClient(cfg),
		UserStreak:       NewUserStreakClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AnswerAttempt:    NewAnswerAttemptClient(cfg),
		BadgeEvent:       NewBadgeEventClient(cfg),
		ContentItem:      NewContentItemClient(cfg),
		GenerationEvent:  NewGenerationEventClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		QuizSession:      NewQuizSessionClient(cfg),
		SimilarityRecord: NewSimilarityRecordClient(cfg),
		UserLimit:        NewUserLimitClient(cfg),
		UserProfile:      NewUserProfileClient(cfg),
		UserStreak:       NewUserStreakClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerAttempt.
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
		c.AnswerAttempt, c.BadgeEvent, c.ContentItem, c.GenerationEvent,
		c.LLMRequestEvent, c.QuizSession, c.SimilarityRecord, c.UserLimit,
		c.UserProfile, c.UserStreak,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnswerAttempt, c.BadgeEvent, c.ContentItem, c.GenerationEvent,
		c.LLMRequestEvent, c.QuizSession, c.SimilarityRecord, c.UserLimit,
		c.UserProfile, c.UserStreak,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerAttemptMutation:
		return c.AnswerAttempt.mutate(ctx, m)
	case *BadgeEventMutation:
		return c.BadgeEvent.mutate(ctx, m)
	case *ContentItemMutation:
		return c.ContentItem.mutate(ctx, m)
	case *GenerationEventMutation:
		return c.GenerationEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *QuizSessionMutation:
		return c.QuizSession.mutate(ctx, m)
	case *SimilarityRecordMutation:
		return c.SimilarityRecord.mutate(ctx, m)
	case *UserLimitMutation:
		return c.UserLimit.mutate(ctx, m)
	case *UserProfileMutation:
		return c.UserProfile.mutate(ctx, m)
	case *UserStreakMutation:
		return c.UserStreak.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerAttemptClient is a client for the AnswerAttempt schema.
type AnswerAttemptClient struct {
	config
}

// NewAnswerAttemptClient returns a client for the AnswerAttempt from the given config.
func NewAnswerAttemptClient(c config) *AnswerAttemptClient {
	return &AnswerAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerattempt.Hooks(f(g(h())))`.
func (c *AnswerAttemptClient) Use(hooks ...Hook) {
	c.hooks.AnswerAttempt = append(c.hooks.AnswerAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerattempt.Intercept(f(g(h())))`.
func (c *AnswerAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerAttempt = append(c.inters.AnswerAttempt, interceptors...)
}

// Create returns a builder for creating a AnswerAttempt entity.
func (c *AnswerAttemptClient) Create() *AnswerAttemptCreate {
	mutation := newAnswerAttemptMutation(c.config, OpCreate)
	return &AnswerAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerAttempt entities.
func (c *AnswerAttemptClient) CreateBulk(builders ...*AnswerAttemptCreate) *AnswerAttemptCreateBulk {
	return &AnswerAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerAttemptClient) MapCreateBulk(slice any, setFunc func(*AnswerAttemptCreate, int)) *AnswerAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerAttemptCreateBulk{err: fmt.Errorf("calling to AnswerAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerAttempt.
func (c *AnswerAttemptClient) Update() *AnswerAttemptUpdate {
	mutation := newAnswerAttemptMutation(c.config, OpUpdate)
	return &AnswerAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerAttemptClient) UpdateOne(_m *AnswerAttempt) *AnswerAttemptUpdateOne {
	mutation := newAnswerAttemptMutation(c.config, OpUpdateOne, withAnswerAttempt(_m))
	return &AnswerAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerAttemptClient) UpdateOneID(id int) *AnswerAttemptUpdateOne {
	mutation := newAnswerAttemptMutation(c.config, OpUpdateOne, withAnswerAttemptID(id))
	return &AnswerAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerAttempt.
func (c *AnswerAttemptClient) Delete() *AnswerAttemptDelete {
	mutation := newAnswerAttemptMutation(c.config, OpDelete)
	return &AnswerAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerAttemptClient) DeleteOne(_m *AnswerAttempt) *AnswerAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerAttemptClient) DeleteOneID(id int) *AnswerAttemptDeleteOne {
	builder := c.Delete().Where(answerattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerAttemptDeleteOne{builder}
}

// Query returns a query builder for AnswerAttempt.
func (c *AnswerAttemptClient) Query() *AnswerAttemptQuery {
	return &AnswerAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerAttempt entity by its id.
func (c *AnswerAttemptClient) Get(ctx context.Context, id int) (*AnswerAttempt, error) {
	return c.Query().Where(answerattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerAttemptClient) GetX(ctx context.Context, id int) *AnswerAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerAttemptClient) Hooks() []Hook {
	return c.hooks.AnswerAttempt
}

// Interceptors returns the client interceptors.
func (c *AnswerAttemptClient) Interceptors() []Interceptor {
	return c.inters.AnswerAttempt
}

func (c *AnswerAttemptClient) mutate(ctx context.Context, m *AnswerAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerAttempt mutation op: %q", m.Op())
	}
}

// BadgeEventClient is a client for the BadgeEvent schema.
type BadgeEventClient struct {
	config
}

// NewBadgeEventClient returns a client for the BadgeEvent from the given config.
func NewBadgeEventClient(c config) *BadgeEventClient {
	return &BadgeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `badgeevent.Hooks(f(g(h())))`.
func (c *BadgeEventClient) Use(hooks ...Hook) {
	c.hooks.BadgeEvent = append(c.hooks.BadgeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `badgeevent.Intercept(f(g(h())))`.
func (c *BadgeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.BadgeEvent = append(c.inters.BadgeEvent, interceptors...)
}

// Create returns a builder for creating a BadgeEvent entity.
func (c *BadgeEventClient) Create() *BadgeEventCreate {
	mutation := newBadgeEventMutation(c.config, OpCreate)
	return &BadgeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BadgeEvent entities.
func (c *BadgeEventClient) CreateBulk(builders ...*BadgeEventCreate) *BadgeEventCreateBulk {
	return &BadgeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BadgeEventClient) MapCreateBulk(slice any, setFunc func(*BadgeEventCreate, int)) *BadgeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BadgeEventCreateBulk{err: fmt.Errorf("calling to BadgeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BadgeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BadgeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BadgeEvent.
func (c *BadgeEventClient) Update() *BadgeEventUpdate {
	mutation := newBadgeEventMutation(c.config, OpUpdate)
	return &BadgeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BadgeEventClient) UpdateOne(_m *BadgeEvent) *BadgeEventUpdateOne {
	mutation := newBadgeEventMutation(c.config, OpUpdateOne, withBadgeEvent(_m))
	return &BadgeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BadgeEventClient) UpdateOneID(id int) *BadgeEventUpdateOne {
	mutation := newBadgeEventMutation(c.config, OpUpdateOne, withBadgeEventID(id))
	return &BadgeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BadgeEvent.
func (c *BadgeEventClient) Delete() *BadgeEventDelete {
	mutation := newBadgeEventMutation(c.config, OpDelete)
	return &BadgeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BadgeEventClient) DeleteOne(_m *BadgeEvent) *BadgeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BadgeEventClient) DeleteOneID(id int) *BadgeEventDeleteOne {
	builder := c.Delete().Where(badgeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BadgeEventDeleteOne{builder}
}

// Query returns a query builder for BadgeEvent.
func (c *BadgeEventClient) Query() *BadgeEventQuery {
	return &BadgeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBadgeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a BadgeEvent entity by its id.
func (c *BadgeEventClient) Get(ctx context.Context, id int) (*BadgeEvent, error) {
	return c.Query().Where(badgeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BadgeEventClient) GetX(ctx context.Context, id int) *BadgeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BadgeEventClient) Hooks() []Hook {
	return c.hooks.BadgeEvent
}

// Interceptors returns the client interceptors.
func (c *BadgeEventClient) Interceptors() []Interceptor {
	return c.inters.BadgeEvent
}

func (c *BadgeEventClient) mutate(ctx context.Context, m *BadgeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BadgeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BadgeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BadgeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BadgeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BadgeEvent mutation op: %q", m.Op())
	}
}

// ContentItemClient is a client for the ContentItem schema.
type ContentItemClient struct {
	config
}

// NewContentItemClient returns a client for the ContentItem from the given config.
func NewContentItemClient(c config) *ContentItemClient {
	return &ContentItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentitem.Hooks(f(g(h())))`.
func (c *ContentItemClient) Use(hooks ...Hook) {
	c.hooks.ContentItem = append(c.hooks.ContentItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentitem.Intercept(f(g(h())))`.
func (c *ContentItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentItem = append(c.inters.ContentItem, interceptors...)
}

// Create returns a builder for creating a ContentItem entity.
func (c *ContentItemClient) Create() *ContentItemCreate {
	mutation := newContentItemMutation(c.config, OpCreate)
	return &ContentItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentItem entities.
func (c *ContentItemClient) CreateBulk(builders ...*ContentItemCreate) *ContentItemCreateBulk {
	return &ContentItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentItemClient) MapCreateBulk(slice any, setFunc func(*ContentItemCreate, int)) *ContentItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentItemCreateBulk{err: fmt.Errorf("calling to ContentItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentItem.
func (c *ContentItemClient) Update() *ContentItemUpdate {
	mutation := newContentItemMutation(c.config, OpUpdate)
	return &ContentItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentItemClient) UpdateOne(_m *ContentItem) *ContentItemUpdateOne {
	mutation := newContentItemMutation(c.config, OpUpdateOne, withContentItem(_m))
	return &ContentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentItemClient) UpdateOneID(id string) *ContentItemUpdateOne {
	mutation := newContentItemMutation(c.config, OpUpdateOne, withContentItemID(id))
	return &ContentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentItem.
func (c *ContentItemClient) Delete() *ContentItemDelete {
	mutation := newContentItemMutation(c.config, OpDelete)
	return &ContentItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentItemClient) DeleteOne(_m *ContentItem) *ContentItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentItemClient) DeleteOneID(id string) *ContentItemDeleteOne {
	builder := c.Delete().Where(contentitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentItemDeleteOne{builder}
}

// Query returns a query builder for ContentItem.
func (c *ContentItemClient) Query() *ContentItemQuery {
	return &ContentItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentItem entity by its id.
func (c *ContentItemClient) Get(ctx context.Context, id string) (*ContentItem, error) {
	return c.Query().Where(contentitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentItemClient) GetX(ctx context.Context, id string) *ContentItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContentItemClient) Hooks() []Hook {
	return c.hooks.ContentItem
}

// Interceptors returns the client interceptors.
func (c *ContentItemClient) Interceptors() []Interceptor {
	return c.inters.ContentItem
}

func (c *ContentItemClient) mutate(ctx context.Context, m *ContentItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentItem mutation op: %q", m.Op())
	}
}

// GenerationEventClient is a client for the GenerationEvent schema.
type GenerationEventClient struct {
	config
}

// NewGenerationEventClient returns a client for the GenerationEvent from the given config.
func NewGenerationEventClient(c config) *GenerationEventClient {
	return &GenerationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generationevent.Hooks(f(g(h())))`.
func (c *GenerationEventClient) Use(hooks ...Hook) {
	c.hooks.GenerationEvent = append(c.hooks.GenerationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generationevent.Intercept(f(g(h())))`.
func (c *GenerationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenerationEvent = append(c.inters.GenerationEvent, interceptors...)
}

// Create returns a builder for creating a GenerationEvent entity.
func (c *GenerationEventClient) Create() *GenerationEventCreate {
	mutation := newGenerationEventMutation(c.config, OpCreate)
	return &GenerationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenerationEvent entities.
func (c *GenerationEventClient) CreateBulk(builders ...*GenerationEventCreate) *GenerationEventCreateBulk {
	return &GenerationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationEventClient) MapCreateBulk(slice any, setFunc func(*GenerationEventCreate, int)) *GenerationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationEventCreateBulk{err: fmt.Errorf("calling to GenerationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenerationEvent.
func (c *GenerationEventClient) Update() *GenerationEventUpdate {
	mutation := newGenerationEventMutation(c.config, OpUpdate)
	return &GenerationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationEventClient) UpdateOne(_m *GenerationEvent) *GenerationEventUpdateOne {
	mutation := newGenerationEventMutation(c.config, OpUpdateOne, withGenerationEvent(_m))
	return &GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationEventClient) UpdateOneID(id int) *GenerationEventUpdateOne {
	mutation := newGenerationEventMutation(c.config, OpUpdateOne, withGenerationEventID(id))
	return &GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenerationEvent.
func (c *GenerationEventClient) Delete() *GenerationEventDelete {
	mutation := newGenerationEventMutation(c.config, OpDelete)
	return &GenerationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationEventClient) DeleteOne(_m *GenerationEvent) *GenerationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationEventClient) DeleteOneID(id int) *GenerationEventDeleteOne {
	builder := c.Delete().Where(generationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationEventDeleteOne{builder}
}

// Query returns a query builder for GenerationEvent.
func (c *GenerationEventClient) Query() *GenerationEventQuery {
	return &GenerationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenerationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a GenerationEvent entity by its id.
func (c *GenerationEventClient) Get(ctx context.Context, id int) (*GenerationEvent, error) {
	return c.Query().Where(generationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationEventClient) GetX(ctx context.Context, id int) *GenerationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenerationEventClient) Hooks() []Hook {
	return c.hooks.GenerationEvent
}

// Interceptors returns the client interceptors.
func (c *GenerationEventClient) Interceptors() []Interceptor {
	return c.inters.GenerationEvent
}

func (c *GenerationEventClient) mutate(ctx context.Context, m *GenerationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenerationEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// QuizSessionClient is a client for the QuizSession schema.
type QuizSessionClient struct {
	config
}

// NewQuizSessionClient returns a client for the QuizSession from the given config.
func NewQuizSessionClient(c config) *QuizSessionClient {
	return &QuizSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizsession.Hooks(f(g(h())))`.
func (c *QuizSessionClient) Use(hooks ...Hook) {
	c.hooks.QuizSession = append(c.hooks.QuizSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizsession.Intercept(f(g(h())))`.
func (c *QuizSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizSession = append(c.inters.QuizSession, interceptors...)
}

// Create returns a builder for creating a QuizSession entity.
func (c *QuizSessionClient) Create() *QuizSessionCreate {
	mutation := newQuizSessionMutation(c.config, OpCreate)
	return &QuizSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizSession entities.
func (c *QuizSessionClient) CreateBulk(builders ...*QuizSessionCreate) *QuizSessionCreateBulk {
	return &QuizSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizSessionClient) MapCreateBulk(slice any, setFunc func(*QuizSessionCreate, int)) *QuizSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizSessionCreateBulk{err: fmt.Errorf("calling to QuizSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizSession.
func (c *QuizSessionClient) Update() *QuizSessionUpdate {
	mutation := newQuizSessionMutation(c.config, OpUpdate)
	return &QuizSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizSessionClient) UpdateOne(_m *QuizSession) *QuizSessionUpdateOne {
	mutation := newQuizSessionMutation(c.config, OpUpdateOne, withQuizSession(_m))
	return &QuizSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizSessionClient) UpdateOneID(id string) *QuizSessionUpdateOne {
	mutation := newQuizSessionMutation(c.config, OpUpdateOne, withQuizSessionID(id))
	return &QuizSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizSession.
func (c *QuizSessionClient) Delete() *QuizSessionDelete {
	mutation := newQuizSessionMutation(c.config, OpDelete)
	return &QuizSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizSessionClient) DeleteOne(_m *QuizSession) *QuizSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizSessionClient) DeleteOneID(id string) *QuizSessionDeleteOne {
	builder := c.Delete().Where(quizsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizSessionDeleteOne{builder}
}

// Query returns a query builder for QuizSession.
func (c *QuizSessionClient) Query() *QuizSessionQuery {
	return &QuizSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizSession},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizSession entity by its id.
func (c *QuizSessionClient) Get(ctx context.Context, id string) (*QuizSession, error) {
	return c.Query().Where(quizsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizSessionClient) GetX(ctx context.Context, id string) *QuizSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizSessionClient) Hooks() []Hook {
	return c.hooks.QuizSession
}

// Interceptors returns the client interceptors.
func (c *QuizSessionClient) Interceptors() []Interceptor {
	return c.inters.QuizSession
}

func (c *QuizSessionClient) mutate(ctx context.Context, m *QuizSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizSession mutation op: %q", m.Op())
	}
}

// SimilarityRecordClient is a client for the SimilarityRecord schema.
type SimilarityRecordClient struct {
	config
}

// NewSimilarityRecordClient returns a client for the SimilarityRecord from the given config.
func NewSimilarityRecordClient(c config) *SimilarityRecordClient {
	return &SimilarityRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `similarityrecord.Hooks(f(g(h())))`.
func (c *SimilarityRecordClient) Use(hooks ...Hook) {
	c.hooks.SimilarityRecord = append(c.hooks.SimilarityRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `similarityrecord.Intercept(f(g(h())))`.
func (c *SimilarityRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.SimilarityRecord = append(c.inters.SimilarityRecord, interceptors...)
}

// Create returns a builder for creating a SimilarityRecord entity.
func (c *SimilarityRecordClient) Create() *SimilarityRecordCreate {
	mutation := newSimilarityRecordMutation(c.config, OpCreate)
	return &SimilarityRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SimilarityRecord entities.
func (c *SimilarityRecordClient) CreateBulk(builders ...*SimilarityRecordCreate) *SimilarityRecordCreateBulk {
	return &SimilarityRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SimilarityRecordClient) MapCreateBulk(slice any, setFunc func(*SimilarityRecordCreate, int)) *SimilarityRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SimilarityRecordCreateBulk{err: fmt.Errorf("calling to SimilarityRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SimilarityRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SimilarityRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SimilarityRecord.
func (c *SimilarityRecordClient) Update() *SimilarityRecordUpdate {
	mutation := newSimilarityRecordMutation(c.config, OpUpdate)
	return &SimilarityRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SimilarityRecordClient) UpdateOne(_m *SimilarityRecord) *SimilarityRecordUpdateOne {
	mutation := newSimilarityRecordMutation(c.config, OpUpdateOne, withSimilarityRecord(_m))
	return &SimilarityRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SimilarityRecordClient) UpdateOneID(id int) *SimilarityRecordUpdateOne {
	mutation := newSimilarityRecordMutation(c.config, OpUpdateOne, withSimilarityRecordID(id))
	return &SimilarityRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SimilarityRecord.
func (c *SimilarityRecordClient) Delete() *SimilarityRecordDelete {
	mutation := newSimilarityRecordMutation(c.config, OpDelete)
	return &SimilarityRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SimilarityRecordClient) DeleteOne(_m *SimilarityRecord) *SimilarityRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SimilarityRecordClient) DeleteOneID(id int) *SimilarityRecordDeleteOne {
	builder := c.Delete().Where(similarityrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SimilarityRecordDeleteOne{builder}
}

// Query returns a query builder for SimilarityRecord.
func (c *SimilarityRecordClient) Query() *SimilarityRecordQuery {
	return &SimilarityRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSimilarityRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a SimilarityRecord entity by its id.
func (c *SimilarityRecordClient) Get(ctx context.Context, id int) (*SimilarityRecord, error) {
	return c.Query().Where(similarityrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SimilarityRecordClient) GetX(ctx context.Context, id int) *SimilarityRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SimilarityRecordClient) Hooks() []Hook {
	return c.hooks.SimilarityRecord
}

// Interceptors returns the client interceptors.
func (c *SimilarityRecordClient) Interceptors() []Interceptor {
	return c.inters.SimilarityRecord
}

func (c *SimilarityRecordClient) mutate(ctx context.Context, m *SimilarityRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SimilarityRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SimilarityRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SimilarityRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SimilarityRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SimilarityRecord mutation op: %q", m.Op())
	}
}

// UserLimitClient is a client for the UserLimit schema.
type UserLimitClient struct {
	config
}

// NewUserLimitClient returns a client for the UserLimit from the given config.
func NewUserLimitClient(c config) *UserLimitClient {
	return &UserLimitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userlimit.Hooks(f(g(h())))`.
func (c *UserLimitClient) Use(hooks ...Hook) {
	c.hooks.UserLimit = append(c.hooks.UserLimit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userlimit.Intercept(f(g(h())))`.
func (c *UserLimitClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserLimit = append(c.inters.UserLimit, interceptors...)
}

// Create returns a builder for creating a UserLimit entity.
func (c *UserLimitClient) Create() *UserLimitCreate {
	mutation := newUserLimitMutation(c.config, OpCreate)
	return &UserLimitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserLimit entities.
func (c *UserLimitClient) CreateBulk(builders ...*UserLimitCreate) *UserLimitCreateBulk {
	return &UserLimitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserLimitClient) MapCreateBulk(slice any, setFunc func(*UserLimitCreate, int)) *UserLimitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserLimitCreateBulk{err: fmt.Errorf("calling to UserLimitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserLimitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserLimitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserLimit.
func (c *UserLimitClient) Update() *UserLimitUpdate {
	mutation := newUserLimitMutation(c.config, OpUpdate)
	return &UserLimitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserLimitClient) UpdateOne(_m *UserLimit) *UserLimitUpdateOne {
	mutation := newUserLimitMutation(c.config, OpUpdateOne, withUserLimit(_m))
	return &UserLimitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserLimitClient) UpdateOneID(id int) *UserLimitUpdateOne {
	mutation := newUserLimitMutation(c.config, OpUpdateOne, withUserLimitID(id))
	return &UserLimitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserLimit.
func (c *UserLimitClient) Delete() *UserLimitDelete {
	mutation := newUserLimitMutation(c.config, OpDelete)
	return &UserLimitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserLimitClient) DeleteOne(_m *UserLimit) *UserLimitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserLimitClient) DeleteOneID(id int) *UserLimitDeleteOne {
	builder := c.Delete().Where(userlimit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserLimitDeleteOne{builder}
}

// Query returns a query builder for UserLimit.
func (c *UserLimitClient) Query() *UserLimitQuery {
	return &UserLimitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserLimit},
		inters: c.Interceptors(),
	}
}

// Get returns a UserLimit entity by its id.
func (c *UserLimitClient) Get(ctx context.Context, id int) (*UserLimit, error) {
	return c.Query().Where(userlimit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserLimitClient) GetX(ctx context.Context, id int) *UserLimit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserLimitClient) Hooks() []Hook {
	return c.hooks.UserLimit
}

// Interceptors returns the client interceptors.
func (c *UserLimitClient) Interceptors() []Interceptor {
	return c.inters.UserLimit
}

func (c *UserLimitClient) mutate(ctx context.Context, m *UserLimitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserLimitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserLimitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserLimitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserLimitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserLimit mutation op: %q", m.Op())
	}
}

// UserProfileClient is a client for the UserProfile schema.
type UserProfileClient struct {
	config
}

// NewUserProfileClient returns a client for the UserProfile from the given config.
func NewUserProfileClient(c config) *UserProfileClient {
	return &UserProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprofile.Hooks(f(g(h())))`.
func (c *UserProfileClient) Use(hooks ...Hook) {
	c.hooks.UserProfile = append(c.hooks.UserProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprofile.Intercept(f(g(h())))`.
func (c *UserProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProfile = append(c.inters.UserProfile, interceptors...)
}

// Create returns a builder for creating a UserProfile entity.
func (c *UserProfileClient) Create() *UserProfileCreate {
	mutation := newUserProfileMutation(c.config, OpCreate)
	return &UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProfile entities.
func (c *UserProfileClient) CreateBulk(builders ...*UserProfileCreate) *UserProfileCreateBulk {
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProfileClient) MapCreateBulk(slice any, setFunc func(*UserProfileCreate, int)) *UserProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProfileCreateBulk{err: fmt.Errorf("calling to UserProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProfile.
func (c *UserProfileClient) Update() *UserProfileUpdate {
	mutation := newUserProfileMutation(c.config, OpUpdate)
	return &UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProfileClient) UpdateOne(_m *UserProfile) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfile(_m))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProfileClient) UpdateOneID(id int) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfileID(id))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProfile.
func (c *UserProfileClient) Delete() *UserProfileDelete {
	mutation := newUserProfileMutation(c.config, OpDelete)
	return &UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProfileClient) DeleteOne(_m *UserProfile) *UserProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProfileClient) DeleteOneID(id int) *UserProfileDeleteOne {
	builder := c.Delete().Where(userprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProfileDeleteOne{builder}
}

// Query returns a query builder for UserProfile.
func (c *UserProfileClient) Query() *UserProfileQuery {
	return &UserProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProfile entity by its id.
func (c *UserProfileClient) Get(ctx context.Context, id int) (*UserProfile, error) {
	return c.Query().Where(userprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProfileClient) GetX(ctx context.Context, id int) *UserProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserProfileClient) Hooks() []Hook {
	return c.hooks.UserProfile
}

// Interceptors returns the client interceptors.
func (c *UserProfileClient) Interceptors() []Interceptor {
	return c.inters.UserProfile
}

func (c *UserProfileClient) mutate(ctx context.Context, m *UserProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserProfile mutation op: %q", m.Op())
	}
}

// UserStreakClient is a client for the UserStreak schema.
type UserStreakClient struct {
	config
}

// NewUserStreakClient returns a client for the UserStreak from the given config.
func NewUserStreakClient(c config) *UserStreakClient {
	return &UserStreakClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userstreak.Hooks(f(g(h())))`.
func (c *UserStreakClient) Use(hooks ...Hook) {
	c.hooks.UserStreak = append(c.hooks.UserStreak, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userstreak.Intercept(f(g(h())))`.
func (c *UserStreakClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserStreak = append(c.inters.UserStreak, interceptors...)
}

// Create returns a builder for creating a UserStreak entity.
func (c *UserStreakClient) Create() *UserStreakCreate {
	mutation := newUserStreakMutation(c.config, OpCreate)
	return &UserStreakCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserStreak entities.
func (c *UserStreakClient) CreateBulk(builders ...*UserStreakCreate) *UserStreakCreateBulk {
	return &UserStreakCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserStreakClient) MapCreateBulk(slice any, setFunc func(*UserStreakCreate, int)) *UserStreakCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserStreakCreateBulk{err: fmt.Errorf("calling to UserStreakClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserStreakCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserStreakCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserStreak.
func (c *UserStreakClient) Update() *UserStreakUpdate {
	mutation := newUserStreakMutation(c.config, OpUpdate)
	return &UserStreakUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserStreakClient) UpdateOne(_m *UserStreak) *UserStreakUpdateOne {
	mutation := newUserStreakMutation(c.config, OpUpdateOne, withUserStreak(_m))
	return &UserStreakUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserStreakClient) UpdateOneID(id int) *UserStreakUpdateOne {
	mutation := newUserStreakMutation(c.config, OpUpdateOne, withUserStreakID(id))
	return &UserStreakUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserStreak.
func (c *UserStreakClient) Delete() *UserStreakDelete {
	mutation := newUserStreakMutation(c.config, OpDelete)
	return &UserStreakDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserStreakClient) DeleteOne(_m *UserStreak) *UserStreakDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserStreakClient) DeleteOneID(id int) *UserStreakDeleteOne {
	builder := c.Delete().Where(userstreak.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserStreakDeleteOne{builder}
}

// Query returns a query builder for UserStreak.
func (c *UserStreakClient) Query() *UserStreakQuery {
	return &UserStreakQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserStreak},
		inters: c.Interceptors(),
	}
}

// Get returns a UserStreak entity by its id.
func (c *UserStreakClient) Get(ctx context.Context, id int) (*UserStreak, error) {
	return c.Query().Where(userstreak.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserStreakClient) GetX(ctx context.Context, id int) *UserStreak {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserStreakClient) Hooks() []Hook {
	return c.hooks.UserStreak
}

// Interceptors returns the client interceptors.
func (c *UserStreakClient) Interceptors() []Interceptor {
	return c.inters.UserStreak
}

func (c *UserStreakClient) mutate(ctx context.Context, m *UserStreakMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserStreakCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserStreakUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserStreakUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserStreakDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserStreak mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerAttempt, BadgeEvent, ContentItem, GenerationEvent, LLMRequestEvent,
		QuizSession, SimilarityRecord, UserLimit, UserProfile, UserStreak []ent.Hook
	}
	inters struct {
		AnswerAttempt, BadgeEvent, ContentItem, GenerationEvent, LLMRequestEvent,
		QuizSession, SimilarityRecord, UserLimit, UserProfile,
		UserStreak []ent.Interceptor
	}
)
