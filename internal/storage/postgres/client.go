package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Client is the process-wide datastore handle. The connection is opened on
// first use and shared by all stores; a failed connect is retried on the
// next call.
type Client struct {
	dsn          string
	maxOpenConns int

	mu sync.Mutex
	db *sqlx.DB
}

func NewClient(dsn string, maxOpenConns int) *Client {
	return &Client{dsn: dsn, maxOpenConns: maxOpenConns}
}

// NewClientFromDB wraps an already open connection.
func NewClientFromDB(db *sqlx.DB) *Client {
	return &Client{db: db}
}

// DB returns the shared connection, connecting if needed.
func (c *Client) DB(ctx context.Context) (*sqlx.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", c.dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if c.maxOpenConns > 0 {
		db.SetMaxOpenConns(c.maxOpenConns)
		db.SetMaxIdleConns(c.maxOpenConns)
	}

	c.db = db
	return db, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// executor prefers the transaction carried by ctx over the shared handle.
func (c *Client) executor(ctx context.Context) (sqlx.ExtContext, error) {
	db, err := c.DB(ctx)
	if err != nil {
		return nil, err
	}
	return GetExecutor(ctx, db), nil
}
