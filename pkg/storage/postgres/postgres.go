// Package postgres implements the storage interfaces on top of PostgreSQL,
// using pgx for connectivity and goqu for query construction.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"mirrorbot/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Options defines the connection parameters for PostgreSQL.
type Options struct {
	// Username authenticates the connection.
	Username string
	// Password authenticates the connection.
	Password string
	// Host is the server hostname or IP address.
	Host string
	// SslMode selects the SSL mode, e.g. "disable" or "require".
	SslMode string
	// Port is the server port.
	Port int
	// Database names the database to connect to.
	Database string
	// ConnMaxLifetime bounds how long a connection may be reused.
	ConnMaxLifetime time.Duration
	// ConnMaxIdleTime bounds how long a connection may sit idle.
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections caps the pool size.
	MaxOpenConnections int
	// MaxIdleConnections sets how many connections the pool keeps ready.
	MaxIdleConnections int
}

// DB is the subset of database/sql methods this package executes queries
// through. Both *sql.DB and *sql.Tx satisfy it, so the same query code runs
// inside and outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the subset of goqu entry points used to construct queries. Both
// a goqu database handle and a goqu transaction handle implement it.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
}

// PgSQL implements storage.Storage and storage.TxStorage for PostgreSQL.
type PgSQL struct {
	// DB is the underlying executor: a *sql.DB outside transactions, a
	// *sql.Tx inside one.
	DB DB
	// Builder constructs SQL queries bound to DB.
	Builder Builder
	// Pool is the pgx connection pool backing DB; nil on transactional handles.
	Pool *pgxpool.Pool
}

// Close closes the pgx connection pool and the database/sql wrapper.
func (p *PgSQL) Close() error {
	if p.Pool != nil {
		p.Pool.Close()
	}
	if db, ok := p.DB.(*sql.DB); ok {
		_ = db.Close()
	}

	return nil
}

// tx returns the transactional executor, or storage.ErrNotInTx when the
// handle runs directly on the pool.
func (p *PgSQL) tx() (*sql.Tx, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

// Commit commits the current transaction. It returns storage.ErrNotInTx when
// the handle is not transactional.
func (p *PgSQL) Commit() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction. It returns storage.ErrNotInTx when
// the handle is not transactional.
func (p *PgSQL) Rollback() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a database transaction and returns a transactional handle for
// it. Calling Begin on an already transactional handle returns
// storage.ErrAlreadyInTx.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	pool, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := pool.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{DB: tx, Builder: goqu.NewTx("postgres", tx)}, nil
}

// WithTx starts a transaction, runs cb with a handle bound to it, and commits
// when cb returns nil. Any error from cb rolls the transaction back and is
// returned as is.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// New connects to PostgreSQL and returns a storage handle backed by a pgx
// pool, wrapped with database/sql for compatibility with goqu, goose and
// River's database/sql driver.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(connString(options))
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	applyPoolLimits(cfg, options)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
	}, nil
}

// connString renders options as a keyword/value conninfo string.
func connString(options Options) string {
	return fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		options.Host, options.Port, options.Username, options.Database, options.Password, options.SslMode)
}

// applyPoolLimits copies the connection limits into the pool config, leaving
// pgx defaults in place for unset values.
func applyPoolLimits(cfg *pgxpool.Config, options Options) {
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
}
