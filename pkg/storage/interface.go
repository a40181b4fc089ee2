// Package storage defines the persistence interfaces the application relies
// on. It abstracts storage operations and transaction management so that
// different backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is a composite interface covering every domain-specific storage
// capability the application needs. Implementations typically embed narrower
// interfaces such as IncidentStorage.
type AllStorage interface {
	IncidentStorage
	JobStorage
}

// TxStorage describes a storage handle bound to a database transaction. It
// exposes the same capabilities as AllStorage plus transaction control. A
// TxStorage must not be used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle that can start
// transactions and manages the lifecycle of the underlying connections.
type Storage interface {
	AllStorage

	// Close releases the resources held by the storage implementation, such
	// as the underlying connection pool. The instance must not be used after
	// Close.
	Close() error

	// Begin starts a transaction and returns a TxStorage scoped to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with a handle bound to it, and
	// commits when cb returns nil or rolls back when it returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
