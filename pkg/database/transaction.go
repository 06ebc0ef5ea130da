package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// Querier returns the transaction bound to ctx, or fallback when ctx carries none.
func Querier(ctx context.Context, fallback DBTX) DBTX {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return fallback
}

// TxFunc runs inside a transaction; ctx carries the pgx.Tx.
type TxFunc func(ctx context.Context) error

// TxManager runs units of work atomically.
type TxManager interface {
	WithTransaction(ctx context.Context, fn TxFunc) error
	WithReadOnlyTransaction(ctx context.Context, fn TxFunc) error
}

// Beginner is satisfied by *pgxpool.Pool.
type Beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type postgresTxManager struct {
	db Beginner
}

func NewTxManager(db Beginner) TxManager {
	return &postgresTxManager{db: db}
}

func (m *postgresTxManager) WithTransaction(ctx context.Context, fn TxFunc) error {
	return m.run(ctx, pgx.TxOptions{}, fn)
}

func (m *postgresTxManager) WithReadOnlyTransaction(ctx context.Context, fn TxFunc) error {
	return m.run(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

// run begins a transaction, defers rollback (ignored once committed),
// executes fn and commits when fn succeeds.
// Nested calls reuse the outer transaction.
func (m *postgresTxManager) run(ctx context.Context, opts pgx.TxOptions, fn TxFunc) (err error) {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
			}
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithTransactionResult wraps a function with a return value in a transaction
func WithTransactionResult[T any](ctx context.Context, m TxManager, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T

	err := m.WithTransaction(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

// WithReadOnlyResult is WithTransactionResult on a read-only transaction
func WithReadOnlyResult[T any](ctx context.Context, m TxManager, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T

	err := m.WithReadOnlyTransaction(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
