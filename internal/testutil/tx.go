package testutil

import (
	"context"

	"bookmanager/pkg/database"
)

// TxManager runs fn directly and records how it was called
type TxManager struct {
	Writes   int
	ReadOnly int
}

var _ database.TxManager = (*TxManager)(nil)

func (m *TxManager) WithTransaction(ctx context.Context, fn database.TxFunc) error {
	m.Writes++
	return fn(ctx)
}

func (m *TxManager) WithReadOnlyTransaction(ctx context.Context, fn database.TxFunc) error {
	m.ReadOnly++
	return fn(ctx)
}
