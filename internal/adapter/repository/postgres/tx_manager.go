package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gymops/cashcut/internal/usecase"
)

type txBeginner interface {
	Begin(context.Context) (pgx.Tx, error)
}

// TxManager hands out transactions that span the cut, expense and
// audit repositories. Cut creation allocates its folio number inside
// the same transaction as the insert.
type TxManager struct {
	pool txBeginner
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return newTxManagerWithPool(pool)
}

func newTxManagerWithPool(pool txBeginner) *TxManager {
	return &TxManager{pool: pool}
}

func (m *TxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx}, nil
}

// Tx adapts a pgx transaction to the usecase.Transaction port.
type Tx struct {
	tx pgx.Tx
}

func (t *Tx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *Tx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

// PgxTx exposes the underlying pgx.Tx for repositories that need to
// run statements inside the transaction.
func (t *Tx) PgxTx() pgx.Tx {
	return t.tx
}
