package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/jmoiron/sqlx"
)

type txStore struct {
	tx *sqlx.Tx
}

func newTx(tx *sqlx.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the caller commits or rolls back and the DB stays open.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                 { return &usersRepo{q: t.tx} }
func (t *txStore) Events() store.Events               { return &eventsRepo{q: t.tx} }
func (t *txStore) Achievements() store.Achievements   { return &achievementsRepo{q: t.tx} }
func (t *txStore) Results() store.Results             { return &resultsRepo{q: t.tx} }
func (t *txStore) AnnualReports() store.AnnualReports { return &annualReportsRepo{q: t.tx} }

// ApplyMigrations is a no-op; migrations run before any tx is started.
func (t *txStore) ApplyMigrations() error { return nil }
