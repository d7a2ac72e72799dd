package repository

import (
	"context"

	"able-match/internal/database"
)

// querier is the read/write surface shared by database.DB and
// database.Tx, so a repository can run against either.
type querier interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (database.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) database.Row
}

// TxRunner executes fn against transaction-bound match and application
// repositories. fn returning an error rolls the whole unit back; the
// match status change and the application row always land together.
type TxRunner interface {
	RunMatchApplicationTx(ctx context.Context, fn func(matches MatchRepository, applications ApplicationRepository) error) error
}

type PostgresTxRunner struct {
	db database.DB
}

func NewPostgresTxRunner(db database.DB) *PostgresTxRunner {
	return &PostgresTxRunner{db: db}
}

func (r *PostgresTxRunner) RunMatchApplicationTx(ctx context.Context, fn func(matches MatchRepository, applications ApplicationRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	matches := &PostgresMatchRepository{db: tx}
	applications := &PostgresApplicationRepository{db: tx}

	if err := fn(matches, applications); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
