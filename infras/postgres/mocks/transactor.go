package mocks

import (
	"context"
	"hotelops/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
}

// WithinTx implements postgres.Transactor.
func (t *transactorImpl) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	return fn(ctx, nil)
}

// WithinSavepoint implements postgres.Transactor.
func (t *transactorImpl) WithinSavepoint(_ context.Context, _ *sqlx.Tx, _ string, fn func() error) error {
	return fn()
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
