package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var savepointName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Transactor runs a unit of work on the write connection. Everything fn writes through tx commits
// together or not at all.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error
	WithinSavepoint(ctx context.Context, tx *sqlx.Tx, name string, fn func() error) error
}

type transactorImpl struct {
	db *Connection
}

func NewTransactor(db *Connection) Transactor {
	return &transactorImpl{
		db: db,
	}
}

func (t *transactorImpl) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) (err error) {
	tx, err := t.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithinSavepoint isolates fn inside tx: when fn fails only its own writes are undone and the
// surrounding transaction stays usable.
func (t *transactorImpl) WithinSavepoint(ctx context.Context, tx *sqlx.Tx, name string, fn func() error) error {
	if !savepointName.MatchString(name) {
		return fmt.Errorf("invalid savepoint name %q", name)
	}

	if _, err := tx.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("failed to create savepoint %s: %w", name, err)
	}

	if err := fn(); err != nil {
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			log.Error().Err(rbErr).Str("savepoint", name).Msg("failed to rollback to savepoint")

			return fmt.Errorf("failed to rollback to savepoint %s: %w", name, rbErr)
		}

		return err
	}

	if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return fmt.Errorf("failed to release savepoint %s: %w", name, err)
	}

	return nil
}
