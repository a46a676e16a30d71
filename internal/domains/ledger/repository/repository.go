package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/ledger/model"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/logger"
	gRepo "hotelops/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

type Account interface {
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Account, error)
	EnsureTx(ctx context.Context, sqltx *sqlx.Tx, accounts []model.Account) error
	TrialBalance(ctx context.Context, hotelID string, from, to time.Time) ([]model.AccountBalance, error)
}

type Entry interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.JournalEntry) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.JournalEntry, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type Line interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.JournalLine) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.JournalLine, error)
}

type accountRepositoryImpl struct {
	gRepo.Repository[model.Account]
	db   *postgres.Connection
	otel otel.Otel
}

func NewAccount(db *postgres.Connection, otel otel.Otel) Account {
	return &accountRepositoryImpl{
		Repository: gRepo.NewRepository[model.Account](model.AccountEntityName, model.AccountTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// EnsureTx inserts the accounts that do not exist yet for their hotel and leaves the others untouched.
func (r *accountRepositoryImpl) EnsureTx(ctx context.Context, sqltx *sqlx.Tx, accounts []model.Account) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".account.EnsureTx")
	defer scope.End()

	if len(accounts) == 0 {
		return nil
	}

	query := `INSERT INTO chart_of_accounts (id, hotel_id, code, name, type, is_active, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :hotel_id, :code, :name, :type, :is_active, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (hotel_id, code) DO NOTHING`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.NamedExecContext(ctx, query, accounts); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to provision chart of accounts: %w", err)
	}

	return nil
}

func (r *accountRepositoryImpl) TrialBalance(ctx context.Context, hotelID string, from, to time.Time) ([]model.AccountBalance, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".account.TrialBalance")
	defer scope.End()

	query := `SELECT a.code, a.name, a.type, COALESCE(t.debit, 0) AS debit, COALESCE(t.credit, 0) AS credit
		FROM chart_of_accounts a
		LEFT JOIN (
			SELECT l.account_id, SUM(l.debit) AS debit, SUM(l.credit) AS credit
			FROM journal_lines l
			JOIN journal_entries e ON e.id = l.entry_id
			WHERE e.hotel_id = :hotel_id AND e.deleted_at IS NULL AND e.entry_date BETWEEN :from AND :to
			GROUP BY l.account_id
		) t ON t.account_id = a.id
		WHERE a.hotel_id = :hotel_id
		ORDER BY a.code`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var balances []model.AccountBalance

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return balances, fmt.Errorf("failed to prepare trial balance: %w", err)
	}
	defer prepare.Close()

	args := map[string]any{"hotel_id": hotelID, "from": from, "to": to}
	if err = prepare.SelectContext(ctx, &balances, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return balances, fmt.Errorf("failed to compute trial balance: %w", err)
	}

	return balances, nil
}

type entryRepositoryImpl struct {
	gRepo.Repository[model.JournalEntry]
}

func NewEntry(db *postgres.Connection, otel otel.Otel) Entry {
	return &entryRepositoryImpl{
		Repository: gRepo.NewRepository[model.JournalEntry](model.EntryEntityName, model.EntryTableName, model.FieldID, db, otel),
	}
}

type lineRepositoryImpl struct {
	gRepo.Repository[model.JournalLine]
}

func NewLine(db *postgres.Connection, otel otel.Otel) Line {
	return &lineRepositoryImpl{
		Repository: gRepo.NewRepository[model.JournalLine](model.LineEntityName, model.LineTableName, model.FieldID, db, otel),
	}
}
