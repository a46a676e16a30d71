package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/booking/model"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/logger"
	gRepo "hotelops/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type Guest interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Guest) error
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
}

type Invoice interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Invoice) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Invoice, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Invoice, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type InvoiceLine interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.InvoiceLine) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.InvoiceLine, error)
}

type Payment interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Payment) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	SumTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (decimal.Decimal, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type guestRepositoryImpl struct {
	gRepo.Repository[model.Guest]
}

func NewGuest(db *postgres.Connection, otel otel.Otel) Guest {
	return &guestRepositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.GuestEntityName, model.GuestTableName, model.FieldID, db, otel),
	}
}

type invoiceRepositoryImpl struct {
	gRepo.Repository[model.Invoice]
}

func NewInvoice(db *postgres.Connection, otel otel.Otel) Invoice {
	return &invoiceRepositoryImpl{
		Repository: gRepo.NewRepository[model.Invoice](model.InvoiceEntityName, model.InvoiceTableName, model.FieldID, db, otel),
	}
}

type invoiceLineRepositoryImpl struct {
	gRepo.Repository[model.InvoiceLine]
}

func NewInvoiceLine(db *postgres.Connection, otel otel.Otel) InvoiceLine {
	return &invoiceLineRepositoryImpl{
		Repository: gRepo.NewRepository[model.InvoiceLine]("invoice line", model.InvoiceLineTableName, model.FieldID, db, otel),
	}
}

type paymentRepositoryImpl struct {
	gRepo.Repository[model.Payment]
	otel otel.Otel
}

func NewPayment(db *postgres.Connection, otel otel.Otel) Payment {
	return &paymentRepositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// SumTx totals every payment of a booking, refunds included, as seen by tx.
func (r *paymentRepositoryImpl) SumTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (decimal.Decimal, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.SumTx")
	defer scope.End()

	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE booking_id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total decimal.Decimal
	if err := sqltx.GetContext(ctx, &total, query, bookingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return total, fmt.Errorf("failed to sum payments: %w", err)
	}

	return total, nil
}
