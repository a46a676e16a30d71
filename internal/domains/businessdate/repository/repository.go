package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/businessdate/model"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/logger"
	gRepo "hotelops/shared/repository"

	"github.com/jmoiron/sqlx"
)

type BusinessDate interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BusinessDate, error)
	GetForShareTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.BusinessDate, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.BusinessDate, error)
	InitTx(ctx context.Context, sqltx *sqlx.Tx, model model.BusinessDate) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.BusinessDate]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) BusinessDate {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BusinessDate](model.EntityName, model.TableName, model.FieldHotelID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InitTx creates the hotel's clock unless another request created it first.
func (r *repositoryImpl) InitTx(ctx context.Context, sqltx *sqlx.Tx, businessDate model.BusinessDate) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".business_date.InitTx")
	defer scope.End()

	query := `INSERT INTO business_dates (hotel_id, current_business_date, is_closed, closed_date, created_at, modified_at, created_by, modified_by)
		VALUES (:hotel_id, :current_business_date, :is_closed, :closed_date, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (hotel_id) DO NOTHING`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.NamedExecContext(ctx, query, businessDate); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to initialise business date: %w", err)
	}

	return nil
}
