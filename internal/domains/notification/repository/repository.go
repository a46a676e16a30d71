package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/notification/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Notification interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Notification) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Notification, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Notification, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Notification]
}

func New(db *postgres.Connection, otel otel.Otel) Notification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Notification](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
