package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/restaurant/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Order interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Order) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type Item interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.OrderItem) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OrderItem, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OrderItem, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
}

func New(db *postgres.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type itemRepositoryImpl struct {
	gRepo.Repository[model.OrderItem]
}

func NewItem(db *postgres.Connection, otel otel.Otel) Item {
	return &itemRepositoryImpl{
		Repository: gRepo.NewRepository[model.OrderItem](model.ItemEntityName, model.ItemTableName, model.FieldID, db, otel),
	}
}
