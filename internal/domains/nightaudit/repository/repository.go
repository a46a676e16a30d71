package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/nightaudit/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Log interface {
	Insert(ctx context.Context, model model.Log) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Log) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Log, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Log, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Log]
}

func New(db *postgres.Connection, otel otel.Otel) Log {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Log](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
