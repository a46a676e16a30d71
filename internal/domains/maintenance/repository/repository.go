package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/maintenance/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Issue interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Issue) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Issue, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Issue, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Issue, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Issue, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Issue]
}

func New(db *postgres.Connection, otel otel.Otel) Issue {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Issue](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
