package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/room/model"
	gDto "hotelops/shared/dto"
	gRepo "hotelops/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type RoomType interface {
	Insert(ctx context.Context, model model.RoomType) error
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type History interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.StatusHistory) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.StatusHistory, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type typeRepositoryImpl struct {
	gRepo.Repository[model.RoomType]
}

func NewType(db *postgres.Connection, otel otel.Otel) RoomType {
	return &typeRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.TypeEntityName, model.TypeTableName, model.FieldID, db, otel),
	}
}

type historyRepositoryImpl struct {
	gRepo.Repository[model.StatusHistory]
}

func NewHistory(db *postgres.Connection, otel otel.Otel) History {
	return &historyRepositoryImpl{
		Repository: gRepo.NewRepository[model.StatusHistory](model.HistoryEntityName, model.HistoryTableName, model.FieldID, db, otel),
	}
}
