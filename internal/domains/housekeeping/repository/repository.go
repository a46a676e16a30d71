package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/housekeeping/model"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/logger"
	gRepo "hotelops/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Task interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Task) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Task, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Task, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Task, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Task, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type Staff interface {
	Insert(ctx context.Context, model model.Staff) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Staff, error)
	WorkloadTx(ctx context.Context, sqltx *sqlx.Tx, hotelID string) ([]model.StaffLoad, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Task]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Task {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Task](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type staffRepositoryImpl struct {
	gRepo.Repository[model.Staff]
	otel otel.Otel
}

func NewStaff(db *postgres.Connection, otel otel.Otel) Staff {
	return &staffRepositoryImpl{
		Repository: gRepo.NewRepository[model.Staff](model.StaffEntityName, model.StaffTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// WorkloadTx lists the hotel's active staff with their open task count, least loaded first.
func (r *staffRepositoryImpl) WorkloadTx(ctx context.Context, sqltx *sqlx.Tx, hotelID string) ([]model.StaffLoad, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".staff.WorkloadTx")
	defer scope.End()

	query := `SELECT s.id, s.name, COUNT(t.id) AS tasks
		FROM housekeeping_staff s
		LEFT JOIN housekeeping_tasks t ON t.assigned_to = s.id AND t.status IN ('assigned', 'in_progress')
		WHERE s.hotel_id = $1 AND s.is_active
		GROUP BY s.id, s.name
		ORDER BY tasks, s.name`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var loads []model.StaffLoad
	if err := sqltx.SelectContext(ctx, &loads, query, hotelID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return loads, fmt.Errorf("failed to get staff workload: %w", err)
	}

	return loads, nil
}
