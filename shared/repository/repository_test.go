package repository

import (
	"context"
	"errors"
	"hotelops/infras/otel/mocks"
	"hotelops/shared/dto"
	"hotelops/shared/failure"
	"hotelops/shared/model"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type roomRow struct {
	ID       string `db:"id"`
	Number   string `db:"number"`
	TypeName string `column:"name" db:"type_name" table:"room_types"`
	model.Metadata
}

func newTestRepository() Repository[roomRow] {
	return NewRepository[roomRow]("room", "rooms", "id", nil, mocks.NewOtel())
}

func TestGetColumns(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t, []string{"id", "number", "created_at", "modified_at", "created_by", "modified_by"}, repo.InsertColumns)
	assert.Equal(t,
		"rooms.id, rooms.number, room_types.name AS type_name, rooms.created_at, rooms.modified_at, rooms.created_by, rooms.modified_by",
		repo.getSelectQuery(context.Background()),
	)
	assert.Equal(t, "rooms.id, rooms.number", repo.getSelectQuery(context.Background(), "id", "number"))
}

func TestLockClause(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t, "", repo.lockClause(lockNone))
	assert.Equal(t, "FOR UPDATE OF rooms NOWAIT", repo.lockClause(lockForUpdate))
	assert.Equal(t, "FOR SHARE OF rooms NOWAIT", repo.lockClause(lockForShare))
}

func TestTranslateError(t *testing.T) {
	repo := newTestRepository()

	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{name: "lock not available", err: &pq.Error{Code: "55P03"}, retryable: true},
		{name: "serialization failure", err: &pq.Error{Code: "40001"}, retryable: true},
		{name: "deadlock", err: &pq.Error{Code: "40P01"}, retryable: true},
		{name: "plain error", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translated := repo.translateError(tt.err)
			if !tt.retryable {
				assert.Nil(t, translated)

				return
			}

			assert.True(t, failure.IsRetryable(translated))
			assert.Equal(t, failure.ReasonConcurrentModification, failure.GetReason(translated))
		})
	}
}

func TestTranslateError_UniqueViolation(t *testing.T) {
	repo := newTestRepository()

	translated := repo.translateError(&pq.Error{Code: "23505"})

	assert.False(t, failure.IsRetryable(translated))
	assert.Equal(t, http.StatusConflict, failure.GetCode(translated))
}

func TestRequiredFilter(t *testing.T) {
	repo := newTestRepository()

	err := repo.update(context.Background(), nil, map[string]any{"number": "101"}, dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)

	_, err = repo.exist(context.Background(), nil, dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)
}

func TestInsertBulkTxEmpty(t *testing.T) {
	repo := newTestRepository()

	assert.NoError(t, repo.InsertBulkTx(context.Background(), nil, nil))
}

func TestInsertQuery(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t,
		"INSERT INTO rooms (id, number, created_at, modified_at, created_by, modified_by) VALUES (:id, :number, :created_at, :modified_at, :created_by, :modified_by)",
		repo.insertQuery,
	)
}
