package service_test

import (
	"context"
	"errors"
	"hotelops/config"
	otelMocks "hotelops/infras/otel/mocks"
	"hotelops/internal/domains/businessdate/mocks"
	"hotelops/internal/domains/businessdate/model"
	"hotelops/internal/domains/businessdate/service"
	cacheMocks "hotelops/shared/cache/mocks"
	"hotelops/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const hotelID = "hotel-1"

var (
	today     = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	yesterday = today.AddDate(0, 0, -1)
)

func TestAcquireTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockBusinessDate(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	cfg := &config.Config{}

	svc := service.New(repo, cfg, cache, otelMocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		reason    string
		wantErr   bool
	}{
		{
			name: "open business date",
			setupMock: func() {
				repo.EXPECT().GetForShareTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.BusinessDate{HotelID: hotelID, CurrentBusinessDate: today, ClosedDate: &yesterday}, nil)
			},
		},
		{
			name: "initialises the clock on first use",
			setupMock: func() {
				gomock.InOrder(
					repo.EXPECT().GetForShareTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.BusinessDate{}, nil),
					repo.EXPECT().InitTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
					repo.EXPECT().GetForShareTx(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(model.BusinessDate{HotelID: hotelID, CurrentBusinessDate: today}, nil),
				)
			},
		},
		{
			name: "night audit holds the row",
			setupMock: func() {
				repo.EXPECT().GetForShareTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.BusinessDate{}, failure.ConcurrentModification("business date is being modified"))
			},
			reason:  failure.ReasonDateLocked,
			wantErr: true,
		},
		{
			name: "current date marked closed",
			setupMock: func() {
				repo.EXPECT().GetForShareTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.BusinessDate{HotelID: hotelID, CurrentBusinessDate: today, IsClosed: true}, nil)
			},
			reason:  failure.ReasonDateLocked,
			wantErr: true,
		},
		{
			name: "store unavailable",
			setupMock: func() {
				repo.EXPECT().GetForShareTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.BusinessDate{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.AcquireTx(context.Background(), nil, hotelID)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.reason, failure.GetReason(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, today, res.Current())
		})
	}
}

func TestEnsureOpen(t *testing.T) {
	svc := service.New(nil, &config.Config{}, nil, otelMocks.NewOtel())

	businessDate := model.BusinessDate{HotelID: hotelID, CurrentBusinessDate: today, ClosedDate: &yesterday}

	assert.NoError(t, svc.EnsureOpen(businessDate, today))

	err := svc.EnsureOpen(businessDate, yesterday)
	assert.Equal(t, failure.ReasonDateLocked, failure.GetReason(err))

	err = svc.EnsureOpen(businessDate, yesterday.AddDate(0, 0, -10))
	assert.Equal(t, failure.ReasonDateLocked, failure.GetReason(err))

	err = svc.EnsureOpen(businessDate, today.AddDate(0, 0, 1))
	assert.Error(t, err)
	assert.Empty(t, failure.GetReason(err))

	closing := businessDate
	closing.IsClosed = true
	assert.Equal(t, failure.ReasonDateLocked, failure.GetReason(svc.EnsureOpen(closing, today)))
}

func TestLockForAuditAndAdvance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockBusinessDate(ctrl)
	svc := service.New(repo, &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), otelMocks.NewOtel())

	repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.BusinessDate{HotelID: hotelID, CurrentBusinessDate: today}, nil)
	repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, fields map[string]any, _ any) error {
			assert.Equal(t, true, fields[model.FieldIsClosed])

			return nil
		})

	locked, err := svc.LockForAuditTx(context.Background(), nil, hotelID, "auditor")
	assert.NoError(t, err)
	assert.True(t, locked.IsClosed)

	repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, fields map[string]any, _ any) error {
			assert.Equal(t, today.AddDate(0, 0, 1), fields[model.FieldCurrentBusinessDate])
			assert.Equal(t, today, fields[model.FieldClosedDate])
			assert.Equal(t, false, fields[model.FieldIsClosed])

			return nil
		})

	advanced, err := svc.AdvanceTx(context.Background(), nil, hotelID, "auditor", today)
	assert.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, 1), advanced.Current())
	assert.True(t, advanced.IsLocked(today))
	assert.False(t, advanced.IsLocked(today.AddDate(0, 0, 1)))
}

func TestGetFallsBackToToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockBusinessDate(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(repo, &config.Config{}, cache, otelMocks.NewOtel())

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BusinessDate{}, nil)

	res, err := svc.Get(context.Background(), hotelID)

	assert.NoError(t, err)
	assert.Equal(t, hotelID, res.HotelID)
	assert.NotEmpty(t, res.CurrentBusinessDate)
	assert.Empty(t, res.LastClosedDate)
}
