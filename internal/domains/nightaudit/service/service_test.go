package service_test

import (
	"context"
	"errors"
	"hotelops/config"
	otelMocks "hotelops/infras/otel/mocks"
	postgresMocks "hotelops/infras/postgres/mocks"
	bookingMocks "hotelops/internal/domains/booking/mocks"
	bookingModel "hotelops/internal/domains/booking/model"
	bookingServiceMocks "hotelops/internal/domains/booking/service/mocks"
	businessDateModel "hotelops/internal/domains/businessdate/model"
	businessDateMocks "hotelops/internal/domains/businessdate/service/mocks"
	"hotelops/internal/domains/nightaudit/mocks"
	"hotelops/internal/domains/nightaudit/model"
	"hotelops/internal/domains/nightaudit/model/dto"
	"hotelops/internal/domains/nightaudit/service"
	restaurantMocks "hotelops/internal/domains/restaurant/mocks"
	cacheMocks "hotelops/shared/cache/mocks"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	hotelID = "hotel-1"
	actor   = "manager@hotel.test"
)

var (
	today     = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	yesterday = today.AddDate(0, 0, -1)
)

type fixture struct {
	repo         *mocks.MockLog
	bookingRepo  *bookingMocks.MockBooking
	orderRepo    *restaurantMocks.MockOrder
	booking      *bookingServiceMocks.MockBooking
	businessDate *businessDateMocks.MockBusinessDate
	cache        *cacheMocks.MockRedisCache
	svc          service.NightAudit
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:         mocks.NewMockLog(ctrl),
		bookingRepo:  bookingMocks.NewMockBooking(ctrl),
		orderRepo:    restaurantMocks.NewMockOrder(ctrl),
		booking:      bookingServiceMocks.NewMockBooking(ctrl),
		businessDate: businessDateMocks.NewMockBusinessDate(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(
		f.repo, f.bookingRepo, f.orderRepo, f.booking, f.businessDate,
		postgresMocks.NewTransactor(), &config.Config{}, f.cache, otelMocks.NewOtel(),
	)

	return f
}

func inHouse(id string, balance int64) bookingModel.Booking {
	room := "room-" + id

	return bookingModel.Booking{
		ID:           id,
		HotelID:      hotelID,
		RoomID:       &room,
		Reference:    "BK-20260312-" + id,
		GuestName:    "Guest " + id,
		Status:       bookingModel.StatusCheckedIn,
		CheckInDate:  yesterday,
		CheckOutDate: today.AddDate(0, 0, 2),
		NightlyRate:  decimal.NewFromInt(50000),
		Balance:      decimal.NewFromInt(balance),
	}
}

func (f *fixture) expectLock() {
	closed := yesterday

	f.businessDate.EXPECT().LockForAuditTx(gomock.Any(), gomock.Any(), hotelID, actor).
		Return(businessDateModel.BusinessDate{HotelID: hotelID, CurrentBusinessDate: today, IsClosed: true, ClosedDate: &closed}, nil)
}

func (f *fixture) expectPreclose(checkedIn, arrivals []bookingModel.Booking, pendingOrders int) {
	f.bookingRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(checkedIn, nil)
	f.bookingRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(arrivals, nil)
	f.orderRepo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingOrders, nil)
}

// expectClose captures the log written with the advanced business date.
func (f *fixture) expectClose(written *model.Log) {
	f.businessDate.EXPECT().AdvanceTx(gomock.Any(), gomock.Any(), hotelID, actor, today).
		Return(businessDateModel.BusinessDate{HotelID: hotelID, CurrentBusinessDate: today.AddDate(0, 0, 1)}, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, auditLog model.Log) error {
			*written = auditLog

			return nil
		})
	f.businessDate.EXPECT().Invalidate(gomock.Any(), hotelID)
	f.booking.EXPECT().InvalidateCaches(gomock.Any(), hotelID)
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
}

func TestRun_PostsOneNightPerInHouseBooking(t *testing.T) {
	f := newFixture(t)

	var written model.Log

	f.expectLock()
	f.expectPreclose([]bookingModel.Booking{inHouse("b1", 0)}, nil, 0)
	f.booking.EXPECT().PostNightlyChargeTx(gomock.Any(), gomock.Any(), hotelID, "b1", actor, today).Return(decimal.NewFromInt(50000), nil)
	f.expectClose(&written)

	res, err := f.svc.Run(context.Background(), hotelID, actor, dto.RunAuditRequest{})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Equal(t, "2026-03-14", res.AuditDate)
	assert.Equal(t, 1, res.Summary.BookingsProcessed)
	assert.True(t, decimal.NewFromInt(50000).Equal(res.Summary.RevenuePosted))
	assert.Equal(t, 1, res.Summary.CheckedInGuests)
	assert.Equal(t, []string{"1 guests still checked in"}, res.Summary.Warnings)
	assert.Empty(t, res.Summary.Errors)
	assert.Equal(t, model.StatusSuccess, written.Status)
	assert.Equal(t, today, written.AuditDate)
	assert.NotNil(t, written.FinishedAt)
}

func TestRun_CollectsPostingErrors(t *testing.T) {
	f := newFixture(t)

	var written model.Log

	f.expectLock()
	f.expectPreclose([]bookingModel.Booking{inHouse("b1", 0), inHouse("b2", 0), inHouse("b3", 0)}, nil, 0)
	f.booking.EXPECT().PostNightlyChargeTx(gomock.Any(), gomock.Any(), hotelID, "b1", actor, today).Return(decimal.NewFromInt(50000), nil)
	f.booking.EXPECT().PostNightlyChargeTx(gomock.Any(), gomock.Any(), hotelID, "b2", actor, today).
		Return(decimal.Zero, failure.ConcurrentModification("booking is being modified"))
	f.booking.EXPECT().PostNightlyChargeTx(gomock.Any(), gomock.Any(), hotelID, "b3", actor, today).Return(decimal.NewFromInt(80000), nil)
	f.expectClose(&written)

	res, err := f.svc.Run(context.Background(), hotelID, actor, dto.RunAuditRequest{})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPartial, res.Status)
	assert.Equal(t, 2, res.Summary.BookingsProcessed)
	assert.True(t, decimal.NewFromInt(130000).Equal(res.Summary.RevenuePosted))
	assert.Len(t, res.Summary.Errors, 1)
	assert.Equal(t, "b2", res.Summary.Errors[0].BookingID)
	assert.Equal(t, "room-b2", res.Summary.Errors[0].RoomID)
	assert.Equal(t, model.StatusPartial, written.Status)
}

func TestRun_Warnings(t *testing.T) {
	f := newFixture(t)

	var written model.Log

	arrival := inHouse("b2", 120000)
	arrival.Status = bookingModel.StatusReserved
	arrival.CheckInDate = today

	f.expectLock()
	f.expectPreclose([]bookingModel.Booking{inHouse("b1", 25000)}, []bookingModel.Booking{arrival}, 3)
	f.booking.EXPECT().PostNightlyChargeTx(gomock.Any(), gomock.Any(), hotelID, "b1", actor, today).Return(decimal.NewFromInt(50000), nil)
	f.expectClose(&written)

	res, err := f.svc.Run(context.Background(), hotelID, actor, dto.RunAuditRequest{AuditDate: "2026-03-14"})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Equal(t, 3, res.Summary.PendingOrders)
	assert.Equal(t, []string{
		"2 bookings have outstanding balance",
		"3 restaurant orders still pending",
		"1 guests still checked in",
		"1 arrivals have not checked in",
	}, res.Summary.Warnings)
	assert.Len(t, res.Summary.OutstandingBalances, 2)
	assert.Equal(t, "b2", res.Summary.OutstandingBalances[1].BookingID)
}

func TestRun_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RunAuditRequest
		setupMock func(f *fixture)
		reason    string
		code      int
	}{
		{
			name:      "date already closed",
			req:       dto.RunAuditRequest{AuditDate: "2026-03-13"},
			setupMock: func(f *fixture) { f.expectLock() },
			reason:    model.ReasonAlreadyClosed,
			code:      422,
		},
		{
			name:      "date not reached yet",
			req:       dto.RunAuditRequest{AuditDate: "2026-03-15"},
			setupMock: func(f *fixture) { f.expectLock() },
			reason:    model.ReasonInvalidAuditDate,
			code:      422,
		},
		{
			name:      "malformed date",
			req:       dto.RunAuditRequest{AuditDate: "14/03/2026"},
			setupMock: func(f *fixture) { f.expectLock() },
			code:      400,
		},
		{
			name: "audit already running",
			setupMock: func(f *fixture) {
				f.businessDate.EXPECT().LockForAuditTx(gomock.Any(), gomock.Any(), hotelID, actor).
					Return(businessDateModel.BusinessDate{}, failure.ConcurrentModification("business date is being modified"))
			},
			reason: failure.ReasonConcurrentModification,
			code:   409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Run(context.Background(), hotelID, actor, tt.req)

			assert.Equal(t, tt.code, failure.GetCode(err))
			assert.Equal(t, tt.reason, failure.GetReason(err))
		})
	}
}

func TestRun_StoreFailureIsLogged(t *testing.T) {
	f := newFixture(t)

	var failed model.Log

	f.expectLock()
	f.bookingRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, auditLog model.Log) error {
			failed = auditLog

			return nil
		})

	_, err := f.svc.Run(context.Background(), hotelID, actor, dto.RunAuditRequest{})

	assert.Error(t, err)
	assert.Equal(t, model.StatusFailed, failed.Status)
	assert.Equal(t, today, failed.AuditDate)
	assert.Len(t, failed.Summary.Errors, 1)
}

func TestGetLog(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Log{
			ID:        "audit-1",
			HotelID:   hotelID,
			AuditDate: today,
			Status:    model.StatusSuccess,
			RunBy:     actor,
			StartedAt: today.Add(2 * time.Hour),
		}, nil)

		res, err := f.svc.GetLog(context.Background(), hotelID, "audit-1")

		assert.NoError(t, err)
		assert.Equal(t, "2026-03-14", res.AuditDate)
		assert.Nil(t, res.FinishedAt)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Log{}, nil)

		_, err := f.svc.GetLog(context.Background(), hotelID, "audit-1")

		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestGetLogs(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Log, error) {
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Log{{ID: "audit-1", AuditDate: today}, {ID: "audit-0", AuditDate: yesterday}}, nil
		})
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := f.svc.GetLogs(context.Background(), hotelID, gDto.QueryParams{Page: 1, Limit: 2})

	assert.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Logs, 2)
}
