package service_test

import (
	"context"
	"errors"
	"hotelops/config"
	otelMocks "hotelops/infras/otel/mocks"
	postgresMocks "hotelops/infras/postgres/mocks"
	bookingMocks "hotelops/internal/domains/booking/mocks"
	bookingModel "hotelops/internal/domains/booking/model"
	businessDateModel "hotelops/internal/domains/businessdate/model"
	businessDateMocks "hotelops/internal/domains/businessdate/service/mocks"
	housekeepingMocks "hotelops/internal/domains/housekeeping/mocks"
	housekeepingModel "hotelops/internal/domains/housekeeping/model"
	maintenanceMocks "hotelops/internal/domains/maintenance/mocks"
	maintenanceModel "hotelops/internal/domains/maintenance/model"
	notificationMocks "hotelops/internal/domains/notification/mocks"
	notificationModel "hotelops/internal/domains/notification/model"
	notificationServiceMocks "hotelops/internal/domains/notification/service/mocks"
	restaurantMocks "hotelops/internal/domains/restaurant/mocks"
	restaurantModel "hotelops/internal/domains/restaurant/model"
	"hotelops/internal/domains/room/mocks"
	"hotelops/internal/domains/room/model"
	"hotelops/internal/domains/room/model/dto"
	"hotelops/internal/domains/room/service"
	cacheMocks "hotelops/shared/cache/mocks"
	"hotelops/shared/failure"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	hotelID = "hotel-1"
	roomID  = "room-1"
	actor   = "frontdesk@hotel.test"
)

var today = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

type fixture struct {
	repo          *mocks.MockRoom
	typeRepo      *mocks.MockRoomType
	historyRepo   *mocks.MockHistory
	bookingRepo   *bookingMocks.MockBooking
	taskRepo      *housekeepingMocks.MockTask
	issueRepo     *maintenanceMocks.MockIssue
	orderRepo     *restaurantMocks.MockOrder
	notifications *notificationMocks.MockNotification
	notifier      *notificationServiceMocks.MockNotification
	businessDate  *businessDateMocks.MockBusinessDate
	cache         *cacheMocks.MockRedisCache
	svc           service.Room
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:          mocks.NewMockRoom(ctrl),
		typeRepo:      mocks.NewMockRoomType(ctrl),
		historyRepo:   mocks.NewMockHistory(ctrl),
		bookingRepo:   bookingMocks.NewMockBooking(ctrl),
		taskRepo:      housekeepingMocks.NewMockTask(ctrl),
		issueRepo:     maintenanceMocks.NewMockIssue(ctrl),
		orderRepo:     restaurantMocks.NewMockOrder(ctrl),
		notifications: notificationMocks.NewMockNotification(ctrl),
		notifier:      notificationServiceMocks.NewMockNotification(ctrl),
		businessDate:  businessDateMocks.NewMockBusinessDate(ctrl),
		cache:         cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(
		f.repo, f.typeRepo, f.historyRepo, f.bookingRepo, f.taskRepo, f.issueRepo, f.orderRepo,
		f.notifications, f.notifier, f.businessDate, postgresMocks.NewTransactor(), &config.Config{},
		f.cache, otelMocks.NewOtel(),
	)

	return f
}

func room(status model.Status) model.Room {
	return model.Room{
		ID:              roomID,
		HotelID:         hotelID,
		Number:          "101",
		Status:          status,
		IsActive:        true,
		BasePrice:       decimal.NewFromInt(100),
		CleaningMinutes: 30,
	}
}

func (f *fixture) expectLock(r model.Room) {
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
}

func (f *fixture) expectNoVacancyConflicts() {
	f.taskRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.orderRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(restaurantModel.Order{}, nil)
	f.issueRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(maintenanceModel.Issue{}, nil)
}

func (f *fixture) expectCommit() {
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.historyRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
}

func TestChangeStatusTx_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		from      model.Status
		to        model.Status
		setupMock func(f *fixture)
		reason    string
		message   string
	}{
		{
			name:    "occupied room cannot become vacant",
			from:    model.StatusOccupied,
			to:      model.StatusVacant,
			reason:  model.ReasonInvalidTransition,
			message: "Cannot mark occupied room as vacant. Must check out guest first.",
		},
		{
			name:    "dirty room cannot be reserved",
			from:    model.StatusDirty,
			to:      model.StatusReserved,
			reason:  model.ReasonInvalidTransition,
			message: "Cannot reserve dirty room. Must clean first.",
		},
		{
			name:    "same status",
			from:    model.StatusVacant,
			to:      model.StatusVacant,
			reason:  model.ReasonInvalidTransition,
			message: "Room is already vacant",
		},
		{
			name: "upcoming arrival blocks maintenance",
			from: model.StatusVacant,
			to:   model.StatusMaintenance,
			setupMock: func(f *fixture) {
				f.businessDate.EXPECT().AcquireTx(gomock.Any(), gomock.Any(), hotelID).
					Return(businessDateModel.BusinessDate{HotelID: hotelID, CurrentBusinessDate: today}, nil)
				f.bookingRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{{ID: "booking-1", GuestName: "Ann Lee", CheckInDate: today.AddDate(0, 0, 3)}}, nil)
			},
			reason:  model.ReasonBookingConflict,
			message: "Room has upcoming booking in 3 days (Guest: Ann Lee)",
		},
		{
			name: "cleaning in progress blocks vacancy",
			from: model.StatusDirty,
			to:   model.StatusVacant,
			setupMock: func(f *fixture) {
				f.taskRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			reason:  model.ReasonHousekeepingConflict,
			message: "Cleaning task in progress. Wait for completion.",
		},
		{
			name: "pending room service blocks vacancy",
			from: model.StatusDirty,
			to:   model.StatusVacant,
			setupMock: func(f *fixture) {
				f.taskRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.orderRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(restaurantModel.Order{ID: "order-1", OrderNumber: "RS-0042"}, nil)
			},
			reason:  model.ReasonRoomServiceConflict,
			message: "Pending room service order #RS-0042. Complete or cancel first.",
		},
		{
			name: "critical issue blocks vacancy",
			from: model.StatusMaintenance,
			to:   model.StatusVacant,
			setupMock: func(f *fixture) {
				f.taskRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.orderRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(restaurantModel.Order{}, nil)
				f.issueRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(maintenanceModel.Issue{ID: "issue-1", IssueType: "water leak"}, nil)
			},
			reason:  model.ReasonMaintenanceConflict,
			message: "Critical maintenance issue open: water leak",
		},
		{
			name: "critical issue blocks occupancy",
			from: model.StatusVacant,
			to:   model.StatusOccupied,
			setupMock: func(f *fixture) {
				f.issueRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(maintenanceModel.Issue{ID: "issue-2", IssueType: "gas smell"}, nil)
			},
			reason:  model.ReasonMaintenanceConflict,
			message: "Critical maintenance issue open: gas smell",
		},
		{
			name: "closing business date blocks maintenance",
			from: model.StatusVacant,
			to:   model.StatusMaintenance,
			setupMock: func(f *fixture) {
				f.businessDate.EXPECT().AcquireTx(gomock.Any(), gomock.Any(), hotelID).
					Return(businessDateModel.BusinessDate{}, failure.DateLocked("business date is being closed by night audit, retry after it completes"))
			},
			reason:  failure.ReasonDateLocked,
			message: "business date is being closed by night audit, retry after it completes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectLock(room(tt.from))

			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			res, err := f.svc.ChangeStatusTx(context.Background(), nil, hotelID, roomID, actor, dto.ChangeStatusRequest{Status: tt.to})

			assert.Nil(t, res)
			assert.Equal(t, tt.reason, failure.GetReason(err))
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestChangeStatusTx_Lock(t *testing.T) {
	tests := []struct {
		name   string
		room   model.Room
		err    error
		reason string
		code   int
	}{
		{
			name: "missing room",
			room: model.Room{},
			code: 404,
		},
		{
			name:   "inactive room",
			room:   model.Room{ID: roomID, Number: "101", Status: model.StatusVacant},
			reason: model.ReasonRoomInactive,
			code:   422,
		},
		{
			name:   "row held by another unit of work",
			err:    failure.ConcurrentModification("room is being modified"),
			reason: failure.ReasonConcurrentModification,
			code:   409,
		},
		{
			name: "store unavailable",
			err:  errors.New("connection reset"),
			code: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.room, tt.err)

			_, err := f.svc.ChangeStatusTx(context.Background(), nil, hotelID, roomID, actor, dto.ChangeStatusRequest{Status: model.StatusDirty})

			assert.Error(t, err)
			assert.Equal(t, tt.reason, failure.GetReason(err))
			assert.Equal(t, tt.code, failure.GetCode(err))
		})
	}
}

func TestChangeStatusTx_Checkout(t *testing.T) {
	f := newFixture(t)

	vip := room(model.StatusOccupied)
	vip.IsVIP = true

	f.expectLock(vip)
	f.expectCommit()
	f.taskRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.taskRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, task housekeepingModel.Task) error {
			assert.Equal(t, housekeepingModel.TaskTypeCheckoutClean, task.TaskType)
			assert.Equal(t, housekeepingModel.StatusPending, task.Status)
			assert.Equal(t, roomID, task.RoomID)
			assert.Equal(t, 100, task.Priority)
			assert.Equal(t, 39, task.EstimatedMinutes)

			return nil
		})
	f.notifications.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)

	res, err := f.svc.ChangeStatusTx(context.Background(), nil, hotelID, roomID, actor, dto.ChangeStatusRequest{Status: model.StatusDirty, Reason: "Guest checked out"})

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, notificationModel.DepartmentHousekeeping, res[0].Department)
	assert.Equal(t, notificationModel.PriorityHigh, res[0].Priority)
	assert.Equal(t, "Room 101 Needs Cleaning", res[0].Title)
	assert.Equal(t, "Room is now dirty. Reason: Guest checked out", res[0].Message)
}

func TestChangeStatusTx_CheckoutWithOpenTask(t *testing.T) {
	f := newFixture(t)

	f.expectLock(room(model.StatusOccupied))
	f.expectCommit()
	f.taskRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.notifications.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.ChangeStatusTx(context.Background(), nil, hotelID, roomID, actor, dto.ChangeStatusRequest{Status: model.StatusDirty})

	assert.NoError(t, err)
}

func TestChangeStatusTx_Notifications(t *testing.T) {
	tests := []struct {
		name      string
		from      model.Status
		to        model.Status
		setupMock func(f *fixture)
		want      []notificationModel.Department
		titles    []string
		messages  []string
	}{
		{
			name: "out of order alerts front desk and management",
			from: model.StatusVacant,
			to:   model.StatusMaintenance,
			setupMock: func(f *fixture) {
				f.businessDate.EXPECT().AcquireTx(gomock.Any(), gomock.Any(), hotelID).
					Return(businessDateModel.BusinessDate{HotelID: hotelID, CurrentBusinessDate: today}, nil)
				f.bookingRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			want:   []notificationModel.Department{notificationModel.DepartmentFrontDesk, notificationModel.DepartmentManagement},
			titles: []string{"Room 101 Out of Order", "Revenue Alert: Room 101 OOO"},
			messages: []string{
				"Room is now OOO. Reason: broken AC. Cannot sell until fixed.",
				"Room out of order. Expected daily revenue loss: 70.00",
			},
		},
		{
			name:      "cleaned room tells housekeeping and front desk",
			from:      model.StatusDirty,
			to:        model.StatusVacant,
			setupMock: (*fixture).expectNoVacancyConflicts,
			want:      []notificationModel.Department{notificationModel.DepartmentHousekeeping, notificationModel.DepartmentFrontDesk},
			titles:    []string{"Room 101 Cleaned", "Room 101 Ready for Check-in"},
			messages:  []string{"Room cleaning completed. Ready for inspection.", "Room is clean and vacant."},
		},
		{
			name:      "back in service",
			from:      model.StatusMaintenance,
			to:        model.StatusVacant,
			setupMock: (*fixture).expectNoVacancyConflicts,
			want:      []notificationModel.Department{notificationModel.DepartmentFrontDesk},
			titles:    []string{"Room 101 Available"},
			messages:  []string{"Room is back in service. Ready for check-in."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectLock(room(tt.from))
			tt.setupMock(f)
			f.expectCommit()
			f.notifications.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Len(len(tt.want))).Return(nil)

			res, err := f.svc.ChangeStatusTx(context.Background(), nil, hotelID, roomID, actor, dto.ChangeStatusRequest{Status: tt.to, Reason: "broken AC"})

			assert.NoError(t, err)
			assert.Len(t, res, len(tt.want))

			for i, n := range res {
				assert.Equal(t, tt.want[i], n.Department)
				assert.Equal(t, tt.titles[i], n.Title)
				assert.Equal(t, tt.messages[i], n.Message)
				assert.Equal(t, hotelID, n.HotelID)
				assert.Equal(t, roomID, *n.RoomID)
			}
		})
	}
}

func TestChangeStatus_DispatchesAfterCommit(t *testing.T) {
	f := newFixture(t)

	f.expectLock(room(model.StatusVacant))
	f.expectCommit()
	f.notifications.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Len(1))
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusDirty), nil)

	res, err := f.svc.ChangeStatus(context.Background(), hotelID, roomID, actor, dto.ChangeStatusRequest{Status: model.StatusDirty})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusDirty, res.Status)
	assert.ElementsMatch(t, []model.Status{model.StatusVacant, model.StatusMaintenance}, res.AllowedTransitions)
}

func TestChangeStatus_RollsBackWithoutDispatch(t *testing.T) {
	f := newFixture(t)

	f.expectLock(room(model.StatusVacant))
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected"))

	_, err := f.svc.ChangeStatus(context.Background(), hotelID, roomID, actor, dto.ChangeStatusRequest{Status: model.StatusDirty})

	assert.Error(t, err)
}

func TestEnsureCheckInReadyTx(t *testing.T) {
	tests := []struct {
		status  model.Status
		wantErr bool
		message string
	}{
		{status: model.StatusVacant},
		{status: model.StatusReserved},
		{status: model.StatusDirty, wantErr: true, message: "Room needs cleaning before check-in"},
		{status: model.StatusOccupied, wantErr: true, message: "Room is currently occupied"},
		{status: model.StatusMaintenance, wantErr: true, message: "Room is under maintenance"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			f := newFixture(t)
			f.expectLock(room(tt.status))

			_, err := f.svc.EnsureCheckInReadyTx(context.Background(), nil, hotelID, roomID)
			if tt.wantErr {
				assert.Equal(t, model.ReasonRoomNotReady, failure.GetReason(err))
				assert.EqualError(t, err, tt.message)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCheckInReadiness(t *testing.T) {
	f := newFixture(t)

	inactive := room(model.StatusVacant)
	inactive.IsActive = false

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusDirty), nil)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

	res, err := f.svc.CheckInReadiness(context.Background(), hotelID, roomID)
	assert.NoError(t, err)
	assert.False(t, res.Ready)
	assert.Equal(t, "Room needs cleaning before check-in", res.Message)

	res, err = f.svc.CheckInReadiness(context.Background(), hotelID, roomID)
	assert.NoError(t, err)
	assert.False(t, res.Ready)
	assert.Equal(t, "Room is inactive", res.Message)

	_, err = f.svc.CheckInReadiness(context.Background(), hotelID, roomID)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestCreate(t *testing.T) {
	req := dto.CreateRoomRequest{RoomTypeID: "type-1", Number: "101", Floor: 1}

	tests := []struct {
		name      string
		setupMock func(f *fixture)
		reason    string
		code      int
	}{
		{
			name: "unknown room type",
			setupMock: func(f *fixture) {
				f.typeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			code: 404,
		},
		{
			name: "duplicate number",
			setupMock: func(f *fixture) {
				f.typeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			reason: model.ReasonDuplicateNumber,
			code:   422,
		},
		{
			name: "created vacant",
			setupMock: func(f *fixture) {
				f.typeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r model.Room) error {
					assert.Equal(t, model.StatusVacant, r.Status)
					assert.True(t, r.IsActive)

					return nil
				})
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusVacant), nil)
			},
			code: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Create(context.Background(), hotelID, actor, req)
			if tt.code == 200 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.reason, failure.GetReason(err))
			assert.Equal(t, tt.code, failure.GetCode(err))
		})
	}
}

func TestDeactivate(t *testing.T) {
	f := newFixture(t)
	f.expectLock(room(model.StatusOccupied))

	err := f.svc.Deactivate(context.Background(), hotelID, roomID, actor)
	assert.Equal(t, model.ReasonRoomOccupied, failure.GetReason(err))
}
