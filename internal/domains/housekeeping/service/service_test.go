package service_test

import (
	"context"
	"errors"
	"hotelops/config"
	otelMocks "hotelops/infras/otel/mocks"
	postgresMocks "hotelops/infras/postgres/mocks"
	bookingMocks "hotelops/internal/domains/booking/mocks"
	bookingModel "hotelops/internal/domains/booking/model"
	businessDateMocks "hotelops/internal/domains/businessdate/service/mocks"
	"hotelops/internal/domains/housekeeping/mocks"
	"hotelops/internal/domains/housekeeping/model"
	"hotelops/internal/domains/housekeeping/model/dto"
	"hotelops/internal/domains/housekeeping/service"
	notificationModel "hotelops/internal/domains/notification/model"
	notificationMocks "hotelops/internal/domains/notification/service/mocks"
	roomModel "hotelops/internal/domains/room/model"
	roomDto "hotelops/internal/domains/room/model/dto"
	roomMocks "hotelops/internal/domains/room/service/mocks"
	cacheMocks "hotelops/shared/cache/mocks"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	hotelID = "hotel-1"
	roomID  = "room-1"
	taskID  = "task-1"
	actor   = "housekeeper@hotel.test"
)

var today = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

type fixture struct {
	repo         *mocks.MockTask
	staffRepo    *mocks.MockStaff
	bookingRepo  *bookingMocks.MockBooking
	room         *roomMocks.MockRoom
	businessDate *businessDateMocks.MockBusinessDate
	notifier     *notificationMocks.MockNotification
	cache        *cacheMocks.MockRedisCache
	svc          service.Housekeeping
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:         mocks.NewMockTask(ctrl),
		staffRepo:    mocks.NewMockStaff(ctrl),
		bookingRepo:  bookingMocks.NewMockBooking(ctrl),
		room:         roomMocks.NewMockRoom(ctrl),
		businessDate: businessDateMocks.NewMockBusinessDate(ctrl),
		notifier:     notificationMocks.NewMockNotification(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(
		f.repo, f.staffRepo, f.bookingRepo, f.room, f.businessDate, f.notifier,
		postgresMocks.NewTransactor(), &config.Config{}, f.cache, otelMocks.NewOtel(),
	)

	return f
}

func task(id string, status model.Status, taskType model.TaskType, created time.Time) model.Task {
	return model.Task{
		ID:         id,
		HotelID:    hotelID,
		RoomID:     "room-" + id,
		RoomNumber: "1" + id,
		TaskType:   taskType,
		Status:     status,
		Metadata:   gModel.NewMetadata(created, actor),
	}
}

func arrivalIn(room string) []bookingModel.Booking {
	return []bookingModel.Booking{{ID: "booking-1", RoomID: &room, Status: bookingModel.StatusReserved}}
}

func TestCreateTask(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.CreateTaskRequest
		room         roomModel.Room
		arrivals     []bookingModel.Booking
		wantPriority int
		wantMinutes  int
		wantStatus   model.Status
	}{
		{
			name:         "regular clean with arrival today",
			req:          dto.CreateTaskRequest{RoomID: roomID, TaskType: model.TaskTypeRegularClean},
			room:         roomModel.Room{ID: roomID, Number: "101", CleaningMinutes: 30},
			arrivals:     arrivalIn(roomID),
			wantPriority: 100,
			wantMinutes:  30,
			wantStatus:   model.StatusPending,
		},
		{
			name:         "inspection in vip room",
			req:          dto.CreateTaskRequest{RoomID: roomID, TaskType: model.TaskTypeInspection},
			room:         roomModel.Room{ID: roomID, Number: "101", IsVIP: true},
			wantPriority: 70,
			wantMinutes:  12,
			wantStatus:   model.StatusPending,
		},
		{
			name:         "assigned on creation",
			req:          dto.CreateTaskRequest{RoomID: roomID, TaskType: model.TaskTypeDeepClean, AssignedTo: "staff-1"},
			room:         roomModel.Room{ID: roomID, Number: "101", CleaningMinutes: 45},
			wantPriority: 30,
			wantMinutes:  90,
			wantStatus:   model.StatusAssigned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			var created model.Task

			f.businessDate.EXPECT().Today(gomock.Any(), hotelID).Return(today, nil)
			f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, roomID).Return(tt.room, nil)
			f.bookingRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.arrivals, nil)
			f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, task model.Task) error {
					created = task

					return nil
				})

			res, err := f.svc.CreateTask(context.Background(), hotelID, actor, tt.req)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPriority, created.Priority)
			assert.Equal(t, tt.wantMinutes, created.EstimatedMinutes)
			assert.Equal(t, tt.wantStatus, created.Status)
			assert.Equal(t, "101", res.RoomNumber)
			assert.Equal(t, model.Label(tt.wantPriority), res.PriorityLabel)
		})
	}
}

func TestCreateTask_ArrivalLookupFails(t *testing.T) {
	f := newFixture(t)

	f.businessDate.EXPECT().Today(gomock.Any(), hotelID).Return(today, nil)
	f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, roomID).Return(roomModel.Room{ID: roomID, Number: "101"}, nil)
	f.bookingRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := f.svc.CreateTask(context.Background(), hotelID, actor, dto.CreateTaskRequest{RoomID: roomID, TaskType: model.TaskTypeRegularClean})

	assert.Error(t, err)
	assert.Equal(t, 500, failure.GetCode(err))
}

func TestCreateTask_InactiveRoom(t *testing.T) {
	f := newFixture(t)

	f.businessDate.EXPECT().Today(gomock.Any(), hotelID).Return(today, nil)
	f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, roomID).
		Return(roomModel.Room{}, failure.Rejected(roomModel.ReasonRoomInactive, "Room 101 is inactive"))

	_, err := f.svc.CreateTask(context.Background(), hotelID, actor, dto.CreateTaskRequest{RoomID: roomID, TaskType: model.TaskTypeRegularClean})

	assert.Equal(t, roomModel.ReasonRoomInactive, failure.GetReason(err))
}

func TestStartTask(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantErr   bool
		reason    string
		code      int
	}{
		{
			name: "assigned task starts",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(task(taskID, model.StatusAssigned, model.TaskTypeCheckoutClean, today), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusInProgress, fields[model.FieldStatus])

						return nil
					})
			},
		},
		{
			name: "completed task cannot restart",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(task(taskID, model.StatusCompleted, model.TaskTypeCheckoutClean, today), nil)
			},
			wantErr: true,
			reason:  model.ReasonInvalidTaskTransition,
			code:    422,
		},
		{
			name: "unknown task",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Task{}, nil)
			},
			wantErr: true,
			code:    404,
		},
		{
			name: "task locked by another session",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Task{}, failure.ConcurrentModification("housekeeping task is being modified"))
			},
			wantErr: true,
			reason:  failure.ReasonConcurrentModification,
			code:    409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.StartTask(context.Background(), hotelID, taskID, actor)
			if tt.wantErr {
				assert.Equal(t, tt.code, failure.GetCode(err))

				if tt.reason != "" {
					assert.Equal(t, tt.reason, failure.GetReason(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusInProgress, res.Status)
			assert.NotNil(t, res.StartedAt)
		})
	}
}

func TestCompleteTask(t *testing.T) {
	notifications := []notificationModel.Notification{{ID: "n-1"}}

	tests := []struct {
		name      string
		task      model.Task
		setupMock func(f *fixture)
		wantErr   bool
		reason    string
	}{
		{
			name: "dirty room becomes vacant",
			task: task(taskID, model.StatusInProgress, model.TaskTypeCheckoutClean, today),
			setupMock: func(f *fixture) {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, "room-"+taskID).
					Return(roomModel.Room{ID: "room-" + taskID, Status: roomModel.StatusDirty, IsActive: true}, nil)
				f.room.EXPECT().ChangeStatusTx(gomock.Any(), gomock.Any(), hotelID, "room-"+taskID, actor, roomDto.ChangeStatusRequest{
					Status: roomModel.StatusVacant,
					Reason: "Housekeeping completed: checkout_clean",
				}).Return(notifications, nil)
				f.notifier.EXPECT().Dispatch(gomock.Any(), notifications)
				f.room.EXPECT().InvalidateCaches(gomock.Any(), hotelID)
			},
		},
		{
			name: "service clean leaves occupied room alone",
			task: task(taskID, model.StatusInProgress, model.TaskTypeService, today),
			setupMock: func(f *fixture) {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, "room-"+taskID).
					Return(roomModel.Room{ID: "room-" + taskID, Status: roomModel.StatusOccupied, IsActive: true}, nil)
				f.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Nil())
			},
		},
		{
			name: "room engine refuses, completion rolls back",
			task: task(taskID, model.StatusInProgress, model.TaskTypeCheckoutClean, today),
			setupMock: func(f *fixture) {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, "room-"+taskID).
					Return(roomModel.Room{ID: "room-" + taskID, Status: roomModel.StatusDirty, IsActive: true}, nil)
				f.room.EXPECT().ChangeStatusTx(gomock.Any(), gomock.Any(), hotelID, "room-"+taskID, actor, gomock.Any()).
					Return(nil, failure.Rejected(roomModel.ReasonRoomServiceConflict, "Pending room service order #42. Complete or cancel first."))
			},
			wantErr: true,
			reason:  roomModel.ReasonRoomServiceConflict,
		},
		{
			name:    "pending task cannot complete",
			task:    task(taskID, model.StatusPending, model.TaskTypeCheckoutClean, today),
			wantErr: true,
			reason:  model.ReasonInvalidTaskTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.task, nil)

			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			res, err := f.svc.CompleteTask(context.Background(), hotelID, taskID, actor, dto.CompleteTaskRequest{})
			if tt.wantErr {
				assert.Equal(t, tt.reason, failure.GetReason(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusCompleted, res.Status)
		})
	}
}

func TestAutoAssign(t *testing.T) {
	now := timezone.Now()

	t.Run("highest score to least loaded", func(t *testing.T) {
		f := newFixture(t)

		var assigned []string

		f.businessDate.EXPECT().Today(gomock.Any(), hotelID).Return(today, nil)
		f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Task{
			task("a", model.StatusPending, model.TaskTypeDeepClean, now),
			task("b", model.StatusPending, model.TaskTypeVIPClean, now),
			task("c", model.StatusPending, model.TaskTypeRegularClean, now),
		}, nil)
		f.staffRepo.EXPECT().WorkloadTx(gomock.Any(), gomock.Any(), hotelID).Return([]model.StaffLoad{
			{ID: "staff-1", Name: "Neema", Tasks: 0},
			{ID: "staff-2", Name: "Juma", Tasks: 1},
		}, nil)
		f.bookingRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assigned = append(assigned, fields[model.FieldAssignedTo].(string))

				return nil
			}).Times(3)

		res, err := f.svc.AutoAssign(context.Background(), hotelID, actor)

		assert.NoError(t, err)
		assert.Equal(t, []string{"staff-1", "staff-1", "staff-2"}, assigned)
		assert.Equal(t, "b", res.Assignments[0].TaskID)
		assert.Equal(t, 100, res.Assignments[0].Score)
		assert.Equal(t, "c", res.Assignments[1].TaskID)
		assert.Equal(t, "a", res.Assignments[2].TaskID)
	})

	t.Run("no pending tasks", func(t *testing.T) {
		f := newFixture(t)

		f.businessDate.EXPECT().Today(gomock.Any(), hotelID).Return(today, nil)
		f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.AutoAssign(context.Background(), hotelID, actor)

		assert.NoError(t, err)
		assert.Empty(t, res.Assignments)
	})

	t.Run("no staff on shift", func(t *testing.T) {
		f := newFixture(t)

		f.businessDate.EXPECT().Today(gomock.Any(), hotelID).Return(today, nil)
		f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Task{task("a", model.StatusPending, model.TaskTypeDeepClean, now)}, nil)
		f.staffRepo.EXPECT().WorkloadTx(gomock.Any(), gomock.Any(), hotelID).Return(nil, nil)

		_, err := f.svc.AutoAssign(context.Background(), hotelID, actor)

		assert.Equal(t, model.ReasonStaffUnavailable, failure.GetReason(err))
	})
}

func TestGetQueue(t *testing.T) {
	f := newFixture(t)

	now := timezone.Now()
	waiting := task("a", model.StatusPending, model.TaskTypeRegularClean, now.Add(-10*time.Hour))
	arrival := task("b", model.StatusAssigned, model.TaskTypeDeepClean, now)
	fresh := task("c", model.StatusInProgress, model.TaskTypeRegularClean, now)

	f.businessDate.EXPECT().Today(gomock.Any(), hotelID).Return(today, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Task{fresh, waiting, arrival}, nil)
	f.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(arrivalIn(arrival.RoomID), nil)

	res, err := f.svc.GetQueue(context.Background(), hotelID, dto.GetQueueRequest{})

	assert.NoError(t, err)
	assert.Len(t, res.Tasks, 3)
	assert.Equal(t, "a", res.Tasks[0].ID)
	assert.Equal(t, 72, res.Tasks[0].Score)
	assert.Equal(t, "b", res.Tasks[1].ID)
	assert.Equal(t, 70, res.Tasks[1].Score)
	assert.True(t, res.Tasks[1].HasArrival)
	assert.Equal(t, "c", res.Tasks[2].ID)
	assert.Equal(t, model.LabelMedium, res.Tasks[2].PriorityLabel)
}

func TestGetQueue_StoreError(t *testing.T) {
	f := newFixture(t)

	f.businessDate.EXPECT().Today(gomock.Any(), hotelID).Return(today, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := f.svc.GetQueue(context.Background(), hotelID, dto.GetQueueRequest{})

	assert.Error(t, err)
	assert.Equal(t, 500, failure.GetCode(err))
}
