package service_test

import (
	"context"
	"errors"
	"hotelops/config"
	otelMocks "hotelops/infras/otel/mocks"
	postgresMocks "hotelops/infras/postgres/mocks"
	"hotelops/internal/domains/maintenance/mocks"
	"hotelops/internal/domains/maintenance/model"
	"hotelops/internal/domains/maintenance/model/dto"
	"hotelops/internal/domains/maintenance/service"
	notificationModel "hotelops/internal/domains/notification/model"
	notificationMocks "hotelops/internal/domains/notification/service/mocks"
	roomModel "hotelops/internal/domains/room/model"
	roomDto "hotelops/internal/domains/room/model/dto"
	roomMocks "hotelops/internal/domains/room/service/mocks"
	cacheMocks "hotelops/shared/cache/mocks"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	hotelID = "hotel-1"
	roomID  = "room-1"
	issueID = "issue-1"
	actor   = "engineer@hotel.test"
)

type fixture struct {
	repo     *mocks.MockIssue
	room     *roomMocks.MockRoom
	notifier *notificationMocks.MockNotification
	cache    *cacheMocks.MockRedisCache
	svc      service.Maintenance
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:     mocks.NewMockIssue(ctrl),
		room:     roomMocks.NewMockRoom(ctrl),
		notifier: notificationMocks.NewMockNotification(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.room, f.notifier, postgresMocks.NewTransactor(), &config.Config{}, f.cache, otelMocks.NewOtel())

	return f
}

func issue(status model.Status) model.Issue {
	return model.Issue{
		ID:        issueID,
		HotelID:   hotelID,
		RoomID:    roomID,
		IssueType: "plumbing",
		Priority:  model.PriorityHigh,
		Status:    status,
	}
}

func (f *fixture) expectPublish(notifications []notificationModel.Notification) {
	f.notifier.EXPECT().Dispatch(gomock.Any(), notifications)
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)

	if len(notifications) > 0 {
		f.room.EXPECT().InvalidateCaches(gomock.Any(), hotelID)
	}
}

func TestReport(t *testing.T) {
	notifications := []notificationModel.Notification{{ID: "n-1"}}

	tests := []struct {
		name      string
		req       dto.ReportIssueRequest
		setupMock func(f *fixture)
		wantErr   bool
		reason    string
	}{
		{
			name: "issue only",
			req:  dto.ReportIssueRequest{RoomID: roomID, IssueType: "plumbing", Priority: model.PriorityLow},
			setupMock: func(f *fixture) {
				f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, roomID).
					Return(roomModel.Room{ID: roomID, Number: "101", Status: roomModel.StatusOccupied}, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.expectPublish(nil)
			},
		},
		{
			name: "out of order takes the room out of service",
			req:  dto.ReportIssueRequest{RoomID: roomID, IssueType: "plumbing", Priority: model.PriorityCritical, OutOfOrder: true},
			setupMock: func(f *fixture) {
				f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, roomID).
					Return(roomModel.Room{ID: roomID, Number: "101", Status: roomModel.StatusVacant}, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.room.EXPECT().ChangeStatusTx(gomock.Any(), gomock.Any(), hotelID, roomID, actor, roomDto.ChangeStatusRequest{
					Status: roomModel.StatusMaintenance,
					Reason: "plumbing",
				}).Return(notifications, nil)
				f.expectPublish(notifications)
			},
		},
		{
			name: "room already in maintenance",
			req:  dto.ReportIssueRequest{RoomID: roomID, IssueType: "plumbing", Priority: model.PriorityHigh, OutOfOrder: true},
			setupMock: func(f *fixture) {
				f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, roomID).
					Return(roomModel.Room{ID: roomID, Number: "101", Status: roomModel.StatusMaintenance}, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.expectPublish(nil)
			},
		},
		{
			name: "room engine refuses",
			req:  dto.ReportIssueRequest{RoomID: roomID, IssueType: "plumbing", Priority: model.PriorityHigh, OutOfOrder: true},
			setupMock: func(f *fixture) {
				f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, roomID).
					Return(roomModel.Room{ID: roomID, Number: "101", Status: roomModel.StatusOccupied}, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.room.EXPECT().ChangeStatusTx(gomock.Any(), gomock.Any(), hotelID, roomID, actor, gomock.Any()).
					Return(nil, failure.Rejected(roomModel.ReasonInvalidTransition, "Cannot change room from occupied to maintenance"))
			},
			wantErr: true,
			reason:  roomModel.ReasonInvalidTransition,
		},
		{
			name: "store failure",
			req:  dto.ReportIssueRequest{RoomID: roomID, IssueType: "plumbing", Priority: model.PriorityHigh},
			setupMock: func(f *fixture) {
				f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, roomID).
					Return(roomModel.Room{ID: roomID, Number: "101"}, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Report(context.Background(), hotelID, actor, tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.reason, failure.GetReason(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusReported, res.Status)
			assert.Equal(t, "101", res.RoomNumber)
			assert.Equal(t, tt.req.Priority, res.Priority)
		})
	}
}

func TestStart(t *testing.T) {
	tests := []struct {
		name    string
		issue   model.Issue
		wantErr bool
		code    int
	}{
		{name: "reported issue starts", issue: issue(model.StatusReported)},
		{name: "resolved issue cannot start", issue: issue(model.StatusResolved), wantErr: true, code: 422},
		{name: "unknown issue", issue: model.Issue{}, wantErr: true, code: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.issue, nil)

			if !tt.wantErr {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusInProgress, fields[model.FieldStatus])

						return nil
					})
				f.expectPublish(nil)
			}

			res, err := f.svc.Start(context.Background(), hotelID, issueID, actor)
			if tt.wantErr {
				assert.Equal(t, tt.code, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusInProgress, res.Status)
		})
	}
}

func TestResolve(t *testing.T) {
	notifications := []notificationModel.Notification{{ID: "n-1"}}

	tests := []struct {
		name      string
		issue     model.Issue
		req       dto.ResolveIssueRequest
		setupMock func(f *fixture)
		wantErr   bool
		reason    string
	}{
		{
			name:  "returns room to service",
			issue: issue(model.StatusInProgress),
			req:   dto.ResolveIssueRequest{Resolution: "Replaced valve", ReturnToService: true},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, roomID).
					Return(roomModel.Room{ID: roomID, Status: roomModel.StatusMaintenance}, nil)
				f.room.EXPECT().ChangeStatusTx(gomock.Any(), gomock.Any(), hotelID, roomID, actor, roomDto.ChangeStatusRequest{
					Status: roomModel.StatusVacant,
					Reason: "Maintenance resolved: plumbing",
				}).Return(notifications, nil)
				f.expectPublish(notifications)
			},
		},
		{
			name:  "room no longer in maintenance",
			issue: issue(model.StatusReported),
			req:   dto.ResolveIssueRequest{Resolution: "Tightened tap", ReturnToService: true},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, roomID).
					Return(roomModel.Room{ID: roomID, Status: roomModel.StatusOccupied}, nil)
				f.expectPublish(nil)
			},
		},
		{
			name:  "room stays out of service",
			issue: issue(model.StatusInProgress),
			req:   dto.ResolveIssueRequest{Resolution: "Parts ordered"},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.expectPublish(nil)
			},
		},
		{
			name:    "already resolved",
			issue:   issue(model.StatusResolved),
			req:     dto.ResolveIssueRequest{Resolution: "Again"},
			wantErr: true,
			reason:  model.ReasonInvalidIssueTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.issue, nil)

			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			res, err := f.svc.Resolve(context.Background(), hotelID, issueID, actor, tt.req)
			if tt.wantErr {
				assert.Equal(t, tt.reason, failure.GetReason(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusResolved, res.Status)
			assert.Equal(t, tt.req.Resolution, res.Resolution)
			assert.NotNil(t, res.ResolvedAt)
		})
	}
}

func TestGetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("from store", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Issue{issue(model.StatusReported)}, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.GetAll(context.Background(), hotelID, params, dto.GetIssuesRequest{Status: model.StatusReported})

		assert.NoError(t, err)
		assert.Equal(t, 12, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		assert.Len(t, res.Issues, 1)
	})

	t.Run("count failure", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

		_, err := f.svc.GetAll(context.Background(), hotelID, params, dto.GetIssuesRequest{})

		assert.Error(t, err)
	})
}
