package scheduler

import (
	"context"
	"errors"
	"hotelops/config"
	businessDateMocks "hotelops/internal/domains/businessdate/service/mocks"
	"hotelops/internal/domains/nightaudit/model"
	"hotelops/internal/domains/nightaudit/model/dto"
	nightAuditMocks "hotelops/internal/domains/nightaudit/service/mocks"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNew_DefaultInterval(t *testing.T) {
	s := New(nil, nil, &config.Config{})

	assert.Equal(t, time.Hour, s.interval)
}

func TestTick(t *testing.T) {
	calendar := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		setupMock func(nightAudit *nightAuditMocks.MockNightAudit, businessDate *businessDateMocks.MockBusinessDate)
	}{
		{
			name: "before the run hour",
			now:  calendar.Add(time.Hour),
		},
		{
			name: "business date behind the calendar",
			now:  calendar.Add(3 * time.Hour),
			setupMock: func(nightAudit *nightAuditMocks.MockNightAudit, businessDate *businessDateMocks.MockBusinessDate) {
				businessDate.EXPECT().Today(gomock.Any(), "hotel-1").Return(calendar.AddDate(0, 0, -1), nil)
				businessDate.EXPECT().Today(gomock.Any(), "hotel-2").Return(calendar, nil)
				nightAudit.EXPECT().Run(gomock.Any(), "hotel-1", constant.SystemActor, dto.RunAuditRequest{AuditDate: "2026-03-14"}).
					Return(dto.AuditLogResponse{AuditDate: "2026-03-14", Status: model.StatusSuccess}, nil)
			},
		},
		{
			name: "another instance closed it first",
			now:  calendar.Add(3 * time.Hour),
			setupMock: func(nightAudit *nightAuditMocks.MockNightAudit, businessDate *businessDateMocks.MockBusinessDate) {
				businessDate.EXPECT().Today(gomock.Any(), "hotel-1").Return(calendar.AddDate(0, 0, -1), nil)
				businessDate.EXPECT().Today(gomock.Any(), "hotel-2").Return(time.Time{}, errors.New("db down"))
				nightAudit.EXPECT().Run(gomock.Any(), "hotel-1", constant.SystemActor, gomock.Any()).
					Return(dto.AuditLogResponse{}, failure.Rejected(model.ReasonAlreadyClosed, "Business date 2026-03-14 is already closed"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			nightAudit := nightAuditMocks.NewMockNightAudit(ctrl)
			businessDate := businessDateMocks.NewMockBusinessDate(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(nightAudit, businessDate)
			}

			cfg := &config.Config{}
			cfg.NightAudit.Hotels = []string{"hotel-1", "hotel-2"}
			cfg.NightAudit.RunAfterHour = 2

			s := New(nightAudit, businessDate, cfg)
			s.now = func() time.Time { return tt.now }

			s.tick(context.Background())
		})
	}
}

func TestStart_StopsWithContext(t *testing.T) {
	s := New(nil, nil, &config.Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})

	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
