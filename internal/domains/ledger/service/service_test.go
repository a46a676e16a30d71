package service_test

import (
	"context"
	"errors"
	"hotelops/config"
	otelMocks "hotelops/infras/otel/mocks"
	"hotelops/internal/domains/ledger/mocks"
	"hotelops/internal/domains/ledger/model"
	"hotelops/internal/domains/ledger/model/dto"
	"hotelops/internal/domains/ledger/service"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const hotelID = "hotel-1"

func chart() []model.Account {
	accounts := []model.Account{}
	for _, template := range model.DefaultChart() {
		accounts = append(accounts, model.Account{
			ID:       "acc-" + template.Code,
			HotelID:  hotelID,
			Code:     template.Code,
			Name:     template.Name,
			Type:     template.Type,
			IsActive: true,
		})
	}

	return accounts
}

func TestPostTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccount(ctrl)
	entryRepo := mocks.NewMockEntry(ctrl)
	lineRepo := mocks.NewMockLine(ctrl)
	cfg := &config.Config{}

	svc := service.New(accountRepo, entryRepo, lineRepo, cfg, otelMocks.NewOtel())

	auditDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rate := decimal.NewFromInt(50000)

	tests := []struct {
		name      string
		posting   model.Posting
		setupMock func()
		reason    string
		wantErr   bool
	}{
		{
			name:    "posts accrual with lines mapped to accounts",
			posting: model.RoomRevenueAccrual(auditDate, "BK-1", rate),
			setupMock: func() {
				accountRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(chart(), nil)
				entryRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ any, entry model.JournalEntry) error {
						assert.Equal(t, hotelID, entry.HotelID)
						assert.Equal(t, auditDate, entry.EntryDate)
						assert.Equal(t, model.SourceNightAudit, entry.Source)

						return nil
					})
				lineRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ any, lines []model.JournalLine) error {
						assert.Len(t, lines, 2)
						assert.Equal(t, "acc-"+model.AccountReceivable, lines[0].AccountID)
						assert.True(t, lines[0].Debit.Equal(rate))
						assert.Equal(t, "acc-"+model.AccountRoomRevenue, lines[1].AccountID)
						assert.True(t, lines[1].Credit.Equal(rate))

						return nil
					})
			},
		},
		{
			name:    "provisions chart on first use",
			posting: model.BookingCharge(auditDate, "BK-2", rate),
			setupMock: func() {
				gomock.InOrder(
					accountRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil),
					accountRepo.EXPECT().EnsureTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, _ any, accounts []model.Account) error {
							assert.Len(t, accounts, len(model.DefaultChart()))

							return nil
						}),
					accountRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(chart(), nil),
				)
				entryRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				lineRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unbalanced entry is rejected before any write",
			posting: model.Posting{Date: auditDate, Lines: []model.PostingLine{
				{AccountCode: model.AccountReceivable, Debit: rate},
				{AccountCode: model.AccountRoomRevenue, Credit: rate.Sub(decimal.NewFromInt(1))},
			}},
			setupMock: func() {},
			reason:    model.ReasonUnbalancedEntry,
			wantErr:   true,
		},
		{
			name:    "line insert failure",
			posting: model.BookingCharge(auditDate, "BK-3", rate),
			setupMock: func() {
				accountRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(chart(), nil)
				entryRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				lineRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.PostTx(context.Background(), nil, hotelID, "staff-1", tt.posting)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.reason, failure.GetReason(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestGetEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccount(ctrl)
	entryRepo := mocks.NewMockEntry(ctrl)
	lineRepo := mocks.NewMockLine(ctrl)

	svc := service.New(accountRepo, entryRepo, lineRepo, &config.Config{}, otelMocks.NewOtel())

	entryRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	entryRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.JournalEntry, error) {
			assert.Equal(t, model.FieldEntryDate, params.SortBy)

			return []model.JournalEntry{{ID: "entry-1", Reference: "BK-1"}}, nil
		})
	lineRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.JournalLine{
		{EntryID: "entry-1", AccountCode: model.AccountReceivable, Debit: decimal.NewFromInt(10), Credit: decimal.Zero},
		{EntryID: "entry-1", AccountCode: model.AccountRoomRevenue, Debit: decimal.Zero, Credit: decimal.NewFromInt(10)},
	}, nil)

	res, err := svc.GetEntries(context.Background(), hotelID, gDto.QueryParams{Page: 1, Limit: 10}, dto.GetEntriesRequest{From: "2026-03-01"})

	assert.NoError(t, err)
	assert.Len(t, res.Entries, 1)
	assert.Len(t, res.Entries[0].Lines, 2)
	assert.True(t, res.Entries[0].TotalDebit.Equal(res.Entries[0].TotalCredit))
}

func TestTrialBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccount(ctrl)

	svc := service.New(accountRepo, mocks.NewMockEntry(ctrl), mocks.NewMockLine(ctrl), &config.Config{}, otelMocks.NewOtel())

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	accountRepo.EXPECT().TrialBalance(gomock.Any(), hotelID, from, to).Return([]model.AccountBalance{
		{Code: model.AccountReceivable, Type: model.AccountTypeAsset, Debit: decimal.NewFromInt(300), Credit: decimal.NewFromInt(100)},
		{Code: model.AccountCash, Type: model.AccountTypeAsset, Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
		{Code: model.AccountRoomRevenue, Type: model.AccountTypeRevenue, Debit: decimal.Zero, Credit: decimal.NewFromInt(300)},
	}, nil)

	res, err := svc.TrialBalance(context.Background(), hotelID, from, to)

	assert.NoError(t, err)
	assert.True(t, res.Balanced)
	assert.True(t, res.Accounts[0].Balance.Equal(decimal.NewFromInt(200)))
	assert.True(t, res.Accounts[2].Balance.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "2026-03-01", res.From)
}
