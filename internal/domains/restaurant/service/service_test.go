package service_test

import (
	"context"
	"errors"
	"hotelops/config"
	"hotelops/infras/kafka"
	kafkaMocks "hotelops/infras/kafka/mocks"
	otelMocks "hotelops/infras/otel/mocks"
	postgresMocks "hotelops/infras/postgres/mocks"
	bookingModel "hotelops/internal/domains/booking/model"
	bookingMocks "hotelops/internal/domains/booking/service/mocks"
	businessDateModel "hotelops/internal/domains/businessdate/model"
	businessDateMocks "hotelops/internal/domains/businessdate/service/mocks"
	ledgerModel "hotelops/internal/domains/ledger/model"
	ledgerMocks "hotelops/internal/domains/ledger/service/mocks"
	"hotelops/internal/domains/restaurant/mocks"
	"hotelops/internal/domains/restaurant/model"
	"hotelops/internal/domains/restaurant/model/dto"
	"hotelops/internal/domains/restaurant/service"
	roomModel "hotelops/internal/domains/room/model"
	roomMocks "hotelops/internal/domains/room/service/mocks"
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
	hotelID        = "hotel-1"
	roomID         = "room-1"
	orderID        = "order-1"
	actor          = "waiter@hotel.test"
	inventoryTopic = "hotel.inventory.deductions"
)

var today = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

type fixture struct {
	repo         *mocks.MockOrder
	itemRepo     *mocks.MockItem
	room         *roomMocks.MockRoom
	booking      *bookingMocks.MockBooking
	ledger       *ledgerMocks.MockLedger
	businessDate *businessDateMocks.MockBusinessDate
	kafka        *kafkaMocks.MockClient
	svc          service.Restaurant
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:         mocks.NewMockOrder(ctrl),
		itemRepo:     mocks.NewMockItem(ctrl),
		room:         roomMocks.NewMockRoom(ctrl),
		booking:      bookingMocks.NewMockBooking(ctrl),
		ledger:       ledgerMocks.NewMockLedger(ctrl),
		businessDate: businessDateMocks.NewMockBusinessDate(ctrl),
		kafka:        kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Kafka.Topics.Inventory = inventoryTopic

	f.svc = service.New(
		f.repo, f.itemRepo, f.room, f.booking, f.ledger, f.businessDate,
		postgresMocks.NewTransactor(), f.kafka, cfg, otelMocks.NewOtel(),
	)

	return f
}

func money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func order(orderType model.OrderType, status model.Status) model.Order {
	room := roomID

	return model.Order{
		ID:          orderID,
		HotelID:     hotelID,
		OrderNumber: "42",
		OrderType:   orderType,
		RoomID:      &room,
		Status:      status,
		Subtotal:    money("20"),
		Tax:         money("3.6"),
		Total:       money("23.6"),
	}
}

func items() []model.OrderItem {
	return []model.OrderItem{
		{ID: "item-1", OrderID: orderID, MenuItemID: "burger", Name: "Burger", Quantity: 2, UnitPrice: money("7.5"), Amount: money("15")},
		{ID: "item-2", OrderID: orderID, MenuItemID: "soda", Name: "Soda", Quantity: 1, UnitPrice: money("5"), Amount: money("5")},
	}
}

func TestCreate(t *testing.T) {
	req := dto.CreateOrderRequest{
		OrderType: model.OrderTypeRoomService,
		RoomID:    roomID,
		Items: []dto.OrderItemRequest{
			{MenuItemID: "burger", Name: "Burger", Quantity: 2, UnitPrice: money("7.5")},
			{MenuItemID: "soda", Name: "Soda", Quantity: 1, UnitPrice: money("5")},
		},
	}

	t.Run("priced with default tax", func(t *testing.T) {
		f := newFixture(t)

		var created model.Order

		f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, roomID).Return(roomModel.Room{ID: roomID}, nil)
		f.repo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(41, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, o model.Order) error {
				created = o

				return nil
			})
		f.itemRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Len(2)).Return(nil)

		res, err := f.svc.Create(context.Background(), hotelID, actor, req)

		assert.NoError(t, err)
		assert.Equal(t, "42", created.OrderNumber)
		assert.Equal(t, model.StatusPending, created.Status)
		assert.True(t, money("20").Equal(res.Subtotal))
		assert.True(t, money("3.6").Equal(res.Tax))
		assert.True(t, money("23.6").Equal(res.Total))
		assert.Len(t, res.Items, 2)
	})

	t.Run("room service needs a room", func(t *testing.T) {
		f := newFixture(t)

		noRoom := req
		noRoom.RoomID = ""

		_, err := f.svc.Create(context.Background(), hotelID, actor, noRoom)

		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("inactive room", func(t *testing.T) {
		f := newFixture(t)

		f.room.EXPECT().LockTx(gomock.Any(), gomock.Any(), hotelID, roomID).
			Return(roomModel.Room{}, failure.Rejected(roomModel.ReasonRoomInactive, "Room 101 is inactive"))

		_, err := f.svc.Create(context.Background(), hotelID, actor, req)

		assert.Equal(t, roomModel.ReasonRoomInactive, failure.GetReason(err))
	})
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		order   model.Order
		to      model.Status
		wantErr bool
	}{
		{name: "pending to preparing", order: order(model.OrderTypeDineIn, model.StatusPending), to: model.StatusPreparing},
		{name: "room service out for delivery", order: order(model.OrderTypeRoomService, model.StatusReady), to: model.StatusOutForDelivery},
		{name: "dine in never goes out for delivery", order: order(model.OrderTypeDineIn, model.StatusReady), to: model.StatusOutForDelivery, wantErr: true},
		{name: "delivered is final", order: order(model.OrderTypeRoomService, model.StatusDelivered), to: model.StatusCancelled, wantErr: true},
		{name: "skipping preparation", order: order(model.OrderTypeTakeaway, model.StatusPending), to: model.StatusReady, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.order, nil)

			if !tt.wantErr {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, tt.to, fields[model.FieldStatus])

						return nil
					})
			}

			res, err := f.svc.UpdateStatus(context.Background(), hotelID, orderID, actor, dto.UpdateStatusRequest{Status: tt.to})
			if tt.wantErr {
				assert.Equal(t, model.ReasonInvalidOrderTransition, failure.GetReason(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.to, res.Status)
		})
	}
}

func (f *fixture) expectBusinessDate() {
	f.businessDate.EXPECT().AcquireTx(gomock.Any(), gomock.Any(), hotelID).
		Return(businessDateModel.BusinessDate{HotelID: hotelID, CurrentBusinessDate: today}, nil)
}

func TestSettle_Cash(t *testing.T) {
	f := newFixture(t)

	var (
		posting ledgerModel.Posting
		fields  map[string]any
		sent    kafka.Message
	)

	f.expectBusinessDate()
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(order(model.OrderTypeDineIn, model.StatusDelivered), nil)
	f.ledger.EXPECT().PostTx(gomock.Any(), gomock.Any(), hotelID, actor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _, _ string, p ledgerModel.Posting) (ledgerModel.JournalEntry, error) {
			posting = p

			return ledgerModel.JournalEntry{}, nil
		})
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, updated map[string]any, _ gDto.FilterGroup) error {
			fields = updated

			return nil
		})
	f.itemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(items(), nil)
	f.kafka.EXPECT().SendMessages(gomock.Any(), inventoryTopic, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			sent = messages[0]

			return nil
		})

	res, err := f.svc.Settle(context.Background(), hotelID, orderID, actor, dto.SettleOrderRequest{PaymentMethod: ledgerModel.PaymentMethodCash})

	assert.NoError(t, err)
	assert.NotNil(t, res.SettledAt)
	assert.Nil(t, res.BookingID)
	assert.Equal(t, ledgerModel.PaymentMethodCash, fields[model.FieldPaymentMethod])
	assert.NotContains(t, fields, model.FieldBookingID)

	assert.Equal(t, ledgerModel.SourceRestaurant, posting.Source)
	assert.Equal(t, today, posting.Date)
	assert.True(t, posting.TotalDebit().Equal(posting.TotalCredit()))
	assert.True(t, money("23.6").Equal(posting.TotalDebit()))
	assert.Equal(t, ledgerModel.AccountCash, posting.Lines[0].AccountCode)

	deduction, ok := sent.Value.(model.InventoryDeduction)
	assert.True(t, ok)
	assert.Equal(t, orderID, sent.Key)
	assert.Len(t, deduction.Items, 2)
	assert.Equal(t, 2, deduction.Items[0].Quantity)
}

func TestSettle_ChargeToRoom(t *testing.T) {
	f := newFixture(t)

	var (
		charge  bookingModel.Charge
		posting ledgerModel.Posting
	)

	f.expectBusinessDate()
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(order(model.OrderTypeRoomService, model.StatusDelivered), nil)
	f.booking.EXPECT().InHouseTx(gomock.Any(), gomock.Any(), hotelID, roomID).Return(bookingModel.Booking{ID: "booking-1"}, nil)
	f.booking.EXPECT().AddChargeTx(gomock.Any(), gomock.Any(), hotelID, "booking-1", actor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _, id, _ string, c bookingModel.Charge) (bookingModel.Booking, error) {
			charge = c

			return bookingModel.Booking{ID: id}, nil
		})
	f.ledger.EXPECT().PostTx(gomock.Any(), gomock.Any(), hotelID, actor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _, _ string, p ledgerModel.Posting) (ledgerModel.JournalEntry, error) {
			posting = p

			return ledgerModel.JournalEntry{}, nil
		})
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.itemRepo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(items(), nil)
	f.booking.EXPECT().InvalidateCaches(gomock.Any(), hotelID)
	f.kafka.EXPECT().SendMessages(gomock.Any(), inventoryTopic, gomock.Any()).Return(kafka.ErrDisabled)

	res, err := f.svc.Settle(context.Background(), hotelID, orderID, actor, dto.SettleOrderRequest{PaymentMethod: ledgerModel.PaymentMethodRoomCharge})

	assert.NoError(t, err)
	assert.Equal(t, "booking-1", *res.BookingID)
	assert.True(t, money("23.6").Equal(charge.Amount))
	assert.Equal(t, bookingModel.LineKindRestaurant, charge.Kind)
	assert.Equal(t, ledgerModel.AccountReceivable, posting.Lines[0].AccountCode)
}

func TestSettle_Rejections(t *testing.T) {
	noRoom := order(model.OrderTypeTakeaway, model.StatusDelivered)
	noRoom.RoomID = nil

	settled := order(model.OrderTypeDineIn, model.StatusDelivered)
	settledAt := today
	settled.SettledAt = &settledAt

	tests := []struct {
		name      string
		order     model.Order
		method    ledgerModel.PaymentMethod
		setupMock func(f *fixture)
		reason    string
	}{
		{
			name:   "not delivered",
			order:  order(model.OrderTypeDineIn, model.StatusPreparing),
			method: ledgerModel.PaymentMethodCard,
			reason: model.ReasonOrderNotSettleable,
		},
		{
			name:   "already settled",
			order:  settled,
			method: ledgerModel.PaymentMethodCard,
			reason: model.ReasonOrderNotSettleable,
		},
		{
			name:   "takeaway charged to a room",
			order:  noRoom,
			method: ledgerModel.PaymentMethodRoomCharge,
			reason: model.ReasonRoomChargeNotAllowed,
		},
		{
			name:   "nobody checked in",
			order:  order(model.OrderTypeRoomService, model.StatusDelivered),
			method: ledgerModel.PaymentMethodRoomCharge,
			setupMock: func(f *fixture) {
				f.booking.EXPECT().InHouseTx(gomock.Any(), gomock.Any(), hotelID, roomID).
					Return(bookingModel.Booking{}, failure.Rejected(bookingModel.ReasonNotInHouse, "No guest is checked in to this room"))
			},
			reason: bookingModel.ReasonNotInHouse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectBusinessDate()
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.order, nil)

			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			_, err := f.svc.Settle(context.Background(), hotelID, orderID, actor, dto.SettleOrderRequest{PaymentMethod: tt.method})

			assert.Equal(t, tt.reason, failure.GetReason(err))
		})
	}
}

func TestSettle_DateLocked(t *testing.T) {
	f := newFixture(t)

	f.businessDate.EXPECT().AcquireTx(gomock.Any(), gomock.Any(), hotelID).
		Return(businessDateModel.BusinessDate{}, failure.DateLocked("Night audit in progress"))

	_, err := f.svc.Settle(context.Background(), hotelID, orderID, actor, dto.SettleOrderRequest{PaymentMethod: ledgerModel.PaymentMethodCash})

	assert.Equal(t, 423, failure.GetCode(err))
}

func TestGet(t *testing.T) {
	t.Run("with items", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(order(model.OrderTypeDineIn, model.StatusReady), nil)
		f.itemRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(items(), nil)

		res, err := f.svc.Get(context.Background(), hotelID, orderID)

		assert.NoError(t, err)
		assert.Equal(t, "42", res.OrderNumber)
		assert.Len(t, res.Items, 2)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Order{}, nil)

		_, err := f.svc.Get(context.Background(), hotelID, orderID)

		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Order{}, errors.New("db down"))

		_, err := f.svc.Get(context.Background(), hotelID, orderID)

		assert.Equal(t, 500, failure.GetCode(err))
	})
}
