package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotelops/config"
	"hotelops/infras/kafka"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	bookingModel "hotelops/internal/domains/booking/model"
	bookingService "hotelops/internal/domains/booking/service"
	businessDateService "hotelops/internal/domains/businessdate/service"
	ledgerModel "hotelops/internal/domains/ledger/model"
	ledgerService "hotelops/internal/domains/ledger/service"
	"hotelops/internal/domains/restaurant/model"
	"hotelops/internal/domains/restaurant/model/dto"
	"hotelops/internal/domains/restaurant/repository"
	roomService "hotelops/internal/domains/room/service"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Restaurant interface {
	Create(ctx context.Context, hotelID, actor string, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	Get(ctx context.Context, hotelID, id string) (dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, hotelID, id, actor string, req dto.UpdateStatusRequest) (dto.OrderResponse, error)
	Settle(ctx context.Context, hotelID, id, actor string, req dto.SettleOrderRequest) (dto.OrderResponse, error)
}

type serviceImpl struct {
	repo         repository.Order
	itemRepo     repository.Item
	room         roomService.Room
	booking      bookingService.Booking
	ledger       ledgerService.Ledger
	businessDate businessDateService.BusinessDate
	transactor   postgres.Transactor
	kafka        kafka.Client
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Order,
	itemRepo repository.Item,
	room roomService.Room,
	booking bookingService.Booking,
	ledger ledgerService.Ledger,
	businessDate businessDateService.BusinessDate,
	transactor postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Restaurant {
	return &serviceImpl{
		repo:         repo,
		itemRepo:     itemRepo,
		room:         room,
		booking:      booking,
		ledger:       ledger,
		businessDate: businessDate,
		transactor:   transactor,
		kafka:        kafka,
		cfg:          cfg,
		otel:         otel,
	}
}

func byHotelAndID(hotelID, id string) gDto.FilterGroup {
	return shared.FilterByHotelAndID(hotelID, id, model.FieldID, model.TableName)
}

func byOrder(orderID string) gDto.FilterGroup {
	return shared.FilterByID(orderID, model.FieldOrderID, model.ItemTableName)
}

func (s *serviceImpl) Create(ctx context.Context, hotelID, actor string, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".restaurant.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.OrderType == model.OrderTypeRoomService && req.RoomID == constant.Empty {
		return res, failure.BadRequestFromString("room_id is required for room service orders") //nolint:wrapcheck
	}

	now := timezone.Now()
	order := model.Order{
		ID:        uuid.NewString(),
		HotelID:   hotelID,
		OrderType: req.OrderType,
		Status:    model.StatusPending,
		Metadata:  gModel.NewMetadata(now, actor),
	}

	items := req.ToItems(order.ID, now, actor)
	order.Subtotal, order.Tax, order.Total = model.Price(items, *s.cfg.Policy.WithDefaults().TaxRate)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if req.RoomID != constant.Empty {
			room, err := s.room.LockTx(ctx, tx, hotelID, req.RoomID)
			if err != nil {
				return err //nolint:wrapcheck
			}

			order.RoomID = &room.ID
		}

		count, err := s.repo.CountTx(ctx, tx, shared.FilterByHotel(hotelID, model.TableName))
		if err != nil {
			log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to number restaurant order")

			return fmt.Errorf("failed to number restaurant order: %w", err)
		}

		order.OrderNumber = strconv.Itoa(count + 1)

		if err = s.repo.InsertTx(ctx, tx, order); err != nil {
			log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to create restaurant order")

			return fmt.Errorf("failed to create restaurant order: %w", err)
		}

		if err = s.itemRepo.InsertBulkTx(ctx, tx, items); err != nil {
			log.Error().Err(err).Str("order_id", order.ID).Msg("failed to create restaurant order items")

			return fmt.Errorf("failed to create restaurant order items: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	log.Info().Str("hotel_id", hotelID).Str("order_number", order.OrderNumber).Str("total", order.Total.StringFixed(2)).Msg("restaurant order created")

	res.FromModel(order, items)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, hotelID, id string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".restaurant.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.repo.Get(ctx, byHotelAndID(hotelID, id))
	if err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("failed to get restaurant order")

		return res, fmt.Errorf("failed to get restaurant order: %w", err)
	}

	if order.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, byOrder(order.ID))
	if err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("failed to get restaurant order items")

		return res, fmt.Errorf("failed to get restaurant order items: %w", err)
	}

	res.FromModel(order, items)

	return res, nil
}

func (s *serviceImpl) lockTx(ctx context.Context, tx *sqlx.Tx, hotelID, id string) (model.Order, error) {
	order, err := s.repo.GetForUpdateTx(ctx, tx, byHotelAndID(hotelID, id))
	if failure.IsRetryable(err) {
		return order, err
	}

	if err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("failed to lock restaurant order")

		return order, fmt.Errorf("failed to lock restaurant order: %w", err)
	}

	if order.ID == constant.Empty {
		return order, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return order, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, hotelID, id, actor string, req dto.UpdateStatusRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".restaurant.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	var order model.Order

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) (txErr error) {
		order, txErr = s.lockTx(ctx, tx, hotelID, id)
		if txErr != nil {
			return txErr
		}

		if order.SettledAt != nil && req.Status == model.StatusCancelled {
			return failure.Rejected(model.ReasonInvalidOrderTransition, "Settled orders cannot be cancelled") //nolint:wrapcheck
		}

		if txErr = model.ValidateTransition(order.OrderType, order.Status, req.Status); txErr != nil {
			return txErr
		}

		fields := shared.Touch(map[string]any{model.FieldStatus: req.Status}, actor)

		if txErr = s.repo.UpdateTx(ctx, tx, fields, byHotelAndID(hotelID, id)); txErr != nil {
			log.Error().Err(txErr).Str("order_id", id).Msg("failed to update restaurant order status")

			return fmt.Errorf("failed to update restaurant order status: %w", txErr)
		}

		order.Status = req.Status

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	log.Info().Str("order_id", id).Str("status", string(order.Status)).Msg("restaurant order status updated")

	res.FromModel(order, nil)

	return res, nil
}

// Settle takes payment for a delivered order. A room charge lands on the in-house guest's folio.
func (s *serviceImpl) Settle(ctx context.Context, hotelID, id, actor string, req dto.SettleOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".restaurant.Settle")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelHotelAttributeKey, hotelID)

	var (
		order model.Order
		items []model.OrderItem
	)

	chargeToRoom := req.PaymentMethod == ledgerModel.PaymentMethodRoomCharge

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		bd, err := s.businessDate.AcquireTx(ctx, tx, hotelID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		order, err = s.lockTx(ctx, tx, hotelID, id)
		if err != nil {
			return err
		}

		if order.SettledAt != nil || order.Status != model.StatusDelivered {
			return failure.Rejected(model.ReasonOrderNotSettleable, fmt.Sprintf("Order #%s is %s and cannot be settled", order.OrderNumber, order.Status)) //nolint:wrapcheck
		}

		fields := map[string]any{}

		if chargeToRoom {
			booking, err := s.chargeRoomTx(ctx, tx, hotelID, actor, order)
			if err != nil {
				return err
			}

			order.BookingID = &booking.ID
			fields[model.FieldBookingID] = booking.ID
		}

		if _, err = s.ledger.PostTx(ctx, tx, hotelID, actor, ledgerModel.RestaurantSale(
			bd.Current(), "ORD-"+order.OrderNumber, req.PaymentMethod, chargeToRoom, order.Subtotal, order.Tax,
		)); err != nil {
			return err //nolint:wrapcheck
		}

		now := timezone.Now()
		fields[model.FieldPaymentMethod] = req.PaymentMethod
		fields[model.FieldSettledAt] = now

		if err = s.repo.UpdateTx(ctx, tx, shared.Touch(fields, actor), byHotelAndID(hotelID, id)); err != nil {
			log.Error().Err(err).Str("order_id", id).Msg("failed to settle restaurant order")

			return fmt.Errorf("failed to settle restaurant order: %w", err)
		}

		order.PaymentMethod = &req.PaymentMethod
		order.SettledAt = &now

		items, err = s.itemRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, byOrder(order.ID))
		if err != nil {
			log.Error().Err(err).Str("order_id", id).Msg("failed to get restaurant order items")

			return fmt.Errorf("failed to get restaurant order items: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if chargeToRoom {
		s.booking.InvalidateCaches(ctx, hotelID)
	}

	s.deductInventory(ctx, order, items)

	log.Info().Str("hotel_id", hotelID).Str("order_number", order.OrderNumber).Str("method", string(req.PaymentMethod)).Msg("restaurant order settled")

	res.FromModel(order, items)

	return res, nil
}

func (s *serviceImpl) chargeRoomTx(ctx context.Context, tx *sqlx.Tx, hotelID, actor string, order model.Order) (bookingModel.Booking, error) {
	if order.RoomID == nil {
		return bookingModel.Booking{}, failure.Rejected(model.ReasonRoomChargeNotAllowed, "Only orders for a room can be charged to it") //nolint:wrapcheck
	}

	booking, err := s.booking.InHouseTx(ctx, tx, hotelID, *order.RoomID)
	if err != nil {
		return booking, err //nolint:wrapcheck
	}

	return s.booking.AddChargeTx(ctx, tx, hotelID, booking.ID, actor, bookingModel.Charge{ //nolint:wrapcheck
		Description: fmt.Sprintf("Restaurant order #%s", order.OrderNumber),
		Amount:      order.Total,
		Kind:        bookingModel.LineKindRestaurant,
	})
}

// deductInventory hands the settled items to the stock keeper. The sale stands if this fails.
func (s *serviceImpl) deductInventory(ctx context.Context, order model.Order, items []model.OrderItem) {
	if len(items) == 0 {
		return
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".restaurant.deductInventory")
	defer scope.End()

	deduction := model.InventoryDeduction{
		HotelID:     order.HotelID,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Items:       make([]model.InventoryDeductionItem, len(items)),
		SettledAt:   *order.SettledAt,
	}

	for i, item := range items {
		deduction.Items[i] = model.InventoryDeductionItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
		}
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Inventory, kafka.Message{Key: order.ID, Value: deduction})
	if errors.Is(err, kafka.ErrDisabled) {
		log.Warn().Str("order_id", order.ID).Msg("inventory deduction skipped, kafka disabled")

		return
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("order_id", order.ID).Msg("failed to publish inventory deduction")
	}
}
