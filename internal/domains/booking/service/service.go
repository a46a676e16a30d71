package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/booking/model/dto"
	"hotelops/internal/domains/booking/repository"
	businessDateModel "hotelops/internal/domains/businessdate/model"
	businessDateService "hotelops/internal/domains/businessdate/service"
	ledgerService "hotelops/internal/domains/ledger/service"
	notificationModel "hotelops/internal/domains/notification/model"
	notificationService "hotelops/internal/domains/notification/service"
	roomService "hotelops/internal/domains/room/service"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheBooking = "booking"
)

type Booking interface {
	Create(ctx context.Context, hotelID, actor string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	AssignRoom(ctx context.Context, hotelID, id, actor string, req dto.AssignRoomRequest) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, hotelID, id, actor string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, hotelID, id, actor string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, hotelID, id, actor string, req dto.CancelBookingRequest) (dto.BookingResponse, error)
	MarkNoShow(ctx context.Context, hotelID, id, actor string) (dto.BookingResponse, error)
	RecordPayment(ctx context.Context, hotelID, id, actor string, req dto.PaymentRequest) (dto.BookingResponse, error)
	Refund(ctx context.Context, hotelID, id, actor string, req dto.RefundRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, hotelID, id string) (dto.BookingDetailResponse, error)
	GetAll(ctx context.Context, hotelID string, params gDto.QueryParams, req dto.GetBookingsRequest) (dto.GetBookingsResponse, error)
	InHouseTx(ctx context.Context, tx *sqlx.Tx, hotelID, roomID string) (model.Booking, error)
	AddChargeTx(ctx context.Context, tx *sqlx.Tx, hotelID, id, actor string, charge model.Charge) (model.Booking, error)
	PostNightlyChargeTx(ctx context.Context, tx *sqlx.Tx, hotelID, id, actor string, date time.Time) (decimal.Decimal, error)
	InvalidateCaches(ctx context.Context, hotelID string)
}

type serviceImpl struct {
	repo         repository.Booking
	guestRepo    repository.Guest
	invoiceRepo  repository.Invoice
	lineRepo     repository.InvoiceLine
	paymentRepo  repository.Payment
	room         roomService.Room
	ledger       ledgerService.Ledger
	businessDate businessDateService.BusinessDate
	notifier     notificationService.Notification
	transactor   postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	guestRepo repository.Guest,
	invoiceRepo repository.Invoice,
	lineRepo repository.InvoiceLine,
	paymentRepo repository.Payment,
	room roomService.Room,
	ledger ledgerService.Ledger,
	businessDate businessDateService.BusinessDate,
	notifier notificationService.Notification,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		guestRepo:    guestRepo,
		invoiceRepo:  invoiceRepo,
		lineRepo:     lineRepo,
		paymentRepo:  paymentRepo,
		room:         room,
		ledger:       ledger,
		businessDate: businessDate,
		notifier:     notifier,
		transactor:   transactor,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

type unitOfWork func(ctx context.Context, tx *sqlx.Tx, businessDate businessDateModel.BusinessDate) ([]notificationModel.Notification, error)

// run executes fn under the hotel's shared business date lock, then publishes the room
// notifications it produced once everything is committed.
func (s *serviceImpl) run(ctx context.Context, hotelID string, fn unitOfWork) error {
	var notifications []notificationModel.Notification

	err := s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		businessDate, err := s.businessDate.AcquireTx(ctx, tx, hotelID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		notifications, err = fn(ctx, tx, businessDate)

		return err
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	s.notifier.Dispatch(ctx, notifications)
	s.InvalidateCaches(ctx, hotelID)

	if len(notifications) > 0 {
		s.room.InvalidateCaches(ctx, hotelID)
	}

	return nil
}

func cachePrefix(hotelID string) string {
	return shared.BuildCacheKey(cacheBooking, hotelID)
}

func (s *serviceImpl) InvalidateCaches(ctx context.Context, hotelID string) {
	shared.InvalidateCaches(ctx, s.cache, cachePrefix(hotelID))
}

func byHotelAndID(hotelID, id string) gDto.FilterGroup {
	return shared.FilterByHotelAndID(hotelID, id, model.FieldID, model.TableName)
}

// lockTx takes the booking row lock for the rest of tx.
func (s *serviceImpl) lockTx(ctx context.Context, tx *sqlx.Tx, hotelID, id string) (model.Booking, error) {
	booking, err := s.repo.GetForUpdateTx(ctx, tx, byHotelAndID(hotelID, id))
	if failure.IsRetryable(err) {
		return booking, err
	}

	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to lock booking")

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) lockInvoiceTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (model.Invoice, error) {
	invoice, err := s.invoiceRepo.GetForUpdateTx(ctx, tx, shared.FilterByHotelAndID(booking.HotelID, booking.ID, model.FieldBookingID, model.InvoiceTableName))
	if failure.IsRetryable(err) {
		return invoice, err
	}

	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to lock invoice")

		return invoice, fmt.Errorf("failed to lock invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return invoice, failure.NotFound(model.InvoiceEntityName) //nolint:wrapcheck
	}

	return invoice, nil
}

func (s *serviceImpl) Get(ctx context.Context, hotelID, id string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cachePrefix(hotelID), "get", id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, byHotelAndID(hotelID, id))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	invoice, err := s.invoiceRepo.Get(ctx, shared.FilterByHotelAndID(hotelID, id, model.FieldBookingID, model.InvoiceTableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get invoice")

		return res, fmt.Errorf("failed to get invoice: %w", err)
	}

	lines, err := s.lineRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.InvoiceLineTableName + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}, shared.FilterByID(invoice.ID, model.FieldInvoiceID, model.InvoiceLineTableName))
	if err != nil {
		log.Error().Err(err).Str("invoice_id", invoice.ID).Msg("failed to get invoice lines")

		return res, fmt.Errorf("failed to get invoice lines: %w", err)
	}

	payments, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.PaymentTableName + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}, shared.FilterByHotelAndID(hotelID, id, model.FieldBookingID, model.PaymentTableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModel(booking)
	res.Invoice.FromModel(invoice, lines, payments)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string, params gDto.QueryParams, req dto.GetBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err := bookingsFilter(hotelID, req)
	if err != nil {
		return res, err
	}

	if params.SortBy == constant.Empty {
		params.SortBy = model.TableName + "." + model.FieldCheckInDate
		params.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cachePrefix(hotelID), "gets"), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func bookingsFilter(hotelID string, req dto.GetBookingsRequest) (gDto.FilterGroup, error) {
	filters := []any{}

	if req.Status != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: req.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if req.RoomID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldRoomID, Value: req.RoomID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if req.Reference != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldReference, Value: req.Reference, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if req.Guest != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldGuestName, Value: req.Guest, Operator: gDto.FilterOperatorLike, Table: model.TableName})
	}

	if req.From != constant.Empty {
		from, err := timezone.ParseDate(req.From)
		if err != nil {
			return gDto.FilterGroup{}, failure.BadRequest(err) //nolint:wrapcheck
		}

		filters = append(filters, gDto.Filter{ArgName: "stay_from", Field: model.FieldCheckOutDate, Value: from, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName})
	}

	if req.To != constant.Empty {
		to, err := timezone.ParseDate(req.To)
		if err != nil {
			return gDto.FilterGroup{}, failure.BadRequest(err) //nolint:wrapcheck
		}

		filters = append(filters, gDto.Filter{ArgName: "stay_to", Field: model.FieldCheckInDate, Value: to, Operator: gDto.FilterOperatorLessEq, Table: model.TableName})
	}

	return shared.FilterByHotel(hotelID, model.TableName, filters...), nil
}
