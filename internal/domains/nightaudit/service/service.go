package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	bookingRepository "hotelops/internal/domains/booking/repository"
	bookingService "hotelops/internal/domains/booking/service"
	businessDateModel "hotelops/internal/domains/businessdate/model"
	businessDateService "hotelops/internal/domains/businessdate/service"
	"hotelops/internal/domains/nightaudit/model"
	"hotelops/internal/domains/nightaudit/model/dto"
	"hotelops/internal/domains/nightaudit/repository"
	restaurantRepository "hotelops/internal/domains/restaurant/repository"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheAuditLog = "night_audit"
)

type NightAudit interface {
	Run(ctx context.Context, hotelID, actor string, req dto.RunAuditRequest) (dto.AuditLogResponse, error)
	GetLogs(ctx context.Context, hotelID string, params gDto.QueryParams) (dto.GetLogsResponse, error)
	GetLog(ctx context.Context, hotelID, id string) (dto.AuditLogResponse, error)
}

type serviceImpl struct {
	repo         repository.Log
	bookingRepo  bookingRepository.Booking
	orderRepo    restaurantRepository.Order
	booking      bookingService.Booking
	businessDate businessDateService.BusinessDate
	transactor   postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Log,
	bookingRepo bookingRepository.Booking,
	orderRepo restaurantRepository.Order,
	booking bookingService.Booking,
	businessDate businessDateService.BusinessDate,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) NightAudit {
	return &serviceImpl{
		repo:         repo,
		bookingRepo:  bookingRepo,
		orderRepo:    orderRepo,
		booking:      booking,
		businessDate: businessDate,
		transactor:   transactor,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func cachePrefix(hotelID string) string {
	return shared.BuildCacheKey(cacheAuditLog, hotelID)
}

// auditDate resolves the date a run closes. Only the current business date can be closed; a date
// already closed is reported as such and nothing is written.
func auditDate(bd businessDateModel.BusinessDate, requested string) (time.Time, error) {
	current := bd.Current()
	if requested == constant.Empty {
		return current, nil
	}

	date, err := timezone.ParseDate(requested)
	if err != nil {
		return date, failure.BadRequest(err) //nolint:wrapcheck
	}

	if bd.ClosedDate != nil && !date.After(timezone.Date(*bd.ClosedDate)) {
		return date, failure.Rejected(model.ReasonAlreadyClosed, fmt.Sprintf("Business date %s is already closed", timezone.FormatDate(date))) //nolint:wrapcheck
	}

	if !date.Equal(current) {
		return date, failure.Rejected(model.ReasonInvalidAuditDate, fmt.Sprintf("Only the current business date %s can be audited", timezone.FormatDate(current))) //nolint:wrapcheck
	}

	return date, nil
}

// Run closes the current business date: it annotates the run with pre-close warnings, posts one
// night of room revenue for every in-house booking, then advances the hotel's clock. A booking that
// cannot be posted is recorded in the summary and the run continues as partial.
func (s *serviceImpl) Run(ctx context.Context, hotelID, actor string, req dto.RunAuditRequest) (res dto.AuditLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".night_audit.Run")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelHotelAttributeKey, hotelID)

	auditLog := model.Log{
		ID:        uuid.NewString(),
		HotelID:   hotelID,
		Status:    model.StatusRunning,
		RunBy:     actor,
		StartedAt: timezone.Now(),
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		bd, err := s.businessDate.LockForAuditTx(ctx, tx, hotelID, actor)
		if err != nil {
			return err //nolint:wrapcheck
		}

		auditLog.AuditDate, err = auditDate(bd, req.AuditDate)
		if err != nil {
			return err
		}

		summary, inHouse, err := s.precloseTx(ctx, tx, hotelID, auditLog.AuditDate)
		if err != nil {
			return err
		}

		s.postRevenueTx(ctx, tx, hotelID, actor, auditLog.AuditDate, inHouse, &summary)

		if _, err = s.businessDate.AdvanceTx(ctx, tx, hotelID, actor, auditLog.AuditDate); err != nil {
			return err //nolint:wrapcheck
		}

		finished := timezone.Now()
		auditLog.Summary = summary
		auditLog.FinishedAt = &finished
		auditLog.Status = model.StatusSuccess

		if len(summary.Errors) > 0 {
			auditLog.Status = model.StatusPartial
		}

		if err = s.repo.InsertTx(ctx, tx, auditLog); err != nil {
			log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to write night audit log")

			return fmt.Errorf("failed to write night audit log: %w", err)
		}

		return nil
	})
	if err != nil {
		if !failure.IsFailure(err) {
			s.recordFailure(ctx, auditLog, err)
		}

		return res, err //nolint:wrapcheck
	}

	s.businessDate.Invalidate(ctx, hotelID)
	s.booking.InvalidateCaches(ctx, hotelID)
	shared.InvalidateCaches(ctx, s.cache, cachePrefix(hotelID))

	log.Info().
		Str("hotel_id", hotelID).
		Str("audit_date", timezone.FormatDate(auditLog.AuditDate)).
		Str("status", string(auditLog.Status)).
		Int("processed", auditLog.Summary.BookingsProcessed).
		Str("revenue", auditLog.Summary.RevenuePosted.StringFixed(2)).
		Msg("night audit finished")

	res.FromModel(auditLog)

	return res, nil
}

// postRevenueTx posts each booking inside its own savepoint so one failure leaves the others intact.
func (s *serviceImpl) postRevenueTx(ctx context.Context, tx *sqlx.Tx, hotelID, actor string, date time.Time, inHouse []inHouseBooking, summary *model.Summary) {
	summary.RevenuePosted = decimal.Zero

	for i, booking := range inHouse {
		var amount decimal.Decimal

		err := s.transactor.WithinSavepoint(ctx, tx, fmt.Sprintf("night_audit_%d", i), func() error {
			var err error

			amount, err = s.booking.PostNightlyChargeTx(ctx, tx, hotelID, booking.ID, actor, date)

			return err //nolint:wrapcheck
		})
		if err != nil {
			log.Warn().Err(err).Str("booking_id", booking.ID).Msg("night audit could not post room revenue")

			summary.Errors = append(summary.Errors, model.PostingError{
				BookingID: booking.ID,
				Reference: booking.Reference,
				RoomID:    booking.RoomID,
				Error:     err.Error(),
			})

			continue
		}

		summary.BookingsProcessed++
		summary.RevenuePosted = summary.RevenuePosted.Add(amount)
	}
}

// recordFailure keeps a trace of a run whose unit of work was rolled back.
func (s *serviceImpl) recordFailure(ctx context.Context, auditLog model.Log, cause error) {
	if auditLog.AuditDate.IsZero() {
		return
	}

	finished := timezone.Now()
	auditLog.ID = uuid.NewString()
	auditLog.Status = model.StatusFailed
	auditLog.FinishedAt = &finished
	auditLog.Summary = model.Summary{
		RevenuePosted: decimal.Zero,
		Errors:        []model.PostingError{{Error: cause.Error()}},
	}

	if err := s.repo.Insert(context.WithoutCancel(ctx), auditLog); err != nil {
		log.Error().Err(err).Str("hotel_id", auditLog.HotelID).Msg("failed to record failed night audit")
	}
}

func (s *serviceImpl) GetLogs(ctx context.Context, hotelID string, params gDto.QueryParams) (res dto.GetLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".night_audit.GetLogs")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByHotel(hotelID, model.TableName)
	params.SortBy = model.TableName + "." + model.FieldStartedAt
	params.SortDir = gDto.SortDirDesc

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cachePrefix(hotelID), "gets"), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for night audit logs")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to count night audit logs")

		return res, fmt.Errorf("failed to count night audit logs: %w", err)
	}

	logs, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get night audit logs")

		return res, fmt.Errorf("failed to get night audit logs: %w", err)
	}

	res.FromModels(logs, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save night audit logs to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetLog(ctx context.Context, hotelID, id string) (res dto.AuditLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".night_audit.GetLog")
	defer scope.End()
	defer scope.TraceIfError(err)

	auditLog, err := s.repo.Get(ctx, shared.FilterByHotelAndID(hotelID, id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("audit_id", id).Msg("failed to get night audit log")

		return res, fmt.Errorf("failed to get night audit log: %w", err)
	}

	if auditLog.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	res.FromModel(auditLog)

	return res, nil
}
