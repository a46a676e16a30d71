package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/internal/domains/businessdate/model"
	"hotelops/internal/domains/businessdate/model/dto"
	"hotelops/internal/domains/businessdate/repository"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBusinessDate = "business_date:get"
)

type BusinessDate interface {
	AcquireTx(ctx context.Context, tx *sqlx.Tx, hotelID string) (model.BusinessDate, error)
	LockForAuditTx(ctx context.Context, tx *sqlx.Tx, hotelID, actor string) (model.BusinessDate, error)
	AdvanceTx(ctx context.Context, tx *sqlx.Tx, hotelID, actor string, closed time.Time) (model.BusinessDate, error)
	EnsureOpen(businessDate model.BusinessDate, date time.Time) error
	Get(ctx context.Context, hotelID string) (dto.BusinessDateResponse, error)
	Today(ctx context.Context, hotelID string) (time.Time, error)
	Invalidate(ctx context.Context, hotelID string)
}

type serviceImpl struct {
	repo  repository.BusinessDate
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.BusinessDate, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) BusinessDate {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

type lockFunc func(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.BusinessDate, error)

func filterByHotel(hotelID string) gDto.FilterGroup {
	return shared.FilterByID(hotelID, model.FieldHotelID, model.TableName)
}

// load locks the hotel's clock, creating it at today's calendar date on first use.
func (s *serviceImpl) load(ctx context.Context, tx *sqlx.Tx, hotelID string, lock lockFunc) (model.BusinessDate, error) {
	businessDate, err := lock(ctx, tx, filterByHotel(hotelID))
	if err != nil {
		return businessDate, err //nolint:wrapcheck
	}

	if businessDate.HotelID != constant.Empty {
		return businessDate, nil
	}

	err = s.repo.InitTx(ctx, tx, model.BusinessDate{
		HotelID:             hotelID,
		CurrentBusinessDate: timezone.Today(),
		Metadata:            gModel.NewMetadata(timezone.Now(), constant.SystemActor),
	})
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to initialise business date")

		return businessDate, fmt.Errorf("failed to initialise business date: %w", err)
	}

	log.Info().Str("hotel_id", hotelID).Msg("business date initialised")

	return lock(ctx, tx, filterByHotel(hotelID)) //nolint:wrapcheck
}

// AcquireTx takes a shared lock on the hotel's clock for the rest of tx. It fails fast with
// date_locked while a night audit is closing the date.
func (s *serviceImpl) AcquireTx(ctx context.Context, tx *sqlx.Tx, hotelID string) (res model.BusinessDate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".business_date.AcquireTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.load(ctx, tx, hotelID, s.repo.GetForShareTx)
	if failure.IsRetryable(err) {
		return res, failure.DateLocked("business date is being closed by night audit, retry after it completes") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to acquire business date")

		return res, fmt.Errorf("failed to acquire business date: %w", err)
	}

	if res.IsClosed {
		return res, failure.DateLocked(fmt.Sprintf("business date %s is closed", timezone.FormatDate(res.CurrentBusinessDate))) //nolint:wrapcheck
	}

	return res, nil
}

// LockForAuditTx takes the exclusive lock night audit holds while it closes the current date.
func (s *serviceImpl) LockForAuditTx(ctx context.Context, tx *sqlx.Tx, hotelID, actor string) (res model.BusinessDate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".business_date.LockForAuditTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.load(ctx, tx, hotelID, s.repo.GetForUpdateTx)
	if failure.IsRetryable(err) {
		return res, err
	}

	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to lock business date")

		return res, fmt.Errorf("failed to lock business date: %w", err)
	}

	err = s.repo.UpdateTx(ctx, tx, shared.Touch(map[string]any{model.FieldIsClosed: true}, actor), filterByHotel(hotelID))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to mark business date closing")

		return res, fmt.Errorf("failed to mark business date closing: %w", err)
	}

	res.IsClosed = true

	return res, nil
}

// AdvanceTx records closed as the last closed date and opens the following day.
func (s *serviceImpl) AdvanceTx(ctx context.Context, tx *sqlx.Tx, hotelID, actor string, closed time.Time) (res model.BusinessDate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".business_date.AdvanceTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	closed = timezone.Date(closed)
	next := closed.AddDate(0, 0, 1)

	fields := shared.Touch(map[string]any{
		model.FieldCurrentBusinessDate: next,
		model.FieldIsClosed:            false,
		model.FieldClosedDate:          closed,
	}, actor)

	if err = s.repo.UpdateTx(ctx, tx, fields, filterByHotel(hotelID)); err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to advance business date")

		return res, fmt.Errorf("failed to advance business date: %w", err)
	}

	log.Info().
		Str("hotel_id", hotelID).
		Str("closed", timezone.FormatDate(closed)).
		Str("current", timezone.FormatDate(next)).
		Msg("business date advanced")

	return model.BusinessDate{
		HotelID:             hotelID,
		CurrentBusinessDate: next,
		ClosedDate:          &closed,
	}, nil
}

// EnsureOpen rejects postings dated on a closed date and postings dated after the business date.
func (s *serviceImpl) EnsureOpen(businessDate model.BusinessDate, date time.Time) error {
	if businessDate.IsLocked(date) {
		return failure.DateLocked(fmt.Sprintf("business date %s is closed for postings", timezone.FormatDate(date))) //nolint:wrapcheck
	}

	if timezone.Date(date).After(businessDate.Current()) {
		return failure.BadRequestFromString(fmt.Sprintf("posting date %s is after the business date %s", timezone.FormatDate(date), timezone.FormatDate(businessDate.Current()))) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, hotelID string) (res dto.BusinessDateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".business_date.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBusinessDate, hotelID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for business date")

		return res, nil
	}

	businessDate, err := s.repo.Get(ctx, filterByHotel(hotelID))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get business date")

		return res, fmt.Errorf("failed to get business date: %w", err)
	}

	if businessDate.HotelID == constant.Empty {
		businessDate = model.BusinessDate{HotelID: hotelID, CurrentBusinessDate: timezone.Today()}
	}

	res.FromModel(businessDate)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save business date to cache")
		}
	}()

	return res, nil
}

// Today reads the current business date without locking it. Callers that post must use AcquireTx.
func (s *serviceImpl) Today(ctx context.Context, hotelID string) (res time.Time, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".business_date.Today")
	defer scope.End()
	defer scope.TraceIfError(err)

	businessDate, err := s.repo.Get(ctx, filterByHotel(hotelID))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to read business date")

		return res, fmt.Errorf("failed to read business date: %w", err)
	}

	if businessDate.HotelID == constant.Empty {
		return timezone.Today(), nil
	}

	return businessDate.Current(), nil
}

func (s *serviceImpl) Invalidate(ctx context.Context, hotelID string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBusinessDate, hotelID)); err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to delete business date from cache")
	}
}
