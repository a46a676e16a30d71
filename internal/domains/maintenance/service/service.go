package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/internal/domains/maintenance/model"
	"hotelops/internal/domains/maintenance/model/dto"
	"hotelops/internal/domains/maintenance/repository"
	notificationModel "hotelops/internal/domains/notification/model"
	notificationService "hotelops/internal/domains/notification/service"
	roomModel "hotelops/internal/domains/room/model"
	roomDto "hotelops/internal/domains/room/model/dto"
	roomService "hotelops/internal/domains/room/service"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheIssue = "maintenance"
)

type Maintenance interface {
	Report(ctx context.Context, hotelID, actor string, req dto.ReportIssueRequest) (dto.IssueResponse, error)
	Start(ctx context.Context, hotelID, id, actor string) (dto.IssueResponse, error)
	Resolve(ctx context.Context, hotelID, id, actor string, req dto.ResolveIssueRequest) (dto.IssueResponse, error)
	GetAll(ctx context.Context, hotelID string, params gDto.QueryParams, req dto.GetIssuesRequest) (dto.GetIssuesResponse, error)
}

type serviceImpl struct {
	repo       repository.Issue
	room       roomService.Room
	notifier   notificationService.Notification
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Issue,
	room roomService.Room,
	notifier notificationService.Notification,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Maintenance {
	return &serviceImpl{
		repo:       repo,
		room:       room,
		notifier:   notifier,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func cachePrefix(hotelID string) string {
	return shared.BuildCacheKey(cacheIssue, hotelID)
}

func byHotelAndID(hotelID, id string) gDto.FilterGroup {
	return shared.FilterByHotelAndID(hotelID, id, model.FieldID, model.TableName)
}

// publish runs after commit for every unit of work that may have moved a room.
func (s *serviceImpl) publish(ctx context.Context, hotelID string, notifications []notificationModel.Notification) {
	s.notifier.Dispatch(ctx, notifications)

	if len(notifications) > 0 {
		s.room.InvalidateCaches(ctx, hotelID)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix(hotelID))
}

// Report records an issue. With OutOfOrder set the room is taken out of service in the same unit of work.
func (s *serviceImpl) Report(ctx context.Context, hotelID, actor string, req dto.ReportIssueRequest) (res dto.IssueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Report")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelRoomAttributeKey, req.RoomID)

	var (
		issue         model.Issue
		notifications []notificationModel.Notification
	)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		room, err := s.room.LockTx(ctx, tx, hotelID, req.RoomID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		issue = model.Issue{
			ID:          uuid.NewString(),
			HotelID:     hotelID,
			RoomID:      room.ID,
			IssueType:   req.IssueType,
			Description: req.Description,
			Priority:    req.Priority,
			Status:      model.StatusReported,
			RoomNumber:  room.Number,
			Metadata:    gModel.NewMetadata(timezone.Now(), actor),
		}

		if err = s.repo.InsertTx(ctx, tx, issue); err != nil {
			log.Error().Err(err).Str("room_id", room.ID).Msg("failed to report maintenance issue")

			return fmt.Errorf("failed to report maintenance issue: %w", err)
		}

		if !req.OutOfOrder || room.Status == roomModel.StatusMaintenance {
			return nil
		}

		notifications, err = s.room.ChangeStatusTx(ctx, tx, hotelID, room.ID, actor, roomDto.ChangeStatusRequest{
			Status: roomModel.StatusMaintenance,
			Reason: req.IssueType,
		})

		return err //nolint:wrapcheck
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.publish(ctx, hotelID, notifications)

	log.Info().Str("hotel_id", hotelID).Str("issue_id", issue.ID).Str("priority", string(issue.Priority)).Msg("maintenance issue reported")

	res.FromModel(issue)

	return res, nil
}

func (s *serviceImpl) lockTx(ctx context.Context, tx *sqlx.Tx, hotelID, id string) (model.Issue, error) {
	issue, err := s.repo.GetForUpdateTx(ctx, tx, byHotelAndID(hotelID, id))
	if failure.IsRetryable(err) {
		return issue, err
	}

	if err != nil {
		log.Error().Err(err).Str("issue_id", id).Msg("failed to lock maintenance issue")

		return issue, fmt.Errorf("failed to lock maintenance issue: %w", err)
	}

	if issue.ID == constant.Empty {
		return issue, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return issue, nil
}

func (s *serviceImpl) Start(ctx context.Context, hotelID, id, actor string) (res dto.IssueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	var issue model.Issue

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) (txErr error) {
		issue, txErr = s.lockTx(ctx, tx, hotelID, id)
		if txErr != nil {
			return txErr
		}

		if issue.Status != model.StatusReported {
			return failure.Rejected(model.ReasonInvalidIssueTransition, fmt.Sprintf("Cannot start a %s issue", issue.Status)) //nolint:wrapcheck
		}

		fields := shared.Touch(map[string]any{model.FieldStatus: model.StatusInProgress}, actor)

		if txErr = s.repo.UpdateTx(ctx, tx, fields, byHotelAndID(hotelID, id)); txErr != nil {
			log.Error().Err(txErr).Str("issue_id", id).Msg("failed to start maintenance issue")

			return fmt.Errorf("failed to start maintenance issue: %w", txErr)
		}

		issue.Status = model.StatusInProgress

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.publish(ctx, hotelID, nil)

	res.FromModel(issue)

	return res, nil
}

// Resolve closes an open issue. With ReturnToService set an out-of-order room goes back to Vacant,
// still subject to every room transition rule.
func (s *serviceImpl) Resolve(ctx context.Context, hotelID, id, actor string, req dto.ResolveIssueRequest) (res dto.IssueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	var (
		issue         model.Issue
		notifications []notificationModel.Notification
	)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		issue, err = s.lockTx(ctx, tx, hotelID, id)
		if err != nil {
			return err
		}

		if issue.Status == model.StatusResolved {
			return failure.Rejected(model.ReasonInvalidIssueTransition, "Issue is already resolved") //nolint:wrapcheck
		}

		now := timezone.Now()
		fields := shared.Touch(map[string]any{
			model.FieldStatus:     model.StatusResolved,
			model.FieldResolution: req.Resolution,
			model.FieldResolvedAt: now,
		}, actor)

		if err = s.repo.UpdateTx(ctx, tx, fields, byHotelAndID(hotelID, id)); err != nil {
			log.Error().Err(err).Str("issue_id", id).Msg("failed to resolve maintenance issue")

			return fmt.Errorf("failed to resolve maintenance issue: %w", err)
		}

		issue.Status = model.StatusResolved
		issue.Resolution = req.Resolution
		issue.ResolvedAt = &now

		if !req.ReturnToService {
			return nil
		}

		room, err := s.room.LockTx(ctx, tx, hotelID, issue.RoomID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if room.Status != roomModel.StatusMaintenance {
			return nil
		}

		notifications, err = s.room.ChangeStatusTx(ctx, tx, hotelID, issue.RoomID, actor, roomDto.ChangeStatusRequest{
			Status: roomModel.StatusVacant,
			Reason: "Maintenance resolved: " + issue.IssueType,
		})

		return err //nolint:wrapcheck
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.publish(ctx, hotelID, notifications)

	log.Info().Str("hotel_id", hotelID).Str("issue_id", id).Str("actor", actor).Msg("maintenance issue resolved")

	res.FromModel(issue)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string, params gDto.QueryParams, req dto.GetIssuesRequest) (res dto.GetIssuesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filters := []any{}

	if req.Status != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: req.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if req.Priority != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldPriority, Value: req.Priority, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if req.RoomID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldRoomID, Value: req.RoomID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	filter := shared.FilterByHotel(hotelID, model.TableName, filters...)

	if params.SortBy == constant.Empty {
		params.SortBy = model.TableName + "." + model.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cachePrefix(hotelID), "gets"), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for maintenance issues")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to count maintenance issues")

		return res, fmt.Errorf("failed to count maintenance issues: %w", err)
	}

	issues, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get maintenance issues")

		return res, fmt.Errorf("failed to get maintenance issues: %w", err)
	}

	res.FromModels(issues, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance issues to cache")
		}
	}()

	return res, nil
}
