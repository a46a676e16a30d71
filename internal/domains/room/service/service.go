package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	bookingRepository "hotelops/internal/domains/booking/repository"
	businessDateService "hotelops/internal/domains/businessdate/service"
	housekeepingModel "hotelops/internal/domains/housekeeping/model"
	housekeepingRepository "hotelops/internal/domains/housekeeping/repository"
	maintenanceRepository "hotelops/internal/domains/maintenance/repository"
	notificationModel "hotelops/internal/domains/notification/model"
	notificationRepository "hotelops/internal/domains/notification/repository"
	notificationService "hotelops/internal/domains/notification/service"
	restaurantRepository "hotelops/internal/domains/restaurant/repository"
	"hotelops/internal/domains/room/model"
	"hotelops/internal/domains/room/model/dto"
	"hotelops/internal/domains/room/repository"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheRoom = "room"
)

type Room interface {
	CreateType(ctx context.Context, hotelID, actor string, req dto.CreateRoomTypeRequest) (dto.RoomTypeResponse, error)
	GetTypes(ctx context.Context, hotelID string) ([]dto.RoomTypeResponse, error)
	GetTypeTx(ctx context.Context, tx *sqlx.Tx, hotelID, id string) (model.RoomType, error)
	Create(ctx context.Context, hotelID, actor string, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Deactivate(ctx context.Context, hotelID, id, actor string) error
	Get(ctx context.Context, hotelID, id string) (dto.RoomResponse, error)
	GetAll(ctx context.Context, hotelID string, params gDto.QueryParams, req dto.GetRoomsRequest) (dto.GetRoomsResponse, error)
	GetHistory(ctx context.Context, hotelID, id string, params gDto.QueryParams) (dto.GetHistoryResponse, error)
	ChangeStatus(ctx context.Context, hotelID, id, actor string, req dto.ChangeStatusRequest) (dto.RoomResponse, error)
	ChangeStatusTx(ctx context.Context, tx *sqlx.Tx, hotelID, id, actor string, req dto.ChangeStatusRequest) ([]notificationModel.Notification, error)
	LockTx(ctx context.Context, tx *sqlx.Tx, hotelID, id string) (model.Room, error)
	EnsureCheckInReadyTx(ctx context.Context, tx *sqlx.Tx, hotelID, id string) (model.Room, error)
	CheckInReadiness(ctx context.Context, hotelID, id string) (dto.ReadinessResponse, error)
	InvalidateCaches(ctx context.Context, hotelID string)
}

type serviceImpl struct {
	repo             repository.Room
	typeRepo         repository.RoomType
	historyRepo      repository.History
	bookingRepo      bookingRepository.Booking
	taskRepo         housekeepingRepository.Task
	issueRepo        maintenanceRepository.Issue
	orderRepo        restaurantRepository.Order
	notificationRepo notificationRepository.Notification
	notifier         notificationService.Notification
	businessDate     businessDateService.BusinessDate
	transactor       postgres.Transactor
	cfg              *config.Config
	cache            cache.RedisCache
	otel             otel.Otel
}

func New(
	repo repository.Room,
	typeRepo repository.RoomType,
	historyRepo repository.History,
	bookingRepo bookingRepository.Booking,
	taskRepo housekeepingRepository.Task,
	issueRepo maintenanceRepository.Issue,
	orderRepo restaurantRepository.Order,
	notificationRepo notificationRepository.Notification,
	notifier notificationService.Notification,
	businessDate businessDateService.BusinessDate,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Room {
	return &serviceImpl{
		repo:             repo,
		typeRepo:         typeRepo,
		historyRepo:      historyRepo,
		bookingRepo:      bookingRepo,
		taskRepo:         taskRepo,
		issueRepo:        issueRepo,
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		businessDate:     businessDate,
		transactor:       transactor,
		cfg:              cfg,
		cache:            cache,
		otel:             otel,
	}
}

func cachePrefix(hotelID string) string {
	return shared.BuildCacheKey(cacheRoom, hotelID)
}

func (s *serviceImpl) CreateType(ctx context.Context, hotelID, actor string, req dto.CreateRoomTypeRequest) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.CreateType")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.typeRepo.Exist(ctx, shared.FilterByHotelAndID(hotelID, req.Name, model.FieldName, model.TypeTableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to check room type name")

		return res, fmt.Errorf("failed to check room type name: %w", err)
	}

	if exist {
		return res, failure.Conflict(fmt.Sprintf("room type %s already exists", req.Name)) //nolint:wrapcheck
	}

	roomType := req.ToModel(hotelID, actor)
	if err = s.typeRepo.Insert(ctx, roomType); err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to create room type")

		return res, fmt.Errorf("failed to create room type: %w", err)
	}

	res.FromModel(roomType)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, shared.BuildCacheKey(cachePrefix(hotelID), "types"))
	}()

	return res, nil
}

func (s *serviceImpl) GetTypes(ctx context.Context, hotelID string) (res []dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cachePrefix(hotelID), "types")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.TypeTableName + "." + model.FieldName, SortDir: gDto.SortDirAsc}

	types, err := s.typeRepo.GetAll(ctx, params, shared.FilterByHotel(hotelID, model.TypeTableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res = make([]dto.RoomTypeResponse, len(types))
	for i, roomType := range types {
		res[i].FromModel(roomType)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetTypeTx(ctx context.Context, tx *sqlx.Tx, hotelID, id string) (res model.RoomType, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetTypeTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.typeRepo.GetTx(ctx, tx, shared.FilterByHotelAndID(hotelID, id, model.FieldID, model.TypeTableName))
	if err != nil {
		log.Error().Err(err).Str("room_type_id", id).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound(model.TypeEntityName) //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, hotelID, actor string, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.typeRepo.Exist(ctx, shared.FilterByHotelAndID(hotelID, req.RoomTypeID, model.FieldID, model.TypeTableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to check room type")

		return res, fmt.Errorf("failed to check room type: %w", err)
	}

	if !exist {
		return res, failure.NotFound(model.TypeEntityName) //nolint:wrapcheck
	}

	exist, err = s.repo.Exist(ctx, shared.FilterByHotelAndID(hotelID, req.Number, model.FieldNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to check room number")

		return res, fmt.Errorf("failed to check room number: %w", err)
	}

	if exist {
		return res, failure.Rejected(model.ReasonDuplicateNumber, fmt.Sprintf("Room %s already exists", req.Number)) //nolint:wrapcheck
	}

	room := req.ToModel(hotelID, actor)
	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	log.Info().Str("hotel_id", hotelID).Str("room_id", room.ID).Str("number", room.Number).Msg("room created")

	go s.InvalidateCaches(context.WithoutCancel(ctx), hotelID)

	return s.Get(ctx, hotelID, room.ID)
}

// Deactivate takes a room out of the sellable inventory. Occupied rooms must be checked out first.
func (s *serviceImpl) Deactivate(ctx context.Context, hotelID, id, actor string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Deactivate")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		room, err := s.LockTx(ctx, tx, hotelID, id)
		if err != nil {
			return err
		}

		if room.Status == model.StatusOccupied {
			return failure.Rejected(model.ReasonRoomOccupied, "Cannot deactivate an occupied room. Check out the guest first.") //nolint:wrapcheck
		}

		fields := shared.Touch(map[string]any{model.FieldIsActive: false}, actor)

		return s.repo.UpdateTx(ctx, tx, fields, shared.FilterByHotelAndID(hotelID, id, model.FieldID, model.TableName)) //nolint:wrapcheck
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Str("hotel_id", hotelID).Str("room_id", id).Str("actor", actor).Msg("room deactivated")

	go s.InvalidateCaches(context.WithoutCancel(ctx), hotelID)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, hotelID, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cachePrefix(hotelID), "get", id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByHotelAndID(hotelID, id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string, params gDto.QueryParams, req dto.GetRoomsRequest) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filters := []any{}
	if req.Status != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: req.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if req.Floor != nil {
		filters = append(filters, gDto.Filter{Field: model.FieldFloor, Value: *req.Floor, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if req.IsActive != nil {
		filters = append(filters, gDto.Filter{Field: model.FieldIsActive, Value: *req.IsActive, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	filter := shared.FilterByHotel(hotelID, model.TableName, filters...)

	if params.SortBy == constant.Empty {
		params.SortBy = model.TableName + "." + model.FieldNumber
		params.SortDir = gDto.SortDirAsc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cachePrefix(hotelID), "gets"), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	rooms, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetHistory(ctx context.Context, hotelID, id string, params gDto.QueryParams) (res dto.GetHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByHotel(hotelID, model.HistoryTableName, gDto.Filter{
		Field:    model.FieldRoomID,
		Value:    id,
		Operator: gDto.FilterOperatorEq,
		Table:    model.HistoryTableName,
	})

	params.SortBy = model.HistoryTableName + "." + model.FieldChangedAt
	params.SortDir = gDto.SortDirDesc

	total, err := s.historyRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to count room history")

		return res, fmt.Errorf("failed to count room history: %w", err)
	}

	histories, err := s.historyRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room history")

		return res, fmt.Errorf("failed to get room history: %w", err)
	}

	res.FromModels(histories, total, params.Limit)

	return res, nil
}

// ChangeStatus applies a manual status change in its own unit of work.
func (s *serviceImpl) ChangeStatus(ctx context.Context, hotelID, id, actor string, req dto.ChangeStatusRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.ChangeStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelRoomAttributeKey, id)

	var notifications []notificationModel.Notification

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) (txErr error) {
		notifications, txErr = s.ChangeStatusTx(ctx, tx, hotelID, id, actor, req)

		return txErr
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.notifier.Dispatch(ctx, notifications)
	s.InvalidateCaches(ctx, hotelID)

	return s.Get(ctx, hotelID, id)
}

// ChangeStatusTx locks the room, runs every transition rule and records the change with its
// history row, follow-up cleaning task and notifications. Notifications are returned for the
// caller to dispatch once tx commits.
func (s *serviceImpl) ChangeStatusTx(ctx context.Context, tx *sqlx.Tx, hotelID, id, actor string, req dto.ChangeStatusRequest) (res []notificationModel.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.ChangeStatusTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.LockTx(ctx, tx, hotelID, id)
	if err != nil {
		return nil, err
	}

	transition := model.Transition{Room: room, To: req.Status, Reason: req.Reason, Actor: actor}

	if err = s.evaluate(ctx, tx, transition); err != nil {
		return nil, err
	}

	now := timezone.Now()
	filter := shared.FilterByHotelAndID(hotelID, id, model.FieldID, model.TableName)

	if err = s.repo.UpdateTx(ctx, tx, shared.Touch(map[string]any{model.FieldStatus: req.Status}, actor), filter); err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to update room status")

		return nil, fmt.Errorf("failed to update room status: %w", err)
	}

	err = s.historyRepo.InsertTx(ctx, tx, model.StatusHistory{
		ID:        uuid.NewString(),
		HotelID:   hotelID,
		RoomID:    id,
		OldStatus: room.Status,
		NewStatus: req.Status,
		Reason:    req.Reason,
		ChangedBy: actor,
		ChangedAt: now,
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to record room status history")

		return nil, fmt.Errorf("failed to record room status history: %w", err)
	}

	if room.Status == model.StatusOccupied && req.Status == model.StatusDirty {
		if err = s.scheduleCleaningTx(ctx, tx, room, actor); err != nil {
			return nil, err
		}
	}

	res = buildNotifications(transition, *s.cfg.Policy.WithDefaults().RevenueLossRatio)
	if len(res) > 0 {
		if err = s.notificationRepo.InsertBulkTx(ctx, tx, res); err != nil {
			log.Error().Err(err).Str("room_id", id).Msg("failed to store room notifications")

			return nil, fmt.Errorf("failed to store room notifications: %w", err)
		}
	}

	log.Info().
		Str("hotel_id", hotelID).
		Str("room_id", id).
		Str("from", string(room.Status)).
		Str("to", string(req.Status)).
		Str("actor", actor).
		Msg("room status changed")

	return res, nil
}

// scheduleCleaningTx queues a checkout clean unless the room already has open work.
func (s *serviceImpl) scheduleCleaningTx(ctx context.Context, tx *sqlx.Tx, room model.Room, actor string) error {
	exist, err := s.taskRepo.ExistTx(ctx, tx, shared.FilterByHotel(room.HotelID, housekeepingModel.TableName,
		gDto.Filter{Field: housekeepingModel.FieldRoomID, Value: room.ID, Operator: gDto.FilterOperatorEq, Table: housekeepingModel.TableName},
		gDto.Filter{Field: housekeepingModel.FieldStatus, Value: housekeepingModel.OpenStatuses, Operator: gDto.FilterOperatorIn, Table: housekeepingModel.TableName},
	))
	if err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to check open cleaning tasks")

		return fmt.Errorf("failed to check open cleaning tasks: %w", err)
	}

	if exist {
		return nil
	}

	task := housekeepingModel.NewCheckoutTask(room.HotelID, room.ID, room.IsVIP, room.CleaningMinutes, timezone.Now(), actor)
	if err = s.taskRepo.InsertTx(ctx, tx, task); err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to create checkout cleaning task")

		return fmt.Errorf("failed to create checkout cleaning task: %w", err)
	}

	return nil
}

// LockTx takes the room row lock. Inactive rooms cannot be moved.
func (s *serviceImpl) LockTx(ctx context.Context, tx *sqlx.Tx, hotelID, id string) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.LockTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetForUpdateTx(ctx, tx, shared.FilterByHotelAndID(hotelID, id, model.FieldID, model.TableName))
	if failure.IsRetryable(err) {
		return res, err
	}

	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to lock room")

		return res, fmt.Errorf("failed to lock room: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if !res.IsActive {
		return res, failure.Rejected(model.ReasonRoomInactive, fmt.Sprintf("Room %s is inactive", res.Number)) //nolint:wrapcheck
	}

	return res, nil
}

// EnsureCheckInReadyTx locks the room and refuses it unless a guest can move in now.
func (s *serviceImpl) EnsureCheckInReadyTx(ctx context.Context, tx *sqlx.Tx, hotelID, id string) (model.Room, error) {
	room, err := s.LockTx(ctx, tx, hotelID, id)
	if err != nil {
		return room, err
	}

	if ready, message := model.CheckInReadiness(room.Status); !ready {
		return room, failure.Rejected(model.ReasonRoomNotReady, message) //nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) CheckInReadiness(ctx context.Context, hotelID, id string) (res dto.ReadinessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.CheckInReadiness")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.repo.Get(ctx, shared.FilterByHotelAndID(hotelID, id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	res.RoomID = room.ID
	res.Status = room.Status
	res.Ready, res.Message = model.CheckInReadiness(room.Status)

	if !room.IsActive {
		res.Ready = false
		res.Message = "Room is inactive"
	}

	return res, nil
}

func (s *serviceImpl) InvalidateCaches(ctx context.Context, hotelID string) {
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cachePrefix(hotelID), "get"))
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cachePrefix(hotelID), "gets"))
}
