package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	bookingModel "hotelops/internal/domains/booking/model"
	bookingRepository "hotelops/internal/domains/booking/repository"
	businessDateService "hotelops/internal/domains/businessdate/service"
	"hotelops/internal/domains/housekeeping/model"
	"hotelops/internal/domains/housekeeping/model/dto"
	"hotelops/internal/domains/housekeeping/repository"
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
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheStaff = "housekeeping:staff"
)

type Housekeeping interface {
	CreateStaff(ctx context.Context, hotelID, actor string, req dto.CreateStaffRequest) (dto.StaffResponse, error)
	GetStaff(ctx context.Context, hotelID string) ([]dto.StaffResponse, error)
	CreateTask(ctx context.Context, hotelID, actor string, req dto.CreateTaskRequest) (dto.TaskResponse, error)
	StartTask(ctx context.Context, hotelID, id, actor string) (dto.TaskResponse, error)
	CompleteTask(ctx context.Context, hotelID, id, actor string, req dto.CompleteTaskRequest) (dto.TaskResponse, error)
	AutoAssign(ctx context.Context, hotelID, actor string) (dto.AutoAssignResponse, error)
	GetQueue(ctx context.Context, hotelID string, req dto.GetQueueRequest) (dto.QueueResponse, error)
}

type serviceImpl struct {
	repo         repository.Task
	staffRepo    repository.Staff
	bookingRepo  bookingRepository.Booking
	room         roomService.Room
	businessDate businessDateService.BusinessDate
	notifier     notificationService.Notification
	transactor   postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Task,
	staffRepo repository.Staff,
	bookingRepo bookingRepository.Booking,
	room roomService.Room,
	businessDate businessDateService.BusinessDate,
	notifier notificationService.Notification,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Housekeeping {
	return &serviceImpl{
		repo:         repo,
		staffRepo:    staffRepo,
		bookingRepo:  bookingRepo,
		room:         room,
		businessDate: businessDate,
		notifier:     notifier,
		transactor:   transactor,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func byHotelAndID(hotelID, id string) gDto.FilterGroup {
	return shared.FilterByHotelAndID(hotelID, id, model.FieldID, model.TableName)
}

func (s *serviceImpl) CreateStaff(ctx context.Context, hotelID, actor string, req dto.CreateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.CreateStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff := req.ToModel(hotelID, actor)

	if err = s.staffRepo.Insert(ctx, staff); err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to create housekeeping staff")

		return res, fmt.Errorf("failed to create housekeeping staff: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, shared.BuildCacheKey(cacheStaff, hotelID))

	res.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) GetStaff(ctx context.Context, hotelID string) (res []dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.GetStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheStaff, hotelID, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for housekeeping staff")

		return res, nil
	}

	staff, err := s.staffRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.StaffTableName + "." + model.FieldName,
		SortDir: gDto.SortDirAsc,
	}, shared.FilterByHotel(hotelID, model.StaffTableName,
		gDto.Filter{Field: model.FieldIsActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.StaffTableName},
	))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get housekeeping staff")

		return res, fmt.Errorf("failed to get housekeeping staff: %w", err)
	}

	res = make([]dto.StaffResponse, len(staff))
	for i, member := range staff {
		res[i].FromModel(member)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping staff to cache")
		}
	}()

	return res, nil
}

func arrivalFilter(hotelID string, date time.Time, roomIDs []string) gDto.FilterGroup {
	return shared.FilterByHotel(hotelID, bookingModel.TableName,
		gDto.Filter{Field: bookingModel.FieldRoomID, Value: roomIDs, Operator: gDto.FilterOperatorIn, Table: bookingModel.TableName},
		gDto.Filter{Field: bookingModel.FieldStatus, Value: bookingModel.StatusReserved, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
		gDto.Filter{Field: bookingModel.FieldCheckInDate, Value: date, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
	)
}

func roomsWithArrival(bookings []bookingModel.Booking) map[string]bool {
	res := make(map[string]bool, len(bookings))
	for _, booking := range bookings {
		res[booking.AssignedRoom()] = true
	}

	return res
}

// arrivalsTx reports which of the rooms expect a guest on date, reading inside the unit of work.
func (s *serviceImpl) arrivalsTx(ctx context.Context, tx *sqlx.Tx, hotelID string, date time.Time, roomIDs []string) (map[string]bool, error) {
	if len(roomIDs) == 0 {
		return map[string]bool{}, nil
	}

	bookings, err := s.bookingRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, arrivalFilter(hotelID, date, roomIDs))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get arrivals")

		return nil, fmt.Errorf("failed to get arrivals: %w", err)
	}

	return roomsWithArrival(bookings), nil
}

// arrivals is arrivalsTx for read-only views served from the read pool.
func (s *serviceImpl) arrivals(ctx context.Context, hotelID string, date time.Time, roomIDs []string) (map[string]bool, error) {
	if len(roomIDs) == 0 {
		return map[string]bool{}, nil
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, arrivalFilter(hotelID, date, roomIDs))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get arrivals")

		return nil, fmt.Errorf("failed to get arrivals: %w", err)
	}

	return roomsWithArrival(bookings), nil
}

// CreateTask queues work for a room, scored at creation.
func (s *serviceImpl) CreateTask(ctx context.Context, hotelID, actor string, req dto.CreateTaskRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.CreateTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	today, err := s.businessDate.Today(ctx, hotelID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	var task model.Task

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		room, err := s.room.LockTx(ctx, tx, hotelID, req.RoomID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		arrivals, err := s.arrivalsTx(ctx, tx, hotelID, today, []string{room.ID})
		if err != nil {
			return err
		}

		now := timezone.Now()
		task = model.Task{
			ID:       uuid.NewString(),
			HotelID:  hotelID,
			RoomID:   room.ID,
			TaskType: req.TaskType,
			Status:   model.StatusPending,
			Priority: model.Score(model.ScoreInput{
				TaskType:   req.TaskType,
				HasArrival: arrivals[room.ID],
				IsVIP:      room.IsVIP,
			}),
			EstimatedMinutes: model.EstimateMinutes(req.TaskType, room.CleaningMinutes),
			Notes:            req.Notes,
			RoomNumber:       room.Number,
			RoomFloor:        room.Floor,
			RoomIsVIP:        room.IsVIP,
			Metadata:         gModel.NewMetadata(now, actor),
		}

		if req.AssignedTo != constant.Empty {
			task.Status = model.StatusAssigned
			task.AssignedTo = &req.AssignedTo
		}

		if err = s.repo.InsertTx(ctx, tx, task); err != nil {
			log.Error().Err(err).Str("room_id", room.ID).Msg("failed to create housekeeping task")

			return fmt.Errorf("failed to create housekeeping task: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	log.Info().Str("hotel_id", hotelID).Str("task_id", task.ID).Str("task_type", string(task.TaskType)).Int("priority", task.Priority).Msg("housekeeping task created")

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) lockTx(ctx context.Context, tx *sqlx.Tx, hotelID, id string) (model.Task, error) {
	task, err := s.repo.GetForUpdateTx(ctx, tx, byHotelAndID(hotelID, id))
	if failure.IsRetryable(err) {
		return task, err
	}

	if err != nil {
		log.Error().Err(err).Str("task_id", id).Msg("failed to lock housekeeping task")

		return task, fmt.Errorf("failed to lock housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return task, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return task, nil
}

func (s *serviceImpl) StartTask(ctx context.Context, hotelID, id, actor string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.StartTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	var task model.Task

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) (txErr error) {
		task, txErr = s.lockTx(ctx, tx, hotelID, id)
		if txErr != nil {
			return txErr
		}

		if task.Status != model.StatusPending && task.Status != model.StatusAssigned {
			return failure.Rejected(model.ReasonInvalidTaskTransition, fmt.Sprintf("Cannot start a %s task", task.Status)) //nolint:wrapcheck
		}

		now := timezone.Now()
		fields := map[string]any{
			model.FieldStatus:    model.StatusInProgress,
			model.FieldStartedAt: now,
		}

		if txErr = s.repo.UpdateTx(ctx, tx, shared.Touch(fields, actor), byHotelAndID(hotelID, id)); txErr != nil {
			log.Error().Err(txErr).Str("task_id", id).Msg("failed to start housekeeping task")

			return fmt.Errorf("failed to start housekeeping task: %w", txErr)
		}

		task.Status = model.StatusInProgress
		task.StartedAt = &now

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(task)

	return res, nil
}

// CompleteTask closes the task and hands a dirty room back to sale. Both happen or neither does.
func (s *serviceImpl) CompleteTask(ctx context.Context, hotelID, id, actor string, req dto.CompleteTaskRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.CompleteTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	var (
		task          model.Task
		notifications []notificationModel.Notification
	)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		task, err = s.lockTx(ctx, tx, hotelID, id)
		if err != nil {
			return err
		}

		if task.Status != model.StatusInProgress {
			return failure.Rejected(model.ReasonInvalidTaskTransition, fmt.Sprintf("Cannot complete a %s task", task.Status)) //nolint:wrapcheck
		}

		now := timezone.Now()
		fields := map[string]any{
			model.FieldStatus:      model.StatusCompleted,
			model.FieldCompletedAt: now,
		}

		if req.Notes != constant.Empty {
			fields[model.FieldNotes] = req.Notes
			task.Notes = req.Notes
		}

		if err = s.repo.UpdateTx(ctx, tx, shared.Touch(fields, actor), byHotelAndID(hotelID, id)); err != nil {
			log.Error().Err(err).Str("task_id", id).Msg("failed to complete housekeeping task")

			return fmt.Errorf("failed to complete housekeeping task: %w", err)
		}

		task.Status = model.StatusCompleted
		task.CompletedAt = &now

		room, err := s.room.LockTx(ctx, tx, hotelID, task.RoomID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !releasesRoom(task, room.Status) {
			return nil
		}

		notifications, err = s.room.ChangeStatusTx(ctx, tx, hotelID, task.RoomID, actor, roomDto.ChangeStatusRequest{
			Status: roomModel.StatusVacant,
			Reason: "Housekeeping completed: " + string(task.TaskType),
		})

		return err //nolint:wrapcheck
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.notifier.Dispatch(ctx, notifications)

	if len(notifications) > 0 {
		s.room.InvalidateCaches(ctx, hotelID)
	}

	log.Info().Str("hotel_id", hotelID).Str("task_id", id).Str("actor", actor).Msg("housekeeping task completed")

	res.FromModel(task)

	return res, nil
}

// releasesRoom reports whether finishing the task makes the room sellable again.
func releasesRoom(task model.Task, status roomModel.Status) bool {
	switch status {
	case roomModel.StatusDirty:
		return true
	case roomModel.StatusMaintenance:
		return task.TaskType == model.TaskTypeMaintenance
	default:
		return false
	}
}

// AutoAssign hands pending tasks, highest score first, to the least loaded active staff member.
func (s *serviceImpl) AutoAssign(ctx context.Context, hotelID, actor string) (res dto.AutoAssignResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.AutoAssign")
	defer scope.End()
	defer scope.TraceIfError(err)

	today, err := s.businessDate.Today(ctx, hotelID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.Assignments = []dto.Assignment{}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		tasks, err := s.repo.GetAllTx(ctx, tx, gDto.QueryParams{}, shared.FilterByHotel(hotelID, model.TableName,
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusPending, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		))
		if err != nil {
			log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get pending tasks")

			return fmt.Errorf("failed to get pending tasks: %w", err)
		}

		if len(tasks) == 0 {
			return nil
		}

		loads, err := s.staffRepo.WorkloadTx(ctx, tx, hotelID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if len(loads) == 0 {
			return failure.Rejected(model.ReasonStaffUnavailable, "No active housekeeping staff to assign") //nolint:wrapcheck
		}

		arrivals, err := s.arrivalsTx(ctx, tx, hotelID, today, roomsOf(tasks))
		if err != nil {
			return err
		}

		for _, ranked := range rank(tasks, arrivals, timezone.Now()) {
			staff := leastLoaded(loads)

			fields := shared.Touch(map[string]any{
				model.FieldStatus:     model.StatusAssigned,
				model.FieldAssignedTo: staff.ID,
				model.FieldPriority:   ranked.score,
			}, actor)

			if err = s.repo.UpdateTx(ctx, tx, fields, byHotelAndID(hotelID, ranked.task.ID)); err != nil {
				log.Error().Err(err).Str("task_id", ranked.task.ID).Msg("failed to assign housekeeping task")

				return fmt.Errorf("failed to assign housekeeping task: %w", err)
			}

			staff.Tasks++

			res.Assignments = append(res.Assignments, dto.Assignment{
				TaskID:     ranked.task.ID,
				RoomNumber: ranked.task.RoomNumber,
				StaffID:    staff.ID,
				StaffName:  staff.Name,
				Score:      ranked.score,
			})
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	log.Info().Str("hotel_id", hotelID).Int("assigned", len(res.Assignments)).Msg("housekeeping tasks auto-assigned")

	return res, nil
}

// leastLoaded picks the staff member with the fewest open tasks. Ties go to the first listed.
func leastLoaded(loads []model.StaffLoad) *model.StaffLoad {
	best := &loads[0]

	for i := range loads {
		if loads[i].Tasks < best.Tasks {
			best = &loads[i]
		}
	}

	return best
}

// GetQueue lists the open tasks ranked by their score right now.
func (s *serviceImpl) GetQueue(ctx context.Context, hotelID string, req dto.GetQueueRequest) (res dto.QueueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.GetQueue")
	defer scope.End()
	defer scope.TraceIfError(err)

	today, err := s.businessDate.Today(ctx, hotelID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	statuses := model.OpenStatuses
	if req.Status != constant.Empty {
		statuses = []model.Status{req.Status}
	}

	filters := []any{
		gDto.Filter{Field: model.FieldStatus, Value: statuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
	}

	if req.AssignedTo != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldAssignedTo, Value: req.AssignedTo, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	tasks, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByHotel(hotelID, model.TableName, filters...))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get housekeeping queue")

		return res, fmt.Errorf("failed to get housekeeping queue: %w", err)
	}

	arrivals, err := s.arrivals(ctx, hotelID, today, roomsOf(tasks))
	if err != nil {
		return res, err
	}

	now := timezone.Now()

	res.Tasks = []dto.QueueItem{}
	for _, ranked := range rank(tasks, arrivals, now) {
		item := dto.QueueItem{
			Score:          ranked.score,
			HasArrival:     arrivals[ranked.task.RoomID],
			IsVIP:          ranked.task.RoomIsVIP,
			WaitingMinutes: int(now.Sub(ranked.task.CreatedAt).Minutes()),
		}
		item.FromModel(ranked.task)
		item.PriorityLabel = model.Label(ranked.score)

		res.Tasks = append(res.Tasks, item)
	}

	return res, nil
}
