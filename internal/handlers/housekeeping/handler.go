package housekeeping

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/housekeeping/model"
	"hotelops/internal/domains/housekeeping/model/dto"
	"hotelops/internal/domains/housekeeping/service"
	"hotelops/shared"
	"hotelops/shared/constant"
	"hotelops/shared/validator"
	"hotelops/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Housekeeping
	otel    otel.Otel
}

func New(service service.Housekeeping, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/housekeeping", func(routerGroup chi.Router) {
		routerGroup.Post("/staff", handler.CreateStaff)
		routerGroup.Get("/staff", handler.GetStaff)
		routerGroup.Post("/tasks", handler.CreateTask)
		routerGroup.Get("/tasks", handler.GetQueue)
		routerGroup.Post("/tasks/auto-assign", handler.AutoAssign)
		routerGroup.Post("/tasks/{id}/start", handler.StartTask)
		routerGroup.Post("/tasks/{id}/complete", handler.CompleteTask)
	})
}

// CreateStaff registers a housekeeper.
// @Summary Create a housekeeper
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.CreateStaffRequest true "Staff"
// @Success 201 {object} response.Data[dto.StaffResponse] "Staff created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/housekeeping/staff [post]
// @Security BearerAuth
func (handler *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaff")
	defer scope.End()

	var req dto.CreateStaffRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	staff, err := handler.service.CreateStaff(ctx, chi.URLParam(r, constant.RequestParamHotelID), shared.ActorFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create housekeeper")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, staff)
}

// GetStaff lists the active housekeepers.
// @Summary Get housekeepers
// @Tags Housekeeping
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Success 200 {object} response.Data[[]dto.StaffResponse] "Housekeepers"
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/housekeeping/staff [get]
// @Security BearerAuth
func (handler *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	staff, err := handler.service.GetStaff(ctx, chi.URLParam(r, constant.RequestParamHotelID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get housekeepers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, staff)
}

// CreateTask queues a housekeeping task for a room.
// @Summary Create a housekeeping task
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.CreateTaskRequest true "Task"
// @Success 201 {object} response.Data[dto.TaskResponse] "Task created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/housekeeping/tasks [post]
// @Security BearerAuth
func (handler *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	var req dto.CreateTaskRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	task, err := handler.service.CreateTask(ctx, chi.URLParam(r, constant.RequestParamHotelID), shared.ActorFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create housekeeping task")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, task)
}

// GetQueue returns the open tasks in working order.
// @Summary Get the housekeeping queue
// @Description Open tasks ordered by priority, then age.
// @Tags Housekeeping
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param status query string false "Filter by status"
// @Param assigned_to query string false "Filter by housekeeper"
// @Success 200 {object} response.Data[dto.QueueResponse] "Queue"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/housekeeping/tasks [get]
// @Security BearerAuth
func (handler *Handler) GetQueue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQueue")
	defer scope.End()

	query := r.URL.Query()
	req := dto.GetQueueRequest{
		Status:     model.Status(query.Get(model.FieldStatus)),
		AssignedTo: query.Get(model.FieldAssignedTo),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	queue, err := handler.service.GetQueue(ctx, chi.URLParam(r, constant.RequestParamHotelID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get housekeeping queue")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, queue)
}

// AutoAssign hands unassigned tasks to the least busy housekeepers.
// @Summary Auto-assign housekeeping tasks
// @Tags Housekeeping
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.AutoAssignResponse] "Assignments made"
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/housekeeping/tasks/auto-assign [post]
// @Security BearerAuth
func (handler *Handler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AutoAssign")
	defer scope.End()

	result, err := handler.service.AutoAssign(ctx, chi.URLParam(r, constant.RequestParamHotelID), shared.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to auto-assign housekeeping tasks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// StartTask marks a task as being worked on.
// @Summary Start a housekeeping task
// @Tags Housekeeping
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Task ID"
// @Success 200 {object} response.Data[dto.TaskResponse] "Started task"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/housekeeping/tasks/{id}/start [post]
// @Security BearerAuth
func (handler *Handler) StartTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartTask")
	defer scope.End()

	task, err := handler.service.StartTask(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), shared.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start housekeeping task")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, task)
}

// CompleteTask finishes a task and releases the room when it was waiting on it.
// @Summary Complete a housekeeping task
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Task ID"
// @Param request body dto.CompleteTaskRequest false "Notes"
// @Success 200 {object} response.Data[dto.TaskResponse] "Completed task"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/housekeeping/tasks/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteTask")
	defer scope.End()

	var req dto.CompleteTaskRequest
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request")

			response.WithError(w, err)

			return
		}
	}

	actor := shared.ActorFromContext(ctx)

	task, err := handler.service.CompleteTask(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), actor, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete housekeeping task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping task completed by user " + actor)

	response.WithJSON(w, http.StatusOK, task)
}
