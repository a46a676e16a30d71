package room

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/room/model"
	"hotelops/internal/domains/room/model/dto"
	"hotelops/internal/domains/room/service"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/validator"
	"hotelops/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomType)
		routerGroup.Get("/", handler.GetRoomTypes)
	})

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Delete("/{id}", handler.DeactivateRoom)
		routerGroup.Patch("/{id}/status", handler.ChangeStatus)
		routerGroup.Get("/{id}/history", handler.GetHistory)
		routerGroup.Get("/{id}/readiness", handler.CheckInReadiness)
	})
}

// CreateRoomType handles the creation of a room category.
// @Summary Create a room type
// @Description Create a room category with its nightly base price and cleaning time.
// @Tags Room
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} response.Data[dto.RoomTypeResponse] "Room type created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/room-types [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)

	var req dto.CreateRoomTypeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	roomType, err := handler.service.CreateType(ctx, hotelID, shared.ActorFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type created successfully")

	response.WithJSON(w, http.StatusCreated, roomType)
}

// GetRoomTypes lists the hotel's room categories.
// @Summary Get room types
// @Tags Room
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Success 200 {object} response.Data[[]dto.RoomTypeResponse] "Room types"
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/room-types [get]
// @Security BearerAuth
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	roomTypes, err := handler.service.GetTypes(ctx, chi.URLParam(r, constant.RequestParamHotelID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, roomTypes)
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a room. New rooms start vacant.
// @Tags Room
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.CreateRoomRequest true "Room"
// @Success 201 {object} response.Data[dto.RoomResponse] "Room created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)

	var req dto.CreateRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Create(ctx, hotelID, shared.ActorFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created successfully by user " + shared.ActorFromContext(ctx))

	response.WithJSON(w, http.StatusCreated, room)
}

// GetRooms retrieves the hotel's rooms.
// @Summary Get all rooms
// @Description Retrieve rooms with optional filtering and pagination.
// @Tags Room
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param floor query integer false "Filter by floor"
// @Param is_active query boolean false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	req := dto.GetRoomsRequest{
		Status:   model.Status(query.Get(model.FieldStatus)),
		Floor:    shared.ConvertStringToInt(query.Get(model.FieldFloor)),
		IsActive: shared.ConvertStringToBool(query.Get(model.FieldIsActive)),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.GetAll(ctx, chi.URLParam(r, constant.RequestParamHotelID), queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// DeactivateRoom takes a room out of the inventory.
// @Summary Deactivate a room
// @Description Deactivate a room. Rooms with an active booking cannot be deactivated.
// @Tags Room
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deactivated successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeactivateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateRoom")
	defer scope.End()

	actor := shared.ActorFromContext(ctx)

	err := handler.service.Deactivate(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), actor)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deactivated successfully by user " + actor)

	response.WithMessage(w, http.StatusOK, "Room deactivated successfully")
}

// ChangeStatus moves a room to a new housekeeping or occupancy status.
// @Summary Change a room's status
// @Description Apply a status transition. Illegal transitions are rejected with a reason code.
// @Tags Room
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Room ID"
// @Param request body dto.ChangeStatusRequest true "Target status"
// @Success 200 {object} response.Data[dto.RoomResponse] "Updated room"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeStatus")
	defer scope.End()

	var req dto.ChangeStatusRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	actor := shared.ActorFromContext(ctx)

	room, err := handler.service.ChangeStatus(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), actor, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change room status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room status changed to " + string(room.Status) + " by user " + actor)

	response.WithJSON(w, http.StatusOK, room)
}

// GetHistory lists a room's status changes, newest first.
// @Summary Get a room's status history
// @Tags Room
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Room ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetHistoryResponse] "Status history"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms/{id}/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	history, err := handler.service.GetHistory(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, history)
}

// CheckInReadiness reports whether a guest can be checked into the room right now.
// @Summary Check a room's check-in readiness
// @Tags Room
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.ReadinessResponse] "Readiness"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms/{id}/readiness [get]
// @Security BearerAuth
func (handler *Handler) CheckInReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckInReadiness")
	defer scope.End()

	readiness, err := handler.service.CheckInReadiness(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check room readiness")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, readiness)
}
