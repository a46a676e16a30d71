package booking

import (
	"context"
	"hotelops/infras/otel"
	"hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/booking/model/dto"
	"hotelops/internal/domains/booking/service"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/validator"
	"hotelops/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamGuest = "guest"
	queryParamFrom  = "from"
	queryParamTo    = "to"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/assign-room", handler.AssignRoom)
		routerGroup.Post("/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
		routerGroup.Post("/{id}/cancel", handler.Cancel)
		routerGroup.Post("/{id}/no-show", handler.MarkNoShow)
		routerGroup.Post("/{id}/payments", handler.RecordPayment)
		routerGroup.Post("/{id}/refunds", handler.Refund)
	})
}

// CreateBooking handles the creation of a reservation.
// @Summary Create a booking
// @Description Reserve a room, or a room type when the room is assigned later. Arrival dates before the business date are rejected.
// @Tags Booking
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	actor := shared.ActorFromContext(ctx)

	booking, err := handler.service.Create(ctx, chi.URLParam(r, constant.RequestParamHotelID), actor, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + booking.Reference + " created by user " + actor)

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings retrieves bookings based on query parameters.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param room_id query string false "Filter by room"
// @Param guest query string false "Filter by guest name"
// @Param reference query string false "Filter by reference"
// @Param from query string false "Stays departing on or after (YYYY-MM-DD)"
// @Param to query string false "Stays arriving on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	req := dto.GetBookingsRequest{
		Status:    model.Status(query.Get(model.FieldStatus)),
		RoomID:    query.Get(model.FieldRoomID),
		Guest:     query.Get(queryParamGuest),
		Reference: query.Get(model.FieldReference),
		From:      query.Get(queryParamFrom),
		To:        query.Get(queryParamTo),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, chi.URLParam(r, constant.RequestParamHotelID), queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking with its folio.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingDetailResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// AssignRoom pins a room to a reservation made against a room type.
// @Summary Assign a room
// @Tags Booking
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Param request body dto.AssignRoomRequest true "Room"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/assign-room [post]
// @Security BearerAuth
func (handler *Handler) AssignRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignRoom")
	defer scope.End()

	var req dto.AssignRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.AssignRoom(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), shared.ActorFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CheckIn seats the guest in the booked room.
// @Summary Check in a booking
// @Description The room must be vacant and inspected. The arrival date must equal the business date.
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Checked-in booking"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CheckIn", handler.service.CheckIn)
}

// CheckOut releases the room once the folio is settled.
// @Summary Check out a booking
// @Description Rejected while the booking carries an outstanding balance. The room turns dirty and a cleaning task is queued.
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Checked-out booking"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CheckOut", handler.service.CheckOut)
}

// MarkNoShow closes a reservation whose guest never arrived.
// @Summary Mark a booking as no-show
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "No-show booking"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/no-show [post]
// @Security BearerAuth
func (handler *Handler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "MarkNoShow", handler.service.MarkNoShow)
}

func (handler *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	apply func(ctx context.Context, hotelID, id, actor string) (dto.BookingResponse, error),
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	actor := shared.ActorFromContext(ctx)

	booking, err := apply(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), actor)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("action", name).Msg("failed to transition booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + booking.Reference + " is now " + string(booking.Status) + " by user " + actor)

	response.WithJSON(w, http.StatusOK, booking)
}

// Cancel cancels a reservation and applies the cancellation policy.
// @Summary Cancel a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Param request body dto.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} response.Data[dto.BookingResponse] "Cancelled booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	var req dto.CancelBookingRequest
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request")

			response.WithError(w, err)

			return
		}
	}

	booking, err := handler.service.Cancel(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), shared.ActorFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// RecordPayment takes a payment against the booking's folio.
// @Summary Record a payment
// @Tags Booking
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Param request body dto.PaymentRequest true "Payment"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 423 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/payments [post]
// @Security BearerAuth
func (handler *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	var req dto.PaymentRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.RecordPayment(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), shared.ActorFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment of " + req.Amount.StringFixed(2) + " recorded for booking " + booking.Reference)

	response.WithJSON(w, http.StatusOK, booking)
}

// Refund returns money to the guest.
// @Summary Refund a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Param request body dto.RefundRequest true "Refund"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/refunds [post]
// @Security BearerAuth
func (handler *Handler) Refund(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Refund")
	defer scope.End()

	var req dto.RefundRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Refund(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), shared.ActorFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refund booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}
