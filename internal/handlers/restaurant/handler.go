package restaurant

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/restaurant/model/dto"
	"hotelops/internal/domains/restaurant/service"
	"hotelops/shared"
	"hotelops/shared/constant"
	"hotelops/shared/validator"
	"hotelops/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Restaurant
	otel    otel.Otel
}

func New(service service.Restaurant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/restaurant/orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOrder)
		routerGroup.Get("/{id}", handler.GetOrder)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
		routerGroup.Post("/{id}/settle", handler.SettleOrder)
	})
}

// CreateOrder opens a restaurant order.
// @Summary Create a restaurant order
// @Description Dine-in, takeaway or room service. Room service orders must name the room.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.CreateOrderRequest true "Order"
// @Success 201 {object} response.Data[dto.OrderResponse] "Order created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/restaurant/orders [post]
// @Security BearerAuth
func (handler *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	var req dto.CreateOrderRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	order, err := handler.service.Create(ctx, chi.URLParam(r, constant.RequestParamHotelID), shared.ActorFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create restaurant order")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, order)
}

// GetOrder returns an order with its items.
// @Summary Get a restaurant order
// @Tags Restaurant
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Order ID"
// @Success 200 {object} response.Data[dto.OrderResponse] "Order"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/restaurant/orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrder")
	defer scope.End()

	order, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurant order")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, order)
}

// UpdateStatus moves an order through the kitchen.
// @Summary Update a restaurant order's status
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Order ID"
// @Param request body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} response.Data[dto.OrderResponse] "Updated order"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/restaurant/orders/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrderStatus")
	defer scope.End()

	var req dto.UpdateStatusRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	order, err := handler.service.UpdateStatus(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), shared.ActorFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update restaurant order status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, order)
}

// SettleOrder takes payment for a delivered order, either directly or on the guest's folio.
// @Summary Settle a restaurant order
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Order ID"
// @Param request body dto.SettleOrderRequest true "Payment method"
// @Success 200 {object} response.Data[dto.OrderResponse] "Settled order"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 423 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/restaurant/orders/{id}/settle [post]
// @Security BearerAuth
func (handler *Handler) SettleOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SettleOrder")
	defer scope.End()

	var req dto.SettleOrderRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	actor := shared.ActorFromContext(ctx)

	order, err := handler.service.Settle(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), actor, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to settle restaurant order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant order settled by user " + actor)

	response.WithJSON(w, http.StatusOK, order)
}
