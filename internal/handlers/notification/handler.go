package notification

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/notification/model"
	"hotelops/internal/domains/notification/model/dto"
	"hotelops/internal/domains/notification/service"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	"hotelops/shared/validator"
	"hotelops/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamUnread = "unread"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetNotifications)
		routerGroup.Get("/stream", handler.Stream)
		routerGroup.Post("/{id}/read", handler.MarkRead)
	})
}

// GetNotifications lists staff notifications.
// @Summary Get notifications
// @Tags Notification
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param department query string false "Filter by department"
// @Param unread query boolean false "Only unread notifications"
// @Success 200 {object} response.Data[dto.GetNotificationsResponse] "Notifications"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	req := dto.GetNotificationsRequest{
		Department: model.Department(query.Get(model.FieldDepartment)),
		Unread:     shared.ConvertStringToBool(query.Get(queryParamUnread)),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	notifications, err := handler.service.GetAll(ctx, chi.URLParam(r, constant.RequestParamHotelID), queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, notifications)
}

// Stream upgrades the connection to a websocket carrying live notifications.
// @Summary Stream notifications
// @Tags Notification
// @Param hotelID path string true "Hotel ID"
// @Param department query string false "Only this department"
// @Success 101 "Switching protocols"
// @Failure 400 {object} response.Error
// @Router /v1/hotels/{hotelID}/notifications/stream [get]
// @Security BearerAuth
func (handler *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	department := model.Department(r.URL.Query().Get(model.FieldDepartment))

	if err := handler.service.Stream(w, r, chi.URLParam(r, constant.RequestParamHotelID), department); err != nil {
		log.Error().Err(err).Msg("failed to stream notifications")

		// a failed handshake has already been answered by the upgrader
		if failure.IsFailure(err) {
			response.WithError(w, err)
		}
	}
}

// MarkRead acknowledges a notification.
// @Summary Mark a notification as read
// @Tags Notification
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message "Notification marked as read"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/notifications/{id}/read [post]
// @Security BearerAuth
func (handler *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRead")
	defer scope.End()

	err := handler.service.MarkRead(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), shared.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notification as read")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Notification marked as read")
}
