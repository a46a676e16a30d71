package nightaudit

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/nightaudit/model/dto"
	"hotelops/internal/domains/nightaudit/service"
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
	service service.NightAudit
	otel    otel.Otel
}

func New(service service.NightAudit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/night-audit", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Run)
		routerGroup.Get("/logs", handler.GetLogs)
		routerGroup.Get("/logs/{id}", handler.GetLog)
	})
}

// Run closes the current business date.
// @Summary Run the night audit
// @Description Posts one night of room revenue per in-house booking and advances the business date.
// @Tags NightAudit
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.RunAuditRequest false "Date to close, defaults to the current business date"
// @Success 200 {object} response.Data[dto.AuditLogResponse] "Audit result"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/night-audit [post]
// @Security BearerAuth
func (handler *Handler) Run(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunNightAudit")
	defer scope.End()

	var req dto.RunAuditRequest
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request")

			response.WithError(w, err)

			return
		}
	}

	actor := shared.ActorFromContext(ctx)

	result, err := handler.service.Run(ctx, chi.URLParam(r, constant.RequestParamHotelID), actor, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run night audit")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Night audit for " + result.AuditDate + " finished as " + string(result.Status) + " by user " + actor)

	response.WithJSON(w, http.StatusOK, result)
}

// GetLogs lists past audit runs, newest first.
// @Summary Get night audit logs
// @Tags NightAudit
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetLogsResponse] "Audit logs"
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/night-audit/logs [get]
// @Security BearerAuth
func (handler *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNightAuditLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	logs, err := handler.service.GetLogs(ctx, chi.URLParam(r, constant.RequestParamHotelID), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get night audit logs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, logs)
}

// GetLog returns one audit run with its summary.
// @Summary Get a night audit log
// @Tags NightAudit
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Audit log ID"
// @Success 200 {object} response.Data[dto.AuditLogResponse] "Audit log"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/night-audit/logs/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetLog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNightAuditLog")
	defer scope.End()

	auditLog, err := handler.service.GetLog(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get night audit log")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, auditLog)
}
