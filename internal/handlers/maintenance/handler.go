package maintenance

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/maintenance/model"
	"hotelops/internal/domains/maintenance/model/dto"
	"hotelops/internal/domains/maintenance/service"
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
	service service.Maintenance
	otel    otel.Otel
}

func New(service service.Maintenance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenance/issues", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.ReportIssue)
		routerGroup.Get("/", handler.GetIssues)
		routerGroup.Post("/{id}/start", handler.StartIssue)
		routerGroup.Post("/{id}/resolve", handler.ResolveIssue)
	})
}

// ReportIssue logs a maintenance problem and optionally takes the room out of order.
// @Summary Report a maintenance issue
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.ReportIssueRequest true "Issue"
// @Success 201 {object} response.Data[dto.IssueResponse] "Issue reported"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/maintenance/issues [post]
// @Security BearerAuth
func (handler *Handler) ReportIssue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReportIssue")
	defer scope.End()

	var req dto.ReportIssueRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	issue, err := handler.service.Report(ctx, chi.URLParam(r, constant.RequestParamHotelID), shared.ActorFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to report maintenance issue")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, issue)
}

// GetIssues lists maintenance issues.
// @Summary Get maintenance issues
// @Tags Maintenance
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetIssuesResponse] "Issues"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/maintenance/issues [get]
// @Security BearerAuth
func (handler *Handler) GetIssues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetIssues")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	req := dto.GetIssuesRequest{
		Status:   model.Status(query.Get(model.FieldStatus)),
		Priority: model.Priority(query.Get(model.FieldPriority)),
		RoomID:   query.Get(model.FieldRoomID),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	issues, err := handler.service.GetAll(ctx, chi.URLParam(r, constant.RequestParamHotelID), queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance issues")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, issues)
}

// StartIssue marks an issue as being worked on.
// @Summary Start a maintenance issue
// @Tags Maintenance
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Issue ID"
// @Success 200 {object} response.Data[dto.IssueResponse] "Started issue"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/maintenance/issues/{id}/start [post]
// @Security BearerAuth
func (handler *Handler) StartIssue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartIssue")
	defer scope.End()

	issue, err := handler.service.Start(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), shared.ActorFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start maintenance issue")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, issue)
}

// ResolveIssue closes an issue and optionally returns the room to service.
// @Summary Resolve a maintenance issue
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Issue ID"
// @Param request body dto.ResolveIssueRequest true "Resolution"
// @Success 200 {object} response.Data[dto.IssueResponse] "Resolved issue"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/maintenance/issues/{id}/resolve [post]
// @Security BearerAuth
func (handler *Handler) ResolveIssue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResolveIssue")
	defer scope.End()

	var req dto.ResolveIssueRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	issue, err := handler.service.Resolve(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), shared.ActorFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve maintenance issue")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, issue)
}
