package ledger

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/ledger/model/dto"
	"hotelops/internal/domains/ledger/service"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"
	"hotelops/shared/validator"
	"hotelops/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamFrom      = "from"
	queryParamTo        = "to"
	queryParamReference = "reference"
	queryParamSource    = "source"
)

type Handler struct {
	service service.Ledger
	otel    otel.Otel
}

func New(service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/ledger", func(routerGroup chi.Router) {
		routerGroup.Get("/entries", handler.GetEntries)
		routerGroup.Get("/trial-balance", handler.TrialBalance)
	})
}

// GetEntries lists journal entries with their lines.
// @Summary Get journal entries
// @Tags Ledger
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param from query string false "Business date from (YYYY-MM-DD)"
// @Param to query string false "Business date to (YYYY-MM-DD)"
// @Param reference query string false "Filter by reference"
// @Param source query string false "Filter by source"
// @Success 200 {object} response.Data[dto.GetEntriesResponse] "Journal entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/ledger/entries [get]
// @Security BearerAuth
func (handler *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	req := dto.GetEntriesRequest{
		From:      query.Get(queryParamFrom),
		To:        query.Get(queryParamTo),
		Reference: query.Get(queryParamReference),
		Source:    query.Get(queryParamSource),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	entries, err := handler.service.GetEntries(ctx, chi.URLParam(r, constant.RequestParamHotelID), queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get journal entries")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, entries)
}

// TrialBalance sums every account over a business date range.
// @Summary Get the trial balance
// @Description Defaults to the current month up to today.
// @Tags Ledger
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param from query string false "Business date from (YYYY-MM-DD)"
// @Param to query string false "Business date to (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.TrialBalanceResponse] "Trial balance"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/ledger/trial-balance [get]
// @Security BearerAuth
func (handler *Handler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TrialBalance")
	defer scope.End()

	from, err := parseOptionalDate(r.URL.Query().Get(queryParamFrom))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	to, err := parseOptionalDate(r.URL.Query().Get(queryParamTo))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	balance, err := handler.service.TrialBalance(ctx, chi.URLParam(r, constant.RequestParamHotelID), from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trial balance")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, balance)
}

func parseOptionalDate(value string) (time.Time, error) {
	if value == constant.Empty {
		return time.Time{}, nil
	}

	date, err := timezone.ParseDate(value)
	if err != nil {
		return date, failure.BadRequest(err) //nolint:wrapcheck
	}

	return date, nil
}
