package businessdate

import (
	"hotelops/infras/otel"
	"hotelops/internal/domains/businessdate/service"
	"hotelops/shared/constant"
	"hotelops/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.BusinessDate
	otel    otel.Otel
}

func New(service service.BusinessDate, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/business-date", handler.GetBusinessDate)
}

// GetBusinessDate returns the hotel's operational date and the last date closed by night audit.
// @Summary Get the business date
// @Tags BusinessDate
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.BusinessDateResponse] "Business date"
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/business-date [get]
// @Security BearerAuth
func (handler *Handler) GetBusinessDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusinessDate")
	defer scope.End()

	businessDate, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamHotelID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get business date")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, businessDate)
}
