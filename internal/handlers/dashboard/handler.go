package dashboard

import (
	"net/http"
	"staytrack/infras/otel"
	"staytrack/internal/domains/dashboard/model/dto"
	"staytrack/internal/domains/dashboard/service"
	"staytrack/shared/constant"
	"staytrack/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard/stats", handler.GetStats)
}

// GetStats relays the dashboard statistics computed by the hotel API.
// @Summary Dashboard statistics
// @Tags Dashboard
// @Produce json
// @Param range query string false "week, month or year" default(week)
// @Success 200 {object} response.Data[dto.StatsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/dashboard/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	req := dto.StatsRequest{
		Range: request.URL.Query().Get(constant.RequestParamRange),
	}

	res, err := handler.service.Stats(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str(constant.RequestParamRange, req.Range).Msg("failed to fetch dashboard stats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
