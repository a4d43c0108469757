package booking

import (
	"staytrack/infras/otel"
	"staytrack/internal/domains/booking/model"
	"staytrack/internal/domains/booking/model/dto"
	"staytrack/internal/domains/booking/service"
	"staytrack/internal/handlers/console"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	console.Handler[model.Booking, dto.Draft]
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		Handler: console.New[model.Booking, dto.Draft](model.ResourceName, service, otel),
	}
}

func (handler *Handler) Router(router chi.Router) {
	handler.Routes(router)
}
