package guest

import (
	"staytrack/infras/otel"
	"staytrack/internal/domains/guest/model"
	"staytrack/internal/domains/guest/model/dto"
	"staytrack/internal/domains/guest/service"
	"staytrack/internal/handlers/console"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	console.Handler[model.Guest, dto.Draft]
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		Handler: console.New[model.Guest, dto.Draft](model.ResourceName, service, otel),
	}
}

func (handler *Handler) Router(router chi.Router) {
	handler.Routes(router)
}
