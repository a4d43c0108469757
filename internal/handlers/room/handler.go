package room

import (
	"staytrack/infras/otel"
	"staytrack/internal/domains/room/model"
	"staytrack/internal/domains/room/model/dto"
	"staytrack/internal/domains/room/service"
	"staytrack/internal/handlers/console"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	console.Handler[model.Room, dto.Draft]
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		Handler: console.New[model.Room, dto.Draft](model.ResourceName, service, otel),
	}
}

func (handler *Handler) Router(router chi.Router) {
	handler.Routes(router)
}
