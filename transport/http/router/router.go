package router

import (
	"net/http"
	"staytrack/internal/handlers/auth"
	"staytrack/internal/handlers/booking"
	"staytrack/internal/handlers/dashboard"
	"staytrack/internal/handlers/guest"
	"staytrack/internal/handlers/room"
	"staytrack/transport/http/middleware"
	"staytrack/transport/http/response"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Dashboard dashboard.Handler
	Guest     guest.Handler
	Room      room.Handler
	Booking   booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.App.CORS())
	router.Use(r.App.Tracing)

	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		response.WithMessage(writer, http.StatusNotFound, "Route not found")
	})

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.Auth.Auth)

			r.DomainHandlers.Auth.ProtectedRouter(protected)
			r.DomainHandlers.Dashboard.Router(protected)
			r.DomainHandlers.Guest.Router(protected)
			r.DomainHandlers.Room.Router(protected)
			r.DomainHandlers.Booking.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}
