//go:build wireinject
// +build wireinject

package di

import (
	"staytrack/config"
	"staytrack/infras/api"
	"staytrack/infras/credential"
	"staytrack/infras/otel"
	"staytrack/infras/redis"
	"staytrack/shared/cache"
	"staytrack/transport/http"
	"staytrack/transport/http/middleware"
	"staytrack/transport/http/router"

	"github.com/google/wire"

	authRepository "staytrack/internal/domains/auth/repository"
	authService "staytrack/internal/domains/auth/service"
	bookingRepository "staytrack/internal/domains/booking/repository"
	bookingService "staytrack/internal/domains/booking/service"
	dashboardRepository "staytrack/internal/domains/dashboard/repository"
	dashboardService "staytrack/internal/domains/dashboard/service"
	guestRepository "staytrack/internal/domains/guest/repository"
	guestService "staytrack/internal/domains/guest/service"
	roomRepository "staytrack/internal/domains/room/repository"
	roomService "staytrack/internal/domains/room/service"

	authHandler "staytrack/internal/handlers/auth"
	bookingHandler "staytrack/internal/handlers/booking"
	dashboardHandler "staytrack/internal/handlers/dashboard"
	guestHandler "staytrack/internal/handlers/guest"
	roomHandler "staytrack/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	credential.New,
	api.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
	wire.Bind(new(authService.Sessions), new(Sessions)),
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	dashboardDomain,
	guestDomain,
	roomDomain,
	bookingDomain,
	NewSessions,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	dashboardHandler.New,
	guestHandler.New,
	roomHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeConsole() *Console {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(Console), "*"),
	)

	return &Console{}
}
