//go:build wireinject
// +build wireinject

package di

import (
	"drivent/config"
	"drivent/infras/jwt"
	"drivent/infras/kafka"
	"drivent/infras/otel"
	"drivent/infras/postgres"
	"drivent/infras/redis"
	"drivent/permissions"
	"drivent/shared/cache"
	"drivent/transport/http"
	"drivent/transport/http/middleware"
	"drivent/transport/http/router"

	"github.com/google/wire"

	authService "drivent/internal/domains/auth/service"
	bookingRepository "drivent/internal/domains/booking/repository"
	bookingService "drivent/internal/domains/booking/service"
	enrollmentRepository "drivent/internal/domains/enrollment/repository"
	hotelRepository "drivent/internal/domains/hotel/repository"
	hotelService "drivent/internal/domains/hotel/service"
	roomRepository "drivent/internal/domains/room/repository"
	ticketRepository "drivent/internal/domains/ticket/repository"
	ticketService "drivent/internal/domains/ticket/service"
	userRepository "drivent/internal/domains/user/repository"
	userService "drivent/internal/domains/user/service"
	authHandler "drivent/internal/handlers/auth"
	bookingHandler "drivent/internal/handlers/booking"
	hotelHandler "drivent/internal/handlers/hotel"
	userHandler "drivent/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var ticketDomain = wire.NewSet(
	enrollmentRepository.New,
	ticketRepository.New,
	ticketService.New,
)

var hotelDomain = wire.NewSet(
	roomRepository.New,
	hotelRepository.New,
	hotelService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var domains = wire.NewSet(
	ticketDomain,
	hotelDomain,
	bookingDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	hotelHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
