//go:build wireinject
// +build wireinject

package di

import (
	"arena/config"
	"arena/infras/jwt"
	"arena/infras/kafka"
	"arena/infras/otel"
	"arena/infras/postgres"
	"arena/infras/redis"
	"arena/infras/s3"
	"arena/permissions"
	"arena/shared/cache"
	"arena/transport/http"
	"arena/transport/http/middleware"
	"arena/transport/http/router"

	"github.com/google/wire"

	authService "arena/internal/domains/auth/service"
	bookingRepository "arena/internal/domains/booking/repository"
	bookingService "arena/internal/domains/booking/service"
	campoRepository "arena/internal/domains/campo/repository"
	campoService "arena/internal/domains/campo/service"
	statsEvents "arena/internal/domains/stats/events"
	statsService "arena/internal/domains/stats/service"
	strutturaRepository "arena/internal/domains/struttura/repository"
	strutturaService "arena/internal/domains/struttura/service"
	userRepository "arena/internal/domains/user/repository"
	userService "arena/internal/domains/user/service"

	authHandler "arena/internal/handlers/auth"
	bookingHandler "arena/internal/handlers/booking"
	campoHandler "arena/internal/handlers/campo"
	statsHandler "arena/internal/handlers/stats"
	strutturaHandler "arena/internal/handlers/struttura"
	testHandler "arena/internal/handlers/test"
	userHandler "arena/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var strutturaDomain = wire.NewSet(
	strutturaRepository.New,
	strutturaService.New,
)

var campoDomain = wire.NewSet(
	campoRepository.New,
	campoService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var statsDomain = wire.NewSet(
	statsService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	strutturaDomain,
	campoDomain,
	bookingDomain,
	statsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	strutturaHandler.New,
	campoHandler.New,
	bookingHandler.New,
	statsHandler.New,
	testHandler.New,
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

func InitializeConsumer() *statsEvents.Consumer {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		kafka.New,
		s3.New,
		cache.NewRedisCache,
		strutturaRepository.New,
		campoRepository.New,
		bookingRepository.New,
		statsService.New,
		statsEvents.NewConsumer,
	)

	return &statsEvents.Consumer{}
}
