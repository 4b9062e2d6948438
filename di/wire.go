//go:build wireinject
// +build wireinject

package di

import (
	"stayops/config"
	"stayops/infras/kafka"
	"stayops/infras/otel"
	"stayops/infras/postgres"
	"stayops/infras/redis"
	"stayops/internal/events"
	"stayops/shared/cache"
	"stayops/transport/http"
	"stayops/transport/http/middleware"
	"stayops/transport/http/router"

	availabilityService "stayops/internal/domains/availability/service"
	bookingRepository "stayops/internal/domains/booking/repository"
	bookingService "stayops/internal/domains/booking/service"
	guestRepository "stayops/internal/domains/guest/repository"
	guestService "stayops/internal/domains/guest/service"
	maintenanceRepository "stayops/internal/domains/maintenance/repository"
	maintenanceService "stayops/internal/domains/maintenance/service"
	propertyRepository "stayops/internal/domains/property/repository"
	propertyService "stayops/internal/domains/property/service"

	availabilityHandler "stayops/internal/handlers/availability"
	bookingHandler "stayops/internal/handlers/booking"
	guestHandler "stayops/internal/handlers/guest"
	maintenanceHandler "stayops/internal/handlers/maintenance"
	propertyHandler "stayops/internal/handlers/property"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
	wire.Bind(new(availabilityService.PropertyCatalog), new(propertyRepository.Property)),
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	wire.Bind(new(availabilityService.BookingStore), new(bookingRepository.Booking)),
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var maintenanceDomain = wire.NewSet(
	maintenanceRepository.New,
	maintenanceService.New,
)

var domains = wire.NewSet(
	propertyDomain,
	guestDomain,
	bookingDomain,
	availabilityDomain,
	maintenanceDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	propertyHandler.New,
	availabilityHandler.New,
	guestHandler.New,
	bookingHandler.New,
	maintenanceHandler.New,
	router.New,
)

var workers = wire.NewSet(
	wire.Bind(new(events.TurnoverScheduler), new(maintenanceService.Maintenance)),
	events.NewConsumer,
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

func InitializeWorker() *events.Consumer {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		propertyDomain,
		maintenanceDomain,
		workers,
	)

	return &events.Consumer{}
}
