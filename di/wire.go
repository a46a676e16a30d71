//go:build wireinject
// +build wireinject

package di

import (
	"hotelops/config"
	"hotelops/infras/jwt"
	"hotelops/infras/kafka"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/infras/redis"
	"hotelops/infras/websocket"
	"hotelops/internal/scheduler"
	"hotelops/permissions"
	"hotelops/shared/cache"
	"hotelops/transport/http"
	"hotelops/transport/http/middleware"
	"hotelops/transport/http/router"

	bookingRepository "hotelops/internal/domains/booking/repository"
	bookingService "hotelops/internal/domains/booking/service"
	businessDateRepository "hotelops/internal/domains/businessdate/repository"
	businessDateService "hotelops/internal/domains/businessdate/service"
	housekeepingRepository "hotelops/internal/domains/housekeeping/repository"
	housekeepingService "hotelops/internal/domains/housekeeping/service"
	ledgerRepository "hotelops/internal/domains/ledger/repository"
	ledgerService "hotelops/internal/domains/ledger/service"
	maintenanceRepository "hotelops/internal/domains/maintenance/repository"
	maintenanceService "hotelops/internal/domains/maintenance/service"
	nightAuditRepository "hotelops/internal/domains/nightaudit/repository"
	nightAuditService "hotelops/internal/domains/nightaudit/service"
	notificationRepository "hotelops/internal/domains/notification/repository"
	notificationService "hotelops/internal/domains/notification/service"
	restaurantRepository "hotelops/internal/domains/restaurant/repository"
	restaurantService "hotelops/internal/domains/restaurant/service"
	roomRepository "hotelops/internal/domains/room/repository"
	roomService "hotelops/internal/domains/room/service"

	bookingHandler "hotelops/internal/handlers/booking"
	businessDateHandler "hotelops/internal/handlers/businessdate"
	housekeepingHandler "hotelops/internal/handlers/housekeeping"
	ledgerHandler "hotelops/internal/handlers/ledger"
	maintenanceHandler "hotelops/internal/handlers/maintenance"
	nightAuditHandler "hotelops/internal/handlers/nightaudit"
	notificationHandler "hotelops/internal/handlers/notification"
	restaurantHandler "hotelops/internal/handlers/restaurant"
	roomHandler "hotelops/internal/handlers/room"

	"github.com/google/wire"
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
	websocket.NewHub,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	roomRepository.New,
	roomRepository.NewType,
	roomRepository.NewHistory,
	bookingRepository.New,
	bookingRepository.NewGuest,
	bookingRepository.NewInvoice,
	bookingRepository.NewInvoiceLine,
	bookingRepository.NewPayment,
	ledgerRepository.NewAccount,
	ledgerRepository.NewEntry,
	ledgerRepository.NewLine,
	businessDateRepository.New,
	nightAuditRepository.New,
	housekeepingRepository.New,
	housekeepingRepository.NewStaff,
	maintenanceRepository.New,
	restaurantRepository.New,
	restaurantRepository.NewItem,
	notificationRepository.New,
)

var domains = wire.NewSet(
	notificationService.New,
	businessDateService.New,
	ledgerService.New,
	roomService.New,
	bookingService.New,
	housekeepingService.New,
	maintenanceService.New,
	restaurantService.New,
	nightAuditService.New,
)

var workers = wire.NewSet(
	scheduler.New,
	provideWorkers,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	ledgerHandler.New,
	businessDateHandler.New,
	nightAuditHandler.New,
	housekeepingHandler.New,
	maintenanceHandler.New,
	restaurantHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		workers,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
