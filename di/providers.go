package di

import (
	"hotelops/config"
	"hotelops/infras/websocket"
	notificationService "hotelops/internal/domains/notification/service"
	"hotelops/internal/scheduler"
	"hotelops/transport/http"
)

// provideWorkers lists the loops that run next to the HTTP server.
func provideWorkers(
	cfg *config.Config,
	hub websocket.Hub,
	notification notificationService.Notification,
	nightAuditScheduler *scheduler.Scheduler,
) http.Workers {
	workers := http.Workers{
		hub.Run,
		notification.Relay,
	}

	if cfg.NightAudit.ScheduleEnable {
		workers = append(workers, nightAuditScheduler.Start)
	}

	return workers
}
