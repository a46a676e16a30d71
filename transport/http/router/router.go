package router

import (
	"hotelops/internal/handlers/booking"
	"hotelops/internal/handlers/businessdate"
	"hotelops/internal/handlers/housekeeping"
	"hotelops/internal/handlers/ledger"
	"hotelops/internal/handlers/maintenance"
	"hotelops/internal/handlers/nightaudit"
	"hotelops/internal/handlers/notification"
	"hotelops/internal/handlers/restaurant"
	"hotelops/internal/handlers/room"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room         room.Handler
	Booking      booking.Handler
	Ledger       ledger.Handler
	BusinessDate businessdate.Handler
	NightAudit   nightaudit.Handler
	Housekeeping housekeeping.Handler
	Maintenance  maintenance.Handler
	Restaurant   restaurant.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain under its hotel. hotelScope guards the hotel path parameter.
func (r *Router) SetupRoutes(router chi.Router, hotelScope func(http.Handler) http.Handler) {
	router.Route("/v1/hotels/{hotelID}", func(routerGroup chi.Router) {
		routerGroup.Use(hotelScope)

		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Ledger.Router(routerGroup)
		r.DomainHandlers.BusinessDate.Router(routerGroup)
		r.DomainHandlers.NightAudit.Router(routerGroup)
		r.DomainHandlers.Housekeeping.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
		r.DomainHandlers.Restaurant.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
