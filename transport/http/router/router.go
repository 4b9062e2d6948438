package router

import (
	"stayops/internal/handlers/availability"
	"stayops/internal/handlers/booking"
	"stayops/internal/handlers/guest"
	"stayops/internal/handlers/maintenance"
	"stayops/internal/handlers/property"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Property     property.Handler
	Availability availability.Handler
	Guest        guest.Handler
	Booking      booking.Handler
	Maintenance  maintenance.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
