package router

import (
	"arena/internal/handlers/auth"
	"arena/internal/handlers/booking"
	"arena/internal/handlers/campo"
	"arena/internal/handlers/stats"
	"arena/internal/handlers/struttura"
	"arena/internal/handlers/test"
	"arena/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Struttura struttura.Handler
	Campo     campo.Handler
	Booking   booking.Handler
	Stats     stats.Handler
	Test      test.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Struttura.Router(routerGroup)
		r.DomainHandlers.Campo.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Stats.Router(routerGroup)
		r.DomainHandlers.Test.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
