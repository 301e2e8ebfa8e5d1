package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"hotelhub/pkg/logger"
)

type Router struct {
	HotelHandler      *HotelHandler
	CredentialHandler *CredentialHandler
	HealthHandler     *HealthHandler
	MetricsHandler    http.Handler
	AppLogger         logger.LoggerInterface
}

// NewRouter wires the handlers; credentialHandler and metricsHandler may be nil
func NewRouter(hotelHandler *HotelHandler, credentialHandler *CredentialHandler, healthHandler *HealthHandler, metricsHandler http.Handler, appLogger logger.LoggerInterface) *Router {
	return &Router{
		HotelHandler:      hotelHandler,
		CredentialHandler: credentialHandler,
		HealthHandler:     healthHandler,
		MetricsHandler:    metricsHandler,
		AppLogger:         appLogger,
	}
}

func (r *Router) SetupRoutes() http.Handler {
	router := chi.NewRouter()

	// Add middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/ping"))

	router.Get("/health", r.HealthHandler.HealthCheckHandler)
	if r.MetricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", r.MetricsHandler)
	}

	router.Route("/api/v1", func(api chi.Router) {
		// Hotel routes - require X-Employee-ID header
		api.Route("/hotels", func(hotels chi.Router) {
			hotels.Use(TenantMiddleware(r.AppLogger))
			hotels.Post("/search", r.HotelHandler.SearchHandler)
			hotels.Post("/pricing", r.HotelHandler.PricingHandler)
			hotels.Post("/room-details", r.HotelHandler.RoomDetailsHandler)
			hotels.Post("/bookings/info", r.HotelHandler.BookingInfoHandler)
			hotels.Post("/trip-documents", r.HotelHandler.TripDocumentsHandler)
			hotels.Post("/ancillaries/pricing", r.HotelHandler.AncillaryPricingHandler)
		})

		if r.CredentialHandler != nil {
			api.Route("/credentials", func(credentials chi.Router) {
				credentials.Put("/{supplierCode}/{clientId}", r.CredentialHandler.SaveHandler)
				credentials.Delete("/{supplierCode}/{clientId}", r.CredentialHandler.DeleteHandler)
			})
		}
	})

	return router
}
