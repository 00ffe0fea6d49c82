package router

import (
	"log/slog"
	"net/http"

	_ "communityHub/docs"
	"communityHub/internal/http-server/handlers/event/cancelEvent"
	"communityHub/internal/http-server/handlers/event/createEvent"
	"communityHub/internal/http-server/handlers/event/getAllEvents"
	"communityHub/internal/http-server/handlers/event/getEventInfo"
	"communityHub/internal/http-server/handlers/event/getEventStats"
	"communityHub/internal/http-server/handlers/event/getMyRegistration"
	"communityHub/internal/http-server/handlers/event/getRegistrations"
	"communityHub/internal/http-server/handlers/event/register"
	"communityHub/internal/http-server/handlers/event/unregister"
	"communityHub/internal/http-server/handlers/event/updateEvent"
	"communityHub/internal/http-server/handlers/marketplace/cancelRequest"
	"communityHub/internal/http-server/handlers/marketplace/closeListing"
	"communityHub/internal/http-server/handlers/marketplace/createListing"
	"communityHub/internal/http-server/handlers/marketplace/createRequest"
	"communityHub/internal/http-server/handlers/marketplace/getAllListings"
	"communityHub/internal/http-server/handlers/marketplace/getListing"
	"communityHub/internal/http-server/handlers/marketplace/getListingStats"
	"communityHub/internal/http-server/handlers/marketplace/getRequests"
	"communityHub/internal/http-server/handlers/marketplace/updateListing"
	"communityHub/internal/http-server/handlers/marketplace/updateRequest"
	"communityHub/internal/http-server/middleware/auth"
	"communityHub/internal/http-server/middleware/mwlogger"
	"communityHub/internal/lib/api/response"
	"communityHub/internal/services/marketplace"
	"communityHub/internal/services/registration"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	httpSwagger "github.com/swaggo/http-swagger"
)

// New wires every route of the service.
func New(log *slog.Logger, authn *auth.Authenticator, events *registration.Service, market *marketplace.Service) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK("ok"))
	})

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// public reads, the caller is recorded as viewer when a token is sent
	router.Group(func(r chi.Router) {
		r.Use(auth.Optional(authn))

		r.Get("/events", getAllEvents.New(log, events))
		r.Get("/events/{id}", getEventInfo.New(log, events))
		r.Get("/events/{id}/stats", getEventStats.New(log, events))

		r.Get("/marketplace", getAllListings.New(log, market))
		r.Get("/marketplace/{id}", getListing.New(log, market))
		r.Get("/marketplace/{id}/stats", getListingStats.New(log, market))
	})

	router.Group(func(r chi.Router) {
		r.Use(auth.Required(log, authn))

		r.Post("/events", createEvent.New(log, events))
		r.Put("/events/{id}", updateEvent.New(log, events))
		r.Delete("/events/{id}", cancelEvent.New(log, events))
		r.Post("/events/{id}/register", register.New(log, events))
		r.Delete("/events/{id}/register", unregister.New(log, events))
		r.Get("/events/{id}/registration", getMyRegistration.New(log, events))
		r.Get("/events/{id}/registrations", getRegistrations.New(log, events))

		r.Post("/marketplace", createListing.New(log, market))
		r.Put("/marketplace/{id}", updateListing.New(log, market))
		r.Delete("/marketplace/{id}", closeListing.New(log, market))
		r.Get("/marketplace/{id}/requests", getRequests.New(log, market))
		r.Post("/marketplace/{id}/request", createRequest.New(log, market))
		r.Put("/marketplace/{id}/request/{requestId}", updateRequest.New(log, market))
		r.Delete("/marketplace/request/{requestId}/cancel", cancelRequest.New(log, market))
	})

	return router
}
