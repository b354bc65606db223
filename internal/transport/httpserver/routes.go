package httpserver

import (
	"net/http"
	"time"

	"welfare-app-go/internal/config"
	"welfare-app-go/internal/transport/httpserver/handler"
	identitymw "welfare-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, identity *identitymw.Identity) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(identitymw.NewCORS(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/register", handlers.Register)
		r.Post("/login", handlers.Login)

		r.Group(func(r chi.Router) {
			r.Use(identity.Middleware)

			r.Get("/schemes", handlers.ListSchemes)
			r.Post("/schemes", handlers.CreateScheme)
			r.Delete("/schemes/{id}", handlers.DeleteScheme)

			r.Get("/applications", handlers.ListApplications)
			r.Post("/applications", handlers.SubmitApplication)
			r.Patch("/applications/{id}/status", handlers.UpdateApplicationStatus)

			r.Get("/users/{userId}/emergency-contacts", handlers.ListEmergencyContacts)
			r.Post("/emergency-contacts", handlers.AddEmergencyContact)
			r.Patch("/emergency-contacts/{id}", handlers.UpdateEmergencyContact)
			r.Delete("/emergency-contacts/{id}", handlers.DeleteEmergencyContact)

			r.Get("/marketplace", handlers.ListMarketplace)
			r.Post("/marketplace", handlers.PublishListing)
			r.Patch("/marketplace/{id}", handlers.UpdateListing)
			r.Delete("/marketplace/{id}", handlers.DeleteListing)

			r.Get("/grievances", handlers.ListGrievances)
			r.Post("/grievances", handlers.FileGrievance)
			r.Patch("/grievances/{id}/status", handlers.UpdateGrievanceStatus)
		})
	})

	return r
}
