package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/go-eje-planner/internal/api/budget"
	"github.com/FACorreiaa/go-eje-planner/internal/api/catalog"
	"github.com/FACorreiaa/go-eje-planner/internal/api/chat"
	"github.com/FACorreiaa/go-eje-planner/internal/api/selection"
	"github.com/FACorreiaa/go-eje-planner/internal/api/session"
)

// Config contains dependencies needed for the router setup
type Config struct {
	SessionHandler         *session.HandlerImpl
	BudgetHandler          *budget.HandlerImpl
	CatalogHandler         *catalog.HandlerImpl
	SelectionHandler       *selection.HandlerImpl
	ChatHandler            *chat.HandlerImpl
	AuthenticateMiddleware func(http.Handler) http.Handler
	AllowedOrigins         []string
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) is applied in main.go
// before mounting this router.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public: catalogs, estimator and session creation.
		r.Group(func(r chi.Router) {
			r.Post("/sessions", cfg.SessionHandler.CreateSession)

			r.Get("/budget/styles", cfg.BudgetHandler.GetStyles)
			r.Post("/budget/estimate", cfg.BudgetHandler.EstimateBudget)
			r.Get("/budget/estimate", cfg.BudgetHandler.EstimateBudgetQuery)

			r.Get("/itineraries", cfg.CatalogHandler.GetItineraries)
			r.Get("/itineraries/{days}", cfg.CatalogHandler.GetItineraryByDuration)
			r.Get("/pois", cfg.CatalogHandler.GetPointsOfInterest)
			r.Get("/pois/{poiID}", cfg.CatalogHandler.GetPOI)
			r.Get("/map/markers", cfg.CatalogHandler.GetMarkers)
			r.Get("/map/focus/{poiID}", cfg.CatalogHandler.GetFocus)
			r.Get("/locations", cfg.CatalogHandler.GetLocations)
			r.Get("/travel-times", cfg.CatalogHandler.GetTravelTimes)
		})

		// Session-scoped state.
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)

			r.Get("/selection", cfg.SelectionHandler.GetSelection)
			r.Post("/selection", cfg.SelectionHandler.AddToSelection)
			r.Delete("/selection/{name}", cfg.SelectionHandler.RemoveFromSelection)
			r.Get("/selection/contains/{name}", cfg.SelectionHandler.ContainsPlace)

			r.Get("/chat/messages", cfg.ChatHandler.GetMessages)
			r.Post("/chat/messages", cfg.ChatHandler.SendMessage)
		})
	})

	return r
}
