package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/suar-net/bestsellers-gw/internal/config"
	"github.com/suar-net/bestsellers-gw/internal/metrics"
)

var (
	corsAllowedMethods = []string{"GET", "PUT", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsAllowedHeaders = []string{"Content-Type", "Authorization"}
)

// SetupRouter creates the main Chi router for the application. The book
// routes live under cfg.RoutePrefix; /metrics is always at the root.
func SetupRouter(cfg config.ServerConfig, s BooksService, m *metrics.Metrics, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(logger))
	if m != nil {
		r.Use(instrument(m))
	}
	r.Use(recoverer(logger))

	r.Use(corsHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: corsAllowedMethods,
		AllowedHeaders: corsAllowedHeaders,
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed)
	})

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	healthHandler := NewHealthHandler()
	booksHandler := NewBooksHandler(s, logger)

	routes := func(r chi.Router) {
		r.Get("/status", healthHandler.Check)
		r.Get("/listnames", booksHandler.ListNames)
		r.Get("/lists", booksHandler.GetList)
		r.Get("/overview", booksHandler.GetOverview)
		r.Get("/history", booksHandler.GetHistory)
		r.Get("/reviews", booksHandler.GetReviews)
	}
	if cfg.RoutePrefix == "" {
		r.Group(routes)
	} else {
		r.Route(cfg.RoutePrefix, routes)
	}

	return r
}
