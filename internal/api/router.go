package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/msuss/atelier/internal/api/handlers"
	mw "github.com/msuss/atelier/internal/api/middleware"
	"github.com/msuss/atelier/internal/app"
	"github.com/msuss/atelier/internal/buildconfig"
	"github.com/msuss/atelier/internal/events"
	"go.uber.org/zap"
)

type Options struct {
	// APIKey enables bearer authentication on /api when set.
	APIKey         string
	RateLimitRPS   float64
	RateLimitBurst int
}

// App holds the router and the live event hub.
type App struct {
	Router       *chi.Mux
	Hub          *events.Hub
	atelier      *app.Atelier
	metrics      *mw.MetricsCollector
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewApp builds the HTTP surface over a. The hub must already be one of a's
// publishers for viewers to receive events.
func NewApp(a *app.Atelier, hub *events.Hub, opts Options, logger *zap.Logger) *App {
	artistHandler := handlers.NewArtistHandler(a.Artists)
	studioHandler := handlers.NewStudioHandler(a.Studio)
	exchangeHandler := handlers.NewExchangeHandler(a.Exchange)
	galleryHandler := handlers.NewGalleryHandler(a.Gallery)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Hub:       hub,
		atelier:   a,
		startTime: time.Now(),
	}
	app.metrics = mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.metrics.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	if opts.RateLimitRPS > 0 {
		r.Use(mw.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	}

	// Health and metrics (no auth)
	r.Get("/health", app.healthHandler())
	r.Get("/metrics", app.metricsHandler())

	r.Route("/api", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(opts.APIKey))

		r.Get("/templates", artistHandler.Templates)
		r.Get("/skills", studioHandler.Skills)

		r.Route("/artists", func(r chi.Router) {
			r.Get("/", galleryHandler.List)
			r.Post("/", artistHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", artistHandler.GetByID)
				r.Get("/memory", artistHandler.Memory)
			})
		})

		r.Post("/generate", studioHandler.Generate)
		r.Post("/feedback", studioHandler.Feedback)
		r.Post("/critique", exchangeHandler.Critique)
		r.Post("/exchange", exchangeHandler.Exchange)

		if hub != nil {
			r.Get("/events", hub.ServeHTTP)
		}
	})

	return app
}

func (app *App) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := app.atelier.Roster.Discover(); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "version": buildconfig.Version()})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		viewers := 0
		if app.Hub != nil {
			viewers = app.Hub.Clients()
		}

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"in_flight":      app.metrics.InFlight(),
			"viewers":        viewers,
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}
