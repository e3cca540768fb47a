package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/sleep-stats/docs"
	"github.com/blaisecz/sleep-stats/internal/api/handler"
	"github.com/blaisecz/sleep-stats/internal/api/middleware"
	"github.com/blaisecz/sleep-stats/internal/observability"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	userHandler         *handler.UserHandler
	sleepSessionHandler *handler.SleepSessionHandler
	statsHandler        *handler.StatsHandler
	narrativeHandler    *handler.NarrativeHandler
	metrics             *observability.Metrics
	log                 *zap.Logger
}

func NewRouter(
	userHandler *handler.UserHandler,
	sleepSessionHandler *handler.SleepSessionHandler,
	statsHandler *handler.StatsHandler,
	narrativeHandler *handler.NarrativeHandler,
	metrics *observability.Metrics,
	log *zap.Logger,
) *Router {
	return &Router{
		userHandler:         userHandler,
		sleepSessionHandler: sleepSessionHandler,
		statsHandler:        statsHandler,
		narrativeHandler:    narrativeHandler,
		metrics:             metrics,
		log:                 log,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.Tracing)
	r.Use(rt.metrics.Middleware)
	r.Use(middleware.Logger(rt.log))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Method(http.MethodGet, "/metrics", rt.metrics.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)

				r.Route("/sleep-sessions", func(r chi.Router) {
					r.Post("/", rt.sleepSessionHandler.Create)
					r.Get("/", rt.sleepSessionHandler.List)
					r.Get("/{sessionId}", rt.sleepSessionHandler.Get)
					r.Patch("/{sessionId}", rt.sleepSessionHandler.Update)
					r.Delete("/{sessionId}", rt.sleepSessionHandler.Delete)
				})

				r.Route("/sleep", func(r chi.Router) {
					r.Get("/stats/summary", rt.statsHandler.Summary)
					r.Get("/stats/trends", rt.statsHandler.Trends)
					r.Get("/stats/periods", rt.statsHandler.Periods)
					r.Get("/stats/patterns", rt.statsHandler.Patterns)
					r.Get("/stats/overview", rt.statsHandler.Overview)
					r.Get("/insights", rt.statsHandler.Insights)

					r.Get("/narrative", rt.narrativeHandler.Get)
					r.Post("/narrative/refresh", rt.narrativeHandler.Refresh)
					r.Post("/narrative/feedback", rt.narrativeHandler.Feedback)
				})
			})
		})
	})

	return r
}
