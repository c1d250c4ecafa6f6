package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Routes assembles the full route tree for the API server.
func Routes(h *Handler, logger *zap.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/games", h.GetGames)
		r.Get("/games/{gameID}", h.GetGame)
		r.Get("/players", h.GetPlayers)
		r.Get("/players/{playerID}", h.GetPlayer)
		r.Get("/leaderboards", h.GetLeaderboards)
		r.Get("/activity", h.GetRecentActivity)
		r.Get("/ranges", h.GetTimeRanges)
		r.Get("/comparison/{gameID}", h.GetComparison)
		r.Get("/summary", h.GetSummary)
	})

	return r
}
