// Package api provides the HTTP server for IdeaForge. It exposes the
// progression engine's boundary: history mutations, progress snapshots,
// and the roll-up summary.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ideaforge/forge/internal/app/progression"
)

// Server is the IdeaForge HTTP API server.
type Server struct {
	progression    *progression.Service
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(svc *progression.Service) *Server {
	return &Server{progression: svc}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": "0.1.0",
		})
	})

	// Work history (mutations trigger a full re-evaluation pass)
	r.Route("/api/work", func(r chi.Router) {
		r.Get("/", s.handleListWork)
		r.Post("/", s.handleCompleteWork)
		r.Delete("/{id}", s.handleUndoWork)
	})

	// Progression read side
	r.Route("/api/progress", func(r chi.Router) {
		r.Get("/achievements", s.handleAchievementProgress)
		r.Get("/badges", s.handleBadgeProgress)
		r.Get("/summary", s.handleSummary)
	})

	// Notifications
	r.Get("/api/notifications", s.handleNotifications)
	r.Post("/api/notifications/{id}/shown", s.handleNotificationShown)

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
