// Package api provides the read-only HTTP surface for the ChoreBoard
// analytics engine: per-child metrics, achievements, engagement,
// rollups, and the household dashboard.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/choreboard/choreboard/internal/app/analytics"
	"github.com/choreboard/choreboard/internal/health"
)

// Server is the ChoreBoard HTTP API server.
type Server struct {
	composer       *analytics.Composer
	checker        *health.Checker
	corsOrigins    []string
	metricsEnabled bool

	// now is injectable so tests pin the reference instant.
	now func() time.Time
}

// NewServer creates a new API server over a dashboard composer.
func NewServer(composer *analytics.Composer) *Server {
	return &Server{
		composer:    composer,
		corsOrigins: []string{"*"},
		now:         time.Now,
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHealthChecker attaches a health checker backing /health.
func (s *Server) SetHealthChecker(c *health.Checker) { s.checker = c }

// SetCORSOrigins overrides the allowed CORS origins.
func (s *Server) SetCORSOrigins(origins []string) {
	if len(origins) > 0 {
		s.corsOrigins = origins
	}
}

// SetNow overrides the reference clock (tests only).
func (s *Server) SetNow(now func() time.Time) { s.now = now }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/children/{childID}", func(r chi.Router) {
			r.Get("/metrics", s.handleChildMetrics)
			r.Get("/achievements", s.handleChildAchievements)
			r.Get("/engagement", s.handleChildEngagement)
			r.Get("/rollups/daily", s.handleChildDailyRollup)
			r.Get("/rollups/monthly", s.handleChildMonthlyRollup)
		})
		r.Get("/households/{householdID}/dashboard", s.handleHouseholdDashboard)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.checker == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	statuses := s.checker.Snapshot()
	code := http.StatusOK
	state := "ok"
	if !s.checker.Healthy() {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	writeJSON(w, code, map[string]interface{}{
		"status": state,
		"checks": statuses,
	})
}

// writeJSON writes v as a JSON response.
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
