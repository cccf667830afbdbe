package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/choreboard/choreboard/internal/app/analytics"
	"github.com/choreboard/choreboard/internal/domain"
	"github.com/choreboard/choreboard/internal/infra/metrics"
)

// ─── Per-Child Analytics (/api/children/{childID}/*) ────────────────────────
// Every endpoint recomputes from raw events — there is no cached unlock
// state or score anywhere behind these routes.

func (s *Server) childDashboard(w http.ResponseWriter, r *http.Request) (domain.ChildDashboard, bool) {
	childID := chi.URLParam(r, "childID")

	start := time.Now()
	dash, err := s.composer.ChildDashboard(r.Context(), childID, s.now())
	if err != nil {
		s.writeAnalyticsError(w, err)
		return domain.ChildDashboard{}, false
	}
	metrics.DashboardBuilds.WithLabelValues("child").Inc()
	metrics.DashboardLatency.WithLabelValues("child").Observe(time.Since(start).Seconds())
	return dash, true
}

func (s *Server) handleChildMetrics(w http.ResponseWriter, r *http.Request) {
	dash, ok := s.childDashboard(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dash.Metrics)
}

func (s *Server) handleChildAchievements(w http.ResponseWriter, r *http.Request) {
	dash, ok := s.childDashboard(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"achievements":   dash.Achievements,
		"summary":        dash.Summary,
		"newly_unlocked": analytics.NewlyUnlocked(dash.Achievements),
	})
}

func (s *Server) handleChildEngagement(w http.ResponseWriter, r *http.Request) {
	dash, ok := s.childDashboard(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dash.Engagement)
}

func (s *Server) handleChildDailyRollup(w http.ResponseWriter, r *http.Request) {
	dash, ok := s.childDashboard(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"buckets": dash.Daily})
}

func (s *Server) handleChildMonthlyRollup(w http.ResponseWriter, r *http.Request) {
	dash, ok := s.childDashboard(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"buckets": dash.Monthly})
}

// ─── Household Dashboard ────────────────────────────────────────────────────

func (s *Server) handleHouseholdDashboard(w http.ResponseWriter, r *http.Request) {
	householdID := chi.URLParam(r, "householdID")

	start := time.Now()
	dash, err := s.composer.HouseholdDashboard(r.Context(), householdID, s.now())
	if err != nil {
		s.writeAnalyticsError(w, err)
		return
	}
	metrics.DashboardBuilds.WithLabelValues("household").Inc()
	metrics.DashboardLatency.WithLabelValues("household").Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, dash)
}

// writeAnalyticsError maps engine errors onto HTTP statuses. Unknown
// subject → 404; unreadable store → 503 so clients show an explicit
// retry state instead of fake zeros.
func (s *Server) writeAnalyticsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrChildNotFound), errors.Is(err, domain.ErrHouseholdNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAnalyticsUnavailable):
		metrics.AnalyticsUnavailable.Inc()
		writeError(w, http.StatusServiceUnavailable, "analytics unavailable")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
