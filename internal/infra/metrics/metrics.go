// Package metrics provides Prometheus metrics for ChoreBoard —
// counters, gauges, and histograms for dashboard builds, store health,
// and per-child engagement.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Dashboards ─────────────────────────────────────────────────────────────

// DashboardBuilds tracks completed dashboard builds by scope.
var DashboardBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "choreboard",
	Name:      "dashboard_builds_total",
	Help:      "Total dashboard builds.",
}, []string{"scope"}) // "child" or "household"

// DashboardLatency tracks dashboard build duration in seconds.
var DashboardLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "choreboard",
	Name:      "dashboard_build_seconds",
	Help:      "Dashboard build duration in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"scope"})

// AnalyticsUnavailable tracks requests that failed because an upstream
// store could not be read.
var AnalyticsUnavailable = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "choreboard",
	Name:      "analytics_unavailable_total",
	Help:      "Total analytics requests that failed on store reads.",
})

// ─── Engagement ─────────────────────────────────────────────────────────────

// EngagementScore tracks the latest engagement score per child.
var EngagementScore = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "choreboard",
	Name:      "engagement_score",
	Help:      "Latest engagement score (0-100) per child.",
}, []string{"child"})

// AchievementsUnlocked tracks unlocked achievement counts per child.
var AchievementsUnlocked = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "choreboard",
	Name:      "achievements_unlocked",
	Help:      "Unlocked achievements per child.",
}, []string{"child"})
