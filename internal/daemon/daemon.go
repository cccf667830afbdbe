package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/choreboard/choreboard/internal/api"
	"github.com/choreboard/choreboard/internal/app/analytics"
	"github.com/choreboard/choreboard/internal/health"
	"github.com/choreboard/choreboard/internal/infra/metrics"
	"github.com/choreboard/choreboard/internal/infra/sqlite"
)

// Daemon is the ChoreBoard runtime. It wires the stores, the analytics
// composer, the HTTP API, and the background jobs together.
type Daemon struct {
	Config   Config
	DB       *sqlite.DB
	Composer *analytics.Composer
	Server   *api.Server
	Health   *health.Checker

	jobs   *cron.Cron
	cancel context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	db, err := sqlite.Open(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	composer := analytics.NewComposer(db)
	checker := health.NewChecker(db, cfg.Storage.Dir)

	srv := api.NewServer(composer)
	srv.SetHealthChecker(checker)
	srv.SetCORSOrigins(cfg.API.CORSOrigins)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	d := &Daemon{
		Config:   cfg,
		DB:       db,
		Composer: composer,
		Server:   srv,
		Health:   checker,
	}

	// Background gauge refresh keeps the Prometheus engagement gauges
	// roughly current between scrape-triggered dashboard requests.
	if cfg.Jobs.GaugeRefresh != "" {
		d.jobs = cron.New()
		if _, err := d.jobs.AddFunc(cfg.Jobs.GaugeRefresh, d.refreshGauges); err != nil {
			db.Close()
			return nil, fmt.Errorf("schedule gauge refresh %q: %w", cfg.Jobs.GaugeRefresh, err)
		}
	}

	return d, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)
	if d.jobs != nil {
		d.jobs.Start()
	}

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if d.jobs != nil {
			d.jobs.Stop()
		}
		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("ChoreBoard serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.jobs != nil {
		d.jobs.Stop()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}

// refreshGauges recomputes engagement gauges for every child of every
// household. Failures are logged, not fatal — the next tick retries.
func (d *Daemon) refreshGauges() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	households, err := d.DB.Households(ctx)
	if err != nil {
		log.Printf("[daemon] gauge refresh: list households: %v", err)
		return
	}

	now := time.Now()
	for _, h := range households {
		dash, err := d.Composer.HouseholdDashboard(ctx, h.ID, now)
		if err != nil {
			log.Printf("[daemon] gauge refresh: household %s: %v", h.ID, err)
			continue
		}
		for _, cd := range dash.Children {
			metrics.EngagementScore.WithLabelValues(cd.Profile.ID).Set(float64(cd.Engagement.Score))
			metrics.AchievementsUnlocked.WithLabelValues(cd.Profile.ID).Set(float64(cd.Summary.Unlocked))
		}
	}
}
