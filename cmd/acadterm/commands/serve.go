package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/acadterm/acadterm/internal/api"
	"github.com/acadterm/acadterm/internal/api/handlers"
	"github.com/acadterm/acadterm/internal/calendar"
	"github.com/acadterm/acadterm/internal/scheduler"
	"github.com/acadterm/acadterm/internal/scheduler/jobs"
	"github.com/acadterm/acadterm/pkg/config"
	"github.com/acadterm/acadterm/pkg/database"
	"github.com/acadterm/acadterm/pkg/logger"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the acadterm API server",
	Long: `Starts the HTTP API. Presets are registered first, then calendars
from CALENDAR_DIR, then calendars persisted in the database when
DATABASE_URL is set. The daily rollover job logs academic-period
transitions.

Endpoints:
  GET  /health
  GET  /api/calendars
  POST /api/calendars
  GET  /api/calendars/{id}
  GET  /api/calendars/{id}/diagnostics
  PUT  /api/calendars/{id}/month-map
  POST /api/parse
  POST /api/periods/shift
  GET  /api/periods/sequence

Example:
  acadterm serve
  acadterm serve --port 8080`,
	RunE: runServe,
}

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "override PORT from the environment")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	log := logger.New(cfg)

	// Registry: presets, then YAML calendars, then persisted calendars.
	reg := calendar.NewRegistry()
	if err := calendar.RegisterPresets(reg); err != nil {
		return fmt.Errorf("register presets: %w", err)
	}
	if cfg.CalendarDir != "" {
		configs, err := calendar.LoadDir(cfg.CalendarDir)
		if err != nil {
			return fmt.Errorf("load calendar dir: %w", err)
		}
		for _, c := range configs {
			if err := reg.Register(c); err != nil {
				return err
			}
		}
		log.WithField("count", len(configs)).Info("Loaded calendars from directory")
	}

	var repo *calendar.Repository
	if cfg.Database.Enabled() {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		repo = calendar.NewRepository(db.Pool)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		loaded, err := repo.LoadAll(ctx, reg)
		if err != nil {
			return fmt.Errorf("load calendars from database: %w", err)
		}
		log.WithField("count", loaded).Info("Loaded calendars from database")
	}

	calendarHandler := handlers.NewCalendarHandler(reg, repo, log)
	periodHandler := handlers.NewPeriodHandler(reg, log)
	router := api.NewRouter(cfg, calendarHandler, periodHandler, log)
	server := api.New(cfg, log, router)

	var sched *scheduler.Scheduler
	if cfg.SchedulerEnabled {
		sched = scheduler.New(log)
		if err := sched.AddJob(jobs.NewRolloverJob(reg, log)); err != nil {
			return err
		}
		sched.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigChan:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
