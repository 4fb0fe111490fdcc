package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logging"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// SCHEMA
	// ======================================================
	if cfg.DBAutoMigrate {
		mg, err := dbpkg.NewMigrator(cfg.DBUrl, log)
		if err != nil {
			return err
		}
		err = mg.Up()
		if closeErr := mg.Close(); closeErr != nil {
			log.Warn("migrator close failed", slog.Any("err", closeErr))
		}
		if err != nil {
			return err
		}
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	db, err := dbpkg.NewDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			log.Warn("database close failed", slog.Any("err", err))
		}
	}()

	auditDispatcher := audit.NewDispatcher(audit.New(db), log, cfg.AuditQueueSize)
	schedulingMetrics := metrics.NewSchedulingMetrics(prometheus.DefaultRegisterer)

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		DB:           db,
		Appointments: infraRepo.NewAppointmentGormRepository(db),
		Audit:        auditDispatcher,
		Metrics:      schedulingMetrics,
		Gatherer:     prometheus.DefaultGatherer,
		Clinic:       timezone.NewClinic(cfg.ClinicTimezone),
		Log:          log,
		Ping: func(ctx context.Context) error {
			return dbpkg.Ping(ctx, db)
		},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Info("server started",
		slog.String("addr", cfg.Addr()),
		slog.String("clinic_timezone", cfg.ClinicTimezone),
	)

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	return shutdown(log, srv, auditDispatcher, cfg)
}

func shutdown(
	log *slog.Logger,
	srv *http.Server,
	dispatcher *audit.Dispatcher,
	cfg *config.Config,
) error {
	log.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	srvErr := srv.Shutdown(ctx)
	if srvErr != nil {
		log.Warn("http graceful shutdown failed", slog.Any("err", srvErr))
	}

	// In-flight requests are done; flush what they queued for the audit trail.
	if err := dispatcher.Close(ctx); err != nil {
		log.Warn("audit queue not fully drained", slog.Any("err", err))
	}

	log.Info("server stopped")
	return srvErr
}
