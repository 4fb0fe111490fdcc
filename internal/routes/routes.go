package routes

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// Deps carries the singletons built in main.
type Deps struct {
	Config       *config.Config
	DB           *gorm.DB
	Appointments domain.Repository
	Audit        audit.Recorder
	Metrics      *metrics.SchedulingMetrics
	Gatherer     prometheus.Gatherer
	Clinic       *timezone.Clinic
	Log          *slog.Logger
	Ping         func(ctx context.Context) error
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(d.Log),
		middleware.Metrics(d.Metrics),
		middleware.CORSMiddleware(d.Config.CORSAllowedOrigins),
		middleware.Timeout(d.Config.RequestTimeout),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		d.Appointments,
		d.Audit,
		d.Metrics,
		d.Clinic,
		d.Log,
	)
	healthHandler := handlers.NewHealthHandler(d.Ping, d.Log)

	// ======================================================
	// INFRA
	// ======================================================
	r.GET("/health", healthHandler.Live)
	r.GET("/ready", healthHandler.Ready)

	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// ======================================================
	// API (JSON)
	// ======================================================
	secured := r.Group("/api")
	secured.Use(middleware.AuthMiddleware(d.Config.JWTSecret, d.Config.JWTCookieName))
	{
		ag := secured.Group("/agendamentos")
		{
			ag.POST("", appointmentHandler.Create)
			ag.GET("", appointmentHandler.ListByDate)
			ag.GET("/month", appointmentHandler.ListByMonth)
			ag.GET("/by-range", appointmentHandler.ListByRange)
			ag.GET("/reports/count", appointmentHandler.CountByRange)
			ag.GET("/reports/procedure-counts", appointmentHandler.ProcedureCounts)
			ag.GET("/:id", appointmentHandler.Get)
			ag.PUT("/:id", appointmentHandler.Update)
			ag.DELETE("/:id", appointmentHandler.Delete)
		}

		if d.DB != nil {
			auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Clinic, d.Log)
			directoryHandler := handlers.NewDirectoryHandler(d.DB, d.Log)

			secured.GET("/audit-logs", auditLogsHandler.List)
			secured.GET("/clients", directoryHandler.Clients)
			secured.GET("/professionals", directoryHandler.Professionals)
		}
	}
}
