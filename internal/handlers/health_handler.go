package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type HealthHandler struct {
	ping func(ctx context.Context) error
	log  *slog.Logger
}

// NewHealthHandler takes the database ping used by readiness. A nil ping
// reports ready unconditionally.
func NewHealthHandler(ping func(ctx context.Context) error, log *slog.Logger) *HealthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &HealthHandler{ping: ping, log: log.With(slog.String("component", "http.health"))}
}

func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			h.log.Warn("readiness check failed", slog.Any("err", err))
			httperr.Write(c, http.StatusServiceUnavailable, "database_unavailable", "Banco de dados indisponível.")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
