package handlers

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db     *gorm.DB
	clinic *timezone.Clinic
	log    *slog.Logger
}

func NewAuditLogsHandler(db *gorm.DB, clinic *timezone.Clinic, log *slog.Logger) *AuditLogsHandler {
	if clinic == nil {
		clinic = timezone.NewClinic("")
	}
	if log == nil {
		log = slog.Default()
	}
	return &AuditLogsHandler{
		db:     db,
		clinic: clinic,
		log:    log.With(slog.String("component", "http.audit_logs")),
	}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := strings.TrimSpace(c.Query("action"))
	entity := strings.TrimSpace(c.Query("entity"))
	entityIDStr := strings.TrimSpace(c.Query("entity_id"))
	fromStr := strings.TrimSpace(c.Query("from"))
	toStr := strings.TrimSpace(c.Query("to"))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if entityIDStr != "" {
		entityID, err := strconv.ParseUint(entityIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, domain.CodeInvalidID, "entity_id inválido.")
			return
		}
		q = q.Where("entity_id = ?", entityID)
	}

	if fromStr != "" {
		from, err := domain.ParseDate(fromStr, h.clinic.Location())
		if err != nil {
			httperr.Respond(c, h.log, err)
			return
		}
		q = q.Where("created_at >= ?", from)
	}

	if toStr != "" {
		to, err := domain.ParseDate(toStr, h.clinic.Location())
		if err != nil {
			httperr.Respond(c, h.log, err)
			return
		}
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
