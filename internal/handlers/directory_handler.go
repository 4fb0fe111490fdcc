package handlers

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// DirectoryHandler exposes read-only lookups over clients and professionals so
// the scheduling screen can pick ids. Profiles are maintained elsewhere.
type DirectoryHandler struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewDirectoryHandler(db *gorm.DB, log *slog.Logger) *DirectoryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &DirectoryHandler{
		db:  db,
		log: log.With(slog.String("component", "http.directory")),
	}
}

const directoryLimit = 100

// likeEscaper makes the search text literal under Postgres' default LIKE
// escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *DirectoryHandler) Clients(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).Model(&models.Client{})

	if query != "" {
		like := "%" + likeEscaper.Replace(query) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("name ASC, id ASC").
		Limit(directoryLimit).
		Find(&clients).Error; err != nil {

		httperr.Respond(c, h.log, err)
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}

	httpresp.OK(c, gin.H{"clients": clients})
}

// ======================================================
// LIST PROFESSIONALS
// ======================================================
func (h *DirectoryHandler) Professionals(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.Professional{})

	if c.Query("all") != "true" {
		q = q.Where("active = ?", true)
	}

	var professionals []models.Professional
	if err := q.Order("name ASC, id ASC").Find(&professionals).Error; err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	if professionals == nil {
		professionals = []models.Professional{}
	}

	httpresp.OK(c, gin.H{"professionals": professionals})
}
