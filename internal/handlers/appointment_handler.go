package handlers

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	appointmentuc "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *appointmentuc.CreateAppointment
	update     *appointmentuc.UpdateAppointment
	remove     *appointmentuc.DeleteAppointment
	get        *appointmentuc.GetAppointment
	byDate     *appointmentuc.ListAppointmentsByDate
	byMonth    *appointmentuc.ListAppointmentsByMonth
	byRange    *appointmentuc.ListAppointmentsByRange
	count      *appointmentuc.CountAppointmentsByRange
	procedures *appointmentuc.GetProcedureCounts

	log *slog.Logger
}

func NewAppointmentHandler(
	repo domain.Repository,
	recorder audit.Recorder,
	m *metrics.SchedulingMetrics,
	clinic *timezone.Clinic,
	log *slog.Logger,
) *AppointmentHandler {
	if log == nil {
		log = slog.Default()
	}
	useJSONFieldNames()
	return &AppointmentHandler{
		create:     appointmentuc.NewCreateAppointment(repo, recorder, m, clinic, log),
		update:     appointmentuc.NewUpdateAppointment(repo, recorder, m, clinic, log),
		remove:     appointmentuc.NewDeleteAppointment(repo, recorder, m),
		get:        appointmentuc.NewGetAppointment(repo, clinic),
		byDate:     appointmentuc.NewListAppointmentsByDate(repo, clinic),
		byMonth:    appointmentuc.NewListAppointmentsByMonth(repo, clinic),
		byRange:    appointmentuc.NewListAppointmentsByRange(repo, clinic),
		count:      appointmentuc.NewCountAppointmentsByRange(repo, clinic),
		procedures: appointmentuc.NewGetProcedureCounts(repo, clinic),
		log:        log.With(slog.String("component", "http.appointments")),
	}
}

// ======================================================
// REQUESTS
// ======================================================

// AppointmentRequest is the body of POST. value may arrive as a JSON number
// or as a string such as "150,50".
type AppointmentRequest struct {
	ClientID        *uint   `json:"client_id"`
	PatientName     string  `json:"patient_name" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	AppointmentType string  `json:"appointment_type" binding:"required"`
	ProfessionalID  *uint   `json:"professional_id" binding:"required,gt=0"`
	Status          string  `json:"status" binding:"omitempty,oneof=Pending Confirmed Cancelled Completed NoShow"`
	Notes           *string `json:"notes"`
	Value           any     `json:"value"`
}

// UpdateAppointmentRequest is the body of PUT, where status is mandatory.
type UpdateAppointmentRequest struct {
	ClientID        *uint   `json:"client_id"`
	PatientName     string  `json:"patient_name" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	AppointmentType string  `json:"appointment_type" binding:"required"`
	ProfessionalID  *uint   `json:"professional_id" binding:"required,gt=0"`
	Status          string  `json:"status" binding:"required,oneof=Pending Confirmed Cancelled Completed NoShow"`
	Notes           *string `json:"notes"`
	Value           any     `json:"value"`
}

func (r AppointmentRequest) toInput(actor *uint) (appointmentuc.AppointmentInput, error) {
	value, err := valueText(r.Value)
	if err != nil {
		return appointmentuc.AppointmentInput{}, err
	}
	return appointmentuc.AppointmentInput{
		ActorID:         actor,
		ClientID:        r.ClientID,
		PatientName:     r.PatientName,
		Date:            r.Date,
		Time:            r.Time,
		AppointmentType: r.AppointmentType,
		ProfessionalID:  r.ProfessionalID,
		Status:          r.Status,
		Notes:           r.Notes,
		Value:           value,
	}, nil
}

func valueText(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	default:
		return "", httperr.Validation(domain.CodeInvalidValue, "Valor inválido.")
	}
}

func (h *AppointmentHandler) input(c *gin.Context, req AppointmentRequest) (appointmentuc.AppointmentInput, bool) {
	in, err := req.toInput(actorID(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return appointmentuc.AppointmentInput{}, false
	}
	return in, true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if !bindJSON(c, &req) {
		return
	}
	in, ok := h.input(c, req)
	if !ok {
		return
	}

	id, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, "Agendamento criado com sucesso.", gin.H{"id": id})
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}
	in, ok := h.input(c, AppointmentRequest(req))
	if !ok {
		return
	}

	if err := h.update.Execute(c.Request.Context(), id, in); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Success(c, 200, "Agendamento atualizado com sucesso.", nil)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actorID(c), id); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Success(c, 200, "Agendamento excluído com sucesso.", nil)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"appointment": ap})
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	appointments, err := h.byDate.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"appointments": appointments})
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	if _, err := requireQuery(c, "year", "month"); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil {
		httperr.BadRequest(c, domain.CodeInvalidYear, "Ano inválido.")
		return
	}
	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil {
		httperr.BadRequest(c, domain.CodeInvalidMonth, "Mês inválido.")
		return
	}

	appointments, err := h.byMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"year":         year,
		"month":        month,
		"appointments": appointments,
	})
}

// ======================================================
// LIST BY RANGE
// ======================================================

func (h *AppointmentHandler) ListByRange(c *gin.Context) {
	dates, err := requireQuery(c, "startDate", "endDate")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	limit, err := queryInt(c, "limit", domain.CodeInvalidLimit, "Limite inválido.")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	appointments, err := h.byRange.Execute(c.Request.Context(), dates[0], dates[1], limit)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"appointments": appointments})
}

// ======================================================
// REPORTS
// ======================================================

func (h *AppointmentHandler) CountByRange(c *gin.Context) {
	dates, err := requireQuery(c, "startDate", "endDate")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	count, err := h.count.Execute(c.Request.Context(), dates[0], dates[1])
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"count": count})
}

func (h *AppointmentHandler) ProcedureCounts(c *gin.Context) {
	dates, err := requireQuery(c, "startDate", "endDate")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	limit, err := queryInt(c, "limit", domain.CodeInvalidLimit, "Limite inválido.")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	rows, err := h.procedures.Execute(c.Request.Context(), dates[0], dates[1], limit)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"procedures": rows})
}
