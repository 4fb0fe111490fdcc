package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// AppointmentInput is the raw payload shared by create and update. Value
// keeps the caller's text so that "150,50" can be normalized here.
type AppointmentInput struct {
	ActorID *uint

	ClientID        *uint
	PatientName     string
	Date            string
	Time            string
	AppointmentType string
	ProfessionalID  *uint

	Status string
	Notes  *string
	Value  string
}

// buildAppointment validates in and returns the row to be written. When
// requireStatus is false an empty status falls back to the initial one.
func buildAppointment(
	in AppointmentInput,
	loc *time.Location,
	requireStatus bool,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Campos obrigatórios
	// --------------------------------------------------
	var missing []string
	if strings.TrimSpace(in.PatientName) == "" {
		missing = append(missing, "patient_name")
	}
	if strings.TrimSpace(in.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(in.Time) == "" {
		missing = append(missing, "time")
	}
	if strings.TrimSpace(in.AppointmentType) == "" {
		missing = append(missing, "appointment_type")
	}
	if in.ProfessionalID == nil || *in.ProfessionalID == 0 {
		missing = append(missing, "professional_id")
	}
	if requireStatus && strings.TrimSpace(in.Status) == "" {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return nil, httperr.Validation(
			domain.CodeMissingField,
			fmt.Sprintf("Campos obrigatórios ausentes: %s.", strings.Join(missing, ", ")),
		)
	}

	// --------------------------------------------------
	// Valor
	// --------------------------------------------------
	value, err := domain.ParseValue(in.Value)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Data / hora no fuso da clínica
	// --------------------------------------------------
	at, err := domain.CombineDateTime(in.Date, in.Time, loc)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Status
	// --------------------------------------------------
	status := domain.InitialStatus()
	if raw := strings.TrimSpace(in.Status); raw != "" {
		status, err = domain.ParseStatus(raw)
		if err != nil {
			return nil, err
		}
	}

	var notes *string
	if in.Notes != nil {
		if n := strings.TrimSpace(*in.Notes); n != "" {
			notes = &n
		}
	}

	return &models.Appointment{
		ClientID:        in.ClientID,
		PatientName:     strings.TrimSpace(in.PatientName),
		Datetime:        at,
		AppointmentType: strings.TrimSpace(in.AppointmentType),
		ProfessionalID:  *in.ProfessionalID,
		Status:          string(status),
		Notes:           notes,
		Value:           value,
	}, nil
}

// resolveClient fills ClientID from the client directory when the caller did
// not send one. A miss leaves it nil.
func resolveClient(ctx context.Context, repo domain.Repository, ap *models.Appointment) error {
	if ap.ClientID != nil {
		return nil
	}
	id, err := repo.FindClientIDByName(ctx, ap.PatientName)
	if err != nil {
		return err
	}
	ap.ClientID = id
	return nil
}

func conflictKind(err error) string {
	switch {
	case httperr.IsBusiness(err, domain.CodePatientAlreadyBooked):
		return "patient"
	case httperr.IsBusiness(err, domain.CodeProfessionalAlreadyBooked):
		return "professional"
	default:
		return ""
	}
}

// reportConflict records a rejected double booking. Other errors are
// ignored.
func reportConflict(
	log *slog.Logger,
	m *metrics.SchedulingMetrics,
	rec audit.Recorder,
	op string,
	actor *uint,
	ap *models.Appointment,
	err error,
) {
	kind := conflictKind(err)
	if kind == "" {
		return
	}

	m.ObserveConflict(kind)
	log.Info("double booking rejected",
		slog.String("op", op),
		slog.String("kind", kind),
		slog.Time("datetime", ap.Datetime),
		slog.Uint64("professional_id", uint64(ap.ProfessionalID)),
	)

	var target *uint
	if ap.ID != 0 {
		id := ap.ID
		target = &id
	}
	rec.Dispatch(audit.Event{
		UserID:   actor,
		Action:   audit.ActionAppointmentConflict,
		Entity:   audit.EntityAppointment,
		EntityID: target,
		Metadata: map[string]any{
			"kind":            kind,
			"op":              op,
			"datetime":        ap.Datetime,
			"professional_id": ap.ProfessionalID,
		},
	})
}
