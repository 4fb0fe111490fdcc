package appointment

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

var ErrAppointmentNotFound = httperr.Missing(
	domain.CodeAppointmentNotFound,
	"Agendamento não encontrado.",
)

type UpdateAppointment struct {
	repo    domain.Repository
	audit   audit.Recorder
	metrics *metrics.SchedulingMetrics
	clinic  *timezone.Clinic
	log     *slog.Logger
}

func NewUpdateAppointment(
	repo domain.Repository,
	recorder audit.Recorder,
	m *metrics.SchedulingMetrics,
	clinic *timezone.Clinic,
	log *slog.Logger,
) *UpdateAppointment {
	if recorder == nil {
		recorder = audit.Discard{}
	}
	if clinic == nil {
		clinic = timezone.NewClinic("")
	}
	if log == nil {
		log = slog.Default()
	}
	return &UpdateAppointment{
		repo:    repo,
		audit:   recorder,
		metrics: m,
		clinic:  clinic,
		log:     log.With(slog.String("component", "appointment.update")),
	}
}

// Execute replaces every mutable field of appointment id. Status is
// required here and transitions are free-form.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in AppointmentInput,
) error {

	ap, err := buildAppointment(in, uc.clinic.Location(), true)
	if err != nil {
		return err
	}
	ap.ID = id

	if err := resolveClient(ctx, uc.repo, ap); err != nil {
		return err
	}

	// --------------------------------------------------
	// Registro existe? -> conflito (ignorando ele mesmo) -> update
	// --------------------------------------------------
	err = uc.repo.WithinTransaction(ctx, func(ctx context.Context, tx domain.Repository) error {
		found, err := tx.LockAppointment(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrAppointmentNotFound
		}

		existing, err := tx.FindSlotConflicts(ctx, domain.SlotQuery{
			At:             ap.Datetime,
			PatientName:    ap.PatientName,
			ProfessionalID: ap.ProfessionalID,
			ExcludeID:      &id,
		})
		if err != nil {
			return err
		}
		if err := domain.DetectConflict(existing, ap.PatientName, ap.ProfessionalID); err != nil {
			return err
		}

		updated, err := tx.UpdateAppointment(ctx, ap)
		if err != nil {
			return err
		}
		if !updated {
			return ErrAppointmentNotFound
		}
		return nil
	})
	if err != nil {
		reportConflict(uc.log, uc.metrics, uc.audit, "update", in.ActorID, ap, err)
		return err
	}

	uc.metrics.ObserveWrite("update")
	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   audit.ActionAppointmentUpdated,
		Entity:   audit.EntityAppointment,
		EntityID: &id,
		Metadata: map[string]any{
			"datetime":        ap.Datetime,
			"professional_id": ap.ProfessionalID,
			"status":          ap.Status,
		},
	})

	return nil
}
