package appointment

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	audit   audit.Recorder
	metrics *metrics.SchedulingMetrics
	clinic  *timezone.Clinic
	log     *slog.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	recorder audit.Recorder,
	m *metrics.SchedulingMetrics,
	clinic *timezone.Clinic,
	log *slog.Logger,
) *CreateAppointment {
	if recorder == nil {
		recorder = audit.Discard{}
	}
	if clinic == nil {
		clinic = timezone.NewClinic("")
	}
	if log == nil {
		log = slog.Default()
	}
	return &CreateAppointment{
		repo:    repo,
		audit:   recorder,
		metrics: m,
		clinic:  clinic,
		log:     log.With(slog.String("component", "appointment.create")),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in AppointmentInput,
) (uint, error) {

	// --------------------------------------------------
	// 1️⃣ Validação e normalização
	// --------------------------------------------------
	ap, err := buildAppointment(in, uc.clinic.Location(), false)
	if err != nil {
		return 0, err
	}

	// --------------------------------------------------
	// 2️⃣ Cliente por nome
	// --------------------------------------------------
	if err := resolveClient(ctx, uc.repo, ap); err != nil {
		return 0, err
	}

	// --------------------------------------------------
	// 3️⃣ Conflito + inserção na mesma transação
	// --------------------------------------------------
	err = uc.repo.WithinTransaction(ctx, func(ctx context.Context, tx domain.Repository) error {
		existing, err := tx.FindSlotConflicts(ctx, domain.SlotQuery{
			At:             ap.Datetime,
			PatientName:    ap.PatientName,
			ProfessionalID: ap.ProfessionalID,
		})
		if err != nil {
			return err
		}
		if err := domain.DetectConflict(existing, ap.PatientName, ap.ProfessionalID); err != nil {
			return err
		}
		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		reportConflict(uc.log, uc.metrics, uc.audit, "create", in.ActorID, ap, err)
		return 0, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.metrics.ObserveWrite("create")
	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   audit.EntityAppointment,
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"datetime":        ap.Datetime,
			"professional_id": ap.ProfessionalID,
			"status":          ap.Status,
		},
	})

	return ap.ID, nil
}
