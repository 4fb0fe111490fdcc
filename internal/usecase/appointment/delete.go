package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
)

type DeleteAppointment struct {
	repo    domain.Repository
	audit   audit.Recorder
	metrics *metrics.SchedulingMetrics
}

func NewDeleteAppointment(
	repo domain.Repository,
	recorder audit.Recorder,
	m *metrics.SchedulingMetrics,
) *DeleteAppointment {
	if recorder == nil {
		recorder = audit.Discard{}
	}
	return &DeleteAppointment{
		repo:    repo,
		audit:   recorder,
		metrics: m,
	}
}

// Execute hard-deletes the row.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actorID *uint,
	id uint,
) error {

	deleted, err := uc.repo.DeleteAppointment(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAppointmentNotFound
	}

	uc.metrics.ObserveWrite("delete")
	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   audit.ActionAppointmentDeleted,
		Entity:   audit.EntityAppointment,
		EntityID: &id,
	})

	return nil
}
