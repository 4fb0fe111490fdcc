package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

const (
	DefaultRangeLimit = 100
	MaxRangeLimit     = 500
)

type ListAppointmentsByRange struct {
	repo   domain.Repository
	clinic *timezone.Clinic
}

func NewListAppointmentsByRange(
	repo domain.Repository,
	clinic *timezone.Clinic,
) *ListAppointmentsByRange {
	if clinic == nil {
		clinic = timezone.NewClinic("")
	}
	return &ListAppointmentsByRange{
		repo:   repo,
		clinic: clinic,
	}
}

// Execute lists [startDate, endDate] inclusive in time order. limit <= 0
// uses the default; larger values are capped.
func (uc *ListAppointmentsByRange) Execute(
	ctx context.Context,
	startDate string,
	endDate string,
	limit int,
) ([]dto.AppointmentDTO, error) {

	start, end, err := domain.DateRange(startDate, endDate, uc.clinic.Location())
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		start,
		end,
		clampLimit(limit, DefaultRangeLimit, MaxRangeLimit),
	)
	if err != nil {
		return nil, err
	}

	return toAppointmentDTOs(appointments, uc.clinic), nil
}

func clampLimit(limit, fallback, ceiling int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > ceiling {
		return ceiling
	}
	return limit
}
