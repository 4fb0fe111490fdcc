package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type ListAppointmentsByMonth struct {
	repo   domain.Repository
	clinic *timezone.Clinic
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	clinic *timezone.Clinic,
) *ListAppointmentsByMonth {
	if clinic == nil {
		clinic = timezone.NewClinic("")
	}
	return &ListAppointmentsByMonth{
		repo:   repo,
		clinic: clinic,
	}
}

// Execute groups the month's appointments by calendar date. Only dates with
// at least one appointment appear as keys; each slice keeps time order.
func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) (map[string][]dto.MonthEntryDTO, error) {

	start, end, err := domain.MonthRange(year, month, uc.clinic.Location())
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end, 0)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]dto.MonthEntryDTO)
	for _, ap := range appointments {
		key := uc.clinic.DateKey(ap.Datetime)
		out[key] = append(out[key], toMonthEntry(ap, uc.clinic))
	}

	return out, nil
}
