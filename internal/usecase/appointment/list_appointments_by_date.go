package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// RecentLimit caps the listing returned when no date is given.
const RecentLimit = 50

type ListAppointmentsByDate struct {
	repo   domain.Repository
	clinic *timezone.Clinic
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	clinic *timezone.Clinic,
) *ListAppointmentsByDate {
	if clinic == nil {
		clinic = timezone.NewClinic("")
	}
	return &ListAppointmentsByDate{
		repo:   repo,
		clinic: clinic,
	}
}

// Execute lists one clinic day in time order. An empty date returns the most
// recent appointments across all days instead.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentDTO, error) {

	if strings.TrimSpace(date) == "" {
		appointments, err := uc.repo.ListRecentAppointments(ctx, RecentLimit)
		if err != nil {
			return nil, err
		}
		return toAppointmentDTOs(appointments, uc.clinic), nil
	}

	start, end, err := domain.DateRange(date, date, uc.clinic.Location())
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end, 0)
	if err != nil {
		return nil, err
	}

	return toAppointmentDTOs(appointments, uc.clinic), nil
}
