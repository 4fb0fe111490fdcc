package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

const (
	DefaultProcedureLimit = 10
	MaxProcedureLimit     = 100
)

// ======================================================
// COUNT
// ======================================================

type CountAppointmentsByRange struct {
	repo   domain.Repository
	clinic *timezone.Clinic
}

func NewCountAppointmentsByRange(
	repo domain.Repository,
	clinic *timezone.Clinic,
) *CountAppointmentsByRange {
	if clinic == nil {
		clinic = timezone.NewClinic("")
	}
	return &CountAppointmentsByRange{
		repo:   repo,
		clinic: clinic,
	}
}

// Execute counts non-cancelled appointments in [startDate, endDate].
func (uc *CountAppointmentsByRange) Execute(
	ctx context.Context,
	startDate string,
	endDate string,
) (int64, error) {

	start, end, err := domain.DateRange(startDate, endDate, uc.clinic.Location())
	if err != nil {
		return 0, err
	}

	return uc.repo.CountActiveForPeriod(ctx, start, end)
}

// ======================================================
// PROCEDURE COUNTS
// ======================================================

type GetProcedureCounts struct {
	repo   domain.Repository
	clinic *timezone.Clinic
}

func NewGetProcedureCounts(
	repo domain.Repository,
	clinic *timezone.Clinic,
) *GetProcedureCounts {
	if clinic == nil {
		clinic = timezone.NewClinic("")
	}
	return &GetProcedureCounts{
		repo:   repo,
		clinic: clinic,
	}
}

// Execute ranks completed procedures in [startDate, endDate] by count.
func (uc *GetProcedureCounts) Execute(
	ctx context.Context,
	startDate string,
	endDate string,
	limit int,
) ([]domain.ProcedureCount, error) {

	start, end, err := domain.DateRange(startDate, endDate, uc.clinic.Location())
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.CountCompletedProcedures(
		ctx,
		start,
		end,
		clampLimit(limit, DefaultProcedureLimit, MaxProcedureLimit),
	)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.ProcedureCount{}
	}
	return rows, nil
}
