package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type GetAppointment struct {
	repo   domain.Repository
	clinic *timezone.Clinic
}

func NewGetAppointment(
	repo domain.Repository,
	clinic *timezone.Clinic,
) *GetAppointment {
	if clinic == nil {
		clinic = timezone.NewClinic("")
	}
	return &GetAppointment{
		repo:   repo,
		clinic: clinic,
	}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id uint,
) (*dto.AppointmentDTO, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, ErrAppointmentNotFound
	}

	out := toAppointmentDTO(*ap, uc.clinic)
	return &out, nil
}
