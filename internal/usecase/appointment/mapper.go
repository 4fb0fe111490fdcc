package appointment

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

func professionalName(ap models.Appointment) *string {
	if ap.Professional == nil {
		return nil
	}
	name := ap.Professional.Name
	return &name
}

func toAppointmentDTO(ap models.Appointment, clinic *timezone.Clinic) dto.AppointmentDTO {
	out := dto.AppointmentDTO{
		ID:               ap.ID,
		ClientID:         ap.ClientID,
		PatientName:      ap.PatientName,
		Datetime:         ap.Datetime.In(clinic.Location()),
		Date:             clinic.DateKey(ap.Datetime),
		Time:             clinic.ClockOf(ap.Datetime),
		AppointmentType:  ap.AppointmentType,
		ProfessionalID:   ap.ProfessionalID,
		ProfessionalName: professionalName(ap),
		Status:           ap.Status,
		Notes:            ap.Notes,
		Value:            ap.Value,
		CreatedAt:        ap.CreatedAt,
		UpdatedAt:        ap.UpdatedAt,
	}

	if ap.Client != nil {
		out.ClientPhoto = ap.Client.Photo
		out.ClientEmail = ap.Client.Email
		out.ClientPhone = ap.Client.Phone
	}

	return out
}

func toAppointmentDTOs(apps []models.Appointment, clinic *timezone.Clinic) []dto.AppointmentDTO {
	out := make([]dto.AppointmentDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, toAppointmentDTO(ap, clinic))
	}
	return out
}

func toMonthEntry(ap models.Appointment, clinic *timezone.Clinic) dto.MonthEntryDTO {
	return dto.MonthEntryDTO{
		ID:               ap.ID,
		ClientID:         ap.ClientID,
		PatientName:      ap.PatientName,
		Time:             clinic.ClockOf(ap.Datetime),
		AppointmentType:  ap.AppointmentType,
		Status:           ap.Status,
		ProfessionalName: professionalName(ap),
		Value:            ap.Value,
	}
}
