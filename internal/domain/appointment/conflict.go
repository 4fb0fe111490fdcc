package appointment

import (
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var (
	ErrPatientAlreadyBooked = httperr.Conflict(
		CodePatientAlreadyBooked,
		"O paciente já possui um agendamento neste horário.",
	)
	ErrProfessionalAlreadyBooked = httperr.Conflict(
		CodeProfessionalAlreadyBooked,
		"O profissional já possui um agendamento neste horário.",
	)
)

// DetectConflict inspects the appointments already holding the requested
// instant. A patient-name clash is reported before a professional clash.
// Cancelled rows are ignored even if the caller passed them in.
func DetectConflict(existing []models.Appointment, patientName string, professionalID uint) error {
	name := strings.TrimSpace(patientName)

	var professionalClash bool
	for _, ap := range existing {
		if !Status(ap.Status).BlocksSlot() {
			continue
		}
		if strings.TrimSpace(ap.PatientName) == name {
			return ErrPatientAlreadyBooked
		}
		if ap.ProfessionalID == professionalID {
			professionalClash = true
		}
	}

	if professionalClash {
		return ErrProfessionalAlreadyBooked
	}
	return nil
}
