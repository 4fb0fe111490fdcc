package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ProcedureCount struct {
	Procedure string `json:"procedure"`
	Count     int64  `json:"count"`
}

// SlotQuery selects the non-cancelled appointments that hold an exact
// instant for either the patient or the professional.
type SlotQuery struct {
	At             time.Time
	PatientName    string
	ProfessionalID uint
	ExcludeID      *uint
}

type Repository interface {
	// -------- Transaction --------
	WithinTransaction(
		ctx context.Context,
		fn func(ctx context.Context, tx Repository) error,
	) error

	// -------- Client directory --------
	FindClientIDByName(
		ctx context.Context,
		name string,
	) (*uint, error)

	// -------- Appointment (write / conflict) --------
	FindSlotConflicts(
		ctx context.Context,
		q SlotQuery,
	) ([]models.Appointment, error)

	// LockAppointment takes a row lock on id for the rest of the
	// transaction and reports whether the row exists.
	LockAppointment(
		ctx context.Context,
		id uint,
	) (bool, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) (bool, error)

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) (bool, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
		limit int,
	) ([]models.Appointment, error)

	ListRecentAppointments(
		ctx context.Context,
		limit int,
	) ([]models.Appointment, error)

	CountActiveForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (int64, error)

	CountCompletedProcedures(
		ctx context.Context,
		start time.Time,
		end time.Time,
		limit int,
	) ([]ProcedureCount, error)
}
