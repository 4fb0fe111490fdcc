package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
	StatusNoShow    Status = "NoShow"
)

// AllStatuses lists the closed status set in display order.
var AllStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

// BlocksSlot reports whether an appointment in this status occupies its
// time slot for conflict detection.
func (s Status) BlocksSlot() bool {
	switch s {
	case StatusCancelled:
		return false
	case StatusPending, StatusConfirmed, StatusCompleted, StatusNoShow:
		return true
	default:
		return true
	}
}

// InitialStatus is used when create does not receive one.
func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", httperr.Validation(
			CodeInvalidStatus,
			fmt.Sprintf("Status inválido: %q. Valores aceitos: %v.", raw, AllStatuses),
		)
	}
	return s, nil
}
