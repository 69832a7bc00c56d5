package appointment

import "github.com/barberflow/barberflow-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusConfirmed
}

// ParseTarget validates a requested target status. Only the two terminal
// states can be requested; "confirmed" is set at creation and never again.
func ParseTarget(raw string) (Status, error) {
	switch Status(raw) {
	case StatusCompleted, StatusCancelled:
		return Status(raw), nil
	default:
		return "", httperr.ErrBusiness("invalid_status")
	}
}

// CanCancel reports whether an appointment may be cancelled.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete reports whether an appointment may be completed. Completed is
// terminal: a second completion is rejected here, which is what keeps the
// customer visit counter from ever incrementing twice.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
