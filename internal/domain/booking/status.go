package booking

import "github.com/barberpro/barberpro-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusRejected:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// Blocks informa se um agendamento neste status ocupa o horário.
// Só "rejected" libera o slot de volta.
func (s Status) Blocks() bool {
	return s != StatusRejected
}

func InitialStatus() Status {
	return StatusPending
}
