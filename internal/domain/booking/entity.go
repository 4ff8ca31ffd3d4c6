package booking

import (
	"time"

	"github.com/barberpro/barberpro-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

type AvailabilityInput struct {
	Date      string
	BarberID  string
	ServiceID string
}

// ApplyStatus aplica a mudança de status decidida pelo admin e informa se o
// agendamento acabou de ser concluído pela primeira vez. CompletedAt é
// preenchido uma única vez, então completed → outro → completed de novo
// não dispara nova contabilização no dashboard.
func ApplyStatus(ap *models.Appointment, st Status, now time.Time) (completedNow bool) {
	if st == StatusCompleted && ap.CompletedAt == nil {
		ap.CompletedAt = &now
		completedNow = true
	}
	ap.Status = string(st)
	return completedNow
}
