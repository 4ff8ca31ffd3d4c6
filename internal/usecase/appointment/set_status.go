package appointment

import (
	"context"

	"github.com/barberpro/barberpro-api/internal/audit"
	domain "github.com/barberpro/barberpro-api/internal/domain/booking"
	"github.com/barberpro/barberpro-api/internal/metrics"
	"github.com/barberpro/barberpro-api/internal/models"
	"github.com/barberpro/barberpro-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SetStatusInput struct {
	AppointmentID string
	Status        string
	Actor         string
}

// ======================================================
// USE CASE
// ======================================================

type SetStatus struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewSetStatus(
	repo domain.Repository,
	audit audit.Recorder,
) *SetStatus {
	return &SetStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute aplica a mudança de status do admin. Na primeira transição para
// "completed" alimenta os contadores mensais do dashboard com o preço do
// serviço; o serviço pode ter sido apagado, e aí conta receita zero.
func (uc *SetStatus) Execute(
	ctx context.Context,
	in SetStatusInput,
) (*models.Appointment, error) {

	st, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	completedNow := domain.ApplyStatus(ap, st, now)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if completedNow {
		var revenue float64
		if svc, err := uc.repo.GetService(ctx, ap.ServiceID); err == nil {
			revenue = svc.Price
		}

		year, month := timezone.CurrentYearMonth(now)
		if err := uc.repo.AddCompletedCut(ctx, year, month, revenue); err != nil {
			return nil, err
		}

		metrics.AppointmentsCompleted.Inc()
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"status": string(st)},
	})

	return ap, nil
}
