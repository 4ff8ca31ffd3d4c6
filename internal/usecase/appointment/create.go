package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barberpro/barberpro-api/internal/audit"
	domain "github.com/barberpro/barberpro-api/internal/domain/booking"
	"github.com/barberpro/barberpro-api/internal/httperr"
	"github.com/barberpro/barberpro-api/internal/metrics"
	"github.com/barberpro/barberpro-api/internal/models"
	"github.com/barberpro/barberpro-api/internal/timezone"
	"github.com/barberpro/barberpro-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID string
	BarberID  string

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Data / horário
	// --------------------------------------------------
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !validators.IsPhoneValid(in.ClientPhone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	// --------------------------------------------------
	// 2. Serviço e barbeiro
	// --------------------------------------------------
	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.Available {
		return nil, httperr.ErrBusiness("barber_unavailable")
	}

	// --------------------------------------------------
	// 3. Re-checagem do slot (conflict guard)
	// --------------------------------------------------
	// Entre esta leitura e o insert ainda existe uma janela; sem
	// constraint de unicidade no triplo, o guard reduz o risco de
	// double-booking, não o elimina.
	count, err := uc.repo.CountActiveAt(ctx, in.Date, in.Time, in.BarberID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		metrics.BookingConflicts.Inc()
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 4. Criação (status centralizado)
	// --------------------------------------------------
	ap := &models.Appointment{
		ID:          uuid.NewString(),
		ClientName:  in.ClientName,
		ClientPhone: validators.NormalizePhone(in.ClientPhone),
		ClientEmail: in.ClientEmail,
		ServiceID:   in.ServiceID,
		BarberID:    in.BarberID,
		Date:        in.Date,
		Time:        in.Time,
		Status:      string(domain.InitialStatus()),
		CreatedAt:   timezone.Now(),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.BookingsCreated.Inc()

	uc.audit.Dispatch(audit.Event{
		Actor:    "public",
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
