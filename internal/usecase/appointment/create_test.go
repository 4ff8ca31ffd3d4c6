package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberpro/barberpro-api/internal/audit"
	domain "github.com/barberpro/barberpro-api/internal/domain/booking"
	"github.com/barberpro/barberpro-api/internal/httperr"
	"github.com/barberpro/barberpro-api/internal/models"
)

func seedCatalog(repo *fakeRepo) {
	repo.services["svc-1"] = &models.Service{
		ID:          "svc-1",
		Name:        "Corte Tradicional",
		DurationMin: 30,
		Price:       45,
	}
	repo.barbers["barber-1"] = &models.Barber{
		ID:        "barber-1",
		Name:      "Carlos Silva",
		Available: true,
	}
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientName:  "João Pereira",
		ClientPhone: "(11) 98765-4321",
		ClientEmail: "joao@example.com",
		ServiceID:   "svc-1",
		BarberID:    "barber-1",
		Date:        "2025-06-10",
		Time:        "09:00",
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	uc := NewCreateAppointment(repo, audit.NopRecorder{})

	ap, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, "2025-06-10", ap.Date)
	assert.Equal(t, "09:00", ap.Time)
	assert.Equal(t, "11987654321", ap.ClientPhone)
	assert.False(t, ap.CreatedAt.IsZero())
	assert.Len(t, repo.appointments, 1)
}

func TestCreateAppointment_ConflictOnSecondAttempt(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	uc := NewCreateAppointment(repo, audit.NopRecorder{})

	// Dois clientes leram a mesma disponibilidade; o primeiro confirma
	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	second := validInput()
	second.ClientName = "Pedro Souza"
	second.ClientPhone = "11912345678"

	_, err = uc.Execute(context.Background(), second)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
	assert.Len(t, repo.appointments, 1)
}

func TestCreateAppointment_ConflictLaw(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)

	repo.appointments = append(repo.appointments, &models.Appointment{
		ID:       "ap-existente",
		BarberID: "barber-1",
		Date:     "2025-06-10",
		Time:     "14:30",
		Status:   string(domain.StatusConfirmed),
	})

	availability := NewGetAvailability(repo)
	slots, err := availability.Execute(context.Background(), domain.AvailabilityInput{
		Date:     "2025-06-10",
		BarberID: "barber-1",
	})
	require.NoError(t, err)
	require.NotContains(t, slots, "14:30")

	// Se o resolver exclui o horário, o guard obrigatoriamente rejeita
	uc := NewCreateAppointment(repo, audit.NopRecorder{})
	in := validInput()
	in.Time = "14:30"

	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateAppointment_RejectedSlotIsFree(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)

	repo.appointments = append(repo.appointments, &models.Appointment{
		ID:       "ap-rejeitado",
		BarberID: "barber-1",
		Date:     "2025-06-10",
		Time:     "09:00",
		Status:   string(domain.StatusRejected),
	})

	uc := NewCreateAppointment(repo, audit.NopRecorder{})

	_, err := uc.Execute(context.Background(), validInput())
	assert.NoError(t, err)
}

func TestCreateAppointment_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateAppointmentInput)
		errCode string
	}{
		{
			name:    "invalid date",
			mutate:  func(in *CreateAppointmentInput) { in.Date = "10/06/2025" },
			errCode: "invalid_date_or_time",
		},
		{
			name:    "invalid time",
			mutate:  func(in *CreateAppointmentInput) { in.Time = "9h" },
			errCode: "invalid_date_or_time",
		},
		{
			name:    "invalid phone",
			mutate:  func(in *CreateAppointmentInput) { in.ClientPhone = "123" },
			errCode: "invalid_phone",
		},
		{
			name:    "unknown service",
			mutate:  func(in *CreateAppointmentInput) { in.ServiceID = "nao-existe" },
			errCode: "service_not_found",
		},
		{
			name:    "unknown barber",
			mutate:  func(in *CreateAppointmentInput) { in.BarberID = "nao-existe" },
			errCode: "barber_not_found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			seedCatalog(repo)
			uc := NewCreateAppointment(repo, audit.NopRecorder{})

			in := validInput()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tc.errCode), "expected %s, got %v", tc.errCode, err)
			assert.Empty(t, repo.appointments)
		})
	}
}

func TestCreateAppointment_BarberUnavailable(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	repo.barbers["barber-1"].Available = false

	uc := NewCreateAppointment(repo, audit.NopRecorder{})

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "barber_unavailable"))
}
