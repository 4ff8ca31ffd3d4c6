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
	"github.com/barberpro/barberpro-api/internal/timezone"
)

func seedPendingAppointment(repo *fakeRepo) *models.Appointment {
	repo.services["svc-1"] = &models.Service{
		ID:    "svc-1",
		Name:  "Corte Tradicional",
		Price: 45,
	}
	ap := &models.Appointment{
		ID:        "ap-1",
		ServiceID: "svc-1",
		BarberID:  "barber-1",
		Date:      "2025-06-10",
		Time:      "09:00",
		Status:    string(domain.StatusPending),
	}
	repo.appointments = append(repo.appointments, ap)
	return ap
}

func currentStat(repo *fakeRepo) *models.DashboardStat {
	year, month := timezone.CurrentYearMonth(timezone.Now())
	return repo.stats[[2]int{year, month}]
}

func TestSetStatus_CompleteFeedsDashboard(t *testing.T) {
	repo := newFakeRepo()
	seedPendingAppointment(repo)
	uc := NewSetStatus(repo, audit.NopRecorder{})

	ap, err := uc.Execute(context.Background(), SetStatusInput{
		AppointmentID: "ap-1",
		Status:        "completed",
		Actor:         "admin@barberpro.com",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	stat := currentStat(repo)
	require.NotNil(t, stat)
	assert.Equal(t, 1, stat.TotalCuts)
	assert.Equal(t, 45.0, stat.TotalRevenue)
}

func TestSetStatus_NoDoubleCount(t *testing.T) {
	repo := newFakeRepo()
	seedPendingAppointment(repo)
	uc := NewSetStatus(repo, audit.NopRecorder{})

	for _, st := range []string{"completed", "pending", "completed"} {
		_, err := uc.Execute(context.Background(), SetStatusInput{
			AppointmentID: "ap-1",
			Status:        st,
		})
		require.NoError(t, err)
	}

	stat := currentStat(repo)
	require.NotNil(t, stat)
	assert.Equal(t, 1, stat.TotalCuts)
	assert.Equal(t, 45.0, stat.TotalRevenue)
}

func TestSetStatus_MonotonicCounters(t *testing.T) {
	repo := newFakeRepo()
	seedPendingAppointment(repo)
	repo.appointments = append(repo.appointments, &models.Appointment{
		ID:        "ap-2",
		ServiceID: "svc-1",
		BarberID:  "barber-1",
		Date:      "2025-06-10",
		Time:      "10:00",
		Status:    string(domain.StatusPending),
	})

	uc := NewSetStatus(repo, audit.NopRecorder{})

	steps := []SetStatusInput{
		{AppointmentID: "ap-1", Status: "confirmed"},
		{AppointmentID: "ap-1", Status: "completed"},
		{AppointmentID: "ap-2", Status: "rejected"},
		{AppointmentID: "ap-2", Status: "completed"},
		{AppointmentID: "ap-1", Status: "rejected"},
	}

	lastCuts, lastRevenue := 0, 0.0
	for _, step := range steps {
		_, err := uc.Execute(context.Background(), step)
		require.NoError(t, err)

		if stat := currentStat(repo); stat != nil {
			assert.GreaterOrEqual(t, stat.TotalCuts, lastCuts)
			assert.GreaterOrEqual(t, stat.TotalRevenue, lastRevenue)
			lastCuts, lastRevenue = stat.TotalCuts, stat.TotalRevenue
		}
	}

	assert.Equal(t, 2, lastCuts)
	assert.Equal(t, 90.0, lastRevenue)
}

func TestSetStatus_MissingServiceCountsZeroRevenue(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPendingAppointment(repo)
	ap.ServiceID = "servico-apagado"

	uc := NewSetStatus(repo, audit.NopRecorder{})

	_, err := uc.Execute(context.Background(), SetStatusInput{
		AppointmentID: "ap-1",
		Status:        "completed",
	})
	require.NoError(t, err)

	stat := currentStat(repo)
	require.NotNil(t, stat)
	assert.Equal(t, 1, stat.TotalCuts)
	assert.Equal(t, 0.0, stat.TotalRevenue)
}

func TestSetStatus_RejectFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	seedPendingAppointment(repo)

	uc := NewSetStatus(repo, audit.NopRecorder{})
	_, err := uc.Execute(context.Background(), SetStatusInput{
		AppointmentID: "ap-1",
		Status:        "rejected",
	})
	require.NoError(t, err)

	availability := NewGetAvailability(repo)
	slots, err := availability.Execute(context.Background(), domain.AvailabilityInput{
		Date:     "2025-06-10",
		BarberID: "barber-1",
	})
	require.NoError(t, err)
	assert.Contains(t, slots, "09:00")
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	repo := newFakeRepo()
	seedPendingAppointment(repo)
	uc := NewSetStatus(repo, audit.NopRecorder{})

	_, err := uc.Execute(context.Background(), SetStatusInput{
		AppointmentID: "ap-1",
		Status:        "cancelado",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}
