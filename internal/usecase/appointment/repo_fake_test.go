package appointment

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/barberpro/barberpro-api/internal/domain/booking"
	"github.com/barberpro/barberpro-api/internal/models"
)

// fakeRepo implementa domain.Repository em memória para os testes,
// espelhando a semântica das queries do repositório gorm.
type fakeRepo struct {
	services     map[string]*models.Service
	barbers      map[string]*models.Barber
	appointments []*models.Appointment
	reviews      map[string]*models.Review
	stats        map[[2]int]*models.DashboardStat
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: make(map[string]*models.Service),
		barbers:  make(map[string]*models.Barber),
		reviews:  make(map[string]*models.Review),
		stats:    make(map[[2]int]*models.DashboardStat),
	}
}

func (r *fakeRepo) GetService(_ context.Context, id string) (*models.Service, error) {
	if svc, ok := r.services[id]; ok {
		return svc, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	if b, ok := r.barbers[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateBarber(_ context.Context, barber *models.Barber) error {
	r.barbers[barber.ID] = barber
	return nil
}

func (r *fakeRepo) ListBookedTimes(_ context.Context, date, barberID string) ([]string, error) {
	var times []string
	for _, ap := range r.appointments {
		if ap.Date == date && ap.BarberID == barberID && domain.Status(ap.Status).Blocks() {
			times = append(times, ap.Time)
		}
	}
	return times, nil
}

func (r *fakeRepo) CountActiveAt(_ context.Context, date, timeStr, barberID string) (int64, error) {
	var count int64
	for _, ap := range r.appointments {
		if ap.Date == date && ap.Time == timeStr && ap.BarberID == barberID &&
			domain.Status(ap.Status).Blocks() {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.appointments = append(r.appointments, ap)
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	for _, ap := range r.appointments {
		if ap.ID == id {
			return ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			r.appointments[i] = ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetReviewByAppointment(_ context.Context, appointmentID string) (*models.Review, error) {
	if rv, ok := r.reviews[appointmentID]; ok {
		return rv, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) CreateReview(_ context.Context, review *models.Review) error {
	r.reviews[review.AppointmentID] = review
	return nil
}

func (r *fakeRepo) AddCompletedCut(_ context.Context, year, month int, revenue float64) error {
	key := [2]int{year, month}
	stat, ok := r.stats[key]
	if !ok {
		stat = &models.DashboardStat{Year: year, Month: month}
		r.stats[key] = stat
	}
	stat.TotalCuts++
	stat.TotalRevenue += revenue
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)
