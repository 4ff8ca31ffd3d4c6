package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberpro/barberpro-api/internal/domain/booking"
	"github.com/barberpro/barberpro-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service / Barber
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) UpdateBarber(
	ctx context.Context,
	barber *models.Barber,
) error {
	return r.db.WithContext(ctx).Save(barber).Error
}

// --------------------------------------------------
// Availability / conflict
// --------------------------------------------------

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	date string,
	barberID string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"date = ? AND barber_id = ? AND status <> 'rejected'",
			date, barberID,
		).
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

func (r *BookingGormRepository) CountActiveAt(
	ctx context.Context,
	date string,
	timeStr string,
	barberID string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"date = ? AND time = ? AND barber_id = ? AND status <> 'rejected'",
			date, timeStr, barberID,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Review
// --------------------------------------------------

func (r *BookingGormRepository) GetReviewByAppointment(
	ctx context.Context,
	appointmentID string,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&rv).Error; err != nil {
		return nil, err
	}

	return &rv, nil
}

func (r *BookingGormRepository) CreateReview(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (r *BookingGormRepository) AddCompletedCut(
	ctx context.Context,
	year int,
	month int,
	revenue float64,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stat models.DashboardStat
		err := tx.
			Where("year = ? AND month = ?", year, month).
			First(&stat).Error

		if err == gorm.ErrRecordNotFound {
			stat = models.DashboardStat{Year: year, Month: month}
		} else if err != nil {
			return err
		}

		stat.TotalCuts++
		stat.TotalRevenue += revenue

		return tx.Save(&stat).Error
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
