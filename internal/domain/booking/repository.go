package booking

import (
	"context"

	"github.com/barberpro/barberpro-api/internal/models"
)

type Repository interface {
	// -------- Service / Barber --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	UpdateBarber(
		ctx context.Context,
		barber *models.Barber,
	) error

	// -------- Appointment (availability / conflict) --------
	ListBookedTimes(
		ctx context.Context,
		date string,
		barberID string,
	) ([]string, error)

	CountActiveAt(
		ctx context.Context,
		date string,
		time string,
		barberID string,
	) (int64, error)

	// -------- Appointment (create / state change) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Review --------
	GetReviewByAppointment(
		ctx context.Context,
		appointmentID string,
	) (*models.Review, error)

	CreateReview(
		ctx context.Context,
		review *models.Review,
	) error

	// -------- Dashboard --------
	AddCompletedCut(
		ctx context.Context,
		year int,
		month int,
		revenue float64,
	) error
}
