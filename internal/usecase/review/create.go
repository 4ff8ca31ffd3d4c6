package review

import (
	"context"
	"math"

	"github.com/google/uuid"

	domain "github.com/barberpro/barberpro-api/internal/domain/booking"
	"github.com/barberpro/barberpro-api/internal/httperr"
	"github.com/barberpro/barberpro-api/internal/models"
	"github.com/barberpro/barberpro-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateReviewInput struct {
	AppointmentID       string
	ClientName          string
	EstablishmentRating int
	BarberRating        int
	Comment             string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReview struct {
	repo domain.Repository
}

func NewCreateReview(repo domain.Repository) *CreateReview {
	return &CreateReview{repo: repo}
}

// Execute registra a avaliação feita logo após a conclusão do corte.
// Uma avaliação por agendamento, imutável depois de criada.
func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.EstablishmentRating < 1 || in.EstablishmentRating > 5 ||
		in.BarberRating < 1 || in.BarberRating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if ap.Status != string(domain.StatusCompleted) {
		return nil, httperr.ErrBusiness("appointment_not_completed")
	}

	if existing, err := uc.repo.GetReviewByAppointment(ctx, ap.ID); err == nil && existing != nil {
		return nil, httperr.ErrBusiness("already_reviewed")
	}

	rv := &models.Review{
		ID:                  uuid.NewString(),
		AppointmentID:       ap.ID,
		ClientName:          in.ClientName,
		BarberID:            ap.BarberID,
		EstablishmentRating: in.EstablishmentRating,
		BarberRating:        in.BarberRating,
		Comment:             in.Comment,
		CreatedAt:           timezone.Now(),
	}

	if err := uc.repo.CreateReview(ctx, rv); err != nil {
		return nil, err
	}

	// Barbeiro apagado deixa a avaliação órfã, sem erro (renderiza N/A)
	if barber, err := uc.repo.GetBarber(ctx, ap.BarberID); err == nil {
		applyRating(barber, in.BarberRating)
		if err := uc.repo.UpdateBarber(ctx, barber); err != nil {
			return nil, err
		}
	}

	return rv, nil
}

// applyRating incorpora a nova nota na média corrente do barbeiro,
// arredondada a uma casa decimal.
func applyRating(b *models.Barber, rating int) {
	total := b.Rating*float64(b.TotalRatings) + float64(rating)
	b.TotalRatings++
	b.Rating = math.Round(total/float64(b.TotalRatings)*10) / 10
}
