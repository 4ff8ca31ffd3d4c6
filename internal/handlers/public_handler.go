package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barberpro/barberpro-api/internal/domain/booking"
	"github.com/barberpro/barberpro-api/internal/httperr"
	"github.com/barberpro/barberpro-api/internal/httpresp"
	"github.com/barberpro/barberpro-api/internal/models"
	ucAppointment "github.com/barberpro/barberpro-api/internal/usecase/appointment"
	ucReview "github.com/barberpro/barberpro-api/internal/usecase/review"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	createUC     *ucAppointment.CreateAppointment
	availability *ucAppointment.GetAvailability
	reviewUC     *ucReview.CreateReview
}

func NewPublicHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	availability *ucAppointment.GetAvailability,
	reviewUC *ucReview.CreateReview,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		createUC:     createUC,
		availability: availability,
		reviewUC:     reviewUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   string `json:"service_id" binding:"required"`
	BarberID    string `json:"barber_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
}

type CreateReviewRequest struct {
	AppointmentID       string `json:"appointment_id" binding:"required"`
	ClientName          string `json:"client_name" binding:"required"`
	EstablishmentRating int    `json:"establishment_rating" binding:"required,min=1,max=5"`
	BarberRating        int    `json:"barber_rating" binding:"required,min=1,max=5"`
	Comment             string `json:"comment"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("created_at ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("created_at ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *PublicHandler) GetSettings(c *gin.Context) {
	var settings models.SiteSettings
	if err := h.db.First(&settings, 1).Error; err != nil {
		httperr.NotFound(c, "settings_not_found", "Configurações não encontradas.")
		return
	}

	httpresp.OK(c, settings)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	barberID := c.Query("barber_id")
	serviceID := c.Query("service_id")

	if date == "" || barberID == "" {
		httperr.BadRequest(c, "missing_params", "Data e barbeiro obrigatórios.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:      date,
		BarberID:  barberID,
		ServiceID: serviceID,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_resolve_availability", "Erro ao calcular horários.")
		return
	}

	httpresp.List(c, slots)
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceID:   req.ServiceID,
		BarberID:    req.BarberID,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_unavailable"):
			// O cliente precisa recarregar a disponibilidade e escolher
			// outro horário
			httperr.Conflict(c, "slot_unavailable", "Este horário acabou de ser reservado. Escolha outro horário.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.BadRequest(c, "barber_not_found", "Barbeiro inválido.")
		case httperr.IsBusiness(err, "barber_unavailable"):
			httperr.BadRequest(c, "barber_unavailable", "Barbeiro indisponível no momento.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou horário inválidos.")
		case httperr.IsBusiness(err, "invalid_phone"):
			httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	httpresp.Created(c, ap)
}

////////////////////////////////////////////////////////
// REVIEWS
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rv, err := h.reviewUC.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		AppointmentID:       req.AppointmentID,
		ClientName:          req.ClientName,
		EstablishmentRating: req.EstablishmentRating,
		BarberRating:        req.BarberRating,
		Comment:             req.Comment,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "appointment_not_completed"):
			httperr.BadRequest(c, "appointment_not_completed", "Só é possível avaliar cortes concluídos.")
		case httperr.IsBusiness(err, "already_reviewed"):
			httperr.Conflict(c, "already_reviewed", "Este agendamento já foi avaliado.")
		case httperr.IsBusiness(err, "invalid_rating"):
			httperr.BadRequest(c, "invalid_rating", "Avaliação deve ser de 1 a 5.")
		default:
			httperr.Internal(c, "failed_to_create_review", "Erro ao registrar avaliação.")
		}
		return
	}

	httpresp.Created(c, rv)
}

////////////////////////////////////////////////////////
// PUBLIC COUNTERS
////////////////////////////////////////////////////////

func (h *PublicHandler) GetStats(c *gin.Context) {
	var totalCuts int64
	if err := h.db.Model(&models.Appointment{}).
		Where("status = ?", string(domain.StatusCompleted)).
		Count(&totalCuts).Error; err != nil {
		httperr.Internal(c, "failed_to_count_cuts", "Erro ao contar cortes.")
		return
	}

	// Nota padrão 4.9 enquanto não houver avaliações
	rating := 4.9
	var reviewCount int64
	h.db.Model(&models.Review{}).Count(&reviewCount)
	if reviewCount > 0 {
		var sum float64
		h.db.Model(&models.Review{}).
			Select("COALESCE(SUM(establishment_rating), 0)").
			Scan(&sum)
		rating = math.Round(sum/float64(reviewCount)*10) / 10
	}

	c.JSON(http.StatusOK, gin.H{
		"total_cuts":           totalCuts,
		"satisfied_clients":    2000 + (totalCuts/100)*100,
		"establishment_rating": rating,
	})
}
