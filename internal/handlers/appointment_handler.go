package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberpro/barberpro-api/internal/audit"
	"github.com/barberpro/barberpro-api/internal/httperr"
	"github.com/barberpro/barberpro-api/internal/httpresp"
	"github.com/barberpro/barberpro-api/internal/middleware"
	"github.com/barberpro/barberpro-api/internal/models"
	ucAppointment "github.com/barberpro/barberpro-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	db         *gorm.DB
	setStatus  *ucAppointment.SetStatus
	dispatcher *audit.Dispatcher
}

func NewAppointmentHandler(
	db *gorm.DB,
	setStatus *ucAppointment.SetStatus,
	dispatcher *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:         db,
		setStatus:  setStatus,
		dispatcher: dispatcher,
	}
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List devolve todos os agendamentos, opcionalmente filtrados por data
// e/ou status, mais recentes primeiro.
func (h *AppointmentHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Appointment{})

	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := q.Order("created_at DESC").Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), ucAppointment.SetStatusInput{
		AppointmentID: c.Param("id"),
		Status:        req.Status,
		Actor:         c.GetString(middleware.ContextAdminEmail),
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
		case err == gorm.ErrRecordNotFound:
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// Delete remove o registro. A receita já contabilizada de um agendamento
// concluído não é estornada.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	result := h.db.Where("id = ?", id).Delete(&models.Appointment{})
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextAdminEmail),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
