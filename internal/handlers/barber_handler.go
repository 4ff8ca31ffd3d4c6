package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barberpro/barberpro-api/internal/audit"
	"github.com/barberpro/barberpro-api/internal/httperr"
	"github.com/barberpro/barberpro-api/internal/httpresp"
	"github.com/barberpro/barberpro-api/internal/middleware"
	"github.com/barberpro/barberpro-api/internal/models"
)

type BarberHandler struct {
	db         *gorm.DB
	dispatcher *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, dispatcher: dispatcher}
}

type BarberRequest struct {
	Name       string   `json:"name" binding:"required"`
	Specialty  string   `json:"specialty"`
	Avatar     string   `json:"avatar"`
	Available  *bool    `json:"available"`
	ServiceIDs []string `json:"service_ids"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	barber := models.Barber{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Specialty:  req.Specialty,
		Avatar:     req.Avatar,
		Available:  available,
		ServiceIDs: req.ServiceIDs,
		Rating:     5.0,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextAdminEmail),
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: barber.ID,
	})

	httpresp.Created(c, barber)
}

// Update preserva rating e total de avaliações: só a ingestão de reviews
// mexe nesses campos.
func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.Where("id = ?", id).First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	barber.Name = req.Name
	barber.Specialty = req.Specialty
	barber.Avatar = req.Avatar
	barber.ServiceIDs = req.ServiceIDs
	if req.Available != nil {
		barber.Available = *req.Available
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextAdminEmail),
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: barber.ID,
	})

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	result := h.db.Where("id = ?", id).Delete(&models.Barber{})
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao excluir barbeiro.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextAdminEmail),
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
