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

type ServiceHandler struct {
	db         *gorm.DB
	dispatcher *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, dispatcher: dispatcher}
}

type ServiceRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	Duration       int      `json:"duration" binding:"required,gt=0"`
	Price          float64  `json:"price" binding:"gte=0"`
	AvailableTimes []string `json:"available_times"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc := models.Service{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		DurationMin:    req.Duration,
		Price:          req.Price,
		AvailableTimes: req.AvailableTimes,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextAdminEmail),
		Action:   "service_created",
		Entity:   "service",
		EntityID: svc.ID,
	})

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.Where("id = ?", id).First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.DurationMin = req.Duration
	svc.Price = req.Price
	svc.AvailableTimes = req.AvailableTimes

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextAdminEmail),
		Action:   "service_updated",
		Entity:   "service",
		EntityID: svc.ID,
	})

	httpresp.OK(c, svc)
}

// Delete não limpa referências: agendamentos antigos do serviço passam a
// renderizar "N/A" no painel.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	result := h.db.Where("id = ?", id).Delete(&models.Service{})
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao excluir serviço.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextAdminEmail),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
