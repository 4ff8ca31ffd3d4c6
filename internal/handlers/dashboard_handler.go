package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barberpro/barberpro-api/internal/domain/booking"
	"github.com/barberpro/barberpro-api/internal/httperr"
	"github.com/barberpro/barberpro-api/internal/models"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Get devolve a série mensal acumulada e os contadores rápidos que o
// painel mostra no topo.
func (h *DashboardHandler) Get(c *gin.Context) {
	var stats []models.DashboardStat
	if err := h.db.
		Order("year ASC, month ASC").
		Find(&stats).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro ao carregar estatísticas.")
		return
	}

	var pending, confirmed, completed int64
	h.db.Model(&models.Appointment{}).
		Where("status = ?", string(domain.StatusPending)).Count(&pending)
	h.db.Model(&models.Appointment{}).
		Where("status = ?", string(domain.StatusConfirmed)).Count(&confirmed)
	h.db.Model(&models.Appointment{}).
		Where("status = ?", string(domain.StatusCompleted)).Count(&completed)

	c.JSON(http.StatusOK, gin.H{
		"monthly": stats,
		"counters": gin.H{
			"pending":   pending,
			"confirmed": confirmed,
			"completed": completed,
		},
	})
}
