package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberpro/barberpro-api/internal/audit"
	"github.com/barberpro/barberpro-api/internal/httperr"
	"github.com/barberpro/barberpro-api/internal/httpresp"
	"github.com/barberpro/barberpro-api/internal/middleware"
	"github.com/barberpro/barberpro-api/internal/models"
)

type SettingsHandler struct {
	db         *gorm.DB
	dispatcher *audit.Dispatcher
}

func NewSettingsHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *SettingsHandler {
	return &SettingsHandler{db: db, dispatcher: dispatcher}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	var settings models.SiteSettings
	if err := h.db.First(&settings, 1).Error; err != nil {
		httperr.NotFound(c, "settings_not_found", "Configurações não encontradas.")
		return
	}

	httpresp.OK(c, settings)
}

// Update substitui o registro inteiro: o admin sempre salva o formulário
// completo de branding.
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings models.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	settings.ID = 1

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Erro ao salvar configurações.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		Actor:  c.GetString(middleware.ContextAdminEmail),
		Action: "settings_updated",
		Entity: "site_settings",
	})

	httpresp.OK(c, settings)
}
