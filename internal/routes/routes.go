package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberpro/barberpro-api/internal/audit"
	"github.com/barberpro/barberpro-api/internal/auth"
	"github.com/barberpro/barberpro-api/internal/config"
	"github.com/barberpro/barberpro-api/internal/handlers"
	infraRepo "github.com/barberpro/barberpro-api/internal/infra/repository"
	"github.com/barberpro/barberpro-api/internal/metrics"
	"github.com/barberpro/barberpro-api/internal/middleware"
	ucAppointment "github.com/barberpro/barberpro-api/internal/usecase/appointment"
	ucReview "github.com/barberpro/barberpro-api/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	tokenStore := auth.NewRedisTokenStore(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
	)

	availabilityUC := ucAppointment.NewGetAvailability(bookingRepo)

	setStatusUC := ucAppointment.NewSetStatus(
		bookingRepo,
		auditDispatcher,
	)

	createReviewUC := ucReview.NewCreateReview(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, tokenStore)

	publicHandler := handlers.NewPublicHandler(
		db,
		createAppointmentUC,
		availabilityUC,
		createReviewUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(db, setStatusUC, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	settingsHandler := handlers.NewSettingsHandler(db, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// OBSERVABILIDADE
	// ======================================================
	r.GET("/metrics", metrics.Handler())

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (site de agendamento)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/settings", publicHandler.GetSettings)
			publicAPI.GET("/availability", publicHandler.GetAvailability)
			publicAPI.GET("/stats", publicHandler.GetStats)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			publicAPI.POST("/reviews", publicHandler.CreateReview)
		}

		// ------------------------------
		// AUTH (admin)
		// ------------------------------
		api.POST("/auth/check-admin-exists", authHandler.CheckAdminExists)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/verify-email", authHandler.VerifyEmail)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// API PRIVADA (painel admin)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/appointments", appointmentHandler.List)
			admin.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id", barberHandler.Update)
			admin.DELETE("/barbers/:id", barberHandler.Delete)

			admin.GET("/settings", settingsHandler.Get)
			admin.PUT("/settings", settingsHandler.Update)

			admin.GET("/dashboard", dashboardHandler.Get)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
