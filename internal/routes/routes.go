package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberflow/barberflow-api/internal/audit"
	"github.com/barberflow/barberflow-api/internal/auth"
	"github.com/barberflow/barberflow-api/internal/config"
	"github.com/barberflow/barberflow-api/internal/handlers"
	infraRepo "github.com/barberflow/barberflow-api/internal/infra/repository"
	"github.com/barberflow/barberflow-api/internal/middleware"
	"github.com/barberflow/barberflow-api/internal/storage"
	ucAppointment "github.com/barberflow/barberflow-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	professionalRepo := infraRepo.NewProfessionalGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	var uploader *storage.Uploader
	if cfg.StorageEnabled() {
		uploader = storage.NewUploader(cfg.Storage)
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)
	publicHandler := handlers.NewPublicHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db, professionalRepo, uploader)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		transitionAppointmentUC,
		listAppointmentsByDateUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PUBLIC (storefront reads + auth)
	// ======================================================
	r.GET("/services/:slug", publicHandler.ListServices)
	r.GET("/barbers/:slug", publicHandler.ListProfessionals)

	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/register", authHandler.Register)

	// ======================================================
	// PRIVATE (bearer token)
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(tokens))
	{
		secured.GET("/me", meHandler.GetMe)

		secured.GET("/services", serviceHandler.List)
		secured.POST("/services", serviceHandler.Create)
		secured.PUT("/services/:id", serviceHandler.Update)
		secured.DELETE("/services/:id", serviceHandler.Delete)

		secured.GET("/customers", customerHandler.List)
		secured.POST("/customers", customerHandler.Create)
		secured.PUT("/customers/:id", customerHandler.Update)
		secured.DELETE("/customers/:id", customerHandler.Delete)

		secured.GET("/professionals", professionalHandler.List)
		secured.POST("/professionals", professionalHandler.Create)
		secured.PUT("/professionals/:id", professionalHandler.Update)
		secured.DELETE("/professionals/:id", professionalHandler.Delete)

		secured.GET("/professionals/:id/schedule", professionalHandler.GetSchedule)
		secured.PUT("/professionals/:id/schedule", professionalHandler.UpdateSchedule)
		secured.GET("/professionals/:id/services", professionalHandler.GetServiceAssignments)
		secured.PUT("/professionals/:id/services", professionalHandler.UpdateServiceAssignments)
		secured.POST("/professionals/:id/avatar", professionalHandler.UploadAvatar)

		secured.GET("/appointments", appointmentHandler.ListByDate)
		secured.POST("/appointments", appointmentHandler.Create)
		secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

		secured.GET("/audit-logs", auditLogsHandler.List)
	}
}
