package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VenturaVini/barbearia/internal/audit"
	"github.com/VenturaVini/barbearia/internal/cache"
	"github.com/VenturaVini/barbearia/internal/clock"
	"github.com/VenturaVini/barbearia/internal/config"
	"github.com/VenturaVini/barbearia/internal/handlers"
	infraRepo "github.com/VenturaVini/barbearia/internal/infra/repository"
	"github.com/VenturaVini/barbearia/internal/middleware"
	ucAppointment "github.com/VenturaVini/barbearia/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	slots *cache.AvailabilityCache,
) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	clk := clock.System()

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		auditDispatcher,
		slots,
	)

	rescheduleUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
		slots,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		slots,
		clk,
	)

	confirmUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		clk,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		slots,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	unavailableDayHandler := handlers.NewUnavailableDayHandler(db, cfg.Timezone)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC, cfg.Timezone)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, cfg.Timezone)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		bookUC,
		rescheduleUC,
		cancelUC,
		confirmUC,
		completeUC,
		clk,
		cfg.Timezone,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id/availability", availabilityHandler.Get)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/today", appointmentHandler.Today)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// BARBEIRO
			// ------------------------------
			barber := secured.Group("/")
			barber.Use(middleware.BarberOnly())
			{
				barber.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
				barber.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

				barber.GET("/me/unavailable-days", unavailableDayHandler.List)
				barber.POST("/me/unavailable-days", unavailableDayHandler.Create)
				barber.DELETE("/me/unavailable-days/:id", unavailableDayHandler.Delete)
			}

			// ------------------------------
			// STAFF
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.StaffOnly())
			{
				staff.POST("/services", serviceHandler.Create)
				staff.PATCH("/services/:id", serviceHandler.Update)
				staff.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
