package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/apikey"
	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/storage"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/availability"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/schedule"
)

// Infra reúne os singletons criados no main. Redis e Photos podem ser nil.
type Infra struct {
	Log    zerolog.Logger
	Audit  *audit.Dispatcher
	Locker lock.Locker
	Redis  *redis.Client
	Photos storage.PhotoStore
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(infra.Log),
		middleware.Recovery(infra.Log),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)
	keyService := apikey.NewService(apikey.NewGormStore(db), cfg.StaticAPIKey, infra.Log)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	freeSlotsUC := ucAvailability.NewGetFreeSlots(schedulingRepo)
	availableDatesUC := ucAvailability.NewGetAvailableDates(
		schedulingRepo,
		cfg.Booking.AvailabilityMaxDays,
	)

	bookUC := ucAppointment.NewBookAppointment(
		schedulingRepo,
		infra.Locker,
		infra.Audit,
		cfg.Booking.CodeMaxAttempts,
	)
	updateUC := ucAppointment.NewUpdateAppointment(schedulingRepo, infra.Audit)
	cancelUC := ucAppointment.NewCancelAppointment(schedulingRepo, infra.Audit)
	deleteUC := ucAppointment.NewDeleteAppointment(schedulingRepo, infra.Audit)
	listUC := ucAppointment.NewListAppointments(schedulingRepo, cfg.Timezone)

	templateService := schedule.NewTemplateService(schedulingRepo, infra.Audit)
	blockService := schedule.NewBlockService(schedulingRepo, infra.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(db, infra.Redis)
	authHandler := handlers.NewAuthHandler(db, cfg, infra.Log)
	meHandler := handlers.NewMeHandler(db, infra.Log)

	physicianHandler := handlers.NewPhysicianHandler(db, infra.Photos, infra.Log)
	patientHandler := handlers.NewPatientHandler(db, infra.Log)

	agendaHandler := handlers.NewAgendaHandler(
		freeSlotsUC,
		availableDatesUC,
		bookUC,
		updateUC,
		cancelUC,
		deleteUC,
		listUC,
		infra.Log,
	)
	templateHandler := handlers.NewTemplateHandler(templateService, infra.Log)
	blockHandler := handlers.NewBlockHandler(blockService, infra.Log)

	apiKeyHandler := handlers.NewAPIKeyHandler(keyService, infra.Audit, infra.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, infra.Log)

	r.GET("/health", healthHandler.Check)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret, keyService, infra.Log))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PUT("/auth/senha", middleware.RequireUser(), authHandler.ChangePassword)

			medicos := secured.Group("/medicos")
			{
				medicos.GET("", physicianHandler.List)
				medicos.GET("/:id", physicianHandler.Get)
				medicos.POST("", physicianHandler.Create)
				medicos.PUT("/:id", physicianHandler.Update)
				medicos.DELETE("/:id", physicianHandler.Delete)
				medicos.POST("/:id/foto", physicianHandler.UploadPhoto)
			}

			pacientes := secured.Group("/pacientes")
			{
				pacientes.GET("", patientHandler.List)
				pacientes.GET("/search", patientHandler.Search)
				pacientes.GET("/:id", patientHandler.Get)
				pacientes.POST("", patientHandler.Create)
				pacientes.PUT("/:id", patientHandler.Update)
				pacientes.DELETE("/:id", patientHandler.Delete)
			}

			// ------------------------------
			// AGENDA
			// ------------------------------
			RegisterAgendaRoutes(secured, agendaHandler, templateHandler, blockHandler)

			chaves := secured.Group("/chaves", middleware.RequireUser())
			{
				chaves.GET("", apiKeyHandler.List)
				chaves.POST("", apiKeyHandler.Create)
				chaves.DELETE("/:id", apiKeyHandler.Revoke)
			}

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

// RegisterAgendaRoutes monta consultas, expedientes e bloqueios sob g.
func RegisterAgendaRoutes(
	g *gin.RouterGroup,
	agenda *handlers.AgendaHandler,
	templates *handlers.TemplateHandler,
	blocks *handlers.BlockHandler,
) {
	agendaGroup := g.Group("/agenda")
	{
		agendaGroup.GET("/horarios-livres", agenda.FreeSlots)
		agendaGroup.GET("/datas-disponiveis", agenda.AvailableDates)
		agendaGroup.GET("/hoje", agenda.Today)
		agendaGroup.GET("", agenda.List)
		agendaGroup.POST("", agenda.Create)
		agendaGroup.PUT("/:id", agenda.Update)
		agendaGroup.PATCH("/:id/cancelar", agenda.Cancel)
		agendaGroup.DELETE("/:id", agenda.Delete)
	}

	templatesGroup := g.Group("/agenda-medicos")
	{
		templatesGroup.GET("", templates.ListActive)
		templatesGroup.GET("/:medico_id", templates.ListByPhysician)
		templatesGroup.POST("", templates.Create)
		templatesGroup.PUT("/:id", templates.Update)
		templatesGroup.PATCH("/:id/desativar", templates.Deactivate)
		templatesGroup.DELETE("/:id", templates.Delete)
	}

	blocksGroup := g.Group("/bloqueios")
	{
		blocksGroup.GET("", blocks.List)
		blocksGroup.POST("", blocks.Create)
		blocksGroup.PUT("/:id", blocks.Update)
		blocksGroup.DELETE("/:id", blocks.Delete)
	}
}
