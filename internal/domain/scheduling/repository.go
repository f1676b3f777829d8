package scheduling

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// AvailabilityReader é o lado de leitura usado pelo cálculo de horários.
// Datas são strings AAAA-MM-DD.
type AvailabilityReader interface {
	// -------- Dia único --------
	ActiveTemplate(ctx context.Context, physicianID uint, weekday int) (*models.WeeklyTemplate, error)
	BlocksOn(ctx context.Context, physicianID uint, date string) ([]models.ScheduleBlock, error)
	BookedTimes(ctx context.Context, physicianID uint, date string) ([]string, error)

	// -------- Período --------
	ActiveTemplates(ctx context.Context, physicianID uint) ([]models.WeeklyTemplate, error)
	BlocksBetween(ctx context.Context, physicianID uint, from, to string) ([]models.ScheduleBlock, error)
	BookedBetween(ctx context.Context, physicianID uint, from, to string) ([]models.Appointment, error)
}

type AppointmentFilter struct {
	DateFrom    string
	DateTo      string
	PhysicianID uint
	PatientID   uint
	Status      string
}

type AppointmentRepository interface {
	AvailabilityReader

	// -------- Referências --------
	PhysicianExists(ctx context.Context, id uint) (bool, error)
	PatientExists(ctx context.Context, id uint) (bool, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id uint) error
	ListAppointments(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error)
}

type TemplateRepository interface {
	PhysicianExists(ctx context.Context, id uint) (bool, error)
	ActiveTemplate(ctx context.Context, physicianID uint, weekday int) (*models.WeeklyTemplate, error)
	CreateTemplate(ctx context.Context, t *models.WeeklyTemplate) error
	GetTemplate(ctx context.Context, id uint) (*models.WeeklyTemplate, error)
	ListActiveTemplates(ctx context.Context) ([]models.WeeklyTemplate, error)
	ListTemplatesByPhysician(ctx context.Context, physicianID uint, includeInactive bool) ([]models.WeeklyTemplate, error)
	SaveTemplate(ctx context.Context, t *models.WeeklyTemplate) error
	DeleteTemplate(ctx context.Context, id uint) error
}

type BlockFilter struct {
	PhysicianID uint
	From        string
	To          string
}

type BlockRepository interface {
	PhysicianExists(ctx context.Context, id uint) (bool, error)
	CreateBlock(ctx context.Context, b *models.ScheduleBlock) error
	GetBlock(ctx context.Context, id uint) (*models.ScheduleBlock, error)
	ListBlocks(ctx context.Context, f BlockFilter) ([]models.ScheduleBlock, error)
	SaveBlock(ctx context.Context, b *models.ScheduleBlock) error
	DeleteBlock(ctx context.Context, id uint) error
}
