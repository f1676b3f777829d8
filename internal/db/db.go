package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Nomes dos índices únicos. O repositório usa esses nomes para traduzir
// violações de unicidade em erros de domínio.
const (
	IndexActiveSlot      = "ux_appointments_active_slot"
	IndexAppointmentCode = "ux_appointments_code"
	IndexActiveTemplate  = "ux_weekly_templates_active"
	IndexPhysicianCRM    = "ux_physicians_crm"
	IndexPatientCPF      = "ux_patients_cpf"
)

func Open(cfg *config.Config) (*gorm.DB, error) {
	// Sem FKs: excluir um médico mantém o histórico de consultas.
	gormCfg := &gorm.Config{
		PrepareStmt:                              true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
	if cfg.IsProd() {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Migrate cria as tabelas e os índices parciais que o AutoMigrate não
// sabe expressar.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.APIKey{},
		&models.Physician{},
		&models.Patient{},
		&models.WeeklyTemplate{},
		&models.ScheduleBlock{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ` + IndexActiveSlot + `
		    ON appointments (physician_id, appointment_date, appointment_time)
		    WHERE status <> 'cancelled'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ` + IndexActiveTemplate + `
		    ON weekly_templates (physician_id, weekday)
		    WHERE active`,
		`CREATE INDEX IF NOT EXISTS ix_appointments_physician_date
		    ON appointments (physician_id, appointment_date)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}
