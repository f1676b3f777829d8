package main

import (
	"errors"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

type seedPhysician struct {
	physician models.Physician
	weekdays  []int
	start     string
	end       string
	lunch     bool
}

var physicians = []seedPhysician{
	{
		physician: models.Physician{Name: "Dr. Carlos Silva", CRM: "CRM-SP 123456", Specialty: "Cardiologia", Phone: "(11) 98765-4321", Email: "carlos.silva@clinica.com"},
		weekdays:  []int{1, 2, 3}, start: "08:00", end: "12:00",
	},
	{
		physician: models.Physician{Name: "Dra. Ana Paula Costa", CRM: "CRM-SP 234567", Specialty: "Dermatologia", Phone: "(11) 98765-4322", Email: "ana.costa@clinica.com"},
		weekdays:  []int{2, 4}, start: "14:00", end: "18:00",
	},
	{
		physician: models.Physician{Name: "Dr. Roberto Santos", CRM: "CRM-SP 345678", Specialty: "Ortopedia", Phone: "(11) 98765-4323", Email: "roberto.santos@clinica.com"},
		weekdays:  []int{1, 2, 3, 4, 5}, start: "09:00", end: "17:00",
	},
	{
		physician: models.Physician{Name: "Dra. Juliana Oliveira", CRM: "CRM-SP 456789", Specialty: "Pediatria", Phone: "(11) 98765-4324", Email: "juliana.oliveira@clinica.com"},
		weekdays:  []int{1, 3, 5}, start: "08:00", end: "14:00",
	},
	{
		physician: models.Physician{Name: "Dr. Fernando Lima", CRM: "CRM-SP 567890", Specialty: "Clínico Geral", Phone: "(11) 98765-4325", Email: "fernando.lima@clinica.com"},
		weekdays:  []int{1, 2, 3, 4, 5}, start: "08:00", end: "18:00", lunch: true,
	},
}

func main() {
	var (
		patients          int
		clearAppointments bool
	)

	rootCmd := &cobra.Command{
		Use:          "seed",
		Short:        "Popula o banco com dados de exemplo",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel, cfg.Env)

			db, err := dbpkg.Open(cfg)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}

			if clearAppointments {
				return clearAll(db, log)
			}

			today := timezone.Today(cfg.Timezone)
			return db.Transaction(func(tx *gorm.DB) error {
				if err := seedAdmin(tx, log); err != nil {
					return err
				}
				if err := seedPhysicians(tx, log, today); err != nil {
					return err
				}
				return seedPatients(tx, log, patients)
			})
		},
	}

	rootCmd.Flags().IntVar(&patients, "patients", 20, "quantidade de pacientes fictícios")
	rootCmd.Flags().BoolVar(&clearAppointments, "clear-appointments", false, "apaga todas as consultas e sai")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func seedAdmin(tx *gorm.DB, log zerolog.Logger) error {
	var user models.User
	err := tx.Where("username = ?", "admin").First(&user).Error
	if err == nil {
		log.Info().Msg("admin already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user = models.User{
		Username:     "admin",
		Name:         "Administrador",
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := tx.Create(&user).Error; err != nil {
		return err
	}

	log.Info().Msg("admin created (admin/admin123)")
	return nil
}

// seedPhysicians cria médicos e expedientes que ainda não existem. O
// clínico geral atende o dia todo com almoço bloqueado por um ano.
func seedPhysicians(tx *gorm.DB, log zerolog.Logger, today string) error {
	for _, sp := range physicians {
		p := sp.physician
		if err := tx.Where(models.Physician{CRM: p.CRM}).FirstOrCreate(&p).Error; err != nil {
			return err
		}

		for _, wd := range sp.weekdays {
			var count int64
			if err := tx.Model(&models.WeeklyTemplate{}).
				Where("physician_id = ? AND weekday = ? AND active = ?", p.ID, wd, true).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			weekday := wd
			tpl, err := domain.TemplateInput{
				PhysicianID: p.ID,
				Weekday:     &weekday,
				StartTime:   sp.start,
				EndTime:     sp.end,
			}.Build()
			if err != nil {
				return err
			}
			if err := tx.Create(&tpl).Error; err != nil {
				return err
			}
		}

		if sp.lunch {
			if err := seedLunchBlock(tx, p.ID, today); err != nil {
				return err
			}
		}

		log.Info().Str("medico", p.Name).Ints("dias", sp.weekdays).Msg("physician ready")
	}
	return nil
}

func seedLunchBlock(tx *gorm.DB, physicianID uint, today string) error {
	var count int64
	if err := tx.Model(&models.ScheduleBlock{}).
		Where("physician_id = ? AND reason = ?", physicianID, "Almoço").
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	from, err := domain.ParseDate("data_inicio", today)
	if err != nil {
		return err
	}
	start, end := "12:00", "14:00"

	block, err := domain.BlockInput{
		PhysicianID: physicianID,
		StartDate:   today,
		EndDate:     domain.FormatDate(from.AddDate(1, 0, 0)),
		StartTime:   &start,
		EndTime:     &end,
		Reason:      "Almoço",
	}.Build()
	if err != nil {
		return err
	}
	return tx.Create(&block).Error
}

func seedPatients(tx *gorm.DB, log zerolog.Logger, n int) error {
	created := 0
	for i := 0; i < n; i++ {
		birth := gofakeit.DateRange(
			time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2015, 12, 31, 0, 0, 0, 0, time.UTC),
		)

		p := models.Patient{
			Name:      gofakeit.Name(),
			CPF:       validators.CompleteCPF(gofakeit.Numerify("#########")),
			Phone:     gofakeit.Phone(),
			Email:     gofakeit.Email(),
			BirthDate: domain.FormatDate(birth),
			Address:   gofakeit.Street(),
		}

		res := tx.Where(models.Patient{CPF: p.CPF}).FirstOrCreate(&p)
		if res.Error != nil {
			return res.Error
		}
		created += int(res.RowsAffected)
	}

	log.Info().Int("pacientes", created).Msg("patients seeded")
	return nil
}

func clearAll(db *gorm.DB, log zerolog.Logger) error {
	res := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	log.Info().Int64("consultas", res.RowsAffected).Msg("appointments cleared")
	return nil
}
