package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Availability (dia único)
// --------------------------------------------------

func (r *SchedulingGormRepository) ActiveTemplate(
	ctx context.Context,
	physicianID uint,
	weekday int,
) (*models.WeeklyTemplate, error) {

	var t models.WeeklyTemplate
	if err := r.db.WithContext(ctx).
		Where("physician_id = ? AND weekday = ? AND active = ?", physicianID, weekday, true).
		First(&t).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &t, nil
}

func (r *SchedulingGormRepository) BlocksOn(
	ctx context.Context,
	physicianID uint,
	date string,
) ([]models.ScheduleBlock, error) {

	var blocks []models.ScheduleBlock
	if err := r.db.WithContext(ctx).
		Where("physician_id = ? AND start_date <= ? AND end_date >= ?", physicianID, date, date).
		Order("start_date ASC, id ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *SchedulingGormRepository) BookedTimes(
	ctx context.Context,
	physicianID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"physician_id = ? AND appointment_date = ? AND status <> ?",
			physicianID, date, string(domain.StatusCancelled),
		).
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// --------------------------------------------------
// Availability (período)
// --------------------------------------------------

func (r *SchedulingGormRepository) ActiveTemplates(
	ctx context.Context,
	physicianID uint,
) ([]models.WeeklyTemplate, error) {

	var templates []models.WeeklyTemplate
	if err := r.db.WithContext(ctx).
		Where("physician_id = ? AND active = ?", physicianID, true).
		Order("weekday ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *SchedulingGormRepository) BlocksBetween(
	ctx context.Context,
	physicianID uint,
	from, to string,
) ([]models.ScheduleBlock, error) {

	var blocks []models.ScheduleBlock
	if err := r.db.WithContext(ctx).
		Where("physician_id = ? AND start_date <= ? AND end_date >= ?", physicianID, to, from).
		Order("start_date ASC, id ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *SchedulingGormRepository) BookedBetween(
	ctx context.Context,
	physicianID uint,
	from, to string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "appointment_date", "appointment_time").
		Where(
			"physician_id = ? AND appointment_date BETWEEN ? AND ? AND status <> ?",
			physicianID, from, to, string(domain.StatusCancelled),
		).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Referências
// --------------------------------------------------

func (r *SchedulingGormRepository) PhysicianExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Physician{}, id)
}

func (r *SchedulingGormRepository) PatientExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Patient{}, id)
}

func (r *SchedulingGormRepository) exists(ctx context.Context, model any, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var (
	_ domain.AppointmentRepository = (*SchedulingGormRepository)(nil)
	_ domain.TemplateRepository    = (*SchedulingGormRepository)(nil)
	_ domain.BlockRepository       = (*SchedulingGormRepository)(nil)
)
