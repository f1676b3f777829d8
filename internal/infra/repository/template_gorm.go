package repository

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// --------------------------------------------------
// Weekly templates
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateTemplate(ctx context.Context, t *models.WeeklyTemplate) error {
	return TranslateError(r.db.WithContext(ctx).Omit("Physician").Create(t).Error)
}

func (r *SchedulingGormRepository) GetTemplate(ctx context.Context, id uint) (*models.WeeklyTemplate, error) {
	var t models.WeeklyTemplate
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &t, nil
}

func (r *SchedulingGormRepository) ListActiveTemplates(ctx context.Context) ([]models.WeeklyTemplate, error) {
	var templates []models.WeeklyTemplate
	if err := r.db.WithContext(ctx).
		Preload("Physician").
		Where("active = ?", true).
		Order("physician_id ASC, weekday ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *SchedulingGormRepository) ListTemplatesByPhysician(ctx context.Context, physicianID uint, includeInactive bool) ([]models.WeeklyTemplate, error) {
	q := r.db.WithContext(ctx).Where("physician_id = ?", physicianID)
	if !includeInactive {
		q = q.Where("active = ?", true)
	}

	var templates []models.WeeklyTemplate
	if err := q.
		Order("weekday ASC, start_time ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *SchedulingGormRepository) SaveTemplate(ctx context.Context, t *models.WeeklyTemplate) error {
	return TranslateError(r.db.WithContext(ctx).Omit("Physician").Save(t).Error)
}

func (r *SchedulingGormRepository) DeleteTemplate(ctx context.Context, id uint) error {
	return deleteResult(r.db.WithContext(ctx).Delete(&models.WeeklyTemplate{}, id))
}
