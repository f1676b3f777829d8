package repository

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// --------------------------------------------------
// Schedule blocks
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateBlock(ctx context.Context, b *models.ScheduleBlock) error {
	return r.db.WithContext(ctx).Omit("Physician").Create(b).Error
}

func (r *SchedulingGormRepository) GetBlock(ctx context.Context, id uint) (*models.ScheduleBlock, error) {
	var b models.ScheduleBlock
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &b, nil
}

// ListBlocks filtra por médico e por sobreposição com [From, To].
func (r *SchedulingGormRepository) ListBlocks(ctx context.Context, f domain.BlockFilter) ([]models.ScheduleBlock, error) {
	q := r.db.WithContext(ctx).Preload("Physician")

	if f.PhysicianID != 0 {
		q = q.Where("physician_id = ?", f.PhysicianID)
	}
	if f.From != "" {
		q = q.Where("end_date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("start_date <= ?", f.To)
	}

	var blocks []models.ScheduleBlock
	if err := q.Order("start_date DESC, id DESC").Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *SchedulingGormRepository) SaveBlock(ctx context.Context, b *models.ScheduleBlock) error {
	return r.db.WithContext(ctx).Omit("Physician").Save(b).Error
}

func (r *SchedulingGormRepository) DeleteBlock(ctx context.Context, id uint) error {
	return deleteResult(r.db.WithContext(ctx).Delete(&models.ScheduleBlock{}, id))
}
