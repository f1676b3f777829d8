package repository

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// CreateAppointment depende dos índices únicos de código e de horário ativo;
// as violações voltam como ErrDuplicateCode e ErrSlotTaken.
func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return TranslateError(r.db.WithContext(ctx).Omit("Patient", "Physician").Create(ap).Error)
}

func (r *SchedulingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &ap, nil
}

func (r *SchedulingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return TranslateError(r.db.WithContext(ctx).Omit("Patient", "Physician").Save(ap).Error)
}

func (r *SchedulingGormRepository) DeleteAppointment(ctx context.Context, id uint) error {
	return deleteResult(r.db.WithContext(ctx).Delete(&models.Appointment{}, id))
}

func (r *SchedulingGormRepository) ListAppointments(
	ctx context.Context,
	f domain.AppointmentFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Physician")

	if f.DateFrom != "" {
		q = q.Where("appointment_date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("appointment_date <= ?", f.DateTo)
	}
	if f.PhysicianID != 0 {
		q = q.Where("physician_id = ?", f.PhysicianID)
	}
	if f.PatientID != 0 {
		q = q.Where("patient_id = ?", f.PatientID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var apps []models.Appointment
	if err := q.
		Order("appointment_date ASC, appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}
