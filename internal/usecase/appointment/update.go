package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type UpdateInput struct {
	Status string
	Notes  string
	UserID *uint
}

type UpdateAppointment struct {
	repo  domain.AppointmentRepository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateAppointment(
	repo domain.AppointmentRepository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// Execute grava status e observações como vieram. Reabrir uma consulta
// cancelada cujo horário já foi ocupado falha com slot_taken.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in UpdateInput,
) (*models.Appointment, error) {

	if in.Status == "" {
		return nil, httperr.Validation("status", "missing_field", "status é obrigatório.")
	}

	ap, err := getAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	previous := ap.Status
	if err := domain.ApplyStatus(ap, in.Status, uc.now()); err != nil {
		return nil, err
	}
	ap.Notes = in.Notes

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			return nil, errSlotTaken
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"de": previous, "para": ap.Status},
	})

	return ap, nil
}

type DeleteAppointment struct {
	repo  domain.AppointmentRepository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.AppointmentRepository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, audit: audit}
}

// Execute remove a consulta de forma definitiva.
func (uc *DeleteAppointment) Execute(ctx context.Context, appointmentID uint, userID *uint) error {
	err := uc.repo.DeleteAppointment(ctx, appointmentID)
	if errors.Is(err, domain.ErrNotFound) {
		return errAppointmentNotFound
	}
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})
	return nil
}
