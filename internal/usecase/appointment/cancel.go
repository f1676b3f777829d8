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

var errAppointmentNotFound = httperr.NotFoundErr("appointment_not_found", "Consulta não encontrada.")

func getAppointment(ctx context.Context, repo domain.AppointmentRepository, id uint) (*models.Appointment, error) {
	ap, err := repo.GetAppointment(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errAppointmentNotFound
	}
	return ap, err
}

type CancelAppointment struct {
	repo  domain.AppointmentRepository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.AppointmentRepository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// Execute é idempotente: cancelar uma consulta já cancelada não é erro.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	userID *uint,
) (*models.Appointment, error) {

	ap, err := getAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	if domain.Status(ap.Status) == domain.StatusCancelled {
		return ap, nil
	}

	domain.Cancel(ap, uc.now())
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
