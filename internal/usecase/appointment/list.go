package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type ListAppointments struct {
	repo     domain.AppointmentRepository
	timezone string
}

func NewListAppointments(
	repo domain.AppointmentRepository,
	tz string,
) *ListAppointments {
	return &ListAppointments{
		repo:     repo,
		timezone: tz,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	f domain.AppointmentFilter,
) ([]dto.AppointmentListDTO, error) {

	if f.DateFrom != "" {
		if _, err := domain.ParseDate("data_inicio", f.DateFrom); err != nil {
			return nil, err
		}
	}
	if f.DateTo != "" {
		if _, err := domain.ParseDate("data_fim", f.DateTo); err != nil {
			return nil, err
		}
	}
	if f.Status != "" && !domain.Status(f.Status).Valid() {
		return nil, httperr.Validation("status", "invalid_status", "status inválido.")
	}

	appointments, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.NewAppointmentListDTO(ap))
	}

	return out, nil
}

// Today lista as consultas da data corrente no fuso da clínica.
func (uc *ListAppointments) Today(
	ctx context.Context,
	physicianID uint,
) ([]dto.AppointmentListDTO, error) {
	today := timezone.Today(uc.timezone)
	return uc.Execute(ctx, domain.AppointmentFilter{
		DateFrom:    today,
		DateTo:      today,
		PhysicianID: physicianID,
	})
}
