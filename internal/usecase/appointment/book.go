package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	PhysicianID uint
	PatientID   uint
	Date        string
	Time        string
	Notes       string

	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo        domain.AppointmentRepository
	locker      lock.Locker
	audit       *audit.Dispatcher
	maxAttempts int
	newCode     func() int
}

func NewBookAppointment(
	repo domain.AppointmentRepository,
	locker lock.Locker,
	audit *audit.Dispatcher,
	maxAttempts int,
) *BookAppointment {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	return &BookAppointment{
		repo:        repo,
		locker:      locker,
		audit:       audit,
		maxAttempts: maxAttempts,
		newCode:     RandomCode,
	}
}

var errSlotTaken = httperr.Conflict("slot_taken", "Horário já está ocupado para este médico.")

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if err := validateBookInput(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Médico e paciente
	// --------------------------------------------------
	if ok, err := uc.repo.PhysicianExists(ctx, in.PhysicianID); err != nil {
		return nil, err
	} else if !ok {
		return nil, httperr.NotFoundErr("physician_not_found", "Médico não encontrado.")
	}
	if ok, err := uc.repo.PatientExists(ctx, in.PatientID); err != nil {
		return nil, err
	} else if !ok {
		return nil, httperr.NotFoundErr("patient_not_found", "Paciente não encontrado.")
	}

	// --------------------------------------------------
	// 3️⃣ Verificação + inserção sob o lock do médico
	// --------------------------------------------------
	var ap *models.Appointment
	err := uc.locker.WithPhysicianLock(ctx, in.PhysicianID, func(ctx context.Context) error {
		day, err := domain.LoadDay(ctx, uc.repo, in.PhysicianID, in.Date)
		if err != nil {
			return err
		}

		slot, err := day.CheckBookable(in.Time)
		if err != nil {
			return err
		}

		ap = &models.Appointment{
			PatientID:   in.PatientID,
			PhysicianID: in.PhysicianID,
			Date:        day.Date,
			Time:        slot.String(),
			Status:      string(domain.InitialStatus()),
			Notes:       in.Notes,
		}
		return uc.insertWithCode(ctx, ap)
	})

	if errors.Is(err, lock.ErrLockNotAcquired) {
		err = httperr.Conflict("slot_being_booked", "Outro agendamento para este médico está em andamento. Tente novamente.")
	}
	if err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				UserID:   in.UserID,
				Action:   "booking_conflict",
				Entity:   "appointment",
				Metadata: map[string]any{"medico_id": in.PhysicianID, "data": in.Date, "horario": in.Time},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"codigo_consulta": ap.Code},
	})

	return ap, nil
}

// insertWithCode tenta novos códigos enquanto o índice de código acusar
// colisão, até maxAttempts.
func (uc *BookAppointment) insertWithCode(ctx context.Context, ap *models.Appointment) error {
	for attempt := 0; attempt < uc.maxAttempts; attempt++ {
		ap.Code = uc.newCode()

		err := uc.repo.CreateAppointment(ctx, ap)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, domain.ErrDuplicateCode):
			continue
		case errors.Is(err, domain.ErrSlotTaken):
			return errSlotTaken
		default:
			return err
		}
	}
	return httperr.Conflict("code_allocation_failed", "Não foi possível gerar um código de consulta único.")
}

func validateBookInput(in BookInput) error {
	switch {
	case in.PatientID == 0:
		return httperr.Validation("paciente_id", "missing_field", "paciente_id é obrigatório.")
	case in.PhysicianID == 0:
		return httperr.Validation("medico_id", "missing_field", "medico_id é obrigatório.")
	case in.Date == "":
		return httperr.Validation("data_consulta", "missing_field", "data_consulta é obrigatória.")
	case in.Time == "":
		return httperr.Validation("horario", "missing_field", "horario é obrigatório.")
	}
	if _, err := domain.ParseDate("data_consulta", in.Date); err != nil {
		return err
	}
	return nil
}
