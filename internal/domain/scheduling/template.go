package scheduling

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type TemplateInput struct {
	PhysicianID     uint
	Weekday         *int
	StartTime       string
	EndTime         string
	IntervalMinutes int
}

// Build valida a entrada e devolve o expediente pronto para gravar.
func (in TemplateInput) Build() (models.WeeklyTemplate, error) {
	if in.PhysicianID == 0 {
		return models.WeeklyTemplate{}, httperr.Validation("medico_id", "missing_field", "medico_id é obrigatório.")
	}
	if in.Weekday == nil {
		return models.WeeklyTemplate{}, httperr.Validation("dia_semana", "missing_field", "dia_semana é obrigatório.")
	}
	if *in.Weekday < 0 || *in.Weekday > 6 {
		return models.WeeklyTemplate{}, httperr.Validation("dia_semana", "invalid_weekday", "dia_semana deve estar entre 0 (domingo) e 6 (sábado).")
	}

	start, err := parseClockField("horario_inicio", in.StartTime)
	if err != nil {
		return models.WeeklyTemplate{}, err
	}
	end, err := parseClockField("horario_fim", in.EndTime)
	if err != nil {
		return models.WeeklyTemplate{}, err
	}
	if start >= end {
		return models.WeeklyTemplate{}, httperr.Validation("horario_fim", "invalid_time_range", "horario_inicio deve ser anterior a horario_fim.")
	}

	interval := in.IntervalMinutes
	if interval == 0 {
		interval = DefaultIntervalMinutes
	}
	if interval < 0 {
		return models.WeeklyTemplate{}, httperr.Validation("intervalo_minutos", "invalid_interval", "intervalo_minutos deve ser positivo.")
	}

	return models.WeeklyTemplate{
		PhysicianID:     in.PhysicianID,
		Weekday:         *in.Weekday,
		StartTime:       start.String(),
		EndTime:         end.String(),
		IntervalMinutes: interval,
		Active:          true,
	}, nil
}
