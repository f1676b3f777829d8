package scheduling

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const (
	BlockWholeDay = "dia_inteiro"
	BlockTimed    = "horario"
)

type BlockInput struct {
	PhysicianID uint
	StartDate   string
	EndDate     string
	StartTime   *string
	EndTime     *string
	Reason      string
}

// Build valida a entrada. Horários vazios contam como ausentes e só são
// aceitos aos pares.
func (in BlockInput) Build() (models.ScheduleBlock, error) {
	if in.PhysicianID == 0 {
		return models.ScheduleBlock{}, httperr.Validation("medico_id", "missing_field", "medico_id é obrigatório.")
	}
	if in.StartDate == "" {
		return models.ScheduleBlock{}, httperr.Validation("data_inicio", "missing_field", "data_inicio é obrigatória.")
	}
	if in.EndDate == "" {
		return models.ScheduleBlock{}, httperr.Validation("data_fim", "missing_field", "data_fim é obrigatória.")
	}

	from, err := ParseDate("data_inicio", in.StartDate)
	if err != nil {
		return models.ScheduleBlock{}, err
	}
	to, err := ParseDate("data_fim", in.EndDate)
	if err != nil {
		return models.ScheduleBlock{}, err
	}
	if to.Before(from) {
		return models.ScheduleBlock{}, httperr.Validation("data_fim", "invalid_date_range", "data_fim deve ser igual ou posterior a data_inicio.")
	}

	b := models.ScheduleBlock{
		PhysicianID: in.PhysicianID,
		StartDate:   FormatDate(from),
		EndDate:     FormatDate(to),
		Reason:      in.Reason,
	}

	startSet, endSet := nonEmpty(in.StartTime), nonEmpty(in.EndTime)
	if startSet != endSet {
		return models.ScheduleBlock{}, httperr.Validation("horario_fim", "incomplete_time_range", "Informe horario_inicio e horario_fim juntos, ou nenhum dos dois.")
	}
	if !startSet {
		return b, nil
	}

	start, err := parseClockField("horario_inicio", *in.StartTime)
	if err != nil {
		return models.ScheduleBlock{}, err
	}
	end, err := parseClockField("horario_fim", *in.EndTime)
	if err != nil {
		return models.ScheduleBlock{}, err
	}
	if start >= end {
		return models.ScheduleBlock{}, httperr.Validation("horario_fim", "invalid_time_range", "horario_inicio deve ser anterior a horario_fim.")
	}

	s, e := start.String(), end.String()
	b.StartTime, b.EndTime = &s, &e
	return b, nil
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

func IsWholeDay(b models.ScheduleBlock) bool {
	return !nonEmpty(b.StartTime) && !nonEmpty(b.EndTime)
}

func BlockKind(b models.ScheduleBlock) string {
	if IsWholeDay(b) {
		return BlockWholeDay
	}
	return BlockTimed
}

// CoversDate compara datas no formato AAAA-MM-DD, cuja ordem lexicográfica
// coincide com a cronológica.
func CoversDate(b models.ScheduleBlock, date string) bool {
	return b.StartDate <= date && date <= b.EndDate
}

// CoversTime informa se c cai em [início, fim) de um bloqueio parcial.
func CoversTime(b models.ScheduleBlock, c Clock) bool {
	if IsWholeDay(b) {
		return true
	}
	start, err := ParseClock(*b.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseClock(*b.EndTime)
	if err != nil {
		return false
	}
	return start <= c && c < end
}

func blockReason(b *models.ScheduleBlock, fallback string) string {
	if b != nil && b.Reason != "" {
		return b.Reason
	}
	return fallback
}
