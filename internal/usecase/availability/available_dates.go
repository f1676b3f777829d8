package availability

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Period struct {
	From string `json:"data_inicio"`
	To   string `json:"data_fim"`
}

type AvailableDates struct {
	PhysicianID uint                      `json:"medico_id"`
	Period      Period                    `json:"periodo"`
	Dates       []domain.DateAvailability `json:"datas_disponiveis"`
	Total       int                       `json:"total_datas"`
	Message     string                    `json:"mensagem,omitempty"`
}

type GetAvailableDates struct {
	repo    domain.AvailabilityReader
	maxDays int
}

func NewGetAvailableDates(repo domain.AvailabilityReader, maxDays int) *GetAvailableDates {
	return &GetAvailableDates{repo: repo, maxDays: maxDays}
}

// Execute carrega expedientes, bloqueios e consultas do período de uma vez
// e resolve cada data com as mesmas regras de GetFreeSlots. Só entram
// datas com ao menos um horário livre.
func (uc *GetAvailableDates) Execute(
	ctx context.Context,
	physicianID uint,
	from, to string,
) (AvailableDates, error) {

	if physicianID == 0 || from == "" || to == "" {
		return AvailableDates{}, httperr.Validation("medico_id", "missing_field", "medico_id, data_inicio e data_fim são obrigatórios.")
	}

	start, err := domain.ParseDate("data_inicio", from)
	if err != nil {
		return AvailableDates{}, err
	}
	end, err := domain.ParseDate("data_fim", to)
	if err != nil {
		return AvailableDates{}, err
	}
	if end.Before(start) {
		return AvailableDates{}, httperr.Validation("data_fim", "invalid_date_range", "data_fim deve ser igual ou posterior a data_inicio.")
	}
	if uc.maxDays > 0 && domain.DaysBetween(start, end) > uc.maxDays {
		return AvailableDates{}, httperr.Validation("data_fim", "range_too_large", fmt.Sprintf("O período não pode passar de %d dias.", uc.maxDays))
	}

	out := AvailableDates{
		PhysicianID: physicianID,
		Period:      Period{From: domain.FormatDate(start), To: domain.FormatDate(end)},
		Dates:       []domain.DateAvailability{},
	}

	templates, err := uc.repo.ActiveTemplates(ctx, physicianID)
	if err != nil {
		return AvailableDates{}, err
	}
	if len(templates) == 0 {
		out.Message = "Médico não possui agenda configurada"
		return out, nil
	}

	byWeekday := map[int]*models.WeeklyTemplate{}
	for i := range templates {
		if _, ok := byWeekday[templates[i].Weekday]; !ok {
			byWeekday[templates[i].Weekday] = &templates[i]
		}
	}

	blocks, err := uc.repo.BlocksBetween(ctx, physicianID, out.Period.From, out.Period.To)
	if err != nil {
		return AvailableDates{}, err
	}

	booked, err := uc.repo.BookedBetween(ctx, physicianID, out.Period.From, out.Period.To)
	if err != nil {
		return AvailableDates{}, err
	}
	bookedByDate := map[string][]string{}
	for _, ap := range booked {
		bookedByDate[ap.Date] = append(bookedByDate[ap.Date], ap.Time)
	}

	domain.EachDate(start, end, func(d time.Time) {
		day := domain.NewDay(physicianID, d)
		day.Template = byWeekday[day.Weekday]
		if day.Template == nil {
			return
		}
		day.AddBlocks(blocks)
		day.AddBooked(bookedByDate[day.Date]...)

		if summary, ok := day.Summary(); ok {
			out.Dates = append(out.Dates, summary)
		}
	})

	out.Total = len(out.Dates)
	return out, nil
}
