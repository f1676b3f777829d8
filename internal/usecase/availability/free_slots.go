package availability

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type GetFreeSlots struct {
	repo domain.AvailabilityReader
}

func NewGetFreeSlots(repo domain.AvailabilityReader) *GetFreeSlots {
	return &GetFreeSlots{repo: repo}
}

// Execute devolve os horários livres de um médico em uma data. Médico sem
// expediente no dia (ou inexistente) gera lista vazia, não erro.
func (uc *GetFreeSlots) Execute(
	ctx context.Context,
	physicianID uint,
	date string,
) (domain.FreeSlots, error) {

	if physicianID == 0 {
		return domain.FreeSlots{}, httperr.Validation("medico_id", "missing_field", "medico_id e data são obrigatórios.")
	}
	if date == "" {
		return domain.FreeSlots{}, httperr.Validation("data", "missing_field", "medico_id e data são obrigatórios.")
	}

	day, err := domain.LoadDay(ctx, uc.repo, physicianID, date)
	if err != nil {
		return domain.FreeSlots{}, err
	}

	return day.Resolve(), nil
}
