package repository

import (
	"errors"

	"gorm.io/gorm"

	pg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
)

// TranslateError converte erros do banco nos erros de domínio. Erros sem
// tradução voltam como estão.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if name, ok := pg.UniqueViolation(err); ok {
		switch name {
		case pg.IndexActiveSlot:
			return domain.ErrSlotTaken
		case pg.IndexAppointmentCode:
			return domain.ErrDuplicateCode
		case pg.IndexActiveTemplate:
			return domain.ErrDuplicateTemplate
		case pg.IndexPhysicianCRM:
			return domain.ErrDuplicateCRM
		case pg.IndexPatientCPF:
			return domain.ErrDuplicateCPF
		}
	}
	return err
}

func deleteResult(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
