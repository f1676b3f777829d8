package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	pg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
)

func TestTranslateError(t *testing.T) {
	unique := func(name string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: name})
	}
	other := errors.New("connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"not found", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"active slot", unique(pg.IndexActiveSlot), domain.ErrSlotTaken},
		{"code", unique(pg.IndexAppointmentCode), domain.ErrDuplicateCode},
		{"template", unique(pg.IndexActiveTemplate), domain.ErrDuplicateTemplate},
		{"crm", unique(pg.IndexPhysicianCRM), domain.ErrDuplicateCRM},
		{"cpf", unique(pg.IndexPatientCPF), domain.ErrDuplicateCPF},
		{"other", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateError(tt.in)
			if !errors.Is(got, tt.want) && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	unknown := unique("ux_something_else")
	if got := TranslateError(unknown); got != unknown {
		t.Errorf("unknown constraint should pass through, got %v", got)
	}
}
