package scheduling

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Cancel é idempotente: uma consulta já cancelada fica como está.
func Cancel(ap *models.Appointment, now time.Time) {
	if Status(ap.Status) == StatusCancelled {
		return
	}
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
}

// ApplyStatus troca o status sem restringir a transição.
func ApplyStatus(ap *models.Appointment, status string, now time.Time) error {
	s := Status(status)
	if !s.Valid() {
		return httperr.Validation("status", "invalid_status", "status deve ser scheduled, confirmed, completed ou cancelled.")
	}
	if s == StatusCancelled {
		Cancel(ap, now)
		return nil
	}

	ap.Status = string(s)
	ap.CancelledAt = nil
	if s == StatusCompleted && ap.CompletedAt == nil {
		ap.CompletedAt = &now
	}
	return nil
}
