package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func book(t *testing.T, f *fixture, at string) *models.Appointment {
	t.Helper()
	ap, err := f.booker(lock.NewLocalLocker(time.Second)).Execute(context.Background(), f.input(at))
	if err != nil {
		t.Fatalf("book %s: %v", at, err)
	}
	return ap
}

func TestCancel_Idempotent(t *testing.T) {
	f := newFixture(t)
	ap := book(t, f, "09:00")
	uc := NewCancelAppointment(f.repo, f.dispatch)

	first, err := uc.Execute(context.Background(), ap.ID, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := uc.Execute(context.Background(), ap.ID, nil)
	if err != nil {
		t.Fatalf("second cancel should not fail: %v", err)
	}

	if first.Status != string(domain.StatusCancelled) || second.Status != string(domain.StatusCancelled) {
		t.Errorf("statuses = %s, %s", first.Status, second.Status)
	}
	if !first.CancelledAt.Equal(*second.CancelledAt) {
		t.Error("second cancel changed cancelled_at")
	}

	got := f.actions()
	cancels := 0
	for _, a := range got {
		if a == "appointment_cancelled" {
			cancels++
		}
	}
	if cancels != 1 {
		t.Errorf("expected one cancel event, got %v", got)
	}
}

func TestCancel_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := NewCancelAppointment(f.repo, f.dispatch).Execute(context.Background(), 404, nil)
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdate_StatusAndNotes(t *testing.T) {
	f := newFixture(t)
	ap := book(t, f, "09:00")

	got, err := NewUpdateAppointment(f.repo, f.dispatch).Execute(context.Background(), ap.ID, UpdateInput{
		Status: "confirmed",
		Notes:  "Trazer exames",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != "confirmed" || got.Notes != "Trazer exames" {
		t.Errorf("unexpected update: %+v", got)
	}

	stored, _ := f.repo.GetAppointment(context.Background(), ap.ID)
	if stored.Status != "confirmed" {
		t.Errorf("not persisted: %+v", stored)
	}
}

func TestUpdate_Errors(t *testing.T) {
	f := newFixture(t)
	ap := book(t, f, "09:00")
	uc := NewUpdateAppointment(f.repo, f.dispatch)

	if _, err := uc.Execute(context.Background(), ap.ID, UpdateInput{}); !httperr.IsBusiness(err, "missing_field") {
		t.Errorf("expected missing_field, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), ap.ID, UpdateInput{Status: "lost"}); !httperr.IsBusiness(err, "invalid_status") {
		t.Errorf("expected invalid_status, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), 999, UpdateInput{Status: "confirmed"}); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("expected appointment_not_found, got %v", err)
	}
}

func TestUpdate_ReopenTakenSlotConflicts(t *testing.T) {
	f := newFixture(t)
	first := book(t, f, "09:00")
	if _, err := NewCancelAppointment(f.repo, f.dispatch).Execute(context.Background(), first.ID, nil); err != nil {
		t.Fatal(err)
	}
	book(t, f, "09:00")

	_, err := NewUpdateAppointment(f.repo, f.dispatch).Execute(context.Background(), first.ID, UpdateInput{Status: "scheduled"})
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ap := book(t, f, "09:00")
	uc := NewDeleteAppointment(f.repo, f.dispatch)

	if err := uc.Execute(context.Background(), ap.ID, nil); err != nil {
		t.Fatal(err)
	}
	if err := uc.Execute(context.Background(), ap.ID, nil); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("second delete should be not found, got %v", err)
	}
	if f.repo.AppointmentCount() != 0 {
		t.Error("appointment still stored")
	}
}

func TestList_OrderedWithSummaries(t *testing.T) {
	f := newFixture(t)
	book(t, f, "11:00")
	book(t, f, "08:30")
	tuesdayTpl := models.WeeklyTemplate{PhysicianID: f.physician.ID, Weekday: 2, StartTime: "08:00", EndTime: "09:00", IntervalMinutes: 30, Active: true}
	_ = f.repo.CreateTemplate(context.Background(), &tuesdayTpl)
	in := f.input("08:00")
	in.Date = "2024-01-02"
	if _, err := f.booker(lock.NewLocalLocker(time.Second)).Execute(context.Background(), in); err != nil {
		t.Fatal(err)
	}

	uc := NewListAppointments(f.repo, "America/Sao_Paulo")
	got, err := uc.Execute(context.Background(), domain.AppointmentFilter{PhysicianID: f.physician.ID})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	order := []string{got[0].Date + " " + got[0].Time, got[1].Date + " " + got[1].Time, got[2].Date + " " + got[2].Time}
	want := []string{"2024-01-01 08:30", "2024-01-01 11:00", "2024-01-02 08:00"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if got[0].Patient.Name != "João" || got[0].Physician.Specialty != "Cardiologia" {
		t.Errorf("missing summaries: %+v", got[0])
	}

	filtered, _ := uc.Execute(context.Background(), domain.AppointmentFilter{DateFrom: "2024-01-02"})
	if len(filtered) != 1 {
		t.Errorf("date filter: expected 1, got %d", len(filtered))
	}

	if _, err := uc.Execute(context.Background(), domain.AppointmentFilter{Status: "bogus"}); !httperr.IsBusiness(err, "invalid_status") {
		t.Errorf("expected invalid_status, got %v", err)
	}
}
