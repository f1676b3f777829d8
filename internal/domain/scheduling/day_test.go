package scheduling

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// 2024-01-01 é segunda-feira.
const monday = "2024-01-01"

type stubReader struct {
	templates []models.WeeklyTemplate
	blocks    []models.ScheduleBlock
	booked    map[string][]string
	calls     []string
}

func (s *stubReader) ActiveTemplate(_ context.Context, physicianID uint, weekday int) (*models.WeeklyTemplate, error) {
	s.calls = append(s.calls, "template")
	for i := range s.templates {
		t := s.templates[i]
		if t.PhysicianID == physicianID && t.Weekday == weekday && t.Active {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubReader) BlocksOn(_ context.Context, physicianID uint, date string) ([]models.ScheduleBlock, error) {
	s.calls = append(s.calls, "blocks")
	var out []models.ScheduleBlock
	for _, b := range s.blocks {
		if b.PhysicianID == physicianID && CoversDate(b, date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubReader) BookedTimes(_ context.Context, _ uint, date string) ([]string, error) {
	s.calls = append(s.calls, "booked")
	return s.booked[date], nil
}

func (s *stubReader) ActiveTemplates(context.Context, uint) ([]models.WeeklyTemplate, error) {
	return nil, errors.New("not used")
}

func (s *stubReader) BlocksBetween(context.Context, uint, string, string) ([]models.ScheduleBlock, error) {
	return nil, errors.New("not used")
}

func (s *stubReader) BookedBetween(context.Context, uint, string, string) ([]models.Appointment, error) {
	return nil, errors.New("not used")
}

func mondayMorning() *stubReader {
	return &stubReader{
		templates: []models.WeeklyTemplate{
			{PhysicianID: 1, Weekday: 1, StartTime: "08:00", EndTime: "12:00", IntervalMinutes: 30, Active: true},
		},
		booked: map[string][]string{},
	}
}

func loadDay(t *testing.T, r AvailabilityReader, date string) *Day {
	t.Helper()
	day, err := LoadDay(context.Background(), r, 1, date)
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	return day
}

func TestResolve_FullMorning(t *testing.T) {
	got := loadDay(t, mondayMorning(), monday).Resolve()

	want := []string{"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got.Slots, want) {
		t.Fatalf("slots = %v, want %v", got.Slots, want)
	}
	if got.Total != 8 || got.Weekday != 1 || got.Blocked {
		t.Errorf("unexpected summary: %+v", got)
	}
}

func TestResolve_BookedSlotRemoved(t *testing.T) {
	r := mondayMorning()
	r.booked[monday] = []string{"09:00"}

	got := loadDay(t, r, monday).Resolve()
	if got.Total != 7 {
		t.Fatalf("expected 7 slots, got %v", got.Slots)
	}
	for _, s := range got.Slots {
		if s == "09:00" {
			t.Fatal("booked slot still offered")
		}
	}
}

func TestResolve_PartialBlock(t *testing.T) {
	r := mondayMorning()
	r.blocks = []models.ScheduleBlock{
		{PhysicianID: 1, StartDate: monday, EndDate: monday, StartTime: strp("10:00"), EndTime: strp("11:00"), Reason: "Reunião"},
	}

	got := loadDay(t, r, monday).Resolve()
	want := []string{"08:00", "08:30", "09:00", "09:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got.Slots, want) {
		t.Fatalf("slots = %v, want %v", got.Slots, want)
	}
	if got.TimedBlocks != 1 {
		t.Errorf("expected 1 timed block, got %d", got.TimedBlocks)
	}
}

func TestResolve_WholeDayBlockWins(t *testing.T) {
	r := mondayMorning()
	r.booked[monday] = []string{"08:00"}
	r.blocks = []models.ScheduleBlock{
		{PhysicianID: 1, StartDate: "2023-12-28", EndDate: "2024-01-03", Reason: "Férias"},
	}

	day := loadDay(t, r, monday)
	got := day.Resolve()
	if !got.Blocked || got.Reason != "Férias" || len(got.Slots) != 0 || got.Slots == nil {
		t.Fatalf("unexpected result: %+v", got)
	}
	if !reflect.DeepEqual(r.calls, []string{"template", "blocks"}) {
		t.Errorf("should stop after whole-day block, calls = %v", r.calls)
	}
}

func TestResolve_NoTemplate(t *testing.T) {
	r := mondayMorning()
	got := loadDay(t, r, "2024-01-07").Resolve()

	if got.Weekday != 0 || got.Message == "" || len(got.Slots) != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if len(r.calls) != 1 {
		t.Errorf("no template should stop after first lookup, calls = %v", r.calls)
	}
}

func TestLoadDay_InvalidDate(t *testing.T) {
	_, err := LoadDay(context.Background(), mondayMorning(), 1, "2024-13-01")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

func TestResolve_NeverOutsideTemplate(t *testing.T) {
	r := mondayMorning()
	day := loadDay(t, r, monday)
	start, _ := ParseClock("08:00")
	end, _ := ParseClock("12:00")
	for _, c := range day.Free() {
		if c < start || c >= end {
			t.Errorf("slot %s outside template", c)
		}
	}
}

func TestCheckBookable(t *testing.T) {
	r := mondayMorning()
	r.booked[monday] = []string{"09:00"}
	r.blocks = []models.ScheduleBlock{
		{PhysicianID: 1, StartDate: monday, EndDate: monday, StartTime: strp("10:00"), EndTime: strp("11:00")},
	}
	day := loadDay(t, r, monday)

	tests := []struct {
		time     string
		wantCode string
	}{
		{"08:00", ""},
		{"11:30", ""},
		{"08:15", "time_not_offered"},
		{"12:00", "time_not_offered"},
		{"10:30", "time_blocked"},
		{"09:00", "slot_taken"},
		{"9:00", "invalid_time"},
	}
	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			_, err := day.CheckBookable(tt.time)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestCheckBookable_NoTemplateAndWholeDay(t *testing.T) {
	r := mondayMorning()
	sunday := loadDay(t, r, "2024-01-07")
	if _, err := sunday.CheckBookable("08:00"); !httperr.IsBusiness(err, "no_schedule_for_weekday") {
		t.Errorf("expected no_schedule_for_weekday, got %v", err)
	}

	r.blocks = []models.ScheduleBlock{{PhysicianID: 1, StartDate: monday, EndDate: monday, Reason: "Congresso"}}
	blocked := loadDay(t, r, monday)
	_, err := blocked.CheckBookable("08:00")
	if !httperr.IsBusiness(err, "date_blocked") || !httperr.IsKind(err, httperr.KindConflict) {
		t.Errorf("expected date_blocked conflict, got %v", err)
	}
}

func TestSummary_MatchesFree(t *testing.T) {
	r := mondayMorning()
	r.booked[monday] = []string{"08:00"}
	r.blocks = []models.ScheduleBlock{
		{PhysicianID: 1, StartDate: monday, EndDate: monday, StartTime: strp("11:00"), EndTime: strp("12:00")},
	}
	day := loadDay(t, r, monday)

	sum, ok := day.Summary()
	if !ok {
		t.Fatal("expected availability")
	}
	if sum.Free != len(day.Resolve().Slots) || sum.Total != 8 {
		t.Errorf("summary %+v does not match resolved slots %v", sum, day.Resolve().Slots)
	}
}
