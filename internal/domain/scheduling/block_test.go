package scheduling

import (
	"testing"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func strp(s string) *string { return &s }

func TestBlockInputBuild(t *testing.T) {
	tests := []struct {
		name     string
		in       BlockInput
		wantCode string
		wantKind string
	}{
		{
			name:     "whole day",
			in:       BlockInput{PhysicianID: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Reason: "Férias"},
			wantKind: BlockWholeDay,
		},
		{
			name:     "empty strings count as absent",
			in:       BlockInput{PhysicianID: 1, StartDate: "2024-01-01", EndDate: "2024-01-01", StartTime: strp(""), EndTime: strp("")},
			wantKind: BlockWholeDay,
		},
		{
			name:     "partial",
			in:       BlockInput{PhysicianID: 1, StartDate: "2024-01-01", EndDate: "2024-01-01", StartTime: strp("12:00"), EndTime: strp("13:00")},
			wantKind: BlockTimed,
		},
		{
			name:     "half specified time",
			in:       BlockInput{PhysicianID: 1, StartDate: "2024-01-01", EndDate: "2024-01-01", StartTime: strp("12:00")},
			wantCode: "incomplete_time_range",
		},
		{
			name:     "end before start date",
			in:       BlockInput{PhysicianID: 1, StartDate: "2024-01-05", EndDate: "2024-01-01"},
			wantCode: "invalid_date_range",
		},
		{
			name:     "inverted times",
			in:       BlockInput{PhysicianID: 1, StartDate: "2024-01-01", EndDate: "2024-01-01", StartTime: strp("13:00"), EndTime: strp("12:00")},
			wantCode: "invalid_time_range",
		},
		{
			name:     "bad date",
			in:       BlockInput{PhysicianID: 1, StartDate: "01/01/2024", EndDate: "2024-01-01"},
			wantCode: "invalid_date",
		},
		{
			name:     "missing physician",
			in:       BlockInput{StartDate: "2024-01-01", EndDate: "2024-01-01"},
			wantCode: "missing_field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.in.Build()
			if tt.wantCode != "" {
				if !httperr.IsBusiness(err, tt.wantCode) {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
				if !httperr.IsKind(err, httperr.KindValidation) {
					t.Errorf("expected validation kind, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := BlockKind(b); got != tt.wantKind {
				t.Errorf("kind = %s, want %s", got, tt.wantKind)
			}
		})
	}
}

func TestCoversTime_HalfOpen(t *testing.T) {
	b := models.ScheduleBlock{StartDate: "2024-01-01", EndDate: "2024-01-01", StartTime: strp("10:00"), EndTime: strp("11:00")}

	cases := map[string]bool{"09:30": false, "10:00": true, "10:30": true, "11:00": false}
	for label, want := range cases {
		c, _ := ParseClock(label)
		if got := CoversTime(b, c); got != want {
			t.Errorf("%s: got %v, want %v", label, got, want)
		}
	}
}

func TestCoversDate_Inclusive(t *testing.T) {
	b := models.ScheduleBlock{StartDate: "2024-01-10", EndDate: "2024-01-12"}
	for date, want := range map[string]bool{
		"2024-01-09": false,
		"2024-01-10": true,
		"2024-01-12": true,
		"2024-01-13": false,
	} {
		if got := CoversDate(b, date); got != want {
			t.Errorf("%s: got %v, want %v", date, got, want)
		}
	}
}

func TestTemplateInputBuild(t *testing.T) {
	monday := 1
	tpl, err := TemplateInput{PhysicianID: 3, Weekday: &monday, StartTime: "08:00", EndTime: "12:00"}.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl.IntervalMinutes != DefaultIntervalMinutes || !tpl.Active {
		t.Errorf("defaults not applied: %+v", tpl)
	}

	_, err = TemplateInput{PhysicianID: 3, Weekday: &monday, StartTime: "12:00", EndTime: "08:00"}.Build()
	if !httperr.IsBusiness(err, "invalid_time_range") {
		t.Errorf("expected invalid_time_range, got %v", err)
	}

	seven := 7
	_, err = TemplateInput{PhysicianID: 3, Weekday: &seven, StartTime: "08:00", EndTime: "12:00"}.Build()
	if !httperr.IsBusiness(err, "invalid_weekday") {
		t.Errorf("expected invalid_weekday, got %v", err)
	}

	_, err = TemplateInput{PhysicianID: 3, StartTime: "08:00", EndTime: "12:00"}.Build()
	if !httperr.IsBusiness(err, "missing_field") {
		t.Errorf("expected missing_field, got %v", err)
	}
}
