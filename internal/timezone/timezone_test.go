package timezone

import (
	"testing"
	"time"
)

func TestLocation_Fallback(t *testing.T) {
	if got := Location("Not/AZone"); got.String() != DefaultTimezone && got != time.UTC {
		t.Errorf("unexpected fallback %s", got)
	}
	if got := Location("UTC"); got.String() != "UTC" {
		t.Errorf("expected UTC, got %s", got)
	}
}

func TestIsValid(t *testing.T) {
	if IsValid("") || IsValid("Not/AZone") {
		t.Error("invalid zones accepted")
	}
	if !IsValid("UTC") {
		t.Error("UTC rejected")
	}
}

func TestToday_Format(t *testing.T) {
	if _, err := time.Parse("2006-01-02", Today("UTC")); err != nil {
		t.Errorf("Today is not a civil date: %v", err)
	}
}
