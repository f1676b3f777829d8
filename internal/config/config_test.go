package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CODE_MAX_ATTEMPTS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerPort != "3001" {
		t.Errorf("expected port 3001, got %s", cfg.ServerPort)
	}
	if cfg.Addr() != ":3001" {
		t.Errorf("expected addr :3001, got %s", cfg.Addr())
	}
	if cfg.JWTSecret != "changeme" {
		t.Errorf("expected dev fallback secret, got %q", cfg.JWTSecret)
	}
	if cfg.Booking.CodeMaxAttempts != 10 {
		t.Errorf("expected 10 code attempts, got %d", cfg.Booking.CodeMaxAttempts)
	}
	if cfg.S3.Enabled() {
		t.Error("S3 should be disabled without bucket/credentials")
	}
}

func TestLoad_ProdRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing in prod")
	}
}

func TestLoad_RejectsZeroCodeAttempts(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("CODE_MAX_ATTEMPTS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for CODE_MAX_ATTEMPTS=0")
	}
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"seconds", "15", 15 * time.Second},
		{"go syntax", "250ms", 250 * time.Millisecond},
		{"invalid falls back", "soon", 3 * time.Second},
		{"empty falls back", "", 3 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			if got := getDuration("TEST_DURATION", 3*time.Second); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" http://a.test , ,http://b.test")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Errorf("unexpected origins: %v", got)
	}
}

func TestLoad_RejectsUnknownTimezone(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("CODE_MAX_ATTEMPTS", "")
	t.Setenv("CLINIC_TIMEZONE", "Mars/Olympus")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestLoad_LockDurations(t *testing.T) {
	tests := []struct {
		name    string
		ttl     string
		wait    string
		wantErr bool
	}{
		{"defaults", "", "", false},
		{"zero wait allowed", "5", "0", false},
		{"zero ttl", "0", "2", true},
		{"negative ttl", "-1s", "2", true},
		{"negative wait", "5", "-1s", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "dev")
			t.Setenv("CODE_MAX_ATTEMPTS", "")
			t.Setenv("CLINIC_TIMEZONE", "")
			t.Setenv("BOOKING_LOCK_TTL", tt.ttl)
			t.Setenv("BOOKING_LOCK_WAIT", tt.wait)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got ttl=%s wait=%s", cfg.Booking.LockTTL, cfg.Booking.LockWait)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
