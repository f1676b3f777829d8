package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	tok, err := Issue("s3cret", time.Hour, 42, "admin", time.Now())
	if err != nil {
		t.Fatal(err)
	}

	claims, err := Parse("s3cret", tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestParse_Rejects(t *testing.T) {
	valid, _ := Issue("s3cret", time.Hour, 1, "admin", time.Now())
	expired, _ := Issue("s3cret", time.Hour, 1, "admin", time.Now().Add(-2*time.Hour))

	tests := map[string]struct {
		secret, token string
	}{
		"wrong secret": {"other", valid},
		"expired":      {"s3cret", expired},
		"garbage":      {"s3cret", "not-a-jwt"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(tt.secret, tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
