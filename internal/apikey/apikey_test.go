package apikey

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type memStore struct {
	mu       sync.Mutex
	keys     []models.APIKey
	touchErr error
}

func (m *memStore) Create(_ context.Context, k *models.APIKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k.ID = uint(len(m.keys) + 1)
	m.keys = append(m.keys, *k)
	return nil
}

func (m *memStore) ActiveByPrefix(_ context.Context, prefix string) ([]models.APIKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.APIKey
	for _, k := range m.keys {
		if k.Prefix == prefix && k.Active {
			out = append(out, k)
		}
	}
	return out, nil
}

func (m *memStore) List(context.Context) ([]models.APIKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.APIKey(nil), m.keys...), nil
}

func (m *memStore) Deactivate(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.keys {
		if m.keys[i].ID == id {
			m.keys[i].Active = false
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memStore) Touch(_ context.Context, id uint, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.touchErr != nil {
		return m.touchErr
	}
	for i := range m.keys {
		if m.keys[i].ID == id {
			m.keys[i].LastUsedAt = &at
		}
	}
	return nil
}

func TestGenerateVerifyRevoke(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, "", zerolog.Nop())
	ctx := context.Background()

	plain, key, err := svc.Generate(ctx, "Recepção", "totem")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(plain, keyPrefix+key.Prefix+".") {
		t.Errorf("unexpected key format %q", plain)
	}
	if key.KeyHash == plain || key.KeyHash == "" {
		t.Error("key must be stored hashed")
	}

	got, err := svc.Verify(ctx, plain)
	if err != nil || got.ID != key.ID {
		t.Fatalf("verify failed: %v", err)
	}

	if _, err := svc.Verify(ctx, plain+"x"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("tampered key accepted: %v", err)
	}

	if err := svc.Revoke(ctx, key.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Verify(ctx, plain); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("revoked key accepted: %v", err)
	}
}

func TestVerify_StaticKey(t *testing.T) {
	svc := NewService(&memStore{}, "chave-fixa-123", zerolog.Nop())

	k, err := svc.Verify(context.Background(), "chave-fixa-123")
	if err != nil || k.Name != "static" {
		t.Fatalf("static key rejected: %v", err)
	}
	if _, err := svc.Verify(context.Background(), "chave-fixa-124"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestSplitKey(t *testing.T) {
	tests := map[string]bool{
		"csk_abcdef12.secret": true,
		"csk_abc.secret":      false,
		"csk_abcdef12.":       false,
		"abcdef12.secret":     false,
		"csk_abcdef12secret":  false,
	}
	for in, want := range tests {
		if _, ok := splitKey(in); ok != want {
			t.Errorf("%q: got %v, want %v", in, ok, want)
		}
	}
}

func TestVerify_TouchFailureIsLogged(t *testing.T) {
	store := &memStore{}
	var buf bytes.Buffer
	svc := NewService(store, "", zerolog.New(&buf))
	ctx := context.Background()

	plain, key, err := svc.Generate(ctx, "Recepção", "")
	if err != nil {
		t.Fatal(err)
	}
	store.touchErr = errors.New("db down")

	got, err := svc.Verify(ctx, plain)
	if err != nil || got.ID != key.ID {
		t.Fatalf("verify should still succeed: %v", err)
	}
	if !strings.Contains(buf.String(), "api key touch failed") || !strings.Contains(buf.String(), "db down") {
		t.Errorf("touch failure not logged: %s", buf.String())
	}
}
