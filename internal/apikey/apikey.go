package apikey

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const keyPrefix = "csk_"

var ErrInvalidKey = errors.New("invalid api key")

// Store é a persistência das chaves. GormStore é a implementação real.
type Store interface {
	Create(ctx context.Context, k *models.APIKey) error
	ActiveByPrefix(ctx context.Context, prefix string) ([]models.APIKey, error)
	List(ctx context.Context) ([]models.APIKey, error)
	Deactivate(ctx context.Context, id uint) error
	Touch(ctx context.Context, id uint, at time.Time) error
}

type Service struct {
	store     Store
	staticKey string
	log       zerolog.Logger
}

// NewService aceita também a chave fixa da configuração. Vazia desliga.
func NewService(store Store, staticKey string, log zerolog.Logger) *Service {
	return &Service{store: store, staticKey: staticKey, log: log}
}

// Generate cria uma chave nova. O texto puro só é devolvido aqui.
func (s *Service) Generate(ctx context.Context, name, description string) (string, *models.APIKey, error) {
	prefix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	secret := strings.ReplaceAll(uuid.NewString(), "-", "")
	plain := keyPrefix + prefix + "." + secret

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	k := &models.APIKey{
		Name:        name,
		Description: description,
		Prefix:      prefix,
		KeyHash:     string(hash),
		Active:      true,
	}
	if err := s.store.Create(ctx, k); err != nil {
		return "", nil, err
	}
	return plain, k, nil
}

// Verify devolve a chave correspondente. Para a chave fixa devolve uma
// chave sem id.
func (s *Service) Verify(ctx context.Context, plain string) (*models.APIKey, error) {
	plain = strings.TrimSpace(plain)
	if plain == "" {
		return nil, ErrInvalidKey
	}

	if s.staticKey != "" && subtle.ConstantTimeCompare([]byte(plain), []byte(s.staticKey)) == 1 {
		return &models.APIKey{Name: "static", Active: true}, nil
	}

	prefix, ok := splitKey(plain)
	if !ok {
		return nil, ErrInvalidKey
	}

	candidates, err := s.store.ActiveByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if bcrypt.CompareHashAndPassword([]byte(candidates[i].KeyHash), []byte(plain)) == nil {
			// last_used_at é informativo; falha aqui não nega o acesso
			if err := s.store.Touch(ctx, candidates[i].ID, time.Now()); err != nil {
				s.log.Warn().Err(err).Uint("api_key_id", candidates[i].ID).Msg("api key touch failed")
			}
			return &candidates[i], nil
		}
	}
	return nil, ErrInvalidKey
}

func (s *Service) List(ctx context.Context) ([]models.APIKey, error) {
	return s.store.List(ctx)
}

func (s *Service) Revoke(ctx context.Context, id uint) error {
	return s.store.Deactivate(ctx, id)
}

// splitKey extrai o prefixo de "csk_<8 hex>.<segredo>".
func splitKey(plain string) (string, bool) {
	rest, ok := strings.CutPrefix(plain, keyPrefix)
	if !ok {
		return "", false
	}
	prefix, secret, ok := strings.Cut(rest, ".")
	if !ok || len(prefix) != 8 || secret == "" {
		return "", false
	}
	return prefix, true
}
