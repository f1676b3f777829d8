package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/apikey"
	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const (
	ContextUserID     = "userID"
	ContextUserRole   = "userRole"
	ContextAuthMethod = "authMethod"
	ContextAPIKeyID   = "apiKeyID"

	AuthMethodJWT    = "jwt"
	AuthMethodAPIKey = "api_key"

	HeaderAPIKey = "X-API-Key"
)

// KeyVerifier valida o valor do header X-API-Key.
type KeyVerifier interface {
	Verify(ctx context.Context, plain string) (*models.APIKey, error)
}

// AuthMiddleware aceita Bearer JWT ou X-API-Key. keys pode ser nil.
// Só apikey.ErrInvalidKey vira 401; falhas do banco seguem como 500.
func AuthMiddleware(secret string, keys KeyVerifier, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader(HeaderAPIKey); key != "" && keys != nil {
			k, err := keys.Verify(c.Request.Context(), key)
			if errors.Is(err, apikey.ErrInvalidKey) {
				httperr.Unauthorized(c, "invalid_api_key", "Chave de API inválida.")
				c.Abort()
				return
			}
			if err != nil {
				httperr.Respond(c, log, err)
				c.Abort()
				return
			}
			c.Set(ContextAuthMethod, AuthMethodAPIKey)
			c.Set(ContextAPIKeyID, k.ID)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Autenticação necessária.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Header Authorization inválido.")
			c.Abort()
			return
		}

		claims, err := auth.Parse(secret, parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token inválido ou expirado.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextAuthMethod, AuthMethodJWT)

		c.Next()
	}
}

// RequireUser barra chamadas feitas só com chave de API.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextUserID); !ok {
			httperr.Write(c, 403, "user_required", "Operação exige login de usuário.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID devolve o usuário autenticado, ou nil quando a chamada veio
// por chave de API.
func UserID(c *gin.Context) *uint {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
