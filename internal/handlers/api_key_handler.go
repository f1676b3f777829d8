package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/apikey"
	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
)

type APIKeyHandler struct {
	keys  *apikey.Service
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewAPIKeyHandler(keys *apikey.Service, audit *audit.Dispatcher, log zerolog.Logger) *APIKeyHandler {
	return &APIKeyHandler{keys: keys, audit: audit, log: log}
}

type CreateAPIKeyRequest struct {
	Name        string `json:"nome" binding:"required"`
	Description string `json:"descricao"`
}

func (h *APIKeyHandler) List(c *gin.Context) {
	keys, err := h.keys.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, keys)
}

// Create devolve a chave em texto puro. Ela não pode ser recuperada depois.
func (h *APIKeyHandler) Create(c *gin.Context) {
	var req CreateAPIKeyRequest
	if !bindJSON(c, &req) {
		return
	}

	plain, key, err := h.keys.Generate(c.Request.Context(), strings.TrimSpace(req.Name), req.Description)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserID(c),
		Action:   "api_key_created",
		Entity:   "api_key",
		EntityID: &key.ID,
	})

	httpresp.Created(c, gin.H{
		"message": "Chave criada. Guarde o valor, ele não será exibido novamente.",
		"chave":   plain,
		"dados":   key,
	})
}

func (h *APIKeyHandler) Revoke(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.keys.Revoke(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = httperr.NotFoundErr("api_key_not_found", "Chave não encontrada.")
		}
		httperr.Respond(c, h.log, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.UserID(c),
		Action:   "api_key_revoked",
		Entity:   "api_key",
		EntityID: &id,
	})

	httpresp.Message(c, "Chave revogada com sucesso.")
}
