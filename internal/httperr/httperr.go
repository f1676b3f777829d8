package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func ServiceUnavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// StatusFor devolve o status HTTP equivalente ao erro.
func StatusFor(err error) int {
	be, ok := AsBusiness(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch be.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// Respond traduz erros de negócio para a resposta estruturada e
// registra falhas internas sem expor detalhes ao cliente.
func Respond(c *gin.Context, log zerolog.Logger, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.FullPath()).
			Msg("store error")
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	c.JSON(StatusFor(err), HTTPError{
		Code:    be.Code,
		Message: be.Message,
		Field:   be.Field,
	})
}
