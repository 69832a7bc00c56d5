package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
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

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// FromDB maps a repository error to the HTTP taxonomy: missing rows
// (including rows owned by another tenant) are 404, exhausted pools and
// expired deadlines are 503, anything else is a 500 persistence failure.
func FromDB(c *gin.Context, err error, notFoundCode string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, notFoundCode, "Recurso não encontrado.")
	case errors.Is(err, context.DeadlineExceeded):
		Unavailable(c, "timeout", "Tempo de resposta excedido.")
	default:
		Internal(c, "persistence_error", "Erro interno do servidor.")
	}
}
