package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberflow/barberflow-api/internal/httperr"
)

// parseUintParam reads a numeric path parameter, writing a 400 when it is
// not a valid id. Callers must return immediately when ok is false.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido: "+name)
		return 0, false
	}
	return uint(parsed), true
}
