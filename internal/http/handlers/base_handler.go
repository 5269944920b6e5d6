// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tabiplan/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlanError maps generation failures to HTTP statuses. Blank input is a
// client error carrying the fixed notice; anything else is an upstream
// failure whose cause is embedded so the page can show it.
func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyInput):
		writeError(c, http.StatusBadRequest, service.EmptyInputNotice)
	default:
		writeError(c, http.StatusBadGateway, "エラーが発生しました: "+err.Error())
	}
}
