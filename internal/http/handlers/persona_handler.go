// README: Persona listing handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabiplan/internal/persona"
)

type PersonaHandler struct{}

func NewPersonaHandler() *PersonaHandler {
	return &PersonaHandler{}
}

// List handles GET /api/personas. System prompts stay server-side; only keys
// and titles go out.
func (h *PersonaHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"personas": persona.All()})
}
