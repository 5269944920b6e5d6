// README: Plan generation handler (persona-conditioned itineraries).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tabiplan/internal/service"
)

// generateTimeout bounds one model call end to end.
const generateTimeout = 60 * time.Second

// PlanGenerator is implemented by service.Planner.
type PlanGenerator interface {
	Generate(ctx context.Context, userText, personaKey string) (*service.Plan, error)
}

type PlanHandler struct {
	planner PlanGenerator
}

func NewPlanHandler(planner PlanGenerator) *PlanHandler {
	return &PlanHandler{planner: planner}
}

type planReq struct {
	Text    string `json:"text"`
	Persona string `json:"persona"`
}

// Generate handles POST /api/plan.
func (h *PlanHandler) Generate(c *gin.Context) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	plan, err := h.planner.Generate(ctx, req.Text, req.Persona)
	if err != nil {
		writePlanError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, plan)
}
