// README: Usage summary handler.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tabiplan/internal/modules/usage"
)

// UsageSummarizer matches usage.Service.
type UsageSummarizer interface {
	TodaySummary(ctx context.Context) (usage.Summary, error)
}

// UsageHandler reports metering aggregates. The dependency is nil when no
// database is configured, and the endpoint answers 503.
type UsageHandler struct {
	usage UsageSummarizer
}

func NewUsageHandler(usageSvc UsageSummarizer) *UsageHandler {
	return &UsageHandler{usage: usageSvc}
}

// Summary handles GET /api/usage.
func (h *UsageHandler) Summary(c *gin.Context) {
	if h.usage == nil {
		writeError(c, http.StatusServiceUnavailable, usage.ErrNotConfigured.Error())
		return
	}

	sum, err := h.usage.TodaySummary(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, usage.ErrNotConfigured):
			writeError(c, http.StatusServiceUnavailable, err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(c, http.StatusOK, sum)
}
