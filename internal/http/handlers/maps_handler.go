// README: Maps helper endpoints (spot suggestions and leg estimates).
package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tabiplan/internal/maps"
)

// mapsTimeout bounds one Google Maps lookup.
const mapsTimeout = 10 * time.Second

// SpotFinder matches maps.PlacesService.
type SpotFinder interface {
	SuggestSpots(ctx context.Context, area string, limit int) ([]maps.Spot, error)
}

// LegEstimator matches maps.RouteService.
type LegEstimator interface {
	EstimateLeg(ctx context.Context, origin, destination, mode string) (maps.Estimate, error)
}

// MapsHandler serves the optional maps endpoints. Both dependencies are nil
// when MAPS_API_KEY is not set, and the endpoints answer 503.
type MapsHandler struct {
	spots  SpotFinder
	routes LegEstimator
}

func NewMapsHandler(spots SpotFinder, routes LegEstimator) *MapsHandler {
	return &MapsHandler{spots: spots, routes: routes}
}

// Spots handles GET /api/spots?near=<area>&limit=<n>.
func (h *MapsHandler) Spots(c *gin.Context) {
	if h.spots == nil {
		writeError(c, http.StatusServiceUnavailable, "maps not configured")
		return
	}

	area := strings.TrimSpace(c.Query("near"))
	if area == "" {
		writeError(c, http.StatusBadRequest, "missing near parameter")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), mapsTimeout)
	defer cancel()

	spots, err := h.spots.SuggestSpots(ctx, area, limit)
	if err != nil {
		log.Printf("spot lookup: %v", err)
		writeError(c, http.StatusBadGateway, "spot lookup failed")
		return
	}

	writeJSON(c, http.StatusOK, gin.H{"near": area, "spots": spots})
}

// Estimate handles GET /api/estimate?from=<place>&to=<place>&mode=<mode>.
func (h *MapsHandler) Estimate(c *gin.Context) {
	if h.routes == nil {
		writeError(c, http.StatusServiceUnavailable, "maps not configured")
		return
	}

	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		writeError(c, http.StatusBadRequest, "missing from or to parameter")
		return
	}
	mode := c.DefaultQuery("mode", "transit")

	ctx, cancel := context.WithTimeout(c.Request.Context(), mapsTimeout)
	defer cancel()

	est, err := h.routes.EstimateLeg(ctx, from, to, mode)
	if err != nil {
		log.Printf("leg estimate: %v", err)
		writeError(c, http.StatusBadGateway, "route lookup failed")
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"from":         from,
		"to":           to,
		"mode":         est.Mode,
		"duration_min": int(est.Duration.Round(time.Minute).Minutes()),
		"distance":     est.Distance,
	})
}
