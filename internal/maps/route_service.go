package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// Estimate is one travel leg between two free-form places.
type Estimate struct {
	Mode     string
	Duration time.Duration
	Distance string
}

// travelModes maps request strings to API modes.
var travelModes = map[string]maps.Mode{
	"transit": maps.TravelModeTransit,
	"driving": maps.TravelModeDriving,
	"walking": maps.TravelModeWalking,
}

// RouteService handles Directions lookups for itinerary legs.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// EstimateLeg returns the duration and distance for a trip from origin to
// destination. Unknown or empty modes fall back to transit, the usual way to
// move between sights in Japan.
func (s *RouteService) EstimateLeg(ctx context.Context, origin, destination, mode string) (Estimate, error) {
	apiMode, ok := travelModes[mode]
	if !ok {
		mode = "transit"
		apiMode = maps.TravelModeTransit
	}

	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        apiMode,
		Language:    "ja", // Japanese place names for consistency
		Region:      "JP", // Bias results to Japan
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return Estimate{}, fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Estimate{}, fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	return Estimate{
		Mode:     mode,
		Duration: leg.Duration,
		Distance: leg.Distance.HumanReadable,
	}, nil
}
