package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// DefaultSpotLimit caps how many suggestions one lookup returns.
const DefaultSpotLimit = 5

// minSpotRating filters out poorly reviewed results.
const minSpotRating = 4.0

// Spot is a simplified sight-seeing search result.
type Spot struct {
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	Rating           float32 `json:"rating"`
	UserRatingsTotal int     `json:"ratings_total"`
}

// PlacesService handles Text Search lookups for sight suggestions.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// excludedSpotKeywords drops results that show up in sight searches without
// being sights in their own right.
var excludedSpotKeywords = []string{
	"駐車場", "Parking",
	"案内所", "Information",
	"トイレ", "Restroom",
}

// SuggestSpots returns up to limit well-rated sights near the given area.
func (s *PlacesService) SuggestSpots(ctx context.Context, area string, limit int) ([]Spot, error) {
	if strings.TrimSpace(area) == "" {
		return nil, fmt.Errorf("empty area")
	}
	if limit <= 0 || limit > DefaultSpotLimit {
		limit = DefaultSpotLimit
	}

	r := &maps.TextSearchRequest{
		Query:    fmt.Sprintf("%s の観光スポット", area),
		Language: "ja",
		Region:   "JP",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Spot
	for _, result := range resp.Results {
		if result.Rating < minSpotRating {
			continue
		}

		skip := false
		for _, kw := range excludedSpotKeywords {
			if strings.Contains(result.Name, kw) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		results = append(results, Spot{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			UserRatingsTotal: result.UserRatingsTotal,
		})

		if len(results) >= limit {
			break
		}
	}

	return results, nil
}
