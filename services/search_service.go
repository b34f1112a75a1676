package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/lior88844/bandly/models"
	"github.com/lior88844/bandly/utils"
)

// Geocoder resolves a typed location to coordinates. GeocodingService is
// the production implementation.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}

// ProfileSource supplies the candidate list for one search.
type ProfileSource interface {
	// ProfilesForSearch returns every searchable profile except the
	// requester's own.
	ProfilesForSearch(ctx context.Context, excludeUserID string) ([]models.UserProfile, error)
}

// SearchService applies the musician search filter pipeline over candidates
// from the primary store, falling back to the fixed local dataset when the
// store is unreachable.
type SearchService struct {
	Profiles ProfileSource
	Geocoder Geocoder

	// Fallback overrides models.FallbackProfiles in tests
	Fallback []models.UserProfile
}

// DefaultSearchRadiusKm applies when coordinates are present but the
// caller left the radius unset.
const DefaultSearchRadiusKm = 10

// SearchResult carries the filtered candidates plus a degraded-mode flag
// for display when the fallback dataset served the request.
type SearchResult struct {
	Profiles []models.UserProfile `json:"profiles"`
	Degraded bool                 `json:"degraded"`
}

// Search resolves coordinates for the filters when needed, fetches
// candidates, and runs the filter pipeline. Filter semantics are identical
// on the primary and fallback paths.
func (s *SearchService) Search(ctx context.Context, userID string, filters models.SearchFilters) (*SearchResult, error) {
	s.resolveCoordinates(ctx, &filters)
	if filters.Coordinates != nil && filters.RadiusKm <= 0 {
		filters.RadiusKm = DefaultSearchRadiusKm
	}

	candidates, err := s.Profiles.ProfilesForSearch(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrDataSourceUnavailable) {
			return nil, err
		}
		log.Printf("Primary profile source unavailable, serving fallback dataset: %v", err)
		fallback := s.Fallback
		if fallback == nil {
			fallback = models.FallbackProfiles
		}
		return &SearchResult{Profiles: ApplyFilters(fallback, filters), Degraded: true}, nil
	}

	return &SearchResult{Profiles: ApplyFilters(candidates, filters)}, nil
}

// resolveCoordinates geocodes the typed location unless the device already
// supplied coordinates. Geocoding failure is non-fatal: coordinates stay
// nil and the pipeline falls back to substring location matching.
func (s *SearchService) resolveCoordinates(ctx context.Context, filters *models.SearchFilters) {
	if filters.Coordinates != nil || filters.Location == "" || s.Geocoder == nil {
		return
	}

	coords, err := s.Geocoder.Geocode(ctx, filters.Location)
	if err != nil {
		log.Printf("Geocoding %q failed, using substring location match: %v", filters.Location, err)
		return
	}
	filters.Coordinates = coords
}

// ApplyFilters runs the filter pipeline over candidates, preserving input
// order. Stages, in narrowing order: exact instrument, genre membership,
// geo radius (or location substring when coordinates are unresolved), and
// case-insensitive free text over username, instrument, and genres.
func ApplyFilters(candidates []models.UserProfile, filters models.SearchFilters) []models.UserProfile {
	results := candidates

	if filters.Instrument != "" {
		results = keep(results, func(p models.UserProfile) bool {
			return p.Instrument == filters.Instrument
		})
	}

	if filters.Genre != "" {
		results = keep(results, func(p models.UserProfile) bool {
			for _, g := range p.Genres {
				if g == filters.Genre {
					return true
				}
			}
			return false
		})
	}

	switch {
	case filters.Coordinates != nil:
		radius := filters.RadiusKm
		results = keep(results, func(p models.UserProfile) bool {
			if !p.HasCoordinates() {
				return false
			}
			distance := utils.DistanceKm(filters.Coordinates.Lat, filters.Coordinates.Lng, p.Latitude, p.Longitude)
			return distance <= radius
		})
	case filters.Location != "":
		needle := strings.ToLower(filters.Location)
		results = keep(results, func(p models.UserProfile) bool {
			return strings.Contains(strings.ToLower(p.Location), needle)
		})
	}

	if filters.Query != "" {
		needle := strings.ToLower(filters.Query)
		results = keep(results, func(p models.UserProfile) bool {
			if strings.Contains(strings.ToLower(p.Username), needle) {
				return true
			}
			if strings.Contains(strings.ToLower(p.Instrument), needle) {
				return true
			}
			for _, g := range p.Genres {
				if strings.Contains(strings.ToLower(g), needle) {
					return true
				}
			}
			return false
		})
	}

	return results
}

func keep(profiles []models.UserProfile, predicate func(models.UserProfile) bool) []models.UserProfile {
	var kept []models.UserProfile
	for _, p := range profiles {
		if predicate(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
