package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/lior88844/bandly/models"
)

// ErrLocationNotFound is the non-fatal sentinel for an address the geocoder
// cannot resolve. Callers fall back to substring location matching.
var ErrLocationNotFound = errors.New("location not found")

const geocodeEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// GeocodingService resolves free-text addresses to coordinates through the
// Google Maps Geocoding API.
type GeocodingService struct {
	APIKey   string
	Endpoint string
	Client   *http.Client
}

func NewGeocodingService() *GeocodingService {
	return &GeocodingService{
		APIKey:   os.Getenv("GOOGLE_MAPS_API_KEY"),
		Endpoint: geocodeEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location models.Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address to coordinates. Unresolvable addresses and
// transport failures both surface as ErrLocationNotFound; the distinction
// never changes what the caller does.
func (g *GeocodingService) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	if g.APIKey == "" {
		return nil, errors.New("Google Maps API key is missing")
	}
	if address == "" {
		return nil, ErrLocationNotFound
	}

	query := url.Values{}
	query.Set("address", address)
	query.Set("key", g.APIKey)

	endpoint := g.Endpoint
	if endpoint == "" {
		endpoint = geocodeEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocationNotFound, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return nil, ErrLocationNotFound
	}

	location := decoded.Results[0].Geometry.Location
	return &location, nil
}
