package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/lior88844/bandly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchCandidates() []models.UserProfile {
	return []models.UserProfile{
		{
			UserID: "u1", Username: "sarah_strings", Instrument: "Violin",
			Genres: []string{"Jazz", "Classical"},
			Location: "Boston, MA", Latitude: 42.3601, Longitude: -71.0589,
		},
		{
			UserID: "u2", Username: "mike_drums", Instrument: "Drums",
			Genres: []string{"Rock"},
			Location: "Boston, MA", Latitude: 42.3554, Longitude: -71.0640,
		},
		{
			UserID: "u3", Username: "far_fiddler", Instrument: "Violin",
			Genres: []string{"Jazz"},
			Location: "New York, NY", Latitude: 40.7128, Longitude: -74.0060,
		},
		{
			UserID: "u4", Username: "coordless_cass", Instrument: "Violin",
			Genres: []string{"Jazz"},
			Location: "Boston, MA",
		},
		{
			UserID: "u5", Username: "violet", Instrument: "violin",
			Genres: []string{"Jazz"},
			Location: "Boston, MA", Latitude: 42.3601, Longitude: -71.0589,
		},
	}
}

func TestApplyFiltersInstrumentGenreRadius(t *testing.T) {
	filters := models.SearchFilters{
		Instrument:  "Violin",
		Genre:       "Jazz",
		RadiusKm:    10,
		Coordinates: &models.Coordinates{Lat: 42.3601, Lng: -71.0589},
	}

	results := ApplyFilters(searchCandidates(), filters)

	require.Len(t, results, 1)
	assert.Equal(t, "u1", results[0].UserID)
}

func TestApplyFiltersInstrumentIsCaseSensitive(t *testing.T) {
	results := ApplyFilters(searchCandidates(), models.SearchFilters{Instrument: "violin"})
	require.Len(t, results, 1)
	assert.Equal(t, "u5", results[0].UserID)
}

func TestApplyFiltersExcludesCandidatesWithoutCoordinates(t *testing.T) {
	// u4 sits in Boston by its location text, but with no stored
	// coordinates the radius predicate must drop it.
	filters := models.SearchFilters{
		RadiusKm:    10000,
		Coordinates: &models.Coordinates{Lat: 42.3601, Lng: -71.0589},
	}

	results := ApplyFilters(searchCandidates(), filters)
	for _, p := range results {
		assert.NotEqual(t, "u4", p.UserID)
	}
	assert.Len(t, results, 4)
}

func TestApplyFiltersLocationSubstringFallback(t *testing.T) {
	// No resolved coordinates: typed location matches stored text,
	// case-insensitively.
	filters := models.SearchFilters{Location: "boston"}

	results := ApplyFilters(searchCandidates(), filters)
	require.Len(t, results, 4)
	for _, p := range results {
		assert.NotEqual(t, "u3", p.UserID)
	}
}

func TestApplyFiltersFreeTextOverUsernameInstrumentGenres(t *testing.T) {
	candidates := searchCandidates()

	byUsername := ApplyFilters(candidates, models.SearchFilters{Query: "fiddler"})
	require.Len(t, byUsername, 1)
	assert.Equal(t, "u3", byUsername[0].UserID)

	byInstrument := ApplyFilters(candidates, models.SearchFilters{Query: "DRUM"})
	require.Len(t, byInstrument, 1)
	assert.Equal(t, "u2", byInstrument[0].UserID)

	byGenre := ApplyFilters(candidates, models.SearchFilters{Query: "classi"})
	require.Len(t, byGenre, 1)
	assert.Equal(t, "u1", byGenre[0].UserID)
}

func TestApplyFiltersPreservesInputOrder(t *testing.T) {
	results := ApplyFilters(searchCandidates(), models.SearchFilters{Genre: "Jazz"})
	var ids []string
	for _, p := range results {
		ids = append(ids, p.UserID)
	}
	assert.Equal(t, []string{"u1", "u3", "u4", "u5"}, ids)
}

func TestApplyFiltersNoFiltersReturnsAll(t *testing.T) {
	assert.Len(t, ApplyFilters(searchCandidates(), models.SearchFilters{}), 5)
}

type stubProfileSource struct {
	profiles []models.UserProfile
	err      error
}

func (s *stubProfileSource) ProfilesForSearch(ctx context.Context, excludeUserID string) ([]models.UserProfile, error) {
	return s.profiles, s.err
}

type stubGeocoder struct {
	coords *models.Coordinates
	err    error
	calls  int
}

func (g *stubGeocoder) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	g.calls++
	return g.coords, g.err
}

func TestSearchFallsBackWhenStoreUnavailable(t *testing.T) {
	service := &SearchService{
		Profiles: &stubProfileSource{err: fmt.Errorf("%w: scan failed", ErrDataSourceUnavailable)},
		Fallback: searchCandidates(),
	}

	result, err := service.Search(context.Background(), "me", models.SearchFilters{Genre: "Jazz"})
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Len(t, result.Profiles, 4, "identical filter semantics on the fallback dataset")
}

func TestSearchPropagatesOtherErrors(t *testing.T) {
	service := &SearchService{
		Profiles: &stubProfileSource{err: fmt.Errorf("unmarshal blew up")},
	}

	_, err := service.Search(context.Background(), "me", models.SearchFilters{})
	assert.Error(t, err)
}

func TestSearchGeocodesTypedLocation(t *testing.T) {
	geocoder := &stubGeocoder{coords: &models.Coordinates{Lat: 42.3601, Lng: -71.0589}}
	service := &SearchService{
		Profiles: &stubProfileSource{profiles: searchCandidates()},
		Geocoder: geocoder,
	}

	result, err := service.Search(context.Background(), "me", models.SearchFilters{
		Location: "Boston, MA",
		RadiusKm: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, geocoder.calls)

	// Radius applied: the New York and coordinate-less candidates are out
	var ids []string
	for _, p := range result.Profiles {
		ids = append(ids, p.UserID)
	}
	assert.Equal(t, []string{"u1", "u2", "u5"}, ids)
}

func TestSearchUnresolvableLocationFallsBackToSubstring(t *testing.T) {
	geocoder := &stubGeocoder{err: ErrLocationNotFound}
	service := &SearchService{
		Profiles: &stubProfileSource{profiles: searchCandidates()},
		Geocoder: geocoder,
	}

	result, err := service.Search(context.Background(), "me", models.SearchFilters{
		Location: "boston",
		RadiusKm: 10,
	})
	require.NoError(t, err)
	assert.False(t, result.Degraded)

	// Substring match keeps the coordinate-less Boston profile
	var ids []string
	for _, p := range result.Profiles {
		ids = append(ids, p.UserID)
	}
	assert.Equal(t, []string{"u1", "u2", "u4", "u5"}, ids)
}

func TestSearchDeviceCoordinatesSkipGeocoding(t *testing.T) {
	geocoder := &stubGeocoder{coords: &models.Coordinates{Lat: 0, Lng: 0}}
	service := &SearchService{
		Profiles: &stubProfileSource{profiles: searchCandidates()},
		Geocoder: geocoder,
	}

	_, err := service.Search(context.Background(), "me", models.SearchFilters{
		Location:    "Boston, MA",
		RadiusKm:    10,
		Coordinates: &models.Coordinates{Lat: 42.3601, Lng: -71.0589},
		FromDevice:  true,
	})
	require.NoError(t, err)
	assert.Zero(t, geocoder.calls)
}
