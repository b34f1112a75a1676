package models

// Coordinates is a WGS84 lat/lng pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SearchFilters is the ephemeral query object for one musician search.
// Coordinates are either supplied by the caller's device or resolved by
// geocoding Location; FromDevice records which path produced them.
type SearchFilters struct {
	Query       string       `json:"query,omitempty"`
	Instrument  string       `json:"instrument,omitempty"`
	Genre       string       `json:"genre,omitempty"`
	Location    string       `json:"location,omitempty"`
	RadiusKm    int          `json:"radiusKm,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	FromDevice  bool         `json:"fromDevice,omitempty"`
}
