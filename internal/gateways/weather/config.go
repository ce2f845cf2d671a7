package weather

import "time"

// Config holds the weather gateway settings.
type Config struct {
	BaseURL       string
	ReverseGeoURL string
	GeoProviders  []string // tried in order; first usable coordinates win
	Timeout       time.Duration
	GeoTimeout    time.Duration
	CacheTTL      time.Duration

	DefaultCity string
	DefaultLat  float64
	DefaultLon  float64
}
