package ogdprices

import "time"

// Config holds the open-government-data price API settings.
type Config struct {
	BaseURL    string
	ResourceID string
	APIKey     string
	Timeout    time.Duration
	CacheTTL   time.Duration
	MaxRows    int
}
