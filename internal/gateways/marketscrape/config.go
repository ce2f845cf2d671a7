package marketscrape

import "time"

// Config holds the Agmarknet scraping settings.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	DateWindowDays int
	PacingDelay    time.Duration
	MaxRows        int
}
