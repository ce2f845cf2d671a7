// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	APIs     APIsConfig     `mapstructure:"apis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Fallback FallbackConfig `mapstructure:"fallback"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port              string   `mapstructure:"port"`
	ReadHeaderTimeout int      `mapstructure:"read_header_timeout"` // milliseconds
	ShutdownTimeout   int      `mapstructure:"shutdown_timeout"`    // milliseconds
	CORSOrigins       []string `mapstructure:"cors_origins"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// APIsConfig holds settings for all external service integrations.
type APIsConfig struct {
	Gemini struct {
		APIKey      string `mapstructure:"api_key"`
		ChatModel   string `mapstructure:"chat_model"`
		VisionModel string `mapstructure:"vision_model"`
		Timeout     int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"gemini"`

	Weather struct {
		BaseURL       string   `mapstructure:"base_url"`
		GeoProviders  []string `mapstructure:"geo_providers"`
		ReverseGeoURL string   `mapstructure:"reverse_geo_url"`
		Timeout       int      `mapstructure:"timeout"`     // milliseconds
		GeoTimeout    int      `mapstructure:"geo_timeout"` // milliseconds
		CacheTTL      int      `mapstructure:"cache_ttl"`   // seconds
	} `mapstructure:"weather"`

	OGD struct {
		BaseURL    string `mapstructure:"base_url"`
		ResourceID string `mapstructure:"resource_id"`
		APIKey     string `mapstructure:"api_key"`
		Timeout    int    `mapstructure:"timeout"`   // milliseconds
		CacheTTL   int    `mapstructure:"cache_ttl"` // seconds
	} `mapstructure:"ogd"`

	Agmarknet struct {
		BaseURL        string `mapstructure:"base_url"`
		Timeout        int    `mapstructure:"timeout"`          // milliseconds
		DateWindowDays int    `mapstructure:"date_window_days"` // fallback dates to try
		PacingDelay    int    `mapstructure:"pacing_delay"`     // milliseconds between calls
	} `mapstructure:"agmarknet"`
}

// FallbackConfig holds knobs for the substitute-data policy.
type FallbackConfig struct {
	DefaultStateCode string  `mapstructure:"default_state_code"`
	DefaultCity      string  `mapstructure:"default_city"`
	DefaultLatitude  float64 `mapstructure:"default_latitude"`
	DefaultLongitude float64 `mapstructure:"default_longitude"`
	MaxPriceRows     int     `mapstructure:"max_price_rows"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// --- Duration helpers ---

func (s ServerConfig) ReadHeaderTimeoutDuration() time.Duration {
	return time.Duration(s.ReadHeaderTimeout) * time.Millisecond
}

func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Millisecond
}
