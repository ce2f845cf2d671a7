// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like APIS_GEMINI_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment overlay, e.g. config.production.yaml
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig() // ignore error if not found

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Load .env from multiple possible locations so tests and the binary
// behave the same regardless of working directory.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "farmer-support-api"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ReadHeaderTimeout == 0 {
		cfg.Server.ReadHeaderTimeout = 5000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = "localhost:6379"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.APIs.Gemini.ChatModel == "" {
		cfg.APIs.Gemini.ChatModel = "gemini-2.0-flash"
	}
	if cfg.APIs.Gemini.VisionModel == "" {
		cfg.APIs.Gemini.VisionModel = "gemini-2.0-flash"
	}
	if cfg.APIs.Gemini.Timeout == 0 {
		cfg.APIs.Gemini.Timeout = 15000
	}

	if cfg.APIs.Weather.BaseURL == "" {
		cfg.APIs.Weather.BaseURL = "https://api.open-meteo.com/v1/forecast"
	}
	if cfg.APIs.Weather.ReverseGeoURL == "" {
		cfg.APIs.Weather.ReverseGeoURL = "https://nominatim.openstreetmap.org/reverse"
	}
	if len(cfg.APIs.Weather.GeoProviders) == 0 {
		cfg.APIs.Weather.GeoProviders = []string{
			"http://ip-api.com/json",
			"https://ipapi.co/json",
			"https://ipwho.is",
		}
	}
	if cfg.APIs.Weather.Timeout == 0 {
		cfg.APIs.Weather.Timeout = 10000
	}
	if cfg.APIs.Weather.GeoTimeout == 0 {
		cfg.APIs.Weather.GeoTimeout = 5000
	}
	if cfg.APIs.Weather.CacheTTL == 0 {
		cfg.APIs.Weather.CacheTTL = 600
	}

	if cfg.APIs.OGD.BaseURL == "" {
		cfg.APIs.OGD.BaseURL = "https://api.data.gov.in/resource"
	}
	if cfg.APIs.OGD.ResourceID == "" {
		cfg.APIs.OGD.ResourceID = "9ef84268-d588-465a-a308-a864a43d0070"
	}
	if cfg.APIs.OGD.Timeout == 0 {
		cfg.APIs.OGD.Timeout = 10000
	}
	if cfg.APIs.OGD.CacheTTL == 0 {
		cfg.APIs.OGD.CacheTTL = 1800
	}

	if cfg.APIs.Agmarknet.BaseURL == "" {
		cfg.APIs.Agmarknet.BaseURL = "https://agmarknet.gov.in/SearchCmmMkt.aspx"
	}
	if cfg.APIs.Agmarknet.Timeout == 0 {
		cfg.APIs.Agmarknet.Timeout = 15000
	}
	if cfg.APIs.Agmarknet.DateWindowDays == 0 {
		cfg.APIs.Agmarknet.DateWindowDays = 4 // today plus three days back
	}
	if cfg.APIs.Agmarknet.PacingDelay == 0 {
		cfg.APIs.Agmarknet.PacingDelay = 1000
	}

	if cfg.Fallback.DefaultStateCode == "" {
		cfg.Fallback.DefaultStateCode = "DL"
	}
	if cfg.Fallback.DefaultCity == "" {
		cfg.Fallback.DefaultCity = "Delhi"
	}
	if cfg.Fallback.DefaultLatitude == 0 {
		cfg.Fallback.DefaultLatitude = 28.6139
	}
	if cfg.Fallback.DefaultLongitude == 0 {
		cfg.Fallback.DefaultLongitude = 77.2090
	}
	if cfg.Fallback.MaxPriceRows == 0 {
		cfg.Fallback.MaxPriceRows = 50
	}
}

// Direct env override for secrets that are usually supplied outside yaml.
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIs.Gemini.APIKey = v
	}
	if v := os.Getenv("OGD_API_KEY"); v != "" {
		cfg.APIs.OGD.APIKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("REDIS_ADDRESS"); v != "" {
		cfg.Redis.Address = v
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server.port must be set")
	}
	if cfg.APIs.Agmarknet.DateWindowDays < 1 {
		return fmt.Errorf("apis.agmarknet.date_window_days must be at least 1")
	}
	if cfg.Fallback.MaxPriceRows < 1 {
		return fmt.Errorf("fallback.max_price_rows must be at least 1")
	}
	return nil
}
