package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/errors"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		BaseURL:     "http://localhost:0",
		Timeout:     2 * time.Second,
		GeoTimeout:  time.Second,
		DefaultCity: "Delhi",
		DefaultLat:  28.6139,
		DefaultLon:  77.2090,
	}
}

const meteoPayload = `{
	"current": {
		"temperature_2m": 36.5,
		"apparent_temperature": 39.1,
		"relative_humidity_2m": 48,
		"wind_speed_10m": 4.2,
		"weather_code": 2
	},
	"daily": {
		"time": ["2025-06-16","2025-06-17","2025-06-18","2025-06-19","2025-06-20"],
		"temperature_2m_min": [26,27,26,25,26],
		"temperature_2m_max": [39,40,38,37,38],
		"weather_code": [1,2,61,3,0]
	}
}`

func TestFetch_LiveSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Contains(t, r.URL.RawQuery, "latitude=28.6139")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(meteoPayload))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.BaseURL = server.URL
	cfg.ReverseGeoURL = "" // skip best-effort lookup in tests

	gw := NewGateway(cfg, nil, logger.NewTestLogger(t))
	snap, note := gw.Fetch(context.Background(), 28.6139, 77.2090, true)

	require.NotNil(t, snap)
	assert.Empty(t, note)
	assert.Equal(t, "live", snap.Source)
	assert.Equal(t, 36.5, snap.TemperatureC)
	assert.Equal(t, 39.1, snap.FeelsLikeC)
	assert.Equal(t, 48, snap.HumidityPct)
	assert.Equal(t, "Partly Cloudy", snap.Condition)
	require.Len(t, snap.Forecast, 5)
	assert.Equal(t, "2025-06-16", snap.Forecast[0].Date)
	assert.Equal(t, "Rain", snap.Forecast[2].Condition)

	// Forecast dates must be ascending.
	for i := 1; i < len(snap.Forecast); i++ {
		assert.Less(t, snap.Forecast[i-1].Date, snap.Forecast[i].Date)
	}
}

func TestFetch_UpstreamDown_ServesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.BaseURL = server.URL

	gw := NewGateway(cfg, nil, logger.NewTestLogger(t))
	snap, note := gw.Fetch(context.Background(), 30.9, 75.8, true)

	require.NotNil(t, snap)
	assert.Equal(t, "fallback", snap.Source)
	assert.Equal(t, "Delhi", snap.LocationName)
	assert.NotEmpty(t, note)
	assert.Len(t, snap.Forecast, 5)
}

func TestFetch_UpstreamTimeout_ServesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(meteoPayload))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.BaseURL = server.URL
	cfg.Timeout = 50 * time.Millisecond

	gw := NewGateway(cfg, nil, logger.NewTestLogger(t))
	snap, note := gw.Fetch(context.Background(), 30.9, 75.8, true)

	require.NotNil(t, snap)
	assert.Equal(t, "fallback", snap.Source)
	assert.NotEmpty(t, note)
}

func TestLocate_ProviderChain(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer dead.Close()

	alive := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"lat": 30.9010, "lon": 75.8573, "city": "Ludhiana"}`))
	}))
	defer alive.Close()

	cfg := testConfig()
	cfg.GeoProviders = []string{dead.URL, alive.URL}

	gw := NewGateway(cfg, nil, logger.NewTestLogger(t))
	coords := gw.locate(context.Background())

	assert.Equal(t, 30.9010, coords.Lat)
	assert.Equal(t, "Ludhiana", coords.City)
}

func TestLocate_AllProvidersDown_DefaultLocation(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer dead.Close()

	cfg := testConfig()
	cfg.GeoProviders = []string{dead.URL, dead.URL, dead.URL}

	gw := NewGateway(cfg, nil, logger.NewTestLogger(t))
	coords := gw.locate(context.Background())

	assert.Equal(t, 28.6139, coords.Lat)
	assert.Equal(t, "Delhi", coords.City)
}

func TestLocateByIP_ExhaustedChainClassified(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer dead.Close()

	cfg := testConfig()
	cfg.GeoProviders = []string{dead.URL, dead.URL}

	gw := NewGateway(cfg, nil, logger.NewTestLogger(t))
	_, err := gw.locateByIP(context.Background())

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeGeolocationFailed, apperrors.CodeOf(err))
	assert.True(t, apperrors.IsMaskable(err))
	assert.Contains(t, err.Error(), "geolocation")
}

func TestDeriveAlerts(t *testing.T) {
	tests := []struct {
		name      string
		snap      *Snapshot
		wantKinds []string
	}{
		{
			name:      "calm conditions",
			snap:      &Snapshot{TemperatureC: 28, WindSpeedMs: 3, Condition: "Clear"},
			wantKinds: []string{},
		},
		{
			name:      "heatwave",
			snap:      &Snapshot{TemperatureC: 42, WindSpeedMs: 3, Condition: "Clear"},
			wantKinds: []string{"heatwave"},
		},
		{
			name:      "storm and wind",
			snap:      &Snapshot{TemperatureC: 30, WindSpeedMs: 18, Condition: "Thunderstorm"},
			wantKinds: []string{"storm", "wind"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := deriveAlerts(tt.snap)
			kinds := make([]string, 0, len(alerts))
			for _, a := range alerts {
				kinds = append(kinds, a.Kind)
			}
			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}
