package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/weather"
)

func TestWeather_Live(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, payload := doJSON(t, srv, http.MethodGet, "/api/weather?lat=28.61&lon=77.21", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "live", payload["source"])
	assert.Nil(t, payload["note"])

	current := payload["current"].(map[string]interface{})
	assert.Equal(t, "New Delhi", current["location"])
	assert.Equal(t, 31.0, current["temperature"])

	forecast, ok := payload["forecast"].([]interface{})
	require.True(t, ok, "forecast is a top-level array")
	assert.Empty(t, forecast)
	_, ok = payload["alerts"].([]interface{})
	require.True(t, ok, "alerts is a top-level array")
}

func TestWeather_NoCoordinatesStillSucceeds(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, payload := doJSON(t, srv, http.MethodGet, "/api/weather", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
}

func TestWeather_FallbackCarriesNote(t *testing.T) {
	srv, stubs := newTestServer(t)
	snap := liveSnapshot()
	snap.LocationName = "Delhi"
	snap.Source = weather.SourceFallback
	stubs.weather.snap = snap
	stubs.weather.note = "Live weather service unavailable; showing typical conditions for Delhi."

	rec, payload := doJSON(t, srv, http.MethodGet, "/api/weather", "")

	assert.Equal(t, http.StatusOK, rec.Code, "upstream failure never surfaces as an error status")
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "fallback", payload["source"])
	require.NotNil(t, payload["note"])
	assert.Contains(t, payload["note"], "typical conditions")

	current := payload["current"].(map[string]interface{})
	assert.Equal(t, "Delhi", current["location"])
}

func TestWeather_MalformedCoordinatesTreatedAsAbsent(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, payload := doJSON(t, srv, http.MethodGet, "/api/weather?lat=abc&lon=77.2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
}
