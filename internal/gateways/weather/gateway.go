package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/cache"
	httpclient "github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/http"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/logger"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/metrics"
)

const gatewayName = "weather"

const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

var (
	ErrWeatherTimeout = errors.New("WEATHER_TIMEOUT")
	ErrWeatherFailed  = errors.New("WEATHER_FAILED")
)

type Gateway struct {
	config *Config
	client *httpclient.Client
	cache  *cache.Cache
	logger logger.Logger
}

func NewGateway(config *Config, responseCache *cache.Cache, log logger.Logger) *Gateway {
	return &Gateway{
		config: config,
		client: httpclient.NewClient(config.Timeout),
		cache: responseCache,
		logger: log.With(map[string]interface{}{
			"gateway": gatewayName,
		}),
	}
}

// Fetch returns a weather snapshot for the request. Coordinates are resolved
// through the geolocation chain when the caller supplied none. Upstream
// failure never propagates: the canned fallback snapshot is returned along
// with a note describing the degradation.
func (g *Gateway) Fetch(ctx context.Context, lat, lon float64, haveCoords bool) (*Snapshot, string) {
	coords := Coordinates{Lat: lat, Lon: lon}
	if !haveCoords {
		coords = g.locate(ctx)
	}

	cacheKey := fmt.Sprintf("weather:%.2f:%.2f", coords.Lat, coords.Lon)
	if raw, ok := g.cache.Get(ctx, cacheKey); ok {
		var cached Snapshot
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, ""
		}
	}

	snap, err := g.fetchLive(ctx, coords)
	if err != nil {
		reason := metrics.OutcomeFailed
		if errors.Is(err, ErrWeatherTimeout) {
			reason = metrics.OutcomeTimedOut
		}
		metrics.GatewayCallsTotal.WithLabelValues(gatewayName, reason).Inc()
		metrics.GatewayFallbacksTotal.WithLabelValues(gatewayName, reason).Inc()
		g.logger.Warn("weather upstream unavailable, serving fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return g.fallbackSnapshot(), "Live weather service unavailable; showing typical conditions for " + g.config.DefaultCity + "."
	}

	metrics.GatewayCallsTotal.WithLabelValues(gatewayName, metrics.OutcomeSuccess).Inc()

	// Reverse geocoding is best effort: its failure only degrades the label.
	if name := g.reverseGeocode(ctx, coords); name != "" {
		snap.LocationName = name
	} else if coords.City != "" {
		snap.LocationName = coords.City
	}

	if encoded, err := json.Marshal(snap); err == nil {
		g.cache.Set(ctx, cacheKey, string(encoded), g.config.CacheTTL)
	}
	return snap, ""
}

func (g *Gateway) fetchLive(ctx context.Context, coords Coordinates) (*Snapshot, error) {
	url := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f&current=temperature_2m,apparent_temperature,relative_humidity_2m,wind_speed_10m,weather_code&daily=temperature_2m_min,temperature_2m_max,weather_code&forecast_days=5&timezone=auto",
		g.config.BaseURL, coords.Lat, coords.Lon,
	)

	resp, err := g.client.Get(ctx, url)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrWeatherTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrWeatherFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrWeatherFailed, resp.StatusCode)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode error: %v", ErrWeatherFailed, err)
	}

	return g.normalize(&payload), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

// normalize shapes the upstream payload into a Snapshot. The forecast keeps
// upstream date order (ascending) and is capped at five days.
func (g *Gateway) normalize(payload *openMeteoResponse) *Snapshot {
	snap := &Snapshot{
		LocationName: g.config.DefaultCity,
		TemperatureC: payload.Current.Temperature2m,
		FeelsLikeC:   payload.Current.ApparentTemperature,
		HumidityPct:  payload.Current.RelativeHumidity2m,
		WindSpeedMs:  payload.Current.WindSpeed10m,
		Condition:    conditionFromCode(payload.Current.WeatherCode),
		Forecast:     []ForecastDay{},
		Alerts:       []Alert{},
		Source:       SourceLive,
	}

	days := len(payload.Daily.Time)
	if days > 5 {
		days = 5
	}
	for i := 0; i < days; i++ {
		if i >= len(payload.Daily.Temperature2mMin) || i >= len(payload.Daily.Temperature2mMax) {
			break
		}
		condition := ""
		if i < len(payload.Daily.WeatherCode) {
			condition = conditionFromCode(payload.Daily.WeatherCode[i])
		}
		snap.Forecast = append(snap.Forecast, ForecastDay{
			Date:      payload.Daily.Time[i],
			MinC:      payload.Daily.Temperature2mMin[i],
			MaxC:      payload.Daily.Temperature2mMax[i],
			Condition: condition,
		})
	}

	snap.Alerts = deriveAlerts(snap)
	return snap
}

// deriveAlerts produces farmer advisories from current conditions.
func deriveAlerts(snap *Snapshot) []Alert {
	alerts := []Alert{}
	if snap.TemperatureC >= 40 {
		alerts = append(alerts, Alert{
			Kind:     "heatwave",
			Severity: "high",
			Message:  "Extreme heat expected. Irrigate in the early morning or evening and avoid midday field work.",
		})
	}
	if snap.Condition == "Thunderstorm" {
		alerts = append(alerts, Alert{
			Kind:     "storm",
			Severity: "high",
			Message:  "Thunderstorm conditions. Postpone spraying and harvesting operations.",
		})
	}
	if snap.WindSpeedMs >= 15 {
		alerts = append(alerts, Alert{
			Kind:     "wind",
			Severity: "medium",
			Message:  "Strong winds expected. Secure greenhouses and delay pesticide application.",
		})
	}
	return alerts
}
