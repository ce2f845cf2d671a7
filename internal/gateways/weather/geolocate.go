package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/errors"
	httpclient "github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/http"
)

// locate resolves coordinates by IP, falling back to the hardcoded default
// location when the whole provider chain fails.
func (g *Gateway) locate(ctx context.Context) Coordinates {
	coords, err := g.locateByIP(ctx)
	if err != nil {
		g.logger.Warn("geolocation failed, using default location", map[string]interface{}{
			"code":  string(apperrors.CodeOf(err)),
			"error": err.Error(),
			"city":  g.config.DefaultCity,
		})
		return Coordinates{
			Lat:  g.config.DefaultLat,
			Lon:  g.config.DefaultLon,
			City: g.config.DefaultCity,
		}
	}
	return coords
}

// locateByIP walks the IP-geolocation provider chain in fixed order, stopping
// at the first provider returning usable coordinates.
func (g *Gateway) locateByIP(ctx context.Context) (Coordinates, error) {
	client := httpclient.NewClient(g.config.GeoTimeout)

	var lastErr error
	for _, provider := range g.config.GeoProviders {
		coords, err := queryGeoProvider(ctx, client, provider)
		if err != nil {
			g.logger.Debug("geolocation provider failed", map[string]interface{}{
				"provider": provider,
				"error":    err.Error(),
			})
			lastErr = err
			continue
		}
		return coords, nil
	}

	detail := fmt.Sprintf("%d providers tried", len(g.config.GeoProviders))
	if lastErr != nil {
		detail = fmt.Sprintf("%s, last error: %v", detail, lastErr)
	}
	return Coordinates{}, apperrors.NewGeolocationError(detail)
}

func queryGeoProvider(ctx context.Context, client *httpclient.Client, url string) (Coordinates, error) {
	resp, err := client.Get(ctx, url)
	if err != nil {
		return Coordinates{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("status %d", resp.StatusCode)
	}

	var payload geoProviderResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Coordinates{}, err
	}

	lat, lon := payload.coords()
	if lat == 0 && lon == 0 {
		return Coordinates{}, fmt.Errorf("no usable coordinates")
	}
	return Coordinates{Lat: lat, Lon: lon, City: payload.City}, nil
}

// reverseGeocode resolves coordinates to a place name. Best effort only;
// empty string on any failure.
func (g *Gateway) reverseGeocode(ctx context.Context, coords Coordinates) string {
	if g.config.ReverseGeoURL == "" {
		return ""
	}

	client := httpclient.NewClient(g.config.GeoTimeout)
	url := fmt.Sprintf("%s?lat=%.4f&lon=%.4f&format=json", g.config.ReverseGeoURL, coords.Lat, coords.Lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "farmer-support-api/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var payload reverseGeoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ""
	}
	return payload.placeName()
}
