package weather

import "time"

// fallbackSnapshot is the canned substitute served when the upstream is
// unreachable. Values are typical north-Indian plains conditions; the source
// field lets callers and the UI distinguish it from live data.
func (g *Gateway) fallbackSnapshot() *Snapshot {
	today := time.Now()
	forecast := make([]ForecastDay, 0, 5)
	for i := 1; i <= 5; i++ {
		forecast = append(forecast, ForecastDay{
			Date:      today.AddDate(0, 0, i).Format("2006-01-02"),
			MinC:      22,
			MaxC:      34,
			Condition: "Partly Cloudy",
		})
	}

	return &Snapshot{
		LocationName: g.config.DefaultCity,
		TemperatureC: 31,
		FeelsLikeC:   33,
		HumidityPct:  55,
		WindSpeedMs:  3.5,
		Condition:    "Partly Cloudy",
		Forecast:     forecast,
		Alerts:       []Alert{},
		Source:       SourceFallback,
	}
}
