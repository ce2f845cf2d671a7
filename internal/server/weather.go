package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/weather"
)

func (s *Server) handleWeather(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	haveCoords := latErr == nil && lonErr == nil

	snapshot, note := s.deps.Weather.Fetch(c.Request.Context(), lat, lon, haveCoords)

	forecast := snapshot.Forecast
	if forecast == nil {
		forecast = []weather.ForecastDay{}
	}
	alerts := snapshot.Alerts
	if alerts == nil {
		alerts = []weather.Alert{}
	}

	payload := gin.H{
		"current":  snapshot.Current(),
		"forecast": forecast,
		"alerts":   alerts,
		"source":   snapshot.Source,
	}
	if note != "" {
		payload["note"] = note
	}
	respondOK(c, payload)
}
