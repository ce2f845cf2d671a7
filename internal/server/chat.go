package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/catalog"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/classifier"
	apperrors "github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/errors"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/validation"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/assistant"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/weather"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/synthetic"
)

type chatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

func (s *Server) handleChat(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusBadRequest, apperrors.NewInputValidationError("could not read request body"))
		return
	}
	if err := validation.ValidateChatRequest(body); err != nil {
		respondError(c, http.StatusBadRequest, apperrors.NewInputValidationError(err.Error()))
		return
	}

	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(c, http.StatusBadRequest, apperrors.NewInputValidationError("malformed JSON body"))
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	intent := classifier.Classify(req.Message)
	ctx := c.Request.Context()

	var weatherCtx, priceCtx string
	if intent.IsWeather {
		snapshot, _ := s.deps.Weather.Fetch(ctx, 0, 0, false)
		weatherCtx = summarizeWeather(snapshot)
	}
	if intent.IsPrice {
		priceCtx = s.priceContextFor(c, intent)
	}

	reply, source := s.deps.Assistant.Answer(ctx, assistant.AnswerRequest{
		Message:        req.Message,
		Language:       req.Language,
		WeatherContext: weatherCtx,
		PriceContext:   priceCtx,
	})

	payload := gin.H{
		"response":    reply,
		"dataFetched": weatherCtx != "" || priceCtx != "",
		"queryTypes": gin.H{
			"weather": intent.IsWeather,
			"prices":  intent.IsPrice,
		},
		"source": source,
	}
	if source == assistant.SourceFallback {
		payload["note"] = "Assistant model unavailable; served a scripted reply."
	}
	respondOK(c, payload)
}

// priceContextFor fetches live rows for the classified commodity and region,
// substituting synthetic rows so the assistant always has prices to quote.
func (s *Server) priceContextFor(c *gin.Context, intent classifier.Result) string {
	commodity := catalog.DefaultCommodity
	if intent.Commodity != "" {
		if found := catalog.CommodityByName(intent.Commodity); found != nil {
			commodity = found
		}
	}
	regionCode := intent.RegionCode
	if regionCode == "" {
		regionCode = s.deps.Config.Fallback.DefaultStateCode
	}
	stateName := catalog.RegionName(regionCode)

	rows, err := s.deps.Prices.Fetch(c.Request.Context(), stateName, commodity.Name)
	if err != nil {
		rows = s.deps.Generator.GenerateBatch(commodity, regionCode, time.Now(), 5)
	}
	return summarizePrices(rows)
}

func summarizeWeather(snap *weather.Snapshot) string {
	if snap == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Location: %s\n", snap.LocationName)
	fmt.Fprintf(&b, "Now: %.1f°C (feels like %.1f°C), %s, humidity %d%%, wind %.1f m/s\n",
		snap.TemperatureC, snap.FeelsLikeC, snap.Condition, snap.HumidityPct, snap.WindSpeedMs)
	for _, day := range snap.Forecast {
		fmt.Fprintf(&b, "%s: %.0f-%.0f°C, %s\n", day.Date, day.MinC, day.MaxC, day.Condition)
	}
	for _, alert := range snap.Alerts {
		fmt.Fprintf(&b, "Alert (%s): %s\n", alert.Severity, alert.Message)
	}
	return b.String()
}

func summarizePrices(rows []synthetic.PriceQuantum) string {
	if len(rows) == 0 {
		return ""
	}
	if len(rows) > 5 {
		rows = rows[:5]
	}
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s (%s) at %s, %s: modal Rs %d per %s (min %d, max %d)\n",
			row.Commodity, row.Variety, row.Market, row.District,
			row.ModalPrice, row.Unit, row.MinPrice, row.MaxPrice)
	}
	return b.String()
}
