package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/catalog"
	apperrors "github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/errors"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/metrics"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/synthetic"
)

const (
	methodLive      = "live"
	methodSynthetic = "synthetic"
)

// overviewCommodities is the fixed subset scraped for the market overview.
// Scraping is paced at roughly a second per commodity, so the list stays short.
var overviewCommodities = []string{"Wheat", "Paddy", "Onion", "Potato", "Tomato", "Mustard"}

// handlePrices serves GET /api/prices from the government price API, with
// synthetic rows standing in whenever the API fails or has nothing.
func (s *Server) handlePrices(c *gin.Context) {
	regionCode := catalog.ResolveRegionCode(c.Query("state"))
	stateName := catalog.RegionName(regionCode)
	commodityParam := strings.TrimSpace(c.Query("commodity"))

	rows, err := s.deps.Prices.Fetch(c.Request.Context(), stateName, commodityParam)
	if err != nil && !apperrors.IsMaskable(err) {
		var se *apperrors.StandardError
		if !errors.As(err, &se) {
			se = apperrors.NewInputValidationError(err.Error())
		}
		respondError(c, http.StatusBadRequest, se)
		return
	}

	method := methodLive
	var note string
	if err != nil || len(rows) == 0 {
		if err != nil {
			s.logger.Warn("price API unavailable, substituting synthetic rows", map[string]interface{}{
				"code":  string(apperrors.CodeOf(err)),
				"error": err.Error(),
			})
		}
		method = methodSynthetic
		note = "Live price data unavailable; showing estimated prices."
		rows = s.syntheticRows(regionCode, commodityParam)
		metrics.GatewayFallbacksTotal.WithLabelValues("ogd_prices", "synthetic_substitute").Inc()
	}

	maxRows := s.deps.Config.Fallback.MaxPriceRows
	rows = synthetic.Assemble(rows, maxRows)

	payload := gin.H{
		"data":  rows,
		"total": len(rows),
		"metadata": gin.H{
			"state":     stateName,
			"commodity": commodityParam,
			"method":    method,
		},
	}
	if note != "" {
		payload["note"] = note
	}
	respondOK(c, payload)
}

// handleLivePrices serves GET /api/prices/live from the market portal scrape
// only. Unlike its siblings it does not mask failure: when the whole date
// window comes back empty the endpoint answers 404.
func (s *Server) handleLivePrices(c *gin.Context) {
	regionCode := catalog.ResolveRegionCode(c.Query("state"))
	stateName := catalog.RegionName(regionCode)

	commodity := strings.TrimSpace(c.Query("commodity"))
	if commodity == "" {
		commodity = catalog.DefaultCommodity.Name
	}

	rows, err := s.deps.Market.FetchCommodity(c.Request.Context(), commodity, stateName)
	if err != nil || len(rows) == 0 {
		respondError(c, http.StatusNotFound, apperrors.NewNoDataError("agmarknet",
			fmt.Sprintf("no market rows found for %s in %s over the last few days; markets may be closed or data not yet published", commodity, stateName)))
		return
	}

	rows = filterRows(rows, c.Query("district"), c.Query("market"))
	if len(rows) == 0 {
		respondError(c, http.StatusNotFound, apperrors.NewNoDataError("agmarknet",
			"no market rows matched the requested district or market"))
		return
	}

	rows = synthetic.Assemble(rows, s.deps.Config.Fallback.MaxPriceRows)
	respondOK(c, gin.H{
		"data":  rows,
		"total": len(rows),
		"metadata": gin.H{
			"state":     stateName,
			"commodity": commodity,
			"method":    methodLive,
		},
	})
}

// handleMarketPrices serves GET /api/prices/market: a paced multi-commodity
// sweep of the scrape source. When the sweep yields nothing the endpoint
// reports the failure but still attaches synthetic rows for the UI.
func (s *Server) handleMarketPrices(c *gin.Context) {
	regionCode := catalog.ResolveRegionCode(c.Query("state"))
	stateName := catalog.RegionName(regionCode)
	maxRows := s.deps.Config.Fallback.MaxPriceRows

	commodities := make([]catalog.Commodity, 0, len(overviewCommodities))
	for _, name := range overviewCommodities {
		if c := catalog.CommodityByName(name); c != nil {
			commodities = append(commodities, *c)
		}
	}

	rows := s.deps.Market.FetchOverview(c.Request.Context(), stateName, commodities)
	if len(rows) == 0 {
		metrics.GatewayFallbacksTotal.WithLabelValues("market_scrape", "synthetic_substitute").Inc()
		fallback := s.deps.Generator.GenerateMarketOverview(regionCode, time.Now(), maxRows)
		respondOK(c, gin.H{
			"success":  false,
			"note":     "Market portal unreachable; attached estimated prices instead.",
			"fallback": fallback,
			"total":    0,
			"metadata": gin.H{
				"state":  stateName,
				"method": methodSynthetic,
			},
		})
		return
	}

	rows = synthetic.Assemble(rows, maxRows)
	respondOK(c, gin.H{
		"data":  rows,
		"total": len(rows),
		"metadata": gin.H{
			"state":  stateName,
			"method": methodLive,
		},
	})
}

func (s *Server) syntheticRows(regionCode, commodityName string) []synthetic.PriceQuantum {
	maxRows := s.deps.Config.Fallback.MaxPriceRows
	if commodityName != "" {
		if commodity := catalog.CommodityByName(commodityName); commodity != nil {
			return s.deps.Generator.GenerateBatch(commodity, regionCode, time.Now(), maxRows)
		}
	}
	return s.deps.Generator.GenerateMarketOverview(regionCode, time.Now(), maxRows)
}

func filterRows(rows []synthetic.PriceQuantum, district, market string) []synthetic.PriceQuantum {
	district = strings.ToLower(strings.TrimSpace(district))
	market = strings.ToLower(strings.TrimSpace(market))
	if district == "" && market == "" {
		return rows
	}
	filtered := rows[:0:0]
	for _, row := range rows {
		if district != "" && !strings.Contains(strings.ToLower(row.District), district) {
			continue
		}
		if market != "" && !strings.Contains(strings.ToLower(row.Market), market) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}
