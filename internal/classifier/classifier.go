// Package classifier routes free-text farmer queries to weather and price
// data sources using fixed multilingual keyword tables. It is deliberately a
// substring matcher, not an NLP pass: short commodity names can match inside
// unrelated words, and that approximation is an accepted product tradeoff.
package classifier

import (
	"strings"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/catalog"
)

// weatherKeywords covers English and Hindi-script weather vocabulary.
var weatherKeywords = []string{
	"weather", "temperature", "rain", "rainfall", "forecast", "humidity",
	"wind", "storm", "monsoon", "climate", "heat", "cold",
	"मौसम", "बारिश", "तापमान", "आंधी", "तूफान", "गर्मी", "सर्दी",
}

// priceKeywords covers English and Hindi-script market-price vocabulary.
var priceKeywords = []string{
	"price", "rate", "cost", "mandi", "market", "sell", "msp",
	"भाव", "दाम", "कीमत", "मंडी", "बाजार", "बेचना",
}

// Result is the classification outcome for a single query.
type Result struct {
	IsWeather  bool
	IsPrice    bool
	Commodity  string // English catalog name, empty when none matched
	RegionCode string // empty when none matched; callers apply the default
}

// Classify matches text case-insensitively against the static keyword tables.
// Pure function of its input and the tables; both intent flags may be true.
func Classify(text string) Result {
	lower := strings.ToLower(text)

	var res Result
	for _, kw := range weatherKeywords {
		if strings.Contains(lower, kw) {
			res.IsWeather = true
			break
		}
	}
	for _, kw := range priceKeywords {
		if strings.Contains(lower, kw) {
			res.IsPrice = true
			break
		}
	}

	res.Commodity = extractCommodity(lower)
	res.RegionCode = extractRegion(lower)
	return res
}

// extractCommodity returns the English name of the FIRST catalog entry whose
// English or Hindi name appears as a substring. Catalog order decides ties.
func extractCommodity(lower string) string {
	for _, c := range catalog.Commodities {
		if strings.Contains(lower, strings.ToLower(c.Name)) {
			return c.Name
		}
		if c.HindiName != "" && strings.Contains(lower, c.HindiName) {
			return c.Name
		}
	}
	return ""
}

// extractRegion returns the code of the first region-name hit in map
// iteration order. No match returns empty; the caller substitutes the
// documented default region so every price lookup has a concrete region.
func extractRegion(lower string) string {
	for name, code := range catalog.RegionNames {
		if strings.Contains(lower, name) {
			return code
		}
	}
	return ""
}
