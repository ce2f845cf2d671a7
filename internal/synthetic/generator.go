// Package synthetic generates plausible mandi price records when no live
// source is available. Prices are random but bounded by construction, so the
// min <= modal <= max invariant always holds.
package synthetic

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/catalog"
)

// PriceQuantum is one generated or live price record. Never mutated after creation.
type PriceQuantum struct {
	Commodity   string `json:"commodity"`
	Variety     string `json:"variety"`
	State       string `json:"state"`
	District    string `json:"district"`
	Market      string `json:"market"`
	MinPrice    int    `json:"minPrice"`
	MaxPrice    int    `json:"maxPrice"`
	ModalPrice  int    `json:"modalPrice"`
	Unit        string `json:"unit"`
	ArrivalDate string `json:"arrivalDate"`
}

// Generator produces synthetic price records. The random source is injected
// so tests can fix the seed.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator seeded from the wall clock.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates a Generator with a caller-controlled random source.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate produces a single price record for a commodity in a district of
// the given region. The region multiplier defaults to 1.0 for unlisted regions.
func (g *Generator) Generate(c *catalog.Commodity, regionCode, district string, asOf time.Time) PriceQuantum {
	multiplier := 1.0
	if m, ok := catalog.RegionMultipliers[regionCode]; ok {
		multiplier = m
	}

	adjusted := c.BasePrice * multiplier
	perturbation := (g.rng.Float64() - 0.5) * adjusted * c.Volatility
	modal := int(math.Round(adjusted + perturbation))
	if modal < 1 {
		modal = 1
	}

	return PriceQuantum{
		Commodity:   c.Name,
		Variety:     "Common",
		State:       catalog.RegionName(regionCode),
		District:    district,
		Market:      district + " Mandi",
		MinPrice:    int(math.Round(0.85 * float64(modal))),
		MaxPrice:    int(math.Round(1.15 * float64(modal))),
		ModalPrice:  modal,
		Unit:        c.Unit,
		ArrivalDate: asOf.Format("02/01/2006"),
	}
}

// GenerateBatch produces one record per district for a single commodity
// within a region, already deduplicated, sorted and capped.
func (g *Generator) GenerateBatch(c *catalog.Commodity, regionCode string, asOf time.Time, cap int) []PriceQuantum {
	districts := catalog.DistrictsFor(regionCode)
	rows := make([]PriceQuantum, 0, len(districts))
	for _, district := range districts {
		rows = append(rows, g.Generate(c, regionCode, district, asOf))
	}
	return Assemble(rows, cap)
}

// GenerateMarketOverview produces records for every catalog commodity across
// the region's districts, deduplicated, sorted by modal price descending and
// capped.
func (g *Generator) GenerateMarketOverview(regionCode string, asOf time.Time, cap int) []PriceQuantum {
	districts := catalog.DistrictsFor(regionCode)
	rows := make([]PriceQuantum, 0, len(catalog.Commodities))
	for i := range catalog.Commodities {
		district := districts[g.rng.Intn(len(districts))]
		rows = append(rows, g.Generate(&catalog.Commodities[i], regionCode, district, asOf))
	}
	return Assemble(rows, cap)
}

// Assemble applies the shared batch policy to any row set, live or synthetic:
// collapse rows sharing (state, district, commodity, variety) keeping the
// first occurrence, sort by modal price descending, cap the result length.
func Assemble(rows []PriceQuantum, cap int) []PriceQuantum {
	type key struct {
		state, district, commodity, variety string
	}
	seen := make(map[key]bool, len(rows))
	out := make([]PriceQuantum, 0, len(rows))
	for _, r := range rows {
		k := key{r.State, r.District, r.Commodity, r.Variety}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ModalPrice > out[j].ModalPrice
	})

	if cap > 0 && len(out) > cap {
		out = out[:cap]
	}
	return out
}
