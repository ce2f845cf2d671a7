package ogdprices

import (
	"strconv"
	"strings"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/synthetic"
)

// ogdResponse mirrors the data.gov.in resource envelope. Prices arrive as
// strings and occasionally as bare numbers, so fields stay loosely typed.
type ogdResponse struct {
	Records []ogdRecord `json:"records"`
	Count   int         `json:"count"`
	Total   int         `json:"total"`
}

type ogdRecord struct {
	State       string `json:"state"`
	District    string `json:"district"`
	Market      string `json:"market"`
	Commodity   string `json:"commodity"`
	Variety     string `json:"variety"`
	ArrivalDate string `json:"arrival_date"`
	MinPrice    string `json:"min_price"`
	MaxPrice    string `json:"max_price"`
	ModalPrice  string `json:"modal_price"`
}

func (r ogdRecord) toQuantum() (synthetic.PriceQuantum, bool) {
	modal, ok := parsePrice(r.ModalPrice)
	if !ok || modal <= 0 {
		return synthetic.PriceQuantum{}, false
	}
	minP, ok := parsePrice(r.MinPrice)
	if !ok {
		minP = modal
	}
	maxP, ok := parsePrice(r.MaxPrice)
	if !ok {
		maxP = modal
	}
	variety := strings.TrimSpace(r.Variety)
	if variety == "" {
		variety = "Common"
	}
	return synthetic.PriceQuantum{
		Commodity:   strings.TrimSpace(r.Commodity),
		Variety:     variety,
		State:       strings.TrimSpace(r.State),
		District:    strings.TrimSpace(r.District),
		Market:      strings.TrimSpace(r.Market),
		MinPrice:    minP,
		MaxPrice:    maxP,
		ModalPrice:  modal,
		Unit:        "Quintal",
		ArrivalDate: strings.TrimSpace(r.ArrivalDate),
	}, true
}

func parsePrice(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "NR") {
		return 0, false
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f), true
	}
	return 0, false
}
