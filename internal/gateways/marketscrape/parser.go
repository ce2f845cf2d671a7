package marketscrape

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/synthetic"
)

// Agmarknet renders results as a grid with ten columns:
// serial, district, market, commodity, variety, grade, min, max, modal, date.
const gridColumns = 10

func parsePriceTable(body io.Reader, state string) ([]synthetic.PriceQuantum, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	var rows []synthetic.PriceQuantum
	doc.Find("table#cphBody_GridPriceData tr, table.tableagmark_new tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < gridColumns {
			return
		}
		values := make([]string, 0, gridColumns)
		cells.Each(func(_ int, td *goquery.Selection) {
			values = append(values, strings.TrimSpace(td.Text()))
		})

		modal, ok := parseScrapedPrice(values[8])
		if !ok || modal <= 0 {
			return
		}
		minP, ok := parseScrapedPrice(values[6])
		if !ok {
			minP = modal
		}
		maxP, ok := parseScrapedPrice(values[7])
		if !ok {
			maxP = modal
		}
		variety := values[4]
		if variety == "" {
			variety = "Common"
		}

		rows = append(rows, synthetic.PriceQuantum{
			Commodity:   values[3],
			Variety:     variety,
			State:       state,
			District:    values[1],
			Market:      values[2],
			MinPrice:    minP,
			MaxPrice:    maxP,
			ModalPrice:  modal,
			Unit:        "Quintal",
			ArrivalDate: values[9],
		})
	})
	return rows, nil
}

// parseScrapedPrice accepts "2,250" style thousand separators.
func parseScrapedPrice(raw string) (int, bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" || raw == "-" || strings.EqualFold(raw, "NR") {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}
