package marketscrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/catalog"
	apperrors "github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/errors"
	httpclient "github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/http"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/logger"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/metrics"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/synthetic"
)

var (
	// ErrScrapeFailed indicates the market site could not be reached or parsed.
	ErrScrapeFailed = errors.New("SCRAPE_FAILED")
	// ErrScrapeNoData indicates the full date window was tried without rows.
	ErrScrapeNoData = errors.New("SCRAPE_NO_DATA")
)

// Gateway scrapes commodity price grids from the Agmarknet portal.
type Gateway struct {
	config *Config
	client *httpclient.Client
	logger logger.Logger

	// now is swappable for deterministic date windows in tests.
	now func() time.Time
	// pace is swappable so overview tests do not sleep for real.
	pace func(context.Context, time.Duration) error
}

func NewGateway(config *Config, log logger.Logger) *Gateway {
	return &Gateway{
		config: config,
		client: httpclient.NewClient(config.Timeout),
		logger: log,
		now:    time.Now,
		pace:   sleepCtx,
	}
}

// FetchCommodity scrapes rows for one commodity in a state. Markets publish
// with a lag, so the scrape walks back day by day until a day yields rows or
// the window is exhausted.
func (g *Gateway) FetchCommodity(ctx context.Context, commodity, stateName string) ([]synthetic.PriceQuantum, error) {
	started := time.Now()
	defer func() {
		metrics.GatewayCallDuration.WithLabelValues("market_scrape").Observe(time.Since(started).Seconds())
	}()

	window := g.config.DateWindowDays
	if window < 1 {
		window = 1
	}

	var lastErr error
	for offset := 0; offset < window; offset++ {
		day := g.now().AddDate(0, 0, -offset)
		rows, err := g.scrapeDay(ctx, commodity, stateName, day)
		if err != nil {
			lastErr = err
			g.logger.Debug("scrape attempt failed", map[string]interface{}{
				"commodity": commodity,
				"date":      day.Format("02-Jan-2006"),
				"error":     err.Error(),
			})
			continue
		}
		if len(rows) > 0 {
			metrics.GatewayCallsTotal.WithLabelValues("market_scrape", metrics.OutcomeSuccess).Inc()
			return rows, nil
		}
	}

	if lastErr != nil {
		metrics.GatewayCallsTotal.WithLabelValues("market_scrape", metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("%w: %v", ErrScrapeFailed, lastErr)
	}
	metrics.GatewayCallsTotal.WithLabelValues("market_scrape", metrics.OutcomeNoData).Inc()
	return nil, fmt.Errorf("%w: commodity=%q state=%q window=%d", ErrScrapeNoData, commodity, stateName, window)
}

// FetchOverview scrapes one commodity after another with a pacing delay
// between requests to avoid hammering the portal. Per-commodity failures are
// skipped; the overview returns whatever the successful scrapes produced.
func (g *Gateway) FetchOverview(ctx context.Context, stateName string, commodities []catalog.Commodity) []synthetic.PriceQuantum {
	var rows []synthetic.PriceQuantum
	for i, c := range commodities {
		if i > 0 {
			if err := g.pace(ctx, g.config.PacingDelay); err != nil {
				break
			}
		}
		fetched, err := g.FetchCommodity(ctx, c.Name, stateName)
		if err != nil {
			continue
		}
		rows = append(rows, fetched...)
	}
	return rows
}

func (g *Gateway) scrapeDay(ctx context.Context, commodity, stateName string, day time.Time) ([]synthetic.PriceQuantum, error) {
	endpoint, err := g.buildURL(commodity, stateName, day)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; farmer-support-api/1.0)")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	rows, err := parsePriceTable(resp.Body, stateName)
	if err != nil {
		return nil, apperrors.NewScrapeParseError(err)
	}
	return rows, nil
}

func (g *Gateway) buildURL(commodity, stateName string, day time.Time) (string, error) {
	base, err := url.Parse(g.config.BaseURL)
	if err != nil {
		return "", err
	}
	date := day.Format("02-Jan-2006")

	query := url.Values{}
	query.Set("Tx_Commodity", commodity)
	query.Set("Tx_State", stateName)
	query.Set("Tx_District", "0")
	query.Set("Tx_Market", "0")
	query.Set("DateFrom", date)
	query.Set("DateTo", date)
	query.Set("Fr_Date", date)
	query.Set("To_Date", date)
	query.Set("Tx_Trend", "0")
	base.RawQuery = query.Encode()
	return base.String(), nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
