package ogdprices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/cache"
	apperrors "github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/errors"
	httpclient "github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/http"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/logger"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/metrics"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/synthetic"
)

// upstreamName labels this gateway in classified errors and log lines.
const upstreamName = "data.gov.in"

var (
	// ErrPricesTimeout indicates the price API did not respond in time.
	ErrPricesTimeout = errors.New("PRICES_TIMEOUT")
	// ErrPricesFailed indicates the price API returned an error response.
	ErrPricesFailed = errors.New("PRICES_FAILED")
	// ErrPricesNoData indicates the API answered but had no rows for the query.
	ErrPricesNoData = errors.New("PRICES_NO_DATA")
)

// Gateway fetches mandi price records from the data.gov.in resource API.
type Gateway struct {
	config *Config
	client *httpclient.Client
	cache  *cache.Cache
	logger logger.Logger
}

func NewGateway(config *Config, responseCache *cache.Cache, log logger.Logger) *Gateway {
	return &Gateway{
		config: config,
		client: httpclient.NewClient(config.Timeout),
		cache:  responseCache,
		logger: log,
	}
}

// Fetch returns price rows for a commodity in a state. State and commodity
// filters are optional; empty values fetch the latest rows nationwide.
func (g *Gateway) Fetch(ctx context.Context, state, commodity string) ([]synthetic.PriceQuantum, error) {
	cacheKey := fmt.Sprintf("ogd:%s:%s", state, commodity)
	if cached, ok := g.cache.Get(ctx, cacheKey); ok {
		var rows []synthetic.PriceQuantum
		if err := json.Unmarshal([]byte(cached), &rows); err == nil && len(rows) > 0 {
			g.logger.Debug("price cache hit", map[string]interface{}{"key": cacheKey})
			return rows, nil
		}
	}

	started := time.Now()
	rows, err := g.fetchLive(ctx, state, commodity)
	metrics.GatewayCallDuration.WithLabelValues("ogd_prices").Observe(time.Since(started).Seconds())
	if err != nil {
		switch {
		case errors.Is(err, ErrPricesTimeout):
			metrics.GatewayCallsTotal.WithLabelValues("ogd_prices", metrics.OutcomeTimedOut).Inc()
		case errors.Is(err, ErrPricesNoData):
			metrics.GatewayCallsTotal.WithLabelValues("ogd_prices", metrics.OutcomeNoData).Inc()
		default:
			metrics.GatewayCallsTotal.WithLabelValues("ogd_prices", metrics.OutcomeFailed).Inc()
		}
		return nil, err
	}
	metrics.GatewayCallsTotal.WithLabelValues("ogd_prices", metrics.OutcomeSuccess).Inc()

	if payload, err := json.Marshal(rows); err == nil {
		g.cache.Set(ctx, cacheKey, string(payload), g.config.CacheTTL)
	}
	return rows, nil
}

func (g *Gateway) fetchLive(ctx context.Context, state, commodity string) ([]synthetic.PriceQuantum, error) {
	endpoint, err := g.buildURL(state, commodity)
	if err != nil {
		return nil, apperrors.NewUpstreamError(upstreamName, err).Wrap(ErrPricesFailed)
	}

	resp, err := g.client.Get(ctx, endpoint)
	if err != nil {
		if isTimeout(err) {
			return nil, apperrors.NewUpstreamTimeoutError(upstreamName).Wrap(ErrPricesTimeout)
		}
		return nil, apperrors.NewUpstreamError(upstreamName, err).Wrap(ErrPricesFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError(upstreamName, fmt.Errorf("status %d", resp.StatusCode)).Wrap(ErrPricesFailed)
	}

	var payload ogdResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewUpstreamError(upstreamName, fmt.Errorf("decode: %v", err)).Wrap(ErrPricesFailed)
	}

	rows := make([]synthetic.PriceQuantum, 0, len(payload.Records))
	for _, record := range payload.Records {
		if quantum, ok := record.toQuantum(); ok {
			rows = append(rows, quantum)
		}
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNoDataError(upstreamName,
			fmt.Sprintf("state=%q commodity=%q", state, commodity)).Wrap(ErrPricesNoData)
	}

	g.logger.Info("fetched live mandi prices", map[string]interface{}{
		"state":     state,
		"commodity": commodity,
		"rows":      len(rows),
	})
	return rows, nil
}

func (g *Gateway) buildURL(state, commodity string) (string, error) {
	base, err := url.Parse(g.config.BaseURL)
	if err != nil {
		return "", err
	}
	base = base.JoinPath(g.config.ResourceID)

	query := url.Values{}
	query.Set("api-key", g.config.APIKey)
	query.Set("format", "json")
	query.Set("limit", fmt.Sprintf("%d", g.config.MaxRows))
	if state != "" {
		query.Set("filters[state]", state)
	}
	if commodity != "" {
		query.Set("filters[commodity]", commodity)
	}
	base.RawQuery = query.Encode()
	return base.String(), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
