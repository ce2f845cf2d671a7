package assistant

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/logger"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/metrics"
)

const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// AnswerRequest carries the farmer's message plus any live data the caller
// already fetched for grounding.
type AnswerRequest struct {
	Message        string
	Language       string
	WeatherContext string
	PriceContext   string
}

// contentGenerator matches the genai Models surface so tests can stub it.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gateway answers farmer questions through the Gemini chat model, falling
// back to scripted replies whenever the model is unreachable.
type Gateway struct {
	config    *Config
	generator contentGenerator
	logger    logger.Logger
}

// NewGateway builds the gateway. Without an API key the gateway still works,
// serving scripted replies only.
func NewGateway(ctx context.Context, config *Config, log logger.Logger) (*Gateway, error) {
	g := &Gateway{config: config, logger: log}
	if config.APIKey == "" {
		log.Warn("no Gemini API key configured, assistant runs on scripted replies", nil)
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	g.generator = client.Models
	return g, nil
}

// Answer returns a reply and its source. It never returns an error: when the
// model call fails, the reply is a scripted one and the source says so.
func (g *Gateway) Answer(ctx context.Context, req AnswerRequest) (string, string) {
	if g.generator == nil {
		metrics.GatewayFallbacksTotal.WithLabelValues("assistant", "not_configured").Inc()
		return scriptedReply(req), SourceFallback
	}

	callCtx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	started := time.Now()
	result, err := g.generator.GenerateContent(callCtx, g.config.Model,
		[]*genai.Content{genai.NewContentFromText(buildPrompt(req), genai.RoleUser)}, nil)
	metrics.GatewayCallDuration.WithLabelValues("assistant").Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.GatewayCallsTotal.WithLabelValues("assistant", metrics.OutcomeFailed).Inc()
		metrics.GatewayFallbacksTotal.WithLabelValues("assistant", "model_error").Inc()
		g.logger.Warn("chat model call failed, serving scripted reply", map[string]interface{}{
			"error": err.Error(),
		})
		return scriptedReply(req), SourceFallback
	}

	reply := strings.TrimSpace(result.Text())
	if reply == "" {
		metrics.GatewayCallsTotal.WithLabelValues("assistant", metrics.OutcomeNoData).Inc()
		metrics.GatewayFallbacksTotal.WithLabelValues("assistant", "empty_reply").Inc()
		return scriptedReply(req), SourceFallback
	}

	metrics.GatewayCallsTotal.WithLabelValues("assistant", metrics.OutcomeSuccess).Inc()
	return reply, SourceLive
}
