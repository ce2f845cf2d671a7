package cropvision

import (
	"context"
	"fmt"
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

var visionLanguages = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"pa": "Punjabi",
	"mr": "Marathi",
	"gu": "Gujarati",
	"ta": "Tamil",
	"te": "Telugu",
	"kn": "Kannada",
	"bn": "Bengali",
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gateway diagnoses crop photos through the Gemini vision model.
type Gateway struct {
	config    *Config
	generator contentGenerator
	logger    logger.Logger
}

func NewGateway(ctx context.Context, config *Config, log logger.Logger) (*Gateway, error) {
	g := &Gateway{config: config, logger: log}
	if config.APIKey == "" {
		log.Warn("no Gemini API key configured, crop diagnosis serves generic guidance", nil)
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

// Analyze returns an assessment for the uploaded image and the source of the
// diagnosis. Like the chat assistant it never errors; model failures produce
// the generic fallback assessment.
func (g *Gateway) Analyze(ctx context.Context, imageData []byte, mimeType, language string) (*Assessment, string) {
	if g.generator == nil {
		metrics.GatewayFallbacksTotal.WithLabelValues("crop_vision", "not_configured").Inc()
		return fallbackAssessment(language), SourceFallback
	}

	callCtx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	parts := []*genai.Part{
		genai.NewPartFromText(visionPrompt(language)),
		genai.NewPartFromBytes(imageData, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	started := time.Now()
	result, err := g.generator.GenerateContent(callCtx, g.config.Model, contents, nil)
	metrics.GatewayCallDuration.WithLabelValues("crop_vision").Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.GatewayCallsTotal.WithLabelValues("crop_vision", metrics.OutcomeFailed).Inc()
		metrics.GatewayFallbacksTotal.WithLabelValues("crop_vision", "model_error").Inc()
		g.logger.Warn("vision model call failed, serving generic assessment", map[string]interface{}{
			"error": err.Error(),
		})
		return fallbackAssessment(language), SourceFallback
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		metrics.GatewayCallsTotal.WithLabelValues("crop_vision", metrics.OutcomeNoData).Inc()
		metrics.GatewayFallbacksTotal.WithLabelValues("crop_vision", "empty_reply").Inc()
		return fallbackAssessment(language), SourceFallback
	}

	metrics.GatewayCallsTotal.WithLabelValues("crop_vision", metrics.OutcomeSuccess).Inc()
	return parseAssessment(text), SourceLive
}

func visionPrompt(language string) string {
	lang, ok := visionLanguages[language]
	if !ok {
		lang = "English"
	}
	return fmt.Sprintf(`You are an expert agronomist. Examine this crop photo and reply in %s
with exactly these labeled sections, one per line, nothing else:

Plant Type: <crop or plant name>
Health Status: <healthy, diseased, pest-affected or nutrient-deficient>
Disease: <disease or pest name, or "None">
Symptoms: <visible symptoms>
Causes: <likely causes>
Treatment: <practical treatment steps for an Indian farmer>
Prevention: <how to prevent recurrence>
Urgency Level: <low, medium or high>`, lang)
}
