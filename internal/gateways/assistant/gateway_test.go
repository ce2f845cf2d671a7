package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/logger"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, _ string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		s.prompt = contents[0].Parts[0].Text
	}
	if s.err != nil {
		return nil, s.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: s.reply}}}},
		},
	}, nil
}

func testAssistant(t *testing.T, stub *stubGenerator) *Gateway {
	t.Helper()
	return &Gateway{
		config:    &Config{Model: "gemini-2.0-flash", Timeout: 2 * time.Second},
		generator: stub,
		logger:    logger.NewTestLogger(t),
	}
}

func TestAnswer_Live(t *testing.T) {
	stub := &stubGenerator{reply: "Sow wheat in the first week of November."}
	gateway := testAssistant(t, stub)

	reply, source := gateway.Answer(context.Background(), AnswerRequest{
		Message:  "When should I sow wheat?",
		Language: "en",
	})
	assert.Equal(t, SourceLive, source)
	assert.Equal(t, "Sow wheat in the first week of November.", reply)
	assert.Contains(t, stub.prompt, "When should I sow wheat?")
	assert.Contains(t, stub.prompt, "Respond in English.")
}

func TestAnswer_PromptCarriesContext(t *testing.T) {
	stub := &stubGenerator{reply: "ok"}
	gateway := testAssistant(t, stub)

	gateway.Answer(context.Background(), AnswerRequest{
		Message:        "बारिश होगी क्या?",
		Language:       "hi",
		WeatherContext: "Delhi: 31C, Partly Cloudy",
		PriceContext:   "Wheat modal 2250 Rs/Quintal",
	})
	assert.Contains(t, stub.prompt, "Respond in Hindi.")
	assert.Contains(t, stub.prompt, "Delhi: 31C, Partly Cloudy")
	assert.Contains(t, stub.prompt, "Wheat modal 2250 Rs/Quintal")
}

func TestAnswer_ModelErrorFallsBack(t *testing.T) {
	gateway := testAssistant(t, &stubGenerator{err: errors.New("rate limited")})

	reply, source := gateway.Answer(context.Background(), AnswerRequest{
		Message:  "What is the wheat price today?",
		Language: "en",
	})
	assert.Equal(t, SourceFallback, source)
	assert.NotEmpty(t, reply)
}

func TestAnswer_EmptyReplyFallsBack(t *testing.T) {
	gateway := testAssistant(t, &stubGenerator{reply: "   "})

	reply, source := gateway.Answer(context.Background(), AnswerRequest{Message: "hi", Language: "en"})
	assert.Equal(t, SourceFallback, source)
	assert.NotEmpty(t, reply)
}

func TestAnswer_NotConfigured(t *testing.T) {
	gateway := &Gateway{
		config: &Config{Timeout: time.Second},
		logger: logger.NewTestLogger(t),
	}

	reply, source := gateway.Answer(context.Background(), AnswerRequest{Message: "hello", Language: "en"})
	assert.Equal(t, SourceFallback, source)
	assert.NotEmpty(t, reply)
}

func TestScriptedReply_CarriesFetchedData(t *testing.T) {
	reply := scriptedReply(AnswerRequest{
		Language:       "en",
		WeatherContext: "Now: 31.0°C (feels like 33.0°C), Partly Cloudy, humidity 55%, wind 3.5 m/s",
		PriceContext:   "Wheat (Dara) at Ludhiana Mandi, Punjab: modal Rs 2250 per Quintal (min 2150, max 2350)",
	})
	assert.Contains(t, reply, "Latest weather data:")
	assert.Contains(t, reply, "31.0°C")
	assert.Contains(t, reply, "Latest mandi rates:")
	assert.Contains(t, reply, "modal Rs 2250")
}

func TestScriptedReply_CarriesFetchedDataHindi(t *testing.T) {
	reply := scriptedReply(AnswerRequest{
		Language:     "hi",
		PriceContext: "Wheat (Dara) at Ludhiana Mandi, Punjab: modal Rs 2250 per Quintal (min 2150, max 2350)",
	})
	assert.Contains(t, reply, "ताज़ा मंडी भाव:")
	assert.Contains(t, reply, "2250")
}

func TestAnswer_FallbackCarriesFetchedData(t *testing.T) {
	gateway := testAssistant(t, &stubGenerator{err: errors.New("rate limited")})

	reply, source := gateway.Answer(context.Background(), AnswerRequest{
		Message:      "What is the wheat price today?",
		Language:     "en",
		PriceContext: "Wheat at Ludhiana Mandi: modal Rs 2250 per Quintal",
	})
	assert.Equal(t, SourceFallback, source)
	assert.Contains(t, reply, "Agmarknet")
	assert.Contains(t, reply, "modal Rs 2250")
}

func TestScriptedReply_PicksTopicAndLanguage(t *testing.T) {
	tests := []struct {
		name     string
		req      AnswerRequest
		contains string
	}{
		{"weather english", AnswerRequest{Language: "en", WeatherContext: "x"}, "IMD"},
		{"weather hindi", AnswerRequest{Language: "hi", WeatherContext: "x"}, "मौसम"},
		{"price english", AnswerRequest{Language: "en", PriceContext: "x"}, "Agmarknet"},
		{"price hindi", AnswerRequest{Language: "hi", PriceContext: "x"}, "मंडी"},
		{"general english", AnswerRequest{Language: "en"}, "1800-180-1551"},
		{"general unknown language", AnswerRequest{Language: "ta"}, "1800-180-1551"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := scriptedReply(tt.req)
			assert.True(t, strings.Contains(reply, tt.contains), "reply %q should mention %q", reply, tt.contains)
		})
	}
}
