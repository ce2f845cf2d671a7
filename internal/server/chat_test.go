package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/assistant"
)

func TestChat_PlainQuestion(t *testing.T) {
	srv, stubs := newTestServer(t)

	rec, payload := doJSON(t, srv, http.MethodPost, "/api/chat",
		`{"message":"How do I store onions after harvest?","language":"en"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Here is your answer.", payload["response"])
	assert.Equal(t, false, payload["dataFetched"])

	queryTypes := payload["queryTypes"].(map[string]interface{})
	assert.Equal(t, false, queryTypes["weather"])
	assert.Equal(t, false, queryTypes["prices"])
	assert.Equal(t, "How do I store onions after harvest?", stubs.assistant.gotReq.Message)
	assert.Empty(t, stubs.assistant.gotReq.WeatherContext)
	assert.Empty(t, stubs.assistant.gotReq.PriceContext)
}

func TestChat_WeatherQuestionFetchesContext(t *testing.T) {
	srv, stubs := newTestServer(t)

	_, payload := doJSON(t, srv, http.MethodPost, "/api/chat",
		`{"message":"Will it rain tomorrow?","language":"en"}`)

	assert.Equal(t, true, payload["dataFetched"])
	queryTypes := payload["queryTypes"].(map[string]interface{})
	assert.Equal(t, true, queryTypes["weather"])
	assert.Contains(t, stubs.assistant.gotReq.WeatherContext, "New Delhi")
	assert.Contains(t, stubs.assistant.gotReq.WeatherContext, "31.0°C")
}

func TestChat_PriceQuestionFetchesContext(t *testing.T) {
	srv, stubs := newTestServer(t)

	_, payload := doJSON(t, srv, http.MethodPost, "/api/chat",
		`{"message":"What is the wheat price in Punjab?","language":"en"}`)

	assert.Equal(t, true, payload["dataFetched"])
	queryTypes := payload["queryTypes"].(map[string]interface{})
	assert.Equal(t, true, queryTypes["prices"])
	assert.Equal(t, "Punjab", stubs.prices.gotState)
	assert.Equal(t, "Wheat", stubs.prices.gotCommodity)
	assert.Contains(t, stubs.assistant.gotReq.PriceContext, "Ludhiana Mandi")
	assert.Contains(t, stubs.assistant.gotReq.PriceContext, "2250")
}

func TestChat_PriceAPIDownStillAnswers(t *testing.T) {
	srv, stubs := newTestServer(t)
	stubs.prices.rows = nil
	stubs.prices.err = errors.New("upstream down")

	rec, payload := doJSON(t, srv, http.MethodPost, "/api/chat",
		`{"message":"mandi bhav for wheat","language":"en"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	// Synthetic rows keep the assistant grounded even with the API down.
	assert.NotEmpty(t, stubs.assistant.gotReq.PriceContext)
	assert.Equal(t, true, payload["dataFetched"])
}

func TestChat_FallbackReplyCarriesNote(t *testing.T) {
	srv, stubs := newTestServer(t)
	stubs.assistant.reply = "scripted"
	stubs.assistant.source = assistant.SourceFallback

	_, payload := doJSON(t, srv, http.MethodPost, "/api/chat",
		`{"message":"hello","language":"en"}`)

	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "fallback", payload["source"])
	assert.NotEmpty(t, payload["note"])
}

func TestChat_ValidationFailures(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"empty message", `{"message":""}`},
		{"wrong type", `{"message":42}`},
		{"unknown language", `{"message":"hi","language":"fr"}`},
		{"not json", `message=hello`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, payload := doJSON(t, srv, http.MethodPost, "/api/chat", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, false, payload["success"])

			errObj, ok := payload["error"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "INPUT_VALIDATION_FAILED", errObj["code"])
		})
	}
}

func TestChat_DefaultsLanguageToEnglish(t *testing.T) {
	srv, stubs := newTestServer(t)

	doJSON(t, srv, http.MethodPost, "/api/chat", `{"message":"hello"}`)
	assert.Equal(t, "en", stubs.assistant.gotReq.Language)
}
