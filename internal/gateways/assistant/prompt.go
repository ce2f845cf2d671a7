package assistant

import (
	"fmt"
	"strings"
)

var languageNames = map[string]string{
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

const systemInstruction = `You are Kisan Mitra, an agricultural assistant for Indian farmers.
Answer questions about crops, weather, mandi prices, government schemes, pests,
fertilizers and farming practices. Keep answers short, practical and specific
to Indian agriculture. When live data is provided below, base your answer on it
and mention the numbers. Do not invent prices or forecasts that are not in the
provided data.`

func buildPrompt(req AnswerRequest) string {
	var b strings.Builder
	b.WriteString(systemInstruction)

	lang, ok := languageNames[req.Language]
	if !ok {
		lang = "English"
	}
	fmt.Fprintf(&b, "\n\nRespond in %s.", lang)

	if req.WeatherContext != "" {
		b.WriteString("\n\nLive weather data:\n")
		b.WriteString(req.WeatherContext)
	}
	if req.PriceContext != "" {
		b.WriteString("\n\nLive mandi price data:\n")
		b.WriteString(req.PriceContext)
	}

	b.WriteString("\n\nFarmer's question: ")
	b.WriteString(req.Message)
	return b.String()
}
