package cropvision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssessment_PlainSections(t *testing.T) {
	text := `Plant Type: Tomato
Health Status: diseased
Disease: Early blight (Alternaria solani)
Symptoms: Dark concentric rings on lower leaves, yellowing around spots.
Causes: Fungal infection favored by warm humid weather.
Treatment: Spray mancozeb 2g per litre at 10 day intervals.
Remove and burn infected leaves.
Prevention: Rotate with non-solanaceous crops, use drip irrigation.
Urgency Level: High`

	a := parseAssessment(text)
	assert.Equal(t, "Tomato", a.PlantType)
	assert.Equal(t, "diseased", a.HealthStatus)
	assert.Equal(t, "Early blight (Alternaria solani)", a.Disease)
	require.Len(t, a.Symptoms, 1)
	assert.Contains(t, a.Symptoms[0], "concentric rings")
	require.Len(t, a.Treatment, 2, "continuation lines become separate items")
	assert.Contains(t, a.Treatment[0], "mancozeb 2g per litre")
	assert.Contains(t, a.Treatment[1], "burn infected leaves")
	assert.Equal(t, "high", a.UrgencyLevel)
	assert.Equal(t, text, a.RawText)
}

func TestParseAssessment_MarkdownDecorations(t *testing.T) {
	text := `**Plant Type:** Rice
- **Health Status:** pest-affected
1. **Disease:** Brown planthopper
**Urgency Level:** Medium priority`

	a := parseAssessment(text)
	assert.Equal(t, "Rice", a.PlantType)
	assert.Equal(t, "pest-affected", a.HealthStatus)
	assert.Equal(t, "Brown planthopper", a.Disease)
	assert.Equal(t, "medium", a.UrgencyLevel)
}

func TestParseAssessment_UnlabeledText(t *testing.T) {
	text := "The photo shows a healthy wheat field with no visible disease."

	a := parseAssessment(text)
	assert.Empty(t, a.PlantType)
	assert.Empty(t, a.Disease)
	assert.Equal(t, text, a.RawText)
}

func TestNormalizeUrgency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"High", "high"},
		{"LOW", "low"},
		{"Medium priority", "medium"},
		{"urgent, act immediately", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeUrgency(tt.in), "input %q", tt.in)
	}
}

func TestFallbackAssessment_Language(t *testing.T) {
	en := fallbackAssessment("en")
	hi := fallbackAssessment("hi")
	ta := fallbackAssessment("ta")

	assert.Equal(t, "Unknown", en.PlantType)
	assert.Equal(t, "अज्ञात", hi.PlantType)
	assert.Equal(t, "Unknown", ta.PlantType, "unscripted languages fall back to English")
	assert.Equal(t, "medium", en.UrgencyLevel)
}
