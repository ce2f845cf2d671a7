package assistant

import "strings"

// Scripted replies keep the assistant responsive when the model is down.
// Hindi gets its own script; every other language falls back to English.
// Any weather or price data already fetched for the question is appended so
// the caller still gets the numbers the model would have woven in.

var fallbackWeather = map[string]string{
	"en": "I could not reach the assistant service right now. For weather, check the forecast panel in this app or the IMD website (mausam.imd.gov.in). Avoid spraying pesticides if rain is expected in the next 24 hours.",
	"hi": "अभी सहायक सेवा से संपर्क नहीं हो पा रहा है। मौसम की जानकारी के लिए इस ऐप का मौसम पैनल या IMD की वेबसाइट (mausam.imd.gov.in) देखें। अगले 24 घंटे में बारिश की संभावना हो तो कीटनाशक का छिड़काव न करें।",
}

var fallbackPrice = map[string]string{
	"en": "I could not reach the assistant service right now. For today's mandi rates, check the prices panel in this app or the Agmarknet portal (agmarknet.gov.in). Rates vary by mandi, so compare two or three nearby markets before selling.",
	"hi": "अभी सहायक सेवा से संपर्क नहीं हो पा रहा है। आज के मंडी भाव के लिए इस ऐप का भाव पैनल या Agmarknet पोर्टल (agmarknet.gov.in) देखें। भाव मंडी के अनुसार बदलते हैं, बेचने से पहले दो-तीन नज़दीकी मंडियों के भाव ज़रूर देखें।",
}

var fallbackGeneral = map[string]string{
	"en": "I could not reach the assistant service right now. Please try again in a few minutes. For urgent help, call the Kisan Call Centre at 1800-180-1551 (toll free, 6 AM to 10 PM).",
	"hi": "अभी सहायक सेवा से संपर्क नहीं हो पा रहा है। कृपया कुछ मिनट बाद फिर कोशिश करें। तुरंत मदद के लिए किसान कॉल सेंटर 1800-180-1551 (टोल फ्री, सुबह 6 से रात 10 बजे) पर कॉल करें।"}

var weatherHeading = map[string]string{
	"en": "Latest weather data:",
	"hi": "ताज़ा मौसम जानकारी:",
}

var priceHeading = map[string]string{
	"en": "Latest mandi rates:",
	"hi": "ताज़ा मंडी भाव:",
}

func scriptedReply(req AnswerRequest) string {
	lang := req.Language
	if lang != "hi" {
		lang = "en"
	}

	var b strings.Builder
	switch {
	case req.WeatherContext != "":
		b.WriteString(fallbackWeather[lang])
	case req.PriceContext != "":
		b.WriteString(fallbackPrice[lang])
	default:
		b.WriteString(fallbackGeneral[lang])
	}

	if req.WeatherContext != "" {
		b.WriteString("\n\n")
		b.WriteString(weatherHeading[lang])
		b.WriteString("\n")
		b.WriteString(req.WeatherContext)
	}
	if req.PriceContext != "" {
		b.WriteString("\n\n")
		b.WriteString(priceHeading[lang])
		b.WriteString("\n")
		b.WriteString(req.PriceContext)
	}
	return b.String()
}
