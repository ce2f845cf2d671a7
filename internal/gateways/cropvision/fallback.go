package cropvision

var fallbackEnglish = &Assessment{
	PlantType:    "Unknown",
	HealthStatus: "undetermined",
	Disease:      "Could not be determined",
	Symptoms: []string{
		"The diagnosis service is unavailable, so the photo could not be examined.",
	},
	Causes: []string{
		"Fungal or bacterial infection",
		"Insect pests",
		"Nutrient deficiency",
		"Water stress",
	},
	Treatment: []string{
		"Show the affected plant to your nearest Krishi Vigyan Kendra or agriculture extension officer.",
		"Remove and destroy badly affected leaves in the meantime.",
	},
	Prevention: []string{
		"Use certified seed and rotate crops.",
		"Avoid waterlogging.",
		"Inspect the field every few days so problems are caught early.",
	},
	UrgencyLevel: "medium",
}

var fallbackHindi = &Assessment{
	PlantType:    "अज्ञात",
	HealthStatus: "अनिर्धारित",
	Disease:      "पता नहीं चल सका",
	Symptoms: []string{
		"निदान सेवा उपलब्ध नहीं है, इसलिए फोटो की जांच नहीं हो सकी।",
	},
	Causes: []string{
		"फफूंद या जीवाणु रोग",
		"कीट",
		"पोषक तत्वों की कमी",
		"पानी की अधिकता या कमी",
	},
	Treatment: []string{
		"प्रभावित पौधा नज़दीकी कृषि विज्ञान केंद्र या कृषि अधिकारी को दिखाएं।",
		"तब तक अधिक प्रभावित पत्तियां तोड़कर नष्ट कर दें।",
	},
	Prevention: []string{
		"प्रमाणित बीज इस्तेमाल करें और फसल चक्र अपनाएं।",
		"जलभराव से बचें।",
		"हर कुछ दिन में खेत का निरीक्षण करें।",
	},
	UrgencyLevel: "medium",
}

func fallbackAssessment(language string) *Assessment {
	base := fallbackEnglish
	if language == "hi" {
		base = fallbackHindi
	}
	copied := *base
	return &copied
}
