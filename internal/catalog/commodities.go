// Package catalog holds the static reference tables seeded at process start.
// Everything here is read-only after initialization; no request ever mutates it.
package catalog

import "strings"

// Commodity is one entry of the fixed commodity reference table. BasePrice is
// in rupees per Unit; Volatility scales the synthetic price perturbation.
type Commodity struct {
	Name       string
	HindiName  string
	BasePrice  float64
	Volatility float64
	Unit       string
}

const (
	UnitQuintal = "Quintal"
	UnitTonne   = "Tonne"
	UnitPiece   = "Piece"
)

// Commodities is scanned in order during keyword extraction; the first entry
// whose English or Hindi name is a substring of the query wins. Order therefore
// matters: longer, less ambiguous names come before short ones where conflicts
// are known (e.g. "soybean" before "soy").
var Commodities = []Commodity{
	{Name: "Wheat", HindiName: "गेहूं", BasePrice: 2250, Volatility: 0.08, Unit: UnitQuintal},
	{Name: "Paddy", HindiName: "धान", BasePrice: 2100, Volatility: 0.07, Unit: UnitQuintal},
	{Name: "Rice", HindiName: "चावल", BasePrice: 3400, Volatility: 0.09, Unit: UnitQuintal},
	{Name: "Maize", HindiName: "मक्का", BasePrice: 2000, Volatility: 0.10, Unit: UnitQuintal},
	{Name: "Bajra", HindiName: "बाजरा", BasePrice: 2350, Volatility: 0.09, Unit: UnitQuintal},
	{Name: "Jowar", HindiName: "ज्वार", BasePrice: 3100, Volatility: 0.09, Unit: UnitQuintal},
	{Name: "Barley", HindiName: "जौ", BasePrice: 1850, Volatility: 0.08, Unit: UnitQuintal},
	{Name: "Cotton", HindiName: "कपास", BasePrice: 6800, Volatility: 0.12, Unit: UnitQuintal},
	{Name: "Sugarcane", HindiName: "गन्ना", BasePrice: 340, Volatility: 0.05, Unit: UnitQuintal},
	{Name: "Soybean", HindiName: "सोयाबीन", BasePrice: 4600, Volatility: 0.13, Unit: UnitQuintal},
	{Name: "Mustard", HindiName: "सरसों", BasePrice: 5400, Volatility: 0.11, Unit: UnitQuintal},
	{Name: "Groundnut", HindiName: "मूंगफली", BasePrice: 6200, Volatility: 0.12, Unit: UnitQuintal},
	{Name: "Sunflower", HindiName: "सूरजमुखी", BasePrice: 6500, Volatility: 0.11, Unit: UnitQuintal},
	{Name: "Sesame", HindiName: "तिल", BasePrice: 12500, Volatility: 0.14, Unit: UnitQuintal},
	{Name: "Castor Seed", HindiName: "अरंडी", BasePrice: 6100, Volatility: 0.12, Unit: UnitQuintal},
	{Name: "Chana", HindiName: "चना", BasePrice: 5100, Volatility: 0.10, Unit: UnitQuintal},
	{Name: "Tur", HindiName: "अरहर", BasePrice: 7000, Volatility: 0.12, Unit: UnitQuintal},
	{Name: "Moong", HindiName: "मूंग", BasePrice: 8100, Volatility: 0.12, Unit: UnitQuintal},
	{Name: "Urad", HindiName: "उड़द", BasePrice: 7400, Volatility: 0.12, Unit: UnitQuintal},
	{Name: "Masoor", HindiName: "मसूर", BasePrice: 6100, Volatility: 0.10, Unit: UnitQuintal},
	{Name: "Potato", HindiName: "आलू", BasePrice: 1300, Volatility: 0.18, Unit: UnitQuintal},
	{Name: "Onion", HindiName: "प्याज", BasePrice: 1800, Volatility: 0.25, Unit: UnitQuintal},
	{Name: "Tomato", HindiName: "टमाटर", BasePrice: 1600, Volatility: 0.30, Unit: UnitQuintal},
	{Name: "Cauliflower", HindiName: "फूलगोभी", BasePrice: 1500, Volatility: 0.22, Unit: UnitQuintal},
	{Name: "Cabbage", HindiName: "पत्तागोभी", BasePrice: 1200, Volatility: 0.20, Unit: UnitQuintal},
	{Name: "Brinjal", HindiName: "बैंगन", BasePrice: 1700, Volatility: 0.20, Unit: UnitQuintal},
	{Name: "Okra", HindiName: "भिंडी", BasePrice: 2400, Volatility: 0.22, Unit: UnitQuintal},
	{Name: "Green Chilli", HindiName: "हरी मिर्च", BasePrice: 3800, Volatility: 0.24, Unit: UnitQuintal},
	{Name: "Garlic", HindiName: "लहसुन", BasePrice: 9500, Volatility: 0.26, Unit: UnitQuintal},
	{Name: "Ginger", HindiName: "अदरक", BasePrice: 7800, Volatility: 0.24, Unit: UnitQuintal},
	{Name: "Turmeric", HindiName: "हल्दी", BasePrice: 8900, Volatility: 0.15, Unit: UnitQuintal},
	{Name: "Coriander", HindiName: "धनिया", BasePrice: 7200, Volatility: 0.16, Unit: UnitQuintal},
	{Name: "Cumin", HindiName: "जीरा", BasePrice: 24500, Volatility: 0.18, Unit: UnitQuintal},
	{Name: "Banana", HindiName: "केला", BasePrice: 1400, Volatility: 0.15, Unit: UnitQuintal},
	{Name: "Mango", HindiName: "आम", BasePrice: 3600, Volatility: 0.20, Unit: UnitQuintal},
	{Name: "Apple", HindiName: "सेब", BasePrice: 7500, Volatility: 0.16, Unit: UnitQuintal},
	{Name: "Grapes", HindiName: "अंगूर", BasePrice: 4800, Volatility: 0.18, Unit: UnitQuintal},
	{Name: "Pomegranate", HindiName: "अनार", BasePrice: 8200, Volatility: 0.18, Unit: UnitQuintal},
	{Name: "Coconut", HindiName: "नारियल", BasePrice: 26, Volatility: 0.10, Unit: UnitPiece},
	{Name: "Jute", HindiName: "जूट", BasePrice: 5200, Volatility: 0.10, Unit: UnitQuintal},
	{Name: "Tea", HindiName: "चाय", BasePrice: 195000, Volatility: 0.08, Unit: UnitTonne},
	{Name: "Coffee", HindiName: "कॉफी", BasePrice: 255000, Volatility: 0.10, Unit: UnitTonne},
}

// CommodityByName returns the catalog entry matching name case-insensitively
// against the English name; nil when absent.
func CommodityByName(name string) *Commodity {
	for i := range Commodities {
		if strings.EqualFold(Commodities[i].Name, name) {
			return &Commodities[i]
		}
	}
	return nil
}

// DefaultCommodity is used when a price query names no known commodity.
var DefaultCommodity = &Commodities[0] // Wheat
