package catalog

import "strings"

// RegionNames maps lower-cased state/UT names (English and Hindi variants) to
// region codes. Scanned during classification; the first hit in iteration
// order wins, so codes are resolved approximately, not by exact tokenization.
var RegionNames = map[string]string{
	"punjab":         "PB",
	"पंजाब":          "PB",
	"haryana":        "HR",
	"हरियाणा":        "HR",
	"uttar pradesh":  "UP",
	"उत्तर प्रदेश":   "UP",
	"madhya pradesh": "MP",
	"मध्य प्रदेश":    "MP",
	"maharashtra":    "MH",
	"महाराष्ट्र":     "MH",
	"rajasthan":      "RJ",
	"राजस्थान":       "RJ",
	"gujarat":        "GJ",
	"गुजरात":         "GJ",
	"bihar":          "BR",
	"बिहार":          "BR",
	"west bengal":    "WB",
	"पश्चिम बंगाल":   "WB",
	"karnataka":      "KA",
	"कर्नाटक":        "KA",
	"tamil nadu":     "TN",
	"तमिलनाडु":       "TN",
	"andhra pradesh": "AP",
	"आंध्र प्रदेश":   "AP",
	"telangana":      "TG",
	"तेलंगाना":       "TG",
	"kerala":         "KL",
	"केरल":           "KL",
	"odisha":         "OD",
	"ओडिशा":          "OD",
	"assam":          "AS",
	"असम":            "AS",
	"jharkhand":      "JH",
	"झारखंड":         "JH",
	"chhattisgarh":   "CG",
	"छत्तीसगढ़":      "CG",
	"uttarakhand":    "UK",
	"उत्तराखंड":      "UK",
	"himachal":       "HP",
	"हिमाचल":         "HP",
	"delhi":          "DL",
	"दिल्ली":         "DL",
}

// RegionDisplayNames maps region codes back to display names for envelopes.
var RegionDisplayNames = map[string]string{
	"PB": "Punjab",
	"HR": "Haryana",
	"UP": "Uttar Pradesh",
	"MP": "Madhya Pradesh",
	"MH": "Maharashtra",
	"RJ": "Rajasthan",
	"GJ": "Gujarat",
	"BR": "Bihar",
	"WB": "West Bengal",
	"KA": "Karnataka",
	"TN": "Tamil Nadu",
	"AP": "Andhra Pradesh",
	"TG": "Telangana",
	"KL": "Kerala",
	"OD": "Odisha",
	"AS": "Assam",
	"JH": "Jharkhand",
	"CG": "Chhattisgarh",
	"UK": "Uttarakhand",
	"HP": "Himachal Pradesh",
	"DL": "Delhi",
}

// RegionMultipliers adjust the commodity base price for local market levels.
// Regions not listed use 1.0.
var RegionMultipliers = map[string]float64{
	"PB": 1.05,
	"HR": 1.04,
	"UP": 0.97,
	"MP": 0.95,
	"MH": 1.02,
	"RJ": 0.96,
	"GJ": 1.03,
	"BR": 0.92,
	"WB": 0.98,
	"KA": 1.01,
	"TN": 1.02,
	"AP": 0.99,
	"TG": 1.00,
	"KL": 1.08,
	"DL": 1.10,
}

// RegionDistricts lists district names used for synthetic market rows.
// States without an entry get districts synthesized from compass directions.
var RegionDistricts = map[string][]string{
	"PB": {"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Bathinda", "Moga"},
	"HR": {"Karnal", "Hisar", "Rohtak", "Ambala", "Sirsa"},
	"UP": {"Lucknow", "Kanpur", "Varanasi", "Meerut", "Agra", "Gorakhpur"},
	"MP": {"Indore", "Bhopal", "Ujjain", "Jabalpur", "Gwalior"},
	"MH": {"Pune", "Nashik", "Nagpur", "Aurangabad", "Kolhapur", "Solapur"},
	"RJ": {"Jaipur", "Jodhpur", "Kota", "Bikaner", "Udaipur"},
	"GJ": {"Ahmedabad", "Rajkot", "Surat", "Vadodara", "Junagadh"},
	"BR": {"Patna", "Muzaffarpur", "Gaya", "Bhagalpur", "Darbhanga"},
	"WB": {"Kolkata", "Burdwan", "Hooghly", "Murshidabad", "Nadia"},
	"KA": {"Bengaluru", "Mysuru", "Hubballi", "Belagavi", "Davangere"},
	"TN": {"Chennai", "Coimbatore", "Madurai", "Salem", "Tiruchirappalli"},
	"AP": {"Vijayawada", "Guntur", "Visakhapatnam", "Kurnool", "Tirupati"},
	"TG": {"Hyderabad", "Warangal", "Nizamabad", "Karimnagar"},
	"KL": {"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur"},
	"DL": {"Azadpur", "Najafgarh", "Narela", "Ghazipur"},
}

// CompassDirections synthesize district names for regions without a list,
// producing "<RegionName> North" style entries.
var CompassDirections = []string{"North", "South", "East", "West", "Central"}

// DefaultRegionCode guarantees that every price lookup has a concrete region
// even when classification finds none.
const DefaultRegionCode = "DL"

// ResolveRegionCode normalizes a caller-supplied state parameter: accepts
// either a code or a name, falling back to the default region.
func ResolveRegionCode(state string) string {
	if state == "" {
		return DefaultRegionCode
	}
	upper := strings.ToUpper(state)
	if _, ok := RegionDisplayNames[upper]; ok {
		return upper
	}
	if code, ok := RegionNames[strings.ToLower(state)]; ok {
		return code
	}
	return DefaultRegionCode
}

// RegionName returns the display name for a code, or the code itself when unknown.
func RegionName(code string) string {
	if name, ok := RegionDisplayNames[code]; ok {
		return name
	}
	return code
}

// DistrictsFor returns the static district list for a region, synthesizing
// "<RegionName> <Compass>" names for unlisted regions.
func DistrictsFor(code string) []string {
	if districts, ok := RegionDistricts[code]; ok {
		return districts
	}
	name := RegionName(code)
	out := make([]string, 0, len(CompassDirections))
	for _, dir := range CompassDirections {
		out = append(out, name+" "+dir)
	}
	return out
}
