package catalog

// Scheme is one government support program in the static directory.
type Scheme struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	Benefits         []string `json:"benefits"`
	Eligibility      []string `json:"eligibility"`
	Documents        []string `json:"documents"`
	ApplicationSteps []string `json:"applicationSteps"`
	Website          string   `json:"website"`
	LaunchYear       int      `json:"launchYear"`
	Ministry         string   `json:"ministry"`
}

// Schemes is the read-only scheme directory served by GET /api/schemes.
// There is no live upstream for this data; the catalog itself is the source.
var Schemes = []Scheme{
	{
		ID:          "pm-kisan",
		Name:        "PM-KISAN",
		Category:    "income-support",
		Description: "Income support of Rs 6,000 per year to all landholding farmer families, paid in three equal installments.",
		Benefits: []string{
			"Rs 6,000 per year direct benefit transfer",
			"Paid in three installments of Rs 2,000",
		},
		Eligibility: []string{
			"All landholding farmer families",
			"Excludes institutional landholders and income-tax payers",
		},
		Documents:        []string{"Aadhaar card", "Land ownership records", "Bank account details"},
		ApplicationSteps: []string{"Register on the PM-KISAN portal", "Submit Aadhaar and land records", "Verification by state nodal officer"},
		Website:          "https://pmkisan.gov.in",
		LaunchYear:       2019,
		Ministry:         "Ministry of Agriculture and Farmers Welfare",
	},
	{
		ID:          "pmfby",
		Name:        "Pradhan Mantri Fasal Bima Yojana",
		Category:    "insurance",
		Description: "Crop insurance covering yield losses from natural calamities, pests and diseases at subsidized premium rates.",
		Benefits: []string{
			"Premium capped at 2% for kharif and 1.5% for rabi crops",
			"Full sum insured paid for total crop loss",
		},
		Eligibility: []string{
			"All farmers growing notified crops in notified areas",
			"Both loanee and non-loanee farmers",
		},
		Documents:        []string{"Land records", "Sowing certificate", "Bank account details", "Aadhaar card"},
		ApplicationSteps: []string{"Apply through bank, CSC or the NCIP portal", "Pay the farmer share of premium", "Report crop loss within 72 hours"},
		Website:          "https://pmfby.gov.in",
		LaunchYear:       2016,
		Ministry:         "Ministry of Agriculture and Farmers Welfare",
	},
	{
		ID:          "kcc",
		Name:        "Kisan Credit Card",
		Category:    "credit",
		Description: "Short-term credit for cultivation and allied activities at subsidized interest rates with flexible repayment.",
		Benefits: []string{
			"Credit up to Rs 3 lakh at 7% interest",
			"3% interest subvention on prompt repayment",
			"Personal accident insurance cover",
		},
		Eligibility: []string{
			"Farmers, sharecroppers, tenant farmers",
			"Self-help groups of farmers",
		},
		Documents:        []string{"Identity proof", "Address proof", "Land documents", "Passport-size photo"},
		ApplicationSteps: []string{"Apply at any bank branch or online", "Bank verification of land records", "Card issued after approval"},
		Website:          "https://www.myscheme.gov.in/schemes/kcc",
		LaunchYear:       1998,
		Ministry:         "Ministry of Finance",
	},
	{
		ID:          "soil-health-card",
		Name:        "Soil Health Card Scheme",
		Category:    "advisory",
		Description: "Soil testing and crop-wise nutrient recommendations issued to farmers every two years.",
		Benefits: []string{
			"Free soil testing",
			"Fertilizer recommendations tailored to the plot",
		},
		Eligibility:      []string{"All farmers"},
		Documents:        []string{"Land details", "Aadhaar card"},
		ApplicationSteps: []string{"Contact local agriculture office", "Soil sample collected from the field", "Card issued with recommendations"},
		Website:          "https://soilhealth.dac.gov.in",
		LaunchYear:       2015,
		Ministry:         "Ministry of Agriculture and Farmers Welfare",
	},
	{
		ID:          "pmksy",
		Name:        "Pradhan Mantri Krishi Sinchayee Yojana",
		Category:    "irrigation",
		Description: "Irrigation coverage expansion and water-use efficiency, including drip and sprinkler subsidies.",
		Benefits: []string{
			"Up to 55% subsidy on micro-irrigation for small and marginal farmers",
			"45% subsidy for other farmers",
		},
		Eligibility:      []string{"All farmers with cultivable land"},
		Documents:        []string{"Land records", "Bank account details", "Aadhaar card"},
		ApplicationSteps: []string{"Apply through state agriculture or horticulture department", "Field inspection", "Subsidy released after installation"},
		Website:          "https://pmksy.gov.in",
		LaunchYear:       2015,
		Ministry:         "Ministry of Agriculture and Farmers Welfare",
	},
	{
		ID:          "enam",
		Name:        "e-NAM",
		Category:    "marketing",
		Description: "National electronic trading portal networking existing mandis for transparent price discovery.",
		Benefits: []string{
			"Online bidding across mandis",
			"Same-day online payment",
		},
		Eligibility:      []string{"Farmers registered with an e-NAM mandi"},
		Documents:        []string{"Aadhaar card", "Bank account details"},
		ApplicationSteps: []string{"Register at the nearest e-NAM mandi or online", "Bring produce for quality assaying", "Sell through online auction"},
		Website:          "https://enam.gov.in",
		LaunchYear:       2016,
		Ministry:         "Ministry of Agriculture and Farmers Welfare",
	},
	{
		ID:          "pkvy",
		Name:        "Paramparagat Krishi Vikas Yojana",
		Category:    "organic",
		Description: "Cluster-based promotion of organic farming with certification support.",
		Benefits: []string{
			"Rs 50,000 per hectare over three years",
			"Organic certification support",
		},
		Eligibility:      []string{"Farmers willing to form or join a 20-hectare cluster"},
		Documents:        []string{"Land records", "Aadhaar card", "Bank account details"},
		ApplicationSteps: []string{"Form or join a cluster", "Apply through regional council", "Adopt organic package of practices"},
		Website:          "https://pgsindia-ncof.gov.in",
		LaunchYear:       2015,
		Ministry:         "Ministry of Agriculture and Farmers Welfare",
	},
	{
		ID:          "pmkmy",
		Name:        "PM Kisan Maandhan Yojana",
		Category:    "pension",
		Description: "Voluntary contributory pension of Rs 3,000 per month for small and marginal farmers after age 60.",
		Benefits: []string{
			"Rs 3,000 monthly pension after 60",
			"Matching contribution by central government",
		},
		Eligibility: []string{
			"Small and marginal farmers aged 18 to 40",
			"Cultivable land up to 2 hectares",
		},
		Documents:        []string{"Aadhaar card", "Bank account details", "Land records"},
		ApplicationSteps: []string{"Enroll at nearest CSC", "Choose monthly contribution", "Auto-debit from bank account"},
		Website:          "https://maandhan.in",
		LaunchYear:       2019,
		Ministry:         "Ministry of Agriculture and Farmers Welfare",
	},
	{
		ID:          "nfsm",
		Name:        "National Food Security Mission",
		Category:    "production",
		Description: "Area expansion and productivity enhancement for rice, wheat, pulses, coarse cereals and commercial crops.",
		Benefits: []string{
			"Subsidized certified seeds and farm machinery",
			"Demonstrations of improved practices",
		},
		Eligibility:      []string{"Farmers in identified districts"},
		Documents:        []string{"Land records", "Aadhaar card"},
		ApplicationSteps: []string{"Contact district agriculture office", "Apply for chosen component", "Benefit released through DBT"},
		Website:          "https://nfsm.gov.in",
		LaunchYear:       2007,
		Ministry:         "Ministry of Agriculture and Farmers Welfare",
	},
	{
		ID:          "agri-infra-fund",
		Name:        "Agriculture Infrastructure Fund",
		Category:    "credit",
		Description: "Medium to long-term debt financing for post-harvest infrastructure and community farming assets.",
		Benefits: []string{
			"3% interest subvention on loans up to Rs 2 crore",
			"Credit guarantee cover under CGTMSE",
		},
		Eligibility: []string{
			"Farmers, FPOs, PACS, agri-entrepreneurs, startups",
		},
		Documents:        []string{"Project report", "Land or lease documents", "Bank account details"},
		ApplicationSteps: []string{"Register on the AIF portal", "Submit project details", "Loan sanctioned by lending institution"},
		Website:          "https://agriinfra.dac.gov.in",
		LaunchYear:       2020,
		Ministry:         "Ministry of Agriculture and Farmers Welfare",
	},
}

// SchemeCategories returns the distinct category list in directory order.
func SchemeCategories() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range Schemes {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}
