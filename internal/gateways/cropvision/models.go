package cropvision

import "time"

// Assessment is the structured crop diagnosis shown to the farmer.
type Assessment struct {
	PlantType    string   `json:"plantType"`
	HealthStatus string   `json:"healthStatus"`
	Disease      string   `json:"disease"`
	Symptoms     []string `json:"symptoms"`
	Causes       []string `json:"causes"`
	Treatment    []string `json:"treatment"`
	Prevention   []string `json:"prevention"`
	UrgencyLevel string   `json:"urgencyLevel"`
	RawText      string   `json:"rawText"`
}

// Config holds the vision model settings.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}
