package assistant

import "time"

// Config holds the chat model settings.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}
