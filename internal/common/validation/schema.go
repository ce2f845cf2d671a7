// Package validation checks inbound request bodies against JSON schemas before
// any gateway work happens. Schema violations are the only errors surfaced to
// callers as true HTTP failures.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const chatRequestSchema = `{
	"type": "object",
	"properties": {
		"message": {
			"type": "string",
			"minLength": 1,
			"maxLength": 2000
		},
		"language": {
			"type": "string",
			"enum": ["en", "hi", "pa", "mr", "gu", "ta", "te", "kn", "bn"]
		}
	},
	"required": ["message"],
	"additionalProperties": false
}`

var chatSchema = gojsonschema.NewStringLoader(chatRequestSchema)

// ValidateChatRequest validates a raw POST /api/chat body. Returns a combined,
// human-readable description of every violation, or nil.
func ValidateChatRequest(body []byte) error {
	result, err := gojsonschema.Validate(chatSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("malformed JSON body: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
