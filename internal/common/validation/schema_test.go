package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateChatRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid english message",
			body: `{"message": "What is the wheat price today?", "language": "en"}`,
		},
		{
			name: "valid hindi message without language",
			body: `{"message": "गेहूं का भाव क्या है"}`,
		},
		{
			name:    "missing message",
			body:    `{"language": "hi"}`,
			wantErr: true,
		},
		{
			name:    "empty message",
			body:    `{"message": ""}`,
			wantErr: true,
		},
		{
			name:    "unknown language code",
			body:    `{"message": "hello", "language": "xx"}`,
			wantErr: true,
		},
		{
			name:    "extra field rejected",
			body:    `{"message": "hello", "mode": "verbose"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `message=hello`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChatRequest([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
