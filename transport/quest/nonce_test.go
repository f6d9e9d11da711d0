package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNonce(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		want  string
		found bool
	}{
		{"bare JSON string", `"a1b2c3"`, "a1b2c3", true},
		{"plain text", "a1b2c3", "a1b2c3", true},
		{"flat field", `{"nonce":"n-42"}`, "n-42", true},
		{"nested field", `{"data":{"nonce":"n-99"}}`, "n-99", true},
		{"empty body", "", NonceFallback, false},
		{"empty object", `{}`, NonceFallback, false},
		{"unrelated fields", `{"status":"ok"}`, NonceFallback, false},
		{"array body", `["nope"]`, NonceFallback, false},
		{"empty string", `""`, NonceFallback, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractNonce([]byte(tt.body))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestExtractNonceFlatWinsOverNested(t *testing.T) {
	got, found := ExtractNonce([]byte(`{"nonce":"outer","data":{"nonce":"inner"}}`))
	assert.True(t, found)
	assert.Equal(t, "outer", got)
}
