package security

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer abc")
	h.Set("Cookie", "session=1")
	h.Set("Content-Type", "application/json")

	clean := SanitizeHeaders(h)
	assert.Empty(t, clean.Get("Authorization"))
	assert.Empty(t, clean.Get("Cookie"))
	assert.Equal(t, "application/json", clean.Get("Content-Type"))
	assert.Equal(t, "Bearer abc", h.Get("Authorization"), "original must be untouched")
}

func TestRedactURI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/projects", "/api/projects"},
		{"/api/ws?token=eyJhbGciOi", "/api/ws?token=REDACTED"},
		{"/api/ws?TOKEN=abc&v=2", "/api/ws?TOKEN=REDACTED&v=2"},
		{"/api/notifications?limit=5", "/api/notifications?limit=5"},
		{"/api/ws?%zz", "/api/ws?REDACTED"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RedactURI(tt.in), tt.in)
	}
}
