package geo

import (
	"context"
	"net/http"
	"testing"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPlaceholder_Resolve(t *testing.T) {
	resolver := NewPlaceholder("India (simulated)")

	assert.Equal(t, "India (simulated)", resolver.Resolve(context.Background(), model.Visit{}))
}

func TestHeaderResolver_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		header   http.Header
		expected string
	}{
		{
			name:     "Country header present",
			header:   http.Header{"Cf-Ipcountry": []string{"DE"}},
			expected: "DE",
		},
		{
			name:     "Header with spaces",
			header:   http.Header{"Cf-Ipcountry": []string{"  FR "}},
			expected: "FR",
		},
		{
			name:     "Unknown country falls back",
			header:   http.Header{"Cf-Ipcountry": []string{"XX"}},
			expected: "unknown",
		},
		{
			name:     "Header missing",
			header:   http.Header{},
			expected: "unknown",
		},
		{
			name:     "No headers at all",
			header:   nil,
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewHeaderResolver("CF-IPCountry", NewPlaceholder("unknown"))

			location := resolver.Resolve(context.Background(), model.Visit{Header: tt.header})

			assert.Equal(t, tt.expected, location)
		})
	}
}
