package useragent

import (
	"testing"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParser_Detect(t *testing.T) {
	parser := NewParser(zap.NewNop())

	tests := []struct {
		name           string
		userAgent      string
		expectedDevice string
		expectedOS     string
	}{
		{
			name:           "Desktop Chrome on Windows",
			userAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			expectedDevice: DeviceDesktop,
			expectedOS:     "Windows",
		},
		{
			name:           "iPhone Safari",
			userAgent:      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			expectedDevice: DeviceMobile,
			expectedOS:     "iOS",
		},
		{
			name:           "iPad",
			userAgent:      "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1",
			expectedDevice: DeviceTablet,
			expectedOS:     "iOS",
		},
		{
			name:           "Googlebot",
			userAgent:      "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			expectedDevice: DeviceBot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := parser.Detect(tt.userAgent)

			assert.Equal(t, tt.expectedDevice, info.DeviceType)
			assert.NotEmpty(t, info.Browser)
			if tt.expectedOS != "" {
				assert.Equal(t, tt.expectedOS, info.OS)
			}
		})
	}
}

func TestParser_DetectEmpty(t *testing.T) {
	parser := NewParser(zap.NewNop())

	assert.Equal(t, model.DeviceInfo{}, parser.Detect(""))
	assert.Equal(t, model.DeviceInfo{}, parser.Detect("   "))
}
