package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int {
	return &v
}

func TestCreateShortURL_Success(t *testing.T) {
	tests := []struct {
		name           string
		request        model.ShortenRequest
		expectedParams model.CreateParams
		code           string
		expectedLink   string
	}{
		{
			name:           "Generated code with default validity",
			request:        model.ShortenRequest{URL: "https://example.com"},
			expectedParams: model.CreateParams{URL: "https://example.com"},
			code:           "aB3xZ",
			expectedLink:   "http://localhost:8080/aB3xZ",
		},
		{
			name:           "Explicit shortcode and validity",
			request:        model.ShortenRequest{URL: "https://example.com/path", Validity: intPtr(60), Shortcode: "abc123"},
			expectedParams: model.CreateParams{URL: "https://example.com/path", ValidityMinutes: 60, Code: "abc123"},
			code:           "abc123",
			expectedLink:   "http://localhost:8080/abc123",
		},
		{
			name:           "URL surrounded by spaces",
			request:        model.ShortenRequest{URL: "  https://example.com \n"},
			expectedParams: model.CreateParams{URL: "https://example.com"},
			code:           "qwert",
			expectedLink:   "http://localhost:8080/qwert",
		},
		{
			name:           "Quotes inside URL are kept",
			request:        model.ShortenRequest{URL: "https://example.com/?q='x'"},
			expectedParams: model.CreateParams{URL: "https://example.com/?q='x'"},
			code:           "q1",
			expectedLink:   "http://localhost:8080/q1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockService := mocks.NewMockShortlinkService(t)
			cfg := config.NewDefaultConfig()

			mockService.EXPECT().
				CreateShortlink(mock.Anything, tt.expectedParams).
				Return(model.LinkRecord{
					Code:        model.Code(tt.code),
					OriginalURL: model.URL(tt.expectedParams.URL),
					CreatedAt:   testNow,
					ExpiresAt:   testNow.Add(30 * time.Minute),
				}, nil).
				Once()

			usecase := NewURLUsecase(mockService, cfg, zap.NewNop())

			// Act
			resp, err := usecase.CreateShortURL(t.Context(), tt.request)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLink, resp.ShortLink)
			assert.Equal(t, "2025-03-01T12:30:00.000Z", resp.Expiry)
		})
	}
}

// TestCreateShortURL_BaseURLWithPath проверяет сборку ссылки при базовом адресе с путем
func TestCreateShortURL_BaseURLWithPath(t *testing.T) {
	mockService := mocks.NewMockShortlinkService(t)
	cfg := config.NewDefaultConfig()
	require.NoError(t, cfg.BaseURL.Set("https://sho.rt/s/"))

	mockService.EXPECT().
		CreateShortlink(mock.Anything, mock.Anything).
		Return(model.LinkRecord{Code: "abc", ExpiresAt: testNow}, nil).
		Once()

	usecase := NewURLUsecase(mockService, cfg, zap.NewNop())

	resp, err := usecase.CreateShortURL(t.Context(), model.ShortenRequest{URL: "https://example.com"})

	require.NoError(t, err)
	assert.Equal(t, "https://sho.rt/s/abc", resp.ShortLink)
}

// TestCreateShortURL_NonPositiveValidity проверяет, что явный ноль и отрицательные
// значения отклоняются до обращения к ядру
func TestCreateShortURL_NonPositiveValidity(t *testing.T) {
	for _, validity := range []int{0, -1, -100} {
		mockService := mocks.NewMockShortlinkService(t)
		usecase := NewURLUsecase(mockService, config.NewDefaultConfig(), zap.NewNop())

		_, err := usecase.CreateShortURL(t.Context(), model.ShortenRequest{
			URL:      "https://example.com",
			Validity: intPtr(validity),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrValidation)
		assert.Equal(t, "invalid validity", err.Error())
		mockService.AssertNotCalled(t, "CreateShortlink", mock.Anything, mock.Anything)
	}
}

func TestCreateShortURL_ErrorMapping(t *testing.T) {
	tests := []struct {
		name          string
		serviceErr    error
		expectedErr   error
		wrappedAsFail bool
	}{
		{
			name:        "Validation error passes through",
			serviceErr:  service.NewValidationError("url", "invalid url"),
			expectedErr: service.ErrValidation,
		},
		{
			name:        "Collision passes through",
			serviceErr:  service.ErrCollision,
			expectedErr: service.ErrCollision,
		},
		{
			name:        "Retries exhausted passes through",
			serviceErr:  service.ErrMaxRetriesExceeded,
			expectedErr: service.ErrMaxRetriesExceeded,
		},
		{
			name:          "Unexpected error is wrapped",
			serviceErr:    errors.New("boom"),
			expectedErr:   ErrServiceUnavailable,
			wrappedAsFail: true,
		},
		{
			name:          "Entropy failure is wrapped",
			serviceErr:    service.ErrEntropyUnavailable,
			expectedErr:   ErrServiceUnavailable,
			wrappedAsFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockService := mocks.NewMockShortlinkService(t)
			mockService.EXPECT().
				CreateShortlink(mock.Anything, mock.Anything).
				Return(model.LinkRecord{}, tt.serviceErr).
				Once()

			usecase := NewURLUsecase(mockService, config.NewDefaultConfig(), zap.NewNop())

			// Act
			resp, err := usecase.CreateShortURL(t.Context(), model.ShortenRequest{URL: "https://example.com"})

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.ErrorIs(t, err, tt.serviceErr)
			assert.Empty(t, resp.ShortLink)
			if !tt.wrappedAsFail {
				assert.NotErrorIs(t, err, ErrServiceUnavailable)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{name: "UTC whole second", input: testNow, expected: "2025-03-01T12:00:00.000Z"},
		{name: "Milliseconds kept", input: testNow.Add(1234 * time.Millisecond), expected: "2025-03-01T12:00:01.234Z"},
		{name: "Other zone converted to UTC", input: time.Date(2025, 3, 1, 15, 0, 0, 0, moscow), expected: "2025-03-01T12:00:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimestamp(tt.input))
		})
	}
}
