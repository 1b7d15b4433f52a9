package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_RecordsRequest(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		expectedCode  int
		expectedLevel zapcore.Level
		expectedSize  int64
	}{
		{
			name: "Success with body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("hello"))
			},
			expectedCode:  http.StatusCreated,
			expectedLevel: zapcore.InfoLevel,
			expectedSize:  5,
		},
		{
			name: "Implicit 200",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			expectedCode:  http.StatusOK,
			expectedLevel: zapcore.InfoLevel,
			expectedSize:  2,
		},
		{
			name: "Client error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusGone)
			},
			expectedCode:  http.StatusGone,
			expectedLevel: zapcore.WarnLevel,
		},
		{
			name: "Server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			expectedCode:  http.StatusServiceUnavailable,
			expectedLevel: zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			core, logs := observer.New(zapcore.DebugLevel)
			handler := Logger(zap.New(core))(tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/abc123?x=1", nil)
			w := httptest.NewRecorder()

			// Act
			handler.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, 1, logs.Len())

			entry := logs.All()[0]
			assert.Equal(t, tt.expectedLevel, entry.Level)

			fields := entry.ContextMap()
			assert.Equal(t, http.MethodGet, fields["method"])
			assert.Equal(t, "/abc123?x=1", fields["uri"])
			assert.Equal(t, int64(tt.expectedCode), fields["status"])
			assert.Equal(t, tt.expectedSize, fields["size"])
			assert.NotContains(t, fields, "request_id")
		})
	}
}

func TestLogger_WithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := chimw.RequestID(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(chimw.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
}
