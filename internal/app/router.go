package app

import (
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5, "application/json"))

	// Routes
	r.Get("/ping", h.Ping)
	r.Post("/shorturls", h.CreateShortURL)
	r.Get("/shorturls/{shortcode}", h.GetStats)
	r.Get("/{shortcode}", h.Redirect)

	return r
}
