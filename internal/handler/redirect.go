package handler

import (
	"net/http"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/go-chi/chi/v5"
)

// Redirect обрабатывает GET /{shortcode}: учитывает переход и перенаправляет на исходный URL
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortcode")

	visit := model.Visit{
		Referrer:   req.Referer(),
		RemoteAddr: req.RemoteAddr,
		UserAgent:  req.UserAgent(),
		Header:     req.Header,
	}

	target, err := h.usecase.Resolve(req.Context(), code, visit)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, target, http.StatusFound)
}
