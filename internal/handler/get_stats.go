package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetStats обрабатывает GET /shorturls/{shortcode}. Просмотр статистики переход не регистрирует.
func (h *Handler) GetStats(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortcode")

	stats, err := h.usecase.GetStats(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
