package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// CreateShortURL обрабатывает POST /shorturls. Срок действия принимается только целым числом минут.
func (h *Handler) CreateShortURL(w http.ResponseWriter, req *http.Request) {
	var request model.ShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "validity" {
			h.writeError(w, http.StatusBadRequest, "invalid validity")
			return
		}
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.usecase.CreateShortURL(req.Context(), request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, response)
}
