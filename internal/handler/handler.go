package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
)

//go:generate mockery --name URLUsecase

// URLUsecase сценарии, которые обслуживает HTTP слой
type URLUsecase interface {
	CreateShortURL(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error)
	GetStats(ctx context.Context, code string) (model.StatsResponse, error)
	Resolve(ctx context.Context, code string, visit model.Visit) (string, error)
}

type Handler struct {
	usecase URLUsecase
	logger  *zap.Logger
}

func New(usecase URLUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// writeJSON отдает тело ответа в JSON с указанным статусом
func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Int("status", status), zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, model.ErrorResponse{Error: message})
}

// handleError переводит ошибки сценариев в HTTP статусы
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		h.writeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, service.ErrValidation):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCollision):
		h.writeError(w, http.StatusConflict, "shortcode already in use")
	case errors.Is(err, service.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "shortcode not found")
	case errors.Is(err, service.ErrExpired):
		h.writeError(w, http.StatusGone, "shortlink has expired")
	case errors.Is(err, service.ErrMaxRetriesExceeded):
		h.writeError(w, http.StatusServiceUnavailable, "unable to allocate a unique shortcode, try again later")
	default:
		h.logger.Error("internal error", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
