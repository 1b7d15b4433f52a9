package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
)

// Resolve регистрирует переход и возвращает URL для редиректа
func (u *URLUsecase) Resolve(ctx context.Context, code string, visit model.Visit) (string, error) {
	originalURL, err := u.service.ResolveAndTrack(ctx, code, visit)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrExpired) {
			u.logger.Debug("redirect refused", zap.String("code", code), zap.Error(err))
			return "", err
		}

		u.logger.Error("failed to resolve short URL", zap.String("code", code), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return originalURL.String(), nil
}
