package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
)

// CreateShortURL создает короткую ссылку по запросу POST /shorturls.
// Выполняет обрезку пробелов вокруг URL, проверку срока действия и сборку полной короткой ссылки.
func (u *URLUsecase) CreateShortURL(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error) {
	urlString := strings.TrimSpace(req.URL)

	params := model.CreateParams{
		URL:  urlString,
		Code: req.Shortcode,
	}

	// Явно переданный ноль не подменяется значением по умолчанию
	if req.Validity != nil {
		if *req.Validity <= 0 {
			return model.ShortenResponse{}, service.NewValidationError("validity", "invalid validity")
		}
		params.ValidityMinutes = *req.Validity
	}

	record, err := u.service.CreateShortlink(ctx, params)
	if err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrCollision) {
			u.logger.Debug("short URL rejected",
				zap.String("original_url", urlString),
				zap.String("shortcode", req.Shortcode),
				zap.Error(err),
			)
			return model.ShortenResponse{}, err
		}

		u.logger.Error("failed to create short URL",
			zap.String("original_url", urlString),
			zap.Error(err),
		)
		if errors.Is(err, service.ErrMaxRetriesExceeded) {
			return model.ShortenResponse{}, err
		}
		return model.ShortenResponse{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), record.Code.String())
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", record.Code.String()),
			zap.Error(err),
		)
		return model.ShortenResponse{}, fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	u.logger.Info("short URL created",
		zap.String("code", record.Code.String()),
		zap.String("original_url", urlString),
		zap.Time("expiry", record.ExpiresAt),
	)

	return model.ShortenResponse{
		ShortLink: shortURL,
		Expiry:    FormatTimestamp(record.ExpiresAt),
	}, nil
}
