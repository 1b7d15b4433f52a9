package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
)

// GetStats возвращает сведения о ссылке и историю переходов
func (u *URLUsecase) GetStats(ctx context.Context, code string) (model.StatsResponse, error) {
	stats, err := u.service.Inspect(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrExpired) {
			u.logger.Debug("stats unavailable", zap.String("code", code), zap.Error(err))
			return model.StatsResponse{}, err
		}

		u.logger.Error("failed to inspect short URL", zap.String("code", code), zap.Error(err))
		return model.StatsResponse{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	clicks := make([]model.ClickResponse, 0, len(stats.Clicks))
	for _, click := range stats.Clicks {
		clicks = append(clicks, model.ClickResponse{
			ID:         click.ID,
			Timestamp:  FormatTimestamp(click.Timestamp),
			Referrer:   click.Referrer,
			Location:   click.Location,
			DeviceType: click.DeviceType,
			Browser:    click.Browser,
			OS:         click.OS,
		})
	}

	return model.StatsResponse{
		OriginalURL: stats.Record.OriginalURL.String(),
		CreatedAt:   FormatTimestamp(stats.Record.CreatedAt),
		Expiry:      FormatTimestamp(stats.Record.ExpiresAt),
		TotalClicks: stats.Record.ClickCount,
		Clicks:      clicks,
	}, nil
}
