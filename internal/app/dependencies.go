package app

import (
	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/geo"
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/store"
	"github.com/avc-dev/shortlink/internal/usecase"
	"github.com/avc-dev/shortlink/internal/useragent"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) *handler.Handler {
	repo := repository.New(store.NewRegistry(), store.NewClickRecorder())

	shortlinkService := service.NewShortlinkService(
		repo,
		cfg,
		initLocator(cfg, logger),
		useragent.NewParser(logger),
	)
	urlUsecase := usecase.NewURLUsecase(shortlinkService, cfg, logger)

	return handler.New(urlUsecase, logger)
}

// initLocator выбирает источник геолокации на основе конфигурации
func initLocator(cfg *config.Config, logger *zap.Logger) geo.Resolver {
	placeholder := geo.NewPlaceholder(cfg.LocationPlaceholder)
	if cfg.GeoHeader == "" {
		logger.Info("Using placeholder geolocation", zap.String("location", cfg.LocationPlaceholder))
		return placeholder
	}

	logger.Info("Using header geolocation", zap.String("header", cfg.GeoHeader))
	return geo.NewHeaderResolver(cfg.GeoHeader, placeholder)
}
