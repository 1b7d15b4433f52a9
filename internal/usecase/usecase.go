package usecase

import (
	"context"
	"time"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// timestampLayout ISO-8601 в UTC с миллисекундами
const timestampLayout = "2006-01-02T15:04:05.000Z"

//go:generate mockery --name ShortlinkService

// ShortlinkService определяет интерфейс ядра сервиса коротких ссылок
type ShortlinkService interface {
	CreateShortlink(ctx context.Context, params model.CreateParams) (model.LinkRecord, error)
	Inspect(ctx context.Context, code string) (model.LinkStats, error)
	ResolveAndTrack(ctx context.Context, code string, visit model.Visit) (model.URL, error)
}

// URLUsecase готовит входные данные для ядра и собирает ответы для HTTP слоя
type URLUsecase struct {
	service ShortlinkService
	cfg     *config.Config
	logger  *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(service ShortlinkService, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// FormatTimestamp форматирует момент времени для внешних ответов
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
