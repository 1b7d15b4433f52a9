package service

import (
	"context"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
)

//go:generate mockery --name URLRepository
//go:generate mockery --name Generator

// URLRepository определяет методы для работы с хранилищем ссылок и переходов
type URLRepository interface {
	// CreateLink сохраняет новую ссылку; возвращает ошибку, если код уже занят
	CreateLink(code model.Code, url model.URL, createdAt time.Time, validity time.Duration) (model.LinkRecord, error)
	GetLink(code model.Code) (model.LinkRecord, error)
	RecordClick(code model.Code, event model.ClickEvent) error
	ListClicks(code model.Code) []model.ClickEvent
	IsExpired(record model.LinkRecord, now time.Time) bool
}

// Generator генератор коротких кодов
type Generator interface {
	GenerateCode(length int) (model.Code, error)
}

// LocationResolver определяет местоположение посетителя. Не обращается к сети.
type LocationResolver interface {
	Resolve(ctx context.Context, visit model.Visit) string
}

// DeviceDetector определяет устройство посетителя по User-Agent
type DeviceDetector interface {
	Detect(userAgent string) model.DeviceInfo
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// RealClock системные часы
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}
