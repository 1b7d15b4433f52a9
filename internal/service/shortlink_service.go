package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
	"github.com/google/uuid"
)

// maxValidityMinutes верхняя граница срока действия, десять лет
const maxValidityMinutes = 10 * 365 * 24 * 60

// reservedCodes совпадают со статическими путями роутера и не могут быть кодами ссылок
var reservedCodes = map[model.Code]struct{}{
	"ping":      {},
	"shorturls": {},
}

// ShortlinkService содержит бизнес-логику жизненного цикла коротких ссылок.
// Переходы и чтение статистики по одному коду сериализуются отдельным мьютексом кода,
// операции над разными кодами друг друга не блокируют.
type ShortlinkService struct {
	repo          URLRepository
	codeGenerator Generator
	locator       LocationResolver
	devices       DeviceDetector
	clock         Clock
	cfg           *config.Config

	locks sync.Map // model.Code -> *sync.Mutex
}

// NewShortlinkService создает новый экземпляр ShortlinkService.
// devices может быть nil, тогда сведения об устройстве не заполняются.
func NewShortlinkService(repo URLRepository, cfg *config.Config, locator LocationResolver, devices DeviceDetector) *ShortlinkService {
	return &ShortlinkService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(),
		locator:       locator,
		devices:       devices,
		clock:         RealClock{},
		cfg:           cfg,
	}
}

// CreateShortlink проверяет URL и код, сохраняет ссылку и возвращает созданную запись
func (s *ShortlinkService) CreateShortlink(_ context.Context, params model.CreateParams) (model.LinkRecord, error) {
	if params.URL == "" || !IsValidURL(params.URL) {
		return model.LinkRecord{}, NewValidationError("url", "invalid url")
	}

	minutes := params.ValidityMinutes
	if minutes == 0 {
		minutes = s.cfg.DefaultValidity
	}
	if minutes < 0 || minutes > maxValidityMinutes {
		return model.LinkRecord{}, NewValidationError("validity", "invalid validity")
	}
	validity := time.Duration(minutes) * time.Minute

	originalURL := model.URL(params.URL)

	if params.Code != "" {
		if !IsValidCode(params.Code) {
			return model.LinkRecord{}, NewValidationError("shortcode", "invalid shortcode format")
		}
		return s.create(model.Code(params.Code), originalURL, validity)
	}

	return s.createWithGeneratedCode(originalURL, validity)
}

// Inspect возвращает запись и историю переходов живой ссылки
func (s *ShortlinkService) Inspect(_ context.Context, code string) (model.LinkStats, error) {
	record, unlock, err := s.acquire(model.Code(code))
	if err != nil {
		return model.LinkStats{}, err
	}
	defer unlock()

	return model.LinkStats{
		Record: record,
		Clicks: s.repo.ListClicks(record.Code),
	}, nil
}

// ResolveAndTrack регистрирует переход по живой ссылке и возвращает исходный URL.
// Для отсутствующей или истёкшей ссылки переход не записывается.
func (s *ShortlinkService) ResolveAndTrack(ctx context.Context, code string, visit model.Visit) (model.URL, error) {
	linkCode := model.Code(code)
	if _, err := s.getLink(linkCode); err != nil {
		return "", err
	}

	// Местоположение и устройство определяются до захвата мьютекса кода
	event := s.newClickEvent(ctx, visit)

	record, unlock, err := s.lockActive(linkCode)
	if err != nil {
		return "", err
	}
	defer unlock()

	// Порядок истории совпадает с порядком меток времени
	event.Timestamp = s.clock.Now()

	if err := s.repo.RecordClick(record.Code, event); err != nil {
		return "", fmt.Errorf("failed to record click: %w", err)
	}

	return record.OriginalURL, nil
}

// createWithGeneratedCode генерирует код, пока не найдётся свободный и корректный,
// но не более cfg.Retry.MaxAttempts раз
func (s *ShortlinkService) createWithGeneratedCode(url model.URL, validity time.Duration) (model.LinkRecord, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		code, err := s.codeGenerator.GenerateCode(s.cfg.CodeLength)
		if err != nil {
			return model.LinkRecord{}, fmt.Errorf("failed to generate code: %w", err)
		}

		// base64url может дать '-' или '_'
		if !IsValidCode(code.String()) {
			continue
		}

		record, err := s.create(code, url, validity)
		if errors.Is(err, ErrCollision) {
			continue
		}

		return record, err
	}

	return model.LinkRecord{}, fmt.Errorf("failed to generate unique code after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}

func (s *ShortlinkService) create(code model.Code, url model.URL, validity time.Duration) (model.LinkRecord, error) {
	if _, reserved := reservedCodes[code]; reserved {
		return model.LinkRecord{}, fmt.Errorf("shortcode %s is reserved: %w", code, ErrCollision)
	}

	record, err := s.repo.CreateLink(code, url, s.clock.Now(), validity)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return model.LinkRecord{}, fmt.Errorf("shortcode %s: %w", code, ErrCollision)
		}
		return model.LinkRecord{}, fmt.Errorf("failed to create link: %w", err)
	}

	return record, nil
}

// acquire захватывает мьютекс кода и возвращает согласованный снимок живой записи.
// Мьютекс заводится только для существующих кодов: записи не удаляются,
// поэтому проверка существования до захвата остаётся верной.
func (s *ShortlinkService) acquire(code model.Code) (model.LinkRecord, func(), error) {
	if _, err := s.getLink(code); err != nil {
		return model.LinkRecord{}, nil, err
	}

	return s.lockActive(code)
}

// lockActive захватывает мьютекс существующего кода и перечитывает запись под ним
func (s *ShortlinkService) lockActive(code model.Code) (model.LinkRecord, func(), error) {
	unlock := s.lock(code)

	record, err := s.getLink(code)
	if err != nil {
		unlock()
		return model.LinkRecord{}, nil, err
	}

	if s.repo.IsExpired(record, s.clock.Now()) {
		unlock()
		return model.LinkRecord{}, nil, fmt.Errorf("shortcode %s: %w", code, ErrExpired)
	}

	return record, unlock, nil
}

func (s *ShortlinkService) getLink(code model.Code) (model.LinkRecord, error) {
	record, err := s.repo.GetLink(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.LinkRecord{}, fmt.Errorf("shortcode %s: %w", code, ErrNotFound)
		}
		return model.LinkRecord{}, fmt.Errorf("failed to get link: %w", err)
	}

	return record, nil
}

func (s *ShortlinkService) lock(code model.Code) func() {
	value, _ := s.locks.LoadOrStore(code, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}

func (s *ShortlinkService) newClickEvent(ctx context.Context, visit model.Visit) model.ClickEvent {
	referrer := strings.TrimSpace(visit.Referrer)
	if referrer == "" {
		referrer = model.DirectReferrer
	}

	event := model.ClickEvent{
		ID:       uuid.NewString(),
		Referrer: referrer,
		Location: s.locator.Resolve(ctx, visit),
	}

	if s.devices != nil {
		device := s.devices.Detect(visit.UserAgent)
		event.DeviceType = device.DeviceType
		event.Browser = device.Browser
		event.OS = device.OS
	}

	return event
}
