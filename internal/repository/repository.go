package repository

import (
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
)

// LinkStore хранилище записей о ссылках
type LinkStore interface {
	Create(code model.Code, url model.URL, createdAt time.Time, validity time.Duration) (model.LinkRecord, error)
	Get(code model.Code) (model.LinkRecord, error)
	IncrementClick(code model.Code) error
	IsExpired(record model.LinkRecord, now time.Time) bool
}

// ClickStore хранилище истории переходов
type ClickStore interface {
	Init(code model.Code)
	Append(code model.Code, event model.ClickEvent)
	List(code model.Code) []model.ClickEvent
}

type Repository struct {
	links  LinkStore
	clicks ClickStore
}

func New(links LinkStore, clicks ClickStore) *Repository {
	return &Repository{
		links:  links,
		clicks: clicks,
	}
}

// CreateLink сохраняет новую ссылку и заводит для неё пустую историю переходов
func (r *Repository) CreateLink(code model.Code, url model.URL, createdAt time.Time, validity time.Duration) (model.LinkRecord, error) {
	record, err := r.links.Create(code, url, createdAt, validity)
	if err != nil {
		return model.LinkRecord{}, fmt.Errorf("failed to create link: %w", err)
	}

	r.clicks.Init(code)

	return record, nil
}

func (r *Repository) GetLink(code model.Code) (model.LinkRecord, error) {
	record, err := r.links.Get(code)
	if err != nil {
		return model.LinkRecord{}, fmt.Errorf("failed to get link by code: %w", err)
	}

	return record, nil
}

// RecordClick увеличивает счётчик и добавляет событие в историю.
// Вызывающий отвечает за сериализацию вызовов для одного кода.
func (r *Repository) RecordClick(code model.Code, event model.ClickEvent) error {
	if err := r.links.IncrementClick(code); err != nil {
		return fmt.Errorf("failed to increment click count: %w", err)
	}

	r.clicks.Append(code, event)

	return nil
}

// IsExpired сообщает, истекла ли запись к моменту now
func (r *Repository) IsExpired(record model.LinkRecord, now time.Time) bool {
	return r.links.IsExpired(record, now)
}

func (r *Repository) ListClicks(code model.Code) []model.ClickEvent {
	return r.clicks.List(code)
}
