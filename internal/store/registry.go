package store

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrAlreadyExists = errors.New("key already exists")
)

type linkEntry struct {
	record model.LinkRecord
	clicks atomic.Int64
}

// Registry хранит записи о коротких ссылках в памяти.
// Записи никогда не удаляются: истёкшая ссылка остаётся в реестре и продолжает занимать код.
type Registry struct {
	links map[model.Code]*linkEntry
	mutex sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		links: make(map[model.Code]*linkEntry),
	}
}

// Create атомарно проверяет, что код свободен, и сохраняет новую запись с нулевым счётчиком
func (r *Registry) Create(code model.Code, url model.URL, createdAt time.Time, validity time.Duration) (model.LinkRecord, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.links[code]; exists {
		return model.LinkRecord{}, fmt.Errorf("key %s: %w", code, ErrAlreadyExists)
	}

	entry := &linkEntry{
		record: model.LinkRecord{
			Code:        code,
			OriginalURL: url,
			CreatedAt:   createdAt,
			ExpiresAt:   createdAt.Add(validity),
		},
	}
	r.links[code] = entry

	return entry.record, nil
}

// Get возвращает снимок записи вместе с текущим значением счётчика переходов
func (r *Registry) Get(code model.Code) (model.LinkRecord, error) {
	r.mutex.RLock()
	entry, ok := r.links[code]
	r.mutex.RUnlock()

	if !ok {
		return model.LinkRecord{}, fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	record := entry.record
	record.ClickCount = entry.clicks.Load()

	return record, nil
}

// IsExpired true, если now строго позже срока действия записи
func (r *Registry) IsExpired(record model.LinkRecord, now time.Time) bool {
	return record.IsExpired(now)
}

// IncrementClick увеличивает счётчик переходов. Блокирует только чтение карты,
// поэтому инкременты разных кодов не мешают друг другу.
func (r *Registry) IncrementClick(code model.Code) error {
	r.mutex.RLock()
	entry, ok := r.links[code]
	r.mutex.RUnlock()

	if !ok {
		return fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	entry.clicks.Add(1)

	return nil
}
