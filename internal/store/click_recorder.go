package store

import (
	"sync"

	"github.com/avc-dev/shortlink/internal/model"
)

type clickLog struct {
	mutex  sync.Mutex
	events []model.ClickEvent
}

// ClickRecorder хранит историю переходов по каждому коду в порядке добавления
type ClickRecorder struct {
	logs  map[model.Code]*clickLog
	mutex sync.RWMutex
}

func NewClickRecorder() *ClickRecorder {
	return &ClickRecorder{
		logs: make(map[model.Code]*clickLog),
	}
}

// Init создаёт пустую историю для кода. Повторный вызов ничего не меняет.
func (c *ClickRecorder) Init(code model.Code) {
	c.logFor(code)
}

// Append добавляет событие в конец истории кода
func (c *ClickRecorder) Append(code model.Code, event model.ClickEvent) {
	log := c.logFor(code)

	log.mutex.Lock()
	defer log.mutex.Unlock()

	log.events = append(log.events, event)
}

// List возвращает копию истории в порядке добавления; пустой срез, если переходов не было
func (c *ClickRecorder) List(code model.Code) []model.ClickEvent {
	c.mutex.RLock()
	log, ok := c.logs[code]
	c.mutex.RUnlock()

	if !ok {
		return []model.ClickEvent{}
	}

	log.mutex.Lock()
	defer log.mutex.Unlock()

	events := make([]model.ClickEvent, len(log.events))
	copy(events, log.events)

	return events
}

func (c *ClickRecorder) logFor(code model.Code) *clickLog {
	c.mutex.RLock()
	log, ok := c.logs[code]
	c.mutex.RUnlock()

	if ok {
		return log
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	// Между RUnlock и Lock историю мог создать другой вызов
	if log, ok = c.logs[code]; ok {
		return log
	}

	log = &clickLog{events: make([]model.ClickEvent, 0)}
	c.logs[code] = log

	return log
}
