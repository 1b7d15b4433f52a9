package model

import (
	"net/http"
	"time"
)

// DirectReferrer подставляется в ClickEvent, когда клиент не прислал Referer
const DirectReferrer = "direct"

type Code string

func (c Code) String() string {
	return string(c)
}

type URL string

func (U URL) String() string {
	return string(U)
}

// LinkRecord представляет одну сокращённую ссылку
type LinkRecord struct {
	Code        Code
	OriginalURL URL
	CreatedAt   time.Time
	ExpiresAt   time.Time
	ClickCount  int64
}

// IsExpired сообщает, истекла ли ссылка к моменту now.
// Ссылка с ExpiresAt == now ещё активна.
func (r LinkRecord) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// ClickEvent представляет один переход по короткой ссылке
type ClickEvent struct {
	ID         string
	Timestamp  time.Time
	Referrer   string
	Location   string
	DeviceType string
	Browser    string
	OS         string
}

// Visit данные запроса, по которым формируется ClickEvent
type Visit struct {
	Referrer   string
	RemoteAddr string
	UserAgent  string
	Header     http.Header
}

// DeviceInfo сведения об устройстве, разобранные из User-Agent
type DeviceInfo struct {
	DeviceType string
	Browser    string
	OS         string
}

// CreateParams параметры создания короткой ссылки
type CreateParams struct {
	URL string
	// ValidityMinutes срок действия в минутах; 0 означает значение из конфигурации
	ValidityMinutes int
	// Code запрошенный код; пустая строка означает генерацию
	Code string
}

// LinkStats полная информация о ссылке вместе с историей переходов
type LinkStats struct {
	Record LinkRecord
	Clicks []ClickEvent
}
