package service

import "errors"

var (
	// ErrValidation некорректные входные данные, состояние не меняется
	ErrValidation = errors.New("validation failed")
	// ErrCollision код уже занят живой или истёкшей ссылкой
	ErrCollision = errors.New("shortcode already in use")
	// ErrNotFound код никогда не создавался
	ErrNotFound = errors.New("shortcode not found")
	// ErrExpired срок действия ссылки истёк, запись сохраняется
	ErrExpired = errors.New("shortlink has expired")
	// ErrMaxRetriesExceeded возвращается когда не удалось сгенерировать уникальный код
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")
	// ErrEntropyUnavailable источник случайности недоступен
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
)

// ValidationError описывает, какое поле запроса не прошло проверку
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
