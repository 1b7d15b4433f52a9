package service

import (
	"net/url"
	"regexp"
)

var codePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// IsValidURL true, если строка разбирается как абсолютный URL со схемой и хостом.
// Сетевых обращений не делает.
func IsValidURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return parsed.Scheme != "" && parsed.Host != ""
}

// IsValidCode true, если код непустой и состоит только из латинских букв и цифр
func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}
