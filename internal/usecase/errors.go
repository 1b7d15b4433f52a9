package usecase

import "errors"

var (
	ErrServiceUnavailable = errors.New("service unavailable")
)
