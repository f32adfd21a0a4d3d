package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrSchema                = errors.New("unexpected input schema")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
