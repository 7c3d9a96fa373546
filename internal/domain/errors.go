package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrSourceFailure      = errors.New("name source failure")
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrWeatherUnavailable = errors.New("weather unavailable")
)
