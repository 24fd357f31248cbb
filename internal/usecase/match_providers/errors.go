package match_providers

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных критериях отбора
	ErrInvalidInput = errors.New("match_providers: invalid input data")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("match_providers: invalid time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("match_providers: internal error")
)
