package matching

import "errors"

var (
	// ErrInvalidCriteria возвращается при некорректных критериях отбора
	ErrInvalidCriteria = errors.New("matching: invalid criteria")
)
