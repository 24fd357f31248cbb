package catalog

import "errors"

var (
	// ErrTownNotFound город не найден
	ErrTownNotFound = errors.New("town not found")
	// ErrCategoryNotFound категория не найдена
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal catalog error")
)
