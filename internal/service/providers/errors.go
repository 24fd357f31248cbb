package providers

import "errors"

var (
	// ErrProviderNotFound исполнитель не найден
	ErrProviderNotFound = errors.New("provider not found")
	// ErrAvailabilityNotFound расписание исполнителя не найдено
	ErrAvailabilityNotFound = errors.New("availability not found")
	// ErrInvalidSchedule расписание нарушает инварианты
	ErrInvalidSchedule = errors.New("invalid schedule")
	// ErrInvalidStatus неизвестный статус присутствия
	ErrInvalidStatus = errors.New("invalid provider status")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal providers error")
)
