package availability

import "errors"

var (
	// ErrInvalidTime возвращается при некорректной строке времени (не HH:MM или вне 00:00-23:59)
	// Некорректное время - это ошибка вызова, а не "недоступен"
	ErrInvalidTime = errors.New("availability: invalid time string")

	// ErrNoAvailability возвращается, когда запись о расписании отсутствует
	ErrNoAvailability = errors.New("availability: no availability record")
)
