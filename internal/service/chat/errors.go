package chat

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")
	// ErrAccessDenied пользователь не является участником сделки
	ErrAccessDenied = errors.New("access denied")
	// ErrPolicyViolation сообщение нарушает политику общения
	ErrPolicyViolation = errors.New("message violates contact policy")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal chat error")
)
