package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда пользователь не является стороной бронирования
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidAction возвращается при неизвестном действии перехода
	ErrInvalidAction = errors.New("invalid transition action")

	// ErrInvalidTransition возвращается, когда переход отсутствует в таблице переходов
	ErrInvalidTransition = errors.New("transition not allowed from current status")

	// ErrPermissionDenied возвращается, когда роль не вправе выполнить переход
	ErrPermissionDenied = errors.New("role is not permitted to perform this transition")

	// ErrAlreadyPaid возвращается при повторной попытке оплаты
	ErrAlreadyPaid = errors.New("booking is already paid")

	// ErrPaymentFailed возвращается при неуспешной оплате
	// Статус оплаты бронирования при этом не меняется
	ErrPaymentFailed = errors.New("payment failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
