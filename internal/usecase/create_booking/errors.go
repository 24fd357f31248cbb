package create_booking

import "errors"

var (
	// ErrTownNotFound возвращается, когда город не найден
	ErrTownNotFound = errors.New("create_booking: town not found")

	// ErrTownDisabled возвращается, когда город отключен от обслуживания
	ErrTownDisabled = errors.New("create_booking: town is disabled")

	// ErrCategoryNotFound возвращается, когда категория услуг не найдена
	ErrCategoryNotFound = errors.New("create_booking: category not found")

	// ErrCategoryNotInTown возвращается, когда категория недоступна в указанном городе
	ErrCategoryNotInTown = errors.New("create_booking: category is not available in this town")

	// ErrSubSectionNotFound возвращается, когда подраздел не принадлежит категории
	ErrSubSectionNotFound = errors.New("create_booking: sub-section not found in category")

	// ErrAddonNotFound возвращается, когда дополнительная услуга не принадлежит категории
	ErrAddonNotFound = errors.New("create_booking: addon not found in category")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTime возвращается при некорректном времени бронирования
	ErrInvalidTime = errors.New("create_booking: invalid booking time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
