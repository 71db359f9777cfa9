package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("booking status transition not allowed")

	// ErrUpdateNotApplied возвращается, когда UPDATE не затронул ни одной строки:
	// заявка изменилась параллельно или недоступна для записи
	ErrUpdateNotApplied = errors.New("booking update was not applied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
