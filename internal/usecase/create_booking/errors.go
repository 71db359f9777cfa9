package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDateInPast возвращается, когда дата события раньше сегодняшнего дня
	ErrDateInPast = errors.New("create_booking: event date is in the past")

	// ErrDateUnavailable возвращается, когда на дату уже есть активная заявка
	ErrDateUnavailable = errors.New("create_booking: event date is unavailable")

	// ErrAvailabilityUnavailable возвращается, когда занятость дат не удалось прочитать;
	// заявка в этом случае не принимается
	ErrAvailabilityUnavailable = errors.New("create_booking: availability could not be determined")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
