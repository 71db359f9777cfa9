package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrNoRowsUpdated возвращается, когда UPDATE не вернул ни одной строки
	ErrNoRowsUpdated = errors.New("booking.repository: update matched no rows")

	// ErrDateTaken возвращается при нарушении уникальности активной заявки на дату
	ErrDateTaken = errors.New("booking.repository: date already has an active booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
