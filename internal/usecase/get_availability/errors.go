package get_availability

import "errors"

var (
	// ErrInvalidRange возвращается, когда from позже to
	ErrInvalidRange = errors.New("get_availability: invalid date range")

	// ErrAvailabilityUnavailable возвращается, когда занятость дат не удалось прочитать
	ErrAvailabilityUnavailable = errors.New("get_availability: availability could not be determined")
)
