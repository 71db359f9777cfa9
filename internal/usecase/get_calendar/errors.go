package get_calendar

import "errors"

var (
	// ErrAvailabilityUnavailable возвращается, когда занятость дат не удалось прочитать
	ErrAvailabilityUnavailable = errors.New("get_calendar: availability could not be determined")
)
