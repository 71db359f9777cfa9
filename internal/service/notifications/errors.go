package notifications

import "errors"

var (
	// ErrTemplate возвращается, когда не удалось собрать тело письма
	ErrTemplate = errors.New("notifications: render template")
)
