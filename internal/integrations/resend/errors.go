package resend

import "errors"

var (
	// ErrNotConfigured не задан API ключ
	ErrNotConfigured = errors.New("resend client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("resend client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("resend client: invalid response")

	// ErrRejected письмо отклонено сервисом (4xx)
	ErrRejected = errors.New("resend client: email rejected")
)
