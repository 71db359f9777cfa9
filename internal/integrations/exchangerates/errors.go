package exchangerates

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("exchangerates client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("exchangerates client: invalid response")

	// ErrMissingRates в ответе нет курсов MDL или USD
	ErrMissingRates = errors.New("exchangerates client: response is missing required rates (MDL, USD)")

	// ErrUnavailable курсы не удалось получить и кеш пуст
	ErrUnavailable = errors.New("exchangerates: rates unavailable")
)
