package create_contact_message

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/chefdechef/booking-service/internal/domain"
)

func normalizeRequest(req *Request) *Request {
	return &Request{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}
}

// validateRequest проверяет поля формы; телефон необязателен
func validateRequest(req *Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		return fmt.Errorf("%w: email has invalid format", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if req.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message must be at most %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}
	return nil
}
