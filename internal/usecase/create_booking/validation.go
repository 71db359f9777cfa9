package create_booking

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/chefdechef/booking-service/internal/domain"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-.]{4,}[0-9]$`)

// normalizeRequest обрезает пробелы; пустые заметки становятся nil
func normalizeRequest(req *Request) *Request {
	out := *req
	out.Name = strings.TrimSpace(req.Name)
	out.Email = strings.TrimSpace(req.Email)
	out.Phone = strings.TrimSpace(req.Phone)
	out.EventType = strings.TrimSpace(req.EventType)
	out.Location = strings.TrimSpace(req.Location)
	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if notes == "" {
			out.Notes = nil
		} else {
			out.Notes = &notes
		}
	}
	return &out
}

// validateRequest валидирует входные данные до любых обращений к БД
func validateRequest(req *Request) error {
	if err := required("name", req.Name, domain.MaxNameLength); err != nil {
		return err
	}

	if err := required("email", req.Email, domain.MaxEmailLength); err != nil {
		return err
	}
	if !isEmail(req.Email) {
		return fmt.Errorf("%w: email has invalid format", ErrInvalidInput)
	}

	if err := required("phone", req.Phone, domain.MaxPhoneLength); err != nil {
		return err
	}
	if !phonePattern.MatchString(req.Phone) {
		return fmt.Errorf("%w: phone has invalid format", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.EventDate.IsZero() {
		return fmt.Errorf("%w: eventDate is required", ErrInvalidInput)
	}

	if err := required("eventType", req.EventType, domain.MaxEventTypeLength); err != nil {
		return err
	}
	if err := required("location", req.Location, domain.MaxLocationLength); err != nil {
		return err
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

func required(field, value string, maxLen int) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, maxLen)
	}
	return nil
}

// isEmail принимает только голый адрес, без display name
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
