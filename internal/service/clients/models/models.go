package models

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
)

var (
	// ErrNameRequired возвращается при пустом имени
	ErrNameRequired = errors.New("name is required")

	// ErrContactRequired возвращается, когда нет ни email, ни телефона
	ErrContactRequired = errors.New("at least one email or phone is required")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidSort возвращается при неизвестном поле сортировки
	ErrInvalidSort = errors.New("invalid sort field")

	// ErrInvalidOrder возвращается при неизвестном направлении сортировки
	ErrInvalidOrder = errors.New("invalid sort order, expected asc or desc")
)

// Request модели

// ListClientsRequest параметры списка клиентов
type ListClientsRequest struct {
	Query string
	Sort  string
	Order string
}

// ToDomainFilter конвертирует request в domain фильтр.
// По умолчанию новые клиенты первыми.
func (r *ListClientsRequest) ToDomainFilter() (domain.ClientsFilter, error) {
	filter := domain.ClientsFilter{
		Query:    strings.TrimSpace(r.Query),
		SortBy:   "created_at",
		SortDesc: true,
	}

	if r.Sort != "" {
		if !isSortField(r.Sort) {
			return filter, fmt.Errorf("%w: %q", ErrInvalidSort, r.Sort)
		}
		filter.SortBy = r.Sort
		filter.SortDesc = false
	}

	switch strings.ToLower(r.Order) {
	case "":
	case "asc":
		filter.SortDesc = false
	case "desc":
		filter.SortDesc = true
	default:
		return filter, fmt.Errorf("%w: %q", ErrInvalidOrder, r.Order)
	}

	return filter, nil
}

// ClientRequest тело создания и изменения клиента администратором
type ClientRequest struct {
	Name       string   `json:"name"`
	Emails     []string `json:"emails"`
	Phones     []string `json:"phones"`
	AdminNotes string   `json:"adminNotes"`
}

// Normalize валидирует запрос и приводит email к нижнему регистру без дублей
func (r *ClientRequest) Normalize() (*ClientRequest, error) {
	out := &ClientRequest{
		Name:       strings.TrimSpace(r.Name),
		AdminNotes: strings.TrimSpace(r.AdminNotes),
		Emails:     make([]string, 0, len(r.Emails)),
		Phones:     make([]string, 0, len(r.Phones)),
	}
	if out.Name == "" {
		return nil, ErrNameRequired
	}

	seen := make(map[string]struct{})
	for _, e := range r.Emails {
		email := domain.NormalizeEmail(e)
		if email == "" {
			continue
		}
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, e)
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out.Emails = append(out.Emails, email)
	}

	for _, p := range r.Phones {
		if phone := strings.TrimSpace(p); phone != "" {
			out.Phones = append(out.Phones, phone)
		}
	}

	if len(out.Emails) == 0 && len(out.Phones) == 0 {
		return nil, ErrContactRequired
	}
	return out, nil
}

// Response модели

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Emails      []string   `json:"emails"`
	Phones      []string   `json:"phones"`
	Notes       string     `json:"notes"`
	AdminNotes  string     `json:"adminNotes"`
	LastMessage string     `json:"lastMessage,omitempty"`
	Source      string     `json:"source"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Mode    string           `json:"mode"`
	Clients []ClientResponse `json:"clients"`
}

// ModeResponse режим хранилища клиентов
type ModeResponse struct {
	Mode     string `json:"mode"`
	ReadOnly bool   `json:"readOnly"`
}

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	resp := &ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.PrimaryEmail(),
		Phone:       c.PrimaryPhone(),
		Emails:      nonNil(c.Emails),
		Phones:      nonNil(c.Phones),
		Notes:       c.Notes,
		AdminNotes:  c.AdminNotes,
		LastMessage: c.LastMessage,
		Source:      string(c.Source),
	}
	if !c.CreatedAt.IsZero() {
		t := c.CreatedAt
		resp.CreatedAt = &t
	}
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(mode domain.ClientStoreMode, list []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Mode:    string(mode),
		Clients: make([]ClientResponse, 0, len(list)),
	}
	for _, c := range list {
		if cr := FromDomainClient(c); cr != nil {
			resp.Clients = append(resp.Clients, *cr)
		}
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func isSortField(field string) bool {
	for _, f := range domain.ClientSortFields {
		if f == field {
			return true
		}
	}
	return false
}
