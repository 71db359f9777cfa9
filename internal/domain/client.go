package domain

import (
	"fmt"
	"strings"
	"time"
)

// ClientSource источник последней записи клиента
type ClientSource string

const (
	SourceBooking ClientSource = "booking"
	SourceContact ClientSource = "contact"
	SourceAdmin   ClientSource = "admin"
)

// Client агрегат клиента по всем его заявкам и сообщениям
type Client struct {
	ID          string // uuid в полном режиме, email в нижнем регистре в производном
	Name        string
	Emails      []string
	Phones      []string
	Notes       string // журнал заметок клиента, только дописывается
	AdminNotes  string // заметки администратора, автоматикой не меняются
	LastMessage string // последнее сообщение из формы обратной связи
	Source      ClientSource
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Submission данные клиента из публичной формы
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Note    string
	Message string
	Source  ClientSource
	At      time.Time
}

// NormalizeEmail ключ клиента: email без пробелов в нижнем регистре
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// PrimaryEmail returns the first known email
func (c *Client) PrimaryEmail() string {
	if len(c.Emails) == 0 {
		return ""
	}
	return c.Emails[0]
}

// PrimaryPhone returns the first known phone
func (c *Client) PrimaryPhone() string {
	if len(c.Phones) == 0 {
		return ""
	}
	return c.Phones[0]
}

// HasEmail сравнивает email без учета регистра
func (c *Client) HasEmail(email string) bool {
	key := NormalizeEmail(email)
	for _, e := range c.Emails {
		if NormalizeEmail(e) == key {
			return true
		}
	}
	return false
}

// HasPhone сравнивает телефоны без пробелов
func (c *Client) HasPhone(phone string) bool {
	key := normalizePhone(phone)
	for _, p := range c.Phones {
		if normalizePhone(p) == key {
			return true
		}
	}
	return false
}

// ApplySubmission сливает данные новой записи в клиента:
// имя перезаписывается, email и телефон добавляются при отсутствии,
// заметка дописывается в журнал с отметкой времени, AdminNotes не трогается.
// Возвращает true, если клиент изменился.
func (c *Client) ApplySubmission(s Submission) bool {
	changed := false

	if name := strings.TrimSpace(s.Name); name != "" && name != c.Name {
		c.Name = name
		changed = true
	}

	if email := NormalizeEmail(s.Email); email != "" && !c.HasEmail(email) {
		c.Emails = append(c.Emails, email)
		changed = true
	}

	if phone := strings.TrimSpace(s.Phone); phone != "" && !c.HasPhone(phone) {
		c.Phones = append(c.Phones, phone)
		changed = true
	}

	if note := strings.TrimSpace(s.Note); note != "" {
		c.Notes = AppendNote(c.Notes, note, s.At)
		changed = true
	}

	if msg := strings.TrimSpace(s.Message); msg != "" {
		c.LastMessage = msg
		changed = true
	}

	if s.Source != "" && s.Source != c.Source {
		c.Source = s.Source
		changed = true
	}

	return changed
}

// AppendNote дописывает запись "[YYYY-MM-DD HH:MM] text" в журнал
func AppendNote(log, note string, at time.Time) string {
	entry := fmt.Sprintf("[%s] %s", at.Format(NoteTimeFormat), note)
	if strings.TrimSpace(log) == "" {
		return entry
	}
	return log + "\n" + entry
}

func normalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}

// ClientsFilter фильтр списка клиентов
type ClientsFilter struct {
	Query    string
	SortBy   string // name | email | created_at | updated_at
	SortDesc bool
}

// ClientSortFields поля сортировки клиентов
var ClientSortFields = []string{"name", "email", "created_at", "updated_at"}

// ClientStoreMode режим хранилища клиентов
type ClientStoreMode string

const (
	// ClientStoreFull отдельная таблица clients, полный CRUD
	ClientStoreFull ClientStoreMode = "full"
	// ClientStoreDerived агрегация из bookings и contact_messages, только чтение
	ClientStoreDerived ClientStoreMode = "derived"
)
