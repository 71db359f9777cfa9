package clients

import (
	"sort"
	"strings"

	"github.com/chefdechef/booking-service/internal/domain"
)

// DeriveClients строит список клиентов из заявок и сообщений.
// Записи обрабатываются от старых к новым с ключом по email в нижнем регистре,
// поэтому более поздние данные перекрывают имя. Записи без имени, email или
// телефона пропускаются.
func DeriveClients(records []domain.ClientRecord) []*domain.Client {
	ordered := make([]domain.ClientRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	byEmail := make(map[string]*domain.Client)
	order := make([]string, 0)

	for _, r := range ordered {
		key := domain.NormalizeEmail(r.Email)
		if key == "" || strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Phone) == "" {
			continue
		}

		c, ok := byEmail[key]
		if !ok {
			c = &domain.Client{ID: key, CreatedAt: r.CreatedAt}
			byEmail[key] = c
			order = append(order, key)
		}

		sub := domain.Submission{
			Name:   r.Name,
			Email:  r.Email,
			Phone:  r.Phone,
			Source: r.Source,
			At:     r.CreatedAt,
		}
		if r.Source == domain.SourceContact {
			sub.Message = r.Message
		}
		c.ApplySubmission(sub)
		c.UpdatedAt = r.CreatedAt
	}

	out := make([]*domain.Client, 0, len(order))
	for _, key := range order {
		out = append(out, byEmail[key])
	}
	return out
}

// filterClients поиск без учета регистра по имени и email, по телефону подстрокой
func filterClients(list []*domain.Client, query string) []*domain.Client {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	out := make([]*domain.Client, 0, len(list))
	for _, c := range list {
		if matches(c, q) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c *domain.Client, q string) bool {
	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	for _, e := range c.Emails {
		if strings.Contains(strings.ToLower(e), q) {
			return true
		}
	}
	for _, p := range c.Phones {
		if strings.Contains(p, q) {
			return true
		}
	}
	return false
}

// sortClients сортирует на месте; пустые значения в конце при любом направлении
func sortClients(list []*domain.Client, field string, desc bool) {
	key := func(c *domain.Client) (string, bool) {
		switch field {
		case "name":
			return strings.ToLower(c.Name), c.Name == ""
		case "email":
			return c.PrimaryEmail(), c.PrimaryEmail() == ""
		case "updated_at":
			return c.UpdatedAt.UTC().Format(timeKeyLayout), c.UpdatedAt.IsZero()
		default:
			return c.CreatedAt.UTC().Format(timeKeyLayout), c.CreatedAt.IsZero()
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, aNull := key(list[i])
		b, bNull := key(list[j])
		switch {
		case aNull:
			return false
		case bNull:
			return true
		case desc:
			return a > b
		default:
			return a < b
		}
	})
}

const timeKeyLayout = "2006-01-02T15:04:05.000000000"
