package bookings

import (
	"sort"
	"strings"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
)

const sortTimeLayout = "2006-01-02T15:04:05.000000000"

// sortValue значение поля для сравнения; null всегда в конце списка
type sortValue struct {
	null    bool
	numeric bool
	num     float64
	str     string
}

func (v sortValue) compare(other sortValue) int {
	if v.numeric {
		switch {
		case v.num < other.num:
			return -1
		case v.num > other.num:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(v.str, other.str)
}

func text(s string) sortValue {
	return sortValue{str: strings.ToLower(s)}
}

func number(f *float64) sortValue {
	if f == nil {
		return sortValue{null: true}
	}
	return sortValue{numeric: true, num: *f}
}

func timestamp(t time.Time) sortValue {
	if t.IsZero() {
		return sortValue{null: true}
	}
	return sortValue{str: t.UTC().Format(sortTimeLayout)}
}

func sortKey(field string) func(b *domain.Booking) sortValue {
	switch field {
	case "created_at":
		return func(b *domain.Booking) sortValue { return timestamp(b.CreatedAt) }
	case "updated_at":
		return func(b *domain.Booking) sortValue { return timestamp(b.UpdatedAt) }
	case "name":
		return func(b *domain.Booking) sortValue { return text(b.Name) }
	case "email":
		return func(b *domain.Booking) sortValue { return text(b.Email) }
	case "phone":
		return func(b *domain.Booking) sortValue { return text(b.Phone) }
	case "event_type":
		return func(b *domain.Booking) sortValue { return text(b.EventType) }
	case "location":
		return func(b *domain.Booking) sortValue { return text(b.Location) }
	case "start_time":
		return func(b *domain.Booking) sortValue {
			if b.StartTime == nil {
				return sortValue{null: true}
			}
			return text(b.StartTime.String())
		}
	case "status":
		return func(b *domain.Booking) sortValue { return text(string(b.Status)) }
	case "price":
		return func(b *domain.Booking) sortValue { return number(b.Price) }
	case "prepayment":
		return func(b *domain.Booking) sortValue { return number(b.Prepayment) }
	case "payment_status":
		return func(b *domain.Booking) sortValue {
			if b.PaymentStatus == nil {
				return sortValue{null: true}
			}
			return text(string(*b.PaymentStatus))
		}
	case "currency":
		return func(b *domain.Booking) sortValue { return text(string(b.Currency)) }
	default:
		return func(b *domain.Booking) sortValue {
			if b.EventDate.IsZero() {
				return sortValue{null: true}
			}
			return sortValue{str: b.EventDate.String()}
		}
	}
}

// sortBookings сортирует на месте; пустые значения в конце при любом направлении
func sortBookings(list []*domain.Booking, field string, desc bool) {
	key := sortKey(field)
	sort.SliceStable(list, func(i, j int) bool {
		a, b := key(list[i]), key(list[j])
		switch {
		case a.null:
			return false
		case b.null:
			return true
		}
		if desc {
			return a.compare(b) > 0
		}
		return a.compare(b) < 0
	})
}
