package list_bookings

import (
	"net/url"

	"github.com/chefdechef/booking-service/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(q url.Values) *models.ListBookingsRequest {
	return &models.ListBookingsRequest{
		Query:  q.Get("q"),
		Date:   q.Get("date"),
		Status: q.Get("status"),
		Sort:   q.Get("sort"),
		Order:  q.Get("order"),
	}
}
