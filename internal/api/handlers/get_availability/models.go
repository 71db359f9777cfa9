package get_availability

import (
	getAvailability "github.com/chefdechef/booking-service/internal/usecase/get_availability"
	"github.com/chefdechef/booking-service/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Today       string   `json:"today"`
	Unavailable []string `json:"unavailableDates"`
	Policy      string   `json:"policy"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(fromStr, toStr string) (*getAvailability.Request, error) {
	req := &getAvailability.Request{}
	if fromStr != "" {
		d, err := types.ParseDate(fromStr)
		if err != nil {
			return nil, err
		}
		req.From = &d
	}
	if toStr != "" {
		d, err := types.ParseDate(toStr)
		if err != nil {
			return nil, err
		}
		req.To = &d
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	dates := make([]string, len(resp.Unavailable))
	for i, d := range resp.Unavailable {
		dates[i] = d.String()
	}
	return &AvailabilityResponse{
		Today:       resp.Today.String(),
		Unavailable: dates,
		Policy:      string(resp.Policy),
	}
}
