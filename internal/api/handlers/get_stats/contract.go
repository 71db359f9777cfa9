package get_stats

import (
	"context"

	"github.com/chefdechef/booking-service/internal/service/stats/models"
)

type StatsService interface {
	Get(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
