package get_booking

import (
	"context"

	"github.com/venuebook/venue-scheduler/internal/service/bookings/models"
)

type BookingsService interface {
	GetByID(ctx context.Context, tenantID, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
