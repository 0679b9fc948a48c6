package get_booking

import (
	"context"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// BookingRepository is the persistence port for bookings.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerEmail(ctx context.Context, email string) ([]domain.Booking, error)
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
