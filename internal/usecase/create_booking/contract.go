package create_booking

import (
	"context"
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// BookingRepository is the persistence port for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ReservationRepository is the persistence port for slot reservations.
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SlotReservation, error)
	Consume(ctx context.Context, id string, now time.Time) error
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the clock for testing.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
