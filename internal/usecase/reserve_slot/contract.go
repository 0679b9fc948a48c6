package reserve_slot

import (
	"context"
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// ReservationRepository is the persistence port for slot reservations.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.SlotReservation) (*domain.SlotReservation, error)
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

// Metrics counts reservation outcomes.
type Metrics interface {
	IncSlotConflict()
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
