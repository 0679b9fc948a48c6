package get_booking

import (
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// Booking is the read model returned by the use case.
type Booking struct {
	ID              int64
	CustomerEmail   string
	CustomerName    string
	ServiceType     domain.ServiceType
	ScheduledAt     time.Time
	DurationMinutes int
	Address         *string
	DocumentCount   int
	SignerCount     int
	Status          string

	ServiceName string
	QuotedTotal float64
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toBooking(b *domain.Booking) *Booking {
	return &Booking{
		ID:                 b.ID,
		CustomerEmail:      b.CustomerEmail,
		CustomerName:       b.CustomerName,
		ServiceType:        b.ServiceType,
		ScheduledAt:        b.ScheduledAt,
		DurationMinutes:    b.DurationMinutes,
		Address:            b.Address,
		DocumentCount:      b.DocumentCount,
		SignerCount:        b.SignerCount,
		Status:             string(b.Status),
		ServiceName:        b.ServiceName,
		QuotedTotal:        b.QuotedTotal,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
