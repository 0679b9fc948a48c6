package create_booking

import (
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// Request carries the booking finalization parameters. ReservationID is
// optional; when present the hold is consumed atomically with the insert.
type Request struct {
	CustomerEmail   string
	CustomerName    string
	ServiceType     string
	ScheduledAt     time.Time
	DurationMinutes *int
	Address         *string
	DocumentCount   int
	SignerCount     int
	QuotedTotal     float64
	Notes           *string
	ReservationID   *string
}

// Response is the created booking.
type Response struct {
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

	ReservationID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
