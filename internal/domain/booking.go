package domain

import "time"

// BookingStatus represents the status of a finalized booking.
type BookingStatus string

const (
	BookingConfirmed          BookingStatus = "confirmed"
	BookingInProgress         BookingStatus = "in_progress"
	BookingCompleted          BookingStatus = "completed"
	BookingCancelledByUser    BookingStatus = "cancelled_by_user"
	BookingCancelledByCompany BookingStatus = "cancelled_by_company"
	BookingNoShow             BookingStatus = "no_show"
)

// Booking is a finalized appointment referencing a previously quoted total.
type Booking struct {
	ID              int64
	CustomerEmail   string
	CustomerName    string
	ServiceType     ServiceType
	ScheduledAt     time.Time
	DurationMinutes int
	Address         *string
	DocumentCount   int
	SignerCount     int
	Status          BookingStatus

	// Denormalized quote data for history
	ServiceName string
	QuotedTotal float64
	Notes       *string

	ReservationID *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot.
func (b *Booking) IsActive() bool {
	return b.Status != BookingCancelledByUser &&
		b.Status != BookingCancelledByCompany &&
		b.Status != BookingNoShow
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingConfirmed || b.Status == BookingInProgress
}
