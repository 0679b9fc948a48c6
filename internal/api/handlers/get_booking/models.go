package get_booking

import (
	"time"

	getBooking "github.com/quickstampnotary/QSN-PricingService/internal/usecase/get_booking"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	CustomerEmail      string  `json:"customerEmail"`
	CustomerName       string  `json:"customerName"`
	ServiceType        string  `json:"serviceType"`
	ScheduledAt        string  `json:"scheduledAt"`
	DurationMinutes    int     `json:"durationMinutes"`
	Address            *string `json:"address,omitempty"`
	DocumentCount      int     `json:"documentCount"`
	SignerCount        int     `json:"signerCount"`
	Status             string  `json:"status"`
	ServiceName        string  `json:"serviceName"`
	QuotedTotal        float64 `json:"quotedTotal"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// BookingListResponse wraps a customer's booking history.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromUseCaseBooking converts the use case read model into the HTTP response.
func FromUseCaseBooking(b *getBooking.Booking) *BookingResponse {
	var cancelledAt *string
	if b.CancelledAt != nil {
		s := b.CancelledAt.Format(time.RFC3339)
		cancelledAt = &s
	}

	return &BookingResponse{
		ID:                 b.ID,
		CustomerEmail:      b.CustomerEmail,
		CustomerName:       b.CustomerName,
		ServiceType:        string(b.ServiceType),
		ScheduledAt:        b.ScheduledAt.Format(time.RFC3339),
		DurationMinutes:    b.DurationMinutes,
		Address:            b.Address,
		DocumentCount:      b.DocumentCount,
		SignerCount:        b.SignerCount,
		Status:             b.Status,
		ServiceName:        b.ServiceName,
		QuotedTotal:        b.QuotedTotal,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}
