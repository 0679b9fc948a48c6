package create_booking

import (
	"time"

	createBooking "github.com/quickstampnotary/QSN-PricingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerEmail   string  `json:"customerEmail"`
	CustomerName    string  `json:"customerName"`
	ServiceType     string  `json:"serviceType"`
	ScheduledAt     string  `json:"scheduledAt"` // RFC3339
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Address         *string `json:"address,omitempty"`
	DocumentCount   int     `json:"documentCount"`
	SignerCount     int     `json:"signerCount"`
	QuotedTotal     float64 `json:"quotedTotal"`
	Notes           *string `json:"notes,omitempty"`
	ReservationID   *string `json:"reservationId,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerName    string  `json:"customerName"`
	ServiceType     string  `json:"serviceType"`
	ScheduledAt     string  `json:"scheduledAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Address         *string `json:"address,omitempty"`
	DocumentCount   int     `json:"documentCount"`
	SignerCount     int     `json:"signerCount"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	QuotedTotal     float64 `json:"quotedTotal"`
	Notes           *string `json:"notes,omitempty"`
	ReservationID   *string `json:"reservationId,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	scheduledAt, err := time.Parse(time.RFC3339, r.ScheduledAt)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerEmail:   r.CustomerEmail,
		CustomerName:    r.CustomerName,
		ServiceType:     r.ServiceType,
		ScheduledAt:     scheduledAt,
		DurationMinutes: r.DurationMinutes,
		Address:         r.Address,
		DocumentCount:   r.DocumentCount,
		SignerCount:     r.SignerCount,
		QuotedTotal:     r.QuotedTotal,
		Notes:           r.Notes,
		ReservationID:   r.ReservationID,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerEmail:   resp.CustomerEmail,
		CustomerName:    resp.CustomerName,
		ServiceType:     string(resp.ServiceType),
		ScheduledAt:     resp.ScheduledAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Address:         resp.Address,
		DocumentCount:   resp.DocumentCount,
		SignerCount:     resp.SignerCount,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		QuotedTotal:     resp.QuotedTotal,
		Notes:           resp.Notes,
		ReservationID:   resp.ReservationID,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
