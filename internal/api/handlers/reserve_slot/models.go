package reserve_slot

import (
	"time"

	reserveSlot "github.com/quickstampnotary/QSN-PricingService/internal/usecase/reserve_slot"
)

// ReserveSlotRequest HTTP request model
type ReserveSlotRequest struct {
	ServiceType     string `json:"serviceType"`
	SlotDateTime    string `json:"slotDateTime"` // RFC3339
	CustomerEmail   string `json:"customerEmail"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	Reservation ReservationBody `json:"reservation"`
}

type ReservationBody struct {
	ID              string `json:"id"`
	ServiceType     string `json:"serviceType"`
	SlotDateTime    string `json:"slotDateTime"`
	CustomerEmail   string `json:"customerEmail"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	ExpiresAt       string `json:"expiresAt"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *ReserveSlotRequest) ToUseCaseRequest() (*reserveSlot.Request, error) {
	slot, err := time.Parse(time.RFC3339, r.SlotDateTime)
	if err != nil {
		return nil, err
	}

	return &reserveSlot.Request{
		ServiceType:     r.ServiceType,
		SlotDateTime:    slot,
		CustomerEmail:   r.CustomerEmail,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *reserveSlot.Response) *ReservationResponse {
	return &ReservationResponse{
		Reservation: ReservationBody{
			ID:              resp.ID,
			ServiceType:     string(resp.ServiceType),
			SlotDateTime:    resp.SlotDateTime.Format(time.RFC3339),
			CustomerEmail:   resp.CustomerEmail,
			DurationMinutes: resp.DurationMinutes,
			Status:          resp.Status,
			ExpiresAt:       resp.ExpiresAt.Format(time.RFC3339),
			CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
