package reserve_slot

import (
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// Request carries the slot hold parameters.
type Request struct {
	ServiceType     string
	SlotDateTime    time.Time
	CustomerEmail   string
	DurationMinutes *int
}

// Response describes the created hold.
type Response struct {
	ID              string
	ServiceType     domain.ServiceType
	SlotDateTime    time.Time
	CustomerEmail   string
	DurationMinutes int
	Status          string
	ExpiresAt       time.Time
	CreatedAt       time.Time
}
