package reserve_slot

import (
	"fmt"
	"strings"
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// validateRequest checks the request shape and resolves the service type.
func validateRequest(req *Request, now time.Time) (domain.ServiceType, error) {
	if strings.TrimSpace(req.ServiceType) == "" {
		return "", fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}

	serviceType, err := domain.ParseServiceType(req.ServiceType)
	if err != nil {
		return "", ErrServiceNotFound
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return "", fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}

	if req.SlotDateTime.IsZero() {
		return "", fmt.Errorf("%w: slotDateTime is required", ErrInvalidInput)
	}
	if !req.SlotDateTime.After(now) {
		return "", ErrSlotInPast
	}

	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return "", fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	return serviceType, nil
}
