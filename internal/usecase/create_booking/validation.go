package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// validateRequest checks the request shape and resolves the service type.
func validateRequest(req *Request, now time.Time) (domain.ServiceType, error) {
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return "", fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return "", fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceType) == "" {
		return "", fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}
	serviceType, err := domain.ParseServiceType(req.ServiceType)
	if err != nil {
		return "", ErrServiceNotFound
	}

	if req.ScheduledAt.IsZero() {
		return "", fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}
	if !req.ScheduledAt.After(now) {
		return "", ErrSlotInPast
	}

	if req.DocumentCount < 1 {
		return "", fmt.Errorf("%w: documentCount must be at least 1", ErrInvalidInput)
	}
	if req.SignerCount < 1 {
		return "", fmt.Errorf("%w: signerCount must be at least 1", ErrInvalidInput)
	}
	if req.QuotedTotal < 0 {
		return "", fmt.Errorf("%w: quotedTotal must not be negative", ErrInvalidInput)
	}
	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return "", fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	return serviceType, nil
}

// validateReservationMatches checks the hold covers this exact booking.
func validateReservationMatches(res *domain.SlotReservation, serviceType domain.ServiceType, scheduledAt time.Time) error {
	if res.ServiceType != serviceType {
		return fmt.Errorf("%w: reservation is for service %s", ErrReservationMismatch, res.ServiceType)
	}
	if !res.SlotDateTime.Equal(scheduledAt.UTC().Truncate(time.Minute)) {
		return fmt.Errorf("%w: reservation is for slot %s",
			ErrReservationMismatch, res.SlotDateTime.Format(time.RFC3339))
	}
	return nil
}
