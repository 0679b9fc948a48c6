package get_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "github.com/quickstampnotary/QSN-PricingService/internal/infra/storage/booking"
)

// UseCase reads bookings by ID or customer email.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase creates the get-booking use case.
func NewUseCase(bookings BookingRepository, logger Logger) *UseCase {
	return &UseCase{bookingRepo: bookings, logger: logger}
}

// GetByID returns a single booking.
func (uc *UseCase) GetByID(ctx context.Context, id int64) (*Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("GetBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("GetBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	return toBooking(booking), nil
}

// GetByCustomerEmail returns the customer's booking history, newest first.
func (uc *UseCase) GetByCustomerEmail(ctx context.Context, email string) ([]Booking, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	bookings, err := uc.bookingRepo.GetByCustomerEmail(ctx, email)
	if err != nil {
		uc.logger.Error("GetBooking: failed to list bookings for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	result := make([]Booking, 0, len(bookings))
	for i := range bookings {
		result = append(result, *toBooking(&bookings[i]))
	}
	return result, nil
}
