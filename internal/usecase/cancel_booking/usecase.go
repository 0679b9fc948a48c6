package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "github.com/quickstampnotary/QSN-PricingService/internal/infra/storage/booking"
)

// UseCase cancels a booking on the customer's behalf, enforcing the
// per-service cancellation notice window.
type UseCase struct {
	bookingRepo  BookingRepository
	rules        CancellationValidator
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the cancel-booking use case.
func NewUseCase(
	bookings BookingRepository,
	rules CancellationValidator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookings,
		rules:        rules,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider overrides the clock.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute cancels the booking. The read and the cancel run in one
// transaction so a concurrent status change cannot slip between them.
func (uc *UseCase) Execute(ctx context.Context, id int64, reason string) error {
	if id <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(reason) == "" {
		reason = "cancelled by customer"
	}

	now := uc.timeProvider.Now()

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", id)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d has terminal status %s", id, booking.Status)
			return ErrAlreadyTerminal
		}

		window, err := uc.rules.ValidateCancellation(booking.ServiceType, booking.ScheduledAt, now)
		if err != nil {
			uc.logger.Error("CancelBooking: failed to evaluate cancellation window for id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to evaluate cancellation window: %v", ErrInternal, err)
		}
		if !window.IsValid {
			uc.logger.Warn("CancelBooking: booking id=%d inside notice window: %v", id, window.Violations)
			return fmt.Errorf("%w: %s", ErrTooLateToCancel, strings.Join(window.Violations, "; "))
		}

		if err := uc.bookingRepo.Cancel(txCtx, id, reason, now); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrAlreadyTerminal
			}
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("CancelBooking: cancelled booking id=%d", id)
	return nil
}
