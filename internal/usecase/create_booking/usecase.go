package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
	bookingRepo "github.com/quickstampnotary/QSN-PricingService/internal/infra/storage/booking"
	reservationRepo "github.com/quickstampnotary/QSN-PricingService/internal/infra/storage/reservation"
)

// UseCase finalizes a booking from a previously quoted total. When the
// request references a slot reservation, the hold is consumed in the
// same transaction as the booking insert.
type UseCase struct {
	bookingRepo     BookingRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the create-booking use case.
func NewUseCase(
	bookings BookingRepository,
	reservations ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookings,
		reservationRepo: reservations,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider overrides the clock.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute validates the request and persists the booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	serviceType, err := validateRequest(req, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	config, ok := domain.GetServiceConfig(serviceType)
	if !ok {
		return nil, ErrServiceNotFound
	}

	duration := domain.DefaultAppointmentMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	var result *domain.Booking

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if req.ReservationID != nil {
			reservation, err := uc.reservationRepo.GetByID(txCtx, *req.ReservationID)
			if err != nil {
				if errors.Is(err, reservationRepo.ErrReservationNotFound) {
					uc.logger.Warn("CreateBooking: reservation id=%s not found", *req.ReservationID)
					return ErrReservationGone
				}
				uc.logger.Error("CreateBooking: failed to load reservation id=%s: %v", *req.ReservationID, err)
				return fmt.Errorf("%w: failed to load reservation: %v", ErrInternal, err)
			}

			if err := validateReservationMatches(reservation, serviceType, req.ScheduledAt); err != nil {
				uc.logger.Warn("CreateBooking: %v", err)
				return err
			}

			if err := uc.reservationRepo.Consume(txCtx, *req.ReservationID, now); err != nil {
				if errors.Is(err, reservationRepo.ErrReservationNotFound) {
					uc.logger.Warn("CreateBooking: reservation id=%s expired or already consumed", *req.ReservationID)
					return ErrReservationGone
				}
				uc.logger.Error("CreateBooking: failed to consume reservation id=%s: %v", *req.ReservationID, err)
				return fmt.Errorf("%w: failed to consume reservation: %v", ErrInternal, err)
			}
		}

		booking := &domain.Booking{
			CustomerEmail:   req.CustomerEmail,
			CustomerName:    req.CustomerName,
			ServiceType:     serviceType,
			ScheduledAt:     req.ScheduledAt,
			DurationMinutes: duration,
			Address:         req.Address,
			DocumentCount:   req.DocumentCount,
			SignerCount:     req.SignerCount,
			Status:          domain.BookingConfirmed,
			ServiceName:     config.Name,
			QuotedTotal:     domain.Round2(req.QuotedTotal),
			Notes:           req.Notes,
			ReservationID:   req.ReservationID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s already booked for service=%s",
					req.ScheduledAt.Format(domain.DateFormat), serviceType)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d service=%s total=%.2f",
		result.ID, serviceType, result.QuotedTotal)

	return toResponse(result), nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		CustomerEmail:   b.CustomerEmail,
		CustomerName:    b.CustomerName,
		ServiceType:     b.ServiceType,
		ScheduledAt:     b.ScheduledAt,
		DurationMinutes: b.DurationMinutes,
		Address:         b.Address,
		DocumentCount:   b.DocumentCount,
		SignerCount:     b.SignerCount,
		Status:          string(b.Status),
		ServiceName:     b.ServiceName,
		QuotedTotal:     b.QuotedTotal,
		Notes:           b.Notes,
		ReservationID:   b.ReservationID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
