package reserve_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
	reservationRepo "github.com/quickstampnotary/QSN-PricingService/internal/infra/storage/reservation"
)

// UseCase places a short-lived soft hold on an appointment slot.
type UseCase struct {
	reservationRepo ReservationRepository
	holdMinutes     int
	timeProvider    TimeProvider
	logger          Logger
	metrics         Metrics
}

// NewUseCase creates the reserve-slot use case.
func NewUseCase(repo ReservationRepository, holdMinutes int, logger Logger, m Metrics) *UseCase {
	if holdMinutes <= 0 {
		holdMinutes = domain.DefaultHoldMinutes
	}
	return &UseCase{
		reservationRepo: repo,
		holdMinutes:     holdMinutes,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		metrics:         m,
	}
}

// WithTimeProvider overrides the clock.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute creates the hold. A concurrent hold on the same slot surfaces
// as ErrSlotConflict; uniqueness is enforced by the storage layer.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	serviceType, err := validateRequest(req, now)
	if err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		return nil, err
	}

	duration := domain.DefaultAppointmentMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	reservation := &domain.SlotReservation{
		ID:              uuid.NewString(),
		SlotDateTime:    req.SlotDateTime.UTC().Truncate(time.Minute),
		ServiceType:     serviceType,
		CustomerEmail:   req.CustomerEmail,
		DurationMinutes: duration,
		Status:          domain.ReservationReserved,
		ExpiresAt:       now.Add(time.Duration(uc.holdMinutes) * time.Minute),
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotConflict) {
			uc.metrics.IncSlotConflict()
			uc.logger.Warn("ReserveSlot: slot %s already held for service=%s",
				reservation.SlotDateTime.Format(time.RFC3339), serviceType)
			return nil, ErrSlotConflict
		}
		uc.logger.Error("ReserveSlot: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("ReserveSlot: created reservation id=%s slot=%s service=%s expires=%s",
		created.ID, created.SlotDateTime.Format(time.RFC3339), serviceType, created.ExpiresAt.Format(time.RFC3339))

	return &Response{
		ID:              created.ID,
		ServiceType:     created.ServiceType,
		SlotDateTime:    created.SlotDateTime,
		CustomerEmail:   created.CustomerEmail,
		DurationMinutes: created.DurationMinutes,
		Status:          string(created.Status),
		ExpiresAt:       created.ExpiresAt,
		CreatedAt:       created.CreatedAt,
	}, nil
}
