package pricing

import (
	"fmt"
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// Service computes transparent price breakdowns: base price, travel fee,
// extra-document fee, time-based surcharges and stacked discounts.
type Service struct {
	location           *time.Location
	sameDayWindowHours int
	timeProvider       TimeProvider
	logger             Logger
}

// Option customizes a pricing Service.
type Option func(*Service)

// WithTimeProvider overrides the clock, used by tests and the facade's
// idempotent recalculation path.
func WithTimeProvider(tp TimeProvider) Option {
	return func(s *Service) { s.timeProvider = tp }
}

// NewService creates a pricing calculator evaluating time windows in the
// given business-local location.
func NewService(location *time.Location, sameDayWindowHours int, logger Logger, opts ...Option) *Service {
	s := &Service{
		location:           location,
		sameDayWindowHours: sameDayWindowHours,
		timeProvider:       RealTimeProvider{},
		logger:             logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calculate produces the full breakdown for a request. dist may be nil
// for remote services or when no address was given; the travel component
// is then omitted.
func (s *Service) Calculate(req *domain.PricingRequest, dist *domain.DistanceResult) (*domain.PricingBreakdown, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	cfg, ok := domain.GetServiceConfig(req.ServiceType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, req.ServiceType)
	}

	breakdown := &domain.PricingBreakdown{
		ServiceType: req.ServiceType,
		BasePrice:   cfg.BasePrice,
		Components: []domain.PriceComponent{{
			Code:        domain.ComponentServiceBase,
			Label:       cfg.Name,
			Description: cfg.Description,
			Amount:      cfg.BasePrice,
		}},
	}

	s.addTravelFee(req, dist, cfg, breakdown)
	s.addExtraDocumentFee(req, cfg, breakdown)
	s.addTimeSurcharges(req, breakdown)
	s.addDiscounts(req, breakdown)

	breakdown.Finalize()

	s.logger.Info("Calculate: service=%s total=%.2f components=%d",
		req.ServiceType, breakdown.TotalPrice, len(breakdown.Components))
	return breakdown, nil
}

func validateRequest(req *domain.PricingRequest) error {
	if req.DocumentCount < 1 {
		return fmt.Errorf("%w: documentCount must be at least 1", ErrInvalidInput)
	}
	if req.SignerCount < 1 {
		return fmt.Errorf("%w: signerCount must be at least 1", ErrInvalidInput)
	}
	return nil
}

// addTravelFee applies max(0, miles - freeRadius) * feePerMile. Remote
// services and requests without a resolved distance carry no travel fee.
func (s *Service) addTravelFee(req *domain.PricingRequest, dist *domain.DistanceResult, cfg domain.ServiceConfig, b *domain.PricingBreakdown) {
	if req.ServiceType.IsRemote() || dist == nil {
		return
	}

	billableMiles := dist.DistanceMiles - cfg.IncludedRadiusMiles
	if billableMiles <= 0 {
		return
	}

	fee := billableMiles * cfg.FeePerMile
	b.Components = append(b.Components, domain.PriceComponent{
		Code:        domain.ComponentTravelFee,
		Label:       "Travel fee",
		Description: fmt.Sprintf("Travel beyond the %.0f miles included with %s", cfg.IncludedRadiusMiles, cfg.Name),
		Amount:      fee,
		Calculation: fmt.Sprintf("(%.1f mi - %.0f mi included) x $%.2f/mi", dist.DistanceMiles, cfg.IncludedRadiusMiles, cfg.FeePerMile),
	})
}

func (s *Service) addExtraDocumentFee(req *domain.PricingRequest, cfg domain.ServiceConfig, b *domain.PricingBreakdown) {
	extra := req.DocumentCount - cfg.MaxDocuments
	if extra <= 0 {
		return
	}

	fee := float64(extra) * cfg.PerDocumentFee
	b.Components = append(b.Components, domain.PriceComponent{
		Code:        domain.ComponentExtraDocuments,
		Label:       "Additional documents",
		Description: fmt.Sprintf("%d documents beyond the %d included", extra, cfg.MaxDocuments),
		Amount:      fee,
		Calculation: fmt.Sprintf("%d x $%.2f", extra, cfg.PerDocumentFee),
	})
}

// addTimeSurcharges evaluates the time-window rules in business-local
// time. The weekend and same-day axes are independent of the
// evening/night axis and may stack; within the evening/night axis the
// windows are evaluated most-specific first so a night booking is never
// charged both.
func (s *Service) addTimeSurcharges(req *domain.PricingRequest, b *domain.PricingBreakdown) {
	if req.ScheduledDateTime == nil {
		return
	}

	scheduled := req.ScheduledDateTime.In(s.location)
	now := s.timeProvider.Now().In(s.location)

	if wd := scheduled.Weekday(); wd == time.Saturday || wd == time.Sunday {
		b.Components = append(b.Components, domain.PriceComponent{
			Code:        domain.ComponentWeekend,
			Label:       "Weekend appointment",
			Description: "Appointments on Saturday or Sunday",
			Amount:      domain.WeekendSurcharge,
		})
	}

	// Night supersedes evening: first matching window wins.
	hour := scheduled.Hour()
	switch {
	case hour >= domain.NightStartHour || hour < domain.NightEndHour:
		b.Components = append(b.Components, domain.PriceComponent{
			Code:        domain.ComponentNight,
			Label:       "Night appointment",
			Description: "Appointments between 9pm and 7am",
			Amount:      domain.NightSurcharge,
		})
	case hour >= domain.EveningStartHour && hour < domain.EveningEndHour:
		b.Components = append(b.Components, domain.PriceComponent{
			Code:        domain.ComponentEvening,
			Label:       "Evening appointment",
			Description: "Appointments between 6pm and 9pm",
			Amount:      domain.EveningSurcharge,
		})
	}

	window := time.Duration(s.sameDayWindowHours) * time.Hour
	if scheduled.After(now) && scheduled.Sub(now) <= window {
		b.Components = append(b.Components, domain.PriceComponent{
			Code:        domain.ComponentSameDay,
			Label:       "Same-day scheduling",
			Description: fmt.Sprintf("Appointments within %d hours of booking", s.sameDayWindowHours),
			Amount:      domain.SameDaySurcharge,
		})
	}
}
