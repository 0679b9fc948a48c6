package rules

import (
	"fmt"
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// Service evaluates the fixed table of business rules: service-area
// membership, per-service document caps and cancellation windows.
// Pure over its inputs plus the static catalog; distance resolution is
// delegated to the caller.
type Service struct {
	logger Logger
}

// NewService creates a business-rules validator.
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// Validate evaluates the rules for a pricing request. dist may be nil
// for remote services or when no address was supplied; the service-area
// rule is then skipped.
//
// Violations do not hard-fail requests except the service-area ceiling:
// the API layer degrades everything else to warn-and-allow.
func (s *Service) Validate(req *domain.PricingRequest, dist *domain.DistanceResult) (*domain.BusinessRuleResult, error) {
	cfg, ok := domain.GetServiceConfig(req.ServiceType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, req.ServiceType)
	}

	result := &domain.BusinessRuleResult{
		IsValid:             true,
		Violations:          []string{},
		Recommendations:     []string{},
		DiscountsApplied:    []string{},
		ServiceAreaZone:     domain.ZoneRemote,
		IsWithinServiceArea: true,
	}

	s.applyServiceAreaRule(req, dist, cfg, result)
	s.applyDocumentLimitRule(req, cfg, result)
	s.applySignerLimitRule(req, cfg, result)
	s.noteEligibleDiscounts(req, result)

	result.IsValid = len(result.Violations) == 0
	return result, nil
}

// applyServiceAreaRule checks the resolved distance against the
// service's own radius and the global ceiling. In-person services
// without a resolved distance pick up a recommendation, not a violation:
// the customer may not have entered an address yet.
func (s *Service) applyServiceAreaRule(req *domain.PricingRequest, dist *domain.DistanceResult, cfg domain.ServiceConfig, result *domain.BusinessRuleResult) {
	if req.ServiceType.IsRemote() {
		result.ServiceAreaZone = domain.ZoneRemote
		return
	}

	if dist == nil {
		result.Recommendations = append(result.Recommendations,
			"Add your address so we can confirm you are inside our service area")
		return
	}

	result.ServiceAreaZone = dist.Zone()
	result.IsWithinServiceArea = dist.IsWithinServiceArea

	if !dist.IsWithinServiceArea {
		result.Violations = append(result.Violations,
			fmt.Sprintf("Your location is %.1f miles away, beyond our %.0f-mile service area",
				dist.DistanceMiles, domain.MaxServiceRadiusMiles))
		return
	}

	if cfg.MaxRadiusMiles > 0 && dist.DistanceMiles > cfg.MaxRadiusMiles {
		result.Violations = append(result.Violations,
			fmt.Sprintf("%s covers locations up to %.0f miles away; your location is %.1f miles out",
				cfg.Name, cfg.MaxRadiusMiles, dist.DistanceMiles))
		result.Recommendations = append(result.Recommendations,
			"A service with a wider travel radius would cover your location")
	}
}

// applyDocumentLimitRule flags document overage. Overage is monetized,
// not rejected: the extra-document fee is surfaced as a recommendation.
func (s *Service) applyDocumentLimitRule(req *domain.PricingRequest, cfg domain.ServiceConfig, result *domain.BusinessRuleResult) {
	extra := req.DocumentCount - cfg.MaxDocuments
	if extra <= 0 {
		return
	}

	result.DocumentLimitsExceeded = true
	result.Recommendations = append(result.Recommendations,
		fmt.Sprintf("%s includes %d documents; your %d extra documents add $%.2f each ($%.2f total)",
			cfg.Name, cfg.MaxDocuments, extra, cfg.PerDocumentFee, float64(extra)*cfg.PerDocumentFee))
}

func (s *Service) applySignerLimitRule(req *domain.PricingRequest, cfg domain.ServiceConfig, result *domain.BusinessRuleResult) {
	if req.SignerCount <= cfg.MaxSigners {
		return
	}
	result.Recommendations = append(result.Recommendations,
		fmt.Sprintf("%s is designed for up to %d signers; contact us for larger signings",
			cfg.Name, cfg.MaxSigners))
}

// noteEligibleDiscounts records which discount programs the request
// qualifies for, consumed by CRM tagging downstream.
func (s *Service) noteEligibleDiscounts(req *domain.PricingRequest, result *domain.BusinessRuleResult) {
	if req.CustomerType == domain.CustomerNew {
		result.DiscountsApplied = append(result.DiscountsApplied, "first-time")
	}
	if req.CustomerType == domain.CustomerLoyalty {
		result.DiscountsApplied = append(result.DiscountsApplied, "loyalty")
	}
	if req.ReferralCode != "" {
		result.DiscountsApplied = append(result.DiscountsApplied, "referral")
	}
	if req.PromoCode != "" {
		result.DiscountsApplied = append(result.DiscountsApplied, "promo")
	}
}

// ValidateCancellation evaluates the cancellation-notice window for a
// scheduled booking. Like the other rules it reports strings rather than
// failing: the booking lifecycle decides what to do with them.
func (s *Service) ValidateCancellation(serviceType domain.ServiceType, scheduledAt, now time.Time) (*domain.BusinessRuleResult, error) {
	cfg, ok := domain.GetServiceConfig(serviceType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, serviceType)
	}

	result := &domain.BusinessRuleResult{
		IsValid:         true,
		Violations:      []string{},
		Recommendations: []string{},
	}

	notice := time.Duration(cfg.MinCancelNoticeHrs) * time.Hour
	if scheduledAt.Sub(now) < notice {
		result.IsValid = false
		result.Violations = append(result.Violations,
			fmt.Sprintf("%s requires at least %d hours notice to cancel or reschedule",
				cfg.Name, cfg.MinCancelNoticeHrs))
		result.Recommendations = append(result.Recommendations,
			"Late cancellations may forfeit the travel fee; contact us to discuss options")
	}

	return result, nil
}
