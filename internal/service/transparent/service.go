package transparent

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
	"github.com/quickstampnotary/QSN-PricingService/pkg/metrics"
)

// Service is the transparent-pricing facade: the single entry point the
// API route calls. It orchestrates distance resolution, business-rules
// validation and price calculation, then assembles the customer-facing
// narrative, alternative suggestions and CRM tags.
type Service struct {
	distance     DistanceResolver
	rules        RulesValidator
	calculator   Calculator
	cache        PricingCache
	history      CustomerHistory
	timeProvider TimeProvider
	logger       Logger
	metrics      Metrics
}

// Option customizes the facade.
type Option func(*Service)

// WithTimeProvider overrides the clock.
func WithTimeProvider(tp TimeProvider) Option {
	return func(s *Service) { s.timeProvider = tp }
}

// WithCustomerHistory enables completed-booking lookups for loyalty
// scaling when the request does not carry the count.
func WithCustomerHistory(h CustomerHistory) Option {
	return func(s *Service) { s.history = h }
}

// NewService creates the facade. cache may be nil when Redis is disabled.
func NewService(
	distance DistanceResolver,
	rules RulesValidator,
	calculator Calculator,
	cache PricingCache,
	logger Logger,
	m Metrics,
	opts ...Option,
) *Service {
	s := &Service{
		distance:     distance,
		rules:        rules,
		calculator:   calculator,
		cache:        cache,
		timeProvider: RealTimeProvider{},
		logger:       logger,
		metrics:      m,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateTransparentPricing produces the full quote envelope for a
// request. It never returns an error: any calculation failure is
// absorbed into the fixed fallback quote so the customer always sees a
// price, while the failure is logged and counted server-side.
func (s *Service) CalculateTransparentPricing(ctx context.Context, req *domain.PricingRequest) *Quote {
	if s.history != nil && req.CustomerEmail != "" && req.CompletedBookings == 0 {
		count, err := s.history.CountCompletedByEmail(ctx, req.CustomerEmail)
		if err != nil {
			s.logger.Warn("CalculateTransparentPricing: history lookup failed for email=%s: %v", req.CustomerEmail, err)
		} else {
			req.CompletedBookings = count
		}
	}

	var dist *domain.DistanceResult
	if req.Address != "" && !req.ServiceType.IsRemote() {
		resolved := s.distance.Resolve(ctx, req.Address)
		dist = &resolved
	}

	ruleResult, err := s.rules.Validate(req, dist)
	if err != nil {
		s.logger.Error("CalculateTransparentPricing: rules validation failed for service=%s: %v", req.ServiceType, err)
		return s.fallbackQuote(req, dist)
	}

	breakdown, cacheHit := s.calculateWithCache(ctx, req, dist)
	if breakdown == nil {
		return s.fallbackQuote(req, dist)
	}

	s.metrics.IncPricingCalculation(metrics.OutcomeOK)

	quote := &Quote{
		Breakdown:     breakdown,
		Transparency:  s.buildTransparency(breakdown, dist),
		BusinessRules: ruleResult,
		Alternatives:  s.suggestAlternatives(req, dist),
		GHLActions:    GHLActions{Tags: s.buildTags(req, breakdown, ruleResult, false)},
		Metadata: Metadata{
			CalculatedAt: s.timeProvider.Now(),
			CacheHit:     cacheHit,
			Version:      QuoteVersion,
		},
	}
	if s.cache != nil {
		quote.Metadata.RequestHash = s.cache.Key(req)
	}

	s.logger.Info("CalculateTransparentPricing: service=%s total=%.2f valid=%t cacheHit=%t",
		req.ServiceType, breakdown.TotalPrice, ruleResult.IsValid, cacheHit)
	return quote
}

// calculateWithCache runs the read-through cache around the calculator.
// Returns (nil, false) when the calculation failed.
func (s *Service) calculateWithCache(ctx context.Context, req *domain.PricingRequest, dist *domain.DistanceResult) (*domain.PricingBreakdown, bool) {
	var key string
	if s.cache != nil {
		key = s.cache.Key(req)
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, true
		}
	}

	breakdown, err := s.calculator.Calculate(req, dist)
	if err != nil {
		s.logger.Error("CalculateTransparentPricing: calculation failed for service=%s: %v", req.ServiceType, err)
		return nil, false
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, breakdown)
	}
	return breakdown, false
}

func (s *Service) buildTransparency(b *domain.PricingBreakdown, dist *domain.DistanceResult) Transparency {
	explanations := make([]string, 0, len(b.Components))
	for _, c := range b.Components {
		line := fmt.Sprintf("%s: $%.2f", c.Label, domain.Round2(c.Amount))
		if c.IsDiscount {
			line = fmt.Sprintf("%s: -$%.2f", c.Label, domain.Round2(c.Amount))
		}
		if c.Description != "" {
			line += " — " + c.Description
		}
		if c.Calculation != "" {
			line += fmt.Sprintf(" (%s)", c.Calculation)
		}
		explanations = append(explanations, line)
	}
	explanations = append(explanations, b.IneligibleReasons...)

	t := Transparency{
		Summary:      fmt.Sprintf("Your total is $%.2f; every fee is itemized below.", b.TotalPrice),
		Explanations: explanations,
	}
	if dist != nil {
		t.Warnings = dist.Warnings
	}
	return t
}

// suggestAlternatives returns up to three cheaper services whose
// constraints the request still satisfies, sorted by savings.
func (s *Service) suggestAlternatives(req *domain.PricingRequest, dist *domain.DistanceResult) []AlternativeService {
	current, ok := domain.GetServiceConfig(req.ServiceType)
	if !ok {
		return nil
	}

	sameDay := false
	if req.ScheduledDateTime != nil {
		sameDay = req.ScheduledDateTime.Sub(s.timeProvider.Now()) <= time.Duration(domain.DefaultSameDayWindowHours)*time.Hour
	}

	var alternatives []AlternativeService
	for _, cfg := range domain.ServiceCatalog() {
		if cfg.Type == current.Type || cfg.BasePrice >= current.BasePrice {
			continue
		}
		if req.DocumentCount > cfg.MaxDocuments || req.SignerCount > cfg.MaxSigners {
			continue
		}
		if sameDay && !cfg.SameDayAvailable {
			continue
		}
		if dist != nil && !cfg.Type.IsRemote() && dist.DistanceMiles > cfg.MaxRadiusMiles {
			continue
		}

		alternatives = append(alternatives, AlternativeService{
			ServiceType: cfg.Type,
			Name:        cfg.Name,
			BasePrice:   cfg.BasePrice,
			Savings:     domain.Round2(current.BasePrice - cfg.BasePrice),
			Tradeoffs:   tradeoffs(current, cfg),
		})
	}

	sort.Slice(alternatives, func(i, j int) bool {
		return alternatives[i].Savings > alternatives[j].Savings
	})
	if len(alternatives) > 3 {
		alternatives = alternatives[:3]
	}
	return alternatives
}

func tradeoffs(current, alt domain.ServiceConfig) []string {
	var t []string
	if alt.Type.IsRemote() {
		t = append(t, "No in-person meeting; all signers need a webcam and valid ID")
	}
	if alt.MaxDocuments < current.MaxDocuments {
		t = append(t, fmt.Sprintf("Includes %d documents instead of %d", alt.MaxDocuments, current.MaxDocuments))
	}
	if !alt.Type.IsRemote() && alt.IncludedRadiusMiles < current.IncludedRadiusMiles {
		t = append(t, fmt.Sprintf("Free travel drops from %.0f to %.0f miles", current.IncludedRadiusMiles, alt.IncludedRadiusMiles))
	}
	if current.SameDayAvailable && !alt.SameDayAvailable {
		t = append(t, "No same-day guarantee")
	}
	if len(t) == 0 {
		t = append(t, "Fewer premium features included")
	}
	return t
}

func (s *Service) buildTags(req *domain.PricingRequest, b *domain.PricingBreakdown, rules *domain.BusinessRuleResult, fallback bool) []string {
	tags := []string{fmt.Sprintf("service:%s", req.ServiceType)}

	if fallback {
		tags = append(tags, TagFallback)
		return tags
	}

	if rules != nil {
		tags = append(tags, fmt.Sprintf("zone:%s", rules.ServiceAreaZone))
		if rules.DocumentLimitsExceeded {
			tags = append(tags, "docs:overage")
		}
		if !rules.IsValid {
			tags = append(tags, "rules:violation")
		}
	}

	discountTags := map[string]string{
		domain.ComponentFirstTime: "discount:first-time",
		domain.ComponentLoyalty:   "discount:loyalty",
		domain.ComponentReferral:  "discount:referral",
		domain.ComponentPromoCode: "discount:promo",
	}
	for _, c := range b.Components {
		if tag, ok := discountTags[c.Code]; ok && c.IsDiscount {
			tags = append(tags, tag)
		}
	}
	return tags
}

// fallbackQuote is the fixed availability-over-correctness quote: a flat
// $75 estimate clearly marked as approximate. Deliberately loud on the
// server side so real defects cannot hide behind it.
func (s *Service) fallbackQuote(req *domain.PricingRequest, dist *domain.DistanceResult) *Quote {
	s.metrics.IncPricingCalculation(metrics.OutcomeFallback)
	s.metrics.IncPricingFallback()
	s.logger.Error("CalculateTransparentPricing: serving fallback quote for service=%q", req.ServiceType)

	breakdown := &domain.PricingBreakdown{
		ServiceType: req.ServiceType,
		BasePrice:   domain.FallbackBasePrice,
		TotalPrice:  domain.FallbackBasePrice,
		Components: []domain.PriceComponent{{
			Code:        domain.ComponentServiceBase,
			Label:       "Standard notary visit (approximate)",
			Description: "Flat estimate while exact pricing is unavailable",
			Amount:      domain.FallbackBasePrice,
		}},
	}

	return &Quote{
		Breakdown: breakdown,
		Transparency: Transparency{
			Summary: fmt.Sprintf("We could not calculate an exact quote, so this is our standard $%.0f estimate. "+
				"Your final price will be confirmed before booking.", domain.FallbackBasePrice),
			Explanations: []string{"Exact pricing is temporarily unavailable (calculation error)"},
		},
		BusinessRules: &domain.BusinessRuleResult{
			IsValid:             true,
			Violations:          []string{},
			Recommendations:     []string{"Contact us to confirm availability and final pricing"},
			IsWithinServiceArea: dist == nil || dist.IsWithinServiceArea,
		},
		GHLActions: GHLActions{Tags: s.buildTags(req, breakdown, nil, true)},
		Metadata: Metadata{
			CalculatedAt: s.timeProvider.Now(),
			Fallback:     true,
			Version:      QuoteVersion,
		},
	}
}
