package transparent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
	"github.com/quickstampnotary/QSN-PricingService/internal/service/distance"
	"github.com/quickstampnotary/QSN-PricingService/internal/service/pricing"
	"github.com/quickstampnotary/QSN-PricingService/internal/service/rules"
	"github.com/quickstampnotary/QSN-PricingService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeMetrics struct {
	calculations map[string]int
	fallbacks    int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{calculations: map[string]int{}}
}

func (m *fakeMetrics) IncPricingCalculation(outcome string) { m.calculations[outcome]++ }
func (m *fakeMetrics) IncPricingFallback()                  { m.fallbacks++ }
func (m *fakeMetrics) IncMapsFallback()                     {}

type memoryCache struct {
	entries map[string]*domain.PricingBreakdown
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*domain.PricingBreakdown{}}
}

func (c *memoryCache) Key(req *domain.PricingRequest) string {
	schedule := ""
	if req.ScheduledDateTime != nil {
		schedule = req.ScheduledDateTime.UTC().Truncate(time.Minute).Format(time.RFC3339)
	}
	return string(req.ServiceType) + "|" + schedule + "|" + req.PromoCode
}

func (c *memoryCache) Get(_ context.Context, key string) (*domain.PricingBreakdown, bool) {
	b, ok := c.entries[key]
	return b, ok
}

func (c *memoryCache) Set(_ context.Context, key string, b *domain.PricingBreakdown) {
	c.entries[key] = b
}

// Tuesday 2026-03-10, 10:00.
var testNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func newFacade(t *testing.T, cache PricingCache) (*Service, *fakeMetrics) {
	t.Helper()
	m := newFakeMetrics()
	clock := fixedClock{now: testNow}

	resolver := distance.NewService(nil, noopLogger{}, m) // heuristic-only resolver
	validator := rules.NewService(noopLogger{})
	calculator := pricing.NewService(time.UTC, domain.DefaultSameDayWindowHours, noopLogger{},
		pricing.WithTimeProvider(clock))

	svc := NewService(resolver, validator, calculator, cache, noopLogger{}, m, WithTimeProvider(clock))
	return svc, m
}

func TestCalculateTransparentPricing_HappyPath(t *testing.T) {
	svc, m := newFacade(t, nil)
	scheduled := time.Date(2026, 3, 13, 14, 0, 0, 0, time.UTC)

	quote := svc.CalculateTransparentPricing(context.Background(), &domain.PricingRequest{
		ServiceType:       domain.ServiceStandardNotary,
		DocumentCount:     1,
		SignerCount:       1,
		Address:           "Avondale, Chicago, IL",
		ScheduledDateTime: ptr.Ptr(scheduled),
		CustomerType:      domain.CustomerReturning,
	})

	require.NotNil(t, quote)
	assert.Equal(t, 75.0, quote.Breakdown.TotalPrice)
	assert.True(t, quote.BusinessRules.IsValid)
	assert.True(t, quote.BusinessRules.IsWithinServiceArea)
	assert.NotEmpty(t, quote.Transparency.Explanations)
	assert.Contains(t, quote.Transparency.Summary, "$75.00")
	assert.False(t, quote.Metadata.Fallback)
	assert.Contains(t, quote.GHLActions.Tags, "service:STANDARD_NOTARY")
	assert.Contains(t, quote.GHLActions.Tags, "zone:core")
	assert.Equal(t, 1, m.calculations["ok"])
	assert.Zero(t, m.fallbacks)

	// The heuristic resolver marks its estimates; the warning must
	// surface in the transparency block.
	assert.NotEmpty(t, quote.Transparency.Warnings)
}

func TestCalculateTransparentPricing_UnknownServiceFallsBack(t *testing.T) {
	svc, m := newFacade(t, nil)

	quote := svc.CalculateTransparentPricing(context.Background(), &domain.PricingRequest{
		ServiceType:   "NOT_REAL",
		DocumentCount: 1,
		SignerCount:   1,
	})

	require.NotNil(t, quote)
	assert.Equal(t, domain.FallbackBasePrice, quote.Breakdown.BasePrice)
	assert.Equal(t, domain.FallbackBasePrice, quote.Breakdown.TotalPrice)
	assert.True(t, quote.Metadata.Fallback)
	assert.Contains(t, quote.GHLActions.Tags, TagFallback)
	assert.Equal(t, 1, m.fallbacks)
	assert.Equal(t, 1, m.calculations["fallback"])
}

func TestCalculateTransparentPricing_DiscountTags(t *testing.T) {
	svc, _ := newFacade(t, nil)

	quote := svc.CalculateTransparentPricing(context.Background(), &domain.PricingRequest{
		ServiceType:   domain.ServiceRONServices,
		DocumentCount: 1,
		SignerCount:   1,
		CustomerType:  domain.CustomerNew,
		PromoCode:     "WELCOME10",
	})

	assert.Contains(t, quote.GHLActions.Tags, "discount:first-time")
	assert.Contains(t, quote.GHLActions.Tags, "discount:promo")
	assert.Contains(t, quote.GHLActions.Tags, "zone:remote")
}

func TestCalculateTransparentPricing_AlternativesAreCheaperAndFit(t *testing.T) {
	svc, _ := newFacade(t, nil)

	quote := svc.CalculateTransparentPricing(context.Background(), &domain.PricingRequest{
		ServiceType:   domain.ServiceExtendedHours,
		DocumentCount: 2,
		SignerCount:   1,
		Address:       "Avondale, Chicago, IL",
	})

	require.NotEmpty(t, quote.Alternatives)
	assert.LessOrEqual(t, len(quote.Alternatives), 3)

	extendedBase := 95.0
	for _, alt := range quote.Alternatives {
		assert.Less(t, alt.BasePrice, extendedBase, "%s must be cheaper", alt.ServiceType)
		assert.InDelta(t, extendedBase-alt.BasePrice, alt.Savings, 0.001)
		assert.NotEmpty(t, alt.Tradeoffs)
	}

	// Savings sorted descending.
	for i := 1; i < len(quote.Alternatives); i++ {
		assert.GreaterOrEqual(t, quote.Alternatives[i-1].Savings, quote.Alternatives[i].Savings)
	}
}

func TestCalculateTransparentPricing_NoAlternativesAboveDocumentCap(t *testing.T) {
	svc, _ := newFacade(t, nil)

	quote := svc.CalculateTransparentPricing(context.Background(), &domain.PricingRequest{
		ServiceType:   domain.ServiceLoanSigning,
		DocumentCount: 80, // only loan signing includes this many
		SignerCount:   2,
	})

	assert.Empty(t, quote.Alternatives)
}

type fakeHistory struct {
	count   int
	err     error
	queried []string
}

func (h *fakeHistory) CountCompletedByEmail(_ context.Context, email string) (int, error) {
	h.queried = append(h.queried, email)
	return h.count, h.err
}

func TestCalculateTransparentPricing_HistoryFillsCompletedBookings(t *testing.T) {
	svc, _ := newFacade(t, nil)
	history := &fakeHistory{count: 12}
	WithCustomerHistory(history)(svc)

	quote := svc.CalculateTransparentPricing(context.Background(), &domain.PricingRequest{
		ServiceType:   domain.ServiceStandardNotary,
		DocumentCount: 1,
		SignerCount:   1,
		CustomerEmail: "ann@example.com",
		CustomerType:  domain.CustomerLoyalty,
	})

	require.Equal(t, []string{"ann@example.com"}, history.queried)

	// 12 completed bookings land in the 10%+2% tier: 75 * 0.12 = 9.
	var loyalty *domain.PriceComponent
	for i := range quote.Breakdown.Components {
		if quote.Breakdown.Components[i].Code == domain.ComponentLoyalty {
			loyalty = &quote.Breakdown.Components[i]
		}
	}
	require.NotNil(t, loyalty)
	assert.InDelta(t, 9.0, loyalty.Amount, 0.001)
}

func TestCalculateTransparentPricing_HistoryFailureIsNonFatal(t *testing.T) {
	svc, _ := newFacade(t, nil)
	WithCustomerHistory(&fakeHistory{err: context.DeadlineExceeded})(svc)

	quote := svc.CalculateTransparentPricing(context.Background(), &domain.PricingRequest{
		ServiceType:   domain.ServiceStandardNotary,
		DocumentCount: 1,
		SignerCount:   1,
		CustomerEmail: "ann@example.com",
	})

	assert.False(t, quote.Metadata.Fallback)
	assert.Greater(t, quote.Breakdown.TotalPrice, 0.0)
}

func TestCalculateTransparentPricing_CacheRoundTrip(t *testing.T) {
	cache := newMemoryCache()
	svc, _ := newFacade(t, cache)
	req := &domain.PricingRequest{
		ServiceType:   domain.ServiceStandardNotary,
		DocumentCount: 1,
		SignerCount:   1,
	}

	first := svc.CalculateTransparentPricing(context.Background(), req)
	assert.False(t, first.Metadata.CacheHit)

	second := svc.CalculateTransparentPricing(context.Background(), req)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, first.Breakdown, second.Breakdown, "byte-identical input inside one window yields an identical breakdown")
}

func TestCalculateTransparentPricing_OutOfAreaViolationStillPrices(t *testing.T) {
	svc, _ := newFacade(t, nil)

	// Joliet sits ~42 heuristic miles out, beyond the 30-mile ceiling.
	quote := svc.CalculateTransparentPricing(context.Background(), &domain.PricingRequest{
		ServiceType:   domain.ServiceStandardNotary,
		DocumentCount: 1,
		SignerCount:   1,
		Address:       "Joliet, IL",
	})

	assert.False(t, quote.BusinessRules.IsValid)
	assert.False(t, quote.BusinessRules.IsWithinServiceArea)
	assert.Contains(t, quote.GHLActions.Tags, "rules:violation")
	// Warn-and-allow: the quote still carries a computed price.
	assert.False(t, quote.Metadata.Fallback)
	assert.Greater(t, quote.Breakdown.TotalPrice, 0.0)
}
