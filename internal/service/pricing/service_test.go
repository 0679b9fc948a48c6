package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
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

// Tuesday 2026-03-10, 10:00 local.
var testNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(time.UTC, domain.DefaultSameDayWindowHours, noopLogger{},
		WithTimeProvider(fixedClock{now: testNow}))
}

func TestCalculate_StandardWeekdayDaytimeInRadius(t *testing.T) {
	svc := newTestService(t)
	// Weekday 14:00, three days out: no surcharges apply.
	scheduled := time.Date(2026, 3, 13, 14, 0, 0, 0, time.UTC)

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:       domain.ServiceStandardNotary,
		DocumentCount:     1,
		SignerCount:       1,
		Address:           "2045 N Damen Ave, Chicago, IL",
		ScheduledDateTime: ptr.Ptr(scheduled),
		CustomerType:      domain.CustomerReturning,
	}, &domain.DistanceResult{DistanceMiles: 4.8, IsWithinServiceArea: true})

	require.NoError(t, err)
	assert.Equal(t, 75.0, breakdown.BasePrice)
	assert.Equal(t, 75.0, breakdown.TotalPrice, "no travel, no surcharge, no discount")
	require.Len(t, breakdown.Components, 1)
	assert.Equal(t, domain.ComponentServiceBase, breakdown.Components[0].Code)
}

func TestCalculate_UnknownServiceType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:   "NOT_REAL",
		DocumentCount: 1,
		SignerCount:   1,
	}, nil)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCalculate_InvalidCounts(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:   domain.ServiceStandardNotary,
		DocumentCount: 0,
		SignerCount:   1,
	}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Calculate(&domain.PricingRequest{
		ServiceType:   domain.ServiceStandardNotary,
		DocumentCount: 1,
		SignerCount:   0,
	}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculate_TravelFeeBeyondIncludedRadius(t *testing.T) {
	svc := newTestService(t)

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:   domain.ServiceStandardNotary,
		DocumentCount: 1,
		SignerCount:   1,
		Address:       "Evanston, IL",
	}, &domain.DistanceResult{DistanceMiles: 20.0, IsWithinServiceArea: true})

	require.NoError(t, err)
	travel, ok := breakdown.Component(domain.ComponentTravelFee)
	require.True(t, ok)
	// (20 - 15 included) * $2.50/mi
	assert.InDelta(t, 12.50, travel.Amount, 0.001)
	assert.NotEmpty(t, travel.Calculation)
	assert.InDelta(t, 87.50, breakdown.TotalPrice, 0.001)
}

func TestCalculate_NoTravelFeeForRemoteService(t *testing.T) {
	svc := newTestService(t)

	// Even with a resolved distance, RON never carries a travel fee.
	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:   domain.ServiceRONServices,
		DocumentCount: 1,
		SignerCount:   1,
		Address:       "400 S Route 59, Naperville, IL",
	}, &domain.DistanceResult{DistanceMiles: 31.0})

	require.NoError(t, err)
	_, ok := breakdown.Component(domain.ComponentTravelFee)
	assert.False(t, ok)
	assert.Equal(t, 35.0, breakdown.TotalPrice)
}

func TestCalculate_WithinIncludedRadiusNoTravelFee(t *testing.T) {
	svc := newTestService(t)

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:   domain.ServiceStandardNotary,
		DocumentCount: 1,
		SignerCount:   1,
		Address:       "Avondale, Chicago",
	}, &domain.DistanceResult{DistanceMiles: 15.0, IsWithinServiceArea: true})

	require.NoError(t, err)
	_, ok := breakdown.Component(domain.ComponentTravelFee)
	assert.False(t, ok, "exactly at the included radius is still free")
}

func TestCalculate_ExtraDocumentFee(t *testing.T) {
	svc := newTestService(t)

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:   domain.ServiceStandardNotary,
		DocumentCount: 8, // cap is 5
		SignerCount:   1,
	}, nil)

	require.NoError(t, err)
	extra, ok := breakdown.Component(domain.ComponentExtraDocuments)
	require.True(t, ok)
	assert.InDelta(t, 30.0, extra.Amount, 0.001) // 3 x $10
	assert.InDelta(t, 105.0, breakdown.TotalPrice, 0.001)
}

func TestCalculate_DocumentCountAtCapNoExtraFee(t *testing.T) {
	svc := newTestService(t)

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:   domain.ServiceStandardNotary,
		DocumentCount: 5,
		SignerCount:   1,
	}, nil)

	require.NoError(t, err)
	_, ok := breakdown.Component(domain.ComponentExtraDocuments)
	assert.False(t, ok)
}

func TestCalculate_SameDayEveningWithExtraDocuments(t *testing.T) {
	svc := newTestService(t)
	// Same calendar day as testNow, 19:00: evening window plus same-day urgency.
	scheduled := time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:       domain.ServiceStandardNotary,
		DocumentCount:     8,
		SignerCount:       1,
		ScheduledDateTime: ptr.Ptr(scheduled),
	}, nil)

	require.NoError(t, err)

	extra, ok := breakdown.Component(domain.ComponentExtraDocuments)
	require.True(t, ok)
	assert.Greater(t, extra.Amount, 0.0)

	evening, ok := breakdown.Component(domain.ComponentEvening)
	require.True(t, ok)
	assert.Equal(t, domain.EveningSurcharge, evening.Amount)

	sameDay, ok := breakdown.Component(domain.ComponentSameDay)
	require.True(t, ok)
	assert.Equal(t, domain.SameDaySurcharge, sameDay.Amount)

	// All additive: 75 + 30 + 25 + 30
	assert.InDelta(t, 160.0, breakdown.TotalPrice, 0.001)
}

func TestCalculate_NightSupersedesEvening(t *testing.T) {
	svc := newTestService(t)
	scheduled := time.Date(2026, 3, 17, 22, 0, 0, 0, time.UTC) // 10pm, a week out

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:       domain.ServiceExtendedHours,
		DocumentCount:     1,
		SignerCount:       1,
		ScheduledDateTime: ptr.Ptr(scheduled),
	}, nil)

	require.NoError(t, err)
	_, hasNight := breakdown.Component(domain.ComponentNight)
	_, hasEvening := breakdown.Component(domain.ComponentEvening)
	assert.True(t, hasNight)
	assert.False(t, hasEvening, "night bookings must not also pay the evening surcharge")
}

func TestCalculate_EarlyMorningCountsAsNight(t *testing.T) {
	svc := newTestService(t)
	scheduled := time.Date(2026, 3, 17, 6, 0, 0, 0, time.UTC) // 6am

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:       domain.ServiceExtendedHours,
		DocumentCount:     1,
		SignerCount:       1,
		ScheduledDateTime: ptr.Ptr(scheduled),
	}, nil)

	require.NoError(t, err)
	_, hasNight := breakdown.Component(domain.ComponentNight)
	assert.True(t, hasNight, "the overnight window wraps midnight until 7am")
}

func TestCalculate_WeekendAndNightStack(t *testing.T) {
	svc := newTestService(t)
	scheduled := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC) // Saturday 11pm

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:       domain.ServiceExtendedHours,
		DocumentCount:     1,
		SignerCount:       1,
		ScheduledDateTime: ptr.Ptr(scheduled),
	}, nil)

	require.NoError(t, err)
	weekend, ok := breakdown.Component(domain.ComponentWeekend)
	require.True(t, ok)
	night, ok := breakdown.Component(domain.ComponentNight)
	require.True(t, ok)
	assert.InDelta(t, 95.0+weekend.Amount+night.Amount, breakdown.TotalPrice, 0.001)
}

func TestCalculate_DiscountsStackAgainstSubtotalNotSequentially(t *testing.T) {
	svc := newTestService(t)

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:   domain.ServiceStandardNotary,
		DocumentCount: 1,
		SignerCount:   1,
		CustomerType:  domain.CustomerNew,
		ReferralCode:  "FRIEND-42",
		PromoCode:     "WELCOME10",
	}, nil)

	require.NoError(t, err)

	// Each percentage discount is computed against the $75 subtotal
	// independently: 7.50 + 10.00 + 7.50, never compounded.
	firstTime, _ := breakdown.Component(domain.ComponentFirstTime)
	referral, _ := breakdown.Component(domain.ComponentReferral)
	promo, _ := breakdown.Component(domain.ComponentPromoCode)
	assert.InDelta(t, 7.50, firstTime.Amount, 0.001)
	assert.InDelta(t, 10.0, referral.Amount, 0.001)
	assert.InDelta(t, 7.50, promo.Amount, 0.001)
	assert.InDelta(t, 50.0, breakdown.TotalPrice, 0.001)
}

func TestCalculate_LoyaltyDiscountScalesWithHistory(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		bookings int
		wantPct  float64
	}{
		{bookings: 0, wantPct: 0.10},
		{bookings: 12, wantPct: 0.12},
		{bookings: 100, wantPct: 0.20}, // capped
	}

	for _, tt := range tests {
		breakdown, err := svc.Calculate(&domain.PricingRequest{
			ServiceType:       domain.ServiceStandardNotary,
			DocumentCount:     1,
			SignerCount:       1,
			CustomerType:      domain.CustomerLoyalty,
			CompletedBookings: tt.bookings,
		}, nil)

		require.NoError(t, err)
		loyalty, ok := breakdown.Component(domain.ComponentLoyalty)
		require.True(t, ok)
		assert.InDelta(t, 75.0*tt.wantPct, loyalty.Amount, 0.001, "bookings=%d", tt.bookings)
	}
}

func TestCalculate_InvalidPromoCodeDoesNotAffectTotal(t *testing.T) {
	svc := newTestService(t)

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:   domain.ServiceStandardNotary,
		DocumentCount: 1,
		SignerCount:   1,
		PromoCode:     "NOT-A-CODE",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 75.0, breakdown.TotalPrice)
	require.Len(t, breakdown.IneligibleReasons, 1)
	assert.Contains(t, breakdown.IneligibleReasons[0], "NOT-A-CODE")
}

func TestCalculate_ExpiredPromoCode(t *testing.T) {
	svc := newTestService(t)

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:   domain.ServiceLoanSigning,
		DocumentCount: 1,
		SignerCount:   1,
		PromoCode:     "LOANDAY", // expired 2026-01-01, testNow is 2026-03-10
	}, nil)

	require.NoError(t, err)
	_, ok := breakdown.Component(domain.ComponentPromoCode)
	assert.False(t, ok)
	require.Len(t, breakdown.IneligibleReasons, 1)
	assert.Contains(t, breakdown.IneligibleReasons[0], "expired")
}

func TestCalculate_PromoCodeBelowMinimumSubtotal(t *testing.T) {
	svc := newTestService(t)

	// NOTARY20 requires a $100 subtotal; Quick Stamp base is $40.
	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:   domain.ServiceQuickStampLocal,
		DocumentCount: 1,
		SignerCount:   1,
		PromoCode:     "notary20", // codes are case-insensitive
	}, nil)

	require.NoError(t, err)
	_, ok := breakdown.Component(domain.ComponentPromoCode)
	assert.False(t, ok)
	require.Len(t, breakdown.IneligibleReasons, 1)
	assert.Contains(t, breakdown.IneligibleReasons[0], "NOTARY20")
	assert.Contains(t, breakdown.IneligibleReasons[0], "minimum")
}

func TestCalculate_TotalInvariant(t *testing.T) {
	svc := newTestService(t)
	scheduled := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC) // Saturday evening

	breakdown, err := svc.Calculate(&domain.PricingRequest{
		ServiceType:       domain.ServiceExtendedHours,
		DocumentCount:     9,
		SignerCount:       2,
		Address:           "Schaumburg, IL",
		ScheduledDateTime: ptr.Ptr(scheduled),
		CustomerType:      domain.CustomerNew,
		ReferralCode:      "FRIEND-1",
	}, &domain.DistanceResult{DistanceMiles: 23.5, IsWithinServiceArea: true})

	require.NoError(t, err)
	want := breakdown.Subtotal() - breakdown.TotalDiscount()
	assert.InDelta(t, want, breakdown.TotalPrice, 0.005, "total must equal subtotal minus discount pool within rounding")
	assert.GreaterOrEqual(t, breakdown.TotalPrice, 0.0)
}

func TestCalculate_Idempotent(t *testing.T) {
	svc := newTestService(t)
	scheduled := time.Date(2026, 3, 13, 14, 0, 0, 0, time.UTC)
	req := &domain.PricingRequest{
		ServiceType:       domain.ServiceStandardNotary,
		DocumentCount:     3,
		SignerCount:       2,
		ScheduledDateTime: ptr.Ptr(scheduled),
		CustomerType:      domain.CustomerNew,
		PromoCode:         "WELCOME10",
	}

	first, err := svc.Calculate(req, nil)
	require.NoError(t, err)
	second, err := svc.Calculate(req, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
