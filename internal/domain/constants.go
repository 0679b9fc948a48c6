package domain

import "time"

// Service-area ceiling applied by the distance resolver regardless of the
// per-service radius. Individual services may define a smaller radius.
const MaxServiceRadiusMiles = 30.0

// Time-based surcharge windows, evaluated in the business-local timezone.
// Night takes precedence over evening when both would match.
const (
	EveningStartHour = 18 // 18:00 inclusive
	EveningEndHour   = 21 // 21:00 exclusive
	NightStartHour   = 21 // 21:00 inclusive
	NightEndHour     = 7  // 07:00 exclusive (wraps midnight)
)

// Flat surcharge amounts.
const (
	WeekendSurcharge = 20.0
	EveningSurcharge = 25.0
	NightSurcharge   = 40.0
	SameDaySurcharge = 30.0
)

// DefaultSameDayWindowHours is the urgency window: appointments starting
// within this many hours of "now" carry the same-day surcharge.
const DefaultSameDayWindowHours = 24

// Discount rules. Percentage discounts are computed against the
// pre-discount subtotal independently, then summed and subtracted once.
const (
	FirstTimeDiscountPct   = 0.10
	LoyaltyBaseDiscountPct = 0.10
	LoyaltyStepPct         = 0.01 // +1% per LoyaltyStepBookings completed bookings
	LoyaltyStepBookings    = 5
	LoyaltyMaxDiscountPct  = 0.20
	ReferralDiscountFlat   = 10.0
)

// FallbackBasePrice is the fixed quote substituted when the calculation
// path fails. Kept deliberately visible: every use increments a metric
// and logs an error server-side.
const FallbackBasePrice = 75.0

// PromoKind distinguishes percentage campaigns from flat-amount ones.
type PromoKind string

const (
	PromoPercent PromoKind = "percent"
	PromoFlat    PromoKind = "flat"
)

// PromoCampaign is an active promo-code definition.
type PromoCampaign struct {
	Code        string
	Kind        PromoKind
	Value       float64 // percent as fraction (0.10) or flat dollars
	MinSubtotal float64
	ExpiresAt   time.Time
}

// ActivePromoCampaigns is the static campaign table. In-code by design:
// campaigns change rarely and ship with a release.
var ActivePromoCampaigns = map[string]PromoCampaign{
	"WELCOME10": {
		Code:        "WELCOME10",
		Kind:        PromoPercent,
		Value:       0.10,
		MinSubtotal: 0,
		ExpiresAt:   time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	},
	"NOTARY20": {
		Code:        "NOTARY20",
		Kind:        PromoFlat,
		Value:       20,
		MinSubtotal: 100,
		ExpiresAt:   time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	},
	"LOANDAY": {
		Code:        "LOANDAY",
		Kind:        PromoFlat,
		Value:       15,
		MinSubtotal: 150,
		ExpiresAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), // expired campaign kept for regression coverage
	},
}

// Service-area zones derived from resolved distance, used for CRM tags.
type ServiceZone string

const (
	ZoneCore      ServiceZone = "core"      // within 10 miles
	ZoneExtended  ServiceZone = "extended"  // 10-30 miles
	ZoneOutOfArea ServiceZone = "out_of_area"
	ZoneRemote    ServiceZone = "remote" // RON, no travel
)

const CoreZoneRadiusMiles = 10.0

// Date/time formats used at the HTTP boundary.
const (
	DateFormat = "2006-01-02"
)
