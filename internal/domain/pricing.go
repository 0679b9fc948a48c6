package domain

import (
	"math"
	"time"
)

// CustomerType classifies the customer for discount purposes.
type CustomerType string

const (
	CustomerNew       CustomerType = "new"
	CustomerReturning CustomerType = "returning"
	CustomerLoyalty   CustomerType = "loyalty"
)

// PricingRequest is the immutable input to a pricing calculation.
// Constructed per call, never persisted.
type PricingRequest struct {
	ServiceType       ServiceType
	DocumentCount     int
	SignerCount       int
	Address           string     // empty for remote services
	ScheduledDateTime *time.Time // nil when the customer has not picked a time yet
	CustomerType      CustomerType
	CustomerEmail     string
	CompletedBookings int // historical count, used for loyalty scaling
	ReferralCode      string
	PromoCode         string
}

// PriceComponent is one labeled line of a transparent price breakdown.
type PriceComponent struct {
	Code        string  `json:"code"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	IsDiscount  bool    `json:"isDiscount"`
	Calculation string  `json:"calculation,omitempty"`
}

// Component codes used across the pricing engine.
const (
	ComponentServiceBase    = "service_base"
	ComponentTravelFee      = "travel_fee"
	ComponentExtraDocuments = "extra_documents"
	ComponentWeekend        = "weekend_surcharge"
	ComponentEvening        = "evening_surcharge"
	ComponentNight          = "night_surcharge"
	ComponentSameDay        = "same_day_surcharge"
	ComponentFirstTime      = "first_time_discount"
	ComponentLoyalty        = "loyalty_discount"
	ComponentReferral       = "referral_discount"
	ComponentPromoCode      = "promo_code_discount"
)

// PricingBreakdown is the structured output of a pricing calculation.
// Invariant: TotalPrice == BasePrice + sum(charges) - sum(discounts),
// floored at zero and rounded to cents at the boundary.
type PricingBreakdown struct {
	ServiceType       ServiceType      `json:"serviceType"`
	BasePrice         float64          `json:"basePrice"`
	TotalPrice        float64          `json:"totalPrice"`
	Components        []PriceComponent `json:"components"`
	IneligibleReasons []string         `json:"ineligibleReasons,omitempty"`
}

// Subtotal returns the pre-discount sum: base plus all non-discount components.
func (b *PricingBreakdown) Subtotal() float64 {
	total := 0.0
	for _, c := range b.Components {
		if !c.IsDiscount {
			total += c.Amount
		}
	}
	return total
}

// TotalDiscount returns the summed discount pool.
func (b *PricingBreakdown) TotalDiscount() float64 {
	total := 0.0
	for _, c := range b.Components {
		if c.IsDiscount {
			total += c.Amount
		}
	}
	return total
}

// Finalize recomputes TotalPrice from the components, applying the
// floor-at-zero rule and rounding to cents.
func (b *PricingBreakdown) Finalize() {
	total := b.Subtotal() - b.TotalDiscount()
	if total < 0 {
		total = 0
	}
	b.TotalPrice = Round2(total)
}

// Component returns the component with the given code, if present.
func (b *PricingBreakdown) Component(code string) (PriceComponent, bool) {
	for _, c := range b.Components {
		if c.Code == code {
			return c, true
		}
	}
	return PriceComponent{}, false
}

// Round2 rounds a monetary amount to cents. Amounts are carried as plain
// float64 and rounded only at output boundaries.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
