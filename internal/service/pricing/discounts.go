package pricing

import (
	"fmt"
	"strings"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// addDiscounts computes each discount independently against the
// pre-discount subtotal, then appends them to the component list.
// Discounts are summed into one pool and subtracted once by Finalize;
// they never compound on each other.
func (s *Service) addDiscounts(req *domain.PricingRequest, b *domain.PricingBreakdown) {
	subtotal := b.Subtotal()

	if req.CustomerType == domain.CustomerNew {
		amount := subtotal * domain.FirstTimeDiscountPct
		b.Components = append(b.Components, domain.PriceComponent{
			Code:        domain.ComponentFirstTime,
			Label:       "First-time customer",
			Description: "Welcome discount on your first appointment",
			Amount:      amount,
			IsDiscount:  true,
			Calculation: fmt.Sprintf("%.0f%% of $%.2f", domain.FirstTimeDiscountPct*100, subtotal),
		})
	}

	if req.CustomerType == domain.CustomerLoyalty {
		pct := loyaltyPct(req.CompletedBookings)
		b.Components = append(b.Components, domain.PriceComponent{
			Code:        domain.ComponentLoyalty,
			Label:       "Loyalty discount",
			Description: fmt.Sprintf("Thanks for %d completed appointments", req.CompletedBookings),
			Amount:      subtotal * pct,
			IsDiscount:  true,
			Calculation: fmt.Sprintf("%.0f%% of $%.2f", pct*100, subtotal),
		})
	}

	if req.ReferralCode != "" {
		b.Components = append(b.Components, domain.PriceComponent{
			Code:        domain.ComponentReferral,
			Label:       "Referral credit",
			Description: fmt.Sprintf("Referral code %s applied", req.ReferralCode),
			Amount:      domain.ReferralDiscountFlat,
			IsDiscount:  true,
		})
	}

	if req.PromoCode != "" {
		s.addPromoDiscount(req.PromoCode, subtotal, b)
	}
}

// loyaltyPct scales the loyalty discount with booking history:
// 10% base plus 1% per five completed bookings, capped at 20%.
func loyaltyPct(completedBookings int) float64 {
	pct := domain.LoyaltyBaseDiscountPct +
		float64(completedBookings/domain.LoyaltyStepBookings)*domain.LoyaltyStepPct
	if pct > domain.LoyaltyMaxDiscountPct {
		pct = domain.LoyaltyMaxDiscountPct
	}
	return pct
}

// addPromoDiscount looks the code up in the active campaign table.
// Ineligible codes contribute zero and record a reason; they never fail
// the calculation.
func (s *Service) addPromoDiscount(code string, subtotal float64, b *domain.PricingBreakdown) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	campaign, ok := domain.ActivePromoCampaigns[normalized]
	if !ok {
		b.IneligibleReasons = append(b.IneligibleReasons,
			fmt.Sprintf("Promo code %s was not found", normalized))
		return
	}

	now := s.timeProvider.Now()
	if now.After(campaign.ExpiresAt) {
		b.IneligibleReasons = append(b.IneligibleReasons,
			fmt.Sprintf("Promo code %s expired on %s", normalized, campaign.ExpiresAt.Format("2006-01-02")))
		return
	}

	if subtotal < campaign.MinSubtotal {
		b.IneligibleReasons = append(b.IneligibleReasons,
			fmt.Sprintf("Promo code %s requires a $%.2f minimum", normalized, campaign.MinSubtotal))
		return
	}

	var amount float64
	var calc string
	switch campaign.Kind {
	case domain.PromoPercent:
		amount = subtotal * campaign.Value
		calc = fmt.Sprintf("%.0f%% of $%.2f", campaign.Value*100, subtotal)
	case domain.PromoFlat:
		amount = campaign.Value
	}

	b.Components = append(b.Components, domain.PriceComponent{
		Code:        domain.ComponentPromoCode,
		Label:       fmt.Sprintf("Promo code %s", normalized),
		Description: "Promotional campaign discount",
		Amount:      amount,
		IsDiscount:  true,
		Calculation: calc,
	})
}
