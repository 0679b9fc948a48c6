package transparent_pricing

import (
	"fmt"
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// PricingRequest is the HTTP request model for a transparent quote.
type PricingRequest struct {
	ServiceType       string `json:"serviceType"`
	DocumentCount     int    `json:"documentCount"`
	SignerCount       int    `json:"signerCount"`
	Address           string `json:"address,omitempty"`
	ScheduledDateTime string `json:"scheduledDateTime,omitempty"` // RFC3339
	CustomerType      string `json:"customerType,omitempty"`
	CustomerEmail     string `json:"customerEmail,omitempty"`
	CompletedBookings int    `json:"completedBookings,omitempty"`
	ReferralCode      string `json:"referralCode,omitempty"`
	PromoCode         string `json:"promoCode,omitempty"`
}

// ToDomainRequest converts the HTTP request into the pricing input,
// applying the single-document single-signer defaults.
func (r *PricingRequest) ToDomainRequest(serviceType domain.ServiceType) (*domain.PricingRequest, error) {
	documentCount := r.DocumentCount
	if documentCount == 0 {
		documentCount = 1
	}
	signerCount := r.SignerCount
	if signerCount == 0 {
		signerCount = 1
	}

	customerType := domain.CustomerType(r.CustomerType)
	if customerType == "" {
		customerType = domain.CustomerNew
	}

	var scheduled *time.Time
	if r.ScheduledDateTime != "" {
		t, err := time.Parse(time.RFC3339, r.ScheduledDateTime)
		if err != nil {
			return nil, fmt.Errorf("invalid scheduledDateTime: %w", err)
		}
		scheduled = &t
	}

	return &domain.PricingRequest{
		ServiceType:       serviceType,
		DocumentCount:     documentCount,
		SignerCount:       signerCount,
		Address:           r.Address,
		ScheduledDateTime: scheduled,
		CustomerType:      customerType,
		CustomerEmail:     r.CustomerEmail,
		CompletedBookings: r.CompletedBookings,
		ReferralCode:      r.ReferralCode,
		PromoCode:         r.PromoCode,
	}, nil
}

// ServiceInfo is the catalog entry exposed by the GET endpoint.
type ServiceInfo struct {
	ServiceType         domain.ServiceType `json:"serviceType"`
	Name                string             `json:"name"`
	BasePrice           float64            `json:"basePrice"`
	MaxDocuments        int                `json:"maxDocuments"`
	MaxSigners          int                `json:"maxSigners"`
	IncludedRadiusMiles float64            `json:"includedRadiusMiles"`
	MaxRadiusMiles      float64            `json:"maxRadiusMiles"`
	FeePerMile          float64            `json:"feePerMile"`
	PerDocumentFee      float64            `json:"perDocumentFee"`
	SameDayAvailable    bool               `json:"sameDayAvailable"`
	Remote              bool               `json:"remote"`
}

// CatalogResponse lists every bookable service.
type CatalogResponse struct {
	Services []ServiceInfo `json:"services"`
}

// ServiceDetailResponse is the single-service view with the surcharge
// and discount tables.
type ServiceDetailResponse struct {
	Service    ServiceInfo     `json:"service"`
	Surcharges []SurchargeInfo `json:"surcharges"`
	Discounts  []DiscountInfo  `json:"discounts"`
}

// SurchargeInfo describes one conditional fee.
type SurchargeInfo struct {
	Code      string  `json:"code"`
	Label     string  `json:"label"`
	Amount    float64 `json:"amount"`
	Condition string  `json:"condition"`
}

// DiscountInfo describes one available discount.
type DiscountInfo struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

func toServiceInfo(cfg domain.ServiceConfig) ServiceInfo {
	return ServiceInfo{
		ServiceType:         cfg.Type,
		Name:                cfg.Name,
		BasePrice:           cfg.BasePrice,
		MaxDocuments:        cfg.MaxDocuments,
		MaxSigners:          cfg.MaxSigners,
		IncludedRadiusMiles: cfg.IncludedRadiusMiles,
		MaxRadiusMiles:      cfg.MaxRadiusMiles,
		FeePerMile:          cfg.FeePerMile,
		PerDocumentFee:      cfg.PerDocumentFee,
		SameDayAvailable:    cfg.SameDayAvailable,
		Remote:              cfg.Type.IsRemote(),
	}
}

func surchargeTable() []SurchargeInfo {
	return []SurchargeInfo{
		{
			Code:      domain.ComponentWeekend,
			Label:     "Weekend appointment",
			Amount:    domain.WeekendSurcharge,
			Condition: "Saturday or Sunday",
		},
		{
			Code:      domain.ComponentEvening,
			Label:     "Evening appointment",
			Amount:    domain.EveningSurcharge,
			Condition: fmt.Sprintf("between %d:00 and %d:00", domain.EveningStartHour, domain.NightStartHour),
		},
		{
			Code:      domain.ComponentNight,
			Label:     "Night appointment",
			Amount:    domain.NightSurcharge,
			Condition: fmt.Sprintf("between %d:00 and %d:00", domain.NightStartHour, domain.NightEndHour),
		},
		{
			Code:      domain.ComponentSameDay,
			Label:     "Same-day booking",
			Amount:    domain.SameDaySurcharge,
			Condition: fmt.Sprintf("booked within %d hours of the appointment", domain.DefaultSameDayWindowHours),
		},
	}
}

func discountTable() []DiscountInfo {
	return []DiscountInfo{
		{
			Code:        domain.ComponentFirstTime,
			Label:       "First-time customer",
			Description: fmt.Sprintf("%.0f%% off your first appointment", domain.FirstTimeDiscountPct*100),
		},
		{
			Code:        domain.ComponentLoyalty,
			Label:       "Loyalty program",
			Description: "10% off, growing with every five completed appointments up to 20%",
		},
		{
			Code:        domain.ComponentReferral,
			Label:       "Referral credit",
			Description: fmt.Sprintf("$%.0f off when you book with a referral code", domain.ReferralDiscountFlat),
		},
		{
			Code:        domain.ComponentPromoCode,
			Label:       "Promo code",
			Description: "Seasonal campaigns, applied when the code is active",
		},
	}
}
