package domain

import (
	"fmt"
	"sort"
)

// ServiceType is one of the fixed notary product codes.
type ServiceType string

const (
	ServiceQuickStampLocal    ServiceType = "QUICK_STAMP_LOCAL"
	ServiceStandardNotary     ServiceType = "STANDARD_NOTARY"
	ServiceExtendedHours      ServiceType = "EXTENDED_HOURS"
	ServiceLoanSigning        ServiceType = "LOAN_SIGNING"
	ServiceRONServices        ServiceType = "RON_SERVICES"
	ServiceBusinessEssentials ServiceType = "BUSINESS_ESSENTIALS"
	ServiceBusinessGrowth     ServiceType = "BUSINESS_GROWTH"
)

// IsRemote returns true for services that require no travel.
func (t ServiceType) IsRemote() bool {
	return t == ServiceRONServices
}

// ParseServiceType validates a raw service type code.
func ParseServiceType(raw string) (ServiceType, error) {
	t := ServiceType(raw)
	if _, ok := serviceCatalog[t]; !ok {
		return "", fmt.Errorf("unknown service type %q", raw)
	}
	return t, nil
}

// ValidServiceTypes returns all recognized service codes in a stable order.
func ValidServiceTypes() []ServiceType {
	types := make([]ServiceType, 0, len(serviceCatalog))
	for t := range serviceCatalog {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// ServiceConfig is the static per-service record: pricing inputs,
// document/signer caps and travel radius. Never mutated at runtime.
type ServiceConfig struct {
	Type                ServiceType
	Name                string
	Description         string
	Features            []string
	BasePrice           float64
	MaxDocuments        int // cap before the extra-document fee applies
	MaxSigners          int
	IncludedRadiusMiles float64 // free travel radius
	MaxRadiusMiles      float64 // service-area radius for this product
	FeePerMile          float64
	PerDocumentFee      float64 // charged per document beyond MaxDocuments
	MinCancelNoticeHrs  int
	SameDayAvailable    bool
}

// serviceCatalog is the single source of truth for the seven products.
var serviceCatalog = map[ServiceType]ServiceConfig{
	ServiceQuickStampLocal: {
		Type:                ServiceQuickStampLocal,
		Name:                "Quick Stamp Local",
		Description:         "Fast single-document notarization close to our office",
		Features:            []string{"Up to 2 documents", "7 miles of travel included", "Same-day when available"},
		BasePrice:           40,
		MaxDocuments:        2,
		MaxSigners:          2,
		IncludedRadiusMiles: 7,
		MaxRadiusMiles:      10,
		FeePerMile:          2.00,
		PerDocumentFee:      10,
		MinCancelNoticeHrs:  2,
		SameDayAvailable:    true,
	},
	ServiceStandardNotary: {
		Type:                ServiceStandardNotary,
		Name:                "Standard Mobile Notary",
		Description:         "General-purpose mobile notarization at your location",
		Features:            []string{"Up to 5 documents", "15 miles of travel included", "Evening appointments"},
		BasePrice:           75,
		MaxDocuments:        5,
		MaxSigners:          4,
		IncludedRadiusMiles: 15,
		MaxRadiusMiles:      25,
		FeePerMile:          2.50,
		PerDocumentFee:      10,
		MinCancelNoticeHrs:  4,
		SameDayAvailable:    true,
	},
	ServiceExtendedHours: {
		Type:                ServiceExtendedHours,
		Name:                "Extended Hours Notary",
		Description:         "Early morning, late evening and weekend appointments",
		Features:            []string{"Up to 5 documents", "20 miles of travel included", "6am-11pm availability"},
		BasePrice:           95,
		MaxDocuments:        5,
		MaxSigners:          4,
		IncludedRadiusMiles: 20,
		MaxRadiusMiles:      30,
		FeePerMile:          2.75,
		PerDocumentFee:      12,
		MinCancelNoticeHrs:  4,
		SameDayAvailable:    true,
	},
	ServiceLoanSigning: {
		Type:                ServiceLoanSigning,
		Name:                "Loan Signing",
		Description:         "Full loan package signing with a certified signing agent",
		Features:            []string{"Complete loan packages", "25 miles of travel included", "Printing included"},
		BasePrice:           150,
		MaxDocuments:        100,
		MaxSigners:          4,
		IncludedRadiusMiles: 25,
		MaxRadiusMiles:      30,
		FeePerMile:          3.00,
		PerDocumentFee:      1.00,
		MinCancelNoticeHrs:  24,
		SameDayAvailable:    false,
	},
	ServiceRONServices: {
		Type:                ServiceRONServices,
		Name:                "Remote Online Notarization",
		Description:         "Fully remote notarization over secure video",
		Features:            []string{"No travel required", "Up to 3 documents", "Available nationwide"},
		BasePrice:           35,
		MaxDocuments:        3,
		MaxSigners:          2,
		IncludedRadiusMiles: 0,
		MaxRadiusMiles:      0,
		FeePerMile:          0,
		PerDocumentFee:      8,
		MinCancelNoticeHrs:  1,
		SameDayAvailable:    true,
	},
	ServiceBusinessEssentials: {
		Type:                ServiceBusinessEssentials,
		Name:                "Business Essentials",
		Description:         "Monthly notary visits for small businesses",
		Features:            []string{"Up to 10 documents", "20 miles of travel included", "Priority scheduling"},
		BasePrice:           200,
		MaxDocuments:        10,
		MaxSigners:          6,
		IncludedRadiusMiles: 20,
		MaxRadiusMiles:      30,
		FeePerMile:          2.50,
		PerDocumentFee:      9,
		MinCancelNoticeHrs:  24,
		SameDayAvailable:    false,
	},
	ServiceBusinessGrowth: {
		Type:                ServiceBusinessGrowth,
		Name:                "Business Growth",
		Description:         "High-volume notary support for growing teams",
		Features:            []string{"Up to 25 documents", "30 miles of travel included", "Dedicated notary"},
		BasePrice:           350,
		MaxDocuments:        25,
		MaxSigners:          10,
		IncludedRadiusMiles: 30,
		MaxRadiusMiles:      30,
		FeePerMile:          2.25,
		PerDocumentFee:      8,
		MinCancelNoticeHrs:  24,
		SameDayAvailable:    false,
	},
}

// ServiceCatalog returns a copy of the full catalog keyed by service type.
func ServiceCatalog() map[ServiceType]ServiceConfig {
	catalog := make(map[ServiceType]ServiceConfig, len(serviceCatalog))
	for t, cfg := range serviceCatalog {
		catalog[t] = cfg
	}
	return catalog
}

// GetServiceConfig looks up the static config for a service type.
func GetServiceConfig(t ServiceType) (ServiceConfig, bool) {
	cfg, ok := serviceCatalog[t]
	return cfg, ok
}
