package domain

// BusinessRuleResult is the outcome of evaluating the fixed rules table
// against a single request. Violations and recommendations are
// human-readable strings surfaced directly to the customer and to CRM
// automation; an empty Violations slice means the request is valid.
type BusinessRuleResult struct {
	IsValid                bool        `json:"isValid"`
	Violations             []string    `json:"violations"`
	Recommendations        []string    `json:"recommendations"`
	ServiceAreaZone        ServiceZone `json:"serviceAreaZone"`
	IsWithinServiceArea    bool        `json:"isWithinServiceArea"`
	DocumentLimitsExceeded bool        `json:"documentLimitsExceeded"`
	DynamicPricingActive   bool        `json:"dynamicPricingActive"`
	DiscountsApplied       []string    `json:"discountsApplied"`
}

// DistanceResult is the outcome of resolving a destination address
// against the fixed service-center origin. Best effort: when the mapping
// provider is unavailable the distance is estimated and a warning is set.
type DistanceResult struct {
	DistanceMiles       float64  `json:"distanceMiles"`
	DurationMinutes     int      `json:"durationMinutes"`
	IsWithinServiceArea bool     `json:"isWithinServiceArea"`
	Estimated           bool     `json:"estimated"`
	Warnings            []string `json:"warnings"`
}

// Zone classifies a resolved distance into a service-area zone.
func (d DistanceResult) Zone() ServiceZone {
	switch {
	case d.DistanceMiles <= CoreZoneRadiusMiles:
		return ZoneCore
	case d.DistanceMiles <= MaxServiceRadiusMiles:
		return ZoneExtended
	default:
		return ZoneOutOfArea
	}
}
