package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalize_FlooredAtZero(t *testing.T) {
	b := &PricingBreakdown{
		ServiceType: ServiceRONServices,
		BasePrice:   35,
		Components: []PriceComponent{
			{Code: ComponentServiceBase, Amount: 35},
			{Code: ComponentLoyalty, Amount: 30, IsDiscount: true},
			{Code: ComponentReferral, Amount: 10, IsDiscount: true},
		},
	}

	b.Finalize()

	assert.Equal(t, 0.0, b.TotalPrice)
}

func TestFinalize_RoundsToCents(t *testing.T) {
	b := &PricingBreakdown{
		Components: []PriceComponent{
			{Code: ComponentServiceBase, Amount: 75},
			{Code: ComponentTravelFee, Amount: 12.505},
		},
	}

	b.Finalize()

	assert.Equal(t, 87.51, b.TotalPrice)
}

func TestServiceCatalog_CoversAllSevenCodes(t *testing.T) {
	catalog := ServiceCatalog()

	assert.Len(t, catalog, 7)
	for _, code := range ValidServiceTypes() {
		cfg, ok := catalog[code]
		assert.True(t, ok)
		assert.Greater(t, cfg.BasePrice, 0.0, "%s", code)
		assert.Greater(t, cfg.MaxDocuments, 0, "%s", code)
	}
}

func TestServiceCatalog_RemoteServiceHasNoTravelPricing(t *testing.T) {
	cfg, ok := GetServiceConfig(ServiceRONServices)

	assert.True(t, ok)
	assert.True(t, ServiceRONServices.IsRemote())
	assert.Zero(t, cfg.FeePerMile)
	assert.Zero(t, cfg.IncludedRadiusMiles)
}

func TestParseServiceType(t *testing.T) {
	parsed, err := ParseServiceType("LOAN_SIGNING")
	assert.NoError(t, err)
	assert.Equal(t, ServiceLoanSigning, parsed)

	_, err = ParseServiceType("NOT_REAL")
	assert.Error(t, err)
}

func TestDistanceResultZone(t *testing.T) {
	assert.Equal(t, ZoneCore, DistanceResult{DistanceMiles: 4.2}.Zone())
	assert.Equal(t, ZoneExtended, DistanceResult{DistanceMiles: 18.0}.Zone())
	assert.Equal(t, ZoneOutOfArea, DistanceResult{DistanceMiles: 42.0}.Zone())
}
