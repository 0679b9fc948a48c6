package transparent

import (
	"context"
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// DistanceResolver resolves a destination address, best effort.
type DistanceResolver interface {
	Resolve(ctx context.Context, address string) domain.DistanceResult
}

// RulesValidator evaluates the business-rules table.
type RulesValidator interface {
	Validate(req *domain.PricingRequest, dist *domain.DistanceResult) (*domain.BusinessRuleResult, error)
}

// Calculator computes a price breakdown.
type Calculator interface {
	Calculate(req *domain.PricingRequest, dist *domain.DistanceResult) (*domain.PricingBreakdown, error)
}

// PricingCache is the optional read-through breakdown cache.
type PricingCache interface {
	Key(req *domain.PricingRequest) string
	Get(ctx context.Context, key string) (*domain.PricingBreakdown, bool)
	Set(ctx context.Context, key string, breakdown *domain.PricingBreakdown)
}

// CustomerHistory looks up a customer's completed-booking count, which
// feeds the loyalty discount tier.
type CustomerHistory interface {
	CountCompletedByEmail(ctx context.Context, email string) (int, error)
}

// Logger is the logging dependency.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics is the subset of service metrics the facade reports to.
type Metrics interface {
	IncPricingCalculation(outcome string)
	IncPricingFallback()
}

// TimeProvider supplies the current instant, injectable for tests.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
