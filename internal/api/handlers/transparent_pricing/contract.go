package transparent_pricing

import (
	"context"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
	"github.com/quickstampnotary/QSN-PricingService/internal/service/transparent"
)

// PricingService produces transparent quotes.
type PricingService interface {
	CalculateTransparentPricing(ctx context.Context, req *domain.PricingRequest) *transparent.Quote
}

// Logger is the logging interface used by the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
