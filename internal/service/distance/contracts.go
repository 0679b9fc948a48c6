package distance

import (
	"context"

	"github.com/quickstampnotary/QSN-PricingService/internal/integrations/googlemaps"
)

// MapsClient is the mapping-provider dependency. Nil disables the
// provider entirely and every resolution uses the keyword heuristic.
type MapsClient interface {
	DrivingDistance(ctx context.Context, destination string) (googlemaps.DriveEstimate, error)
}

// Logger is the logging dependency.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics is the subset of service metrics the resolver reports to.
type Metrics interface {
	IncMapsFallback()
}
