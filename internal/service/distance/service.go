package distance

import (
	"context"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// WarningProviderUnavailable is appended to every heuristic-estimated result.
const WarningProviderUnavailable = "Distance estimated (mapping provider unavailable)"

// WarningUnknownArea is appended when the address matched no known area
// and the conservative default estimate was used.
const WarningUnknownArea = "Address did not match a known service area; using default estimate"

// Service resolves driving distance from the service-center origin and
// classifies it against the global service-area ceiling. Resolve never
// returns an error: provider failures degrade to the keyword heuristic.
type Service struct {
	maps    MapsClient
	logger  Logger
	metrics Metrics
}

// NewService creates a distance resolver. maps may be nil when no API
// key is configured; every lookup then uses the heuristic.
func NewService(maps MapsClient, logger Logger, metrics Metrics) *Service {
	return &Service{maps: maps, logger: logger, metrics: metrics}
}

// Resolve returns a best-effort distance result for the address.
func (s *Service) Resolve(ctx context.Context, address string) domain.DistanceResult {
	if s.maps != nil {
		estimate, err := s.maps.DrivingDistance(ctx, address)
		if err == nil {
			miles := estimate.Miles()
			return domain.DistanceResult{
				DistanceMiles:       miles,
				DurationMinutes:     estimate.Minutes(),
				IsWithinServiceArea: miles <= domain.MaxServiceRadiusMiles,
			}
		}
		s.logger.Warn("Resolve: mapping provider failed for address=%q, falling back to heuristic: %v", address, err)
	}

	return s.resolveHeuristic(address)
}

func (s *Service) resolveHeuristic(address string) domain.DistanceResult {
	if s.metrics != nil {
		s.metrics.IncMapsFallback()
	}

	miles, minutes, matched := estimateByKeyword(address)

	warnings := []string{WarningProviderUnavailable}
	if !matched {
		warnings = append(warnings, WarningUnknownArea)
		s.logger.Warn("Resolve: address=%q matched no known area, using default estimate", address)
	}

	return domain.DistanceResult{
		DistanceMiles:       miles,
		DurationMinutes:     minutes,
		IsWithinServiceArea: miles <= domain.MaxServiceRadiusMiles,
		Estimated:           true,
		Warnings:            warnings,
	}
}
