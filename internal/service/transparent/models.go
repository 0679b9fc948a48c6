package transparent

import (
	"time"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// Quote is the full transparent-pricing envelope: breakdown, "why this
// price" narrative, business-rules outcome, CRM tag suggestions and
// calculation metadata.
type Quote struct {
	Breakdown     *domain.PricingBreakdown   `json:"breakdown"`
	Transparency  Transparency               `json:"transparency"`
	BusinessRules *domain.BusinessRuleResult `json:"businessRules"`
	Alternatives  []AlternativeService       `json:"alternatives"`
	GHLActions    GHLActions                 `json:"ghlActions"`
	Metadata      Metadata                   `json:"metadata"`
}

// Transparency is the human-readable explanation of the quote.
type Transparency struct {
	Summary      string   `json:"summary"`
	Explanations []string `json:"explanations"`
	Warnings     []string `json:"warnings,omitempty"`
}

// AlternativeService suggests a cheaper service the request still fits.
type AlternativeService struct {
	ServiceType domain.ServiceType `json:"serviceType"`
	Name        string             `json:"name"`
	BasePrice   float64            `json:"basePrice"`
	Savings     float64            `json:"savings"`
	Tradeoffs   []string           `json:"tradeoffs"`
}

// GHLActions carries tag suggestions for the external CRM collaborator.
type GHLActions struct {
	Tags []string `json:"tags"`
}

// Metadata describes how the quote was produced.
type Metadata struct {
	CalculatedAt time.Time `json:"calculatedAt"`
	RequestHash  string    `json:"requestHash,omitempty"`
	CacheHit     bool      `json:"cacheHit"`
	Fallback     bool      `json:"fallback"`
	Version      string    `json:"version"`
}

// QuoteVersion identifies the pricing-engine revision stamped on quotes.
const QuoteVersion = "2025.2"

// TagFallback marks quotes produced by the fixed fallback path.
const TagFallback = "pricing:fallback"
