package transparent_pricing

import (
	"net/http"
	"strings"

	"github.com/quickstampnotary/QSN-PricingService/internal/api/handlers"
	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

const (
	codeInvalidBody        = "INVALID_REQUEST_BODY"
	codeMissingServiceType = "MISSING_SERVICE_TYPE"
	codeInvalidServiceType = "INVALID_SERVICE_TYPE"
	codeInvalidDateTime    = "INVALID_SCHEDULED_DATETIME"
)

type Handler struct {
	pricing PricingService
	logger  Logger
}

func NewHandler(pricing PricingService, logger Logger) *Handler {
	return &Handler{
		pricing: pricing,
		logger:  logger,
	}
}

// HandleQuote POST /api/v1/pricing/transparent
//
// Input validation failures are the only 4xx path; once the request is
// well formed the endpoint always answers 200, falling back to the flat
// estimate when the calculation cannot complete.
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	var req PricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing/transparent - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, codeInvalidBody, "invalid request body")
		return
	}

	if strings.TrimSpace(req.ServiceType) == "" {
		h.logger.Warn("POST /pricing/transparent - Missing service type")
		handlers.RespondBadRequest(w, codeMissingServiceType, "serviceType is required")
		return
	}

	serviceType, err := domain.ParseServiceType(req.ServiceType)
	if err != nil {
		h.logger.Warn("POST /pricing/transparent - Invalid service type: %q", req.ServiceType)
		handlers.RespondBadRequest(w, codeInvalidServiceType,
			"unknown serviceType, valid values: "+strings.Join(validServiceTypes(), ", "))
		return
	}

	domainReq, err := req.ToDomainRequest(serviceType)
	if err != nil {
		h.logger.Warn("POST /pricing/transparent - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, codeInvalidDateTime, "scheduledDateTime must be RFC3339")
		return
	}

	quote := h.pricing.CalculateTransparentPricing(r.Context(), domainReq)

	h.logger.Info("POST /pricing/transparent - Quote served: service=%s total=%.2f fallback=%t",
		serviceType, quote.Breakdown.TotalPrice, quote.Metadata.Fallback)
	handlers.RespondJSON(w, http.StatusOK, quote)
}

// HandleCatalog GET /api/v1/pricing/transparent
//
// Without a serviceType query parameter the full catalog is returned;
// with one, the single service plus the surcharge and discount tables.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("serviceType")
	if raw == "" {
		catalog := domain.ServiceCatalog()
		services := make([]ServiceInfo, 0, len(catalog))
		for _, cfg := range catalog {
			services = append(services, toServiceInfo(cfg))
		}
		handlers.RespondJSON(w, http.StatusOK, CatalogResponse{Services: services})
		return
	}

	serviceType, err := domain.ParseServiceType(raw)
	if err != nil {
		h.logger.Warn("GET /pricing/transparent - Invalid service type: %q", raw)
		handlers.RespondBadRequest(w, codeInvalidServiceType,
			"unknown serviceType, valid values: "+strings.Join(validServiceTypes(), ", "))
		return
	}

	cfg, _ := domain.GetServiceConfig(serviceType)
	handlers.RespondJSON(w, http.StatusOK, ServiceDetailResponse{
		Service:    toServiceInfo(cfg),
		Surcharges: surchargeTable(),
		Discounts:  discountTable(),
	})
}

func validServiceTypes() []string {
	types := domain.ValidServiceTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return names
}
