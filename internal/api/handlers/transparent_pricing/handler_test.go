package transparent_pricing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
	"github.com/quickstampnotary/QSN-PricingService/internal/service/transparent"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakePricingService struct {
	lastRequest *domain.PricingRequest
}

func (s *fakePricingService) CalculateTransparentPricing(_ context.Context, req *domain.PricingRequest) *transparent.Quote {
	s.lastRequest = req
	return &transparent.Quote{
		Breakdown: &domain.PricingBreakdown{
			ServiceType: req.ServiceType,
			BasePrice:   75,
			TotalPrice:  75,
		},
		Metadata: transparent.Metadata{Version: transparent.QuoteVersion},
	}
}

func postQuote(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/transparent", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleQuote(rec, req)
	return rec
}

func TestHandleQuote_Success(t *testing.T) {
	svc := &fakePricingService{}
	h := NewHandler(svc, noopLogger{})

	rec := postQuote(t, h, `{"serviceType":"STANDARD_NOTARY","documentCount":2,"signerCount":1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastRequest)
	assert.Equal(t, domain.ServiceStandardNotary, svc.lastRequest.ServiceType)
	assert.Equal(t, 2, svc.lastRequest.DocumentCount)

	var quote transparent.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, 75.0, quote.Breakdown.TotalPrice)
}

func TestHandleQuote_DefaultsCountsToOne(t *testing.T) {
	svc := &fakePricingService{}
	h := NewHandler(svc, noopLogger{})

	rec := postQuote(t, h, `{"serviceType":"RON_SERVICES"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.lastRequest.DocumentCount)
	assert.Equal(t, 1, svc.lastRequest.SignerCount)
	assert.Equal(t, domain.CustomerNew, svc.lastRequest.CustomerType)
}

func TestHandleQuote_MissingServiceType(t *testing.T) {
	h := NewHandler(&fakePricingService{}, noopLogger{})

	rec := postQuote(t, h, `{"documentCount":1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, codeMissingServiceType, resp["code"])
}

func TestHandleQuote_InvalidServiceTypeListsValidOnes(t *testing.T) {
	h := NewHandler(&fakePricingService{}, noopLogger{})

	rec := postQuote(t, h, `{"serviceType":"NOT_REAL"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, codeInvalidServiceType, resp["code"])
	assert.Contains(t, resp["error"], "STANDARD_NOTARY")
	assert.Contains(t, resp["error"], "RON_SERVICES")
}

func TestHandleQuote_InvalidScheduledDateTime(t *testing.T) {
	h := NewHandler(&fakePricingService{}, noopLogger{})

	rec := postQuote(t, h, `{"serviceType":"STANDARD_NOTARY","scheduledDateTime":"tomorrow"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, codeInvalidDateTime, resp["code"])
}

func TestHandleQuote_InvalidBody(t *testing.T) {
	h := NewHandler(&fakePricingService{}, noopLogger{})

	rec := postQuote(t, h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCatalog_FullCatalog(t *testing.T) {
	h := NewHandler(&fakePricingService{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pricing/transparent", nil)
	rec := httptest.NewRecorder()
	h.HandleCatalog(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Services, 7)
}

func TestHandleCatalog_SingleServiceWithTables(t *testing.T) {
	h := NewHandler(&fakePricingService{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pricing/transparent?serviceType=STANDARD_NOTARY", nil)
	rec := httptest.NewRecorder()
	h.HandleCatalog(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ServiceDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.ServiceStandardNotary, resp.Service.ServiceType)
	assert.Equal(t, 75.0, resp.Service.BasePrice)
	assert.Len(t, resp.Surcharges, 4)
	assert.Len(t, resp.Discounts, 4)
}

func TestHandleCatalog_UnknownService(t *testing.T) {
	h := NewHandler(&fakePricingService{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pricing/transparent?serviceType=NOT_REAL", nil)
	rec := httptest.NewRecorder()
	h.HandleCatalog(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
