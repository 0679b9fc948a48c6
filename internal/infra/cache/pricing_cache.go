package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
)

// Logger is the logging dependency.
type Logger interface {
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Metrics is the subset of service metrics the cache reports to.
type Metrics interface {
	IncCacheHit()
	IncCacheMiss()
}

const keyPrefix = "pricing:quote:"

// PricingCache is a best-effort read-through cache for computed
// breakdowns. The TTL is short because prices are time-sensitive
// (surcharge windows shift continuously). Every Redis failure degrades
// to a miss; the cache never surfaces an error to callers.
type PricingCache struct {
	client  *redis.Client
	ttl     time.Duration
	logger  Logger
	metrics Metrics
}

// New creates a pricing cache. client may be nil when Redis is disabled;
// every lookup is then a miss.
func New(client *redis.Client, ttl time.Duration, logger Logger, metrics Metrics) *PricingCache {
	return &PricingCache{client: client, ttl: ttl, logger: logger, metrics: metrics}
}

// Key derives the cache key from the normalized request fields. Requests
// differing only in irrelevant ways (address casing/spacing, sub-minute
// scheduling precision) hash identically.
func (c *PricingCache) Key(req *domain.PricingRequest) string {
	schedule := ""
	if req.ScheduledDateTime != nil {
		schedule = req.ScheduledDateTime.UTC().Truncate(time.Minute).Format(time.RFC3339)
	}

	normalized := fmt.Sprintf("%s|%d|%d|%s|%s|%s|%d|%s|%s",
		req.ServiceType,
		req.DocumentCount,
		req.SignerCount,
		strings.ToLower(strings.Join(strings.Fields(req.Address), " ")),
		schedule,
		req.CustomerType,
		req.CompletedBookings,
		strings.ToUpper(strings.TrimSpace(req.PromoCode)),
		strings.TrimSpace(req.ReferralCode),
	)

	sum := sha256.Sum256([]byte(normalized))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached breakdown for the key, or (nil, false) on miss
// or any cache failure.
func (c *PricingCache) Get(ctx context.Context, key string) (*domain.PricingBreakdown, bool) {
	if c.client == nil {
		c.miss()
		return nil, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("PricingCache: get failed, degrading to miss: %v", err)
		}
		c.miss()
		return nil, false
	}

	var breakdown domain.PricingBreakdown
	if err := json.Unmarshal(raw, &breakdown); err != nil {
		c.logger.Warn("PricingCache: corrupt entry for key=%s, degrading to miss: %v", key, err)
		c.miss()
		return nil, false
	}

	if c.metrics != nil {
		c.metrics.IncCacheHit()
	}
	return &breakdown, true
}

// Set stores the breakdown under the key, best effort.
func (c *PricingCache) Set(ctx context.Context, key string, breakdown *domain.PricingBreakdown) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(breakdown)
	if err != nil {
		c.logger.Warn("PricingCache: marshal failed for key=%s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("PricingCache: set failed for key=%s: %v", key, err)
	}
}

func (c *PricingCache) miss() {
	if c.metrics != nil {
		c.metrics.IncCacheMiss()
	}
}
