package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/metrics"
	"Backend-FormCraft/src/models"
)

// Cache stores computed form analytics in Redis. A nil *Cache, or one built
// without a client, is a no-op so callers never need to check.
//
// Entries are keyed by the form's updatedAt and a per-form generation that
// Bump increments on every new response or view, so stale entries are never
// read and simply expire.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) enabled() bool {
	return c != nil && c.rdb != nil && c.ttl > 0
}

func genKey(formID string) string {
	return "formcraft:analytics:gen:" + formID
}

// Bump invalidates every cached analytics entry of a form.
func (c *Cache) Bump(ctx context.Context, formID string) {
	if !c.enabled() {
		return
	}
	if err := c.rdb.Incr(ctx, genKey(formID)).Err(); err != nil {
		logger.Warnf("⚠️ [analytics] bump cache generation for %s: %v", formID, err)
	}
}

// Key names the entry for the current state of form, or "" when caching is
// off. It must be taken before the records are loaded: a write that lands
// during the load bumps the generation and leaves the entry unreachable.
func (c *Cache) Key(ctx context.Context, form *models.Form, g GroupBy) string {
	if !c.enabled() {
		return ""
	}
	gen, err := c.rdb.Get(ctx, genKey(form.ID.Hex())).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		metrics.AnalyticsCache.WithLabelValues("error").Inc()
		logger.Warnf("⚠️ [analytics] read cache generation for %s: %v", form.ID.Hex(), err)
		return ""
	}
	return fmt.Sprintf("formcraft:analytics:%s:%d:%d:%s",
		form.ID.Hex(), form.UpdatedAt.UnixNano(), gen, g)
}

// cacheEntry keeps the submission times next to the report so the rolling
// respondent windows are measured at read time.
type cacheEntry struct {
	Report    *models.FormAnalytics `json:"report"`
	Submitted []time.Time           `json:"submitted"`
}

// Get returns the report stored under key with its stats measured at now.
func (c *Cache) Get(ctx context.Context, key string, now time.Time) (*models.FormAnalytics, bool) {
	if !c.enabled() || key == "" {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.AnalyticsCache.WithLabelValues("miss").Inc()
		} else {
			metrics.AnalyticsCache.WithLabelValues("error").Inc()
		}
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil || entry.Report == nil {
		metrics.AnalyticsCache.WithLabelValues("error").Inc()
		return nil, false
	}
	metrics.AnalyticsCache.WithLabelValues("hit").Inc()
	entry.Report.Stats = statsAt(entry.Submitted, entry.Report.Stats.TotalViews, now)
	return entry.Report, true
}

// Set stores a report built from responses under key. Failures are logged
// and otherwise ignored.
func (c *Cache) Set(ctx context.Context, key string, report *models.FormAnalytics, responses []models.Response) {
	if !c.enabled() || key == "" {
		return
	}
	entry := cacheEntry{Report: report, Submitted: make([]time.Time, len(responses))}
	for i := range responses {
		entry.Submitted[i] = responses[i].SubmittedAt
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Warnf("⚠️ [analytics] cache set %s: %v", key, err)
	}
}
