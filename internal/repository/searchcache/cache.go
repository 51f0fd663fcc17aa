package searchcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobboard/internal/db"
	"github.com/kailas-cloud/jobboard/internal/domain/search/query"
	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

// Key layout.
const (
	keyPrefix     = "jobboard:facets:"
	GenerationKey = keyPrefix + "gen"
	DefaultTTL    = 30 * time.Second
)

// searcher is the decorated search repository.
type searcher interface {
	SearchJobs(ctx context.Context, f query.JobFilter) ([]result.Job, error)
	SearchJobsWithFacets(ctx context.Context, req query.FacetRequest) (result.FacetResult, error)
}

// store is the consumer interface for the result cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	IncrBy(ctx context.Context, key string, val int64) error
}

// Cached caches faceted search pages in a key-value store.
//
// Keys are namespaced by a generation counter. Invalidate bumps the counter, so
// every page cached before a write becomes unreachable and expires by TTL.
type Cached struct {
	inner      searcher
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner searcher,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cached {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cached{inner: inner, store: s, ttl: ttl, cacheTotal: cacheTotal, logger: logger}
}

// SearchJobs is not cached.
func (c *Cached) SearchJobs(ctx context.Context, f query.JobFilter) ([]result.Job, error) {
	return c.inner.SearchJobs(ctx, f)
}

// SearchJobsWithFacets returns a cached page or runs the inner search.
// Cache failures are logged and bypassed.
func (c *Cached) SearchJobsWithFacets(ctx context.Context, req query.FacetRequest) (result.FacetResult, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		c.logger.Warn("Failed to read facet cache generation", zap.Error(err))
		return c.inner.SearchJobsWithFacets(ctx, req)
	}

	key := cacheKey(gen, req)
	if res, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return res, nil
	}
	c.incCache("miss")

	res, err := c.inner.SearchJobsWithFacets(ctx, req)
	if err != nil {
		return result.FacetResult{}, err
	}

	c.putToCache(ctx, key, res)
	return res, nil
}

// Invalidate moves the cache to a new generation.
func (c *Cached) Invalidate(ctx context.Context) error {
	if err := c.store.IncrBy(ctx, GenerationKey, 1); err != nil {
		return fmt.Errorf("bump facet cache generation: %w", err)
	}
	return nil
}

func (c *Cached) generation(ctx context.Context) (int64, error) {
	data, err := c.store.Get(ctx, GenerationKey)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, err
	}
	gen, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse generation %q: %w", data, err)
	}
	return gen, nil
}

func (c *Cached) incCache(res string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(res).Inc()
	}
}

func (c *Cached) getFromCache(ctx context.Context, key string) (result.FacetResult, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached facet page", zap.String("key", key), zap.Error(err))
		}
		return result.FacetResult{}, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		c.logger.Warn("Failed to parse cached facet page", zap.String("key", key), zap.Error(err))
		return result.FacetResult{}, false
	}
	return e.toResult(), true
}

func (c *Cached) putToCache(ctx context.Context, key string, res result.FacetResult) {
	data, err := json.Marshal(fromResult(res))
	if err != nil {
		c.logger.Warn("Failed to encode facet page", zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache facet page", zap.String("key", key), zap.Error(err))
	}
}

// requestKey is the canonical form of a request for hashing.
type requestKey struct {
	Keyword  string `json:"k"`
	Location string `json:"l"`
	From     string `json:"f"`
	To       string `json:"t"`
	Page     int    `json:"p"`
	Size     int    `json:"s"`
}

func cacheKey(gen int64, req query.FacetRequest) string {
	data, _ := json.Marshal(requestKey{
		Keyword:  req.Keyword,
		Location: req.Location,
		From:     req.Created.From,
		To:       req.Created.To,
		Page:     req.Page.Number(),
		Size:     req.Page.Size(),
	})
	h := sha256.Sum256(data)
	return keyPrefix + strconv.FormatInt(gen, 10) + ":" + hex.EncodeToString(h[:])
}
