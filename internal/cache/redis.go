// Package cache holds the Redis-backed flight search cache. It is a
// best-effort layer: every method tolerates a missing client and every
// Redis error degrades to a cache miss, so the database stays the source
// of truth and the service runs fine without Redis at all. Entries
// expire after the configured TTL, which also bounds how long an
// administrative flight edit can stay invisible to searches.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/skyops/airline-backoffice/internal/config"
	"github.com/skyops/airline-backoffice/internal/repository"
)

// SearchCache stores flight search results keyed by the filter triple.
type SearchCache struct {
	client *redis.Client
	cfg    config.CacheConfig
}

// NewSearchCache builds a SearchCache. A nil client disables it.
func NewSearchCache(cfg config.CacheConfig, client *redis.Client) *SearchCache {
	return &SearchCache{client: client, cfg: cfg}
}

// Enabled reports whether lookups will actually hit Redis.
func (s *SearchCache) Enabled() bool {
	return s != nil && s.client != nil && s.cfg.Enabled
}

// Get returns the cached rows for a filter combination and whether the
// lookup was a hit. Any Redis or decoding problem reads as a miss.
func (s *SearchCache) Get(ctx context.Context, q repository.FlightSearchQuery) ([]repository.FlightRow, bool) {
	if !s.Enabled() {
		return nil, false
	}
	data, err := s.client.Get(ctx, s.key(q)).Bytes()
	if err != nil {
		return nil, false
	}
	var rows []repository.FlightRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

// Set stores the rows for a filter combination. Failures are dropped;
// the next search simply misses.
func (s *SearchCache) Set(ctx context.Context, q repository.FlightSearchQuery, rows []repository.FlightRow) {
	if !s.Enabled() {
		return
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}
	_ = s.client.Set(ctx, s.key(q), payload, s.cfg.TTL).Err()
}

// key derives a stable cache key from the filter triple. The raw values
// are hashed so arbitrary user input never becomes Redis key syntax.
func (s *SearchCache) key(q repository.FlightSearchQuery) string {
	price := "-"
	if q.MaxPrice != nil {
		price = strconv.FormatFloat(*q.MaxPrice, 'g', -1, 64)
	}
	tail := strings.Join([]string{strings.ToLower(q.Destination), price, q.Departure}, "|")
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:search:%x", s.cfg.Prefix, sum[:])
}
