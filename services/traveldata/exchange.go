// File: services/traveldata/exchange.go
package traveldata

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"tripmesh/models"
	"tripmesh/utils"
)

type exchangeResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// rateMemoCache keeps fetched rates in process so a Redis outage does not
// turn every conversion into an upstream call.
type rateMemoCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]rateMemoEntry
}

type rateMemoEntry struct {
	rate     models.ExchangeRate
	storedAt time.Time
}

func newRateMemoCache(ttl time.Duration) *rateMemoCache {
	return &rateMemoCache{ttl: ttl, entries: make(map[string]rateMemoEntry)}
}

func (c *rateMemoCache) get(key string) (models.ExchangeRate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || time.Since(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return models.ExchangeRate{}, false
	}
	return entry.rate, true
}

func (c *rateMemoCache) set(key string, rate models.ExchangeRate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = rateMemoEntry{rate: rate, storedAt: time.Now()}
}

// ExchangeRate resolves the conversion rate between two currencies via
// exchangerate-api.com, cached in Redis and in process.
func (s *DefaultTravelDataService) ExchangeRate(ctx context.Context, from, to string) (*models.ExchangeRate, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == "" || to == "" {
		return nil, fmt.Errorf("both currencies are required")
	}

	cacheKey := fmt.Sprintf("fx:%s:%s", from, to)
	if rate, ok := s.cachedRate(ctx, cacheKey); ok {
		return &rate, nil
	}

	var payload exchangeResponse
	if err := s.getJSON(ctx, exchangeRateURL+"/"+from, nil, &payload); err != nil {
		return nil, fmt.Errorf("exchange rate lookup failed: %w", err)
	}
	value, ok := payload.Rates[to]
	if !ok {
		return nil, fmt.Errorf("no rate from %s to %s", from, to)
	}

	rate := models.ExchangeRate{
		From: from,
		To:   to,
		Rate: value,
		Date: payload.Date,
		Base: firstNonEmpty(payload.Base, from),
	}
	s.storeRate(ctx, cacheKey, rate)
	return &rate, nil
}

// Rate satisfies the currency converter dependency of the plan pipeline.
func (s *DefaultTravelDataService) Rate(ctx context.Context, from, to string) (float64, error) {
	rate, err := s.ExchangeRate(ctx, from, to)
	if err != nil {
		return 0, err
	}
	return rate.Rate, nil
}

func (s *DefaultTravelDataService) cachedRate(ctx context.Context, key string) (models.ExchangeRate, bool) {
	if rate, ok := s.rates.get(key); ok {
		return rate, true
	}
	if s.cache == nil {
		return models.ExchangeRate{}, false
	}
	raw, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		return models.ExchangeRate{}, false
	}
	var rate models.ExchangeRate
	if err := json.Unmarshal([]byte(raw), &rate); err != nil {
		return models.ExchangeRate{}, false
	}
	s.rates.set(key, rate)
	return rate, true
}

func (s *DefaultTravelDataService) storeRate(ctx context.Context, key string, rate models.ExchangeRate) {
	s.rates.set(key, rate)
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(rate)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.rateCacheTTL).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("Failed to cache exchange rate %s: %v", key, err)
	}
}
