package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/repairshop-service/internal/domain"
)

// CustomerCache caches customer records in Redis, keyed by id. Saves
// invalidate the entry so the ticket workflow never sees a stale active
// flag beyond the TTL window. Safe to use with a nil receiver; every
// method degrades to a miss.
type CustomerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCustomerCache builds the cache. A nil client disables caching.
func NewCustomerCache(client *redis.Client, ttl time.Duration) *CustomerCache {
	if client == nil || ttl <= 0 {
		return nil
	}
	return &CustomerCache{client: client, ttl: ttl}
}

func customerKey(id int64) string {
	return fmt.Sprintf("customer:%d", id)
}

// Get returns the cached customer or (nil, false) on a miss. Redis
// failures are treated as misses.
func (c *CustomerCache) Get(ctx context.Context, id int64) (*domain.Customer, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, customerKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var customer domain.Customer
	if err := json.Unmarshal(payload, &customer); err != nil {
		return nil, false
	}
	return &customer, true
}

// Set stores the customer with the configured TTL.
func (c *CustomerCache) Set(ctx context.Context, customer *domain.Customer) {
	if c == nil || customer == nil {
		return
	}
	payload, err := json.Marshal(customer)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, customerKey(customer.ID), payload, c.ttl).Err()
}

// Invalidate drops the cached entry after a save.
func (c *CustomerCache) Invalidate(ctx context.Context, id int64) {
	if c == nil {
		return
	}
	_ = c.client.Del(ctx, customerKey(id)).Err()
}
