package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/repairshop-service/internal/domain"
)

func TestNewCustomerCacheDisabledWithoutClient(t *testing.T) {
	assert.Nil(t, NewCustomerCache(nil, time.Minute))
}

func TestNilCustomerCacheIsSafe(t *testing.T) {
	var cache *CustomerCache
	ctx := context.Background()

	customer, ok := cache.Get(ctx, 1)
	assert.Nil(t, customer)
	assert.False(t, ok)

	// no-ops, must not panic
	cache.Set(ctx, &domain.Customer{ID: 1})
	cache.Invalidate(ctx, 1)
}

func TestCustomerKey(t *testing.T) {
	assert.Equal(t, "customer:42", customerKey(42))
}
