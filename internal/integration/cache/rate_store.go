// Package cache implements adapter interfaces backed by Redis.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/application/adapter"
)

// blueRateKey is the Redis key holding the current blue rate.
const blueRateKey = "ledgerboard:blue_rate"

// rateStore implements the adapter.RateStore interface on top of Redis.
// The rate is a single value replaced atomically on each update, so a plain
// SET/GET pair is all the coordination it needs.
type rateStore struct {
	client      *redis.Client
	defaultRate decimal.Decimal
}

// NewRateStore creates a new Redis-backed rate store. defaultRate is returned
// whenever no rate has been stored yet.
func NewRateStore(client *redis.Client, defaultRate decimal.Decimal) adapter.RateStore {
	return &rateStore{
		client:      client,
		defaultRate: defaultRate,
	}
}

// Get returns the current blue rate, falling back to the configured default
// when the key is missing.
func (s *rateStore) Get(ctx context.Context) (decimal.Decimal, error) {
	value, err := s.client.Get(ctx, blueRateKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return s.defaultRate, nil
		}
		return decimal.Zero, fmt.Errorf("failed to read blue rate: %w", err)
	}

	rate, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("corrupt blue rate value %q: %w", value, err)
	}
	return rate, nil
}

// Set replaces the stored blue rate.
func (s *rateStore) Set(ctx context.Context, rate decimal.Decimal) error {
	if err := s.client.Set(ctx, blueRateKey, rate.String(), 0).Err(); err != nil {
		return fmt.Errorf("failed to store blue rate: %w", err)
	}
	return nil
}
