// Package cache implements adapter interfaces backed by Redis.
package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func TestRateStore(t *testing.T) {
	ctx := context.Background()
	defaultRate := decimal.NewFromInt(1000)

	t.Run("missing key falls back to the default", func(t *testing.T) {
		client, _ := newTestClient(t)
		store := NewRateStore(client, defaultRate)

		rate, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rate.Equal(defaultRate) {
			t.Errorf("expected default rate %s, got %s", defaultRate, rate)
		}
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		client, _ := newTestClient(t)
		store := NewRateStore(client, defaultRate)

		want := decimal.NewFromFloat(1187.50)
		if err := store.Set(ctx, want); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		rate, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !rate.Equal(want) {
			t.Errorf("expected %s, got %s", want, rate)
		}
	})

	t.Run("updates replace the stored value", func(t *testing.T) {
		client, _ := newTestClient(t)
		store := NewRateStore(client, defaultRate)

		_ = store.Set(ctx, decimal.NewFromInt(1100))
		_ = store.Set(ctx, decimal.NewFromInt(1250))

		rate, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !rate.Equal(decimal.NewFromInt(1250)) {
			t.Errorf("expected 1250, got %s", rate)
		}
	})

	t.Run("corrupt value is an error, not a silent default", func(t *testing.T) {
		client, mr := newTestClient(t)
		store := NewRateStore(client, defaultRate)

		if err := mr.Set("ledgerboard:blue_rate", "not-a-number"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		if _, err := store.Get(ctx); err == nil {
			t.Fatal("expected an error for a corrupt rate value")
		}
	})
}
