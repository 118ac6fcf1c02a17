package ratelimit

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_BurstThenDeny(t *testing.T) {
	b := newBucket(10, 1.0)

	for i := 0; i < 10; i++ {
		assert.True(t, b.take(), "request %d", i+1)
	}
	assert.False(t, b.take(), "bucket should be empty after the burst")
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(10, 1.0)
	for i := 0; i < 10; i++ {
		b.take()
	}

	time.Sleep(1100 * time.Millisecond)

	assert.True(t, b.take(), "one token should have refilled")
	assert.False(t, b.take())
}

func TestBucket_Status(t *testing.T) {
	b := newBucket(10, 1.0)
	for i := 0; i < 5; i++ {
		b.take()
	}

	remaining, reset := b.status()
	assert.Equal(t, 5, remaining)
	assert.False(t, reset.Before(time.Now()), "reset time should not be in the past")
}

func TestLimiter_DefaultBudget(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/colleges", http.MethodGet)
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/colleges", http.MethodGet)
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Positive(t, info.RetryAfter)
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/colleges", http.MethodGet)
		require.True(t, allowed, "whitelisted request %d", i+1)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("192.168.1.1", "/colleges", http.MethodGet)
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/colleges", http.MethodGet)
		require.True(t, allowed, "request %d with limiting disabled", i+1)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_AdviseBudget(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/advise", Method: http.MethodPost, Limit: 5, Window: time.Hour, Burst: 5},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/advise", http.MethodPost)
		require.True(t, allowed, "advise request %d", i+1)
		assert.Equal(t, 5, info.Limit)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/advise", http.MethodPost)
	assert.False(t, allowed)
	assert.Equal(t, 5, info.Limit)

	// Catalog reads still run on the default budget.
	allowed, info = limiter.Allow("127.0.0.1", "/colleges", http.MethodGet)
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/colleges", http.MethodGet); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_BurstBelowLimit(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/advise", Method: http.MethodPost, Limit: 10, Window: time.Minute, Burst: 5},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/advise", http.MethodPost)
		require.True(t, allowed, "burst request %d", i+1)
	}

	allowed, _ := limiter.Allow("127.0.0.1", "/advise", http.MethodPost)
	assert.False(t, allowed, "burst capacity caps immediate requests below the window limit")
}

func TestLimiter_DropStale(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		clientID := fmt.Sprintf("127.0.0.%d", i+1)
		allowed, _ := limiter.Allow(clientID, "/colleges", http.MethodGet)
		require.True(t, allowed)
	}

	// Everything is fresh; nothing should be dropped.
	limiter.dropStale(time.Now().Add(-staleAfter))
	limiter.mu.Lock()
	assert.Len(t, limiter.buckets, 10)
	limiter.mu.Unlock()

	// A cutoff in the future treats every bucket as stale.
	limiter.dropStale(time.Now().Add(time.Second))
	limiter.mu.Lock()
	assert.Empty(t, limiter.buckets)
	assert.Empty(t, limiter.lastSeen)
	limiter.mu.Unlock()
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/colleges", http.MethodGet)
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/health", Method: http.MethodGet, Limit: 1, Window: time.Minute},
	}

	got := MatchEndpoint("/health", http.MethodGet, configs)
	require.NotNil(t, got)
	assert.Zero(t, got.Limit, "health check must never be limited")
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/colleges/", Method: http.MethodGet, Limit: 30, Window: time.Minute},
	}

	got := MatchEndpoint("/colleges/rice", http.MethodGet, configs)
	require.NotNil(t, got)
	assert.Equal(t, 30, got.Limit)

	assert.Nil(t, MatchEndpoint("/colleges/rice", http.MethodPost, configs))
	assert.Nil(t, MatchEndpoint("/catalog/states", http.MethodGet, configs))
}
