// Package ratelimit throttles API clients with per-endpoint token
// buckets. Advising requests fan out to research fetches and Gemini
// calls, so POST /advise carries a far tighter budget than catalog
// reads; GET /health is never limited.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// staleAfter is how long an idle client keeps its buckets before the
// cleanup loop drops them.
const staleAfter = time.Hour

// bucket is a single token bucket. Tokens refill continuously at
// perSecond up to capacity; each allowed request spends one.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	perSecond  float64
	tokens     float64
	lastRefill time.Time
}

func newBucket(capacity int, perSecond float64) *bucket {
	return &bucket{
		capacity:   float64(capacity),
		perSecond:  perSecond,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// refillLocked advances the bucket clock. Caller holds mu.
func (b *bucket) refillLocked(now time.Time) {
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = math.Min(b.capacity, b.tokens+elapsed*b.perSecond)
	b.lastRefill = now
}

// take spends one token if available.
func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refillLocked(time.Now())
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// status reports the remaining whole tokens and when the bucket will
// be full again, without spending anything.
func (b *bucket) status() (remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)

	remaining = int(b.tokens)
	if b.tokens >= b.capacity {
		return remaining, now
	}
	wait := (b.capacity - b.tokens) / b.perSecond
	return remaining, now.Add(time.Duration(wait * float64(time.Second)))
}

// Info describes the rate-limit outcome for one request. The server
// copies it into X-RateLimit-* headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter-wide settings. Per-endpoint budgets live in
// EndpointConfigs; everything else uses the default limit.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one token bucket per client+endpoint pair.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	lastSeen map[string]time.Time
	config   *Config

	ticker *time.Ticker
	stop   chan struct{}
}

// NewLimiter builds a limiter. A nil config enables limiting with a
// generous default budget.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets:  make(map[string]*bucket),
		lastSeen: make(map[string]time.Time),
		config:   config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.stop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow decides whether a request from clientID may hit the endpoint
// and reports the budget state either way.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	endpoint := MatchEndpoint(path, method, l.config.EndpointConfigs)
	if endpoint == nil {
		endpoint = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
		}
	}
	if endpoint.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	b := l.bucketFor(clientID+":"+method+":"+path, endpoint)

	allowed := b.take()
	remaining, reset := b.status()

	info := Info{
		Allowed:   allowed,
		Limit:     endpoint.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if wait := time.Until(reset); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return allowed, info
}

// bucketFor returns the bucket for a client+endpoint key, creating it
// on first use. Burst sets the capacity; zero burst falls back to the
// per-window limit.
func (l *Limiter) bucketFor(key string, endpoint *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastSeen[key] = time.Now()
	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := endpoint.Burst
	if capacity <= 0 {
		capacity = endpoint.Limit
	}
	b := newBucket(capacity, float64(endpoint.Limit)/endpoint.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.dropStale(time.Now().Add(-staleAfter))
		case <-l.stop:
			return
		}
	}
}

// dropStale removes buckets for clients idle past the cutoff so the
// bucket map cannot grow without bound.
func (l *Limiter) dropStale(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, seen := range l.lastSeen {
		if seen.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastSeen, key)
		}
	}
}

// Stop halts the cleanup loop.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
