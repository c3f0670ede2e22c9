package application

import (
	"fmt"
	"sync"
	"time"
)

type rateLimitEntry struct {
	count     int
	resetTime time.Time
}

// RateLimiter is a fixed-window limiter keyed by an arbitrary identifier
// (IP, email, user id). Used to guard login attempts.
type RateLimiter struct {
	limits map[string]*rateLimitEntry
	mu     sync.Mutex
	window time.Duration
	limit  int
}

// NewRateLimiter starts a limiter allowing limit requests per window and a
// background sweep of expired entries.
func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		limits: make(map[string]*rateLimitEntry),
		window: window,
		limit:  limit,
	}

	go rl.cleanupLoop()

	return rl
}

// Allow records an attempt and reports whether it is within the limit.
func (rl *RateLimiter) Allow(identifier string) (bool, error) {
	if identifier == "" {
		identifier = "anonymous"
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, exists := rl.limits[identifier]

	if !exists || now.After(entry.resetTime) {
		rl.limits[identifier] = &rateLimitEntry{
			count:     1,
			resetTime: now.Add(rl.window),
		}
		return true, nil
	}

	if entry.count >= rl.limit {
		untilReset := entry.resetTime.Sub(now)
		return false, fmt.Errorf("too many attempts, retry in %v", untilReset.Round(time.Second))
	}

	entry.count++
	return true, nil
}

// Reset clears the counter for an identifier, e.g. after a successful login.
func (rl *RateLimiter) Reset(identifier string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.limits, identifier)
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.cleanup()
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for id, entry := range rl.limits {
		if now.After(entry.resetTime) {
			delete(rl.limits, id)
		}
	}
}
