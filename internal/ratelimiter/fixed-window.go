package ratelimiter

import (
	"sync"
	"time"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type window struct {
	count   int
	resetAt time.Time
}

// FixedWindowRateLimiter counts requests per client IP in fixed windows.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	frame   time.Duration
}

func NewFixedWindowLimiter(limit int, frame time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		frame:   frame,
	}
}

// Allow reports whether the request may proceed and, when it may not, how
// long until the client's window resets.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.clients[ip]
	if !ok || now.After(w.resetAt) {
		rl.clients[ip] = &window{count: 1, resetAt: now.Add(rl.frame)}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}

	return false, time.Until(w.resetAt)
}
