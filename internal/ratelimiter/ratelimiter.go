package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type Limiter interface {
	Allow(ip string) (bool, time.Duration)
}

// IPRateLimiter keeps one token bucket per client IP. Buckets refill at
// RequestsPerTimeFrame tokens per TimeFrame and idle entries are dropped in
// the background so the map does not grow without bound.
type IPRateLimiter struct {
	sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	window  time.Duration
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(requests int, window time.Duration) *IPRateLimiter {
	rl := &IPRateLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(float64(requests) / window.Seconds()),
		burst:   requests,
		window:  window,
	}
	go rl.cleanup()
	return rl
}

func (rl *IPRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.Lock()
	c, ok := rl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = time.Now()
	rl.Unlock()

	if c.limiter.Allow() {
		return true, 0
	}
	return false, rl.window
}

func (rl *IPRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	for range ticker.C {
		rl.Lock()
		for ip, c := range rl.clients {
			if time.Since(c.lastSeen) > 3*rl.window {
				delete(rl.clients, ip)
			}
		}
		rl.Unlock()
	}
}
