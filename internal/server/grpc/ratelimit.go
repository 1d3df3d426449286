package grpc

import (
	"fmt"
	"net"
	"sync"

	"golang.org/x/time/rate"
)

// maxTrackedPeers bounds the limiter map; past it the map is reset.
const maxTrackedPeers = 10000

// RateLimiter keeps one token bucket per key.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

// NewRateLimiter allows perSecond events per key with the given burst.
// A zero perSecond disables limiting.
func NewRateLimiter(perSecond float64, burst int) (*RateLimiter, error) {
	if perSecond < 0 {
		return nil, fmt.Errorf("invalid auth rate limit: %v", perSecond)
	}
	if perSecond > 0 && burst < 1 {
		return nil, fmt.Errorf("invalid auth rate burst: %d", burst)
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}, nil
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= maxTrackedPeers {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Allow reports whether one more event for key may happen now.
func (rl *RateLimiter) Allow(key string) bool {
	if rl.rate == 0 {
		return true
	}
	return rl.getLimiter(key).Allow()
}

func hostOf(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
