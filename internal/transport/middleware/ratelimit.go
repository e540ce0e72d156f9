package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/wordbot-backend/pkg/ctxutil"
)

// RateLimiter implements per-client token bucket rate limiting. A client is
// the authenticated owner when known, otherwise the remote IP.
type RateLimiter struct {
	maxKeys int
	idleTTL time.Duration
}

// NewRateLimiter creates a rate limiter tracking at most maxKeys clients.
// A client's bucket is dropped once it has been idle for idleTTL.
func NewRateLimiter(maxKeys int, idleTTL time.Duration) *RateLimiter {
	if maxKeys <= 0 {
		maxKeys = 10_000
	}
	return &RateLimiter{maxKeys: maxKeys, idleTTL: idleTTL}
}

// Limit returns middleware that rate-limits requests to maxPerMinute per client.
// Each call keeps its own buckets, so different routes can have different limits.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	buckets := expirable.NewLRU[string, *rate.Limiter](rl.maxKeys, nil, rl.idleTTL)
	var mu sync.Mutex
	every := rate.Limit(float64(maxPerMinute) / 60.0)

	get := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := buckets.Get(key)
		if !ok {
			l = rate.NewLimiter(every, maxPerMinute)
		}
		buckets.Add(key, l) // refreshes the idle deadline
		return l
	}

	retryAfter := strconv.Itoa(int(60.0/float64(maxPerMinute)) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !get(clientKey(r)).Allow() {
				w.Header().Set("Retry-After", retryAfter)
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if ownerID, ok := ctxutil.OwnerIDFromCtx(r.Context()); ok {
		return "owner:" + strconv.FormatInt(ownerID, 10)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
