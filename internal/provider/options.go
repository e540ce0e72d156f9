package provider

import (
	"time"

	"golang.org/x/time/rate"
)

// ClientOptions configures an external source client. Zero values fall
// back to the client's own defaults.
type ClientOptions struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64
	UserAgent     string
}

// TimeoutOr returns o.Timeout, or def when unset.
func (o ClientOptions) TimeoutOr(def time.Duration) time.Duration {
	if o.Timeout <= 0 {
		return def
	}
	return o.Timeout
}

// BaseURLOr returns o.BaseURL, or def when unset.
func (o ClientOptions) BaseURLOr(def string) string {
	if o.BaseURL == "" {
		return def
	}
	return o.BaseURL
}

// Limiter builds the token bucket that paces calls to one source.
// A non-positive rate disables limiting.
func (o ClientOptions) Limiter() *rate.Limiter {
	if o.RatePerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := int(o.RatePerSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(o.RatePerSecond), burst)
}
