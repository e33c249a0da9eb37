package rate

import (
	"context"
	"net/http"

	xrate "golang.org/x/time/rate"
)

// StaticLimiter caps the overall request rate to a fixed requests-per-second
// budget regardless of route, on top of whatever the server reports. It
// ignores response headers; combine it with a BucketLimiter via Chain when
// both behaviors are wanted.
type StaticLimiter struct {
	limiter *xrate.Limiter
}

var _ Limiter = &StaticLimiter{}

func NewStaticLimiter(rps float64, burst int) *StaticLimiter {
	return &StaticLimiter{
		limiter: xrate.NewLimiter(xrate.Limit(rps), burst),
	}
}

func (s *StaticLimiter) Wait(_ string) {
	// The token bucket bounds the wait by burst/rps; no external cancel.
	_ = s.limiter.Wait(context.Background())
}

func (s *StaticLimiter) Update(_ string, _ http.Header) {
}

// Chain composes limiters; Wait and Update run in order through all of
// them. A typical chain is NewStaticLimiter(...) then NewBucketLimiter().
func Chain(limiters ...Limiter) Limiter {
	return chain(limiters)
}

type chain []Limiter

func (c chain) Wait(bucket string) {
	for _, l := range c {
		l.Wait(bucket)
	}
}

func (c chain) Update(bucket string, headers http.Header) {
	for _, l := range c {
		l.Update(bucket, headers)
	}
}
