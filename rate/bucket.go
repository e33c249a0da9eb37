package rate

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Rate-limit response headers. All three must be present for a bucket
// update to take effect; each is an integer-valued string, with Reset
// expressed in unix seconds.
const (
	HeaderLimit     = "X-RateLimit-Limit"
	HeaderRemaining = "X-RateLimit-Remaining"
	HeaderReset     = "X-RateLimit-Reset"
)

// Bucket is a snapshot of one route's rate-limit accounting.
type Bucket struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// BucketLimiter is the header-driven Limiter used by default.
//
// Buckets are created lazily, the first time a route's response carries
// the full header triple, and live for the process lifetime. Updates are
// last-write-wins per triple: under concurrency the local view may lag
// the server's true counter, which is fine because the server stays the
// final authority and rejects anything the local gate lets through early.
type BucketLimiter struct {
	mu      sync.Mutex
	buckets map[string]*Bucket

	// injectable for tests
	now   func() time.Time
	sleep func(d time.Duration)
}

var _ Limiter = &BucketLimiter{}

func NewBucketLimiter() *BucketLimiter {
	return &BucketLimiter{
		buckets: make(map[string]*Bucket),
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// Wait returns immediately when the bucket is unknown, still has
// remaining capacity, or its window has already rolled over. Otherwise
// it sleeps until ResetAt. The sleep happens outside the store lock so
// a throttled route never stalls traffic to other routes, and it is
// bounded by ResetAt so a miscomputed reset cannot block forever.
func (l *BucketLimiter) Wait(bucket string) {
	l.mu.Lock()
	var wait time.Duration
	if b, ok := l.buckets[bucket]; ok && b.Remaining <= 0 {
		wait = b.ResetAt.Sub(l.now())
	}
	l.mu.Unlock()

	if wait > 0 {
		l.sleep(wait)
	}
}

// Update overwrites the bucket for the key with the header triple. When
// any of the three headers is absent or unparsable the existing bucket is
// left untouched, so a route that stops reporting limits keeps behaving
// as last observed and a route that never reported any is unconstrained.
func (l *BucketLimiter) Update(bucket string, headers http.Header) {
	limit, ok := headerInt(headers, HeaderLimit)
	if !ok {
		return
	}
	remaining, ok := headerInt(headers, HeaderRemaining)
	if !ok {
		return
	}
	reset, ok := headerInt(headers, HeaderReset)
	if !ok {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.buckets[bucket] = &Bucket{
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   time.Unix(int64(reset), 0),
	}
}

// Snapshot returns a copy of the bucket for the key, if one has been
// observed yet.
func (l *BucketLimiter) Snapshot(bucket string) (Bucket, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[bucket]
	if !ok {
		return Bucket{}, false
	}
	return *b, true
}

func headerInt(headers http.Header, name string) (int, bool) {
	v := headers.Get(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
