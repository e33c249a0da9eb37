package rate

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_StaticLimiter_allows_burst(t *testing.T) {
	l := NewStaticLimiter(1000, 5)

	start := time.Now()
	for i := 0; i < 5; i++ {
		l.Wait(testBucket)
	}
	assert.Less(t, time.Since(start), time.Second)
}

func Test_StaticLimiter_ignores_headers(t *testing.T) {
	l := NewStaticLimiter(1000, 1)

	l.Update(testBucket, rateHeaders("5", "0", "1700000060"))
	// With no bucket accounting, Wait stays bound by the token bucket only.
	l.Wait(testBucket)
}

func Test_Chain_runs_all_limiters_in_order(t *testing.T) {
	first := &orderedLimiter{}
	second := &orderedLimiter{}
	c := Chain(first, second)

	c.Wait(testBucket)
	c.Update(testBucket, rateHeaders("5", "4", "1700000060"))

	assert.Equal(t, []string{"wait", "update"}, first.calls)
	assert.Equal(t, []string{"wait", "update"}, second.calls)
}

type orderedLimiter struct {
	calls []string
}

var _ Limiter = &orderedLimiter{}

func (o *orderedLimiter) Wait(_ string) {
	o.calls = append(o.calls, "wait")
}

func (o *orderedLimiter) Update(_ string, _ http.Header) {
	o.calls = append(o.calls, "update")
}
