// Package rate keeps the client inside Discord's per-route rate limits.
//
// The default implementation, BucketLimiter, mirrors the remote limiter's
// own accounting: it learns each route's budget from the X-RateLimit-*
// response headers and refuses to send a request it already knows the
// server would reject, sleeping until the route's window resets instead.
package rate

import "net/http"

// Limiter gates outgoing requests per rate-limit bucket.
//
// Wait is called with the route's bucket key before each request and may
// block until the bucket has capacity. Update is called with the response
// headers after each exchange that produced a response, successful or not,
// and feeds the remote accounting back into the local state.
//
// Implementations must be safe for concurrent use: many operations may be
// in flight at once, racing to Wait and Update on the same key. Blocking
// in Wait for one key must never delay callers using a different key.
type Limiter interface {
	Wait(bucket string)
	Update(bucket string, headers http.Header)
}
