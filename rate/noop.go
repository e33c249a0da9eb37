package rate

import "net/http"

// NoopLimiter disables client-side gating entirely. Useful against mock
// servers and in tests; against the real API the server will answer 429
// once the budget runs out.
type NoopLimiter struct {
}

var _ Limiter = &NoopLimiter{}

func (n NoopLimiter) Wait(_ string) {
}

func (n NoopLimiter) Update(_ string, _ http.Header) {
}
