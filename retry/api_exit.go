package retry

import (
	"errors"

	nostrum_errors "github.com/bfolkens/nostrum/errors"
)

// ExitFor maps a client error to an ExitStrategy. Transport failures,
// 5xx responses and 429s are transient and worth rerunning; any other
// application error reflects the request itself and will not improve
// on retry. A nil error returns StopNow, though Do exits on nil first.
func ExitFor(err error) ExitStrategy {
	if err == nil {
		return StopNow
	}
	var apiErr *nostrum_errors.ApiError
	if !errors.As(err, &apiErr) {
		return StopNow
	}
	switch {
	case apiErr.HttpStatusCode == 0:
		return Continue
	case apiErr.HttpStatusCode == 429:
		return Continue
	case apiErr.HttpStatusCode >= 500:
		return Continue
	default:
		return StopNow
	}
}
