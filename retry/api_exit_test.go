package retry

import (
	"fmt"
	"testing"

	nostrum_errors "github.com/bfolkens/nostrum/errors"

	"github.com/stretchr/testify/assert"
)

func Test_ExitFor(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect ExitStrategy
	}{
		{
			name:   "nil error",
			expect: StopNow,
		},
		{
			name:   "plain error",
			err:    fmt.Errorf("not an api error"),
			expect: StopNow,
		},
		{
			name:   "transport failure",
			err:    &nostrum_errors.ApiError{Type: nostrum_errors.TYPE_TRANSPORT},
			expect: Continue,
		},
		{
			name:   "rate limited",
			err:    &nostrum_errors.ApiError{Type: nostrum_errors.TYPE_HTTP_STATUS, HttpStatusCode: 429},
			expect: Continue,
		},
		{
			name:   "server error",
			err:    &nostrum_errors.ApiError{Type: nostrum_errors.TYPE_HTTP_STATUS, HttpStatusCode: 503},
			expect: Continue,
		},
		{
			name:   "bad request",
			err:    &nostrum_errors.ApiError{Type: nostrum_errors.TYPE_HTTP_STATUS, HttpStatusCode: 400},
			expect: StopNow,
		},
		{
			name:   "not found",
			err:    &nostrum_errors.ApiError{Type: nostrum_errors.TYPE_HTTP_STATUS, HttpStatusCode: 404},
			expect: StopNow,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ExitFor(tt.err))
		})
	}
}
