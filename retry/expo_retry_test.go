package retry

import (
	"errors"
	"testing"
	"time"

	nostrum_errors "github.com/bfolkens/nostrum/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Expo_Do_retries_transient_api_errors_until_exhausted(t *testing.T) {
	testCases := []struct {
		name string
		err  *nostrum_errors.ApiError
	}{
		{
			name: "transport failure",
			err:  &nostrum_errors.ApiError{Type: nostrum_errors.TYPE_TRANSPORT},
		},
		{
			name: "rate limited",
			err: &nostrum_errors.ApiError{
				Type:           nostrum_errors.TYPE_HTTP_STATUS,
				HttpStatusCode: 429,
				Body:           []byte(`{"message":"You are being rate limited."}`),
			},
		},
		{
			name: "server error",
			err: &nostrum_errors.ApiError{
				Type:           nostrum_errors.TYPE_HTTP_STATUS,
				HttpStatusCode: 503,
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			count := 0

			r := makeExpoRetry()
			err := r.Do(3, "create-message", func(attempt int) (error, ExitStrategy) {
				assert.Equal(t, count, attempt)
				count++
				return tt.err, ExitFor(tt.err)
			})

			assert.True(t, errors.Is(err, tt.err))
			assert.Equal(t, 3, count)
		})
	}
}

func Test_Expo_Do_succeeds_after_transient_failures(t *testing.T) {
	transportErr := &nostrum_errors.ApiError{Type: nostrum_errors.TYPE_TRANSPORT}
	count := 0

	r := makeExpoRetry()
	err := r.Do(5, "create-message", func(attempt int) (error, ExitStrategy) {
		count++
		if count < 3 {
			return transportErr, ExitFor(transportErr)
		}
		return nil, StopNow
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func Test_Expo_Do_stops_on_application_errors(t *testing.T) {
	notFound := &nostrum_errors.ApiError{
		Type:           nostrum_errors.TYPE_HTTP_STATUS,
		HttpStatusCode: 404,
		Body:           []byte(`{"code":10008,"message":"Unknown Message"}`),
	}
	count := 0

	r := makeExpoRetry()
	err := r.Do(10, "delete-message", func(attempt int) (error, ExitStrategy) {
		count++
		return notFound, ExitFor(notFound)
	})

	assert.True(t, errors.Is(err, notFound))
	assert.Equal(t, 1, count)
}

func Test_Expo_Do_returns_last_error(t *testing.T) {
	err1 := &nostrum_errors.ApiError{Type: nostrum_errors.TYPE_HTTP_STATUS, HttpStatusCode: 500}
	err2 := &nostrum_errors.ApiError{Type: nostrum_errors.TYPE_HTTP_STATUS, HttpStatusCode: 502}
	count := 0

	r := makeExpoRetry()
	err := r.Do(2, "get-channel", func(attempt int) (error, ExitStrategy) {
		count++
		if count == 1 {
			return err1, ExitFor(err1)
		}
		return err2, ExitFor(err2)
	})

	require.Error(t, err)
	assert.Same(t, err2, err)
	assert.Equal(t, 2, count)
}

func Test_Expo_Do_0(t *testing.T) {
	count := 0

	r := makeExpoRetry()
	err := r.Do(0, "get-channel", func(attempt int) (error, ExitStrategy) {
		count++
		assert.Fail(t, "Should never run")
		return nil, Continue
	})

	assert.Error(t, err)
	assert.Equal(t, 0, count)
}

func makeExpoRetry() *expoRetry {
	return NewExponentialRetry(
		WithInitialDuration(0 * time.Millisecond),
	).(*expoRetry)
}
