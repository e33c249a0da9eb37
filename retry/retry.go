package retry

// Retry provides a standardized interface for retrying operations with
// configurable policies such as exponential backoff and maximum attempts.
//
// The request pipeline itself never retries: the rate-limit gate keeps
// the client from sending calls it knows will be rejected, and anything
// the server still turns away comes back as an ordinary error. This
// package is the caller-supplied layer for wrapping whole operations
// when transient transport failures or 5xx responses should be retried.
//
// Usage Example:
//
//	r := retry.NewExponentialRetry(
//	    retry.WithInitialDuration(100*time.Millisecond),
//	)
//
//	err := r.Do(3, "create-message", func(attempt int) (error, retry.ExitStrategy) {
//	    _, err := client.Messages().Create(channelId, msg)
//	    return err, retry.ExitFor(err)
//	})
//
// The RetriableFn receives the current attempt number (0-based) and
// returns an error and an ExitStrategy. The ExitStrategy determines
// whether to continue retrying (Continue) or stop immediately (StopNow),
// regardless of remaining attempts.
//
// NOTE: if attempts is 0, the fn is never called.
type Retry interface {
	Do(attempts int, fnName string, fn RetriableFn) error
}

type RetriableFn func(attempt int) (error, ExitStrategy)

type ExitStrategy bool

var StopNow ExitStrategy = true
var Continue ExitStrategy = false
