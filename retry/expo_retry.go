package retry

import (
	"fmt"
	"time"

	"github.com/bfolkens/nostrum/logger"
)

type expoConfig struct {
	sleep  time.Duration
	logger logger.Logger
}

func defaultExpoConfig() expoConfig {
	return expoConfig{
		sleep:  50 * time.Millisecond,
		logger: &logger.Noop{},
	}
}

type ExpoConfigOption func(c *expoConfig)

func WithLogger(log logger.Logger) ExpoConfigOption {
	return func(c *expoConfig) {
		c.logger = log
	}
}

func WithInitialDuration(d time.Duration) ExpoConfigOption {
	return func(c *expoConfig) {
		c.sleep = d
	}
}

type expoRetry struct {
	config expoConfig
}

var _ Retry = &expoRetry{}

func NewExponentialRetry(opts ...ExpoConfigOption) Retry {
	var config = defaultExpoConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &expoRetry{config}
}

// Do reruns fn until it returns no error, it returns StopNow, or
// attempts runs out, whichever comes first. The backoff before each
// rerun doubles, starting from the configured initial duration. The
// last error seen is returned when every attempt fails.
func (r *expoRetry) Do(
	attempts int,
	fnName string,
	fn RetriableFn,
) error {
	if attempts < 1 {
		return fmt.Errorf("attempts must be > 0")
	}

	backoff := r.config.sleep
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		err, exitNow := fn(attempt)
		if err == nil {
			return nil
		}
		lastErr = err
		if exitNow {
			return err
		}

		r.config.logger.Warnf(
			"%s failed; backing off %v. attempt=%d, maxAttempt=%d, error=%v",
			fnName, backoff, attempt, attempts, err,
		)

		time.Sleep(backoff)
		backoff *= 2
	}

	r.config.logger.Warnf(
		"%s failed on every attempt; giving up. maxAttempt=%d, error=%v",
		fnName, attempts, lastErr,
	)

	return lastErr
}
