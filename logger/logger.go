package logger

// Logger is the logging interface used throughout the nostrum client.
// It lets users plug in their preferred implementation (zap via NewZap,
// the standard library, or anything else matching the four methods) or
// silence the client entirely with Noop.
//
// The client logs:
// - request/response debugging in the api package
// - rate-limit waits and bucket updates
// - retry attempt tracking
//
// Usage Example:
//
//	// Custom logger implementation
//	client := nostrum.NewClient(token, nostrum.WithLogger(myLogger))
//
//	// Disable logging entirely
//	client := nostrum.NewClient(token, nostrum.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
