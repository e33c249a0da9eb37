package logger

import (
	"go.uber.org/zap"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = &zapLogger{}

// NewZap adapts a zap logger to the client's Logger interface.
//
//	z, _ := zap.NewProduction()
//	client := nostrum.NewClient(token, nostrum.WithLogger(logger.NewZap(z)))
func NewZap(z *zap.Logger) Logger {
	// Skip this adapter's frame so call sites resolve to client code.
	return &zapLogger{
		sugar: z.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

func (l *zapLogger) Debugf(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Infof(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warnf(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Errorf(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}
