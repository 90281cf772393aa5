// Package logger owns the process-wide zap logger, configured once at
// startup from the runtime environment.
package logger

import (
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init builds the global logger. Development gets the human-readable
// console encoder, everything else structured JSON.
func Init(env string) error {
	var (
		base *zap.Logger
		err  error
	)
	if env == "development" {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	log = base.Sugar()
	return nil
}

// L returns the global sugared logger. Safe to call before Init in tests,
// where it falls back to a no-op logger.
func L() *zap.SugaredLogger {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return log
}

// Sync flushes buffered log entries, called on shutdown.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
