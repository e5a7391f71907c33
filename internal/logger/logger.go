package logger

import (
	"os"

	kitlog "github.com/go-kit/log"
)

// Config identifies the service emitting the logs.
type Config struct {
	Service string
	Version string
}

// New creates a structured logfmt logger with UTC timestamps, caller
// information, and service identity on every line.
func New(config Config) kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(os.Stderr)
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	logger = kitlog.With(logger, "caller", kitlog.DefaultCaller)
	logger = kitlog.With(logger, "service", config.Service, "version", config.Version)
	return logger
}
