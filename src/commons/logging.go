package commons

import (
	"os"

	raven "github.com/getsentry/raven-go"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the global logrus logger. An unparsable level falls
// back to debug.
func SetupLogging(level string) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Debug("[Main] Unknown log level ", level, ", using debug")
		lvl = log.DebugLevel
	}
	log.SetLevel(lvl)
}

// ErrorReporter forwards errors that are only logged (and never shown to the
// user) to an external tracker.
type ErrorReporter interface {
	Report(err error, tags map[string]string)
}

type nopReporter struct{}

func (nopReporter) Report(error, map[string]string) {}

// NopReporter drops everything.
var NopReporter ErrorReporter = nopReporter{}

type sentryReporter struct{}

func (sentryReporter) Report(err error, tags map[string]string) {
	raven.CaptureError(err, tags)
}

// NewErrorReporter returns a Sentry backed reporter, or NopReporter when dsn
// is empty.
func NewErrorReporter(dsn string) (ErrorReporter, error) {
	if dsn == "" {
		return NopReporter, nil
	}
	if err := raven.SetDSN(dsn); err != nil {
		return NopReporter, err
	}
	return sentryReporter{}, nil
}
