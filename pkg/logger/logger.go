package logger

import (
	"os"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/rs/zerolog"
)

// LevelNameHook maps zerolog levels to Cloud Logging severity names.
type LevelNameHook struct {
	zerolog.LevelHook
}

func (h LevelNameHook) Run(e *zerolog.Event, l zerolog.Level, _ string) {
	switch l {
	case zerolog.NoLevel:
		e.Str("severity", "DEFAULT")
	case zerolog.DebugLevel:
		e.Str("severity", "DEBUG")
	case zerolog.InfoLevel:
		e.Str("severity", "INFO")
	case zerolog.WarnLevel:
		e.Str("severity", "WARNING")
	case zerolog.ErrorLevel:
		e.Str("severity", "ERROR")
	case zerolog.FatalLevel:
		e.Str("severity", "CRITICAL")
	case zerolog.TraceLevel:
		e.Str("severity", "NOTICE")
	}
}

// New returns a logger writing to stderr, so stdout stays safe to eval.
// On GCE (including Cloud Shell) it emits structured lines Cloud Logging
// understands; elsewhere it uses the console writer.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if metadata.OnGCE() {
		return zerolog.New(os.Stderr).Level(level).Hook(LevelNameHook{})
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out: os.Stderr,
		FormatTimestamp: func(_ interface{}) string {
			return time.Now().Format(time.Stamp)
		},
	}).Level(level)
}
