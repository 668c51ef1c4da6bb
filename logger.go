package zplane

import (
	"log/slog"
	"sync/atomic"
)

// loggerPtr stores the active logger. It starts out discarding everything;
// slog.DiscardHandler reports every level disabled, so log calls cost no
// formatting.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger configures the logger for zplane and its sub-packages. By
// default nothing is logged. Pass nil to restore the silent default.
//
// Levels:
//   - [slog.LevelDebug]: stamps, skipped stamps, mode changes, ring-layer rebuilds
//   - [slog.LevelInfo]: session creation, window start, font selection
//   - [slog.LevelWarn]: font, label image and presentation fallbacks
//
// Example:
//
//	zplane.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// LoggerFor returns the current logger with a component attribute, for
// records from sub-packages such as "render".
func LoggerFor(component string) *slog.Logger {
	return Logger().With(slog.String("component", component))
}
