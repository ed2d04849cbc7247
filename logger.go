package cmdchain

import (
	"log/slog"
	"sync/atomic"
)

var (
	discardLogger = slog.New(slog.DiscardHandler)
	activeLogger  atomic.Pointer[slog.Logger]
)

func init() {
	activeLogger.Store(discardLogger)
}

// SetLogger sets the logger used by cmdchain, encoder and recording.
// Nothing is logged until it is called. A nil logger disables logging again.
// It may be called while chains are being built.
//
// Levels:
//   - [slog.LevelDebug]: each primitive recorded by Build
//   - [slog.LevelInfo]: device and pass lifecycle in encoder
//   - [slog.LevelWarn]: a primitive rejected by the recorder
//   - [slog.LevelError]: a registered target that could not be created
//
//	cmdchain.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	activeLogger.Store(l)
}

// Logger returns the logger set with SetLogger.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
