package strategy

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger installs the logger that receives fallback and profile records.
// Passing nil restores the default, which discards everything.
func SetLogger(l *slog.Logger) { logger.Store(l) }

// Logger returns the installed logger.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

func fallback(kind Kind, from, to fmt.Stringer) {
	Logger().Debug("strategy: unknown variant, using default",
		slog.String("kind", kind.String()),
		slog.String("variant", from.String()),
		slog.String("fallback", to.String()),
	)
}
