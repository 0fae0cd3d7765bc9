package bigint

import "github.com/agbru/arbint/internal/logging"

// currentLogger receives Debug-level events at regime-dispatch decision
// points. It defaults to a no-op so callers that never configure logging
// pay no cost.
var currentLogger logging.Logger = logging.NopLogger

// SetLogger installs l as the destination for this package's structured
// debug events. Passing nil restores the no-op default.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.NopLogger
	}
	currentLogger = l
}
