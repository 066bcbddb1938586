// Package log provides structured logging for the crypto core, built on
// github.com/ethereum/go-ethereum/log (itself a log/slog wrapper) rather
// than reinventing a level/handler system. It is deliberately not on any
// hot path (point arithmetic, hash compression) — only at policy-decision
// boundaries: backend selection and HCA poll timeouts. TRNGReseedHint is
// provided for TRNG retry events, but package trng does not call it.
package log

import (
	"time"

	gethlog "github.com/ethereum/go-ethereum/log"
)

// Logger is the module's logging handle; it is exactly
// github.com/ethereum/go-ethereum/log.Logger; re-exported here so
// callers only need to import this package.
type Logger = gethlog.Logger

// Root returns the process-wide default logger.
func Root() Logger { return gethlog.Root() }

// SetDefault installs l as the process-wide default logger, e.g. to
// route output through a Handler built in this package instead of
// go-ethereum/log's own terminal/JSON handlers.
func SetDefault(l Logger) { gethlog.SetDefault(l) }

// Module returns a logger carrying a module=<module> attribute, the
// primary way a subsystem (backend, hwaccel, trng) gets its own
// contextual logger.
func Module(module string) Logger {
	return gethlog.Root().New("module", module)
}

// BackendSelected records which compute backend (software or
// hardware-accelerated) a component chose at construction time.
func BackendSelected(l Logger, component, kind string) {
	l.Info("backend selected", "component", component, "backend", kind)
}

// HCATimeout records a bounded HCA poll loop expiring before the
// status register reported completion.
func HCATimeout(l Logger, op string, elapsed time.Duration) {
	l.Warn("hca poll timed out", "op", op, "elapsed", elapsed)
}

// TRNGReseedHint records the TRNG gate's rejection-sampling retry
// count approaching its ceiling, a signal (not itself a failure) that
// the oracle's output quality may be degrading and a reseed is due.
func TRNGReseedHint(l Logger, attempts, ceiling int) {
	l.Warn("trng nearing retry ceiling", "attempts", attempts, "ceiling", ceiling)
}
