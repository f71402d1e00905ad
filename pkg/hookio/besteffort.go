package hookio

import (
	"fmt"
	"log/slog"
)

// BestEffort runs fn and reduces every failure mode, panics included, to a
// logged warning. Hooks must never be the reason a host tool call fails,
// so this wrapper is the single place the swallow-everything policy lives.
// The returned error is always nil; the signature keeps call sites honest
// about which steps were wrapped.
func BestEffort(log *slog.Logger, step string, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("hook step panicked", "step", step, "panic", fmt.Sprint(r))
		}
	}()

	if err := fn(); err != nil {
		log.Warn("hook step failed", "step", step, "error", err)
	}
	return nil
}
