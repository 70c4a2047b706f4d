package cli

import (
	"os"
	"time"

	"github.com/jonboulle/clockwork"
)

// currentClock returns a clock frozen at $DTFMT_NOW when it holds an
// RFC 3339 timestamp, and the real clock otherwise.
func currentClock() clockwork.Clock {
	if override := os.Getenv("DTFMT_NOW"); override != "" {
		if t, err := time.Parse(time.RFC3339, override); err == nil {
			return clockwork.NewFakeClockAt(t)
		}
	}
	return clockwork.NewRealClock()
}
