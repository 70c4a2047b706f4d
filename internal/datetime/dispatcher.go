package datetime

import (
	"fmt"
	"time"

	"github.com/brandonbloom/dtfmt/internal/locale"
	"github.com/brandonbloom/dtfmt/internal/timefmt"
	"github.com/jonboulle/clockwork"
)

// LocaleFormatter renders absolute instants. *locale.Formatter satisfies it.
type LocaleFormatter interface {
	Format(t time.Time, opts locale.Options) (string, error)
}

// Dispatcher picks the rendering branch for a Mode.
type Dispatcher struct {
	formatter LocaleFormatter
	clock     clockwork.Clock
}

// NewDispatcher returns a Dispatcher. A nil clock uses the real wall clock.
func NewDispatcher(formatter LocaleFormatter, clock clockwork.Clock) *Dispatcher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Dispatcher{formatter: formatter, clock: clock}
}

// Clock returns the clock relative renderings are measured against.
func (d *Dispatcher) Clock() clockwork.Clock { return d.clock }

// Format renders instant for mode. Only the Local branch can fail, when the
// instant is invalid or the formatter rejects the options.
func (d *Dispatcher) Format(mode Mode, instant Instant, opts locale.Options) (string, error) {
	switch mode.Kind {
	case Local:
		if !instant.Valid() {
			return "", fmt.Errorf("format: %w", locale.ErrInvalidTime)
		}
		return d.formatter.Format(instant.Time(), opts)
	case Relative:
		if !instant.Valid() {
			return timefmt.JustNow, nil
		}
		return timefmt.Humanize(instant.Millis() - d.clock.Now().UnixMilli()), nil
	default:
		return instant.String(), nil
	}
}
