package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/brandonbloom/dtfmt/internal/datetime"
	"github.com/brandonbloom/dtfmt/internal/logging"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	interval time.Duration
	count    int
}

func newWatchCommand(opts *formatOptions) *cobra.Command {
	wopts := &watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch <datetime>",
		Short: "Keep re-rendering a datetime as the clock advances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, wopts, args[0])
		},
	}
	cmd.Flags().DurationVar(&wopts.interval, "interval", time.Second, "re-render interval")
	cmd.Flags().IntVar(&wopts.count, "count", 0, "stop after this many re-renders (0 runs until interrupted)")
	return cmd
}

func runWatch(cmd *cobra.Command, opts *formatOptions, wopts *watchOptions, raw string) error {
	if wopts.interval <= 0 {
		return errors.New("--interval must be positive")
	}
	s, err := opts.load(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := newLinePrinter(out, logging.IsTerminal(out))
	el := s.newElement(datetime.WithRender(p.print))
	if err := el.SetDatetime(raw); err != nil {
		return err
	}

	err = watchLoop(cmd.Context(), el, clockwork.NewRealClock(), wopts.interval, wopts.count)
	p.finish()
	return err
}

// watchLoop refreshes el on every tick until ctx is done or count ticks
// have elapsed. A count of zero never stops on its own.
func watchLoop(ctx context.Context, el *datetime.Element, clock clockwork.Clock, interval time.Duration, count int) error {
	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	for n := 0; count <= 0 || n < count; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			if err := el.Refresh(); err != nil {
				return err
			}
		}
	}
	return nil
}

// linePrinter writes each distinct rendering once. On a terminal it
// redraws the current line instead of appending.
type linePrinter struct {
	w       io.Writer
	inPlace bool
	last    string
	printed bool
}

func newLinePrinter(w io.Writer, inPlace bool) *linePrinter {
	return &linePrinter{w: w, inPlace: inPlace}
}

func (p *linePrinter) print(text string) {
	if p.printed && text == p.last {
		return
	}
	p.last = text
	p.printed = true
	if p.inPlace {
		fmt.Fprintf(p.w, "\r\033[K%s", text)
		return
	}
	fmt.Fprintln(p.w, text)
}

func (p *linePrinter) finish() {
	if p.inPlace && p.printed {
		fmt.Fprintln(p.w)
	}
}
