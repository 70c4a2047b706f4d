package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/brandonbloom/dtfmt/internal/locale"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var colorActiveLocale = color.New(color.FgGreen, color.Bold).SprintFunc()

func newLocalesCommand(opts *formatOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List locales with dedicated date patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return printLocales(cmd.OutOrStdout(), s.Locale, s.Clock.Now())
		},
	}
}

// printLocales renders sample against every supported locale, marking the
// active one.
func printLocales(w io.Writer, active string, sample time.Time) error {
	sampleOpts := locale.Options{
		Weekday: locale.Short,
		Year:    locale.Numeric,
		Month:   locale.Long,
		Day:     locale.Numeric,
		Hour:    locale.Numeric,
		Minute:  locale.TwoDigit,
	}

	tags := locale.Supported()
	width := 0
	for _, tag := range tags {
		if n := runewidth.StringWidth(tag.String()); n > width {
			width = n
		}
	}

	for _, tag := range tags {
		f, err := locale.New(tag.String(), "UTC")
		if err != nil {
			return err
		}
		text, err := f.Format(sample, sampleOpts)
		if err != nil {
			return err
		}
		name := runewidth.FillRight(tag.String(), width)
		marker := " "
		if tag.String() == active {
			marker = "*"
			name = colorActiveLocale(name)
		}
		if _, err := fmt.Fprintf(w, "%s %s  %s\n", marker, name, text); err != nil {
			return err
		}
	}
	return nil
}
