package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/brandonbloom/dtfmt/internal/timefmt"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var (
	colorExplainLabel  = color.New(color.Bold).SprintFunc()
	colorExplainValue  = color.New(color.FgHiBlue).SprintFunc()
	colorExplainResult = color.New(color.FgGreen, color.Bold).SprintFunc()
)

func newExplainCommand(opts *formatOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <datetime>",
		Short: "Show how a datetime is bucketed into a relative phrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			instant := s.Parser.Parse(args[0])
			if !instant.Valid() {
				return fmt.Errorf("cannot parse datetime %q", args[0])
			}
			delta := instant.Millis() - s.Dispatcher.Clock().Now().UnixMilli()
			printBreakdown(cmd.OutOrStdout(), timefmt.Explain(delta))
			return nil
		},
	}
}

func printBreakdown(w io.Writer, b timefmt.Breakdown) {
	rows := []struct {
		label string
		value string
	}{
		{"Delta:", strconv.FormatInt(b.Delta, 10) + " ms"},
		{"Tense:", b.Tense},
		{"Seconds:", strconv.FormatInt(b.Seconds, 10)},
		{"Minutes:", strconv.FormatInt(b.Minutes, 10)},
		{"Hours:", strconv.FormatInt(b.Hours, 10)},
		{"Days:", strconv.FormatInt(b.Days, 10)},
		{"Months:", strconv.FormatInt(b.Months, 10)},
		{"Years:", strconv.FormatInt(b.Years, 10)},
		{"Rung:", b.Rung.String()},
	}

	width := len("Result:")
	for _, row := range rows {
		if n := runewidth.StringWidth(row.label); n > width {
			width = n
		}
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s %s\n", colorExplainLabel(runewidth.FillRight(row.label, width)), colorExplainValue(row.value))
	}
	fmt.Fprintf(w, "%s %s\n", colorExplainLabel(runewidth.FillRight("Result:", width)), colorExplainResult(b.String()))
}
