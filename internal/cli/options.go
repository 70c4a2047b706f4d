package cli

import (
	"fmt"

	"github.com/brandonbloom/dtfmt/internal/attrs"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newOptionsCommand(opts *formatOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the formatter options the current attributes resolve to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			opts := attrs.Resolve(s.Attributes)
			if opts.IsZero() {
				fmt.Fprintln(cmd.ErrOrStderr(), "note: no formatting attributes set; local rendering shows the numeric year, month and day")
			}
			data, err := json.Marshal(opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
