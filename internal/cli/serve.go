package cli

import (
	"github.com/brandonbloom/dtfmt/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *formatOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the formatter over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			srv, err := server.New(server.Config{
				Locale:     s.Locale,
				TimeZone:   s.Config.TimeZone,
				Type:       s.Mode,
				Attributes: s.Attributes,
				Clock:      s.Clock,
				Log:        s.Log,
			})
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:7480", "listen address")
	return cmd
}
