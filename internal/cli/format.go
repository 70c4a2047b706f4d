package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func runFormat(cmd *cobra.Command, opts *formatOptions, args []string) error {
	s, err := opts.load(cmd)
	if err != nil {
		return err
	}
	el := s.newElement()
	out := cmd.OutOrStdout()

	emit := func(raw string) error {
		if err := el.SetDatetime(raw); err != nil {
			return fmt.Errorf("%s: %w", raw, err)
		}
		_, err := fmt.Fprintln(out, el.Text())
		return err
	}

	if len(args) > 0 {
		for _, arg := range args {
			if err := emit(arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := emit(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
