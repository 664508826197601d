package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// errOutOfDate is returned by check when a generated file differs.
var errOutOfDate = errors.New("generated catalogs are out of date - run 'catalogen gen' to update")

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that generated catalog sources are up to date",
		Long: `Check that the generated sources match the matrix without writing
anything. Missing and differing files are listed.

Exit codes:
  0 - Sources are up to date
  1 - Sources are out of date, or the check failed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(opts)
			if err != nil {
				return err
			}
			defer func() { _ = s.log.Sync() }()

			resources, err := s.generate(cmd.Context())
			if err != nil {
				return err
			}
			stale, err := s.writer.Check(resources)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(stale) == 0 {
				fmt.Fprintf(out, "%d catalogs are up to date\n", len(resources))
				return nil
			}
			fmt.Fprintln(out, "out of date:")
			for _, name := range stale {
				fmt.Fprintf(out, "  - %s\n", name)
			}
			return errOutOfDate
		},
	}
}
