package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenCmd(opts *options) *cobra.Command {
	var watchMatrix bool
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate catalog sources",
		Long: `Generate catalog sources from the matrix.

Files that are already up to date are left untouched. With --watch the
command keeps running and regenerates whenever the matrix changes.

Examples:
  catalogen gen -m catalog.yaml -o src/main/java
  catalogen gen -m catalog.yaml -o src/main/java --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(opts)
			if err != nil {
				return err
			}
			defer func() { _ = s.log.Sync() }()

			run := func(ctx context.Context) error {
				resources, err := s.generate(ctx)
				if err != nil {
					return err
				}
				return s.writer.Write(ctx, resources)
			}
			if err := run(cmd.Context()); err != nil {
				if !watchMatrix {
					return err
				}
				s.log.Error("generation failed", zap.Error(err))
			}
			if !watchMatrix {
				return nil
			}
			return watch(cmd.Context(), opts.matrix, s.log, run)
		},
	}
	cmd.Flags().BoolVarP(&watchMatrix, "watch", "w", false, "regenerate when the matrix changes")
	return cmd
}
