package main

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/catalogen"
	"github.com/syssam/catalogen/compiler/content"
	"github.com/syssam/catalogen/compiler/gen"
	"github.com/syssam/catalogen/compiler/load"
	"github.com/syssam/catalogen/internal/logger"
	"github.com/syssam/catalogen/schema"
)

// options holds the flags shared by every command.
type options struct {
	matrix  string
	out     string
	content string
	ext     string
	workers int
	json    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "catalogen",
		Short: "Generate Java catalog enums from a catalog matrix",
		Long: `Generate Java catalog enums from a catalog matrix.

A matrix is a YAML or JSON document listing catalog definitions. Each
definition becomes one enum implementing Catalog (single value) or
BiCatalog (code and tag), written to <out>/<package path>/<Class>.java.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.matrix, "matrix", "m", "", "matrix document (YAML or JSON)")
	flags.StringVarP(&opts.out, "out", "o", ".", "output source root")
	flags.StringVar(&opts.content, "content", "", "content store overriding the embedded package mapping (TOML)")
	flags.StringVar(&opts.ext, "ext", gen.DefaultExtension, "extension of generated files")
	flags.IntVar(&opts.workers, "workers", 0, "parallel workers (default: GOMAXPROCS)")
	flags.BoolVar(&opts.json, "json", false, "log as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log each generated catalog")
	_ = cmd.MarkPersistentFlagRequired("matrix")

	cmd.AddCommand(newGenCmd(opts), newCheckCmd(opts))
	return cmd
}

// session is the state a command runs with.
type session struct {
	opts   *options
	log    *zap.Logger
	gen    *gen.Generator
	writer *gen.Writer
}

func newSession(opts *options) (*session, error) {
	if strings.TrimPrefix(opts.ext, ".") == "" {
		return nil, catalogen.NewConfigError("ext", opts.ext, "file extension cannot be empty")
	}
	log, err := logger.New(opts.json, opts.verbose)
	if err != nil {
		return nil, errors.Wrap(err, "create logger")
	}
	genOpts := []gen.Option{gen.WithLogger(log)}
	if opts.workers > 0 {
		genOpts = append(genOpts, gen.WithWorkers(opts.workers))
	}
	if opts.content != "" {
		store, err := content.Load(opts.content)
		if err != nil {
			return nil, err
		}
		genOpts = append(genOpts, gen.WithPackageLookup(store))
	}
	g, err := gen.NewGenerator(genOpts...)
	if err != nil {
		return nil, err
	}
	w := gen.NewWriter(osfs.New(opts.out)).
		WithExtension(opts.ext).
		WithLogger(log)
	return &session{opts: opts, log: log, gen: g, writer: w}, nil
}

// generate loads the matrix and renders every definition.
func (s *session) generate(ctx context.Context) ([]*schema.CatalogResource, error) {
	m, err := load.File(s.opts.matrix)
	if err != nil {
		return nil, err
	}
	return s.gen.Format(ctx, m)
}
