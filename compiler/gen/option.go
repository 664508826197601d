package gen

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/syssam/catalogen"
	"github.com/syssam/catalogen/compiler/content"
	"github.com/syssam/catalogen/compiler/format"
	"github.com/syssam/catalogen/schema"
)

// DefaultCopyrightYear is the year stamped into license headers when the
// creator carries no creation date.
const DefaultCopyrightYear = 2020

// PackageLookup resolves the packages a catalog imports.
type PackageLookup interface {
	// LookupPackage returns the package of the interface implemented by
	// catalogs of the given type.
	LookupPackage(t schema.CatalogType) (string, error)

	// LombokPackages returns the packages imported in Lombok mode.
	LombokPackages() []string
}

// SourceFormatter canonicalizes assembled source text. A failure must be a
// *catalogen.SyntaxError.
type SourceFormatter interface {
	Format(src string) (string, error)
}

// SourceFormatterFunc adapts a function to SourceFormatter.
type SourceFormatterFunc func(src string) (string, error)

// Format calls f(src).
func (f SourceFormatterFunc) Format(src string) (string, error) {
	return f(src)
}

// Config holds the generation settings. Both collaborators must be safe for
// concurrent use.
type Config struct {
	// Workers bounds the number of definitions generated in parallel.
	Workers int

	// Logger receives per-definition and per-batch logs.
	Logger *zap.Logger

	// Packages resolves dependent packages.
	Packages PackageLookup

	// Formatter canonicalizes every generated file.
	Formatter SourceFormatter

	// CopyrightYear is used when the creator has no creation date.
	CopyrightYear int
}

// Option configures code generation.
type Option func(*Config) error

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return catalogen.NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return catalogen.NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithPackageLookup sets the dependent-package lookup.
// If not set, the embedded content store is used.
func WithPackageLookup(p PackageLookup) Option {
	return func(c *Config) error {
		if p == nil {
			return catalogen.NewConfigError("PackageLookup", nil, "package lookup cannot be nil")
		}
		c.Packages = p
		return nil
	}
}

// WithSourceFormatter sets the source formatter.
// If not set, the Java formatter with default layout is used.
func WithSourceFormatter(f SourceFormatter) Option {
	return func(c *Config) error {
		if f == nil {
			return catalogen.NewConfigError("SourceFormatter", nil, "source formatter cannot be nil")
		}
		c.Formatter = f
		return nil
	}
}

// WithCopyrightYear sets the fallback copyright year.
func WithCopyrightYear(year int) Option {
	return func(c *Config) error {
		if year <= 0 {
			return catalogen.NewConfigError("CopyrightYear", year, "year must be positive")
		}
		c.CopyrightYear = year
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig creates a new Config with defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Workers:       runtime.GOMAXPROCS(0),
		Logger:        zap.NewNop(),
		CopyrightYear: DefaultCopyrightYear,
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	if c.Packages == nil {
		c.Packages = content.Default()
	}
	if c.Formatter == nil {
		c.Formatter = format.NewJavaFormatter()
	}
	return c, nil
}
