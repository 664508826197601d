package gen

import (
	"bytes"
	"context"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"

	"github.com/syssam/catalogen"
	"github.com/syssam/catalogen/schema"
)

// DefaultExtension is the extension of written files unless WithExtension
// changes it.
const DefaultExtension = "java"

// Writer persists generated resources to a filesystem, one file per
// resource at packageName/className.ext.
type Writer struct {
	fs     billy.Filesystem
	ext    string
	logger *zap.Logger

	// Metrics for the last Write call
	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks what a Write call did.
type WriterMetrics struct {
	FilesWritten   int
	FilesUnchanged int
	TotalBytes     int64
}

// NewWriter creates a Writer rooted at fs.
func NewWriter(fs billy.Filesystem) *Writer {
	return &Writer{
		fs:      fs,
		ext:     DefaultExtension,
		logger:  zap.NewNop(),
		metrics: &WriterMetrics{},
	}
}

// WithExtension sets the file extension. A leading dot is dropped and an
// empty extension keeps the current one.
func (w *Writer) WithExtension(ext string) *Writer {
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		w.ext = ext
	}
	return w
}

// WithLogger sets the logger.
func (w *Writer) WithLogger(l *zap.Logger) *Writer {
	if l != nil {
		w.logger = l
	}
	return w
}

// Metrics returns a copy of the metrics of the last Write call.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.metrics
}

// Path returns the slash separated path of r relative to the filesystem root.
func (w *Writer) Path(r *schema.CatalogResource) string {
	dir := strings.ReplaceAll(r.PackageName, ".", "/")
	return path.Join(dir, r.ClassName+"."+w.ext)
}

// Write persists resources. Files whose content is already up to date are
// left untouched. Writes are sequential: billy filesystems are not required
// to be safe for concurrent use.
func (w *Writer) Write(ctx context.Context, resources []*schema.CatalogResource) error {
	metrics := &WriterMetrics{}
	defer func() {
		w.mu.Lock()
		w.metrics = metrics
		w.mu.Unlock()
	}()

	for _, r := range resources {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := w.Path(r)
		current, err := w.read(name)
		if err != nil {
			return catalogen.NewGenerationError("write", r.QualifiedName(), "read existing file", err)
		}
		if current != nil && bytes.Equal(current, []byte(r.Resource)) {
			metrics.FilesUnchanged++
			w.logger.Debug("resource unchanged", zap.String("path", name))
			continue
		}
		if err := w.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
			return catalogen.NewGenerationError("write", r.QualifiedName(), "create directory", err)
		}
		if err := util.WriteFile(w.fs, name, []byte(r.Resource), 0o644); err != nil {
			return catalogen.NewGenerationError("write", r.QualifiedName(), "write file", err)
		}
		metrics.FilesWritten++
		metrics.TotalBytes += int64(len(r.Resource))
		w.logger.Debug("resource written", zap.String("path", name), zap.Int("bytes", len(r.Resource)))
	}
	w.logger.Info("resources written",
		zap.Int("written", metrics.FilesWritten),
		zap.Int("unchanged", metrics.FilesUnchanged),
	)
	return nil
}

// Check returns the paths of resources whose file is missing or differs
// from the generated content. An empty result means the tree is up to date.
func (w *Writer) Check(resources []*schema.CatalogResource) ([]string, error) {
	var stale []string
	for _, r := range resources {
		name := w.Path(r)
		current, err := w.read(name)
		if err != nil {
			return nil, catalogen.NewGenerationError("check", r.QualifiedName(), "read existing file", err)
		}
		if current == nil || !bytes.Equal(current, []byte(r.Resource)) {
			stale = append(stale, name)
		}
	}
	return stale, nil
}

// read returns the content of name, or nil if it does not exist.
func (w *Writer) read(name string) ([]byte, error) {
	data, err := util.ReadFile(w.fs, name)
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, os.ErrNotExist):
		return nil, nil
	default:
		return nil, errors.Wrapf(err, "read %s", name)
	}
}
