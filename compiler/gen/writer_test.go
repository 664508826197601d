package gen

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/catalogen/schema"
)

func testResources() []*schema.CatalogResource {
	return []*schema.CatalogResource{
		{PackageName: "org.example.catalog", ClassName: "Color", Resource: "enum Color {}\n"},
		{PackageName: "org.example.catalog", ClassName: "Size", Resource: "enum Size {}\n"},
		{PackageName: "org.example", ClassName: "Shape", Resource: "enum Shape {}\n"},
	}
}

func TestWriterPath(t *testing.T) {
	w := NewWriter(memfs.New())
	r := &schema.CatalogResource{PackageName: "org.example.catalog", ClassName: "Color"}
	assert.Equal(t, "org/example/catalog/Color.java", w.Path(r))
	assert.Equal(t, "org/example/catalog/Color.kt", w.WithExtension(".kt").Path(r))

	root := &schema.CatalogResource{ClassName: "Color"}
	assert.Equal(t, "Color.kt", w.Path(root))

	assert.Equal(t, "Color.kt", w.WithExtension(".").Path(root), "empty extension keeps the current one")
}

func TestWriterWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("writes one file per resource", func(t *testing.T) {
		fs := memfs.New()
		w := NewWriter(fs)
		require.NoError(t, w.Write(ctx, testResources()))

		data, err := util.ReadFile(fs, "org/example/catalog/Color.java")
		require.NoError(t, err)
		assert.Equal(t, "enum Color {}\n", string(data))

		m := w.Metrics()
		assert.Equal(t, 3, m.FilesWritten)
		assert.Equal(t, 0, m.FilesUnchanged)
		assert.Equal(t, int64(len("enum Color {}\n")+len("enum Size {}\n")+len("enum Shape {}\n")), m.TotalBytes)
	})

	t.Run("skips up to date files", func(t *testing.T) {
		fs := memfs.New()
		w := NewWriter(fs)
		resources := testResources()
		require.NoError(t, w.Write(ctx, resources))

		resources[1].Resource = "enum Size { SMALL }\n"
		require.NoError(t, w.Write(ctx, resources))
		m := w.Metrics()
		assert.Equal(t, 1, m.FilesWritten)
		assert.Equal(t, 2, m.FilesUnchanged)

		data, err := util.ReadFile(fs, "org/example/catalog/Size.java")
		require.NoError(t, err)
		assert.Equal(t, "enum Size { SMALL }\n", string(data))
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		fs := memfs.New()
		err := NewWriter(fs).Write(canceled, testResources())
		assert.ErrorIs(t, err, context.Canceled)

		_, err = fs.Stat("org/example/catalog/Color.java")
		assert.Error(t, err)
	})
}

func TestWriterCheck(t *testing.T) {
	fs := memfs.New()
	w := NewWriter(fs)
	resources := testResources()

	stale, err := w.Check(resources)
	require.NoError(t, err)
	assert.Len(t, stale, 3)

	require.NoError(t, w.Write(context.Background(), resources))
	stale, err = w.Check(resources)
	require.NoError(t, err)
	assert.Empty(t, stale)

	resources[2].Resource = "enum Shape { CIRCLE }\n"
	stale, err = w.Check(resources)
	require.NoError(t, err)
	assert.Equal(t, []string{"org/example/Shape.java"}, stale)
}

func TestWriterRoundTrip(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)
	resources, err := g.Format(context.Background(), testMatrix(singleValueDefinition()))
	require.NoError(t, err)

	fs := memfs.New()
	w := NewWriter(fs)
	require.NoError(t, w.Write(context.Background(), resources))

	data, err := util.ReadFile(fs, "org/thinkit/generator/catalog/test/TestCatalog.java")
	require.NoError(t, err)
	assert.Equal(t, golden(t, "TestCatalog.java"), string(data))
}
