package load

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/catalogen"
	"github.com/syssam/catalogen/schema"
)

func TestFile(t *testing.T) {
	t.Run("yaml document", func(t *testing.T) {
		m, err := File(filepath.Join("testdata", "matrix", "catalog.yaml"))
		require.NoError(t, err)
		require.NoError(t, schema.ValidateMatrix(m))

		assert.Equal(t, "Shinya", m.Creator.Creator)
		assert.Equal(t, "2020-11-01", m.Creator.CreationDate)
		require.Len(t, m.Definitions, 2)

		single := m.Definitions[0]
		assert.Equal(t, "TestCatalog", single.ClassName)
		assert.Equal(t, schema.Catalog, single.Meta.CatalogType)
		assert.Equal(t, schema.LombokNone, single.Meta.LombokMode)
		require.Len(t, single.Enumerations, 3)
		assert.Equal(t, "TEST3", single.Enumerations[2].Literal)
		assert.Equal(t, 2, single.Enumerations[2].Code)

		bi := m.Definitions[1]
		assert.Equal(t, schema.BiCatalog, bi.Meta.CatalogType)
		assert.Equal(t, schema.LombokEnabled, bi.Meta.LombokMode)
		assert.Equal(t, []string{"java.util.List"}, bi.Meta.DependentPackages)
		assert.Equal(t, "tag 1", bi.Enumerations[0].Tag)
		assert.Equal(t, "String", bi.TagDataType)
	})

	t.Run("json document", func(t *testing.T) {
		m, err := File(filepath.Join("testdata", "matrix", "catalog.json"))
		require.NoError(t, err)
		require.NoError(t, schema.ValidateMatrix(m))
		require.Len(t, m.Definitions, 1)
		assert.Equal(t, schema.BiCatalog, m.Definitions[0].Meta.CatalogType)
		assert.Len(t, m.Definitions[0].Fields, 2)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := File(filepath.Join("testdata", "matrix", "unknown_field.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "colour")
	})

	t.Run("rejects unknown catalog types", func(t *testing.T) {
		_, err := File(filepath.Join("testdata", "matrix", "unknown_type.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TRI_CATALOG")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := File(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestDecode(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		_, err := Decode(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("decodes without validating", func(t *testing.T) {
		m, err := Decode(strings.NewReader("creator:\n  creator: Shinya\n"))
		require.NoError(t, err)
		assert.Empty(t, m.Definitions)
		assert.True(t, catalogen.IsValidationError(schema.ValidateMatrix(m)))
	})
}
