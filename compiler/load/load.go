// Package load reads catalog matrices from YAML or JSON documents.
//
// JSON documents are accepted as the YAML subset they are. Enum valued
// fields take their names: catalogType is CATALOG, SINGLE_VALUE, BI_CATALOG
// or TWO_VALUE, and lombokMode is NONE or LOMBOK. Unknown keys are rejected.
package load

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/syssam/catalogen/schema"
)

// ErrEmptyDocument is returned when a document holds no matrix.
var ErrEmptyDocument = errors.New("load: empty matrix document")

// File reads the matrix at path. The matrix is decoded but not validated.
func File(path string) (*schema.CatalogMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load: open %s", path)
	}
	defer f.Close()
	m, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load: %s", path)
	}
	return m, nil
}

// Decode reads a single matrix document from r.
func Decode(r io.Reader) (*schema.CatalogMatrix, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var m schema.CatalogMatrix
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, errors.Wrap(err, "decode matrix")
	}
	return &m, nil
}
