// Package content resolves the packages a generated catalog depends on.
//
// The mapping lives in a TOML document. A default document is embedded in
// the binary; Load reads a replacement from disk:
//
//	[[catalogPackage]]
//	catalogTypeCode = 0
//	catalogPackage = "org.thinkit.api.catalog.Catalog"
//
//	[[lombokPackage]]
//	lombokPackage = "lombok.Getter"
package content

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/syssam/catalogen"
	"github.com/syssam/catalogen/schema"
)

//go:embed catalog.toml
var defaultContent []byte

type document struct {
	CatalogPackages []struct {
		CatalogTypeCode *int   `toml:"catalogTypeCode"`
		CatalogPackage  string `toml:"catalogPackage"`
	} `toml:"catalogPackage"`
	LombokPackages []struct {
		LombokPackage string `toml:"lombokPackage"`
	} `toml:"lombokPackage"`
}

// Store is a read-only content store. It is safe for concurrent use.
type Store struct {
	catalog map[int]string
	lombok  []string
}

// Default returns the store decoded from the embedded document.
func Default() *Store {
	s, err := Decode(bytes.NewReader(defaultContent))
	if err != nil {
		panic(errors.Wrap(err, "decode embedded content"))
	}
	return s
}

// Load decodes the store at path.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open content store %s", path)
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load content store %s", path)
	}
	return s, nil
}

// Decode reads a store document from r.
func Decode(r io.Reader) (*Store, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode content")
	}
	s := &Store{catalog: make(map[int]string, len(doc.CatalogPackages))}
	for i, p := range doc.CatalogPackages {
		switch {
		case p.CatalogTypeCode == nil:
			return nil, catalogen.NewConfigError("catalogPackage", i, "catalogTypeCode is required")
		case p.CatalogPackage == "":
			return nil, catalogen.NewConfigError("catalogPackage", *p.CatalogTypeCode, "catalogPackage must not be empty")
		}
		if _, ok := s.catalog[*p.CatalogTypeCode]; ok {
			return nil, catalogen.NewConfigError("catalogPackage", *p.CatalogTypeCode, "duplicate catalogTypeCode")
		}
		s.catalog[*p.CatalogTypeCode] = p.CatalogPackage
	}
	for i, p := range doc.LombokPackages {
		if p.LombokPackage == "" {
			return nil, catalogen.NewConfigError("lombokPackage", i, "lombokPackage must not be empty")
		}
		s.lombok = append(s.lombok, p.LombokPackage)
	}
	return s, nil
}

// LookupPackage returns the package of the interface implemented by catalogs
// of type t. It fails with a *catalogen.ConfigError when the store has no
// entry for the type code.
func (s *Store) LookupPackage(t schema.CatalogType) (string, error) {
	pkg, ok := s.catalog[t.Code()]
	if !ok {
		return "", catalogen.NewConfigError("catalogPackage", t.Code(), "no package configured for catalog type "+t.String())
	}
	return pkg, nil
}

// LombokPackages returns the packages imported in Lombok mode, in document
// order.
func (s *Store) LombokPackages() []string {
	return slices.Clone(s.lombok)
}
