package schema

import (
	"strconv"
	"strings"

	"github.com/syssam/catalogen"
)

// CatalogType is the closed set of catalog shapes.
// The numeric value is the catalog type code used by the content store.
type CatalogType uint8

const (
	// Catalog is the single-value shape: constants carry a code only.
	Catalog CatalogType = iota

	// BiCatalog is the two-value shape: constants carry a code and a tag.
	BiCatalog
)

// catalogTypes holds the interface literal and the accepted names of each type.
var catalogTypes = [...]struct {
	literal string
	names   []string
}{
	Catalog:   {literal: "Catalog", names: []string{"CATALOG", "SINGLE_VALUE"}},
	BiCatalog: {literal: "BiCatalog", names: []string{"BI_CATALOG", "TWO_VALUE"}},
}

// Code returns the numeric catalog type code.
func (t CatalogType) Code() int { return int(t) }

// Valid reports whether t is a known catalog type.
func (t CatalogType) Valid() bool { return int(t) < len(catalogTypes) }

// Literal returns the name of the Java interface the generated enum implements.
func (t CatalogType) Literal() string {
	if !t.Valid() {
		return ""
	}
	return catalogTypes[t].literal
}

// Arity returns the number of fields (and constant values) a definition of
// this type carries.
func (t CatalogType) Arity() int {
	switch t {
	case Catalog:
		return 1
	case BiCatalog:
		return 2
	default:
		return 0
	}
}

// String implements the fmt.Stringer interface.
func (t CatalogType) String() string {
	if !t.Valid() {
		return "CatalogType(" + strconv.Itoa(int(t)) + ")"
	}
	return catalogTypes[t].names[0]
}

// MarshalText implements encoding.TextMarshaler.
func (t CatalogType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, catalogen.NewValidationError("CatalogType", "catalogType", catalogen.ConstraintUnknown, t.String())
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Both the catalog names (CATALOG, BI_CATALOG) and the shape names
// (SINGLE_VALUE, TWO_VALUE) are accepted, case-insensitively.
func (t *CatalogType) UnmarshalText(text []byte) error {
	v, err := ParseCatalogType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseCatalogType returns the catalog type for the given name.
func ParseCatalogType(s string) (CatalogType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, ct := range catalogTypes {
		for _, n := range ct.names {
			if n == name {
				return CatalogType(i), nil
			}
		}
	}
	return 0, catalogen.NewValidationError("CatalogType", "catalogType", catalogen.ConstraintUnknown, "unknown catalog type "+s)
}

// LombokMode selects between explicit boilerplate and Lombok annotations.
type LombokMode uint8

const (
	// LombokNone emits the constructor and getter methods explicitly.
	LombokNone LombokMode = iota

	// LombokEnabled relies on @RequiredArgsConstructor and @Getter.
	LombokEnabled
)

var lombokModes = [...]string{
	LombokNone:    "NONE",
	LombokEnabled: "LOMBOK",
}

// Valid reports whether m is a known lombok mode.
func (m LombokMode) Valid() bool { return int(m) < len(lombokModes) }

// Enabled reports whether Lombok annotations replace the boilerplate.
func (m LombokMode) Enabled() bool { return m == LombokEnabled }

// String implements the fmt.Stringer interface.
func (m LombokMode) String() string {
	if !m.Valid() {
		return "LombokMode(" + strconv.Itoa(int(m)) + ")"
	}
	return lombokModes[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m LombokMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, catalogen.NewValidationError("LombokMode", "lombokMode", catalogen.ConstraintUnknown, m.String())
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *LombokMode) UnmarshalText(text []byte) error {
	name := strings.ToUpper(strings.TrimSpace(string(text)))
	for i, n := range lombokModes {
		if n == name {
			*m = LombokMode(i)
			return nil
		}
	}
	return catalogen.NewValidationError("LombokMode", "lombokMode", catalogen.ConstraintUnknown, "unknown lombok mode "+string(text))
}

// TagStyle is how the tag of a two-value catalog constant is written in
// the generated source.
type TagStyle uint8

const (
	// TagQuoted tags are string literals.
	TagQuoted TagStyle = iota

	// TagChar tags are character literals holding exactly one character.
	TagChar

	// TagRaw tags are copied verbatim. They must be a numeric, boolean or
	// null literal, or a qualified constant such as Integer.MAX_VALUE.
	TagRaw
)

// TagStyleOf returns the tag style of a tag data type. An empty type is
// treated as String.
func TagStyleOf(dataType string) TagStyle {
	switch dataType {
	case "", "String", "java.lang.String":
		return TagQuoted
	case "char", "Character", "java.lang.Character":
		return TagChar
	default:
		return TagRaw
	}
}
