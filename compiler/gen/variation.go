package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/catalogen"
	"github.com/syssam/catalogen/compiler/element"
	"github.com/syssam/catalogen/schema"
)

// Variation is the part of a catalog's shape decided by its catalog type.
type Variation struct {
	// Interface is the implemented catalog interface with its type arguments.
	Interface *element.Interface

	// Values returns the constructor arguments of an enum constant.
	Values func(e *schema.CatalogEnumeration) []string
}

// SelectVariation returns the shape of def. Adding a catalog type requires a
// new case here and a matching arity in schema.CatalogType.
func SelectVariation(def *schema.CatalogDefinition) (*Variation, error) {
	var (
		generics *element.Generics
		values   func(e *schema.CatalogEnumeration) []string
		err      error
	)
	switch def.Meta.CatalogType {
	case schema.Catalog:
		generics, err = element.NewGenerics(def.ClassName)
		values = func(e *schema.CatalogEnumeration) []string {
			return []string{strconv.Itoa(e.Code)}
		}
	case schema.BiCatalog:
		generics, err = element.NewGenerics(def.ClassName, def.TagDataType)
		values = func(e *schema.CatalogEnumeration) []string {
			return []string{strconv.Itoa(e.Code), TagLiteral(def.TagDataType, e.Tag)}
		}
	default:
		return nil, catalogen.NewUnsupportedError(fmt.Sprintf("catalog type %s", def.Meta.CatalogType))
	}
	if err != nil {
		return nil, err
	}
	iface, err := element.NewInterface(def.Meta.CatalogType.Literal(), generics)
	if err != nil {
		return nil, err
	}
	return &Variation{Interface: iface, Values: values}, nil
}

// TagLiteral renders a tag value as a literal of dataType. String tags are
// double quoted, char tags single quoted, and anything else is emitted as is.
// Validation restricts raw tags to literal-shaped tokens.
func TagLiteral(dataType, tag string) string {
	switch schema.TagStyleOf(dataType) {
	case schema.TagQuoted:
		return quote(tag, '"')
	case schema.TagChar:
		return quote(tag, '\'')
	default:
		return tag
	}
}

func quote(s string, q rune) string {
	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		switch r {
		case q, '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteRune(q)
	return b.String()
}
