package schema

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/syssam/catalogen"
)

// ValidateMatrix checks the matrix and every definition it owns.
// It returns the first violated constraint as a *catalogen.ValidationError.
func ValidateMatrix(m *CatalogMatrix) error {
	if m == nil {
		return catalogen.NewValidationError("CatalogMatrix", "matrix", catalogen.ConstraintRequired, "")
	}
	if err := validateCreator(&m.Creator); err != nil {
		return err
	}
	if len(m.Definitions) == 0 {
		return catalogen.NewValidationError("CatalogMatrix", "definitions", catalogen.ConstraintNotEmpty, "")
	}
	for i, d := range m.Definitions {
		if err := validateDefinition(d, fmt.Sprintf("definitions[%d].", i)); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single catalog definition.
func Validate(d *CatalogDefinition) error {
	return validateDefinition(d, "")
}

func validateCreator(c *CatalogCreator) error {
	switch {
	case strings.TrimSpace(c.Creator) == "":
		return catalogen.NewValidationError("CatalogCreator", "creator.creator", catalogen.ConstraintNotEmpty, "")
	case !isCommentText(c.Creator):
		return catalogen.NewValidationError("CatalogCreator", "creator.creator", catalogen.ConstraintCommentText, c.Creator)
	}
	return nil
}

func validateDefinition(d *CatalogDefinition, path string) error {
	if d == nil {
		return catalogen.NewValidationError("CatalogDefinition", strings.TrimSuffix(path, "."), catalogen.ConstraintRequired, "")
	}
	if err := validateMeta(&d.Meta, path+"meta."); err != nil {
		return err
	}
	switch {
	case d.PackageName == "":
		return catalogen.NewValidationError("CatalogDefinition", path+"packageName", catalogen.ConstraintNotEmpty, "")
	case !isQualifiedName(d.PackageName):
		return catalogen.NewValidationError("CatalogDefinition", path+"packageName", catalogen.ConstraintIdentifier, d.PackageName)
	case d.ClassName == "":
		return catalogen.NewValidationError("CatalogDefinition", path+"className", catalogen.ConstraintNotEmpty, "")
	case !isTypeIdentifier(d.ClassName):
		return catalogen.NewValidationError("CatalogDefinition", path+"className", catalogen.ConstraintIdentifier, d.ClassName)
	case d.Meta.CatalogType == BiCatalog && d.TagDataType == "":
		return catalogen.NewValidationError("CatalogDefinition", path+"tagDataType", catalogen.ConstraintNotEmpty, "required for "+BiCatalog.String())
	case d.Meta.CatalogType == BiCatalog && isPrimitive(d.TagDataType):
		return catalogen.NewValidationError("CatalogDefinition", path+"tagDataType", catalogen.ConstraintIdentifier,
			"type argument must be a reference type, got "+d.TagDataType)
	case len(d.Enumerations) == 0:
		return catalogen.NewValidationError("CatalogDefinition", path+"enumerations", catalogen.ConstraintNotEmpty, "")
	case len(d.Fields) == 0:
		return catalogen.NewValidationError("CatalogDefinition", path+"fields", catalogen.ConstraintNotEmpty, "")
	}
	for i, e := range d.Enumerations {
		if err := validateEnumeration(e, fmt.Sprintf("%senumerations[%d]", path, i)); err != nil {
			return err
		}
	}
	if d.Meta.CatalogType == BiCatalog {
		style := TagStyleOf(d.TagDataType)
		for i, e := range d.Enumerations {
			if err := validateTag(e.Tag, style, d.TagDataType, fmt.Sprintf("%senumerations[%d].tag", path, i)); err != nil {
				return err
			}
		}
	}
	for i, f := range d.Fields {
		if err := validateField(f, fmt.Sprintf("%sfields[%d]", path, i)); err != nil {
			return err
		}
	}
	if want := d.Meta.CatalogType.Arity(); len(d.Fields) != want {
		return catalogen.NewValidationError("CatalogDefinition", path+"fields", catalogen.ConstraintArity,
			fmt.Sprintf("%s requires %d field(s), got %d", d.Meta.CatalogType, want, len(d.Fields)))
	}
	return nil
}

func validateMeta(m *CatalogMeta, path string) error {
	switch {
	case m.Version == "":
		return catalogen.NewValidationError("CatalogMeta", path+"version", catalogen.ConstraintNotEmpty, "")
	case !isCommentText(m.Version):
		return catalogen.NewValidationError("CatalogMeta", path+"version", catalogen.ConstraintCommentText, m.Version)
	case !m.CatalogType.Valid():
		return catalogen.NewValidationError("CatalogMeta", path+"catalogType", catalogen.ConstraintUnknown, m.CatalogType.String())
	case !m.LombokMode.Valid():
		return catalogen.NewValidationError("CatalogMeta", path+"lombokMode", catalogen.ConstraintUnknown, m.LombokMode.String())
	}
	for i, p := range m.DependentPackages {
		if !isQualifiedName(p) {
			return catalogen.NewValidationError("CatalogMeta", fmt.Sprintf("%sdependentPackages[%d]", path, i), catalogen.ConstraintIdentifier, p)
		}
	}
	return nil
}

func validateEnumeration(e *CatalogEnumeration, path string) error {
	switch {
	case e == nil:
		return catalogen.NewValidationError("CatalogEnumeration", path, catalogen.ConstraintRequired, "")
	case e.Literal == "":
		return catalogen.NewValidationError("CatalogEnumeration", path+".literal", catalogen.ConstraintNotEmpty, "")
	case !isIdentifier(e.Literal):
		return catalogen.NewValidationError("CatalogEnumeration", path+".literal", catalogen.ConstraintIdentifier, e.Literal)
	case e.Code < 0:
		return catalogen.NewValidationError("CatalogEnumeration", path+".code", catalogen.ConstraintNonNegative, fmt.Sprint(e.Code))
	case e.Description == "":
		return catalogen.NewValidationError("CatalogEnumeration", path+".description", catalogen.ConstraintNotEmpty, "")
	case !isCommentText(e.Description):
		return catalogen.NewValidationError("CatalogEnumeration", path+".description", catalogen.ConstraintCommentText, e.Description)
	}
	return nil
}

func validateField(f *CatalogField, path string) error {
	switch {
	case f == nil:
		return catalogen.NewValidationError("CatalogField", path, catalogen.ConstraintRequired, "")
	case f.VariableName == "":
		return catalogen.NewValidationError("CatalogField", path+".variableName", catalogen.ConstraintNotEmpty, "")
	case !isIdentifier(f.VariableName):
		return catalogen.NewValidationError("CatalogField", path+".variableName", catalogen.ConstraintIdentifier, f.VariableName)
	case f.DataType == "":
		return catalogen.NewValidationError("CatalogField", path+".dataType", catalogen.ConstraintNotEmpty, "")
	case f.Description == "":
		return catalogen.NewValidationError("CatalogField", path+".description", catalogen.ConstraintNotEmpty, "")
	case !isCommentText(f.Description):
		return catalogen.NewValidationError("CatalogField", path+".description", catalogen.ConstraintCommentText, f.Description)
	}
	return nil
}

func validateTag(tag string, style TagStyle, dataType, path string) error {
	switch style {
	case TagChar:
		if utf8.RuneCountInString(tag) != 1 {
			return catalogen.NewValidationError("CatalogEnumeration", path, catalogen.ConstraintLiteral,
				"tag data type "+dataType+" requires exactly one character")
		}
	case TagRaw:
		switch {
		case tag == "":
			return catalogen.NewValidationError("CatalogEnumeration", path, catalogen.ConstraintNotEmpty,
				"required for tag data type "+dataType)
		case !isRawLiteral(tag):
			return catalogen.NewValidationError("CatalogEnumeration", path, catalogen.ConstraintLiteral, tag)
		}
	}
	return nil
}

// keywords are the reserved words and literals that cannot name anything.
var keywords = map[string]struct{}{}

// restrictedTypeNames are contextual keywords that cannot name a type.
var restrictedTypeNames = map[string]struct{}{
	"var": {}, "yield": {}, "record": {}, "sealed": {}, "permits": {},
}

func init() {
	for _, w := range strings.Fields(`abstract assert boolean break byte case catch char class const
		continue default do double else enum extends final finally float for goto if implements
		import instanceof int interface long native new package private protected public return
		short static strictfp super switch synchronized this throw throws transient try void
		volatile while true false null _`) {
		keywords[w] = struct{}{}
	}
}

// isIdentifier reports whether s is a Java identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if _, ok := keywords[s]; ok {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// isTypeIdentifier reports whether s can name a class.
func isTypeIdentifier(s string) bool {
	_, restricted := restrictedTypeNames[s]
	return !restricted && isIdentifier(s)
}

// isQualifiedName reports whether s is a dot separated list of identifiers.
func isQualifiedName(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !isIdentifier(part) {
			return false
		}
	}
	return true
}

// isPrimitive reports whether s names a primitive type.
func isPrimitive(s string) bool {
	switch s {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

// isCommentText reports whether s can be embedded in a block comment
// without closing it.
func isCommentText(s string) bool {
	return !strings.Contains(s, "*/")
}

var numericLiteral = regexp.MustCompile(
	`^-?(?:0[xX][0-9a-fA-F_]+[lL]?|0[bB][01_]+[lL]?|(?:[0-9][0-9_]*(?:\.[0-9_]*)?|\.[0-9][0-9_]*)(?:[eE][+-]?[0-9]+)?[lLfFdD]?)$`)

// isRawLiteral reports whether s is a numeric, boolean or null literal, or
// a qualified constant reference.
func isRawLiteral(s string) bool {
	switch s {
	case "true", "false", "null":
		return true
	}
	return numericLiteral.MatchString(s) || isQualifiedName(s)
}
