package element

import (
	"strconv"
	"strings"

	"github.com/syssam/catalogen"
)

// Generics is a type argument list such as "<TestCatalog, String>".
type Generics struct {
	Params []string
}

// NewGenerics returns a type argument list. An empty list is allowed and
// renders as the empty string.
func NewGenerics(params ...string) (*Generics, error) {
	for i, p := range params {
		if p == "" {
			return nil, catalogen.NewArgumentError("Generics", "params["+strconv.Itoa(i)+"]", "must not be empty")
		}
	}
	return &Generics{Params: params}, nil
}

// Empty reports whether the list has no type arguments.
func (g *Generics) Empty() bool {
	return g == nil || len(g.Params) == 0
}

// Render implements Element.
func (g *Generics) Render() string {
	if g.Empty() {
		return ""
	}
	return "<" + strings.Join(g.Params, ", ") + ">"
}

// Interface is an implemented interface with its type arguments.
type Interface struct {
	Literal  string
	Generics *Generics // Optional.
}

// NewInterface returns an interface reference. generics may be nil.
func NewInterface(literal string, generics *Generics) (*Interface, error) {
	if literal == "" {
		return nil, catalogen.NewArgumentError("Interface", "literal", "must not be empty")
	}
	return &Interface{Literal: literal, Generics: generics}, nil
}

// Render implements Element.
func (i *Interface) Render() string {
	return i.Literal + i.Generics.Render()
}

// MaxEnumValues is the largest number of constructor arguments an enum
// constant carries: the code and, for two-value catalogs, the tag.
const MaxEnumValues = 2

// EnumDefinition is an enum constant with its constructor arguments, which
// are rendered verbatim and must already be valid literals.
type EnumDefinition struct {
	Literal string
	Values  []string
}

// NewEnumDefinition returns an enum constant carrying up to MaxEnumValues
// arguments.
func NewEnumDefinition(literal string, values ...string) (*EnumDefinition, error) {
	switch {
	case literal == "":
		return nil, catalogen.NewArgumentError("EnumDefinition", "literal", "must not be empty")
	case len(values) > MaxEnumValues:
		return nil, catalogen.NewArgumentError("EnumDefinition", "values",
			"at most "+strconv.Itoa(MaxEnumValues)+" values are supported, got "+strconv.Itoa(len(values)))
	}
	for i, v := range values {
		if v == "" {
			return nil, catalogen.NewArgumentError("EnumDefinition", "values["+strconv.Itoa(i)+"]", "must not be empty")
		}
	}
	return &EnumDefinition{Literal: literal, Values: values}, nil
}

// Render implements Element.
func (d *EnumDefinition) Render() string {
	if len(d.Values) == 0 {
		return d.Literal
	}
	return d.Literal + "(" + strings.Join(d.Values, ", ") + ")"
}

// Enumeration is a documented enum constant. The separator that follows the
// constant is added by the class body.
type Enumeration struct {
	Description *Description
	Definition  *EnumDefinition
}

// NewEnumeration returns a documented enum constant.
func NewEnumeration(description *Description, definition *EnumDefinition) (*Enumeration, error) {
	switch {
	case description == nil:
		return nil, catalogen.NewArgumentError("Enumeration", "description", "must not be nil")
	case definition == nil:
		return nil, catalogen.NewArgumentError("Enumeration", "definition", "must not be nil")
	}
	return &Enumeration{Description: description, Definition: definition}, nil
}

// Render implements Element.
func (e *Enumeration) Render() string {
	return e.Description.Render() + "\n" + e.Definition.Render()
}

// FieldDefinition is a private field declaration. Final fields are used in
// Lombok mode, where the constructor covers exactly the final fields.
type FieldDefinition struct {
	DataType     string
	VariableName string
	Final        bool
}

// NewFieldDefinition returns a private field declaration.
func NewFieldDefinition(dataType, variableName string, final bool) (*FieldDefinition, error) {
	switch {
	case dataType == "":
		return nil, catalogen.NewArgumentError("FieldDefinition", "dataType", "must not be empty")
	case variableName == "":
		return nil, catalogen.NewArgumentError("FieldDefinition", "variableName", "must not be empty")
	}
	return &FieldDefinition{DataType: dataType, VariableName: variableName, Final: final}, nil
}

// Render implements Element.
func (d *FieldDefinition) Render() string {
	if d.Final {
		return "private final " + d.DataType + " " + d.VariableName + ";"
	}
	return "private " + d.DataType + " " + d.VariableName + ";"
}

// Field is a documented, optionally annotated field.
type Field struct {
	Description *Description
	Annotations []*Annotation
	Definition  *FieldDefinition
}

// NewField returns a documented field. Annotations are rendered between the
// Javadoc and the declaration, in order.
func NewField(description *Description, definition *FieldDefinition, annotations ...*Annotation) (*Field, error) {
	switch {
	case description == nil:
		return nil, catalogen.NewArgumentError("Field", "description", "must not be nil")
	case definition == nil:
		return nil, catalogen.NewArgumentError("Field", "definition", "must not be nil")
	}
	for i, a := range annotations {
		if a == nil {
			return nil, catalogen.NewArgumentError("Field", "annotations["+strconv.Itoa(i)+"]", "must not be nil")
		}
	}
	return &Field{Description: description, Annotations: annotations, Definition: definition}, nil
}

// Render implements Element.
func (f *Field) Render() string {
	parts := make([]string, 0, len(f.Annotations)+2)
	parts = append(parts, f.Description.Render())
	for _, a := range f.Annotations {
		parts = append(parts, a.Render())
	}
	parts = append(parts, f.Definition.Render())
	return strings.Join(parts, "\n")
}

// AnnotationPattern is the closed set of annotations a catalog uses.
type AnnotationPattern uint8

const (
	// AnnotationOverride marks an interface method implementation.
	AnnotationOverride AnnotationPattern = iota

	// AnnotationRequiredArgsConstructor asks Lombok for a constructor over the final fields.
	AnnotationRequiredArgsConstructor

	// AnnotationGetter asks Lombok for a field accessor.
	AnnotationGetter
)

var annotationNames = [...]string{
	AnnotationOverride:                "Override",
	AnnotationRequiredArgsConstructor: "RequiredArgsConstructor",
	AnnotationGetter:                  "Getter",
}

// String implements the fmt.Stringer interface.
func (p AnnotationPattern) String() string {
	if int(p) >= len(annotationNames) {
		return "AnnotationPattern(" + strconv.Itoa(int(p)) + ")"
	}
	return annotationNames[p]
}

// AnnotationParameter is one "key = value" element of an annotation.
type AnnotationParameter struct {
	Key   string
	Value string
}

// NewAnnotationParameter returns an annotation element. The value is
// rendered verbatim.
func NewAnnotationParameter(key, value string) (*AnnotationParameter, error) {
	switch {
	case key == "":
		return nil, catalogen.NewArgumentError("AnnotationParameter", "key", "must not be empty")
	case value == "":
		return nil, catalogen.NewArgumentError("AnnotationParameter", "value", "must not be empty")
	}
	return &AnnotationParameter{Key: key, Value: value}, nil
}

// Render implements Element.
func (p *AnnotationParameter) Render() string {
	return p.Key + " = " + p.Value
}

// Annotation is an annotation usage such as "@Override".
type Annotation struct {
	Pattern    AnnotationPattern
	Parameters []*AnnotationParameter
}

// NewAnnotation returns an annotation usage.
func NewAnnotation(pattern AnnotationPattern, params ...*AnnotationParameter) (*Annotation, error) {
	if int(pattern) >= len(annotationNames) {
		return nil, catalogen.NewArgumentError("Annotation", "pattern", "unknown annotation "+pattern.String())
	}
	for i, p := range params {
		if p == nil {
			return nil, catalogen.NewArgumentError("Annotation", "params["+strconv.Itoa(i)+"]", "must not be nil")
		}
	}
	return &Annotation{Pattern: pattern, Parameters: params}, nil
}

// Render implements Element.
func (a *Annotation) Render() string {
	if len(a.Parameters) == 0 {
		return "@" + a.Pattern.String()
	}
	params := make([]string, len(a.Parameters))
	for i, p := range a.Parameters {
		params[i] = p.Render()
	}
	return "@" + a.Pattern.String() + "(" + strings.Join(params, ", ") + ")"
}
