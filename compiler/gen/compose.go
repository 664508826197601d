package gen

import (
	"strings"

	"github.com/syssam/catalogen"
	"github.com/syssam/catalogen/compiler/element"
)

// ClassBody is the enum declaration of a catalog, from its Javadoc to the
// closing brace.
type ClassBody struct {
	Description  *element.ClassDescription
	Name         string
	Lombok       bool
	Annotations  []*element.Annotation // Emitted above the type in Lombok mode.
	Interface    *element.Interface
	Enumerations []*element.Enumeration
	Fields       []*element.Field
	Constructor  *element.Constructor // Ignored in Lombok mode.
	Methods      []*element.Method    // Ignored in Lombok mode.
}

// Render implements element.Element. Lines are emitted unindented with a
// blank line between members.
func (b *ClassBody) Render() string {
	lines := []string{b.Description.Render()}
	if b.Lombok {
		for _, a := range b.Annotations {
			lines = append(lines, a.Render())
		}
	}
	lines = append(lines, "public enum "+b.Name+" implements "+b.Interface.Render()+" {")

	for i, e := range b.Enumerations {
		sep := ","
		if i == len(b.Enumerations)-1 {
			sep = ";"
		}
		lines = append(lines, "", e.Render()+sep)
	}
	for _, f := range b.Fields {
		lines = append(lines, "", f.Render())
	}
	if !b.Lombok {
		if b.Constructor != nil {
			lines = append(lines, "", b.Constructor.Render())
		}
		for _, m := range b.Methods {
			lines = append(lines, "", m.Render())
		}
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// Resource is a complete source file.
type Resource struct {
	Copyright *element.Copyright
	Package   *element.Package
	Imports   []*element.Import
	Body      *ClassBody
}

// Render implements element.Element.
func (r *Resource) Render() string {
	parts := []string{r.Copyright.Render(), "", r.Package.Render(), ""}
	if len(r.Imports) > 0 {
		for _, i := range r.Imports {
			parts = append(parts, i.Render())
		}
		parts = append(parts, "")
	}
	parts = append(parts, r.Body.Render())
	return strings.Join(parts, "\n")
}

// Compose renders r and canonicalizes it with f. A formatter failure means
// the elements rendered malformed text, so it is reported as a
// *catalogen.GenerationError in the format phase rather than as bad input.
func (r *Resource) Compose(f SourceFormatter) (string, error) {
	src := r.Render()
	out, err := f.Format(src)
	if err != nil {
		name := r.Body.Name
		if r.Package != nil {
			name = r.Package.Name + "." + name
		}
		return "", catalogen.NewGenerationError("format", name, "formatter rejected generated source", err)
	}
	return out, nil
}
