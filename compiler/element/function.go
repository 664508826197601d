package element

import (
	"strconv"
	"strings"

	"github.com/syssam/catalogen"
)

// Modifier is a Java access modifier.
type Modifier uint8

const (
	// ModifierNone renders no modifier (package-private, or implicit for enum constructors).
	ModifierNone Modifier = iota
	ModifierPublic
	ModifierProtected
	ModifierPrivate
)

// String returns the keyword, empty for ModifierNone.
func (m Modifier) String() string {
	switch m {
	case ModifierPublic:
		return "public"
	case ModifierProtected:
		return "protected"
	case ModifierPrivate:
		return "private"
	default:
		return ""
	}
}

// Parameter is a formal parameter of a constructor or method.
type Parameter struct {
	DataType     string
	VariableName string
}

// NewParameter returns a formal parameter.
func NewParameter(dataType, variableName string) (*Parameter, error) {
	switch {
	case dataType == "":
		return nil, catalogen.NewArgumentError("Parameter", "dataType", "must not be empty")
	case variableName == "":
		return nil, catalogen.NewArgumentError("Parameter", "variableName", "must not be empty")
	}
	return &Parameter{DataType: dataType, VariableName: variableName}, nil
}

// Render implements Element.
func (p *Parameter) Render() string {
	return p.DataType + " " + p.VariableName
}

func renderParameters(params []*Parameter) string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Render()
	}
	return strings.Join(out, ", ")
}

// ConstructorProcess is a constructor statement assigning a parameter to the
// field of the same name.
type ConstructorProcess struct {
	VariableName string
}

// NewConstructorProcess returns the assignment of variableName.
func NewConstructorProcess(variableName string) (*ConstructorProcess, error) {
	if variableName == "" {
		return nil, catalogen.NewArgumentError("ConstructorProcess", "variableName", "must not be empty")
	}
	return &ConstructorProcess{VariableName: variableName}, nil
}

// Render implements Element.
func (p *ConstructorProcess) Render() string {
	return "this." + p.VariableName + " = " + p.VariableName + ";"
}

// Constructor is a documented constructor.
type Constructor struct {
	Name        string
	Description *FunctionDescription // Optional.
	Parameters  []*Parameter
	Processes   []*ConstructorProcess
}

// NewConstructor returns a constructor of the named type. Enum constructors
// are implicitly private, so no modifier is rendered.
func NewConstructor(name string, description *FunctionDescription, params []*Parameter, processes []*ConstructorProcess) (*Constructor, error) {
	if name == "" {
		return nil, catalogen.NewArgumentError("Constructor", "name", "must not be empty")
	}
	for i, p := range params {
		if p == nil {
			return nil, catalogen.NewArgumentError("Constructor", "params["+strconv.Itoa(i)+"]", "must not be nil")
		}
	}
	for i, p := range processes {
		if p == nil {
			return nil, catalogen.NewArgumentError("Constructor", "processes["+strconv.Itoa(i)+"]", "must not be nil")
		}
	}
	return &Constructor{Name: name, Description: description, Parameters: params, Processes: processes}, nil
}

// Render implements Element.
func (c *Constructor) Render() string {
	var lines []string
	if doc := c.Description.Render(); doc != "" {
		lines = append(lines, doc)
	}
	lines = append(lines, c.Name+"("+renderParameters(c.Parameters)+") {")
	for _, p := range c.Processes {
		lines = append(lines, p.Render())
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// MethodKind is the kind of statement a MethodProcess renders.
type MethodKind uint8

const (
	MethodDefault MethodKind = iota
	MethodGetter
	MethodSetter
)

// String implements the fmt.Stringer interface.
func (k MethodKind) String() string {
	switch k {
	case MethodDefault:
		return "DEFAULT"
	case MethodGetter:
		return "GETTER"
	case MethodSetter:
		return "SETTER"
	default:
		return "MethodKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// MethodProcess is a method body statement. Catalogs are read-only, so only
// getter statements can be built.
type MethodProcess struct {
	Kind         MethodKind
	VariableName string
}

// NewMethodProcess returns a method body statement for variableName. Any
// kind other than MethodGetter fails with a *catalogen.UnsupportedError.
func NewMethodProcess(kind MethodKind, variableName string) (*MethodProcess, error) {
	if kind != MethodGetter {
		return nil, catalogen.NewUnsupportedError(kind.String() + " method process")
	}
	if variableName == "" {
		return nil, catalogen.NewArgumentError("MethodProcess", "variableName", "must not be empty")
	}
	return &MethodProcess{Kind: kind, VariableName: variableName}, nil
}

// Render implements Element.
func (p *MethodProcess) Render() string {
	return "return this." + p.VariableName + ";"
}

// Method is a documented, annotated method.
type Method struct {
	Modifier    Modifier
	ReturnType  string
	Name        string
	Description *FunctionDescription // Optional.
	Annotations []*Annotation
	Processes   []*MethodProcess
}

// NewMethod returns a method without parameters. Catalog accessors take
// none.
func NewMethod(modifier Modifier, returnType, name string, description *FunctionDescription, annotations []*Annotation, processes []*MethodProcess) (*Method, error) {
	switch {
	case returnType == "":
		return nil, catalogen.NewArgumentError("Method", "returnType", "must not be empty")
	case name == "":
		return nil, catalogen.NewArgumentError("Method", "name", "must not be empty")
	}
	for i, a := range annotations {
		if a == nil {
			return nil, catalogen.NewArgumentError("Method", "annotations["+strconv.Itoa(i)+"]", "must not be nil")
		}
	}
	for i, p := range processes {
		if p == nil {
			return nil, catalogen.NewArgumentError("Method", "processes["+strconv.Itoa(i)+"]", "must not be nil")
		}
	}
	return &Method{
		Modifier:    modifier,
		ReturnType:  returnType,
		Name:        name,
		Description: description,
		Annotations: annotations,
		Processes:   processes,
	}, nil
}

// Render implements Element.
func (m *Method) Render() string {
	var lines []string
	if doc := m.Description.Render(); doc != "" {
		lines = append(lines, doc)
	}
	for _, a := range m.Annotations {
		lines = append(lines, a.Render())
	}
	signature := m.ReturnType + " " + m.Name + "() {"
	if mod := m.Modifier.String(); mod != "" {
		signature = mod + " " + signature
	}
	lines = append(lines, signature)
	for _, p := range m.Processes {
		lines = append(lines, p.Render())
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}
