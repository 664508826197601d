package element

import (
	"strconv"
	"strings"

	"github.com/syssam/catalogen"
)

// TagKind is the kind of a Javadoc block tag.
type TagKind uint8

const (
	// TagParam documents a parameter: "@param name description".
	TagParam TagKind = iota

	// TagReturn documents the return value: "@return description".
	TagReturn
)

// String implements the fmt.Stringer interface.
func (k TagKind) String() string {
	switch k {
	case TagParam:
		return "@param"
	case TagReturn:
		return "@return"
	default:
		return "TagKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// DescriptionTag is one block tag line of a Javadoc comment.
type DescriptionTag struct {
	Kind        TagKind
	Name        string // Empty for TagReturn.
	Description string
}

// NewDescriptionTag returns a block tag. The name is required for TagParam
// and ignored for TagReturn.
func NewDescriptionTag(kind TagKind, name, description string) (*DescriptionTag, error) {
	switch {
	case kind != TagParam && kind != TagReturn:
		return nil, catalogen.NewArgumentError("DescriptionTag", "kind", "unknown tag kind "+kind.String())
	case kind == TagParam && name == "":
		return nil, catalogen.NewArgumentError("DescriptionTag", "name", "must not be empty")
	case description == "":
		return nil, catalogen.NewArgumentError("DescriptionTag", "description", "must not be empty")
	}
	if kind == TagReturn {
		name = ""
	}
	if err := checkCommentText("DescriptionTag", "name", name); err != nil {
		return nil, err
	}
	if err := checkCommentText("DescriptionTag", "description", description); err != nil {
		return nil, err
	}
	return &DescriptionTag{Kind: kind, Name: name, Description: description}, nil
}

// Render implements Element.
func (t *DescriptionTag) Render() string {
	if t.Kind == TagReturn {
		return "@return " + t.Description
	}
	return "@param " + t.Name + " " + t.Description
}

// FunctionDescription is the Javadoc of a constructor or method. An empty
// description renders nothing, tags included.
type FunctionDescription struct {
	Description string
	Tags        []*DescriptionTag
}

// NewFunctionDescription returns a function Javadoc.
func NewFunctionDescription(description string, tags ...*DescriptionTag) (*FunctionDescription, error) {
	if err := checkCommentText("FunctionDescription", "description", description); err != nil {
		return nil, err
	}
	for i, t := range tags {
		if t == nil {
			return nil, catalogen.NewArgumentError("FunctionDescription", "tags["+strconv.Itoa(i)+"]", "must not be nil")
		}
	}
	return &FunctionDescription{Description: description, Tags: tags}, nil
}

// Render implements Element.
func (d *FunctionDescription) Render() string {
	if d == nil || d.Description == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("/**\n * ")
	b.WriteString(d.Description)
	if len(d.Tags) > 0 {
		b.WriteString("\n *")
		for _, t := range d.Tags {
			b.WriteString("\n * ")
			b.WriteString(t.Render())
		}
	}
	b.WriteString("\n */")
	return b.String()
}
