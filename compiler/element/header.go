package element

import (
	"fmt"
	"strings"

	"github.com/syssam/catalogen"
)

const copyrightTemplate = `/*
 * Copyright %d %s.
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License. You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed under the License
 * is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express
 * or implied. See the License for the specific language governing permissions and limitations under
 * the License.
 */`

// commentEnd terminates a block comment. Text embedded in a comment must
// not contain it.
const commentEnd = "*/"

func checkCommentText(element, argument, text string) error {
	if strings.Contains(text, commentEnd) {
		return catalogen.NewArgumentError(element, argument, `must not contain "*/"`)
	}
	return nil
}

// Copyright is the license header at the top of every generated file.
type Copyright struct {
	Creator string
	Year    int
}

// NewCopyright returns the license header attributed to creator.
func NewCopyright(creator string, year int) (*Copyright, error) {
	if creator == "" {
		return nil, catalogen.NewArgumentError("Copyright", "creator", "must not be empty")
	}
	if year <= 0 {
		return nil, catalogen.NewArgumentError("Copyright", "year", "must be positive")
	}
	if err := checkCommentText("Copyright", "creator", creator); err != nil {
		return nil, err
	}
	return &Copyright{Creator: creator, Year: year}, nil
}

// Render implements Element.
func (c *Copyright) Render() string {
	return fmt.Sprintf(copyrightTemplate, c.Year, c.Creator)
}

// Package is the package declaration.
type Package struct {
	Name string
}

// NewPackage returns the declaration of the named package.
func NewPackage(name string) (*Package, error) {
	if name == "" {
		return nil, catalogen.NewArgumentError("Package", "name", "must not be empty")
	}
	return &Package{Name: name}, nil
}

// Render implements Element.
func (p *Package) Render() string {
	return "package " + p.Name + ";"
}

// Import is a single-type import declaration.
type Import struct {
	Name string
}

// NewImport returns the import of a fully qualified type name.
func NewImport(name string) (*Import, error) {
	if name == "" {
		return nil, catalogen.NewArgumentError("Import", "name", "must not be empty")
	}
	return &Import{Name: name}, nil
}

// Render implements Element.
func (i *Import) Render() string {
	return "import " + i.Name + ";"
}

// ClassDescription is the Javadoc of the generated enum type.
type ClassDescription struct {
	Creator string
	Version string
}

// NewClassDescription returns the class Javadoc naming the creator and the
// version the class was introduced in.
func NewClassDescription(creator, version string) (*ClassDescription, error) {
	switch {
	case creator == "":
		return nil, catalogen.NewArgumentError("ClassDescription", "creator", "must not be empty")
	case version == "":
		return nil, catalogen.NewArgumentError("ClassDescription", "version", "must not be empty")
	}
	if err := checkCommentText("ClassDescription", "creator", creator); err != nil {
		return nil, err
	}
	if err := checkCommentText("ClassDescription", "version", version); err != nil {
		return nil, err
	}
	return &ClassDescription{Creator: creator, Version: version}, nil
}

// Render implements Element.
func (d *ClassDescription) Render() string {
	lines := []string{
		"/**",
		" * This catalog class was created by Catalog Generator.",
		" *",
		" * <p>You may learn more about the Catalog API at",
		" *",
		" * <p>https://github.com/myConsciousness/catalog-api",
		" *",
		" * @author " + d.Creator,
		" * @since " + d.Version,
		" */",
	}
	return strings.Join(lines, "\n")
}

// Description is a plain Javadoc comment, used for enum constants and fields.
type Description struct {
	Text string
}

// NewDescription returns a Javadoc comment holding text.
func NewDescription(text string) (*Description, error) {
	if text == "" {
		return nil, catalogen.NewArgumentError("Description", "text", "must not be empty")
	}
	if err := checkCommentText("Description", "text", text); err != nil {
		return nil, err
	}
	return &Description{Text: text}, nil
}

// Render implements Element.
func (d *Description) Render() string {
	return "/**\n * " + d.Text + "\n */"
}
