package schema

// CatalogMeta holds the generation settings of one catalog definition.
// The zero value selects a single-value catalog without Lombok.
type CatalogMeta struct {
	Version           string      `json:"version" yaml:"version"`
	CatalogType       CatalogType `json:"catalogType,omitempty" yaml:"catalogType,omitempty"`
	DependentPackages []string    `json:"dependentPackages,omitempty" yaml:"dependentPackages,omitempty"`
	LombokMode        LombokMode  `json:"lombokMode,omitempty" yaml:"lombokMode,omitempty"`
}

// CatalogEnumeration describes one enum constant.
type CatalogEnumeration struct {
	Literal     string `json:"literal" yaml:"literal"`
	Code        int    `json:"code" yaml:"code"`
	Tag         string `json:"tag,omitempty" yaml:"tag,omitempty"` // BiCatalog only.
	Description string `json:"description" yaml:"description"`
}

// CatalogField describes one field of the generated enum. Field i maps to
// constructor parameter i and to constant value i.
type CatalogField struct {
	VariableName string `json:"variableName" yaml:"variableName"`
	DataType     string `json:"dataType" yaml:"dataType"`
	Description  string `json:"description" yaml:"description"`
}

// CatalogDefinition describes one generated catalog enum.
type CatalogDefinition struct {
	Meta         CatalogMeta           `json:"meta" yaml:"meta"`
	PackageName  string                `json:"packageName" yaml:"packageName"`
	ClassName    string                `json:"className" yaml:"className"`
	TagDataType  string                `json:"tagDataType,omitempty" yaml:"tagDataType,omitempty"` // Required for BiCatalog.
	Enumerations []*CatalogEnumeration `json:"enumerations" yaml:"enumerations"`
	Fields       []*CatalogField       `json:"fields" yaml:"fields"`
}

// QualifiedName returns the fully qualified Java class name.
func (d *CatalogDefinition) QualifiedName() string {
	if d.PackageName == "" {
		return d.ClassName
	}
	return d.PackageName + "." + d.ClassName
}

// CatalogCreator identifies who the generated sources are attributed to.
type CatalogCreator struct {
	Creator      string `json:"creator" yaml:"creator"`
	CreationDate string `json:"creationDate,omitempty" yaml:"creationDate,omitempty"`
}

// CatalogMatrix is the input of one generation run.
type CatalogMatrix struct {
	Creator     CatalogCreator       `json:"creator" yaml:"creator"`
	Definitions []*CatalogDefinition `json:"definitions" yaml:"definitions"`
}

// CatalogResource is one generated source file.
type CatalogResource struct {
	PackageName string
	ClassName   string
	Resource    string
}

// QualifiedName returns the fully qualified Java class name.
func (r *CatalogResource) QualifiedName() string {
	if r.PackageName == "" {
		return r.ClassName
	}
	return r.PackageName + "." + r.ClassName
}
