package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/catalogen"
	"github.com/syssam/catalogen/schema"
)

func testDefinition() *schema.CatalogDefinition {
	return &schema.CatalogDefinition{
		Meta:        schema.CatalogMeta{Version: "1.0.0"},
		PackageName: "org.thinkit.generator.catalog.test",
		ClassName:   "TestCatalog",
		Enumerations: []*schema.CatalogEnumeration{
			{Literal: "TEST1", Code: 0, Description: "Description 1"},
			{Literal: "TEST2", Code: 1, Description: "Description 2"},
		},
		Fields: []*schema.CatalogField{
			{VariableName: "code", DataType: "int", Description: "The code"},
		},
	}
}

func TestCatalogType(t *testing.T) {
	t.Run("zero value is single-value catalog", func(t *testing.T) {
		var ct schema.CatalogType
		assert.Equal(t, schema.Catalog, ct)
		assert.Equal(t, 0, ct.Code())
		assert.Equal(t, "Catalog", ct.Literal())
		assert.Equal(t, 1, ct.Arity())
	})

	t.Run("two-value catalog", func(t *testing.T) {
		assert.Equal(t, 1, schema.BiCatalog.Code())
		assert.Equal(t, "BiCatalog", schema.BiCatalog.Literal())
		assert.Equal(t, 2, schema.BiCatalog.Arity())
		assert.Equal(t, "BI_CATALOG", schema.BiCatalog.String())
	})

	t.Run("unknown type", func(t *testing.T) {
		ct := schema.CatalogType(9)
		assert.False(t, ct.Valid())
		assert.Empty(t, ct.Literal())
		assert.Equal(t, 0, ct.Arity())
		assert.Equal(t, "CatalogType(9)", ct.String())
	})

	t.Run("parses both naming schemes", func(t *testing.T) {
		tests := map[string]schema.CatalogType{
			"CATALOG":      schema.Catalog,
			"single_value": schema.Catalog,
			"BI_CATALOG":   schema.BiCatalog,
			" two_value ":  schema.BiCatalog,
		}
		for in, want := range tests {
			got, err := schema.ParseCatalogType(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}

		_, err := schema.ParseCatalogType("TRI_CATALOG")
		assert.True(t, catalogen.IsValidationError(err))
	})

	t.Run("text round trip through json", func(t *testing.T) {
		meta := schema.CatalogMeta{Version: "1.0.0", CatalogType: schema.BiCatalog, LombokMode: schema.LombokEnabled}
		data, err := json.Marshal(meta)
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":"1.0.0","catalogType":"BI_CATALOG","lombokMode":"LOMBOK"}`, string(data))

		var decoded schema.CatalogMeta
		require.NoError(t, json.Unmarshal([]byte(`{"version":"2","catalogType":"TWO_VALUE","lombokMode":"lombok"}`), &decoded))
		assert.Equal(t, schema.BiCatalog, decoded.CatalogType)
		assert.Equal(t, schema.LombokEnabled, decoded.LombokMode)
	})
}

func TestLombokMode(t *testing.T) {
	assert.False(t, schema.LombokNone.Enabled())
	assert.True(t, schema.LombokEnabled.Enabled())
	assert.Equal(t, "NONE", schema.LombokNone.String())

	var m schema.LombokMode
	assert.Error(t, m.UnmarshalText([]byte("DELOMBOK")))
}

func TestQualifiedName(t *testing.T) {
	d := testDefinition()
	assert.Equal(t, "org.thinkit.generator.catalog.test.TestCatalog", d.QualifiedName())

	r := &schema.CatalogResource{ClassName: "Color"}
	assert.Equal(t, "Color", r.QualifiedName())
}

func TestValidate(t *testing.T) {
	t.Run("accepts a complete definition", func(t *testing.T) {
		assert.NoError(t, schema.Validate(testDefinition()))
	})

	tests := []struct {
		name       string
		mutate     func(d *schema.CatalogDefinition)
		field      string
		constraint string
	}{
		{
			name:       "empty class name",
			mutate:     func(d *schema.CatalogDefinition) { d.ClassName = "" },
			field:      "className",
			constraint: catalogen.ConstraintNotEmpty,
		},
		{
			name:       "class name is not an identifier",
			mutate:     func(d *schema.CatalogDefinition) { d.ClassName = "Test Catalog" },
			field:      "className",
			constraint: catalogen.ConstraintIdentifier,
		},
		{
			name:       "empty package name",
			mutate:     func(d *schema.CatalogDefinition) { d.PackageName = "" },
			field:      "packageName",
			constraint: catalogen.ConstraintNotEmpty,
		},
		{
			name:       "malformed package name",
			mutate:     func(d *schema.CatalogDefinition) { d.PackageName = "org..thinkit" },
			field:      "packageName",
			constraint: catalogen.ConstraintIdentifier,
		},
		{
			name:       "empty version",
			mutate:     func(d *schema.CatalogDefinition) { d.Meta.Version = "" },
			field:      "meta.version",
			constraint: catalogen.ConstraintNotEmpty,
		},
		{
			name:       "unknown catalog type",
			mutate:     func(d *schema.CatalogDefinition) { d.Meta.CatalogType = 5 },
			field:      "meta.catalogType",
			constraint: catalogen.ConstraintUnknown,
		},
		{
			name:       "malformed dependent package",
			mutate:     func(d *schema.CatalogDefinition) { d.Meta.DependentPackages = []string{"java.util.List", "1bad"} },
			field:      "meta.dependentPackages[1]",
			constraint: catalogen.ConstraintIdentifier,
		},
		{
			name:       "empty enumerations",
			mutate:     func(d *schema.CatalogDefinition) { d.Enumerations = nil },
			field:      "enumerations",
			constraint: catalogen.ConstraintNotEmpty,
		},
		{
			name:       "nil enumeration",
			mutate:     func(d *schema.CatalogDefinition) { d.Enumerations[1] = nil },
			field:      "enumerations[1]",
			constraint: catalogen.ConstraintRequired,
		},
		{
			name:       "negative code",
			mutate:     func(d *schema.CatalogDefinition) { d.Enumerations[0].Code = -1 },
			field:      "enumerations[0].code",
			constraint: catalogen.ConstraintNonNegative,
		},
		{
			name:       "empty enumeration description",
			mutate:     func(d *schema.CatalogDefinition) { d.Enumerations[1].Description = "" },
			field:      "enumerations[1].description",
			constraint: catalogen.ConstraintNotEmpty,
		},
		{
			name:       "literal starting with a digit",
			mutate:     func(d *schema.CatalogDefinition) { d.Enumerations[0].Literal = "1TEST" },
			field:      "enumerations[0].literal",
			constraint: catalogen.ConstraintIdentifier,
		},
		{
			name:       "empty fields",
			mutate:     func(d *schema.CatalogDefinition) { d.Fields = []*schema.CatalogField{} },
			field:      "fields",
			constraint: catalogen.ConstraintNotEmpty,
		},
		{
			name:       "empty field data type",
			mutate:     func(d *schema.CatalogDefinition) { d.Fields[0].DataType = "" },
			field:      "fields[0].dataType",
			constraint: catalogen.ConstraintNotEmpty,
		},
		{
			name: "field count does not match catalog type",
			mutate: func(d *schema.CatalogDefinition) {
				d.Fields = append(d.Fields, &schema.CatalogField{VariableName: "tag", DataType: "String", Description: "The tag"})
			},
			field:      "fields",
			constraint: catalogen.ConstraintArity,
		},
		{
			name:       "two-value catalog without tag data type",
			mutate:     func(d *schema.CatalogDefinition) { d.Meta.CatalogType = schema.BiCatalog },
			field:      "tagDataType",
			constraint: catalogen.ConstraintNotEmpty,
		},
		{
			name: "two-value catalog with an empty numeric tag",
			mutate: func(d *schema.CatalogDefinition) {
				d.Meta.CatalogType = schema.BiCatalog
				d.TagDataType = "Integer"
			},
			field:      "enumerations[0].tag",
			constraint: catalogen.ConstraintNotEmpty,
		},
		{
			name: "two-value catalog with a primitive tag data type",
			mutate: func(d *schema.CatalogDefinition) {
				d.Meta.CatalogType = schema.BiCatalog
				d.TagDataType = "int"
			},
			field:      "tagDataType",
			constraint: catalogen.ConstraintIdentifier,
		},
		{
			name:       "constant named by a reserved word",
			mutate:     func(d *schema.CatalogDefinition) { d.Enumerations[0].Literal = "class" },
			field:      "enumerations[0].literal",
			constraint: catalogen.ConstraintIdentifier,
		},
		{
			name:       "field named by a primitive type",
			mutate:     func(d *schema.CatalogDefinition) { d.Fields[0].VariableName = "int" },
			field:      "fields[0].variableName",
			constraint: catalogen.ConstraintIdentifier,
		},
		{
			name:       "class named by a restricted type name",
			mutate:     func(d *schema.CatalogDefinition) { d.ClassName = "record" },
			field:      "className",
			constraint: catalogen.ConstraintIdentifier,
		},
		{
			name:       "package segment is a reserved word",
			mutate:     func(d *schema.CatalogDefinition) { d.PackageName = "org.example.enum" },
			field:      "packageName",
			constraint: catalogen.ConstraintIdentifier,
		},
		{
			name:       "constant description closes the comment",
			mutate:     func(d *schema.CatalogDefinition) { d.Enumerations[0].Description = "Ends */ here" },
			field:      "enumerations[0].description",
			constraint: catalogen.ConstraintCommentText,
		},
		{
			name:       "field description closes the comment",
			mutate:     func(d *schema.CatalogDefinition) { d.Fields[0].Description = "code */" },
			field:      "fields[0].description",
			constraint: catalogen.ConstraintCommentText,
		},
		{
			name:       "version closes the comment",
			mutate:     func(d *schema.CatalogDefinition) { d.Meta.Version = "1.0 */" },
			field:      "meta.version",
			constraint: catalogen.ConstraintCommentText,
		},
		{
			name: "numeric tag that is not a single literal",
			mutate: func(d *schema.CatalogDefinition) {
				d.Meta.CatalogType = schema.BiCatalog
				d.TagDataType = "Integer"
				d.Enumerations[0].Tag = "1"
				d.Enumerations[1].Tag = "1 2"
			},
			field:      "enumerations[1].tag",
			constraint: catalogen.ConstraintLiteral,
		},
		{
			name: "char tag with more than one character",
			mutate: func(d *schema.CatalogDefinition) {
				d.Meta.CatalogType = schema.BiCatalog
				d.TagDataType = "Character"
				d.Enumerations[0].Tag = "ab"
			},
			field:      "enumerations[0].tag",
			constraint: catalogen.ConstraintLiteral,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDefinition()
			tt.mutate(d)

			err := schema.Validate(d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, catalogen.ErrValidationFailed))

			var verr *catalogen.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.constraint, verr.Constraint)
		})
	}

	t.Run("nil definition", func(t *testing.T) {
		assert.True(t, catalogen.IsValidationError(schema.Validate(nil)))
	})
}

func TestValidateTags(t *testing.T) {
	twoValue := func(dataType string, tags ...string) *schema.CatalogDefinition {
		d := testDefinition()
		d.Meta.CatalogType = schema.BiCatalog
		d.TagDataType = dataType
		d.Fields = append(d.Fields, &schema.CatalogField{VariableName: "tag", DataType: dataType, Description: "The tag"})
		for i, tag := range tags {
			d.Enumerations[i].Tag = tag
		}
		return d
	}

	t.Run("accepts literal-shaped raw tags", func(t *testing.T) {
		for _, tags := range [][]string{
			{"42", "-7"},
			{"0x1F", "0b101"},
			{"1_000L", "2.5e-3d"},
			{"1.5f", ".5"},
			{"true", "false"},
			{"null", "TimeUnit.SECONDS"},
			{"Integer.MAX_VALUE", "MAX"},
		} {
			assert.NoError(t, schema.Validate(twoValue("Long", tags...)), tags)
		}
	})

	t.Run("rejects raw tags that are not a single literal", func(t *testing.T) {
		for _, tag := range []string{"1 2", "1;", "a + b", "foo()", "\"x\"", "class", "1.2.3"} {
			err := schema.Validate(twoValue("Integer", "1", tag))
			var verr *catalogen.ValidationError
			require.True(t, errors.As(err, &verr), tag)
			assert.Equal(t, catalogen.ConstraintLiteral, verr.Constraint, tag)
		}
	})

	t.Run("string tags may hold any text", func(t *testing.T) {
		assert.NoError(t, schema.Validate(twoValue("String", "", "a */ b")))
	})

	t.Run("char tags hold one character", func(t *testing.T) {
		assert.NoError(t, schema.Validate(twoValue("Character", "é", "'")))
		assert.Error(t, schema.Validate(twoValue("Character", "x", "")))
	})

	t.Run("tag style by data type", func(t *testing.T) {
		assert.Equal(t, schema.TagQuoted, schema.TagStyleOf("java.lang.String"))
		assert.Equal(t, schema.TagChar, schema.TagStyleOf("char"))
		assert.Equal(t, schema.TagRaw, schema.TagStyleOf("int"))
	})
}

func TestValidateMatrix(t *testing.T) {
	t.Run("accepts a complete matrix", func(t *testing.T) {
		m := &schema.CatalogMatrix{
			Creator:     schema.CatalogCreator{Creator: "Shinya"},
			Definitions: []*schema.CatalogDefinition{testDefinition()},
		}
		assert.NoError(t, schema.ValidateMatrix(m))
	})

	t.Run("creator cannot close the header comment", func(t *testing.T) {
		m := &schema.CatalogMatrix{
			Creator:     schema.CatalogCreator{Creator: "Shinya */"},
			Definitions: []*schema.CatalogDefinition{testDefinition()},
		}
		var verr *catalogen.ValidationError
		require.True(t, errors.As(schema.ValidateMatrix(m), &verr))
		assert.Equal(t, "creator.creator", verr.Field)
		assert.Equal(t, catalogen.ConstraintCommentText, verr.Constraint)
	})

	t.Run("requires a creator", func(t *testing.T) {
		m := &schema.CatalogMatrix{Definitions: []*schema.CatalogDefinition{testDefinition()}}
		var verr *catalogen.ValidationError
		require.True(t, errors.As(schema.ValidateMatrix(m), &verr))
		assert.Equal(t, "creator.creator", verr.Field)
	})

	t.Run("requires definitions", func(t *testing.T) {
		m := &schema.CatalogMatrix{Creator: schema.CatalogCreator{Creator: "Shinya"}}
		var verr *catalogen.ValidationError
		require.True(t, errors.As(schema.ValidateMatrix(m), &verr))
		assert.Equal(t, "definitions", verr.Field)
	})

	t.Run("reports the path of the failing definition", func(t *testing.T) {
		bad := testDefinition()
		bad.ClassName = ""
		m := &schema.CatalogMatrix{
			Creator:     schema.CatalogCreator{Creator: "Shinya"},
			Definitions: []*schema.CatalogDefinition{testDefinition(), bad},
		}
		var verr *catalogen.ValidationError
		require.True(t, errors.As(schema.ValidateMatrix(m), &verr))
		assert.Equal(t, "definitions[1].className", verr.Field)
	})

	t.Run("nil matrix", func(t *testing.T) {
		assert.True(t, catalogen.IsValidationError(schema.ValidateMatrix(nil)))
	})
}
