// Package schema provides the definition model for catalog generation.
//
// A CatalogMatrix is the input of one generation run. It carries the
// creator of the generated sources and an ordered list of CatalogDefinition
// values, each describing one Java enum to generate:
//
//	matrix := &schema.CatalogMatrix{
//	    Creator: schema.CatalogCreator{Creator: "Shinya"},
//	    Definitions: []*schema.CatalogDefinition{{
//	        Meta:        schema.CatalogMeta{Version: "1.0.0"},
//	        PackageName: "org.example.catalog",
//	        ClassName:   "Color",
//	        Enumerations: []*schema.CatalogEnumeration{
//	            {Literal: "RED", Code: 0, Description: "Red"},
//	            {Literal: "BLUE", Code: 1, Description: "Blue"},
//	        },
//	        Fields: []*schema.CatalogField{
//	            {VariableName: "code", DataType: "int", Description: "The code"},
//	        },
//	    }},
//	}
//
// # Catalog Types
//
// The catalog type is a closed variant:
//
//   - Catalog (single-value): each constant carries a numeric code and the
//     enum implements Catalog<Self>.
//   - BiCatalog (two-value): each constant carries a numeric code and a tag
//     and the enum implements BiCatalog<Self, TagType>.
//
// # Lombok Mode
//
// LombokNone emits the constructor and getters explicitly. LombokEnabled
// emits @RequiredArgsConstructor on the type and @Getter on each field
// instead.
//
// # Validation
//
// Model values are plain structs that are treated as read-only once built.
// Validate and ValidateMatrix check the required constraints on the whole
// definition graph before generation starts.
package schema
