// Package gen provides source generation for catalog matrices.
//
// This package turns validated catalog definitions into Java enum sources
// implementing the Catalog or BiCatalog interface, and writes them into a
// package-structured source tree.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	Catalog matrix (YAML or JSON)
//	        ↓
//	   schema.CatalogMatrix + schema.ValidateMatrix
//	        ↓
//	   Variation (interface and enum values per catalog type)
//	        ↓
//	   Resource (element tree: copyright, package, imports, class body)
//	        ↓
//	   SourceFormatter (layout and syntax check)
//	        ↓
//	   schema.CatalogResource → Writer
//
// # Key Types
//
//   - Generator: Validates a matrix and renders one resource per definition
//   - Variation: Interface declaration and enum constant values of a catalog type
//   - ClassBody, Resource: Composition of the rendered elements
//   - Writer: Persists resources to a billy filesystem
//   - Config: Global configuration for generation
//
// # Error Handling
//
// Errors are the structured types of the root catalogen package:
//
//   - ValidationError: A definition violates a required constraint
//   - UnsupportedError: A catalog type or method kind is not supported
//   - ConfigError: A package mapping or option is missing or invalid
//   - GenerationError: Formatting or writing failed
//
// Example error handling:
//
//	resources, err := g.Format(ctx, matrix)
//	if err != nil {
//	    if catalogen.IsValidationError(err) {
//	        // Fix the matrix
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	g, err := gen.NewGenerator(
//	    gen.WithWorkers(4),
//	    gen.WithLogger(logger),
//	)
//
// Additional options available:
//
//	g, err := gen.NewGenerator(
//	    gen.WithPackageLookup(store),    // Custom content store
//	    gen.WithCopyrightYear(2024),     // Year when the matrix has no creation date
//	)
//
// # Usage
//
//	g, err := gen.NewGenerator()
//	if err != nil {
//	    return err
//	}
//	resources, err := g.Format(ctx, matrix)
//	if err != nil {
//	    return err
//	}
//	w := gen.NewWriter(osfs.New("src/main/java")).
//	    WithExtension("java").
//	    WithLogger(logger)
//	err = w.Write(ctx, resources)
//
// # Generated Output
//
// Each definition produces one file:
//
//	{output}/
//	└── {package path}/
//	    └── {ClassName}.java
package gen
