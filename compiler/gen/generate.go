package gen

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/inflect"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/catalogen/compiler/element"
	"github.com/syssam/catalogen/schema"
)

// Generator turns catalog matrices into formatted source files.
// A Generator is safe for concurrent use.
type Generator struct {
	cfg *Config
}

// NewGenerator creates a Generator configured by opts.
//
// Example:
//
//	g, err := gen.NewGenerator(gen.WithWorkers(4), gen.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	resources, err := g.Format(ctx, matrix)
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Format generates one resource per definition of m, in definition order.
//
// The whole matrix is validated before any rendering starts. The batch is
// all-or-nothing: on the first failure no resources are returned.
func (g *Generator) Format(ctx context.Context, m *schema.CatalogMatrix) ([]*schema.CatalogResource, error) {
	log := g.cfg.Logger
	start := time.Now()
	if err := schema.ValidateMatrix(m); err != nil {
		log.Error("catalog matrix rejected", zap.Error(err))
		return nil, err
	}

	year := copyrightYear(m.Creator.CreationDate, g.cfg.CopyrightYear)
	resources := make([]*schema.CatalogResource, len(m.Definitions))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)

	for i, def := range m.Definitions {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			r, err := g.generate(def, m.Creator.Creator, year)
			if err != nil {
				return err
			}
			resources[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Error("catalog generation aborted", zap.Error(err))
		return nil, err
	}

	log.Info("catalog generation finished",
		zap.Int("count", len(resources)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return resources, nil
}

// generate renders a single validated definition.
func (g *Generator) generate(def *schema.CatalogDefinition, creator string, year int) (*schema.CatalogResource, error) {
	g.cfg.Logger.Debug("generating catalog",
		zap.String("package", def.PackageName),
		zap.String("class", def.ClassName),
		zap.Stringer("catalog_type", def.Meta.CatalogType),
		zap.Bool("lombok", def.Meta.LombokMode.Enabled()),
	)

	res, err := g.buildResource(def, creator, year)
	if err != nil {
		return nil, err
	}
	text, err := res.Compose(g.cfg.Formatter)
	if err != nil {
		return nil, err
	}
	return &schema.CatalogResource{
		PackageName: def.PackageName,
		ClassName:   def.ClassName,
		Resource:    text,
	}, nil
}

// buildResource assembles the element tree of def.
func (g *Generator) buildResource(def *schema.CatalogDefinition, creator string, year int) (*Resource, error) {
	variation, err := SelectVariation(def)
	if err != nil {
		return nil, err
	}
	imports, err := g.imports(def)
	if err != nil {
		return nil, err
	}
	copyright, err := element.NewCopyright(creator, year)
	if err != nil {
		return nil, err
	}
	pkg, err := element.NewPackage(def.PackageName)
	if err != nil {
		return nil, err
	}
	body, err := buildClassBody(def, creator, variation)
	if err != nil {
		return nil, err
	}
	return &Resource{Copyright: copyright, Package: pkg, Imports: imports, Body: body}, nil
}

// imports returns the import declarations of def: the catalog interface,
// then the configured dependent packages, then the Lombok packages. Each
// package is imported once, at its first position.
func (g *Generator) imports(def *schema.CatalogDefinition) ([]*element.Import, error) {
	catalogPkg, err := g.cfg.Packages.LookupPackage(def.Meta.CatalogType)
	if err != nil {
		return nil, err
	}
	names := append([]string{catalogPkg}, def.Meta.DependentPackages...)
	if def.Meta.LombokMode.Enabled() {
		names = append(names, g.cfg.Packages.LombokPackages()...)
	}
	var (
		seen    = make(map[string]bool, len(names))
		imports = make([]*element.Import, 0, len(names))
	)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		i, err := element.NewImport(name)
		if err != nil {
			return nil, err
		}
		imports = append(imports, i)
	}
	return imports, nil
}

func buildClassBody(def *schema.CatalogDefinition, creator string, v *Variation) (*ClassBody, error) {
	lombok := def.Meta.LombokMode.Enabled()
	desc, err := element.NewClassDescription(creator, def.Meta.Version)
	if err != nil {
		return nil, err
	}
	body := &ClassBody{
		Description: desc,
		Name:        def.ClassName,
		Lombok:      lombok,
		Interface:   v.Interface,
	}
	for _, e := range def.Enumerations {
		enum, err := buildEnumeration(e, v)
		if err != nil {
			return nil, err
		}
		body.Enumerations = append(body.Enumerations, enum)
	}
	for _, f := range def.Fields {
		field, err := buildField(f, lombok)
		if err != nil {
			return nil, err
		}
		body.Fields = append(body.Fields, field)
	}
	if lombok {
		a, err := element.NewAnnotation(element.AnnotationRequiredArgsConstructor)
		if err != nil {
			return nil, err
		}
		body.Annotations = append(body.Annotations, a)
		return body, nil
	}
	if body.Constructor, err = buildConstructor(def); err != nil {
		return nil, err
	}
	for _, f := range def.Fields {
		m, err := buildGetter(f)
		if err != nil {
			return nil, err
		}
		body.Methods = append(body.Methods, m)
	}
	return body, nil
}

func buildEnumeration(e *schema.CatalogEnumeration, v *Variation) (*element.Enumeration, error) {
	desc, err := element.NewDescription(e.Description)
	if err != nil {
		return nil, err
	}
	def, err := element.NewEnumDefinition(e.Literal, v.Values(e)...)
	if err != nil {
		return nil, err
	}
	return element.NewEnumeration(desc, def)
}

func buildField(f *schema.CatalogField, lombok bool) (*element.Field, error) {
	desc, err := element.NewDescription(f.Description)
	if err != nil {
		return nil, err
	}
	def, err := element.NewFieldDefinition(f.DataType, f.VariableName, lombok)
	if err != nil {
		return nil, err
	}
	if !lombok {
		return element.NewField(desc, def)
	}
	getter, err := element.NewAnnotation(element.AnnotationGetter)
	if err != nil {
		return nil, err
	}
	return element.NewField(desc, def, getter)
}

func buildConstructor(def *schema.CatalogDefinition) (*element.Constructor, error) {
	var (
		tags      = make([]*element.DescriptionTag, 0, len(def.Fields))
		params    = make([]*element.Parameter, 0, len(def.Fields))
		processes = make([]*element.ConstructorProcess, 0, len(def.Fields))
	)
	for _, f := range def.Fields {
		tag, err := element.NewDescriptionTag(element.TagParam, f.VariableName, f.Description)
		if err != nil {
			return nil, err
		}
		param, err := element.NewParameter(f.DataType, f.VariableName)
		if err != nil {
			return nil, err
		}
		process, err := element.NewConstructorProcess(f.VariableName)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
		params = append(params, param)
		processes = append(processes, process)
	}
	desc, err := element.NewFunctionDescription("A constructor that generates the catalog {@link "+def.ClassName+"} .", tags...)
	if err != nil {
		return nil, err
	}
	return element.NewConstructor(def.ClassName, desc, params, processes)
}

// buildGetter returns the interface accessor of f. Accessors implement the
// catalog interface, so they are documented there and carry no Javadoc.
func buildGetter(f *schema.CatalogField) (*element.Method, error) {
	override, err := element.NewAnnotation(element.AnnotationOverride)
	if err != nil {
		return nil, err
	}
	process, err := element.NewMethodProcess(element.MethodGetter, f.VariableName)
	if err != nil {
		return nil, err
	}
	return element.NewMethod(element.ModifierPublic, f.DataType, GetterName(f.VariableName), nil,
		[]*element.Annotation{override}, []*element.MethodProcess{process})
}

// GetterName returns the accessor name of a field, e.g. "getCode" for "code".
func GetterName(variableName string) string {
	return "get" + inflect.Capitalize(variableName)
}

// copyrightYear returns the year a creation date starts with, or fallback
// when the date is empty or does not start with a year.
func copyrightYear(creationDate string, fallback int) int {
	if len(creationDate) < 4 || strings.ContainsFunc(creationDate[:4], func(r rune) bool { return r < '0' || r > '9' }) {
		return fallback
	}
	year, err := strconv.Atoi(creationDate[:4])
	if err != nil || year == 0 {
		return fallback
	}
	return year
}
