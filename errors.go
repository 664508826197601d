// Package catalogen generates Java catalog enums from catalog definitions.
//
// The root package holds the error taxonomy shared by every stage of the
// pipeline. The generation itself lives under compiler/.
package catalogen

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidArgument is returned when a required element or model argument is missing.
	ErrInvalidArgument = errors.New("catalogen: invalid argument")

	// ErrValidationFailed is returned when a catalog definition violates a required constraint.
	ErrValidationFailed = errors.New("catalogen: validation failed")

	// ErrUnsupported is returned when an operation is not supported for catalog generation.
	ErrUnsupported = errors.New("catalogen: not supported for catalog generation")

	// ErrSyntax is returned by the source formatter when the assembled text does not parse.
	ErrSyntax = errors.New("catalogen: syntax error")

	// ErrConfigurationMissing is returned when the content store has no entry for a lookup.
	ErrConfigurationMissing = errors.New("catalogen: configuration missing")

	// ErrGenerationFailed indicates an internal code generation failure.
	ErrGenerationFailed = errors.New("catalogen: code generation failed")
)

// ArgumentError reports a missing or empty required argument passed to an
// element factory.
type ArgumentError struct {
	Element  string // Element kind, e.g. "FieldDefinition"
	Argument string // Argument name, e.g. "dataType"
	Message  string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	var b strings.Builder
	b.WriteString("catalogen: invalid argument")
	if e.Argument != "" {
		fmt.Fprintf(&b, " %q", e.Argument)
	}
	if e.Element != "" {
		b.WriteString(" for ")
		b.WriteString(e.Element)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ArgumentError.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewArgumentError creates a new ArgumentError.
func NewArgumentError(element, argument, message string) *ArgumentError {
	return &ArgumentError{
		Element:  element,
		Argument: argument,
		Message:  message,
	}
}

// Constraint kinds reported by ValidationError.
const (
	ConstraintRequired    = "required"
	ConstraintNotEmpty    = "not_empty"
	ConstraintNonNegative = "non_negative"
	ConstraintIdentifier  = "identifier"
	ConstraintArity       = "arity"
	ConstraintUnknown     = "unknown_value"
	ConstraintCommentText = "comment_text"
	ConstraintLiteral     = "literal"
)

// ValidationError represents a violated constraint on the definition graph.
type ValidationError struct {
	Type       string // Model type, e.g. "CatalogField"
	Field      string // Path of the violated field, e.g. "definitions[0].fields[1].dataType"
	Constraint string // One of the Constraint* kinds
	Message    string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("catalogen: validation error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Constraint != "" {
		b.WriteString(" (")
		b.WriteString(e.Constraint)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationError creates a new ValidationError.
func NewValidationError(typeName, field, constraint, message string) *ValidationError {
	return &ValidationError{
		Type:       typeName,
		Field:      field,
		Constraint: constraint,
		Message:    message,
	}
}

// UnsupportedError reports an operation that catalog generation refuses to perform.
type UnsupportedError struct {
	Operation string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("catalogen: %s is not supported for catalog generation", e.Operation)
}

// Is reports whether the target matches the sentinel error for UnsupportedError.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// NewUnsupportedError creates a new UnsupportedError.
func NewUnsupportedError(operation string) *UnsupportedError {
	return &UnsupportedError{Operation: operation}
}

// SyntaxError represents a structural defect found while formatting
// assembled source text.
type SyntaxError struct {
	Line    int // 1-based, 0 if unknown
	Column  int // 1-based, 0 if unknown
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString("catalogen: syntax error")
	if e.Line > 0 {
		fmt.Fprintf(&b, " at %d:%d", e.Line, e.Column)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying diagnostic.
func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SyntaxError.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// NewSyntaxError creates a new SyntaxError.
func NewSyntaxError(line, column int, message string, cause error) *SyntaxError {
	return &SyntaxError{
		Line:    line,
		Column:  column,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError represents a configuration error: an invalid option value or
// a content store lookup with no configured entry.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("catalogen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("catalogen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfigurationMissing
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase    string // "compose", "format", "write", etc.
	Resource string // Fully qualified class name, if known
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("catalogen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.Resource != "" {
		b.WriteString(" (resource: ")
		b.WriteString(e.Resource)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, resource, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:    phase,
		Resource: resource,
		Message:  message,
		Cause:    cause,
	}
}

// IsArgumentError reports whether the error is an ArgumentError.
func IsArgumentError(err error) bool {
	var argErr *ArgumentError
	return errors.As(err, &argErr)
}

// IsValidationError reports whether the error is a ValidationError.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsUnsupportedError reports whether the error is an UnsupportedError.
func IsUnsupportedError(err error) bool {
	var unsupportedErr *UnsupportedError
	return errors.As(err, &unsupportedErr)
}

// IsSyntaxError reports whether the error is a SyntaxError.
func IsSyntaxError(err error) bool {
	var syntaxErr *SyntaxError
	return errors.As(err, &syntaxErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
