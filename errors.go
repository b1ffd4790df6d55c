package payments

import "fmt"

// SchemaError reports a malformed or incomplete inbound resource. Field is
// the JSON path of the offending value, e.g. "attributes.amount".
type SchemaError struct {
	Field      string
	Constraint string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema error: %s", e.Constraint)
	}
	return fmt.Sprintf("schema error at %q: %s", e.Field, e.Constraint)
}

// ValidationError reports an outbound request or patch violating a
// structural or mutual-exclusivity constraint.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Constraint)
	}
	return fmt.Sprintf("validation error at %q: %s", e.Field, e.Constraint)
}

// TypeMismatchError reports a narrowing attempt against the wrong variant.
type TypeMismatchError struct {
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("payment type mismatch: want %s, got %s", e.Want, e.Got)
}

// fieldFault is a field/constraint pair raised by checks shared between the
// parse and request paths. The parse path reports it as a SchemaError, the
// request path as a ValidationError.
type fieldFault struct {
	field      string
	constraint string
}

func (f *fieldFault) schema() *SchemaError {
	return &SchemaError{Field: f.field, Constraint: f.constraint}
}

func (f *fieldFault) validation() *ValidationError {
	return &ValidationError{Field: f.field, Constraint: f.constraint}
}
