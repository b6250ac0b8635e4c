// Package validator provides a small validation abstraction for request and
// domain values.
//
// Business code depends on the Validator interface; V10Validator implements
// it on top of go-playground/validator v10.
package validator

// Validator checks structs (through `validate` tags) and single values.
type Validator interface {
	// Validate checks every tagged field of data.
	Validate(data any) error
	// Var checks one value against a tag expression.
	Var(field any, tag string) error
}
