// Package validators provides input validation for the note mutation
// requests, decoupled from the transport and storage layers.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldErrors: an error value aggregating per-field failures, so the
//     transport layer can put structured detail into the response envelope.
//
// Usage:
//  1. Construct a Validator (NewNotesValidator) and inject it into the
//     validation service wrapper.
//  2. Call Validate with context, value, and optional field names.
//  3. On failure, extract FieldErrors with errors.As for per-field detail.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
