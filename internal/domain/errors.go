// Package domain defines the error taxonomy shared by all services.
// Handlers match these with errors.As to pick the HTTP status and decide
// between inline field presentation and a banner.
package domain

// ValidationError reports a field-level rule failure (required field,
// bad pattern, minimum count).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError means the referenced entity id does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NotFound builds a NotFoundError for the named resource.
func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ConflictError means a delete was blocked by a dependent entity. Message
// is user-facing and names the blocking relationship.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Conflict builds a ConflictError with a human-readable reason.
func Conflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}
