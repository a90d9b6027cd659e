package menu

import (
	"errors"
	"fmt"
	"strconv"
)

// Errores de dominio (no HTTP). El handler los traduce a status codes.
var ErrorInvalidInput = errors.New("invalid input")

// Campos que puede reportar una ValidationError.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCourse      = "course"
	FieldPrice       = "price"
)

// ValidationError indica qué campo falló y por qué.
// errors.Is(err, ErrorInvalidInput) es true para cualquier ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", err.Field, err.Reason)
}

func (err *ValidationError) Is(target error) bool {
	return target == ErrorInvalidInput
}

func quote(value string) string {
	return strconv.Quote(value)
}
