// Package fault define la taxonomía de errores de validación del write path.
// Los handlers los traducen a status HTTP; cualquier otro error se trata como
// falla de infraestructura (500) y su detalle nunca sale en la respuesta.
package fault

import "fmt"

// MissingFieldError: campo requerido ausente en el request (HTTP 400).
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// InvalidValueError: campo presente pero con formato/rango inválido (HTTP 400).
type InvalidValueError struct {
	Field  string
	Reason string
}

func (e InvalidValueError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is invalid", e.Field)
	}
	return fmt.Sprintf("%s is invalid: %s", e.Field, e.Reason)
}

// NotFoundError: la entidad referenciada (o la propia) no existe (HTTP 404).
type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// ConflictError: la operación viola una restricción de integridad
// a nivel de aplicación, ej. borrar una entidad aún referenciada (HTTP 409).
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

func MissingField(field string) error {
	return MissingFieldError{Field: field}
}

func InvalidValue(field, reason string) error {
	return InvalidValueError{Field: field, Reason: reason}
}

func NotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

func Conflict(msg string) error {
	return ConflictError{Message: msg}
}
