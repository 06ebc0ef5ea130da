// Package apperror holds the error taxonomy shared by every domain.
//
//	ValidationError     -> 400
//	EntityNotFoundError -> 404
//	anything else       -> 500
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationError is returned when a domain invariant is violated
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError with a formatted message
func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// FromValidation turns an ozzo-validation failure into a ValidationError.
// Internal rule errors are returned unchanged and end up as 500s.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}

	return &ValidationError{Message: err.Error()}
}

// EntityNotFoundError is returned when an id has no row
type EntityNotFoundError struct {
	Entity string
	ID     string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s not found. id: %s", e.Entity, e.ID)
}

func NewEntityNotFound(entity, id string) *EntityNotFoundError {
	return &EntityNotFoundError{Entity: entity, ID: id}
}

func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

func IsEntityNotFound(err error) bool {
	var nfErr *EntityNotFoundError
	return errors.As(err, &nfErr)
}

// HTTPStatus maps an error to its response status code
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsEntityNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
