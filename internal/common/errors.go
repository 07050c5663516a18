// File: internal/common/errors.go
package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// APIError is the single error shape this API exposes. The wire contract is a
// flat object with one "error" key holding a human-readable message; the HTTP
// status never appears in the body.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError: StatusCode=%d, Message=%s", e.StatusCode, e.Message)
}

func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

// WithMessage returns a copy of the error with a different message, leaving
// the sentinel untouched.
func (e *APIError) WithMessage(message string) *APIError {
	return &APIError{StatusCode: e.StatusCode, Message: message}
}

var (
	ErrBadRequest     = NewAPIError(http.StatusBadRequest, "Requisição inválida")
	ErrValidation     = NewAPIError(http.StatusBadRequest, "Falha na validação")
	ErrUnauthorized   = NewAPIError(http.StatusUnauthorized, "Não autorizado")
	ErrNotFound       = NewAPIError(http.StatusNotFound, "Recurso não encontrado")
	ErrInternalServer = NewAPIError(http.StatusInternalServerError, "Erro interno do servidor")
)

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ViolationMessages converts validator.ValidationErrors into a field -> message
// map. Used for structured logging; the wire response stays the flat
// "Falha na validação" body.
func ViolationMessages(errs validator.ValidationErrors) map[string]string {
	violations := make(map[string]string, len(errs))
	for _, e := range errs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			violations[field] = fmt.Sprintf("The %s field is required.", field)
		case "email":
			violations[field] = fmt.Sprintf("The %s field must be a valid email address.", field)
		case "min":
			violations[field] = fmt.Sprintf("The %s field must be at least %s characters long.", field, e.Param())
		case "max":
			violations[field] = fmt.Sprintf("The %s field may not be greater than %s characters.", field, e.Param())
		case "eqfield":
			violations[field] = fmt.Sprintf("The %s field must match the %s field.", field, strings.ToLower(e.Param()))
		default:
			violations[field] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", field, e.Tag())
		}
	}
	return violations
}
