// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Mensaje string `json:"mensaje"`
}

func New(msg string) *APIError {
	return &APIError{Mensaje: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Mensaje string            `json:"mensaje"`
	Campos  map[string]string `json:"campos"`
}

func NewValidation(campos map[string]string) *ValidationError {
	return &ValidationError{Mensaje: "Error de validacion", Campos: campos}
}

func (e *ValidationError) Error() string {
	return e.Mensaje
}
