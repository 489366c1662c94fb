// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// RowError points at one row of a multi-row detail form.
type RowError struct {
	Fila   int    `json:"fila"`
	Motivo string `json:"motivo"`
}

// ValidationError wraps field errors and, for order submissions, the
// per-row errors of the detail arrays. Both lists travel together so a
// client can repaint the whole form in one pass.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
	Rows   []RowError        `json:"rows,omitempty"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

func NewValidationWithRows(fields map[string]string, rows []RowError) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields, Rows: rows}
}
