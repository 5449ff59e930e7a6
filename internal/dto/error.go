package dto

// ErrorResponse is the error body returned by every endpoint. Fields is set for
// field-level validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
