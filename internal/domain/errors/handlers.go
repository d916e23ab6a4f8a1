package errors

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Detail    string `json:"detail"`           // User-friendly error message
	Code      string `json:"code"`             // Business error code, e.g., "TOKEN_EXPIRED"
	Errors    any    `json:"errors,omitempty"` // Field-level details (validation only)
	RequestID string `json:"request_id"`       // Request tracking ID
}
