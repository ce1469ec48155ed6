package errors

// ErrorResponse is the envelope every failed API request returns
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail carries the operator-facing message (the outermost hint),
// the internal error chain in non-production modes, and any reportable
// details attached via WithReportableDetails
type ErrorDetail struct {
	Display       string         `json:"message"`
	InternalError string         `json:"internal_error,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}
