package models

// Response is the uniform envelope every operation resolves to.
// Success marks the outcome; Data carries either the domain payload or, for
// validation failures, a list of FieldError detail entries.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// NewSuccessResponse wraps a payload in a successful envelope.
func NewSuccessResponse(message string, data any) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse wraps an error outcome in the envelope. Data is optional
// structured detail (e.g. per-field validation errors).
func NewErrorResponse(message string, data any) Response {
	return Response{
		Success: false,
		Message: message,
		Data:    data,
	}
}

// FieldError describes a single invalid request field. A slice of these is
// returned as envelope data when input validation fails.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
