package common

// MessageResponse is the body for plain status responses
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standardized error body. Details carry field-level
// validation errors and are omitted for server-side failures.
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// DataResponse wraps a created or fetched record together with a human message
type DataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewMessageResponse creates a plain status response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string, details interface{}) ErrorResponse {
	return ErrorResponse{Message: message, Details: details}
}

// NewDataResponse creates a response carrying a record
func NewDataResponse(message string, data interface{}) DataResponse {
	return DataResponse{Message: message, Data: data}
}
