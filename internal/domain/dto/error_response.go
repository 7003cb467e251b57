package dto

import "time"

// ErrorResponse is the standardized JSON error body.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid symbol"`
	ErrorDetails string    `json:"error,omitempty" example:"symbol must be 1-10 letters"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse; err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
