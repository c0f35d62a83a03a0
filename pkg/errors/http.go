package errors

import "net/http"

type HTTPError struct {
	Code       string
	Message    string
	StatusCode int
}

func NewHTTPError(code string, message string) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// WithStatus returns a copy of e answered with statusCode.
func (e HTTPError) WithStatus(statusCode int) *HTTPError {
	e.StatusCode = statusCode
	return &e
}

// WithMessage returns a copy of e carrying a more specific message.
func (e HTTPError) WithMessage(message string) *HTTPError {
	e.Message = message
	return &e
}

func (e HTTPError) Error() string {
	return e.Code + " - " + e.Message
}
