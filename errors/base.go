package errors

import "fmt"

type Error interface {
	error
	New(args ...any) BaseError
}

type BaseError struct {
	Code    int               `json:"code"`
	Name    string            `json:"name"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`

	messageFormat string
}

func (e BaseError) Error() string {
	return e.Message
}

func (e *BaseError) New(args ...any) BaseError {

	e.Message = fmt.Sprintf(e.messageFormat, args...)
	return *e
}

// WithDetails attaches per-field context, e.g. validation violations.
func (e BaseError) WithDetails(details map[string]string) BaseError {

	e.Details = details
	return e
}

func TryAssertError(err error) (BaseError, bool) {

	asserted, ok := err.(BaseError)
	return asserted, ok
}

func IsError(err error, expectedError BaseError) bool {

	asserted, ok := err.(BaseError)
	if !ok {
		return false
	}

	return asserted.Code == expectedError.Code && asserted.Message == expectedError.Message
}

func new(errorCode int, name string, messageFormat string) Error {

	return &BaseError{Code: errorCode, Name: name, messageFormat: messageFormat}
}
