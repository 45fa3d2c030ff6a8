package game

import "fmt"

// ErrorCode classifies a rejected action
type ErrorCode string

// error codes
const (
	// CodeValidation is malformed or out-of-range input
	CodeValidation ErrorCode = "validation"

	// CodeStateConflict is an action that is legal input but illegal in the
	// current phase or turn
	CodeStateConflict ErrorCode = "stateConflict"

	// CodeNotFound is a reference to something that does not exist
	CodeNotFound ErrorCode = "notFound"
)

// Error is an error that is safe to send back to the offending client.
// The room state is guaranteed untouched when one is returned.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func validationError(format string, a ...interface{}) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, a...)}
}

func stateConflictError(format string, a ...interface{}) *Error {
	return &Error{Code: CodeStateConflict, Message: fmt.Sprintf(format, a...)}
}

func notFoundError(format string, a ...interface{}) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, a...)}
}
