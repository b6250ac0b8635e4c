package goerror

import (
	"fmt"
	"net/http"
	"strings"
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	// TypeServer represents server-side failures.
	TypeServer Type = iota
	// TypeValidation represents client input failures.
	TypeValidation
	// TypeConfiguration represents missing or broken deployment settings.
	TypeConfiguration
)

// String returns the string representation of the error type.
func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeConfiguration:
		return "ERROR_TYPE_CONFIGURATION"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to HTTP status codes.
type Code int

const (
	// CodeInternal represents an internal or unspecified error.
	CodeInternal Code = iota
	// CodeInvalidFormat indicates a request body that cannot be decoded.
	CodeInvalidFormat
	// CodeInvalidInput indicates a decoded request that breaks a field rule.
	CodeInvalidInput
	// CodeMisconfigured indicates required settings are absent.
	CodeMisconfigured
	// CodeNotFound indicates a missing resource.
	CodeNotFound
	// CodeMethodNotAllowed indicates the route exists with another method.
	CodeMethodNotAllowed
)

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeMisconfigured:
		return "ERROR_CODE_MISCONFIGURED"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	case CodeMethodNotAllowed:
		return "ERROR_CODE_METHOD_NOT_ALLOWED"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a user-facing message,
// a high-level type, and a stable error code. Only the message is meant to
// reach clients; the wrapped error stays server side.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
	details []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	switch e.errType {
	case TypeValidation:
		return "Validation violation"
	case TypeConfiguration:
		return "Configuration incomplete"
	case TypeServer:
		return "Internal error"
	default:
		return "Unknown error"
	}
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Details: %v, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.details,
		e.err,
	)
}

// Msg returns the user-facing error message.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Details returns the extra items attached to the error, such as the names
// of missing settings.
func (e *Error) Details() []string {
	return e.details
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func new(err error, msg string, et Type, code Code) *Error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates a server-type error wrapping err. The optional message
// replaces the default "Internal server error" text shown to clients.
func NewServer(err error, msgs ...string) error {
	msg := "Internal server error"
	if len(msgs) > 0 && msgs[0] != "" {
		msg = msgs[0]
	}
	return new(err, msg, TypeServer, CodeInternal)
}

// NewInvalidInput creates a validation error carrying the rule's message.
func NewInvalidInput(msg string) error {
	return new(nil, msg, TypeValidation, CodeInvalidInput)
}

// NewInvalidFormat creates a validation error for an invalid request body format.
func NewInvalidFormat(msgs ...string) error {
	if len(msgs) == 0 {
		return new(nil, "Invalid request body", TypeValidation, CodeInvalidFormat)
	}
	return new(nil, msgs[0], TypeValidation, CodeInvalidFormat)
}

// NewMisconfigured creates a configuration error listing the missing setting names.
func NewMisconfigured(names ...string) error {
	e := new(nil, "Erro de configuração: faltando "+strings.Join(names, ", "), TypeConfiguration, CodeMisconfigured)
	e.details = append([]string(nil), names...)
	return e
}

// NewNotFound creates an error for unknown routes or resources.
func NewNotFound(msg string) error {
	return new(nil, msg, TypeValidation, CodeNotFound)
}

// NewMethodNotAllowed creates an error for a known route called with the wrong method.
func NewMethodNotAllowed(msg string) error {
	return new(nil, msg, TypeValidation, CodeMethodNotAllowed)
}
