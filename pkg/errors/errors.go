// Package errors defines the coded errors shared by the engine, the CLI and
// the HTTP server.
//
// Every failure a caller may want to branch on carries a [Code]:
//
//	INVALID_*      the request, a name or the configuration was rejected
//	MALFORMED_*    a document or the radicals table could not be parsed
//	*NOT_FOUND     a component or stored glyph does not exist
//	STORAGE_ERROR  a store backend failed
//	INTERNAL_ERROR anything else
//
// Codes survive wrapping, so a caller several layers up can still ask:
//
//	err := errors.Wrap(errors.ErrCodeMalformedDocument, xmlErr, "parse %s", path)
//	if errors.Is(err, errors.ErrCodeMalformedDocument) {
//	    // skip the component
//	}
//
// [Code.Status] gives the HTTP status a code is reported with.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidRequest Code = "INVALID_REQUEST"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidName    Code = "INVALID_NAME"

	ErrCodeMalformedDocument Code = "MALFORMED_DOCUMENT"
	ErrCodeMalformedCatalog  Code = "MALFORMED_CATALOG"

	ErrCodeNotFound          Code = "NOT_FOUND"
	ErrCodeComponentNotFound Code = "COMPONENT_NOT_FOUND"

	ErrCodeStorage     Code = "STORAGE_ERROR"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Status returns the HTTP status used to report c. Problems with the
// server's own inputs, such as a malformed radicals table, are 500s.
func (c Code) Status() int {
	switch {
	case strings.HasPrefix(string(c), "INVALID_"):
		return http.StatusBadRequest
	case strings.HasSuffix(string(c), "NOT_FOUND"):
		return http.StatusNotFound
	case c == ErrCodeMalformedDocument:
		return http.StatusUnprocessableEntity
	case c == ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error formats the error as "CODE: message[: cause]".
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an error with code and a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in the chain of err has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// Has reports whether any *Error in the chain of err has code.
// Unlike Is it looks past an outer *Error with a different code.
func Has(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in the chain of err,
// or "" if there is none.
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost *Error without its code
// and cause, or err.Error() for other errors.
func UserMessage(err error) string {
	if e, ok := as(err); ok {
		return e.Message
	}
	return err.Error()
}

func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
