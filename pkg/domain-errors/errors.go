// Package domainerrors carries typed, code-tagged errors across layers.
//
// Services return *Error values so that transport code can translate them into
// responses without string matching. Wrap keeps the underlying cause for logs
// while exposing only the safe message to clients.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error for transport mapping.
type Code string

const (
	CodeBadRequest         Code = "bad_request"
	CodeValidation         Code = "validation_error"
	CodeInvariantViolation Code = "invariant_violation"
	CodeNotFound           Code = "not_found"
	CodeTimeout            Code = "timeout"
	CodeInternal           Code = "internal_error"
	CodeUnsupportedMedia   Code = "unsupported_media_type"

	// Loan decision outcomes. The first four are client input problems; the
	// last means the inputs were fine but no loan fits the policy.
	CodeInvalidPersonalCode Code = "invalid_personal_code"
	CodeInvalidLoanAmount   Code = "invalid_loan_amount"
	CodeInvalidLoanPeriod   Code = "invalid_loan_period"
	CodeInvalidAge          Code = "invalid_age"
	CodeNoValidLoan         Code = "no_valid_loan"
)

// Error is a domain error with a code and a client-safe message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Is reports whether err is a domain error with the given code.
// Deprecated: Use HasCode instead.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// HasCode reports whether any domain error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// CodeOf returns the outermost domain code, or CodeInternal for foreign errors.
func CodeOf(err error) Code {
	if de, ok := As(err); ok {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code onto an HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation,
		CodeInvalidPersonalCode, CodeInvalidLoanAmount, CodeInvalidLoanPeriod, CodeInvalidAge:
		return http.StatusBadRequest
	case CodeNotFound, CodeNoValidLoan:
		return http.StatusNotFound
	case CodeUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
