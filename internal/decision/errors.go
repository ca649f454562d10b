package decision

import (
	dErrors "inbank/pkg/domain-errors"
)

// FailureKind enumerates why a decision could not be made.
type FailureKind string

const (
	FailureInvalidPersonalCode FailureKind = "invalid_personal_code"
	FailureInvalidLoanAmount   FailureKind = "invalid_loan_amount"
	FailureInvalidLoanPeriod   FailureKind = "invalid_loan_period"
	FailureInvalidAge          FailureKind = "invalid_age"
	FailureNoValidLoan         FailureKind = "no_valid_loan"
	FailureInternal            FailureKind = "internal_error"
)

// Client-facing messages. The web client matches on these verbatim.
const (
	MessageInvalidPersonalCode = "Invalid personal ID code!"
	MessageInvalidLoanAmount   = "Invalid loan amount!"
	MessageInvalidLoanPeriod   = "Invalid loan period!"
	MessageInvalidAge          = "Invalid age!"
	MessageNoValidLoan         = "No valid loan found!"
	MessageUnexpected          = "An unexpected error occurred"
)

var kindCodes = []struct {
	kind FailureKind
	code dErrors.Code
}{
	{FailureInvalidPersonalCode, dErrors.CodeInvalidPersonalCode},
	{FailureInvalidLoanAmount, dErrors.CodeInvalidLoanAmount},
	{FailureInvalidLoanPeriod, dErrors.CodeInvalidLoanPeriod},
	{FailureInvalidAge, dErrors.CodeInvalidAge},
	{FailureNoValidLoan, dErrors.CodeNoValidLoan},
}

// KindOf classifies err. It returns "" for nil and FailureInternal for
// anything that is not a decision failure.
func KindOf(err error) FailureKind {
	if err == nil {
		return ""
	}
	for _, kc := range kindCodes {
		if dErrors.HasCode(err, kc.code) {
			return kc.kind
		}
	}
	return FailureInternal
}

// Message returns the client-facing text for a failure kind.
func (k FailureKind) Message() string {
	switch k {
	case FailureInvalidPersonalCode:
		return MessageInvalidPersonalCode
	case FailureInvalidLoanAmount:
		return MessageInvalidLoanAmount
	case FailureInvalidLoanPeriod:
		return MessageInvalidLoanPeriod
	case FailureInvalidAge:
		return MessageInvalidAge
	case FailureNoValidLoan:
		return MessageNoValidLoan
	default:
		return MessageUnexpected
	}
}

func errInvalidPersonalCode(cause error) error {
	return dErrors.Wrap(cause, dErrors.CodeInvalidPersonalCode, MessageInvalidPersonalCode)
}

func errInvalidLoanAmount() error {
	return dErrors.New(dErrors.CodeInvalidLoanAmount, MessageInvalidLoanAmount)
}

func errInvalidLoanPeriod() error {
	return dErrors.New(dErrors.CodeInvalidLoanPeriod, MessageInvalidLoanPeriod)
}

func errInvalidAge() error {
	return dErrors.New(dErrors.CodeInvalidAge, MessageInvalidAge)
}

func errNoValidLoan() error {
	return dErrors.New(dErrors.CodeNoValidLoan, MessageNoValidLoan)
}
