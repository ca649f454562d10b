package handler

import (
	"inbank/internal/decision"
	dErrors "inbank/pkg/domain-errors"
)

// maxPersonalCodeLength bounds input before it reaches the validator.
const maxPersonalCodeLength = 20

// DecisionRequest is the HTTP request body for POST /loan/decision.
type DecisionRequest struct {
	PersonalCode string `json:"personalCode"`
	LoanAmount   int    `json:"loanAmount"`
	LoanPeriod   int    `json:"loanPeriod"`
}

// Validate bounds the request size. Range checks belong to the decision
// service so that the validation order stays in one place.
// Implements the Validatable interface for httputil.Decode.
func (r *DecisionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast). The code is passed on verbatim; padding
	// makes it invalid.
	if len(r.PersonalCode) > maxPersonalCodeLength {
		return dErrors.New(dErrors.CodeInvalidPersonalCode, decision.MessageInvalidPersonalCode)
	}
	return nil
}

// ToDomain converts the validated body into a decision request.
func (r *DecisionRequest) ToDomain() decision.Request {
	return decision.Request{
		PersonalCode: r.PersonalCode,
		Amount:       r.LoanAmount,
		Period:       r.LoanPeriod,
	}
}
