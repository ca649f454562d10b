package decision

import (
	"cloud.google.com/go/civil"

	"inbank/internal/decision/ports"
	"inbank/pkg/personalcode"
)

// verifyInputs applies the validation chain. The order is part of the
// contract: the first failing check decides the error.
//  1. Personal code passes the structural/checksum validator
//  2. Requested amount within policy bounds
//  3. Requested period within policy bounds
//  4. Age derived from the personal code within policy bounds
func verifyInputs(policy Policy, validator ports.PersonalCodeValidator, today civil.Date, req Request) (personalcode.Code, error) {
	if !validator.IsValid(req.PersonalCode) {
		return personalcode.Code{}, errInvalidPersonalCode(nil)
	}
	if !policy.amountInRange(req.Amount) {
		return personalcode.Code{}, errInvalidLoanAmount()
	}
	if !policy.periodInRange(req.Period) {
		return personalcode.Code{}, errInvalidLoanPeriod()
	}

	code, err := personalcode.Parse(req.PersonalCode)
	if err != nil {
		return personalcode.Code{}, errInvalidPersonalCode(err)
	}
	if !policy.ageInRange(personalcode.AgeOn(code.Birthdate(), today)) {
		return personalcode.Code{}, errInvalidAge()
	}
	return code, nil
}

// evaluate picks the loan for an already verified request.
// This is pure domain logic - the credit modifier lives only in this call.
func evaluate(policy Policy, code personalcode.Code, requestedPeriod int) (*Decision, error) {
	segment, modifier := policy.CreditModifier(code.Segment())
	if modifier == 0 {
		return nil, errNoValidLoan()
	}

	amount, period, ok := policy.FindLoan(modifier, requestedPeriod)
	if !ok {
		return nil, errNoValidLoan()
	}

	return &Decision{
		Amount:         amount,
		Period:         period,
		Segment:        segment,
		CreditModifier: modifier,
	}, nil
}
