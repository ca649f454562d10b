package adapters

import (
	"inbank/internal/decision/ports"
	"inbank/pkg/personalcode"
)

// PersonalCodeAdapter implements ports.PersonalCodeValidator with the
// in-process Estonian personal code rules.
type PersonalCodeAdapter struct{}

// NewPersonalCodeAdapter creates a new personal code adapter.
func NewPersonalCodeAdapter() ports.PersonalCodeValidator {
	return PersonalCodeAdapter{}
}

// IsValid reports whether code has a valid structure and check digit.
func (PersonalCodeAdapter) IsValid(code string) bool {
	return personalcode.IsValid(code)
}
