package ports

import (
	"context"

	"cloud.google.com/go/civil"
)

// PersonalCodeValidator checks the structure and check digit of a personal
// code. Implementations must be safe for concurrent use.
type PersonalCodeValidator interface {
	IsValid(code string) bool
}

// Clock supplies the calendar date used for age checks.
type Clock interface {
	Today(ctx context.Context) civil.Date
}
