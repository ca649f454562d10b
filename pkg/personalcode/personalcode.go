// Package personalcode parses and validates Estonian personal identification
// codes (isikukood).
//
// Layout of the 11 digits:
//
//	G YYMMDD SSS C
//
// G encodes century and sex, YYMMDD is the birthdate within that century, SSS
// is a serial number and C is a mod-11 check digit.
package personalcode

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Length is the number of digits in a personal code.
const Length = 11

var (
	// ErrInvalid is the parent of every parse and validation failure.
	ErrInvalid = errors.New("invalid personal code")

	ErrInvalidLength     = fmt.Errorf("%w: must be %d digits", ErrInvalid, Length)
	ErrInvalidIdentifier = fmt.Errorf("%w: unknown century identifier", ErrInvalid)
	ErrInvalidBirthdate  = fmt.Errorf("%w: birthdate is not a calendar date", ErrInvalid)
	ErrInvalidChecksum   = fmt.Errorf("%w: check digit mismatch", ErrInvalid)
)

// Gender as encoded in the identifier digit.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// centuries maps the identifier digit to the first year of its century.
// Odd identifiers are male, even are female.
var centuries = map[int]int{
	1: 1800, 2: 1800,
	3: 1900, 4: 1900,
	5: 2000, 6: 2000,
}

// Code is a structurally valid personal code. The zero value is not valid.
type Code struct {
	raw        string
	identifier int
	birthdate  civil.Date
}

// Parse checks length, digits, identifier and birthdate. It does not verify
// the check digit; use Validate for that.
func Parse(s string) (Code, error) {
	if len(s) != Length {
		return Code{}, ErrInvalidLength
	}
	for i := 0; i < Length; i++ {
		if s[i] < '0' || s[i] > '9' {
			return Code{}, fmt.Errorf("%w: non-digit at position %d", ErrInvalid, i+1)
		}
	}

	identifier := digit(s, 0)
	century, ok := centuries[identifier]
	if !ok {
		return Code{}, ErrInvalidIdentifier
	}

	birthdate := civil.Date{
		Year:  century + number(s, 1, 3),
		Month: time.Month(number(s, 3, 5)),
		Day:   number(s, 5, 7),
	}
	if !birthdate.IsValid() {
		return Code{}, ErrInvalidBirthdate
	}

	return Code{raw: s, identifier: identifier, birthdate: birthdate}, nil
}

// Validate performs the full structural and checksum check.
func Validate(s string) error {
	if _, err := Parse(s); err != nil {
		return err
	}
	if digit(s, Length-1) != Checksum(s[:Length-1]) {
		return ErrInvalidChecksum
	}
	return nil
}

// IsValid reports whether s is a valid personal code.
func IsValid(s string) bool {
	return Validate(s) == nil
}

var (
	firstWeights  = [10]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1}
	secondWeights = [10]int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
)

// Checksum computes the check digit for the first ten digits of a code.
// The caller must pass exactly ten ASCII digits.
func Checksum(first10 string) int {
	if sum := weighted(first10, firstWeights) % 11; sum != 10 {
		return sum
	}
	if sum := weighted(first10, secondWeights) % 11; sum != 10 {
		return sum
	}
	return 0
}

func weighted(s string, weights [10]int) int {
	total := 0
	for i, w := range weights {
		total += digit(s, i) * w
	}
	return total
}

// String returns the code as given.
func (c Code) String() string {
	return c.raw
}

// Birthdate returns the date of birth encoded in the code.
func (c Code) Birthdate() civil.Date {
	return c.birthdate
}

// Gender returns the sex encoded by the identifier digit.
func (c Code) Gender() Gender {
	if c.identifier%2 == 1 {
		return GenderMale
	}
	return GenderFemale
}

// Serial returns the three-digit serial number.
func (c Code) Serial() int {
	return number(c.raw, 7, 10)
}

// Segment returns the last four digits as an integer, 0..9999.
func (c Code) Segment() int {
	return number(c.raw, Length-4, Length)
}

// AgeOn returns the number of whole years between birth and on. Birthdays on
// 29 February count as reached on 1 March in non-leap years.
func AgeOn(birth, on civil.Date) int {
	age := on.Year - birth.Year
	if on.Month < birth.Month || (on.Month == birth.Month && on.Day < birth.Day) {
		age--
	}
	return age
}

func digit(s string, i int) int {
	return int(s[i] - '0')
}

func number(s string, from, to int) int {
	n := 0
	for i := from; i < to; i++ {
		n = n*10 + digit(s, i)
	}
	return n
}
