package decision

import (
	"fmt"
)

// SegmentSpace is the exclusive upper bound of the four-digit segment value.
const SegmentSpace = 10000

// Band assigns a credit modifier to segment values in [Lower, Upper).
type Band struct {
	Lower    int
	Upper    int
	Modifier int
}

// Policy holds the business constants of the decision engine. It is a value
// type; the service keeps its own copy and never mutates it.
type Policy struct {
	MinLoanAmount int
	MaxLoanAmount int
	MinLoanPeriod int
	MaxLoanPeriod int
	MinAge        int
	MaxAge        int

	// Bands are indexed by Segment and must tile [0, SegmentSpace).
	Bands [4]Band
}

// DefaultPolicy returns the production constants.
func DefaultPolicy() Policy {
	return Policy{
		MinLoanAmount: 2000,
		MaxLoanAmount: 10000,
		MinLoanPeriod: 12,
		MaxLoanPeriod: 60,
		MinAge:        18,
		MaxAge:        75,
		Bands: [4]Band{
			{Lower: 0, Upper: 2500, Modifier: 0},
			{Lower: 2500, Upper: 5000, Modifier: 100},
			{Lower: 5000, Upper: 7500, Modifier: 300},
			{Lower: 7500, Upper: SegmentSpace, Modifier: 1000},
		},
	}
}

// BandsFrom builds bands from the three inner cut points and four modifiers.
func BandsFrom(boundaries [3]int, modifiers [4]int) [4]Band {
	edges := [5]int{0, boundaries[0], boundaries[1], boundaries[2], SegmentSpace}
	var bands [4]Band
	for i := range bands {
		bands[i] = Band{Lower: edges[i], Upper: edges[i+1], Modifier: modifiers[i]}
	}
	return bands
}

// Validate rejects policies the search cannot honour.
func (p Policy) Validate() error {
	switch {
	case p.MinLoanAmount <= 0:
		return fmt.Errorf("min loan amount must be positive, got %d", p.MinLoanAmount)
	case p.MinLoanAmount > p.MaxLoanAmount:
		return fmt.Errorf("min loan amount %d exceeds max %d", p.MinLoanAmount, p.MaxLoanAmount)
	case p.MinLoanPeriod <= 0:
		return fmt.Errorf("min loan period must be positive, got %d", p.MinLoanPeriod)
	case p.MinLoanPeriod > p.MaxLoanPeriod:
		return fmt.Errorf("min loan period %d exceeds max %d", p.MinLoanPeriod, p.MaxLoanPeriod)
	case p.MinAge < 0:
		return fmt.Errorf("min age must not be negative, got %d", p.MinAge)
	case p.MinAge > p.MaxAge:
		return fmt.Errorf("min age %d exceeds max %d", p.MinAge, p.MaxAge)
	}

	if p.Bands[0].Lower != 0 {
		return fmt.Errorf("first band must start at 0, got %d", p.Bands[0].Lower)
	}
	if last := p.Bands[len(p.Bands)-1].Upper; last != SegmentSpace {
		return fmt.Errorf("last band must end at %d, got %d", SegmentSpace, last)
	}
	for i, b := range p.Bands {
		if b.Lower >= b.Upper {
			return fmt.Errorf("band %d is empty: [%d, %d)", i, b.Lower, b.Upper)
		}
		if b.Modifier < 0 {
			return fmt.Errorf("band %d has negative modifier %d", i, b.Modifier)
		}
		if i > 0 && p.Bands[i-1].Upper != b.Lower {
			return fmt.Errorf("band %d starts at %d but band %d ends at %d", i, b.Lower, i-1, p.Bands[i-1].Upper)
		}
	}
	return nil
}

// CreditModifier maps a four-digit segment value onto its band.
// Values outside [0, SegmentSpace) get no credit.
func (p Policy) CreditModifier(segment int) (Segment, int) {
	for i, b := range p.Bands {
		if segment >= b.Lower && segment < b.Upper {
			return Segment(i), b.Modifier
		}
	}
	return SegmentNoCredit, 0
}

// FindLoan walks upward from the requested period until the capacity
// modifier×period reaches the minimum loan amount. The approved amount is the
// capacity at that period capped by the maximum loan amount. ok is false when
// the maximum period is passed first.
func (p Policy) FindLoan(modifier, requestedPeriod int) (amount, period int, ok bool) {
	if modifier <= 0 {
		return 0, 0, false
	}
	for period = requestedPeriod; period <= p.MaxLoanPeriod; period++ {
		if capacity := modifier * period; capacity >= p.MinLoanAmount {
			return min(p.MaxLoanAmount, capacity), period, true
		}
	}
	return 0, 0, false
}

func (p Policy) amountInRange(amount int) bool {
	return amount >= p.MinLoanAmount && amount <= p.MaxLoanAmount
}

func (p Policy) periodInRange(period int) bool {
	return period >= p.MinLoanPeriod && period <= p.MaxLoanPeriod
}

func (p Policy) ageInRange(age int) bool {
	return age >= p.MinAge && age <= p.MaxAge
}
