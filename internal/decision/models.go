package decision

// Request carries the three inputs of a loan decision. It is built per call
// and never retained.
type Request struct {
	PersonalCode string
	Amount       int
	Period       int
}

// Segment is the credit segment derived from the last four digits of the
// personal code. The numeric value is the index into Policy.Bands.
type Segment int

const (
	SegmentNoCredit Segment = iota
	Segment1
	Segment2
	Segment3
)

func (s Segment) String() string {
	switch s {
	case SegmentNoCredit:
		return "no_credit"
	case Segment1:
		return "segment_1"
	case Segment2:
		return "segment_2"
	case Segment3:
		return "segment_3"
	default:
		return "unknown"
	}
}

// Decision is a successful outcome: the largest loan the customer can get at
// the first period, at or above the requested one, that reaches the minimum
// loan amount. Failures are returned as errors instead.
type Decision struct {
	Amount         int
	Period         int
	Segment        Segment
	CreditModifier int
}
