package handler

import (
	"inbank/internal/decision"
)

// DecisionResponse is the HTTP response for POST /loan/decision. Either both
// loan fields are set or ErrorMessage is.
type DecisionResponse struct {
	LoanAmount   *int    `json:"loanAmount"`
	LoanPeriod   *int    `json:"loanPeriod"`
	ErrorMessage *string `json:"errorMessage"`
}

// FromDecision converts a successful decision to an HTTP response.
func FromDecision(d *decision.Decision) *DecisionResponse {
	amount, period := d.Amount, d.Period
	return &DecisionResponse{
		LoanAmount: &amount,
		LoanPeriod: &period,
	}
}

// FromFailure builds the response for a failed decision.
func FromFailure(message string) *DecisionResponse {
	return &DecisionResponse{ErrorMessage: &message}
}

// PolicyResponse is the HTTP response for GET /loan/policy.
type PolicyResponse struct {
	MinLoanAmount int           `json:"minLoanAmount"`
	MaxLoanAmount int           `json:"maxLoanAmount"`
	MinLoanPeriod int           `json:"minLoanPeriod"`
	MaxLoanPeriod int           `json:"maxLoanPeriod"`
	MinAge        int           `json:"minAge"`
	MaxAge        int           `json:"maxAge"`
	Segments      []SegmentBand `json:"segments"`
}

// SegmentBand describes one credit segment.
type SegmentBand struct {
	Segment  string `json:"segment"`
	From     int    `json:"from"`
	To       int    `json:"to"`
	Modifier int    `json:"creditModifier"`
}

// FromPolicy converts the effective policy to an HTTP response. To is
// inclusive, matching how the segments are usually described.
func FromPolicy(p decision.Policy) *PolicyResponse {
	resp := &PolicyResponse{
		MinLoanAmount: p.MinLoanAmount,
		MaxLoanAmount: p.MaxLoanAmount,
		MinLoanPeriod: p.MinLoanPeriod,
		MaxLoanPeriod: p.MaxLoanPeriod,
		MinAge:        p.MinAge,
		MaxAge:        p.MaxAge,
		Segments:      make([]SegmentBand, 0, len(p.Bands)),
	}
	for i, b := range p.Bands {
		resp.Segments = append(resp.Segments, SegmentBand{
			Segment:  decision.Segment(i).String(),
			From:     b.Lower,
			To:       b.Upper - 1,
			Modifier: b.Modifier,
		})
	}
	return resp
}
