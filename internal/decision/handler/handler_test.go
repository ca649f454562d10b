package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"inbank/internal/decision"
	"inbank/internal/decision/adapters"
	"inbank/internal/decision/handler/mocks"
	dErrors "inbank/pkg/domain-errors"
	"inbank/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service
type DecisionHandlerSuite struct {
	suite.Suite
}

func TestDecisionHandlerSuite(t *testing.T) {
	suite.Run(t, new(DecisionHandlerSuite))
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	New(mockService, logger).Register(r)
	return r, mockService
}

func (s *DecisionHandlerSuite) TestApprovedDecision() {
	router, mockService := newTestRouter(s.T())
	mockService.EXPECT().Decide(gomock.Any(), decision.Request{
		PersonalCode: "39001023456",
		Amount:       4000,
		Period:       12,
	}).Return(&decision.Decision{Amount: 2000, Period: 20, Segment: decision.Segment1, CreditModifier: 100}, nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/loan/decision", DecisionRequest{
		PersonalCode: "39001023456",
		LoanAmount:   4000,
		LoanPeriod:   12,
	})
	rr := testutil.DoRequest(router, req)

	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"loanAmount":2000,"loanPeriod":20,"errorMessage":null}`, rr.Body.String())
}

func (s *DecisionHandlerSuite) TestFailureStatusMapping() {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid personal code", dErrors.New(dErrors.CodeInvalidPersonalCode, decision.MessageInvalidPersonalCode), http.StatusBadRequest, "Invalid personal ID code!"},
		{"invalid loan amount", dErrors.New(dErrors.CodeInvalidLoanAmount, decision.MessageInvalidLoanAmount), http.StatusBadRequest, "Invalid loan amount!"},
		{"invalid loan period", dErrors.New(dErrors.CodeInvalidLoanPeriod, decision.MessageInvalidLoanPeriod), http.StatusBadRequest, "Invalid loan period!"},
		{"invalid age", dErrors.New(dErrors.CodeInvalidAge, decision.MessageInvalidAge), http.StatusBadRequest, "Invalid age!"},
		{"no valid loan", dErrors.New(dErrors.CodeNoValidLoan, decision.MessageNoValidLoan), http.StatusNotFound, "No valid loan found!"},
		{"unexpected error", errors.New("clock exploded"), http.StatusInternalServerError, "An unexpected error occurred"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			router, mockService := newTestRouter(s.T())
			mockService.EXPECT().Decide(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/loan/decision", DecisionRequest{
				PersonalCode: "39001023456",
				LoanAmount:   4000,
				LoanPeriod:   12,
			})
			rr := testutil.DoRequest(router, req)

			s.Equal(tc.status, rr.Code)
			resp := testutil.UnmarshalResponse[DecisionResponse](s.T(), rr)
			s.Nil(resp.LoanAmount)
			s.Nil(resp.LoanPeriod)
			s.Require().NotNil(resp.ErrorMessage)
			s.Equal(tc.message, *resp.ErrorMessage)
		})
	}
}

func (s *DecisionHandlerSuite) TestMalformedBody() {
	router, _ := newTestRouter(s.T())

	for _, body := range []string{`{"personalCode":`, `[]`, `{"loanAmount":"lots"}`} {
		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(s.T(), http.MethodPost, "/loan/decision", body))
		s.Equal(http.StatusBadRequest, rr.Code, body)
		resp := testutil.UnmarshalResponse[DecisionResponse](s.T(), rr)
		s.Require().NotNil(resp.ErrorMessage)
		s.Equal("invalid request body", *resp.ErrorMessage)
	}
}

func (s *DecisionHandlerSuite) TestOversizedPersonalCodeNeverReachesService() {
	router, _ := newTestRouter(s.T())

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/loan/decision", DecisionRequest{
		PersonalCode: "390010234563900102345639001023456",
		LoanAmount:   4000,
		LoanPeriod:   12,
	})
	rr := testutil.DoRequest(router, req)

	s.Equal(http.StatusBadRequest, rr.Code)
	s.Contains(rr.Body.String(), decision.MessageInvalidPersonalCode)
}

func (s *DecisionHandlerSuite) TestPersonalCodeIsPassedVerbatim() {
	router, mockService := newTestRouter(s.T())
	mockService.EXPECT().Decide(gomock.Any(), decision.Request{
		PersonalCode: " 49001019999\t",
		Amount:       4000,
		Period:       12,
	}).Return(nil, dErrors.New(dErrors.CodeInvalidPersonalCode, decision.MessageInvalidPersonalCode))

	rr := testutil.DoRequest(router, testutil.NewRequestWithBody(s.T(), http.MethodPost, "/loan/decision",
		`{"personalCode":" 49001019999\t","loanAmount":4000,"loanPeriod":12}`))

	s.Equal(http.StatusBadRequest, rr.Code)
	s.JSONEq(`{"loanAmount":null,"loanPeriod":null,"errorMessage":"Invalid personal ID code!"}`, rr.Body.String())
}

func (s *DecisionHandlerSuite) TestUnknownFieldsAreIgnored() {
	router, mockService := newTestRouter(s.T())
	mockService.EXPECT().Decide(gomock.Any(), decision.Request{
		PersonalCode: "49001019999",
		Amount:       4000,
		Period:       12,
	}).Return(&decision.Decision{Amount: 10000, Period: 12, Segment: decision.Segment3, CreditModifier: 1000}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequestWithBody(s.T(), http.MethodPost, "/loan/decision",
		`{"personalCode":"49001019999","loanAmount":4000,"loanPeriod":12,"extra":1}`))

	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"loanAmount":10000,"loanPeriod":12,"errorMessage":null}`, rr.Body.String())
}

func (s *DecisionHandlerSuite) TestPolicy() {
	router, mockService := newTestRouter(s.T())
	mockService.EXPECT().Policy().Return(decision.DefaultPolicy())

	rr := testutil.DoRequest(router, testutil.NewRequest(s.T(), http.MethodGet, "/loan/policy"))

	s.Equal(http.StatusOK, rr.Code)
	resp := testutil.UnmarshalResponse[PolicyResponse](s.T(), rr)
	s.Equal(2000, resp.MinLoanAmount)
	s.Equal(10000, resp.MaxLoanAmount)
	s.Require().Len(resp.Segments, 4)
	s.Equal(SegmentBand{Segment: "segment_1", From: 2500, To: 4999, Modifier: 100}, resp.Segments[1])
}

// TestDecisionEndToEnd runs the real service behind the handler with the
// request time pinned, so age checks are deterministic.
func TestDecisionEndToEnd(t *testing.T) {
	svc, err := decision.New(adapters.NewPersonalCodeAdapter(), adapters.NewRequestClock(time.UTC))
	require.NoError(t, err)

	r := chi.NewRouter()
	New(svc, slog.New(slog.DiscardHandler)).Register(r)

	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	post := func(t *testing.T, code string, amount, period int) (int, *DecisionResponse) {
		t.Helper()
		req := testutil.NewJSONRequest(t, http.MethodPost, "/loan/decision", DecisionRequest{
			PersonalCode: code, LoanAmount: amount, LoanPeriod: period,
		})
		req = testutil.WithRequestTime(req, now)
		rr := testutil.DoRequest(r, req)
		return rr.Code, testutil.UnmarshalResponse[DecisionResponse](t, rr)
	}

	testutil.Given(t, "an applicant in segment 1 asking for 12 months", func(t *testing.T) {
		testutil.When(t, "the capacity is below the minimum amount", func(t *testing.T) {
			status, resp := post(t, "39001023456", 4000, 12)
			testutil.Then(t, "the period is extended to 20 months for 2000", func(t *testing.T) {
				assert.Equal(t, http.StatusOK, status)
				require.NotNil(t, resp.LoanAmount)
				assert.Equal(t, 2000, *resp.LoanAmount)
				assert.Equal(t, 20, *resp.LoanPeriod)
				assert.Nil(t, resp.ErrorMessage)
			})
		})
	})

	testutil.Given(t, "an applicant in the no-credit segment", func(t *testing.T) {
		status, resp := post(t, "49506201000", 4000, 12)
		testutil.Then(t, "no loan is found", func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, status)
			assert.Equal(t, decision.MessageNoValidLoan, *resp.ErrorMessage)
		})
	})

	testutil.Given(t, "a valid code padded with whitespace", func(t *testing.T) {
		status, resp := post(t, " 49001019999\t", 4000, 12)
		testutil.Then(t, "the code is rejected as given", func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, decision.MessageInvalidPersonalCode, *resp.ErrorMessage)
		})
	})

	testutil.Given(t, "an applicant who turned 76 today", func(t *testing.T) {
		status, resp := post(t, "35010199004", 4000, 12)
		testutil.Then(t, "the age check fails", func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, decision.MessageInvalidAge, *resp.ErrorMessage)
		})
	})
}
