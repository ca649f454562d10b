package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inbank/internal/decision"
	dErrors "inbank/pkg/domain-errors"
	"inbank/pkg/platform/httputil"
	"inbank/pkg/requestcontext"
)

// Service defines the interface for decision operations.
type Service interface {
	Decide(ctx context.Context, req decision.Request) (*decision.Decision, error)
	Policy() decision.Policy
}

// Handler wires loan endpoints to the decision service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a decision handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts loan endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/loan/decision", h.HandleDecision)
	r.Get("/loan/policy", h.HandlePolicy)
}

// HandleDecision handles POST /loan/decision requests.
//
// Validation failures answer 400, an applicant without any valid loan 404 and
// anything unexpected 500. The body always has the DecisionResponse shape.
func (h *Handler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	// Decode and validate request
	req, err := httputil.Decode[DecisionRequest](w, r)
	if err != nil {
		h.writeFailure(ctx, w, requestID, err)
		return
	}

	result, err := h.service.Decide(ctx, req.ToDomain())
	if err != nil {
		h.writeFailure(ctx, w, requestID, err)
		return
	}

	h.logger.InfoContext(ctx, "loan decision made",
		"request_id", requestID,
		"loan_amount", result.Amount,
		"loan_period", result.Period,
		"segment", result.Segment.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromDecision(result))
}

// HandlePolicy handles GET /loan/policy requests.
func (h *Handler) HandlePolicy(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromPolicy(h.service.Policy()))
}

func (h *Handler) writeFailure(ctx context.Context, w http.ResponseWriter, requestID string, err error) {
	status := dErrors.ToHTTPStatus(dErrors.CodeOf(err))

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "loan decision failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteJSON(w, status, FromFailure(decision.MessageUnexpected))
		return
	}

	de, _ := dErrors.As(err)
	h.logger.InfoContext(ctx, "loan decision declined",
		"request_id", requestID,
		"reason", de.Code,
	)
	httputil.WriteJSON(w, status, FromFailure(de.Message))
}
