package decision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"inbank/internal/decision/metrics"
	"inbank/internal/decision/ports"
	"inbank/pkg/requestcontext"
)

// Type aliases for interfaces from ports package.
type (
	PersonalCodeValidator = ports.PersonalCodeValidator
	Clock                 = ports.Clock
)

const tracerName = "inbank/internal/decision"

// Service decides loan applications. It holds only immutable configuration
// and collaborators, so one instance serves concurrent requests.
type Service struct {
	validator PersonalCodeValidator
	clock     Clock
	policy    Policy
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(*Service)

func WithPolicy(policy Policy) Option {
	return func(s *Service) {
		s.policy = policy
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New builds a Service. The policy defaults to DefaultPolicy and is validated
// once here rather than on every call.
func New(validator PersonalCodeValidator, clock Clock, opts ...Option) (*Service, error) {
	if validator == nil {
		return nil, errors.New("personal code validator is required")
	}
	if clock == nil {
		return nil, errors.New("clock is required")
	}

	svc := &Service{
		validator: validator,
		clock:     clock,
		policy:    DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(svc)
	}

	if err := svc.policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid decision policy: %w", err)
	}
	if svc.logger == nil {
		svc.logger = slog.New(slog.DiscardHandler)
	}
	if svc.tracer == nil {
		svc.tracer = otel.Tracer(tracerName)
	}
	return svc, nil
}

// Policy returns a copy of the effective policy.
func (s *Service) Policy() Policy {
	return s.policy
}

// Decide validates req and returns the largest approvable loan. Every failure
// is a domain error whose kind KindOf recovers.
func (s *Service) Decide(ctx context.Context, req Request) (*Decision, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "decision.Decide")
	defer span.End()

	today := s.clock.Today(ctx)
	code, err := verifyInputs(s.policy, s.validator, today, req)
	var result *Decision
	if err == nil {
		result, err = evaluate(s.policy, code, req.Period)
	}

	s.observe(ctx, span, req, result, err, time.Since(start))
	return result, err
}

func (s *Service) observe(ctx context.Context, span trace.Span, req Request, result *Decision, err error, elapsed time.Duration) {
	s.metrics.ObserveDecideLatency(elapsed)

	if err != nil {
		kind := KindOf(err)
		s.metrics.IncrementOutcome(string(kind), "none")
		span.SetAttributes(attribute.String("decision.outcome", string(kind)))
		if kind == FailureInternal {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		s.logger.DebugContext(ctx, "loan declined",
			"request_id", requestcontext.RequestID(ctx),
			"outcome", kind,
		)
		return
	}

	extension := result.Period - req.Period
	s.metrics.IncrementOutcome("approved", result.Segment.String())
	s.metrics.ObserveApproval(result.Amount, extension)
	span.SetAttributes(
		attribute.String("decision.outcome", "approved"),
		attribute.String("decision.segment", result.Segment.String()),
		attribute.Int("decision.amount", result.Amount),
		attribute.Int("decision.period", result.Period),
	)
	s.logger.DebugContext(ctx, "loan approved",
		"request_id", requestcontext.RequestID(ctx),
		"segment", result.Segment.String(),
		"amount", result.Amount,
		"period", result.Period,
		"period_extension", extension,
	)
}
