package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"inbank/internal/decision"
	"inbank/internal/decision/adapters"
	"inbank/internal/decision/handler"
	decisionmetrics "inbank/internal/decision/metrics"
	"inbank/internal/platform/config"
	"inbank/internal/platform/httpserver"
	"inbank/internal/platform/logger"
	"inbank/internal/platform/metrics"
	httptransport "inbank/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/decision.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "loan-engine: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc, err := decision.New(
		adapters.NewPersonalCodeAdapter(),
		adapters.NewRequestClock(time.Local),
		decision.WithPolicy(cfg.Policy),
		decision.WithLogger(log),
		decision.WithMetrics(decisionmetrics.New(reg)),
	)
	if err != nil {
		return fmt.Errorf("init decision service: %w", err)
	}

	router := httptransport.NewRouter(httptransport.Options{
		Logger:         log,
		Metrics:        metrics.New(reg),
		Gatherer:       reg,
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}, handler.New(svc, log))

	srv := httpserver.New(cfg.Server.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	policy := svc.Policy()
	log.Info("starting loan-engine",
		"addr", cfg.Server.Addr,
		"min_loan_amount", policy.MinLoanAmount,
		"max_loan_amount", policy.MaxLoanAmount,
		"min_loan_period", policy.MinLoanPeriod,
		"max_loan_period", policy.MaxLoanPeriod,
		"min_age", policy.MinAge,
		"max_age", policy.MaxAge,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Run(gctx, srv, cfg.Server.ShutdownTimeout, log)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received")
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("loan-engine stopped")
	return nil
}
