package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"inbank/internal/decision"
	liststr "inbank/pkg/platform/strings"
)

// Config is the fully resolved process configuration.
type Config struct {
	Server Server
	Log    Log
	Policy decision.Policy
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr               string
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
}

// Log selects the slog handler.
type Log struct {
	Level  string
	Format string
}

// env mirrors the raw environment. Segment lists stay strings until parsed.
type env struct {
	Addr               string        `mapstructure:"LOAN_ENGINE_ADDR"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	LogFormat          string        `mapstructure:"LOG_FORMAT"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	CORSAllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	MinLoanAmount      int           `mapstructure:"DECISION_MIN_LOAN_AMOUNT"`
	MaxLoanAmount      int           `mapstructure:"DECISION_MAX_LOAN_AMOUNT"`
	MinLoanPeriod      int           `mapstructure:"DECISION_MIN_LOAN_PERIOD"`
	MaxLoanPeriod      int           `mapstructure:"DECISION_MAX_LOAN_PERIOD"`
	MinAge             int           `mapstructure:"DECISION_MIN_AGE"`
	MaxAge             int           `mapstructure:"DECISION_MAX_AGE"`
	SegmentBoundaries  string        `mapstructure:"DECISION_SEGMENT_BOUNDARIES"`
	SegmentModifiers   string        `mapstructure:"DECISION_SEGMENT_MODIFIERS"`
}

// Load reads an optional .env file, then the environment, and returns a
// validated configuration.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	defaults := decision.DefaultPolicy()
	viper.SetDefault("LOAN_ENGINE_ADDR", ":8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DECISION_MIN_LOAN_AMOUNT", defaults.MinLoanAmount)
	viper.SetDefault("DECISION_MAX_LOAN_AMOUNT", defaults.MaxLoanAmount)
	viper.SetDefault("DECISION_MIN_LOAN_PERIOD", defaults.MinLoanPeriod)
	viper.SetDefault("DECISION_MAX_LOAN_PERIOD", defaults.MaxLoanPeriod)
	viper.SetDefault("DECISION_MIN_AGE", defaults.MinAge)
	viper.SetDefault("DECISION_MAX_AGE", defaults.MaxAge)
	viper.SetDefault("DECISION_SEGMENT_BOUNDARIES", "2500,5000,7500")
	viper.SetDefault("DECISION_SEGMENT_MODIFIERS", "0,100,300,1000")
	viper.AutomaticEnv()

	var raw env
	if err := viper.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	var (
		boundaries [3]int
		modifiers  [4]int
	)
	if err := parseInts("DECISION_SEGMENT_BOUNDARIES", raw.SegmentBoundaries, boundaries[:]); err != nil {
		return nil, err
	}
	if err := parseInts("DECISION_SEGMENT_MODIFIERS", raw.SegmentModifiers, modifiers[:]); err != nil {
		return nil, err
	}

	policy := decision.Policy{
		MinLoanAmount: raw.MinLoanAmount,
		MaxLoanAmount: raw.MaxLoanAmount,
		MinLoanPeriod: raw.MinLoanPeriod,
		MaxLoanPeriod: raw.MaxLoanPeriod,
		MinAge:        raw.MinAge,
		MaxAge:        raw.MaxAge,
		Bands:         decision.BandsFrom(boundaries, modifiers),
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid decision policy: %w", err)
	}
	if raw.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", raw.ShutdownTimeout)
	}

	return &Config{
		Server: Server{
			Addr:               raw.Addr,
			ShutdownTimeout:    raw.ShutdownTimeout,
			CORSAllowedOrigins: liststr.SplitUnique(raw.CORSAllowedOrigins),
		},
		Log: Log{
			Level:  raw.LogLevel,
			Format: raw.LogFormat,
		},
		Policy: policy,
	}, nil
}

// parseInts fills out from a comma separated list of exactly len(out) integers.
func parseInts(key, value string, out []int) error {
	parts := liststr.SplitList(value)
	if len(parts) != len(out) {
		return fmt.Errorf("%s must list %d integers, got %q", key, len(out), value)
	}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", key, part)
		}
		out[i] = n
	}
	return nil
}
