package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inbank/internal/decision"
)

// isolate resets viper and moves into an empty directory so no stray .env is read.
func isolate(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, decision.DefaultPolicy(), cfg.Policy)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("LOAN_ENGINE_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://bank.example")
	t.Setenv("DECISION_MAX_LOAN_AMOUNT", "20000")
	t.Setenv("DECISION_MAX_AGE", "70")
	t.Setenv("DECISION_SEGMENT_BOUNDARIES", "1000,4000,8000")
	t.Setenv("DECISION_SEGMENT_MODIFIERS", "0,50,200,900")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://bank.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 20000, cfg.Policy.MaxLoanAmount)
	assert.Equal(t, 70, cfg.Policy.MaxAge)
	assert.Equal(t, decision.Band{Lower: 4000, Upper: 8000, Modifier: 200}, cfg.Policy.Bands[2])
	assert.Equal(t, decision.Band{Lower: 8000, Upper: decision.SegmentSpace, Modifier: 900}, cfg.Policy.Bands[3])
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("DECISION_MIN_LOAN_PERIOD", "")
	os.Unsetenv("DECISION_MIN_LOAN_PERIOD")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DECISION_MIN_LOAN_PERIOD=6\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Policy.MinLoanPeriod)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "wrong boundary count",
			env:     map[string]string{"DECISION_SEGMENT_BOUNDARIES": "2500,5000"},
			wantErr: "DECISION_SEGMENT_BOUNDARIES must list 3 integers",
		},
		{
			name:    "non numeric modifier",
			env:     map[string]string{"DECISION_SEGMENT_MODIFIERS": "0,100,abc,1000"},
			wantErr: "DECISION_SEGMENT_MODIFIERS",
		},
		{
			name:    "inverted amounts",
			env:     map[string]string{"DECISION_MIN_LOAN_AMOUNT": "12000"},
			wantErr: "invalid decision policy",
		},
		{
			name:    "unordered boundaries",
			env:     map[string]string{"DECISION_SEGMENT_BOUNDARIES": "5000,2500,7500"},
			wantErr: "invalid decision policy",
		},
		{
			name:    "zero shutdown timeout",
			env:     map[string]string{"SHUTDOWN_TIMEOUT": "0s"},
			wantErr: "SHUTDOWN_TIMEOUT must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
