package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KanekiDevPro/Trade-Size-Calculator/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "USD", cfg.Account.Currency)
	assert.Equal(t, 1000.0, cfg.Account.Capital)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultLimitsMatchEngine(t *testing.T) {
	got := Default().RiskLimits()
	want := risk.DefaultLimits()
	assert.True(t, want.MinStopLossPct.Equal(got.MinStopLossPct))
	assert.True(t, want.MaxLeverage.Equal(got.MaxLeverage))
	assert.True(t, want.ElevatedRiskPct.Equal(got.ElevatedRiskPct))
	assert.True(t, want.HighRiskPct.Equal(got.HighRiskPct))
}

func TestValidate(t *testing.T) {
	mutate := func(f func(*Config)) *Config {
		c := Default()
		f(c)
		return c
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			config: Default(),
		},
		{
			name:    "negative capital",
			config:  mutate(func(c *Config) { c.Account.Capital = -1 }),
			wantErr: true,
			errMsg:  "account.capital cannot be negative",
		},
		{
			name:    "max leverage below one",
			config:  mutate(func(c *Config) { c.Limits.MaxLeverage = 0.5 }),
			wantErr: true,
			errMsg:  "limits.max_leverage",
		},
		{
			name:    "thresholds inverted",
			config:  mutate(func(c *Config) { c.Limits.ElevatedRiskPct = 6 }),
			wantErr: true,
			errMsg:  "must not exceed",
		},
		{
			name:    "unknown direction",
			config:  mutate(func(c *Config) { c.Trade.Direction = "sideways" }),
			wantErr: true,
			errMsg:  "trade.direction",
		},
		{
			name:    "xlsx without path",
			config:  mutate(func(c *Config) { c.Output.Format = "xlsx" }),
			wantErr: true,
			errMsg:  "output.path required",
		},
		{
			name:    "unknown format",
			config:  mutate(func(c *Config) { c.Output.Format = "pdf" }),
			wantErr: true,
			errMsg:  "output.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Portfolio = []PortfolioEntry{{RiskPct: 1, StopLossPct: 2, Leverage: 5}}
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, cfg.Account, loaded.Account)
			assert.Equal(t, cfg.Trade, loaded.Trade)
			assert.Equal(t, cfg.Limits, loaded.Limits)
			assert.Equal(t, cfg.Portfolio, loaded.Portfolio)
		})
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  capital: 2500\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, cfg.Account.Capital)
	assert.Equal(t, 125.0, cfg.Limits.MaxLeverage)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limits:\n  max_leverage: 0\n"), 0644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestPortfolioEntries(t *testing.T) {
	cfg := Default()
	cfg.Portfolio = []PortfolioEntry{{RiskPct: 1, StopLossPct: 2, Leverage: 5}}

	entries := cfg.PortfolioEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].RiskPct.String())
	assert.Equal(t, "2", entries[0].StopLossPct.String())
	assert.Equal(t, "5", entries[0].Leverage.String())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TRADESIZE_CAPITAL":     "٥٠٠٠",
		"TRADESIZE_LEVERAGE":    "10",
		"TRADESIZE_RISK_LEVELS": "1,2",
		"TRADESIZE_FORMAT":      "json",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 5000.0, cfg.Account.Capital)
	assert.Equal(t, 10.0, cfg.Trade.Leverage)
	assert.Equal(t, "1,2", cfg.Trade.RiskLevels)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 1.5, cfg.Trade.StopLossPct)
}

func TestApplyEnvBadNumber(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "TRADESIZE_STOP_LOSS" {
			return "abc", true
		}
		return "", false
	}
	err := Default().ApplyEnv(lookup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRADESIZE_STOP_LOSS")
}

func TestLoadEnvFile(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TRADESIZE_TEST_ONLY=42\n"), 0644))
	t.Setenv("TRADESIZE_TEST_ONLY", "")
	os.Unsetenv("TRADESIZE_TEST_ONLY")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "42", os.Getenv("TRADESIZE_TEST_ONLY"))
}
