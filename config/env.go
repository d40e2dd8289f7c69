package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KanekiDevPro/Trade-Size-Calculator/numeral"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TRADESIZE_"

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error; variables already set are kept.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from TRADESIZE_* variables using lookup, which is
// normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"CAPITAL", &c.Account.Capital},
		{"STOP_LOSS", &c.Trade.StopLossPct},
		{"LEVERAGE", &c.Trade.Leverage},
		{"TAKE_PROFIT", &c.Trade.TakeProfitPct},
		{"FEE_RATE", &c.Trade.FeeRatePct},
		{"ENTRY_PRICE", &c.Trade.EntryPrice},
		{"MAX_LEVERAGE", &c.Limits.MaxLeverage},
		{"MIN_STOP_LOSS", &c.Limits.MinStopLossPct},
	}
	for _, f := range floats {
		v, ok := lookup(EnvPrefix + f.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(numeral.Normalize(v)), 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"RISK_LEVELS", &c.Trade.RiskLevels},
		{"DIRECTION", &c.Trade.Direction},
		{"CURRENCY", &c.Account.Currency},
		{"FORMAT", &c.Output.Format},
		{"OUTPUT", &c.Output.Path},
		{"LOG_LEVEL", &c.Log.Level},
	}
	for _, s := range strs {
		if v, ok := lookup(EnvPrefix + s.key); ok && v != "" {
			*s.dst = v
		}
	}
	return nil
}
