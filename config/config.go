package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/KanekiDevPro/Trade-Size-Calculator/risk"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults the calculator starts from. Command-line flags
// override anything set here.
type Config struct {
	Account   AccountConfig    `json:"account" yaml:"account"`
	Trade     TradeConfig      `json:"trade" yaml:"trade"`
	Limits    LimitsConfig     `json:"limits" yaml:"limits"`
	Portfolio []PortfolioEntry `json:"portfolio,omitempty" yaml:"portfolio,omitempty"`
	Output    OutputConfig     `json:"output" yaml:"output"`
	Log       LogConfig        `json:"log" yaml:"log"`
}

type AccountConfig struct {
	Capital  float64 `json:"capital" yaml:"capital"`
	Currency string  `json:"currency" yaml:"currency"`
}

// TradeConfig values are percentages in 0-100. RiskLevels uses the same
// free-text syntax as the --risk flag.
type TradeConfig struct {
	StopLossPct   float64 `json:"stop_loss_pct" yaml:"stop_loss_pct"`
	Leverage      float64 `json:"leverage" yaml:"leverage"`
	RiskLevels    string  `json:"risk_levels" yaml:"risk_levels"`
	TakeProfitPct float64 `json:"take_profit_pct,omitempty" yaml:"take_profit_pct,omitempty"`
	FeeRatePct    float64 `json:"fee_rate_pct,omitempty" yaml:"fee_rate_pct,omitempty"`
	EntryPrice    float64 `json:"entry_price,omitempty" yaml:"entry_price,omitempty"`
	Direction     string  `json:"direction,omitempty" yaml:"direction,omitempty"` // "long" or "short"
}

type LimitsConfig struct {
	MinStopLossPct  float64 `json:"min_stop_loss_pct" yaml:"min_stop_loss_pct"`
	MaxLeverage     float64 `json:"max_leverage" yaml:"max_leverage"`
	ElevatedRiskPct float64 `json:"elevated_risk_pct" yaml:"elevated_risk_pct"`
	HighRiskPct     float64 `json:"high_risk_pct" yaml:"high_risk_pct"`
}

type PortfolioEntry struct {
	RiskPct     float64 `json:"risk_pct" yaml:"risk_pct"`
	StopLossPct float64 `json:"stop_loss_pct" yaml:"stop_loss_pct"`
	Leverage    float64 `json:"leverage" yaml:"leverage"`
}

type OutputConfig struct {
	Format string `json:"format" yaml:"format"` // table, csv, json or xlsx
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration as YAML for .yaml/.yml paths and JSON
// otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration's own consistency. Trade values are
// validated by the engine when a calculation runs, so only the limits and
// output settings are checked here.
func (c *Config) Validate() error {
	if c.Account.Capital < 0 {
		return fmt.Errorf("account.capital cannot be negative")
	}
	if c.Limits.MinStopLossPct < 0 || c.Limits.MinStopLossPct >= 100 {
		return fmt.Errorf("limits.min_stop_loss_pct must be between 0 and 100")
	}
	if c.Limits.MaxLeverage < 1 {
		return fmt.Errorf("limits.max_leverage must be at least 1")
	}
	if c.Limits.ElevatedRiskPct <= 0 || c.Limits.HighRiskPct <= 0 {
		return fmt.Errorf("limits risk thresholds must be positive")
	}
	if c.Limits.ElevatedRiskPct > c.Limits.HighRiskPct {
		return fmt.Errorf("limits.elevated_risk_pct must not exceed limits.high_risk_pct")
	}
	if c.Trade.Direction != "" {
		if _, err := risk.ParseDirection(c.Trade.Direction); err != nil {
			return fmt.Errorf("trade.direction: %w", err)
		}
	}
	switch c.Output.Format {
	case "", "table", "csv", "json":
	case "xlsx":
		if c.Output.Path == "" {
			return fmt.Errorf("output.path required for xlsx format")
		}
	default:
		return fmt.Errorf("output.format must be one of table, csv, json, xlsx")
	}
	return nil
}

// RiskLimits converts the limits section for the engine.
func (c *Config) RiskLimits() risk.Limits {
	return risk.Limits{
		MinStopLossPct:  decimal.NewFromFloat(c.Limits.MinStopLossPct),
		MaxLeverage:     decimal.NewFromFloat(c.Limits.MaxLeverage),
		ElevatedRiskPct: decimal.NewFromFloat(c.Limits.ElevatedRiskPct),
		HighRiskPct:     decimal.NewFromFloat(c.Limits.HighRiskPct),
	}
}

// PortfolioEntries converts the portfolio section for the engine.
func (c *Config) PortfolioEntries() []risk.PortfolioEntry {
	out := make([]risk.PortfolioEntry, len(c.Portfolio))
	for i, e := range c.Portfolio {
		out[i] = risk.PortfolioEntry{
			RiskPct:     decimal.NewFromFloat(e.RiskPct),
			StopLossPct: decimal.NewFromFloat(e.StopLossPct),
			Leverage:    decimal.NewFromFloat(e.Leverage),
		}
	}
	return out
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Capital:  1000,
			Currency: "USD",
		},
		Trade: TradeConfig{
			StopLossPct: 1.5,
			Leverage:    1,
			RiskLevels:  "0.25, 0.5, 1, 2",
			Direction:   "long",
		},
		Limits: LimitsConfig{
			MinStopLossPct:  0.01,
			MaxLeverage:     125,
			ElevatedRiskPct: 3,
			HighRiskPct:     5,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
