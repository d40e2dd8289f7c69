package risk

import "github.com/shopspring/decimal"

// Limits are the immutable bounds the engine validates against. A zero
// MinStopLossPct means any positive stop-loss is accepted.
type Limits struct {
	MinStopLossPct decimal.Decimal // 0.01
	MaxLeverage    decimal.Decimal // 125

	// Portfolio advisory thresholds, in percent of capital
	ElevatedRiskPct decimal.Decimal // 3
	HighRiskPct     decimal.Decimal // 5
}

// DefaultLimits returns the stock limits.
func DefaultLimits() Limits {
	return Limits{
		MinStopLossPct:  decimal.RequireFromString("0.01"),
		MaxLeverage:     decimal.NewFromInt(125),
		ElevatedRiskPct: decimal.NewFromInt(3),
		HighRiskPct:     decimal.NewFromInt(5),
	}
}

// TradeParameters is the validated input of a sizing calculation. All values
// are percentages expressed 0-100, not fractions.
type TradeParameters struct {
	Capital     decimal.Decimal
	StopLossPct decimal.Decimal
	Leverage    decimal.Decimal
	RiskLevels  []decimal.Decimal
}
