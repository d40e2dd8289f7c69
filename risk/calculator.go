package risk

import "github.com/shopspring/decimal"

// Calculator runs the engine against a fixed set of limits. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	limits Limits
}

func NewCalculator(l Limits) *Calculator {
	return &Calculator{limits: l}
}

func (c *Calculator) Limits() Limits {
	return c.limits
}

// Validate checks p against DefaultLimits.
func Validate(p TradeParameters) error {
	return DefaultLimits().Validate(p)
}

// CalculatePositionSizing sizes req against DefaultLimits.
func CalculatePositionSizing(req SizingRequest) (Table, error) {
	return NewCalculator(DefaultLimits()).PositionSizing(req)
}

// CalculateReverse runs the margin-first calculation against DefaultLimits.
func CalculateReverse(in ReverseInput) (ReverseResult, error) {
	return NewCalculator(DefaultLimits()).Reverse(in)
}

// AggregatePortfolio sums entries against DefaultLimits.
func AggregatePortfolio(capital decimal.Decimal, entries []PortfolioEntry) (PortfolioSummary, error) {
	return NewCalculator(DefaultLimits()).Portfolio(capital, entries)
}
