package risk

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Signal is an advisory classification of total portfolio risk. It never
// blocks a calculation.
type Signal int

const (
	SignalNone Signal = iota
	SignalElevated
	SignalHigh
)

func (s Signal) String() string {
	switch s {
	case SignalElevated:
		return "elevated risk"
	case SignalHigh:
		return "high risk"
	}
	return "ok"
}

// PortfolioEntry is one of several simultaneous trades sharing a capital.
type PortfolioEntry struct {
	RiskPct     decimal.Decimal
	StopLossPct decimal.Decimal
	Leverage    decimal.Decimal
}

type PortfolioPosition struct {
	Entry        PortfolioEntry
	DollarRisk   decimal.Decimal
	PositionSize decimal.Decimal
	Margin       decimal.Decimal
}

// PortfolioSummary aggregates all entries. FreeMargin goes negative when the
// trades need more margin than the capital; that is reported, not rejected.
type PortfolioSummary struct {
	Capital         decimal.Decimal
	Positions       []PortfolioPosition
	TotalDollarRisk decimal.Decimal
	TotalMargin     decimal.Decimal
	TotalRiskPct    decimal.Decimal
	FreeMargin      decimal.Decimal
	Signal          Signal
}

// Portfolio sizes every entry against the shared capital and totals them.
func (c *Calculator) Portfolio(capital decimal.Decimal, entries []PortfolioEntry) (PortfolioSummary, error) {
	if !capital.IsPositive() {
		return PortfolioSummary{}, rangeErr(CodeCapitalNotPositive, "capital must be greater than zero")
	}

	sum := PortfolioSummary{
		Capital:   capital,
		Positions: make([]PortfolioPosition, 0, len(entries)),
	}
	for i, e := range entries {
		pos, err := c.portfolioPosition(capital, e)
		if err != nil {
			return PortfolioSummary{}, entryErr(i, err)
		}
		sum.Positions = append(sum.Positions, pos)
		sum.TotalDollarRisk = sum.TotalDollarRisk.Add(pos.DollarRisk)
		sum.TotalMargin = sum.TotalMargin.Add(pos.Margin)
	}

	var err error
	sum.TotalRiskPct, err = RiskPct(sum.TotalDollarRisk, capital)
	if err != nil {
		return PortfolioSummary{}, err
	}
	sum.FreeMargin = capital.Sub(sum.TotalMargin)
	sum.Signal = c.classify(sum.TotalRiskPct)
	return sum, nil
}

func (c *Calculator) portfolioPosition(capital decimal.Decimal, e PortfolioEntry) (PortfolioPosition, error) {
	err := c.limits.Validate(TradeParameters{
		Capital:     capital,
		StopLossPct: e.StopLossPct,
		Leverage:    e.Leverage,
		RiskLevels:  []decimal.Decimal{e.RiskPct},
	})
	if err != nil {
		return PortfolioPosition{}, err
	}

	pos := PortfolioPosition{Entry: e}
	pos.DollarRisk = capital.Mul(factor(e.RiskPct))
	pos.PositionSize, err = div(pos.DollarRisk, factor(e.StopLossPct), "stop-loss")
	if err != nil {
		return PortfolioPosition{}, err
	}
	pos.Margin, err = div(pos.PositionSize, e.Leverage, "leverage")
	if err != nil {
		return PortfolioPosition{}, err
	}
	return pos, nil
}

func (c *Calculator) classify(totalRiskPct decimal.Decimal) Signal {
	switch {
	case totalRiskPct.GreaterThan(c.limits.HighRiskPct):
		return SignalHigh
	case totalRiskPct.GreaterThan(c.limits.ElevatedRiskPct):
		return SignalElevated
	}
	return SignalNone
}

// entryErr prefixes the message with the 1-based trade number and keeps the
// kind and code.
func entryErr(i int, err error) error {
	e, ok := err.(*Error)
	if !ok {
		return fmt.Errorf("trade %d: %w", i+1, err)
	}
	cp := *e
	cp.Msg = fmt.Sprintf("trade %d: %s", i+1, e.Msg)
	return &cp
}
