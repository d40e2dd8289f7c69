package report

import (
	"fmt"
	"strconv"

	"github.com/KanekiDevPro/Trade-Size-Calculator/risk"
	"github.com/shopspring/decimal"
)

// SizingGrid lays a sizing table out with one line per metric and one
// column per risk level.
func SizingGrid(t risk.Table) Grid {
	g := Grid{
		Title:  "Position Sizing",
		Header: make([]string, 0, len(t.Rows)+1),
	}
	g.Header = append(g.Header, "")
	for _, r := range t.Rows {
		g.Header = append(g.Header, r.RiskPct.String()+"%")
	}

	for _, m := range t.Metrics() {
		cells := make([]Cell, 0, len(t.Rows)+1)
		cells = append(cells, TextCell(m.String()))
		for _, r := range t.Rows {
			if m.IsMoney() {
				cells = append(cells, MoneyCell(r.Value(m)))
			} else {
				cells = append(cells, RatioCell(r.Value(m)))
			}
		}
		g.Rows = append(g.Rows, cells)
	}

	req := t.Request
	g.Notes = append(g.Notes, fmt.Sprintf("Capital %s, stop-loss %s%%", MoneyCell(req.Capital), req.StopLossPct))
	if t.Fields.Has(risk.FieldMargin) {
		g.Notes = append(g.Notes, fmt.Sprintf("Warning: with %sx leverage your exposure grows by the same factor.", req.Leverage))
	}
	if t.Fields.Has(risk.FieldProfit) {
		g.Notes = append(g.Notes, fmt.Sprintf("Take-profit %s%%", req.TakeProfitPct))
	}
	if t.Fields.Has(risk.FieldFees) {
		g.Notes = append(g.Notes, fmt.Sprintf("Fee rate %s%% per side (%s)", req.Fee.RatePct, req.Fee.Direction))
	}
	g.Notes = append(g.Notes, "The first line is the most you can lose on this trade.")
	return g
}

// StopLossGrid shows a stop-loss derived from prices.
func StopLossGrid(entry, stop decimal.Decimal, dir risk.Direction, pct decimal.Decimal) Grid {
	return Grid{
		Title:  "Stop-Loss",
		Header: []string{"", "Value"},
		Rows: [][]Cell{
			row(TextCell("Direction"), TextCell(dir.String())),
			row(TextCell("Entry Price"), TextCell(entry.String())),
			row(TextCell("Stop Price"), TextCell(stop.String())),
			row(TextCell("Stop-Loss"), PercentCell(pct.Round(4))),
		},
	}
}

// ReverseGrid shows a margin-first calculation.
func ReverseGrid(r risk.ReverseResult) Grid {
	return Grid{
		Title:  "Reverse Sizing",
		Header: []string{"", "Value"},
		Rows: [][]Cell{
			row(TextCell("Available Margin ($)"), MoneyCell(r.Input.AvailableMargin)),
			row(TextCell("Leverage"), MultiplierCell(r.Input.Leverage)),
			row(TextCell("Stop-Loss"), PercentCell(r.Input.StopLossPct)),
			row(TextCell("Target Risk"), PercentCell(r.Input.TargetRiskPct)),
			row(TextCell("Position Size ($)"), MoneyCell(r.PositionSize)),
			row(TextCell("Risk Amount ($)"), MoneyCell(r.DollarRisk)),
			row(TextCell("Required Capital ($)"), MoneyCell(r.RequiredCapital)),
		},
	}
}

// PortfolioGrid lists every trade followed by a totals footer.
func PortfolioGrid(s risk.PortfolioSummary) Grid {
	g := Grid{
		Title:  "Portfolio",
		Header: []string{"#", "Risk", "Stop-Loss", "Leverage", "Risk Amount ($)", "Position Size ($)", "Margin ($)"},
	}
	for i, p := range s.Positions {
		g.Rows = append(g.Rows, row(
			TextCell(strconv.Itoa(i+1)),
			PercentCell(p.Entry.RiskPct),
			PercentCell(p.Entry.StopLossPct),
			MultiplierCell(p.Entry.Leverage),
			MoneyCell(p.DollarRisk),
			MoneyCell(p.PositionSize),
			MoneyCell(p.Margin),
		))
	}
	g.Footer = [][]Cell{
		row(TextCell("Total"), PercentCell(s.TotalRiskPct.Round(4)), TextCell(""), TextCell(""),
			MoneyCell(s.TotalDollarRisk), TextCell(""), MoneyCell(s.TotalMargin)),
	}
	g.Notes = []string{
		fmt.Sprintf("Capital %s, free margin %s", MoneyCell(s.Capital), MoneyCell(s.FreeMargin)),
	}
	switch s.Signal {
	case risk.SignalHigh:
		g.Notes = append(g.Notes, fmt.Sprintf("High risk: %s%% of capital is at risk.", s.TotalRiskPct.Round(2)))
	case risk.SignalElevated:
		g.Notes = append(g.Notes, fmt.Sprintf("Elevated risk: %s%% of capital is at risk.", s.TotalRiskPct.Round(2)))
	}
	if s.FreeMargin.IsNegative() {
		g.Notes = append(g.Notes, "Margin required exceeds capital.")
	}
	return g
}
