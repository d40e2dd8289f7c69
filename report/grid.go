// Package report turns engine results into printable or exportable grids.
// This is the only place decimals become floats.
package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind says how a cell is displayed.
type Kind int

const (
	Text Kind = iota
	Money
	Percent
	Ratio
	Multiplier
)

// Cell is one value of a Grid.
type Cell struct {
	Kind  Kind
	Text  string
	Value decimal.Decimal
}

func TextCell(s string) Cell                { return Cell{Kind: Text, Text: s} }
func MoneyCell(v decimal.Decimal) Cell      { return Cell{Kind: Money, Value: v} }
func PercentCell(v decimal.Decimal) Cell    { return Cell{Kind: Percent, Value: v} }
func RatioCell(v decimal.Decimal) Cell      { return Cell{Kind: Ratio, Value: v} }
func MultiplierCell(v decimal.Decimal) Cell { return Cell{Kind: Multiplier, Value: v} }

var printer = message.NewPrinter(language.English)

// String is the human form: $1,234.56, 2.5%, 1:2.00, 10x.
func (c Cell) String() string {
	switch c.Kind {
	case Money:
		f := c.Value.Round(2).InexactFloat64()
		if f < 0 {
			return printer.Sprintf("-$%.2f", -f)
		}
		return printer.Sprintf("$%.2f", f)
	case Percent:
		return c.Value.String() + "%"
	case Ratio:
		return "1:" + c.Value.StringFixed(2)
	case Multiplier:
		return c.Value.String() + "x"
	}
	return c.Text
}

// Raw is the machine form used by CSV and JSON: full decimal precision, no
// symbols.
func (c Cell) Raw() string {
	if c.Kind == Text {
		return c.Text
	}
	return c.Value.String()
}

// Grid is a titled table with optional footer rows and free-text notes.
type Grid struct {
	Title  string
	Header []string
	Rows   [][]Cell
	Footer [][]Cell
	Notes  []string
}

func row(cells ...Cell) []Cell { return cells }
