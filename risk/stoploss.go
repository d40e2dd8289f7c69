package risk

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Direction is the side of a trade.
type Direction int

const (
	Long Direction = iota
	Short
)

func (d Direction) String() string {
	if d == Short {
		return "short"
	}
	return "long"
}

// ParseDirection accepts long/buy and short/sell in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long", "buy", "l":
		return Long, nil
	case "short", "sell", "s":
		return Short, nil
	}
	return Long, parseErr(CodeUnknownDirection, s, "unknown direction %q (want long or short)", s)
}

// DeriveStopLossPct returns the distance between entry and stop as a
// percentage of entry. The stop must sit on the losing side of the trade:
// below entry for Long, above it for Short.
func DeriveStopLossPct(entry, stop decimal.Decimal, dir Direction) (decimal.Decimal, error) {
	if !entry.IsPositive() || !stop.IsPositive() {
		return decimal.Zero, rangeErr(CodePriceNotPositive, "entry and stop prices must be greater than zero")
	}

	switch dir {
	case Long:
		if !stop.LessThan(entry) {
			return decimal.Zero, &Error{
				Kind: ErrDirectionMismatch,
				Code: CodeStopAboveEntry,
				Msg:  "for a long trade the stop price must be below the entry price",
			}
		}
	case Short:
		if !stop.GreaterThan(entry) {
			return decimal.Zero, &Error{
				Kind: ErrDirectionMismatch,
				Code: CodeStopBelowEntry,
				Msg:  "for a short trade the stop price must be above the entry price",
			}
		}
	default:
		return decimal.Zero, unknownDirection(dir)
	}

	return entry.Sub(stop).Abs().Div(entry).Mul(hundred), nil
}

// StopPrice places a stop slPct percent away from entry on the losing side.
func StopPrice(entry, slPct decimal.Decimal, dir Direction) (decimal.Decimal, error) {
	move := entry.Mul(factor(slPct))
	switch dir {
	case Long:
		return entry.Sub(move), nil
	case Short:
		return entry.Add(move), nil
	}
	return decimal.Zero, unknownDirection(dir)
}

// TakeProfitPrice places a target tpPct percent away from entry on the
// winning side.
func TakeProfitPrice(entry, tpPct decimal.Decimal, dir Direction) (decimal.Decimal, error) {
	move := entry.Mul(factor(tpPct))
	switch dir {
	case Long:
		return entry.Add(move), nil
	case Short:
		return entry.Sub(move), nil
	}
	return decimal.Zero, unknownDirection(dir)
}

func unknownDirection(dir Direction) *Error {
	tok := strconv.Itoa(int(dir))
	return parseErr(CodeUnknownDirection, tok, "unknown direction %s", tok)
}
