package risk

import "github.com/shopspring/decimal"

// factor turns a 0-100 percentage into a 0-1 fraction. Shifting the
// exponent keeps it exact at any scale.
func factor(pct decimal.Decimal) decimal.Decimal {
	return pct.Shift(-2)
}

// div divides a by b, reporting a zero divisor as a calculation error
// instead of letting decimal panic.
func div(a, b decimal.Decimal, what string) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, &Error{
			Kind: ErrCalculation,
			Code: CodeZeroDivisor,
			Msg:  "calculation error: " + what + " is zero",
		}
	}
	return a.Div(b), nil
}

// RR is the reward-to-risk ratio of a take-profit distance over a stop-loss
// distance, both in percent of entry price.
func RR(takeProfitPct, stopLossPct decimal.Decimal) (decimal.Decimal, error) {
	return div(factor(takeProfitPct), factor(stopLossPct), "stop-loss")
}

// RiskPct expresses a dollar risk as a percentage of capital.
func RiskPct(dollarRisk, capital decimal.Decimal) (decimal.Decimal, error) {
	q, err := div(dollarRisk, capital, "capital")
	if err != nil {
		return decimal.Zero, err
	}
	return q.Mul(hundred), nil
}
