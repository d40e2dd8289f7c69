package risk

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Validate checks p against the limits. Rules run in a fixed order and the
// first violated rule is returned:
//
//  1. capital > 0
//  2. MinStopLossPct <= stop-loss < 100 (stop-loss > 0 when no floor is set)
//  3. 1 <= leverage <= MaxLeverage
//  4. at least one risk level
//  5. every risk level in (0, 100)
func (l Limits) Validate(p TradeParameters) error {
	if !p.Capital.IsPositive() {
		return rangeErr(CodeCapitalNotPositive, "capital must be greater than zero")
	}
	if err := l.checkStopLoss(p.StopLossPct); err != nil {
		return err
	}
	if err := l.checkLeverage(p.Leverage); err != nil {
		return err
	}
	if len(p.RiskLevels) == 0 {
		return rangeErr(CodeNoRiskLevels, "enter at least one risk level")
	}
	for _, r := range p.RiskLevels {
		if err := checkRiskLevel(r); err != nil {
			return err
		}
	}
	return nil
}

func (l Limits) checkStopLoss(sl decimal.Decimal) error {
	if l.MinStopLossPct.IsPositive() {
		if sl.LessThan(l.MinStopLossPct) {
			return rangeErr(CodeStopLossTooSmall, "stop-loss cannot be less than %s%%", l.MinStopLossPct)
		}
	} else if !sl.IsPositive() {
		return rangeErr(CodeStopLossTooSmall, "stop-loss must be greater than zero")
	}
	if sl.GreaterThanOrEqual(hundred) {
		return rangeErr(CodeStopLossTooLarge, "stop-loss must be less than 100%%")
	}
	return nil
}

func (l Limits) checkLeverage(lev decimal.Decimal) error {
	if lev.LessThan(one) || lev.GreaterThan(l.MaxLeverage) {
		return rangeErr(CodeLeverageOutOfRange, "leverage must be between 1 and %s", l.MaxLeverage)
	}
	return nil
}

func checkRiskLevel(r decimal.Decimal) error {
	if !r.IsPositive() || r.GreaterThanOrEqual(hundred) {
		return rangeErr(CodeRiskLevelOutOfRange, "risk levels must be between 0 and 100 (got %s)", r)
	}
	return nil
}
