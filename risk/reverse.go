package risk

import "github.com/shopspring/decimal"

// ReverseInput starts from the margin a trader is willing to commit.
type ReverseInput struct {
	AvailableMargin decimal.Decimal
	StopLossPct     decimal.Decimal
	Leverage        decimal.Decimal
	TargetRiskPct   decimal.Decimal
}

type ReverseResult struct {
	Input           ReverseInput
	PositionSize    decimal.Decimal
	DollarRisk      decimal.Decimal
	RequiredCapital decimal.Decimal
}

// Reverse works backwards from margin:
//
//	positionSize    = margin * leverage
//	dollarRisk      = positionSize * stopLoss / 100
//	requiredCapital = margin * 100 / targetRisk
func (c *Calculator) Reverse(in ReverseInput) (ReverseResult, error) {
	if !in.AvailableMargin.IsPositive() {
		return ReverseResult{}, rangeErr(CodeMarginNotPositive, "available margin must be greater than zero")
	}
	if err := c.limits.checkStopLoss(in.StopLossPct); err != nil {
		return ReverseResult{}, err
	}
	if err := c.limits.checkLeverage(in.Leverage); err != nil {
		return ReverseResult{}, err
	}
	if err := checkRiskLevel(in.TargetRiskPct); err != nil {
		return ReverseResult{}, err
	}

	res := ReverseResult{Input: in}
	res.PositionSize = in.AvailableMargin.Mul(in.Leverage)
	res.DollarRisk = res.PositionSize.Mul(factor(in.StopLossPct))

	var err error
	res.RequiredCapital, err = div(in.AvailableMargin.Mul(hundred), in.TargetRiskPct, "target risk")
	if err != nil {
		return ReverseResult{}, err
	}
	return res, nil
}
