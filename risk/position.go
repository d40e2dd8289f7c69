package risk

import "github.com/shopspring/decimal"

// Field is an optional column of a sizing row.
type Field uint8

const (
	FieldMargin Field = 1 << iota // leverage > 1
	FieldProfit                   // take-profit given: potential profit and R:R
	FieldFees                     // fee rate and take-profit given: fees and net profit
)

// Fields is the set of optional columns present on a table.
type Fields uint8

func (fs Fields) Has(f Field) bool {
	return fs&Fields(f) != 0
}

func (fs Fields) with(f Field) Fields {
	return fs | Fields(f)
}

// Metric identifies one output line of a sizing table.
type Metric int

const (
	MetricDollarRisk Metric = iota
	MetricPositionSize
	MetricMargin
	MetricPotentialProfit
	MetricRiskReward
	MetricOpenFee
	MetricCloseFee
	MetricNetProfit
)

var metricNames = [...]string{
	MetricDollarRisk:      "Risk Amount ($)",
	MetricPositionSize:    "Position Size ($)",
	MetricMargin:          "Required Margin ($)",
	MetricPotentialProfit: "Potential Profit ($)",
	MetricRiskReward:      "Risk:Reward",
	MetricOpenFee:         "Open Fee ($)",
	MetricCloseFee:        "Close Fee ($)",
	MetricNetProfit:       "Net Profit ($)",
}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return "unknown"
	}
	return metricNames[m]
}

// IsMoney reports whether the metric is an account-currency amount.
func (m Metric) IsMoney() bool {
	return m != MetricRiskReward
}

// FeeSpec enables the fee-aware variant. EntryPrice is optional; when zero
// the exit notional is derived from the take-profit percentage alone, which
// gives the same result.
type FeeSpec struct {
	RatePct    decimal.Decimal
	EntryPrice decimal.Decimal
	Direction  Direction
}

// SizingRequest is the full input of CalculatePositionSizing. A zero
// TakeProfitPct means no take-profit was given.
type SizingRequest struct {
	TradeParameters
	TakeProfitPct decimal.Decimal
	Fee           *FeeSpec
}

// Row holds the results for one risk level. Only the columns in Fields are
// meaningful; the rest stay zero.
type Row struct {
	RiskPct         decimal.Decimal
	DollarRisk      decimal.Decimal
	PositionSize    decimal.Decimal
	Margin          decimal.Decimal
	PotentialProfit decimal.Decimal
	RiskReward      decimal.Decimal
	OpenFee         decimal.Decimal
	CloseFee        decimal.Decimal
	NetProfit       decimal.Decimal
}

// Value returns the row's value for m.
func (r Row) Value(m Metric) decimal.Decimal {
	switch m {
	case MetricDollarRisk:
		return r.DollarRisk
	case MetricPositionSize:
		return r.PositionSize
	case MetricMargin:
		return r.Margin
	case MetricPotentialProfit:
		return r.PotentialProfit
	case MetricRiskReward:
		return r.RiskReward
	case MetricOpenFee:
		return r.OpenFee
	case MetricCloseFee:
		return r.CloseFee
	case MetricNetProfit:
		return r.NetProfit
	}
	return decimal.Zero
}

// Table is the result of a sizing calculation, one Row per risk level in
// ascending order.
type Table struct {
	Request SizingRequest
	Fields  Fields
	Rows    []Row
}

// Metrics lists the table's output lines in their fixed display order:
// dollar risk, position size, [margin], [potential profit, risk:reward],
// [open fee, close fee, net profit].
func (t Table) Metrics() []Metric {
	ms := []Metric{MetricDollarRisk, MetricPositionSize}
	if t.Fields.Has(FieldMargin) {
		ms = append(ms, MetricMargin)
	}
	if t.Fields.Has(FieldProfit) {
		ms = append(ms, MetricPotentialProfit, MetricRiskReward)
	}
	if t.Fields.Has(FieldFees) {
		ms = append(ms, MetricOpenFee, MetricCloseFee, MetricNetProfit)
	}
	return ms
}

// PositionSizing validates req and sizes a position for every risk level.
// Nothing is computed when validation fails.
func (c *Calculator) PositionSizing(req SizingRequest) (Table, error) {
	if err := c.limits.Validate(req.TradeParameters); err != nil {
		return Table{}, err
	}

	fields, err := requestFields(req)
	if err != nil {
		return Table{}, err
	}

	levels := uniqueSorted(req.RiskLevels)
	req.RiskLevels = levels

	t := Table{Request: req, Fields: fields, Rows: make([]Row, 0, len(levels))}
	for _, r := range levels {
		row, err := sizeRow(req, fields, r)
		if err != nil {
			return Table{}, err
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func requestFields(req SizingRequest) (Fields, error) {
	var fs Fields
	if req.Leverage.GreaterThan(one) {
		fs = fs.with(FieldMargin)
	}
	if req.TakeProfitPct.IsNegative() {
		return 0, rangeErr(CodeTakeProfitNegative, "take-profit cannot be negative")
	}
	if req.TakeProfitPct.IsPositive() {
		fs = fs.with(FieldProfit)
	}
	if req.Fee != nil {
		if req.Fee.RatePct.IsNegative() || req.Fee.RatePct.GreaterThanOrEqual(hundred) {
			return 0, rangeErr(CodeFeeOutOfRange, "fee rate must be between 0 and 100")
		}
		if req.Fee.EntryPrice.IsNegative() {
			return 0, rangeErr(CodePriceNotPositive, "entry price must be greater than zero")
		}
		if req.Fee.Direction == Short && req.TakeProfitPct.GreaterThanOrEqual(hundred) {
			return 0, rangeErr(CodeTakeProfitTooLarge, "a short take-profit of 100%% or more puts the target price at or below zero")
		}
		if fs.Has(FieldProfit) {
			fs = fs.with(FieldFees)
		}
	}
	return fs, nil
}

func sizeRow(req SizingRequest, fs Fields, riskPct decimal.Decimal) (Row, error) {
	row := Row{RiskPct: riskPct}

	row.DollarRisk = req.Capital.Mul(factor(riskPct))

	var err error
	row.PositionSize, err = div(row.DollarRisk, factor(req.StopLossPct), "stop-loss")
	if err != nil {
		return Row{}, err
	}

	if fs.Has(FieldMargin) {
		row.Margin, err = div(row.PositionSize, req.Leverage, "leverage")
		if err != nil {
			return Row{}, err
		}
	}

	if fs.Has(FieldProfit) {
		row.PotentialProfit = row.PositionSize.Mul(factor(req.TakeProfitPct))
		row.RiskReward, err = RR(req.TakeProfitPct, req.StopLossPct)
		if err != nil {
			return Row{}, err
		}
	}

	if fs.Has(FieldFees) {
		row.OpenFee, row.CloseFee, err = fees(row.PositionSize, req.TakeProfitPct, *req.Fee)
		if err != nil {
			return Row{}, err
		}
		row.NetProfit = row.PotentialProfit.Sub(row.OpenFee.Add(row.CloseFee))
	}

	return row, nil
}

// fees charges the rate on the notional at entry and on the notional at the
// take-profit price.
func fees(positionSize, tpPct decimal.Decimal, f FeeSpec) (openFee, closeFee decimal.Decimal, err error) {
	rate := factor(f.RatePct)
	entry := f.EntryPrice
	if entry.IsZero() {
		entry = one
	}
	tpPrice, err := TakeProfitPrice(entry, tpPct, f.Direction)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	exitNotional, err := div(positionSize.Mul(tpPrice), entry, "entry price")
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return positionSize.Mul(rate), exitNotional.Mul(rate), nil
}
