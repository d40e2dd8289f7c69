package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() TradeParameters {
		return TradeParameters{
			Capital:     d("1000"),
			StopLossPct: d("1.5"),
			Leverage:    d("1"),
			RiskLevels:  ds("0.25", "0.5", "1", "2"),
		}
	}

	tests := []struct {
		name   string
		mutate func(*TradeParameters)
		code   string
	}{
		{"valid", func(p *TradeParameters) {}, ""},
		{"zero capital", func(p *TradeParameters) { p.Capital = d("0") }, CodeCapitalNotPositive},
		{"negative capital", func(p *TradeParameters) { p.Capital = d("-5") }, CodeCapitalNotPositive},
		{"stop-loss below floor", func(p *TradeParameters) { p.StopLossPct = d("0.009") }, CodeStopLossTooSmall},
		{"stop-loss at floor", func(p *TradeParameters) { p.StopLossPct = d("0.01") }, ""},
		{"zero stop-loss", func(p *TradeParameters) { p.StopLossPct = d("0") }, CodeStopLossTooSmall},
		{"stop-loss 100", func(p *TradeParameters) { p.StopLossPct = d("100") }, CodeStopLossTooLarge},
		{"stop-loss just below 100", func(p *TradeParameters) { p.StopLossPct = d("99.999999999") }, ""},
		{"leverage below 1", func(p *TradeParameters) { p.Leverage = d("0.5") }, CodeLeverageOutOfRange},
		{"leverage 125", func(p *TradeParameters) { p.Leverage = d("125") }, ""},
		{"leverage 125.01", func(p *TradeParameters) { p.Leverage = d("125.01") }, CodeLeverageOutOfRange},
		{"no risk levels", func(p *TradeParameters) { p.RiskLevels = nil }, CodeNoRiskLevels},
		{"risk level zero", func(p *TradeParameters) { p.RiskLevels = ds("1", "0") }, CodeRiskLevelOutOfRange},
		{"risk level 100", func(p *TradeParameters) { p.RiskLevels = ds("100") }, CodeRiskLevelOutOfRange},
		{"risk level just below 100", func(p *TradeParameters) { p.RiskLevels = ds("99.999999999") }, ""},
		{"negative risk level", func(p *TradeParameters) { p.RiskLevels = ds("-1") }, CodeRiskLevelOutOfRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := valid()
			tt.mutate(&p)
			err := Validate(p)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInputRange)
			assert.Equal(t, tt.code, CodeOf(err))
		})
	}
}

func TestValidate_FirstViolationWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    TradeParameters
		code string
	}{
		{
			name: "capital before leverage",
			p:    TradeParameters{Capital: d("0"), StopLossPct: d("2"), Leverage: d("200"), RiskLevels: ds("1")},
			code: CodeCapitalNotPositive,
		},
		{
			name: "stop-loss before risk levels",
			p:    TradeParameters{Capital: d("1000"), StopLossPct: d("100"), Leverage: d("1")},
			code: CodeStopLossTooLarge,
		},
		{
			name: "leverage before risk level range",
			p:    TradeParameters{Capital: d("1000"), StopLossPct: d("2"), Leverage: d("0"), RiskLevels: ds("150")},
			code: CodeLeverageOutOfRange,
		},
		{
			name: "everything wrong",
			p:    TradeParameters{Capital: d("-1"), StopLossPct: d("0"), Leverage: d("0")},
			code: CodeCapitalNotPositive,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.code, CodeOf(Validate(tt.p)))
		})
	}
}

func TestValidate_NoFloor(t *testing.T) {
	t.Parallel()

	l := DefaultLimits()
	l.MinStopLossPct = d("0")

	p := TradeParameters{Capital: d("1000"), StopLossPct: d("0.001"), Leverage: d("1"), RiskLevels: ds("1")}
	assert.NoError(t, l.Validate(p))

	p.StopLossPct = d("0")
	assert.Equal(t, CodeStopLossTooSmall, CodeOf(l.Validate(p)))
}

func TestValidate_CustomMaxLeverage(t *testing.T) {
	t.Parallel()

	l := DefaultLimits()
	l.MaxLeverage = d("20")

	p := TradeParameters{Capital: d("1000"), StopLossPct: d("1"), Leverage: d("25"), RiskLevels: ds("1")}
	err := l.Validate(p)
	assert.Equal(t, CodeLeverageOutOfRange, CodeOf(err))
	assert.Contains(t, err.Error(), "20")
}
