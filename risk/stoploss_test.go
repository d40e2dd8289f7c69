package risk

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStopLossPct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry string
		stop  string
		dir   Direction
		want  string
		kind  error
		code  string
	}{
		{name: "long", entry: "100", stop: "98", dir: Long, want: "2"},
		{name: "short", entry: "100", stop: "102", dir: Short, want: "2"},
		{name: "long fractional", entry: "1.0850", stop: "1.0829", dir: Long, want: "0.1935483870967742"},
		{name: "short with long stop", entry: "100", stop: "98", dir: Short, kind: ErrDirectionMismatch, code: CodeStopBelowEntry},
		{name: "long with short stop", entry: "100", stop: "102", dir: Long, kind: ErrDirectionMismatch, code: CodeStopAboveEntry},
		{name: "stop equals entry", entry: "100", stop: "100", dir: Long, kind: ErrDirectionMismatch, code: CodeStopAboveEntry},
		{name: "zero entry", entry: "0", stop: "98", dir: Long, kind: ErrInputRange, code: CodePriceNotPositive},
		{name: "negative stop", entry: "100", stop: "-1", dir: Long, kind: ErrInputRange, code: CodePriceNotPositive},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DeriveStopLossPct(d(tt.entry), d(tt.stop), tt.dir)
			if tt.kind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.kind)
				assert.Equal(t, tt.code, CodeOf(err))
				return
			}
			require.NoError(t, err)
			assertNear(t, d(tt.want), got)
		})
	}
}

func TestStopAndTakeProfitPrices(t *testing.T) {
	t.Parallel()

	price := func(f func(entry, pct decimal.Decimal, dir Direction) (decimal.Decimal, error), entry, pct string, dir Direction) decimal.Decimal {
		v, err := f(d(entry), d(pct), dir)
		require.NoError(t, err)
		return v
	}

	assertDec(t, "98", price(StopPrice, "100", "2", Long))
	assertDec(t, "102", price(StopPrice, "100", "2", Short))
	assertDec(t, "104", price(TakeProfitPrice, "100", "4", Long))
	assertDec(t, "96", price(TakeProfitPrice, "100", "4", Short))

	// a stop placed from a derived percentage lands back on the original price
	sl, err := DeriveStopLossPct(d("250"), d("240"), Long)
	require.NoError(t, err)
	assertDec(t, "240", price(StopPrice, "250", sl.String(), Long))
}

func TestUnknownDirectionRejected(t *testing.T) {
	t.Parallel()

	bad := Direction(7)

	_, err := DeriveStopLossPct(d("100"), d("98"), bad)
	assert.ErrorIs(t, err, ErrParse)
	assert.Equal(t, CodeUnknownDirection, CodeOf(err))

	_, err = StopPrice(d("100"), d("2"), bad)
	assert.Equal(t, CodeUnknownDirection, CodeOf(err))

	_, err = TakeProfitPrice(d("100"), d("4"), bad)
	assert.Equal(t, CodeUnknownDirection, CodeOf(err))

	_, err = CalculatePositionSizing(SizingRequest{
		TradeParameters: TradeParameters{
			Capital:     d("1000"),
			StopLossPct: d("2"),
			Leverage:    d("1"),
			RiskLevels:  ds("1"),
		},
		TakeProfitPct: d("4"),
		Fee:           &FeeSpec{RatePct: d("0.1"), Direction: bad},
	})
	assert.Equal(t, CodeUnknownDirection, CodeOf(err))
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"long", "LONG", " buy ", "l"} {
		got, err := ParseDirection(s)
		require.NoError(t, err, s)
		assert.Equal(t, Long, got)
	}
	for _, s := range []string{"short", "Sell", "S"} {
		got, err := ParseDirection(s)
		require.NoError(t, err, s)
		assert.Equal(t, Short, got)
	}

	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrParse)
	assert.Equal(t, CodeUnknownDirection, CodeOf(err))

	assert.Equal(t, "long", Long.String())
	assert.Equal(t, "short", Short.String())
}
