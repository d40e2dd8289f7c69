package cli

import (
	"fmt"
	"strings"

	"github.com/KanekiDevPro/Trade-Size-Calculator/journal"
	"github.com/KanekiDevPro/Trade-Size-Calculator/numeral"
	"github.com/KanekiDevPro/Trade-Size-Calculator/report"
	"github.com/KanekiDevPro/Trade-Size-Calculator/risk"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// calcCommands builds the calculation sub-commands. The session command
// builds a fresh set for every line it reads.
func calcCommands(rc *RootConfig) []*cobra.Command {
	return []*cobra.Command{
		newSizeCmd(rc),
		newStopLossCmd(rc),
		newReverseCmd(rc),
		newPortfolioCmd(rc),
	}
}

func newSizeCmd(rc *RootConfig) *cobra.Command {
	var (
		capital, stopLoss, leverage decimal.Decimal
		takeProfit, fee             decimal.Decimal
		entry, stop                 decimal.Decimal
		riskText, direction         string
		out                         outputFlags
	)

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Position size for each risk level",
		Long: `Compute dollar risk, position size and (with leverage) required margin for
every risk level. A take-profit adds potential profit and risk:reward; a fee
rate on top of that adds open/close fees and net profit.

Pass --entry and --stop instead of --stop-loss to derive the stop-loss from
prices.`,
		Example: `  tradesize size --capital 1000 --stop-loss 2 --risk 1,2,3
  tradesize size --capital 5000 --entry 100 --stop 98 --leverage 10 --take-profit 4 --fee 0.05`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rc.Cfg
			fail := func(err error) error {
				rc.observe(journal.KindSizing, report.Grid{}, err)
				return err
			}

			dir, err := parseDirection(pickString(cmd, "direction", direction, cfg.Trade.Direction))
			if err != nil {
				return fail(err)
			}
			levels, err := risk.ParseRiskLevels(pickString(cmd, "risk", riskText, cfg.Trade.RiskLevels))
			if err != nil {
				return fail(err)
			}

			req := risk.SizingRequest{
				TradeParameters: risk.TradeParameters{
					Capital:    pick(cmd, "capital", capital, cfg.Account.Capital),
					Leverage:   pick(cmd, "leverage", leverage, cfg.Trade.Leverage),
					RiskLevels: levels,
				},
				TakeProfitPct: pick(cmd, "take-profit", takeProfit, cfg.Trade.TakeProfitPct),
			}

			entryPrice := pick(cmd, "entry", entry, cfg.Trade.EntryPrice)
			if cmd.Flags().Changed("stop") {
				if !cmd.Flags().Changed("entry") && entryPrice.IsZero() {
					return fail(fmt.Errorf("--stop needs --entry"))
				}
				req.StopLossPct, err = risk.DeriveStopLossPct(entryPrice, stop, dir)
				if err != nil {
					return fail(err)
				}
			} else {
				req.StopLossPct = pick(cmd, "stop-loss", stopLoss, cfg.Trade.StopLossPct)
			}

			rate := pick(cmd, "fee", fee, cfg.Trade.FeeRatePct)
			if cmd.Flags().Changed("fee") || rate.IsPositive() {
				req.Fee = &risk.FeeSpec{RatePct: rate, EntryPrice: entryPrice, Direction: dir}
			}

			t, err := rc.Calc.PositionSizing(req)
			if err != nil {
				return fail(err)
			}

			g := report.SizingGrid(t)
			sizes := make([]decimal.Decimal, len(t.Rows))
			for i, r := range t.Rows {
				sizes[i] = r.PositionSize
			}
			rc.observe(journal.KindSizing, g, nil, sizes...)
			return rc.emit(cmd, out, g)
		},
	}

	decimalVar(cmd, &capital, "capital", "Account capital (default from config)")
	decimalVar(cmd, &stopLoss, "stop-loss", "Stop-loss distance in percent")
	decimalVar(cmd, &leverage, "leverage", "Leverage multiplier, 1 for none")
	decimalVar(cmd, &takeProfit, "take-profit", "Take-profit distance in percent (optional)")
	decimalVar(cmd, &fee, "fee", "Fee rate per side in percent (optional, needs --take-profit)")
	decimalVar(cmd, &entry, "entry", "Entry price (optional)")
	decimalVar(cmd, &stop, "stop", "Stop price; derives --stop-loss from --entry")
	cmd.Flags().StringVarP(&riskText, "risk", "r", "", `Risk levels in percent, e.g. "0.5, 1, 2"`)
	cmd.Flags().StringVarP(&direction, "direction", "d", "", "Trade direction: long|short")
	out.register(cmd)
	return cmd
}

func newStopLossCmd(rc *RootConfig) *cobra.Command {
	var (
		entry, stop decimal.Decimal
		direction   string
		out         outputFlags
	)

	cmd := &cobra.Command{
		Use:     "stoploss",
		Short:   "Stop-loss percentage from entry and stop prices",
		Example: `  tradesize stoploss --entry 100 --stop 98 --direction long`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fail := func(err error) error {
				rc.observe(journal.KindStopLoss, report.Grid{}, err)
				return err
			}

			dir, err := parseDirection(pickString(cmd, "direction", direction, rc.Cfg.Trade.Direction))
			if err != nil {
				return fail(err)
			}
			entryPrice := pick(cmd, "entry", entry, rc.Cfg.Trade.EntryPrice)
			pct, err := risk.DeriveStopLossPct(entryPrice, stop, dir)
			if err != nil {
				return fail(err)
			}

			g := report.StopLossGrid(entryPrice, stop, dir, pct)
			rc.observe(journal.KindStopLoss, g, nil)
			return rc.emit(cmd, out, g)
		},
	}

	decimalVar(cmd, &entry, "entry", "Entry price")
	decimalVar(cmd, &stop, "stop", "Stop price")
	cmd.Flags().StringVarP(&direction, "direction", "d", "", "Trade direction: long|short")
	_ = cmd.MarkFlagRequired("stop")
	out.register(cmd)
	return cmd
}

func newReverseCmd(rc *RootConfig) *cobra.Command {
	var (
		margin, stopLoss, leverage, targetRisk decimal.Decimal
		out                                    outputFlags
	)

	cmd := &cobra.Command{
		Use:   "reverse",
		Short: "Size a trade from the margin you want to commit",
		Long: `Start from available margin: position size is margin times leverage, and
the capital needed for that margin to equal --target-risk percent of it is
reported alongside.`,
		Example: `  tradesize reverse --margin 100 --stop-loss 2 --leverage 10 --target-risk 1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := risk.ReverseInput{
				AvailableMargin: margin,
				StopLossPct:     pick(cmd, "stop-loss", stopLoss, rc.Cfg.Trade.StopLossPct),
				Leverage:        pick(cmd, "leverage", leverage, rc.Cfg.Trade.Leverage),
				TargetRiskPct:   targetRisk,
			}
			r, err := rc.Calc.Reverse(in)
			if err != nil {
				rc.observe(journal.KindReverse, report.Grid{}, err)
				return err
			}
			g := report.ReverseGrid(r)
			rc.observe(journal.KindReverse, g, nil, r.PositionSize)
			return rc.emit(cmd, out, g)
		},
	}

	decimalVar(cmd, &margin, "margin", "Available margin")
	decimalVar(cmd, &stopLoss, "stop-loss", "Stop-loss distance in percent")
	decimalVar(cmd, &leverage, "leverage", "Leverage multiplier")
	decimalVar(cmd, &targetRisk, "target-risk", "Target risk in percent of capital")
	_ = cmd.MarkFlagRequired("margin")
	_ = cmd.MarkFlagRequired("target-risk")
	out.register(cmd)
	return cmd
}

func newPortfolioCmd(rc *RootConfig) *cobra.Command {
	var (
		capital decimal.Decimal
		trades  []string
		out     outputFlags
	)

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Combined risk and margin of several trades",
		Long: `Each --trade is "risk,stop-loss[,leverage]" in percent. Without --trade the
portfolio section of the config file is used.`,
		Example: `  tradesize portfolio --capital 1000 --trade 1,2 --trade 1.5,1,10`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := rc.Cfg.PortfolioEntries()
			if len(trades) > 0 {
				entries = make([]risk.PortfolioEntry, 0, len(trades))
				for i, t := range trades {
					e, err := parseTrade(t)
					if err != nil {
						err = fmt.Errorf("trade %d: %w", i+1, err)
						rc.observe(journal.KindPortfolio, report.Grid{}, err)
						return err
					}
					entries = append(entries, e)
				}
			}

			s, err := rc.Calc.Portfolio(pick(cmd, "capital", capital, rc.Cfg.Account.Capital), entries)
			if err != nil {
				rc.observe(journal.KindPortfolio, report.Grid{}, err)
				return err
			}
			g := report.PortfolioGrid(s)
			sizes := make([]decimal.Decimal, len(s.Positions))
			for i, p := range s.Positions {
				sizes[i] = p.PositionSize
			}
			rc.observe(journal.KindPortfolio, g, nil, sizes...)
			return rc.emit(cmd, out, g)
		},
	}

	decimalVar(cmd, &capital, "capital", "Account capital (default from config)")
	cmd.Flags().StringArrayVarP(&trades, "trade", "t", nil, `Trade as "risk,stop-loss[,leverage]"; repeatable`)
	out.register(cmd)
	return cmd
}

// parseTrade reads "risk,stop-loss[,leverage]". Localized separators are
// accepted.
func parseTrade(s string) (risk.PortfolioEntry, error) {
	parts := strings.FieldsFunc(s, numeral.IsListSeparator)
	if len(parts) < 2 || len(parts) > 3 {
		return risk.PortfolioEntry{}, fmt.Errorf("want risk,stop-loss[,leverage], got %q", s)
	}

	vals := []decimal.Decimal{decimal.Zero, decimal.Zero, decimal.NewFromInt(1)}
	for i, p := range parts {
		v, err := risk.ParseAmount(p)
		if err != nil {
			return risk.PortfolioEntry{}, err
		}
		vals[i] = v
	}
	return risk.PortfolioEntry{RiskPct: vals[0], StopLossPct: vals[1], Leverage: vals[2]}, nil
}
