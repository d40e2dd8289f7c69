package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/KanekiDevPro/Trade-Size-Calculator/report"
	"github.com/KanekiDevPro/Trade-Size-Calculator/risk"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// decimalValue is a flag value that accepts localized digits.
type decimalValue struct {
	p *decimal.Decimal
}

func (v decimalValue) String() string {
	if v.p == nil {
		return "0"
	}
	return v.p.String()
}

func (v decimalValue) Set(s string) error {
	d, err := risk.ParseAmount(s)
	if err != nil {
		return err
	}
	*v.p = d
	return nil
}

func (v decimalValue) Type() string {
	return "decimal"
}

func decimalVar(cmd *cobra.Command, p *decimal.Decimal, name, usage string) {
	cmd.Flags().Var(decimalValue{p}, name, usage)
}

// pick returns the flag value when it was given and the config value
// otherwise.
func pick(cmd *cobra.Command, name string, flag decimal.Decimal, cfg float64) decimal.Decimal {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return decimal.NewFromFloat(cfg)
}

func pickString(cmd *cobra.Command, name, flag, cfg string) string {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return cfg
}

func parseDirection(s string) (risk.Direction, error) {
	if strings.TrimSpace(s) == "" {
		return risk.Long, nil
	}
	return risk.ParseDirection(s)
}

type outputFlags struct {
	format string
	path   string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "Output format: table|csv|json|xlsx (default from config)")
	cmd.Flags().StringVarP(&o.path, "output", "o", "", "Write to this file instead of stdout (required for xlsx)")
}

// emit renders g in the requested format to stdout or to the output file.
func (rc *RootConfig) emit(cmd *cobra.Command, o outputFlags, g report.Grid) error {
	name := o.format
	if name == "" {
		name = rc.Cfg.Output.Format
	}
	f, err := report.ParseFormat(name)
	if err != nil {
		return err
	}

	path := o.path
	if path == "" && f == report.FormatXLSX {
		path = rc.Cfg.Output.Path
	}

	switch {
	case f == report.FormatXLSX:
		if path == "" {
			return fmt.Errorf("xlsx output needs --output")
		}
		if err := report.WriteXLSX(path, g); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	case path != "":
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		if err := report.Write(file, f, g); err != nil {
			file.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := file.Close(); err != nil {
			return err
		}
	default:
		return report.Write(cmd.OutOrStdout(), f, g)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
