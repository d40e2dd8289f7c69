package cli

import (
	"fmt"

	"github.com/KanekiDevPro/Trade-Size-Calculator/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate or validate configuration files",
		Long: `Manage configuration files.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  tradesize config init --output tradesize.yaml
  tradesize config validate --file tradesize.yaml`,
	}

	var output string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Default().SaveToFile(output); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created default configuration: %s\n", output)
			fmt.Fprintln(cmd.OutOrStdout(), "\nEdit the file and run with:")
			fmt.Fprintf(cmd.OutOrStdout(), "  tradesize --config %s size\n", output)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&output, "output", "o", "tradesize.yaml", "output config file path")

	var path string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = rc.ConfigPath
			}
			if path == "" {
				return fmt.Errorf("--file or --config is required")
			}
			cfg, err := config.LoadFromFile(path)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Configuration valid: %s\n", path)
			fmt.Fprintf(out, "  Account: %.2f %s\n", cfg.Account.Capital, cfg.Account.Currency)
			fmt.Fprintf(out, "  Trade: stop-loss %g%%, leverage %gx, risk %s\n",
				cfg.Trade.StopLossPct, cfg.Trade.Leverage, cfg.Trade.RiskLevels)
			fmt.Fprintf(out, "  Portfolio: %d trades\n", len(cfg.Portfolio))
			return nil
		},
	}
	validateCmd.Flags().StringVarP(&path, "file", "f", "", "path to config file (defaults to --config)")

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
