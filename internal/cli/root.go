package cli

import (
	"fmt"
	"os"

	"github.com/KanekiDevPro/Trade-Size-Calculator/config"
	"github.com/KanekiDevPro/Trade-Size-Calculator/internal/logger"
	"github.com/KanekiDevPro/Trade-Size-Calculator/risk"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{Log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "tradesize",
		Short: "Trade size calculator: position sizing, margin and portfolio risk",
		Long: `tradesize turns an account size, a stop-loss and a list of risk levels
into position sizes, required margin, profit targets and fees.

Numbers may be typed with Arabic-Indic or Persian digits and localized
separators, e.g. --risk "۰.۵، ۱، ۲".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (YAML or JSON, optional)")
	cmd.PersistentFlags().StringVar(&rc.EnvFile, "env-file", ".env", "Env file with TRADESIZE_* overrides")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "Log level: debug|info|warn|error (default from config)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return rc.load()
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = rc.Log.Sync()
	}

	cmd.AddCommand(calcCommands(rc)...)
	cmd.AddCommand(
		newSessionCmd(rc),
		newConfigCmd(rc),
		newVersionCmd(),
	)

	return cmd
}

// load resolves configuration in order: defaults, config file, env file and
// environment. Flags are applied later by each command.
func (rc *RootConfig) load() error {
	if err := config.LoadEnvFile(rc.EnvFile); err != nil {
		return err
	}

	cfg := config.Default()
	if rc.ConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := cfg.Log.Level
	if rc.LogLevel != "" {
		level = rc.LogLevel
	}
	log, err := logger.New(level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	rc.Cfg = cfg
	rc.Log = log
	rc.Calc = risk.NewCalculator(cfg.RiskLimits())
	rc.Log.Debug("configuration loaded",
		zap.String("config", rc.ConfigPath),
		zap.Float64("capital", cfg.Account.Capital),
		zap.Float64("max_leverage", cfg.Limits.MaxLeverage),
	)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tradesize %s\n", Version)
		},
	}
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
