// Package main is the kundali command line: it reads raw planetary positions,
// builds the sidereal chart and reports the detected yogas with their
// strength scores and dasha activation periods.
package main

import (
	"fmt"
	"os"

	"github.com/aristath/kundali/internal/config"
	"github.com/aristath/kundali/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs once the root command has run.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "kundali",
		Short:         "Sidereal chart builder and yoga detection engine",
		Long:          "kundali builds a sidereal natal chart from tropical positions and detects classical planetary combinations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				cfg.LogLevel = level
			}
			a.cfg = cfg
			a.log = logger.New(logger.Config{
				Level:  cfg.LogLevel,
				Pretty: cfg.LogPretty,
				Out:    cmd.ErrOrStderr(),
			})
			logger.SetGlobalLogger(a.log)
			return nil
		},
	}
	root.PersistentFlags().String("log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(newAnalyzeCmd(a), newTablesCmd(a))
	return root
}
