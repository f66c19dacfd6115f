package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/go-drift/motion/internal/logging"
	"github.com/go-drift/motion/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "motion",
	Short: "Motion - reactive widgets driven by an animation scheduler",
	Long: `Motion runs interactive widgets whose state changes drive short,
interruptible animations.

Use "motion run" to replay a scenario headlessly and "motion show" to
play with the widgets in the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("log-level")
		logger := logging.New(logging.ParseLevel(name))
		slog.SetDefault(logger)
		errors.SetHandler(&errors.LogHandler{Logger: logger})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}
