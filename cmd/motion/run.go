package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/go-drift/motion/cmd/motion/internal/config"
	"github.com/go-drift/motion/cmd/motion/internal/scenario"
	"github.com/go-drift/motion/internal/metrics"
	"github.com/go-drift/motion/pkg/animation"
)

var runMetrics bool

var runCmd = &cobra.Command{
	Use:   "run [scenario.yaml]",
	Short: "Replay a scenario headlessly",
	Long: `Builds the widgets a scenario declares, replays its steps against a
fake clock and prints every output event followed by the final node tree.
Without an argument the built-in scenario runs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sc *config.Scenario
		var err error
		if len(args) == 1 {
			sc, err = config.Load(args[0])
		} else {
			sc = config.Default()
		}
		if err != nil {
			return err
		}

		var reg *prometheus.Registry
		if runMetrics {
			reg = prometheus.NewRegistry()
			prev := animation.SetObserver(metrics.NewObserver(reg))
			defer animation.SetObserver(prev)
		}

		res, err := scenario.Run(cmd.Context(), sc, slog.Default())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if _, err := res.WriteTo(out); err != nil {
			return err
		}
		if reg != nil {
			return writeMetrics(out, reg)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runMetrics, "metrics", false, "print scheduler metrics after the run")
	rootCmd.AddCommand(runCmd)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintln(w)
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
