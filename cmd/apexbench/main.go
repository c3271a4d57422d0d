// Command apexbench times the area, translate, and self-intersection
// operations across a sweep of polygon sizes. The area sweep also
// reports which dispatch level the public entry point chose at each
// size.
package main

import (
	"fmt"
	"os"

	"github.com/ajroetker/apexgo/cmd/apexbench/internal/harness"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "apexbench",
		Short: "Benchmark apexgo's polygon operations across backend sizes",
	}

	var (
		minSize, maxSize int
		warmup, reps     int
	)
	root.PersistentFlags().IntVar(&minSize, "min", 8, "smallest polygon size in the sweep")
	root.PersistentFlags().IntVar(&maxSize, "max", 8192, "largest polygon size in the sweep")
	root.PersistentFlags().IntVar(&warmup, "warmup", 3, "warm-up repetitions discarded before timing")
	root.PersistentFlags().IntVar(&reps, "reps", 10, "timed repetitions per size")

	root.AddCommand(newAreaCmd(&minSize, &maxSize, &warmup, &reps))
	root.AddCommand(newTranslateCmd(&minSize, &maxSize, &warmup, &reps))
	root.AddCommand(newSelfIntersectCmd(&minSize, &maxSize, &warmup, &reps))
	root.AddCommand(newInfoCmd())

	return root
}

func newAreaCmd(minSize, maxSize, warmup, reps *int) *cobra.Command {
	return &cobra.Command{
		Use:   "area",
		Short: "Sweep the area dispatch across polygon sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return harness.RunAreaSweep(cmd.OutOrStdout(), *minSize, *maxSize, *warmup, *reps)
		},
	}
}

func newTranslateCmd(minSize, maxSize, warmup, reps *int) *cobra.Command {
	return &cobra.Command{
		Use:   "translate",
		Short: "Sweep the translate kernels across polygon sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return harness.RunTranslateSweep(cmd.OutOrStdout(), *minSize, *maxSize, *warmup, *reps)
		},
	}
}

func newSelfIntersectCmd(minSize, maxSize, warmup, reps *int) *cobra.Command {
	return &cobra.Command{
		Use:   "selfintersect",
		Short: "Sweep the self-intersection kernels across polygon sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return harness.RunSelfIntersectSweep(cmd.OutOrStdout(), *minSize, *maxSize, *warmup, *reps)
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print host capability diagnostics used to interpret the sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), harness.HostCapabilities())
			return nil
		},
	}
}
