package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"galapagos/internal/sweep"

	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare strategies over many seeds",
		Long: `Run many independently seeded biotopes in parallel with the same
configuration and report, per strategy, the mean final population and the
fraction of runs it survived.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)
			res, err := sweep.Run(cmd.Context(), cfg.Biotope, sweep.Options{
				Runs:    cfg.Sweep.Runs,
				Rounds:  cfg.Run.Rounds,
				Workers: cfg.Sweep.Workers,
			}, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(out).Encode(res.Kinds)
			}
			fmt.Fprintf(out, "%d runs of %d rounds in %s\n", len(res.Runs), cfg.Run.Rounds, res.Elapsed.Round(time.Millisecond))
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tMEAN POPULATION\tSURVIVAL\tBEST")
			for _, k := range res.Kinds {
				fmt.Fprintf(w, "%s\t%.1f\t%.0f%%\t%d\n", k.Kind, k.MeanPopulation, 100*k.Survival, k.Best)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int("runs", 0, "Number of seeds (default from config)")
	cmd.Flags().Int("workers", 0, "Parallel workers (default from config)")
	cmd.Flags().Int("rounds", 0, "Rounds per run (default from config)")
	cmd.Flags().Int64("seed", 0, "First seed (default from config)")
	return cmd
}
