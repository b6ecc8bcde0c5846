package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"galapagos/internal/statlog"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <database>",
		Short: "Show statistics recorded with run --sqlite",
		Long: `Without --run, list the runs recorded in the database. With --run, print
the per-round rows of that run, optionally limited to one --kind.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := statlog.Open(args[0])
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			run, _ := cmd.Flags().GetInt64("run")
			if run == 0 {
				runs, err := store.Runs()
				if err != nil {
					return err
				}
				if jsonOut {
					return json.NewEncoder(out).Encode(runs)
				}
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "RUN\tSTARTED\tSEED\tSIZE\tKINDS")
				for _, r := range runs {
					fmt.Fprintf(w, "%d\t%s\t%d\t%dx%d\t%s\n", r.ID, r.StartedAt, r.Seed, r.Width, r.Height, r.Kinds)
				}
				return w.Flush()
			}

			kind, _ := cmd.Flags().GetString("kind")
			rows, err := store.History(statlog.RunID(run), kind)
			if err != nil {
				return err
			}
			if jsonOut {
				return json.NewEncoder(out).Encode(rows)
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ROUND\tKIND\tPOPULATION\tBORN\tDIED (AGE)\tDIED (VITALITY)")
			for _, r := range rows {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\n", r.Round, r.Kind, r.Population, r.Born, r.DiedOfAge, r.DiedOfVitality)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int64("run", 0, "Run id to show")
	cmd.Flags().String("kind", "", "Limit rows to one strategy")
	return cmd
}
