package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"galapagos/internal/strategy"

	"github.com/spf13/cobra"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the registered finch strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			type entry struct {
				Name        string `json:"name"`
				Description string `json:"description"`
			}
			var entries []entry
			for _, name := range strategy.Names() {
				s, err := strategy.New(name)
				if err != nil {
					return err
				}
				entries = append(entries, entry{Name: name, Description: strategy.Describe(s)})
			}

			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(out).Encode(entries)
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Description)
			}
			return w.Flush()
		},
	}
}
