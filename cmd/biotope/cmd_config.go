package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"galapagos/internal/biotope"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration a run would use after applying the --config
file and the GALAPAGOS_* environment variables. The output is a valid
--config file. With --params, seed a biotope from it and list the parameters
the engine reports instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if params, _ := cmd.Flags().GetBool("params"); params {
				b := biotope.New(nil)
				if err := b.Seed(cfg.Biotope); err != nil {
					return err
				}
				snap := b.Parameters()
				if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
					return json.NewEncoder(out).Encode(snap)
				}
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, g := range snap.Groups {
					fmt.Fprintf(w, "%s\n", g.Name)
					for _, p := range g.Params {
						fmt.Fprintf(w, "  %s\t%s\t%s\n", p.Label, p.Value, p.Key)
					}
				}
				return w.Flush()
			}

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().Bool("params", false, "List the engine parameters of the seeded configuration")
	return cmd
}
