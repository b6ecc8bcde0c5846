package main

import (
	"fmt"
	"os"

	"galapagos/internal/statlog"

	"github.com/spf13/cobra"
)

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart <database>",
		Short: "Plot the population of a recorded run as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, _ := cmd.Flags().GetInt64("run")
			if run <= 0 {
				return fmt.Errorf("--run is required")
			}
			outPath, _ := cmd.Flags().GetString("out")
			kind, _ := cmd.Flags().GetString("kind")
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")

			store, err := statlog.Open(args[0])
			if err != nil {
				return err
			}
			defer store.Close()

			rows, err := store.History(statlog.RunID(run), kind)
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			opts := statlog.ChartOptions{
				Width:  width,
				Height: height,
				Title:  fmt.Sprintf("run %d", run),
			}
			if err := statlog.WriteChart(f, rows, opts); err != nil {
				f.Close()
				os.Remove(outPath)
				return fmt.Errorf("run %d: %w", run, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d rows)\n", outPath, len(rows))
			return nil
		},
	}
	def := statlog.DefaultChartOptions()
	cmd.Flags().Int64("run", 0, "Run id to plot")
	cmd.Flags().String("kind", "", "Plot only one strategy")
	cmd.Flags().String("out", "population.png", "Output PNG path")
	cmd.Flags().Int("width", def.Width, "Image width in pixels")
	cmd.Flags().Int("height", def.Height, "Image height in pixels")
	return cmd
}
