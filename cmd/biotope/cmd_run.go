package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"galapagos/internal/biotope"
	"galapagos/internal/controller"
	"galapagos/internal/core"
	"galapagos/internal/logging"
	"galapagos/internal/render"
	"galapagos/internal/statlog"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Seed a biotope and compute rounds",
		Long: `Seed a biotope and compute rounds, logging the population after every
round. With --rounds 0 the run continues until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			b := biotope.New(logger)
			quiet, _ := cmd.Flags().GetBool("quiet")
			if !quiet {
				b.Subscribe(logging.RoundObserver(logger))
			}

			var csvLog *statlog.CSV
			if cfg.Output.CSV != "" {
				csvLog, err = statlog.CreateCSV(cfg.Output.CSV, cfg.Biotope.EnabledKinds())
				if err != nil {
					return err
				}
				defer csvLog.Close()
				b.Subscribe(csvLog.Observer())
			}

			var rec *statlog.Recorder
			if cfg.Output.SQLite != "" {
				store, err := statlog.Open(cfg.Output.SQLite)
				if err != nil {
					return err
				}
				defer store.Close()
				rec, err = store.NewRecorder(cfg.Biotope)
				if err != nil {
					return err
				}
				b.Subscribe(rec.Observer())
			}

			var video *render.Video
			if cfg.Output.Video != "" {
				size := core.Size{W: cfg.Biotope.Width, H: cfg.Biotope.Height}
				video, err = render.CreateVideo(cfg.Output.Video, size, cfg.Output.VideoScale, cfg.Output.VideoFPS)
				if err != nil {
					return err
				}
				defer video.Close()
				b.Subscribe(video.Observer())
			}

			if err := b.Seed(cfg.Biotope); err != nil {
				return err
			}
			if _, err := controller.New(b, logger).RunPaced(ctx, cfg.Run.Rounds, cfg.Run.Interval); err != nil && ctx.Err() == nil {
				return err
			}
			if rec != nil && rec.Err() != nil {
				return fmt.Errorf("recording statistics: %w", rec.Err())
			}
			if csvLog != nil {
				if err := csvLog.Err(); err != nil {
					return fmt.Errorf("writing csv log: %w", err)
				}
				if err := csvLog.Close(); err != nil {
					return fmt.Errorf("closing csv log: %w", err)
				}
			}
			if video != nil {
				if err := video.Err(); err != nil {
					return fmt.Errorf("recording video: %w", err)
				}
				if err := video.Close(); err != nil {
					return fmt.Errorf("closing video: %w", err)
				}
			}
			return printStats(cmd, b.Stats())
		},
	}
	cmd.Flags().Int("rounds", 0, "Rounds to compute, 0 runs until interrupted (default from config)")
	cmd.Flags().Int64("seed", 0, "RNG seed (default from config)")
	cmd.Flags().Duration("interval", 0, "Pause between rounds")
	cmd.Flags().String("csv", "", "Write per-round statistics to this CSV file")
	cmd.Flags().String("sqlite", "", "Record per-round statistics in this SQLite database")
	cmd.Flags().String("video", "", "Record one frame per round into this AVI file")
	cmd.Flags().Int("video-scale", 0, "Pixels per cell in the video (default from config)")
	cmd.Flags().Bool("quiet", false, "Do not log every round")
	return cmd
}

func printStats(cmd *cobra.Command, stats biotope.RoundStats) error {
	out := cmd.OutOrStdout()
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return json.NewEncoder(out).Encode(stats)
	}
	fmt.Fprintf(out, "round %d, population %d\n", stats.Round, stats.Population())
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tPOPULATION\tBORN\tDIED (AGE)\tDIED (VITALITY)")
	for _, name := range stats.Names() {
		k := stats.Kinds[name]
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", name, k.Population, k.Born, k.DiedOfAge, k.DiedOfVitality)
	}
	return w.Flush()
}
