package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/wordcosmo/config"
	"github.com/lixenwraith/wordcosmo/engine"
	"github.com/lixenwraith/wordcosmo/logging"
	"github.com/lixenwraith/wordcosmo/parameter"
)

func newSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the simulation headless and print stats",
		Long: `sim advances the world at the fixed tick rate as fast as possible
and prints the stats block every --every ticks and once at the end.
Identical seeds produce identical output.`,
		RunE: runSim,
	}
	cmd.Flags().Int("ticks", 0, "Ticks to run (overrides config)")
	cmd.Flags().Int("every", 0, "Report interval in ticks, 0 for final report only (overrides config)")
	return cmd
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("ticks") {
		cfg.Headless.Ticks, _ = flags.GetInt("ticks")
	}
	if flags.Changed("every") {
		cfg.Headless.ReportEvery, _ = flags.GetInt("every")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode, _ := flags.GetString("profile")
	stopProfile, err := startProfile(mode)
	if err != nil {
		return err
	}
	defer stopProfile()

	log := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	if cfg.Debug {
		fileLog, f, err := logging.Setup(true, cfg.Logging.Level, cfg.Logging.File)
		if err != nil {
			return err
		}
		defer f.Close()
		log = fileLog
	}

	return simulate(cmd.OutOrStdout(), cfg, log)
}

// simulate runs the configured number of ticks, reporting to out
func simulate(out io.Writer, cfg *config.Config, log *slog.Logger) error {
	world := engine.New(engine.WithSeed(cfg.Seed), engine.WithLogger(log))
	ticks, every := cfg.Headless.Ticks, cfg.Headless.ReportEvery

	log.Info("simulation start", "seed", cfg.Seed, "ticks", ticks, "every", every)
	start := time.Now()

	for i := 1; i <= ticks; i++ {
		world.Tick(parameter.DT)
		if every > 0 && i%every == 0 {
			if err := writeReport(out, world.Stats()); err != nil {
				return err
			}
		}
	}
	if every <= 0 || ticks%every != 0 {
		if err := writeReport(out, world.Stats()); err != nil {
			return err
		}
	}

	log.Info("simulation done", "ticks", ticks, "elapsed", time.Since(start), "words", world.Len())
	return nil
}

func writeReport(out io.Writer, s engine.Stats) error {
	for _, line := range statsLines(s) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	_, err := fmt.Fprintln(out)
	return err
}
