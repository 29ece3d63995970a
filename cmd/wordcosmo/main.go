package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/wordcosmo/config"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordcosmo",
		Short: "Word gravity simulation",
		Long: `wordcosmo simulates words as massive particles that attract,
collide, merge into compound words and shatter back into their parts.

Without a subcommand it opens the interactive terminal viewer.`,
		SilenceUsage: true,
		RunE:         runViewer,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (overrides config)")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to logs/wordcosmo.log")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("profile", "", "Write a cpu or mem profile to the working directory")

	rootCmd.AddCommand(
		newRunCmd(),
		newSimCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive terminal viewer",
		RunE:  runViewer,
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wordcosmo version %s\n", version)
		},
	}
}

// loadConfig layers flags that were set over file and environment
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// startProfile returns the stop function for the requested profile; empty mode is a no-op
func startProfile(mode string) (func(), error) {
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
		return p.Stop, nil
	case "mem":
		p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
		return p.Stop, nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q (valid: cpu, mem)", mode)
	}
}
