package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/cubewalk/internal/cli"
	"github.com/aretw0/cubewalk/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg    = config.Default()
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cubewalk",
	Short: "cubewalk walks paths over cube nets",
	Long: `cubewalk reads a map made of square faces, folds it flat (wrapping like a torus)
or into a cube, and walks a path of moves and turns over the surface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			cfg.LogLevel = "debug"
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat, _ = cmd.Flags().GetString("log-format")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = cli.NewLogger(cfg, os.Stderr)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().Bool("debug", false, "Shorthand for --log-level=debug")
}
