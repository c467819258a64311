package main

import (
	"os"

	"github.com/aretw0/cubewalk/internal/cli"
	"github.com/aretw0/cubewalk/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Walk the path and print the password",
	Long: `Reads a puzzle (raw text, or a .yaml/.json document) and walks its path in
every requested mode. Reads stdin when no file is given or the file is "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) > 0 {
			path = args[0]
		}

		opts := cli.SolveOptions{
			Path:   path,
			Config: cfg,
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Logger: logger,
		}
		opts.Mode, _ = cmd.Flags().GetString("mode")
		opts.FaceSize, _ = cmd.Flags().GetInt("face-size")
		opts.Verbose, _ = cmd.Flags().GetBool("verbose")
		opts.Headless, _ = cmd.Flags().GetBool("headless")
		if cmd.Flags().Changed("trace") {
			opts.Config.Trace, _ = cmd.Flags().GetString("trace")
		}
		if cmd.Flags().Changed("store") {
			opts.Config.Store.Kind, _ = cmd.Flags().GetString("store")
		}
		if err := opts.Config.Validate(); err != nil {
			return err
		}

		if !tui.IsTerminal(os.Stdout) {
			opts.Headless = true
		}
		if !opts.Headless {
			opts.Renderer = tui.NewRenderer()
		}

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		watch, _ := cmd.Flags().GetBool("watch")
		if watch {
			return cli.Watch(sigCtx, opts, cli.DefaultDebounce)
		}

		_, err := cli.Solve(sigCtx, opts)
		if cli.IsInterrupted(err) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringP("mode", "m", "", "Fold mode: flat, cube or both (default from document or config)")
	solveCmd.Flags().Int("face-size", 0, "Face edge length (inferred for six-face nets)")
	solveCmd.Flags().String("trace", "", "Print every walk event: text or json")
	solveCmd.Flags().BoolP("verbose", "v", false, "Include plain steps in the text trace")
	solveCmd.Flags().String("store", "", "Result cache: none, memory, file or redis")
	solveCmd.Flags().Bool("headless", false, "Plain output without banner or markdown rendering")
	solveCmd.Flags().BoolP("watch", "w", false, "Solve again whenever the file changes")
}
