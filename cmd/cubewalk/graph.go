package main

import (
	"fmt"
	"os"

	"github.com/aretw0/cubewalk/internal/cli"
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the seam graph of a net",
	Long:  `Folds the net and outputs a Mermaid diagram (graph LR) with one link per seam.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.GraphOptions{Path: "-", Stdin: os.Stdin}
		if len(args) > 0 {
			opts.Path = args[0]
		}
		opts.FaceSize, _ = cmd.Flags().GetInt("face-size")
		opts.Overlay, _ = cmd.Flags().GetBool("path")

		mode, _ := cmd.Flags().GetString("mode")
		m, err := domain.ParseMode(mode)
		if err != nil {
			return err
		}
		opts.Mode = m

		out, err := cli.Graph(cmd.Context(), opts)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("mode", "m", "cube", "Fold mode: flat or cube")
	graphCmd.Flags().Int("face-size", 0, "Face edge length (inferred for six-face nets)")
	graphCmd.Flags().Bool("path", false, "Highlight the faces the path visits")
}
