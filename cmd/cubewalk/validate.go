package main

import (
	"fmt"
	"os"

	"github.com/aretw0/cubewalk/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that a net folds into a cube",
	Long:  `Reports disconnected faces, wrong face counts and nets that overlap when folded.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) > 0 {
			path = args[0]
		}
		faceSize, _ := cmd.Flags().GetInt("face-size")

		report, err := cli.Validate(path, os.Stdin, faceSize, os.Stdout)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Printf("Net of %d faces (size %d) folds into a cube! ✅\n", report.Faces, report.FaceSize)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Int("face-size", 0, "Face edge length (inferred for six-face nets)")
}
