package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/cubewalk"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cubewalk",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cubewalk version %s\n", strings.TrimSpace(cubewalk.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
