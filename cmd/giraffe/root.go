package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "giraffe",
	Short: "Giraffe converts CAD geometry into SOFiSTiK input files",
	Long: `Giraffe reads a site document (a YAML layer tree of points and lines),
builds a deduplicated, numbered structural model and exports it as
SOFiSTiK text input.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
