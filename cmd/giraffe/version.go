package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giraffe-cad/giraffe"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of giraffe",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("giraffe version %s\n", giraffe.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
