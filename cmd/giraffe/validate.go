package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/giraffe-cad/giraffe/internal/cli"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <site-document>",
	Short: "Check a site document without writing output",
	Long: `Assembles the structural model and reports every diagnostic the export
would contain. With --strict, any warning makes the command fail.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		units, _ := cmd.Flags().GetString("units")
		strict, _ := cmd.Flags().GetBool("strict")
		quiet, _ := cmd.Flags().GetBool("quiet")

		err := cli.Validate(cli.ValidateOptions{
			InputPath: args[0],
			ModelName: name,
			Units:     units,
			Strict:    strict,
			Quiet:     quiet,
		})
		if err != nil {
			if !errors.Is(err, cli.ErrWarnings) {
				fmt.Printf("Error: %v\n", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("name", "", "Model name (default: from document)")
	validateCmd.Flags().String("units", "", "Document length units: mm, cm, m, in, ft (default: from document)")
	validateCmd.Flags().Bool("strict", false, "Fail when the document produces warnings")
	validateCmd.Flags().BoolP("quiet", "q", false, "Suppress the summary")
}
