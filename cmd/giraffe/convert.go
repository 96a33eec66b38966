package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/giraffe-cad/giraffe/internal/cli"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <site-document>",
	Short: "Convert a site document to a SOFiSTiK input file",
	Long: `Reads the given YAML site document, assembles the structural model and
writes a .dat file next to the input (or to --out).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.Flags().GetString("out")
		name, _ := cmd.Flags().GetString("name")
		units, _ := cmd.Flags().GetString("units")
		quiet, _ := cmd.Flags().GetBool("quiet")
		debug, _ := cmd.Flags().GetBool("debug")

		err := cli.Convert(cli.ConvertOptions{
			InputPath:  args[0],
			OutputPath: out,
			ModelName:  name,
			Units:      units,
			Quiet:      quiet,
			Debug:      debug,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("out", "o", "", "Output path (default: input with .dat extension)")
	convertCmd.Flags().String("name", "", "Model name (default: from document)")
	convertCmd.Flags().String("units", "", "Document length units: mm, cm, m, in, ft (default: from document)")
	convertCmd.Flags().BoolP("quiet", "q", false, "Suppress banner and summary")
}
