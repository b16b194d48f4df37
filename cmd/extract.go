package cmd

import (
	"github.com/McClain-Thiel/plasmid-space/internal/plasmid"
	"github.com/spf13/cobra"
)

// extractCmd is for sanitizing raw generator output into a validated sequence.
var extractCmd = &cobra.Command{
	Use:                        "extract [text]",
	Run:                        plasmid.ExtractCmd,
	Short:                      "Extract a validated DNA sequence from raw generator output",
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	extractCmd.Flags().StringP("in", "i", "", "input file name with raw generator output")
	extractCmd.Flags().StringP("out", "o", "", "output file name (JSON report); without it the sequence is printed")

	RootCmd.AddCommand(extractCmd)
}
