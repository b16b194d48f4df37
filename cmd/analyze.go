package cmd

import (
	"github.com/McClain-Thiel/plasmid-space/internal/plasmid"
	"github.com/spf13/cobra"
)

// analyzeCmd is for validating and annotating a plasmid sequence.
var analyzeCmd = &cobra.Command{
	Use:                        "analyze [seq]",
	Run:                        plasmid.AnalyzeCmd,
	Short:                      "Analyze a plasmid sequence: GC content, copy number, ORFs and common features",
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	analyzeCmd.Flags().StringP("in", "i", "", "input file name (FASTA or a plain sequence)")
	analyzeCmd.Flags().StringP("out", "o", "", "output file name (JSON report)")

	RootCmd.AddCommand(analyzeCmd)
}
