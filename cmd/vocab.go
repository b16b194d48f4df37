package cmd

import (
	"github.com/McClain-Thiel/plasmid-space/internal/plasmid"
	"github.com/spf13/cobra"
)

// vocabCmd is for listing the loaded vocabulary.
var vocabCmd = &cobra.Command{
	Use:                        "vocab",
	Run:                        plasmid.VocabCmd,
	Short:                      "List the control and condition tokens in the vocabulary",
	SuggestionsMinimumDistance: 3,
}

func init() {
	RootCmd.AddCommand(vocabCmd)
}
