package cmd

import (
	"github.com/McClain-Thiel/plasmid-space/internal/plasmid"
	"github.com/spf13/cobra"
)

// decodeCmd is for converting token ids back to text.
var decodeCmd = &cobra.Command{
	Use:                        "decode [id ...]",
	Run:                        plasmid.DecodeCmd,
	Short:                      "Decode token ids back to text",
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	decodeCmd.Flags().BoolP("skip-control", "k", false, "drop <BOS>/<EOS>/<PAD>/<UNK> from the output")

	RootCmd.AddCommand(decodeCmd)
}
