package cmd

import (
	"github.com/McClain-Thiel/plasmid-space/internal/plasmid"
	"github.com/spf13/cobra"
)

// encodeCmd is for converting text to token ids.
var encodeCmd = &cobra.Command{
	Use:                        "encode [text]",
	Run:                        plasmid.EncodeCmd,
	Short:                      "Encode condition tokens and nucleotides to token ids",
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	encodeCmd.Flags().BoolP("bos", "b", false, "prepend the <BOS> id")

	RootCmd.AddCommand(encodeCmd)
}
