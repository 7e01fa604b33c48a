package cmd

import (
	"github.com/mfawzysami/sitefinder/config"
	"github.com/mfawzysami/sitefinder/internal/mutagen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mutagenCmd is for turning a position file into a list of mutations
var mutagenCmd = &cobra.Command{
	Use:                        "mutagen [positionFile]",
	Short:                      "Mutate every residue of a position file to one amino acid",
	Run:                        mutagen.Execute,
	SuggestionsMinimumDistance: 2,
	Long: `
Read a position file written by 'sitefinder find' and print a comma separated
list of mutations, one per contact residue: residue, chain, chain position
and the amino acid it's mutated to. Ex: "KL42a".`,
	Example: "  sitefinder mutagen -p out/positions.tsv -g A",
}

// set flags
func init() {
	mutagenCmd.Flags().StringP("positionFile", "p", "", "position file to load")
	mutagenCmd.Flags().StringP("mutagen", "g", config.DefaultMutagen, "amino acid to mutate every residue in the position file to")

	viper.BindPFlag("mutagen", mutagenCmd.Flags().Lookup("mutagen"))

	RootCmd.AddCommand(mutagenCmd)
}
