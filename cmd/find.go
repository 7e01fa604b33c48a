package cmd

import (
	"github.com/mfawzysami/sitefinder/config"
	"github.com/mfawzysami/sitefinder/internal/site"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findCmd is for finding the binding fragment of a protein-protein complex
var findCmd = &cobra.Command{
	Use:                        "find [pdb]",
	Short:                      "Find the binding fragment between a ligand and an interacting protein",
	Run:                        site.Execute,
	SuggestionsMinimumDistance: 2,
	Long: `
Find the residues of the interacting protein (or the ligand) that can form
non-covalent contacts with the other side of the complex.

The PDB file is cleaned (only ATOM records of the first model are kept) and
loaded. Every residue
of the protein chains is compared with every residue of the ligand chains. Two
residues are in contact if a side chain atom of one is a hydrogen bond acceptor
and a side chain atom of the other is a donor or a hydrogen, within the cutoff
distance. Backbone atoms are ignored.

The full sequence and the fragment (contacts by their one letter code, "-"
elsewhere) are written to stdout as FASTA. With --output the FASTA and a tab
separated table of the contact positions are written as files to that
directory.`,
	Example: `  sitefinder find -c 1brs.pdb -l D -p A
  sitefinder find -c 1brs.pdb -l D,E,F -p A -d 4 --side ligand -o out`,
	Aliases: []string{"site", "fragment"},
}

// set flags
func init() {
	findCmd.Flags().StringP("ligand", "l", "", "chain identifier(s) of the protein ligand, comma separated")
	findCmd.Flags().StringP("protein", "p", "", "chain identifier(s) of the interacting protein, comma separated")
	findCmd.Flags().StringP("pdb", "c", "", "protein-protein(ligand) complex PDB file location")
	findCmd.Flags().IntP("distance", "d", config.DefaultDistance, "inclusive cutoff distance (Angstroms) for a non-covalent contact")
	findCmd.Flags().StringP("side", "s", config.DefaultSide, "side of the interface to return the fragment from: protein or ligand")
	findCmd.Flags().StringP("output", "o", "", "output directory for the FASTA and position files (default stdout)")
	findCmd.Flags().BoolP("keep-clean", "k", false, "keep the cleaned PDB file (in the output directory or working directory)")

	viper.BindPFlag("distance", findCmd.Flags().Lookup("distance"))
	viper.BindPFlag("side", findCmd.Flags().Lookup("side"))

	RootCmd.AddCommand(findCmd)
}
