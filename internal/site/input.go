package site

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mfawzysami/sitefinder/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// errNoInput is returned when no PDB file was passed; usage is printed
	errNoInput = errors.New("no PDB file passed")
)

// Flags contains parsed cobra Flags like "ligand", "protein", "pdb", etc.
type Flags struct {
	// the chains of the ligand
	ligand ChainGroup

	// the chains of the interacting protein
	protein ChainGroup

	// path to the protein-protein complex PDB file
	pdb string

	// inclusive cutoff distance in Angstroms
	distance int

	// output directory, stdout if empty
	out string

	// which side of the interface to write to the fragment
	side Side

	// whether to keep the cleaned PDB file
	keepClean bool
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(ligand, protein, pdbFile string, distance int, out string, side Side, keepClean bool) *Flags {
	return &Flags{
		ligand:    ParseChainGroup(ligand),
		protein:   ParseChainGroup(protein),
		pdb:       pdbFile,
		distance:  distance,
		out:       out,
		side:      side,
		keepClean: keepClean,
	}
}

// parseCmdFlags gathers the chains, pdb path, etc from a cobra cmd object.
// The distance and side come from the Config so settings files can
// change their defaults.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config, error) {
	fs := &Flags{} // parsed flags
	p := inputParser{}
	c, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}

	if fs.pdb, err = cmd.Flags().GetString("pdb"); fs.pdb == "" || err != nil {
		if fs.pdb, err = p.guessInput(args); err != nil {
			return nil, c, err
		}
	}

	ligand, _ := cmd.Flags().GetString("ligand")
	protein, _ := cmd.Flags().GetString("protein")
	fs.ligand, fs.protein = p.parseChains(ligand, protein)

	if fs.out, err = cmd.Flags().GetString("output"); err != nil {
		return nil, c, fmt.Errorf("failed to parse output flag: %w", err)
	}

	if fs.keepClean, err = cmd.Flags().GetBool("keep-clean"); err != nil {
		return nil, c, fmt.Errorf("failed to parse keep-clean flag: %w", err)
	}

	fs.distance = c.Distance

	if fs.side, err = ParseSide(c.Side); err != nil {
		return nil, c, err
	}

	return fs, c, nil
}

// guessInput uses the first positional argument as the PDB file if the
// flag wasn't set.
func (p *inputParser) guessInput(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	return "", errNoInput
}

// parseChains parses the ligand and protein chain groups. Empty groups
// are allowed, they just never produce a contact.
func (p *inputParser) parseChains(ligand, protein string) (ChainGroup, ChainGroup) {
	lig, prot := ParseChainGroup(ligand), ParseChainGroup(protein)
	if len(lig) == 0 {
		stderr.Println("no ligand chains set [-l]")
	}
	if len(prot) == 0 {
		stderr.Println("no protein chains set [-p]")
	}
	return lig, prot
}
