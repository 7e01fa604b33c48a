package site

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mfawzysami/sitefinder/config"
	"github.com/mfawzysami/sitefinder/internal/pdb"
	"github.com/spf13/cobra"
)

// Execute is the entrypoint of 'sitefinder find'. It finds the binding
// fragment of a complex and writes it to stdout or the output directory.
func Execute(cmd *cobra.Command, args []string) {
	fs, c, err := parseCmdFlags(cmd, args)
	if errors.Is(err, errNoInput) {
		cmd.Help()
		return
	}
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	if err = Find(fs, c, cmd.OutOrStdout()); err != nil {
		var loadErr *pdb.LoadError
		if errors.As(err, &loadErr) {
			cmd.Help()
		}
		stderr.Fatal(err)
	}
}

// Find cleans and loads the complex, scans its interface and writes the
// fragment. Without an output directory only the FASTA is written, to stdout;
// with one, the FASTA and the position file are written there.
func Find(fs *Flags, c *config.Config, stdout io.Writer) error {
	cleanDir, cleanup, err := fs.cleanDir()
	if err != nil {
		return err
	}
	defer cleanup()

	stderr.Println("Cleaning PDB. Please Wait...")
	cleaned, err := pdb.Clean(fs.pdb, cleanDir)
	if err != nil {
		return err
	}

	stderr.Println("Loading cleaned PDB file. Please wait....")
	s, err := pdb.Load(cleaned)
	if err != nil {
		return err
	}

	stderr.Println("Building ligand and the interacting protein.")
	groups := Partition(s, fs.ligand, fs.protein)
	stderr.Printf("ligand [%s]: %d residues, protein [%s]: %d residues\n",
		fs.ligand, len(groups.Ligand), fs.protein, len(groups.Protein))

	stderr.Println("Building Fragment. Please Wait....")
	fragment := build(s, groups, Params{
		Ligand:  fs.ligand,
		Protein: fs.protein,
		Side:    fs.side,
		Cutoff:  fs.distance,
	})
	if fragment.Empty() {
		stderr.Println("No Binding Fragment found.")
		return nil
	}

	positions, err := Positions(s, fragment)
	if err != nil {
		return err
	}

	o := output{
		name:      s.Name(),
		seq:       s.Sequence(),
		fragment:  fragment,
		side:      fs.side,
		positions: positions,
	}
	if fs.out == "" {
		return o.writeTo(stdout)
	}

	fastaPath, positionsPath, err := o.writeDir(fs.out, c.FastaName, c.PositionsName)
	if err != nil {
		return err
	}
	stderr.Printf("%d contacts written to %s and %s\n", len(positions), fastaPath, positionsPath)
	return nil
}

// cleanDir is where the cleaned PDB is written. Unless it's kept, that's a
// temporary directory removed by cleanup.
func (fs *Flags) cleanDir() (dir string, cleanup func(), err error) {
	if !fs.keepClean {
		dir, err = os.MkdirTemp("", "sitefinder")
		if err != nil {
			return "", nil, fmt.Errorf("failed to make a temp dir: %w", err)
		}
		return dir, func() { os.RemoveAll(dir) }, nil
	}

	dir = "."
	if fs.out != "" {
		dir = fs.out
		if err = os.MkdirAll(dir, 0755); err != nil {
			return "", nil, fmt.Errorf("failed to make output dir: %w", err)
		}
	}
	return dir, func() {}, nil
}
