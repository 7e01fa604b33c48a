package site

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// positionsHeader is the first line of a position file.
const positionsHeader = "res\tloci\tchain\tchain_pos\r\n"

// writeFasta writes the structure's sequence and the fragment.
// The carriage returns are part of the format that downstream tools expect.
func writeFasta(w io.Writer, name, seq string, f Fragment, side Side) error {
	_, err := fmt.Fprintf(w, ">SEQUENCE;%s\r\n%s\r\n>FRAGMENT;%s\n\n%s\n", name, seq, side.Label(), f)
	return err
}

// writePositions writes a tab separated position file.
func writePositions(w io.Writer, positions []Position) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(positionsHeader)
	for _, p := range positions {
		fmt.Fprintf(bw, "%s\t%d\t%s\t%s\r\n", p.Residue, p.Loci, p.Chain, p.ChainPos)
	}
	return bw.Flush()
}

// output is the result of a scan, ready to be written.
type output struct {
	name      string
	seq       string
	fragment  Fragment
	side      Side
	positions []Position
}

// writeTo writes only the FASTA to w. The position table needs an output dir.
func (o output) writeTo(w io.Writer) error {
	return writeFasta(w, o.name, o.seq, o.fragment, o.side)
}

// writeDir writes the FASTA and position files to dir, creating it if needed.
// It returns the paths written.
func (o output) writeDir(dir, fastaName, positionsName string) (fastaPath, positionsPath string, err error) {
	if err = os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to make output dir: %w", err)
	}

	fastaPath = filepath.Join(dir, fastaName)
	if err = writeFile(fastaPath, func(w io.Writer) error {
		return writeFasta(w, o.name, o.seq, o.fragment, o.side)
	}); err != nil {
		return "", "", err
	}

	positionsPath = filepath.Join(dir, positionsName)
	if err = writeFile(positionsPath, func(w io.Writer) error {
		return writePositions(w, o.positions)
	}); err != nil {
		return "", "", err
	}

	return fastaPath, positionsPath, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
