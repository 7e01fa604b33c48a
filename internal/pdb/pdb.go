// Package pdb loads protein complexes from PDB files into the residue and
// atom model used for interface detection. It only reads what the interface
// scan needs: ATOM/HETATM coordinates of the first model, chain identifiers,
// chain-local residue numbering and a per-atom chemical role.
package pdb

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AminoThreeToOne is a map from three letter amino acids to their
// corresponding single letter representation.
var AminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
	"HID": 'H', "HIE": 'H', "HIP": 'H', "HSD": 'H', "HSE": 'H', "HSP": 'H', "CYX": 'C', "MSE": 'M',
	"UNK": 'X', "ASX": 'X', "GLX": 'X',
}

// LoadError is returned when a structure file is missing, unreadable or does
// not contain any residues.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load structure %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// errNoResidues is wrapped in a LoadError when a file parses but has no atoms.
var errNoResidues = errors.New("no ATOM records found")

// Coords is a point in Angstroms.
type Coords struct {
	X, Y, Z float64
}

func (coords Coords) String() string {
	return fmt.Sprintf("%0.3f %0.3f %0.3f", coords.X, coords.Y, coords.Z)
}

// Role is the chemical classification of an atom. The facets are
// independent: a hydroxyl oxygen is both a donor and an acceptor.
type Role struct {
	Donor    bool
	Acceptor bool
	Hydrogen bool
}

// Atom is a single ATOM or HETATM record.
type Atom struct {
	Name    string
	Element string
	Coords
	Role

	// Backbone is true for main-chain atoms and the hydrogens bonded to them
	Backbone bool
}

// Residue is one amino acid of the structure.
type Residue struct {
	// Index is the 1-based sequential position of the residue in the structure
	Index int

	// Chain is the chain identifier ("_" if blank in the file)
	Chain string

	// Name is the three letter residue name, ex: "SER"
	Name string

	// Letter is the one letter code, 'X' if unknown
	Letter byte

	// Number and InsertionCode are the chain-local numbering from the file
	Number        int
	InsertionCode byte

	Atoms []Atom
}

// ChainPos is the chain-local position of the residue, ex: "42" or "42A".
func (r *Residue) ChainPos() string {
	pos := strconv.Itoa(r.Number)
	if r.InsertionCode != ' ' && r.InsertionCode != 0 {
		pos += string(r.InsertionCode)
	}
	return pos
}

// Structure is a loaded protein complex.
type Structure struct {
	// Path is the file the structure was loaded from
	Path string

	// Residues in file order. Residues[i].Index == i+1
	Residues []*Residue
}

// Name is the base name of the file the structure was loaded from.
func (s *Structure) Name() string {
	return filepath.Base(s.Path)
}

// TotalResidues is the number of residues in the structure.
func (s *Structure) TotalResidues() int {
	return len(s.Residues)
}

// ResidueAt returns the residue at 1-based sequential index i, nil if there's none.
func (s *Structure) ResidueAt(i int) *Residue {
	if i < 1 || i > len(s.Residues) {
		return nil
	}
	return s.Residues[i-1]
}

// Sequence is the one letter sequence of every residue in the structure.
func (s *Structure) Sequence() string {
	var b strings.Builder
	b.Grow(len(s.Residues))
	for _, r := range s.Residues {
		b.WriteByte(r.Letter)
	}
	return b.String()
}

// Locate maps a 1-based sequential index to its chain and chain-local position.
func (s *Structure) Locate(i int) (chain, pos string, err error) {
	r := s.ResidueAt(i)
	if r == nil {
		return "", "", fmt.Errorf("no residue at position %d of %d in %s", i, len(s.Residues), s.Name())
	}
	return r.Chain, r.ChainPos(), nil
}

// Load reads a structure from a PDB file. If the file name ends with ".gz",
// gzip decompression is used. Only the first model is read.
func Load(fileName string) (*Structure, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, &LoadError{Path: fileName, Err: err}
	}
	defer f.Close()

	reader, err := openReader(fileName, f)
	if err != nil {
		return nil, &LoadError{Path: fileName, Err: err}
	}

	s, err := Read(reader)
	if err != nil {
		return nil, &LoadError{Path: fileName, Err: err}
	}
	s.Path = fileName
	return s, nil
}

// Read parses PDB records from r. The returned structure has no Path.
func Read(r io.Reader) (*Structure, error) {
	s := &Structure{}
	var current *Residue

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 6 {
			continue
		}

		// the record name is always in the first six columns
		switch strings.TrimSpace(line[0:6]) {
		case "ATOM", "HETATM":
			rec, ok, err := parseAtom(line)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}

			if current == nil || !rec.sameResidue(current) {
				current = &Residue{
					Index:         len(s.Residues) + 1,
					Chain:         rec.chain,
					Name:          rec.resName,
					Letter:        letter(rec.resName),
					Number:        rec.resSeq,
					InsertionCode: rec.iCode,
				}
				s.Residues = append(s.Residues, current)
			}

			current.Atoms = append(current.Atoms, rec.atom(current.Name))
		case "ENDMDL":
			// only the first model is part of the structure
			return finish(s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return finish(s)
}

func finish(s *Structure) (*Structure, error) {
	if len(s.Residues) == 0 {
		return nil, errNoResidues
	}
	return s, nil
}

// openReader wraps f with a gzip reader if the file is gzipped.
func openReader(fileName string, f io.Reader) (io.Reader, error) {
	if filepath.Ext(fileName) == ".gz" {
		return gzip.NewReader(f)
	}
	return f, nil
}

// letter returns the one letter code for a residue name.
func letter(resName string) byte {
	if l, ok := AminoThreeToOne[resName]; ok {
		return l
	}
	return 'X'
}

// atomRecord is the subset of an ATOM line needed for a Residue and its Atom.
type atomRecord struct {
	name    string
	element string
	resName string
	chain   string
	resSeq  int
	iCode   byte
	coords  Coords
}

func (a atomRecord) sameResidue(r *Residue) bool {
	return a.chain == r.Chain && a.resSeq == r.Number && a.iCode == r.InsertionCode && a.resName == r.Name
}

func (a atomRecord) atom(resName string) Atom {
	backbone, role := Classify(resName, a.name, a.element)
	return Atom{
		Name:     a.name,
		Element:  a.element,
		Coords:   a.coords,
		Role:     role,
		Backbone: backbone,
	}
}

// parseAtom reads the fixed columns of an ATOM/HETATM record.
// https://www.wwpdb.org/documentation/file-format-content/format33/sect9.html#ATOM
// ok is false for alternate locations other than the first.
func parseAtom(line string) (rec atomRecord, ok bool, err error) {
	if len(line) < 54 {
		return rec, false, fmt.Errorf("truncated atom record: %q", line)
	}
	if len(line) < 80 {
		line += strings.Repeat(" ", 80-len(line))
	}

	if alt := line[16]; alt != ' ' && alt != 'A' && alt != '1' {
		return rec, false, nil
	}

	rec.name = strings.TrimSpace(line[12:16])
	rec.resName = strings.TrimSpace(line[17:20])
	rec.chain = line[21:22]
	if rec.chain == " " {
		rec.chain = "_"
	}
	rec.iCode = line[26]
	rec.element = strings.ToUpper(strings.TrimSpace(line[76:78]))

	if rec.resSeq, err = strconv.Atoi(strings.TrimSpace(line[22:26])); err != nil {
		return rec, false, fmt.Errorf("bad residue number in %q: %v", line, err)
	}

	cols := [3][2]int{{30, 38}, {38, 46}, {46, 54}}
	xyz := [3]float64{}
	for i, c := range cols {
		if xyz[i], err = strconv.ParseFloat(strings.TrimSpace(line[c[0]:c[1]]), 64); err != nil {
			return rec, false, fmt.Errorf("bad coordinate in %q: %v", line, err)
		}
	}
	rec.coords = Coords{X: xyz[0], Y: xyz[1], Z: xyz[2]}

	return rec, true, nil
}
