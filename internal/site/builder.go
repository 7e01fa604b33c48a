// Package site finds the residues at the binding interface of a
// protein-protein complex.
package site

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mfawzysami/sitefinder/internal/pdb"
)

// Structure is the read-only view of a loaded complex that the interface scan needs.
type Structure interface {
	// Name of the structure, written in the FASTA header
	Name() string

	// Sequence of one letter codes for every residue
	Sequence() string

	// TotalResidues is the number of residues
	TotalResidues() int

	// ResidueAt returns the residue at 1-based sequential index i
	ResidueAt(i int) *pdb.Residue

	// Locate maps a 1-based sequential index to its chain and chain-local position
	Locate(i int) (chain, pos string, err error)
}

// Side is the side of the interface whose residues make up the fragment.
type Side int

const (
	// Protein reports contacting residues of the interacting protein
	Protein Side = iota

	// Ligand reports contacting residues of the ligand
	Ligand
)

// ParseSide parses "protein" or "ligand" (or their first letter).
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "protein", "p":
		return Protein, nil
	case "ligand", "l":
		return Ligand, nil
	}
	return Protein, fmt.Errorf("unknown side %q: expecting \"protein\" or \"ligand\"", s)
}

func (s Side) String() string {
	if s == Ligand {
		return "ligand"
	}
	return "protein"
}

// Label is the side's name in the FASTA fragment header.
func (s Side) Label() string {
	return strings.ToUpper(s.String())
}

// ChainGroup is a set of chain identifiers.
type ChainGroup map[string]struct{}

// ParseChainGroup parses a single chain identifier or a comma separated
// list of them, ex: "B" or "B,C".
func ParseChainGroup(ids string) ChainGroup {
	g := make(ChainGroup)
	for _, id := range strings.Split(ids, ",") {
		if id = strings.TrimSpace(id); id != "" {
			g[id] = struct{}{}
		}
	}
	return g
}

// Contains returns whether the chain is in the group.
func (g ChainGroup) Contains(chain string) bool {
	_, ok := g[chain]
	return ok
}

func (g ChainGroup) String() string {
	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

// Params configures an interface scan.
type Params struct {
	Ligand  ChainGroup
	Protein ChainGroup

	// Side whose contacting residues are written to the fragment
	Side Side

	// Cutoff is the inclusive contact distance in Angstroms
	Cutoff int
}

// Groups are a structure's residues split by chain group.
type Groups struct {
	Ligand  []*pdb.Residue
	Protein []*pdb.Residue
}

// Partition splits the structure's residues into the ligand and protein
// groups. Residues in neither group are dropped. A chain in both groups is
// treated as ligand.
func Partition(s Structure, ligand, protein ChainGroup) Groups {
	var g Groups
	for i := 1; i <= s.TotalResidues(); i++ {
		r := s.ResidueAt(i)
		switch {
		case ligand.Contains(r.Chain):
			g.Ligand = append(g.Ligand, r)
		case protein.Contains(r.Chain):
			g.Protein = append(g.Protein, r)
		}
	}
	return g
}

// Fragment has one slot per residue of a structure, slot i for sequential
// index i+1. A nil slot is a position without a contact.
type Fragment []*pdb.Residue

// Empty returns whether no slot holds a residue.
func (f Fragment) Empty() bool {
	for _, r := range f {
		if r != nil {
			return false
		}
	}
	return true
}

// String is the fragment sequence: one letter codes at contacts, "-" elsewhere.
func (f Fragment) String() string {
	var b strings.Builder
	b.Grow(len(f))
	for _, r := range f {
		if r == nil {
			b.WriteByte('-')
		} else {
			b.WriteByte(r.Letter)
		}
	}
	return b.String()
}

// Build scans every protein x ligand residue pair for a contact and returns
// the fragment of contacting residues on the requested side.
func Build(s Structure, p Params) Fragment {
	return build(s, Partition(s, p.Ligand, p.Protein), p)
}

func build(s Structure, g Groups, p Params) Fragment {
	fragment := make(Fragment, s.TotalResidues())
	cutoff := float64(p.Cutoff)

	ligands := make([][]pdb.Atom, len(g.Ligand))
	for i, lig := range g.Ligand {
		ligands[i] = sideChain(lig)
	}

	for _, prot := range g.Protein {
		protAtoms := sideChain(prot)
		for i, lig := range g.Ligand {
			if !contact(protAtoms, ligands[i], cutoff) {
				continue
			}

			if p.Side == Ligand {
				fragment[lig.Index-1] = lig
			} else {
				fragment[prot.Index-1] = prot
			}
		}
	}

	return fragment
}
