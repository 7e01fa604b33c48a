package site

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/mfawzysami/sitefinder/internal/pdb"
)

// brokenStructure is a structure whose chain lookup disagrees with its residues.
type brokenStructure struct {
	*pdb.Structure
	locate func(i int) (string, string, error)
}

func (b brokenStructure) Locate(i int) (string, string, error) {
	return b.locate(i)
}

func TestPositions(t *testing.T) {
	s := structure(
		residue(1, "P", 'D'),
		residue(2, "P", 'A'),
		residue(3, "L", 'K'),
	)
	s.Residues[2].Number = 42
	s.Residues[2].InsertionCode = 'B'

	f := Fragment{s.Residues[0], nil, s.Residues[2]}

	got, err := Positions(s, f)
	if err != nil {
		t.Fatal(err)
	}

	want := []Position{
		{Residue: "D", Loci: 1, Chain: "P", ChainPos: "1"},
		{Residue: "K", Loci: 3, Chain: "L", ChainPos: "42B"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Positions() = %+v, want %+v", got, want)
	}

	// round trip: every position maps back to the residue's partition chain
	for _, p := range got {
		chain, _, err := s.Locate(p.Loci)
		if err != nil || chain != s.ResidueAt(p.Loci).Chain {
			t.Errorf("Locate(%d) = %s, %v; want chain %s", p.Loci, chain, err, s.ResidueAt(p.Loci).Chain)
		}
	}
}

func TestPositions_empty(t *testing.T) {
	s := structure(residue(1, "P", 'D'))
	got, err := Positions(s, Fragment{nil})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Positions() = %v, want none", got)
	}
}

func TestPositions_lookupInconsistency(t *testing.T) {
	s := structure(residue(1, "P", 'D'), residue(2, "L", 'K'))
	f := Fragment{s.Residues[0], nil}

	tests := []struct {
		name   string
		locate func(i int) (string, string, error)
	}{
		{
			"lookup fails",
			func(i int) (string, string, error) { return "", "", fmt.Errorf("no residue %d", i) },
		},
		{
			"lookup returns another chain",
			func(i int) (string, string, error) { return "L", "1", nil },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Positions(brokenStructure{s, tt.locate}, f)
			if !errors.Is(err, ErrLookup) {
				t.Errorf("Positions() error = %v, want %v", err, ErrLookup)
			}
		})
	}
}
