package site

import (
	"errors"
	"fmt"
)

// ErrLookup is returned when a structure can't map a contact back to its
// chain position. It means the structure and its residues disagree.
var ErrLookup = errors.New("chain lookup failed")

// Position is a contact residue's location, one row of the position file.
type Position struct {
	// Residue is the one letter code
	Residue string

	// Loci is the 1-based sequential position in the structure
	Loci int

	// Chain is the residue's chain identifier
	Chain string

	// ChainPos is the position within the chain, ex: "42" or "42A"
	ChainPos string
}

// Positions maps every contact of the fragment to its chain position.
func Positions(s Structure, f Fragment) ([]Position, error) {
	positions := []Position{}
	for i, r := range f {
		if r == nil {
			continue
		}

		loci := i + 1
		chain, pos, err := s.Locate(loci)
		if err != nil {
			return nil, fmt.Errorf("%w: position %d: %v", ErrLookup, loci, err)
		}
		if chain != r.Chain {
			return nil, fmt.Errorf("%w: position %d is in chain %s, residue is in chain %s", ErrLookup, loci, chain, r.Chain)
		}

		positions = append(positions, Position{
			Residue:  string(r.Letter),
			Loci:     loci,
			Chain:    chain,
			ChainPos: pos,
		})
	}
	return positions, nil
}
