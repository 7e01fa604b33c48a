package site

import "github.com/mfawzysami/sitefinder/internal/pdb"

// hasContact returns whether any side chain atom of a can bond with any side
// chain atom of b. Backbone atoms are never considered.
func hasContact(a, b *pdb.Residue, cutoff float64) bool {
	return contact(sideChain(a), sideChain(b), cutoff)
}

// contact returns whether any atom of first can bond with any atom of second.
func contact(first, second []pdb.Atom, cutoff float64) bool {
	for _, i := range first {
		for _, j := range second {
			if canBond(i, j, cutoff) {
				return true
			}
		}
	}
	return false
}

// sideChain returns the residue's atoms that aren't part of the backbone.
func sideChain(r *pdb.Residue) []pdb.Atom {
	atoms := make([]pdb.Atom, 0, len(r.Atoms))
	for _, a := range r.Atoms {
		if !a.Backbone {
			atoms = append(atoms, a)
		}
	}
	return atoms
}
