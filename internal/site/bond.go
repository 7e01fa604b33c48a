package site

import "github.com/mfawzysami/sitefinder/internal/pdb"

// canBond returns whether two atoms may form a hydrogen-bond-like contact:
// one is an acceptor and the other a donor or hydrogen, and they're within
// cutoff Angstroms of one another (inclusive).
//
// This is a heuristic. Bond angles, partial charges and the position of the
// bridging hydrogen are not considered.
func canBond(a, b pdb.Atom, cutoff float64) bool {
	chemistry := (a.Acceptor && b.Donor) ||
		(a.Donor && b.Acceptor) ||
		(a.Hydrogen && b.Acceptor) ||
		(a.Acceptor && b.Hydrogen)

	return chemistry && distance(a.Coords, b.Coords) <= cutoff
}
