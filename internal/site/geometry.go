package site

import (
	"math"

	"github.com/mfawzysami/sitefinder/internal/pdb"
)

// distance is the Euclidean distance between two points, in Angstroms.
func distance(a, b pdb.Coords) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
